package inventory

import (
	"fmt"
	"time"
)

// Reservation is a reservation record carried by a tool.
// Reservations are stored verbatim; nothing in this package interprets them.
type Reservation struct {
	ID        string    `json:"id,omitempty" yaml:"id,omitempty"`
	Borrower  string    `json:"borrower,omitempty" yaml:"borrower,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// Tool represents one lendable item.
//
// Field order matters to ListRecords, which reads Name and Quantity
// positionally.
type Tool struct {
	Name         string        `json:"name" yaml:"name"`
	Quantity     int           `json:"quantity" yaml:"quantity"`
	Reservations []Reservation `json:"reservations" yaml:"reservations"`
}

// NewTool creates a new Tool
func NewTool(name string, quantity int, reservations []Reservation) *Tool {
	if reservations == nil {
		reservations = []Reservation{}
	}
	return &Tool{
		Name:         name,
		Quantity:     quantity,
		Reservations: reservations,
	}
}

// Render returns the two-line description of the tool
func (t *Tool) Render() string {
	return fmt.Sprintf("Tool: %s\nQuantity: %d", t.Name, t.Quantity)
}

// ToolName implements Listable
func (t *Tool) ToolName() string {
	return t.Name
}

// ToolQuantity implements Listable
func (t *Tool) ToolQuantity() int {
	return t.Quantity
}
