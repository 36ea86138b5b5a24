package catalog

import "github.com/harun/toolshed/pkg/inventory"

// Sample returns the demo tools. Each call builds new values.
func Sample() []*inventory.Tool {
	return []*inventory.Tool{
		inventory.NewTool("Hammer", 35, []inventory.Reservation{}),
		inventory.NewTool("Axe", 18, []inventory.Reservation{}),
	}
}
