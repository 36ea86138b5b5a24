package inventory

import (
	"fmt"
	"strings"
)

const (
	listHeader = "Tool List:"

	// The indentation before "Donate Tool!" is part of the listing format.
	entryFooter = "Reserve Now!\n        Donate Tool!\n---"
)

// Listable is anything that can appear in a tool listing.
type Listable interface {
	ToolName() string
	ToolQuantity() int
}

// ToolLibrary holds an ordered sequence of tools
type ToolLibrary struct {
	tools []*Tool
}

// NewToolLibrary creates a new ToolLibrary.
// The slice is copied; the tools it points to are shared with the caller.
func NewToolLibrary(tools []*Tool) *ToolLibrary {
	owned := make([]*Tool, len(tools))
	copy(owned, tools)
	return &ToolLibrary{tools: owned}
}

// Tools returns the library's tools in listing order
func (l *ToolLibrary) Tools() []*Tool {
	out := make([]*Tool, len(l.tools))
	copy(out, l.tools)
	return out
}

// Len returns the number of tools in the library
func (l *ToolLibrary) Len() int {
	return len(l.tools)
}

// ListTools renders records as a tool listing. An empty sequence yields
// only the header.
func (l *ToolLibrary) ListTools(records []Listable) string {
	var b strings.Builder
	b.WriteString(listHeader)
	for _, r := range records {
		writeEntry(&b, r.ToolName(), r.ToolQuantity())
	}
	return b.String()
}

// List renders the library's own tools
func (l *ToolLibrary) List() string {
	records := make([]Listable, len(l.tools))
	for i, t := range l.tools {
		records[i] = t
	}
	return l.ListTools(records)
}

func writeEntry(b *strings.Builder, name, quantity any) {
	fmt.Fprintf(b, "\nTool: %v\nQuantity: %v\n%s", name, quantity, entryFooter)
}
