// Package inventory models lendable tools and renders tool listings.
//
// Invariants:
// - Construction never fails and never validates: names, quantities and
//   reservation records are stored exactly as given.
// - Listing order equals sequence order; listings are pure and repeatable.
// - A ToolLibrary keeps its own copy of the tool sequence but shares the
//   *Tool values with the caller.
//
// Usage:
//
//	hammer := inventory.NewTool("Hammer", 35, nil)
//	lib := inventory.NewToolLibrary([]*inventory.Tool{hammer})
//	fmt.Println(lib.List())
package inventory
