// Package store persists the tool sequence in SQLite.
//
// Invariants:
// - Tools are returned in insertion order, which is also listing order.
// - Reservation records are stored and returned verbatim; only a missing
//   reservation ID is filled in.
// - Replace swaps the whole sequence in one transaction.
//
// Usage:
//
//	st, _ := store.Open(ctx, store.Config{Path: "/data/toolshed.db"})
//	defer st.Close()
//	id, _ := st.Add(ctx, inventory.NewTool("Hammer", 35, nil))
//	lib, _ := st.Library(ctx)
//	fmt.Println(id, lib.List())
package store
