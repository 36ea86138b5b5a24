// Package catalog reads and writes tool catalog files.
//
// A catalog is a JSON or YAML document listing tools in order:
//
//	{"tools": [{"name": "Hammer", "quantity": 35, "reservations": []}]}
//
// Every document is checked against CatalogSchema before it is decoded, so
// a catalog that loads is well-formed; the values themselves (negative
// quantities, empty names) are accepted as-is.
//
// Usage:
//
//	cat, err := catalog.Load("tools.yaml")
//	if err != nil {
//		return err
//	}
//	fmt.Println(cat.Library().List())
package catalog
