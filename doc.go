// Package modmap provides maps whose keys and values are run through
// configurable modifier chains at every point of insertion, retrieval,
// and deletion.
//
// Define a specialized map type once with [Define], then create as many
// instances of it as you need:
//
//	hosts, _ := modmap.Define(modmap.Config[string, any]{
//	    KeyModifiers:   []modmap.Modifier[string]{modifiers.TrimSpace, modifiers.Casefold},
//	    ValueModifiers: modmap.Modifier[any](modifiers.ToIPAddr),
//	})
//	m, err := hosts.From(map[string]any{"  GooGle.com  ": "142.250.69.206"})
//
// Every key crossing the map's boundary is normalized by the key chain,
// so lookups, deletions, and membership tests all observe the same
// modified key space:
//
//	addr, err := m.Get("GOOGLE.COM ")
//
// Values are modified exactly once, on the way in. Bulk construction
// and merging can run the modifier chains sequentially or across a
// fixed-size worker pool, see [Strategy].
//
// [AsAttrs] adapts any string-keyed map into an attribute-style view
// whose reads, writes, and deletes delegate to the map's item
// operations.
//
// Sub-packages:
//   - modifiers – ready-made key and value modifiers (trim, casefold, IP parsing, ...)
package modmap
