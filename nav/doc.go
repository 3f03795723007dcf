// Package nav provides keyboard delegates: per-topology adjacency resolvers
// that answer "which key is above/below/left/right of this one" for flat
// lists, fixed-column grids, and flattened trees.
//
// # Contract
//
// All delegates share three rules:
//
//   - Disabled items are skipped transparently. KeyBelow returns the next
//     enabled key below, walking past any number of disabled items.
//   - Boundary queries return ok=false; there is no wraparound at this
//     layer. Wrapping, when a host wants it, belongs to the router.
//   - Delegates are pure functions of a collection.View snapshot. They hold
//     no mutable state and are rebuilt alongside each new snapshot.
//
// # Optional Capabilities
//
// Pager (page-wise jumps) and Searcher (typeahead) are separate interfaces so
// topologies can opt in: List and Tree implement both, Grid implements Pager
// only (typing against a 2-D layout has no obvious forward order for labels
// spread across rows, and grid hosts typically use cell content, not labels).
package nav
