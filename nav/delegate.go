package nav

import "github.com/five82/selkit/collection"

// Delegate answers directional adjacency queries for one collection topology.
// Every method skips disabled items transparently: KeyBelow returns the next
// enabled key below, not merely the adjacent one. Queries against a key that
// is absent from the snapshot, and queries past a boundary, return ok=false.
//
// Delegates are pure: they hold a snapshot and never mutate selection or
// focus state. Build a new delegate whenever the host supplies a new
// collection.View.
type Delegate interface {
	KeyAbove(k collection.Key) (collection.Key, bool)
	KeyBelow(k collection.Key) (collection.Key, bool)
	KeyLeftOf(k collection.Key) (collection.Key, bool)
	KeyRightOf(k collection.Key) (collection.Key, bool)
	FirstKey() (collection.Key, bool)
	LastKey() (collection.Key, bool)
}

// Pager is an optional Delegate capability for page-wise jumps. The page
// argument is the number of visible rows; implementations clamp to the
// collection ends rather than returning ok=false when fewer rows remain.
type Pager interface {
	KeyPageAbove(k collection.Key, page int) (collection.Key, bool)
	KeyPageBelow(k collection.Key, page int) (collection.Key, bool)
}

// Searcher is an optional Delegate capability for typeahead: it resolves the
// first key whose label matches query, scanning forward from (and excluding)
// from, wrapping around once. An empty from scans from the start.
type Searcher interface {
	KeyForSearch(query string, from collection.Key) (collection.Key, bool)
}

// enabledAfter returns the first enabled key at or after index i.
func enabledAfter(v *collection.View, i int) (collection.Key, bool) {
	for ; i < v.Len(); i++ {
		n, _ := v.At(i)
		if !n.Disabled {
			return n.Key, true
		}
	}
	return "", false
}

// enabledBefore returns the first enabled key at or before index i.
func enabledBefore(v *collection.View, i int) (collection.Key, bool) {
	if i >= v.Len() {
		i = v.Len() - 1
	}
	for ; i >= 0; i-- {
		n, _ := v.At(i)
		if !n.Disabled {
			return n.Key, true
		}
	}
	return "", false
}
