package nav

import "github.com/five82/selkit/collection"

// List resolves adjacency for a flat, single-column (or single-row)
// collection. Left/right mirror above/below so the same delegate serves both
// vertical and horizontal lists; the router decides which axis a physical
// arrow key maps to.
type List struct {
	view *collection.View
}

// NewList returns a list delegate over v.
func NewList(v *collection.View) *List {
	return &List{view: v}
}

func (l *List) KeyAbove(k collection.Key) (collection.Key, bool) {
	i := l.view.IndexOf(k)
	if i < 0 {
		return "", false
	}
	return enabledBefore(l.view, i-1)
}

func (l *List) KeyBelow(k collection.Key) (collection.Key, bool) {
	i := l.view.IndexOf(k)
	if i < 0 {
		return "", false
	}
	return enabledAfter(l.view, i+1)
}

func (l *List) KeyLeftOf(k collection.Key) (collection.Key, bool) {
	return l.KeyAbove(k)
}

func (l *List) KeyRightOf(k collection.Key) (collection.Key, bool) {
	return l.KeyBelow(k)
}

func (l *List) FirstKey() (collection.Key, bool) {
	return enabledAfter(l.view, 0)
}

func (l *List) LastKey() (collection.Key, bool) {
	return enabledBefore(l.view, l.view.Len()-1)
}

// KeyPageAbove jumps up to page enabled keys upward, clamping at the first.
func (l *List) KeyPageAbove(k collection.Key, page int) (collection.Key, bool) {
	return pageWalk(l.view, k, page, -1)
}

// KeyPageBelow jumps up to page enabled keys downward, clamping at the last.
func (l *List) KeyPageBelow(k collection.Key, page int) (collection.Key, bool) {
	return pageWalk(l.view, k, page, +1)
}

// KeyForSearch resolves typeahead queries against node labels.
func (l *List) KeyForSearch(query string, from collection.Key) (collection.Key, bool) {
	return searchLabels(l.view, query, from)
}

// pageWalk moves up to page enabled steps in the given direction and returns
// the furthest enabled key reached. A key with no enabled neighbor in that
// direction stays put (ok=false, matching single-step boundary behavior).
func pageWalk(v *collection.View, k collection.Key, page, dir int) (collection.Key, bool) {
	i := v.IndexOf(k)
	if i < 0 || page <= 0 {
		return "", false
	}
	var last collection.Key
	found := false
	steps := 0
	for j := i + dir; j >= 0 && j < v.Len() && steps < page; j += dir {
		n, _ := v.At(j)
		if n.Disabled {
			continue
		}
		last = n.Key
		found = true
		steps++
	}
	return last, found
}
