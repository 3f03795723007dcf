package nav

import "github.com/five82/selkit/collection"

// Tree resolves adjacency for a flattened tree: nodes appear in depth-first
// order with their nesting depth in Node.Level. Up/down walk the flat order;
// left resolves the nearest enabled ancestor and right the first enabled
// child, which is how collapse/expand-style navigation reads a tree.
type Tree struct {
	view *collection.View
}

// NewTree returns a tree delegate over v.
func NewTree(v *collection.View) *Tree {
	return &Tree{view: v}
}

func (t *Tree) KeyAbove(k collection.Key) (collection.Key, bool) {
	i := t.view.IndexOf(k)
	if i < 0 {
		return "", false
	}
	return enabledBefore(t.view, i-1)
}

func (t *Tree) KeyBelow(k collection.Key) (collection.Key, bool) {
	i := t.view.IndexOf(k)
	if i < 0 {
		return "", false
	}
	return enabledAfter(t.view, i+1)
}

// KeyLeftOf returns the nearest enabled ancestor of k: scanning upward, the
// first enabled node with a smaller level. A disabled parent is skipped in
// favor of the grandparent.
func (t *Tree) KeyLeftOf(k collection.Key) (collection.Key, bool) {
	i := t.view.IndexOf(k)
	if i < 0 {
		return "", false
	}
	cur, _ := t.view.At(i)
	level := cur.Level
	for j := i - 1; j >= 0; j-- {
		n, _ := t.view.At(j)
		if n.Level >= level {
			continue
		}
		level = n.Level
		if !n.Disabled {
			return n.Key, true
		}
	}
	return "", false
}

// KeyRightOf returns the first enabled direct child of k. The scan covers
// k's descendant run only; it stops at the first following node at k's level
// or shallower.
func (t *Tree) KeyRightOf(k collection.Key) (collection.Key, bool) {
	i := t.view.IndexOf(k)
	if i < 0 {
		return "", false
	}
	cur, _ := t.view.At(i)
	for j := i + 1; j < t.view.Len(); j++ {
		n, _ := t.view.At(j)
		if n.Level <= cur.Level {
			break
		}
		if n.Level == cur.Level+1 && !n.Disabled {
			return n.Key, true
		}
	}
	return "", false
}

func (t *Tree) FirstKey() (collection.Key, bool) {
	return enabledAfter(t.view, 0)
}

func (t *Tree) LastKey() (collection.Key, bool) {
	return enabledBefore(t.view, t.view.Len()-1)
}

// KeyPageAbove jumps up to page enabled keys upward in the flat order.
func (t *Tree) KeyPageAbove(k collection.Key, page int) (collection.Key, bool) {
	return pageWalk(t.view, k, page, -1)
}

// KeyPageBelow jumps up to page enabled keys downward in the flat order.
func (t *Tree) KeyPageBelow(k collection.Key, page int) (collection.Key, bool) {
	return pageWalk(t.view, k, page, +1)
}

// KeyForSearch resolves typeahead queries against node labels.
func (t *Tree) KeyForSearch(query string, from collection.Key) (collection.Key, bool) {
	return searchLabels(t.view, query, from)
}
