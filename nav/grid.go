package nav

import "github.com/five82/selkit/collection"

// Grid resolves adjacency for a fixed-column grid laid out in row-major
// order. Vertical moves stay in the column, horizontal moves stay in the row;
// neither wraps to a neighboring row or column.
type Grid struct {
	view    *collection.View
	columns int
}

// NewGrid returns a grid delegate over v with the given column count. A
// column count below 1 is treated as 1.
func NewGrid(v *collection.View, columns int) *Grid {
	if columns < 1 {
		columns = 1
	}
	return &Grid{view: v, columns: columns}
}

func (g *Grid) KeyAbove(k collection.Key) (collection.Key, bool) {
	return g.columnWalk(k, -1)
}

func (g *Grid) KeyBelow(k collection.Key) (collection.Key, bool) {
	return g.columnWalk(k, +1)
}

func (g *Grid) KeyLeftOf(k collection.Key) (collection.Key, bool) {
	return g.rowWalk(k, -1)
}

func (g *Grid) KeyRightOf(k collection.Key) (collection.Key, bool) {
	return g.rowWalk(k, +1)
}

func (g *Grid) FirstKey() (collection.Key, bool) {
	return enabledAfter(g.view, 0)
}

func (g *Grid) LastKey() (collection.Key, bool) {
	return enabledBefore(g.view, g.view.Len()-1)
}

// KeyPageAbove jumps up to page rows upward within the column.
func (g *Grid) KeyPageAbove(k collection.Key, page int) (collection.Key, bool) {
	return g.columnPage(k, page, -1)
}

// KeyPageBelow jumps up to page rows downward within the column.
func (g *Grid) KeyPageBelow(k collection.Key, page int) (collection.Key, bool) {
	return g.columnPage(k, page, +1)
}

// columnWalk steps one row at a time in dir, staying in the column and
// skipping disabled cells, until an enabled cell or the grid edge.
func (g *Grid) columnWalk(k collection.Key, dir int) (collection.Key, bool) {
	i := g.view.IndexOf(k)
	if i < 0 {
		return "", false
	}
	for j := i + dir*g.columns; j >= 0 && j < g.view.Len(); j += dir * g.columns {
		n, _ := g.view.At(j)
		if !n.Disabled {
			return n.Key, true
		}
	}
	return "", false
}

// rowWalk steps one cell at a time in dir, staying in the row and skipping
// disabled cells, until an enabled cell or the row edge.
func (g *Grid) rowWalk(k collection.Key, dir int) (collection.Key, bool) {
	i := g.view.IndexOf(k)
	if i < 0 {
		return "", false
	}
	row := i / g.columns
	for j := i + dir; j >= 0 && j < g.view.Len() && j/g.columns == row; j += dir {
		n, _ := g.view.At(j)
		if !n.Disabled {
			return n.Key, true
		}
	}
	return "", false
}

func (g *Grid) columnPage(k collection.Key, page, dir int) (collection.Key, bool) {
	if page <= 0 {
		return "", false
	}
	cur := k
	var last collection.Key
	found := false
	for r := 0; r < page; r++ {
		next, ok := g.columnWalk(cur, dir)
		if !ok {
			break
		}
		last = next
		found = true
		cur = next
	}
	return last, found
}
