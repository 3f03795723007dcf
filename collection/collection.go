package collection

// Key identifies an item within a collection. Keys are opaque: the engine
// never parses or orders them, it only compares them and looks them up in the
// current View. Any string is a valid Key, including the empty string.
type Key string

// Node describes one item in a collection snapshot.
//
// Level and HasChildren only matter to tree-shaped delegates; flat lists and
// grids leave them zero. Label feeds typeahead search and may be empty when
// the host does not want the item reachable by typing.
type Node struct {
	Key         Key
	Disabled    bool
	Level       int
	HasChildren bool
	Label       string
}

// View is an immutable, ordered snapshot of a collection. The host builds a
// fresh View whenever items are added, removed, or reordered and hands it to
// the engine; the engine never mutates it. Lookups by key and by index are
// O(1).
type View struct {
	nodes []Node
	index map[Key]int
}

// NewView builds a snapshot from nodes in presentation order. The slice is
// copied, so the caller may reuse or mutate it afterwards. When the same key
// appears more than once the first occurrence wins.
func NewView(nodes []Node) *View {
	v := &View{
		nodes: make([]Node, 0, len(nodes)),
		index: make(map[Key]int, len(nodes)),
	}
	for _, n := range nodes {
		if _, dup := v.index[n.Key]; dup {
			continue
		}
		v.index[n.Key] = len(v.nodes)
		v.nodes = append(v.nodes, n)
	}
	return v
}

// Len returns the number of items in the snapshot.
func (v *View) Len() int {
	if v == nil {
		return 0
	}
	return len(v.nodes)
}

// At returns the node at position i in presentation order.
func (v *View) At(i int) (Node, bool) {
	if v == nil || i < 0 || i >= len(v.nodes) {
		return Node{}, false
	}
	return v.nodes[i], true
}

// IndexOf returns the position of k, or -1 when k is not in the snapshot.
func (v *View) IndexOf(k Key) int {
	if v == nil {
		return -1
	}
	i, ok := v.index[k]
	if !ok {
		return -1
	}
	return i
}

// Contains reports whether k is present in the snapshot.
func (v *View) Contains(k Key) bool {
	return v.IndexOf(k) >= 0
}

// Node returns the node for k.
func (v *View) Node(k Key) (Node, bool) {
	i := v.IndexOf(k)
	if i < 0 {
		return Node{}, false
	}
	return v.nodes[i], true
}

// Disabled reports whether k is present and marked disabled.
func (v *View) Disabled(k Key) bool {
	n, ok := v.Node(k)
	return ok && n.Disabled
}

// Keys returns all keys in presentation order.
func (v *View) Keys() []Key {
	if v == nil {
		return nil
	}
	keys := make([]Key, len(v.nodes))
	for i, n := range v.nodes {
		keys[i] = n.Key
	}
	return keys
}

// EnabledKeys returns the keys of all non-disabled items in presentation
// order.
func (v *View) EnabledKeys() []Key {
	if v == nil {
		return nil
	}
	keys := make([]Key, 0, len(v.nodes))
	for _, n := range v.nodes {
		if n.Disabled {
			continue
		}
		keys = append(keys, n.Key)
	}
	return keys
}
