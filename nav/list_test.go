package nav

import (
	"testing"

	"github.com/five82/selkit/collection"
)

func listView(keys ...string) *collection.View {
	nodes := make([]collection.Node, 0, len(keys))
	for _, k := range keys {
		n := collection.Node{Key: collection.Key(k)}
		// Trailing "!" marks a disabled item, e.g. "b!".
		if last := len(k) - 1; last >= 0 && k[last] == '!' {
			n.Key = collection.Key(k[:last])
			n.Disabled = true
		}
		nodes = append(nodes, n)
	}
	return collection.NewView(nodes)
}

func TestListAdjacency(t *testing.T) {
	l := NewList(listView("a", "b", "c"))

	cases := []struct {
		name  string
		query func(collection.Key) (collection.Key, bool)
		key   collection.Key
		want  collection.Key
		ok    bool
	}{
		{"below_middle", l.KeyBelow, "b", "c", true},
		{"above_middle", l.KeyAbove, "b", "a", true},
		{"below_last", l.KeyBelow, "c", "", false},
		{"above_first", l.KeyAbove, "a", "", false},
		{"right_mirrors_below", l.KeyRightOf, "a", "b", true},
		{"left_mirrors_above", l.KeyLeftOf, "c", "b", true},
		{"stale_key", l.KeyBelow, "zzz", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.query(tc.key)
			if got != tc.want || ok != tc.ok {
				t.Fatalf("got (%q, %v), want (%q, %v)", got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestListSkipsDisabled(t *testing.T) {
	l := NewList(listView("a", "b!", "c"))

	if got, ok := l.KeyBelow("a"); !ok || got != "c" {
		t.Fatalf("KeyBelow(a) = (%q, %v), want (c, true)", got, ok)
	}
	if got, ok := l.KeyAbove("c"); !ok || got != "a" {
		t.Fatalf("KeyAbove(c) = (%q, %v), want (a, true)", got, ok)
	}
}

func TestListFirstLast(t *testing.T) {
	l := NewList(listView("a!", "b", "c", "d!"))

	if got, ok := l.FirstKey(); !ok || got != "b" {
		t.Fatalf("FirstKey = (%q, %v), want (b, true)", got, ok)
	}
	if got, ok := l.LastKey(); !ok || got != "c" {
		t.Fatalf("LastKey = (%q, %v), want (c, true)", got, ok)
	}

	empty := NewList(listView())
	if _, ok := empty.FirstKey(); ok {
		t.Fatalf("FirstKey on empty collection should fail")
	}
	if _, ok := empty.LastKey(); ok {
		t.Fatalf("LastKey on empty collection should fail")
	}

	allDisabled := NewList(listView("a!", "b!"))
	if _, ok := allDisabled.FirstKey(); ok {
		t.Fatalf("FirstKey with no enabled items should fail")
	}
}

func TestListPaging(t *testing.T) {
	l := NewList(listView("a", "b", "c!", "d", "e", "f"))

	// Disabled items do not count as page steps.
	if got, ok := l.KeyPageBelow("a", 3); !ok || got != "e" {
		t.Fatalf("KeyPageBelow(a, 3) = (%q, %v), want (e, true)", got, ok)
	}
	// Clamped at the end when fewer than a page remains.
	if got, ok := l.KeyPageBelow("d", 10); !ok || got != "f" {
		t.Fatalf("KeyPageBelow(d, 10) = (%q, %v), want (f, true)", got, ok)
	}
	if got, ok := l.KeyPageAbove("f", 2); !ok || got != "d" {
		t.Fatalf("KeyPageAbove(f, 2) = (%q, %v), want (d, true)", got, ok)
	}
	if _, ok := l.KeyPageAbove("a", 3); ok {
		t.Fatalf("KeyPageAbove at top should fail like KeyAbove")
	}
	if _, ok := l.KeyPageBelow("a", 0); ok {
		t.Fatalf("zero page size should fail")
	}
}
