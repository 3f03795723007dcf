package nav

import (
	"testing"

	"github.com/five82/selkit/collection"
)

// docs
//
//	guide
//	  intro
//	  setup (disabled)
//	api
//	  types
func testTree() *Tree {
	return NewTree(collection.NewView([]collection.Node{
		{Key: "docs", Level: 0, HasChildren: true},
		{Key: "guide", Level: 1, HasChildren: true},
		{Key: "intro", Level: 2},
		{Key: "setup", Level: 2, Disabled: true},
		{Key: "api", Level: 0, HasChildren: true},
		{Key: "types", Level: 1},
	}))
}

func TestTreeVerticalAdjacency(t *testing.T) {
	tr := testTree()

	if got, ok := tr.KeyBelow("intro"); !ok || got != "api" {
		t.Fatalf("KeyBelow(intro) = (%q, %v), want (api, true): disabled sibling skipped", got, ok)
	}
	if got, ok := tr.KeyAbove("api"); !ok || got != "intro" {
		t.Fatalf("KeyAbove(api) = (%q, %v), want (intro, true)", got, ok)
	}
	if _, ok := tr.KeyAbove("docs"); ok {
		t.Fatalf("KeyAbove at root should fail")
	}
}

func TestTreeAncestorAndChild(t *testing.T) {
	tr := testTree()

	cases := []struct {
		name  string
		query func(collection.Key) (collection.Key, bool)
		key   collection.Key
		want  collection.Key
		ok    bool
	}{
		{"left_to_parent", tr.KeyLeftOf, "intro", "guide", true},
		{"left_from_root", tr.KeyLeftOf, "docs", "", false},
		{"right_to_first_child", tr.KeyRightOf, "docs", "guide", true},
		{"right_first_enabled_child", tr.KeyRightOf, "guide", "intro", true},
		{"right_leaf", tr.KeyRightOf, "types", "", false},
		{"right_stops_at_sibling", tr.KeyRightOf, "api", "types", true},
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

func TestTreeDisabledAncestorSkipped(t *testing.T) {
	tr := NewTree(collection.NewView([]collection.Node{
		{Key: "root", Level: 0, HasChildren: true},
		{Key: "mid", Level: 1, Disabled: true, HasChildren: true},
		{Key: "leaf", Level: 2},
	}))

	if got, ok := tr.KeyLeftOf("leaf"); !ok || got != "root" {
		t.Fatalf("KeyLeftOf(leaf) = (%q, %v), want (root, true): disabled parent skipped", got, ok)
	}
}
