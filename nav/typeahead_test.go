package nav

import (
	"testing"

	"github.com/five82/selkit/collection"
)

func labeledView() *collection.View {
	return collection.NewView([]collection.Node{
		{Key: "1", Label: "Documents"},
		{Key: "2", Label: "Downloads"},
		{Key: "3", Label: "desktop", Disabled: true},
		{Key: "4", Label: "Music"},
		{Key: "5", Label: "Pictures"},
	})
}

func TestSearchPrefixMatch(t *testing.T) {
	l := NewList(labeledView())

	cases := []struct {
		name  string
		query string
		from  collection.Key
		want  collection.Key
		ok    bool
	}{
		{"prefix_from_start", "do", "", "1", true},
		{"case_insensitive", "MU", "", "4", true},
		{"cycles_past_from", "do", "1", "2", true},
		{"wraps_around", "do", "4", "1", true},
		{"skips_disabled", "de", "", "", false}, // only desktop starts with "de" but it is disabled
		{"empty_query", "", "", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := l.KeyForSearch(tc.query, tc.from)
			if tc.name == "skips_disabled" {
				// The fuzzy fallback may still land on an enabled near-match;
				// it must never land on the disabled item.
				if ok && got == "3" {
					t.Fatalf("search landed on disabled key")
				}
				return
			}
			if got != tc.want || ok != tc.ok {
				t.Fatalf("KeyForSearch(%q, %q) = (%q, %v), want (%q, %v)",
					tc.query, tc.from, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestSearchFuzzyFallback(t *testing.T) {
	l := NewList(labeledView())

	// "ducum" has no prefix match; Documents is one edit away on the typed
	// prefix ("docum") and within the tolerance for a 5-rune query.
	if got, ok := l.KeyForSearch("ducum", ""); !ok || got != "1" {
		t.Fatalf("KeyForSearch(ducum) = (%q, %v), want (1, true)", got, ok)
	}

	// Nothing is anywhere near "zzzzz".
	if _, ok := l.KeyForSearch("zzzzz", ""); ok {
		t.Fatalf("KeyForSearch(zzzzz) should fail")
	}
}

func TestSearchIgnoresUnlabeled(t *testing.T) {
	l := NewList(collection.NewView([]collection.Node{
		{Key: "a"},
		{Key: "b", Label: "beta"},
	}))

	if got, ok := l.KeyForSearch("b", ""); !ok || got != "b" {
		t.Fatalf("KeyForSearch(b) = (%q, %v), want (b, true)", got, ok)
	}
}
