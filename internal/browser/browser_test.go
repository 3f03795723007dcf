package browser

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/selkit/collection"
	"github.com/five82/selkit/internal/config"
)

func testConfig() config.Config {
	return config.Config{
		Theme:         "dark",
		SelectionMode: "multiple",
		Columns:       1,
	}
}

func TestRemoveEntries(t *testing.T) {
	entries := []entry{
		{key: "a", name: "one"},
		{key: "b", name: "two"},
		{key: "c", name: "three"},
	}

	kept := removeEntries(entries, []collection.Key{"b"})
	if len(kept) != 2 || kept[0].key != "a" || kept[1].key != "c" {
		t.Fatalf("kept = %v, want [a c] order preserved", kept)
	}

	kept = removeEntries(kept, nil)
	if len(kept) != 2 {
		t.Fatalf("removing nothing should keep everything")
	}
}

func TestSnapshotCarriesDisabledAndLabels(t *testing.T) {
	entries := []entry{
		{key: "a", name: "one"},
		{key: "b", name: "two", disabled: true},
	}

	v := snapshot(entries)
	if v.Len() != 2 {
		t.Fatalf("Len = %d, want 2", v.Len())
	}
	if !v.Disabled("b") || v.Disabled("a") {
		t.Fatalf("disabled flags not carried")
	}
	if n, _ := v.Node("a"); n.Label != "one" {
		t.Fatalf("Label = %q, want one", n.Label)
	}
}

func TestModelRemovalRoundTrip(t *testing.T) {
	m := NewModel(testConfig(), "")
	before := len(m.entries)

	// Focus the first item, select it, delete it.
	press(m, tea.KeyMsg{Type: tea.KeyDown})
	press(m, tea.KeyMsg{Type: tea.KeySpace})
	press(m, tea.KeyMsg{Type: tea.KeyDelete})

	if len(m.entries) != before-1 {
		t.Fatalf("entries = %d, want %d (removal committed)", len(m.entries), before-1)
	}
	if m.doomed != nil {
		t.Fatalf("doomed keys should be consumed by the commit")
	}
	if _, ok := m.engine.Focus().FocusedKey(); !ok {
		t.Fatalf("focus should recover onto a survivor")
	}
	if m.engine.Selection().Count() != 0 {
		t.Fatalf("selection should be empty after removal")
	}
}

func TestModelLayoutToggleKeepsEngineState(t *testing.T) {
	m := NewModel(testConfig(), "")

	press(m, tea.KeyMsg{Type: tea.KeyDown})
	press(m, tea.KeyMsg{Type: tea.KeySpace})
	selected := m.engine.Selection().SelectedKeys()

	press(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.columns <= 1 {
		t.Fatalf("tab should switch to grid layout")
	}
	got := m.engine.Selection().SelectedKeys()
	if len(got) != len(selected) || got[0] != selected[0] {
		t.Fatalf("selection should survive a layout toggle: %v vs %v", got, selected)
	}
}

func TestViewRendersMarkers(t *testing.T) {
	m := NewModel(testConfig(), "")
	m.width = 80
	m.height = 24

	press(m, tea.KeyMsg{Type: tea.KeyDown})
	press(m, tea.KeyMsg{Type: tea.KeySpace})

	out := m.View()
	if !strings.Contains(out, "✓") {
		t.Fatalf("view should mark the selected entry")
	}
	if !strings.Contains(out, "selkit browser") {
		t.Fatalf("view should render the header")
	}
}

func TestThemeLookup(t *testing.T) {
	if got := themeByName("light").Name; got != "light" {
		t.Fatalf("themeByName(light) = %q", got)
	}
	if got := themeByName("nope").Name; got != "dark" {
		t.Fatalf("unknown theme should default to dark, got %q", got)
	}
	if got := nextTheme("dark").Name; got != "light" {
		t.Fatalf("nextTheme(dark) = %q, want light", got)
	}
	if got := nextTheme("light").Name; got != "dark" {
		t.Fatalf("nextTheme(light) = %q, want dark (cycles)", got)
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"fits", "abc", 5, "abc"},
		{"exact", "abcde", 5, "abcde"},
		{"cut", "abcdef", 5, "abcd…"},
		{"one", "abc", 1, "…"},
		{"zero_means_unlimited", "abc", 0, "abc"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := truncate(tc.in, tc.limit); got != tc.want {
				t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
			}
		})
	}
}

func press(m *Model, msg tea.KeyMsg) {
	_, _ = m.Update(msg)
}
