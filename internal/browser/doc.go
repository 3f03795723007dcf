// Package browser is the demo host for the selkit engine: a small bubbletea
// file-browser that wires a router, renders selection and focus state, and
// commits removals by handing the engine a fresh collection snapshot.
//
// It exists to exercise every engine pathway end to end (navigation in list
// and grid layouts, shift-range extension, select-all, typeahead, and the
// two-phase removal commit) and doubles as reference wiring for real hosts.
// Application chords (quit, layout, theme) use control keys so plain runes
// remain free for typeahead.
package browser
