package browser

import (
	"github.com/google/uuid"

	"github.com/five82/selkit/collection"
)

// entry is one browsable item. Keys are uuids so removal and reordering
// never alias two entries; the engine treats them as opaque.
type entry struct {
	key      collection.Key
	name     string
	disabled bool
}

func newEntry(name string, disabled bool) entry {
	return entry{
		key:      collection.Key(uuid.NewString()),
		name:     name,
		disabled: disabled,
	}
}

// sampleEntries returns the demo data set. A few entries are disabled to
// show navigation skipping over them.
func sampleEntries() []entry {
	return []entry{
		newEntry("Documents", false),
		newEntry("Downloads", false),
		newEntry("Music", false),
		newEntry("Pictures", false),
		newEntry("Videos", false),
		newEntry("lost+found", true),
		newEntry("notes.md", false),
		newEntry("budget.toml", false),
		newEntry("archive.tar.gz", false),
		newEntry("node_modules", true),
		newEntry("scratch.go", false),
		newEntry("todo.txt", false),
	}
}

// snapshot builds a fresh collection view from the current entries.
func snapshot(entries []entry) *collection.View {
	nodes := make([]collection.Node, len(entries))
	for i, e := range entries {
		nodes[i] = collection.Node{
			Key:      e.key,
			Disabled: e.disabled,
			Label:    e.name,
		}
	}
	return collection.NewView(nodes)
}

// removeEntries deletes the given keys from entries, preserving order.
func removeEntries(entries []entry, keys []collection.Key) []entry {
	doomed := make(map[collection.Key]struct{}, len(keys))
	for _, k := range keys {
		doomed[k] = struct{}{}
	}
	kept := entries[:0]
	for _, e := range entries {
		if _, gone := doomed[e.key]; gone {
			continue
		}
		kept = append(kept, e)
	}
	return kept
}
