package selection

import (
	"github.com/five82/selkit/collection"
)

// Manager owns the selection state for one collection component: the set of
// selected keys, the selection mode, and the anchor key that pivots
// shift-range extension.
//
// Every operation validates against the current snapshot and silently
// no-ops on stale keys, disabled keys, and mode mismatches; the engine never
// raises on bad input because keystroke handlers routinely race item removal
// within a render tick. A mutating call that changes the resulting set
// invokes the change callback exactly once; no-op calls invoke nothing.
type Manager struct {
	mode          Mode
	disallowEmpty bool
	changed       func([]collection.Key)

	view     *collection.View
	selected map[collection.Key]struct{}
	anchor   collection.Key
	anchored bool
}

// Option configures a Manager at construction.
type Option func(*Manager)

// WithChangeFunc registers fn to receive the selected keys, in collection
// order, after each call that changes the selected set.
func WithChangeFunc(fn func([]collection.Key)) Option {
	return func(m *Manager) { m.changed = fn }
}

// WithDisallowEmpty prevents operations from emptying a non-empty selection.
// Clearing and toggling-off the last selected item become no-ops; snapshot
// revalidation may still empty the set when the items themselves vanish.
func WithDisallowEmpty() Option {
	return func(m *Manager) { m.disallowEmpty = true }
}

// NewManager returns a Manager in the given mode with an empty selection.
func NewManager(mode Mode, opts ...Option) *Manager {
	m := &Manager{
		mode:     mode,
		selected: make(map[collection.Key]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Mode returns the selection mode.
func (m *Manager) Mode() Mode { return m.mode }

// IsSelected reports whether k is currently selected.
func (m *Manager) IsSelected(k collection.Key) bool {
	_, ok := m.selected[k]
	return ok
}

// Count returns the number of selected keys.
func (m *Manager) Count() int { return len(m.selected) }

// AnchorKey returns the range-extension pivot, if one is set. The anchor is
// always a member of the selected set.
func (m *Manager) AnchorKey() (collection.Key, bool) {
	return m.anchor, m.anchored
}

// SelectedKeys returns the selected keys in collection order. Keys selected
// against an older snapshot but missing from the current one are omitted
// (they are pruned on SetView, so this is belt and braces for callers that
// read between snapshots).
func (m *Manager) SelectedKeys() []collection.Key {
	if len(m.selected) == 0 {
		return nil
	}
	keys := make([]collection.Key, 0, len(m.selected))
	for _, k := range m.view.Keys() {
		if m.IsSelected(k) {
			keys = append(keys, k)
		}
	}
	return keys
}

// SetView revalidates the selection against a new snapshot: keys that are
// absent or disabled in v are dropped, and the anchor is cleared if its item
// vanished. Emits one change notification iff the set changed.
func (m *Manager) SetView(v *collection.View) {
	m.view = v
	dropped := false
	for k := range m.selected {
		if n, ok := v.Node(k); !ok || n.Disabled {
			delete(m.selected, k)
			dropped = true
		}
	}
	if m.anchored && !m.IsSelected(m.anchor) {
		m.anchor = ""
		m.anchored = false
	}
	if dropped {
		m.emit()
	}
}

// Replace makes k the sole selected item and the anchor. No-op when the mode
// is none or k is stale or disabled.
func (m *Manager) Replace(k collection.Key) {
	if m.mode == ModeNone || !m.selectable(k) {
		return
	}
	changed := len(m.selected) != 1 || !m.IsSelected(k)
	for key := range m.selected {
		delete(m.selected, key)
	}
	m.selected[k] = struct{}{}
	m.setAnchor(k)
	if changed {
		m.emit()
	}
}

// Toggle flips k's membership. In single mode this selects k, or clears the
// selection when k was already the selected item. The anchor follows k when
// it is added and is dropped when k's removal orphans it.
func (m *Manager) Toggle(k collection.Key) {
	if m.mode == ModeNone || !m.selectable(k) {
		return
	}
	if m.IsSelected(k) {
		if m.disallowEmpty && len(m.selected) == 1 {
			return
		}
		delete(m.selected, k)
		if m.anchored && m.anchor == k {
			m.anchor = ""
			m.anchored = false
		}
		m.emit()
		return
	}
	if m.mode == ModeSingle {
		m.Replace(k)
		return
	}
	m.selected[k] = struct{}{}
	m.setAnchor(k)
	m.emit()
}

// Extend selects the inclusive range between the anchor and to, replacing
// the entire prior selection (list-box semantics: range extension wins over
// earlier discrete toggles). The range is taken in collection order, so it is
// topology-independent: extending across a grid row boundary selects every
// in-order item between the two endpoints. Disabled items within the range
// are excluded. With no anchor set, Extend degenerates to Replace(to). Valid
// only in multiple mode.
func (m *Manager) Extend(to collection.Key) {
	if m.mode != ModeMultiple || !m.selectable(to) {
		return
	}
	if !m.anchored {
		m.Replace(to)
		return
	}

	rng, ok := m.orderedRange(m.anchor, to)
	if !ok {
		return
	}

	changed := len(rng) != len(m.selected)
	if !changed {
		for _, k := range rng {
			if !m.IsSelected(k) {
				changed = true
				break
			}
		}
	}

	for key := range m.selected {
		delete(m.selected, key)
	}
	for _, k := range rng {
		m.selected[k] = struct{}{}
	}
	if changed {
		m.emit()
	}
}

// SelectAll selects every enabled key. Valid only in multiple mode. The
// anchor is left where it was.
func (m *Manager) SelectAll() {
	if m.mode != ModeMultiple {
		return
	}
	all := m.view.EnabledKeys()
	if len(all) == len(m.selected) {
		return
	}
	for _, k := range all {
		m.selected[k] = struct{}{}
	}
	m.emit()
}

// Clear empties the selection and drops the anchor.
func (m *Manager) Clear() {
	if len(m.selected) == 0 || m.disallowEmpty {
		return
	}
	for key := range m.selected {
		delete(m.selected, key)
	}
	m.anchor = ""
	m.anchored = false
	m.emit()
}

func (m *Manager) selectable(k collection.Key) bool {
	n, ok := m.view.Node(k)
	return ok && !n.Disabled
}

func (m *Manager) setAnchor(k collection.Key) {
	m.anchor = k
	m.anchored = true
}

func (m *Manager) emit() {
	if m.changed != nil {
		m.changed(m.SelectedKeys())
	}
}

// orderedRange collects the enabled keys between from and to, inclusive, in
// snapshot order.
func (m *Manager) orderedRange(from, to collection.Key) ([]collection.Key, bool) {
	lo := m.view.IndexOf(from)
	hi := m.view.IndexOf(to)
	if lo < 0 || hi < 0 {
		return nil, false
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	rng := make([]collection.Key, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		n, _ := m.view.At(i)
		if n.Disabled {
			continue
		}
		rng = append(rng, n.Key)
	}
	return rng, true
}
