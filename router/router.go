package router

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/selkit/collection"
	"github.com/five82/selkit/focus"
	"github.com/five82/selkit/nav"
	"github.com/five82/selkit/selection"
)

// typeaheadGap is the maximum pause between typed runes before the search
// buffer starts over.
const typeaheadGap = time.Second

// Router is the engine facade: it owns a selection.Manager and a
// focus.Coordinator for one collection component and maps incoming key
// messages onto their operations.
//
// HandleKey reports whether the keystroke was consumed. A true result means
// the host must not process the key any further (the terminal analog of
// preventDefault); false leaves the key untouched for the host.
type Router struct {
	cfg  Config
	keys KeyMap

	sel *selection.Manager
	foc *focus.Coordinator

	delegate nav.Delegate

	selChanged      func([]collection.Key)
	focChanged      func(collection.Key, bool)
	removeRequested func([]collection.Key)

	searchBuf  string
	searchTime time.Time
	now        func() time.Time
}

// Option configures a Router at construction.
type Option func(*Router)

// WithKeyMap replaces the default key bindings.
func WithKeyMap(k KeyMap) Option {
	return func(r *Router) { r.keys = k }
}

// WithSelectionChangeFunc registers the host's selection-changed callback.
func WithSelectionChangeFunc(fn func([]collection.Key)) Option {
	return func(r *Router) { r.selChanged = fn }
}

// WithFocusChangeFunc registers the host's focus-changed callback.
func WithFocusChangeFunc(fn func(collection.Key, bool)) Option {
	return func(r *Router) { r.focChanged = fn }
}

// WithRemoveFunc registers the host's remove-requested callback. The host is
// solely responsible for deleting the items and committing a new snapshot
// via SetView.
func WithRemoveFunc(fn func([]collection.Key)) Option {
	return func(r *Router) { r.removeRequested = fn }
}

// withNow overrides the clock; tests only.
func withNow(fn func() time.Time) Option {
	return func(r *Router) { r.now = fn }
}

// New returns a Router for one collection component. The caller must supply
// the first snapshot with SetView before handling keys.
func New(cfg Config, opts ...Option) *Router {
	r := &Router{
		cfg:  cfg,
		keys: DefaultKeyMap(),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}

	selOpts := []selection.Option{}
	if r.selChanged != nil {
		selOpts = append(selOpts, selection.WithChangeFunc(r.selChanged))
	}
	if cfg.DisallowEmptySelection {
		selOpts = append(selOpts, selection.WithDisallowEmpty())
	}
	r.sel = selection.NewManager(cfg.Mode, selOpts...)

	focOpts := []focus.Option{}
	if r.focChanged != nil {
		focOpts = append(focOpts, focus.WithChangeFunc(r.focChanged))
	}
	r.foc = focus.NewCoordinator(focOpts...)

	return r
}

// Selection exposes the selection manager, for hosts that mutate selection
// outside the keyboard pathway (pointer clicks, programmatic selection).
func (r *Router) Selection() *selection.Manager { return r.sel }

// Focus exposes the focus coordinator.
func (r *Router) Focus() *focus.Coordinator { return r.foc }

// KeyMap returns the active key bindings, e.g. to feed a help model.
func (r *Router) KeyMap() KeyMap { return r.keys }

// SetView commits a new collection snapshot along with its delegate.
// Selection is revalidated before focus so that, for one snapshot, the
// selection-changed notification precedes the focus-changed one.
func (r *Router) SetView(v *collection.View, d nav.Delegate) {
	r.delegate = d
	r.sel.SetView(v)
	r.foc.SetView(v)
}

// HandleKey maps one keystroke to an engine operation.
func (r *Router) HandleKey(msg tea.KeyMsg) bool {
	if r.delegate == nil {
		return false
	}

	switch {
	case key.Matches(msg, r.keys.ExtendUp):
		return r.extend(r.delegate.KeyAbove)
	case key.Matches(msg, r.keys.ExtendDown):
		return r.extend(r.delegate.KeyBelow)
	case key.Matches(msg, r.keys.ExtendLeft):
		return r.extend(r.delegate.KeyLeftOf)
	case key.Matches(msg, r.keys.ExtendRight):
		return r.extend(r.delegate.KeyRightOf)

	case key.Matches(msg, r.keys.Toggle):
		// Space doubles as a typeahead rune mid-query.
		if r.searchActive() {
			return r.typeahead(' ')
		}
		return r.toggle()

	case key.Matches(msg, r.keys.Up):
		return r.move(r.delegate.KeyAbove, r.delegate.LastKey)
	case key.Matches(msg, r.keys.Down):
		return r.move(r.delegate.KeyBelow, r.delegate.FirstKey)
	case key.Matches(msg, r.keys.Left):
		return r.move(r.delegate.KeyLeftOf, nil)
	case key.Matches(msg, r.keys.Right):
		return r.move(r.delegate.KeyRightOf, nil)
	case key.Matches(msg, r.keys.First):
		return r.jump(r.delegate.FirstKey)
	case key.Matches(msg, r.keys.Last):
		return r.jump(r.delegate.LastKey)

	case key.Matches(msg, r.keys.PageUp):
		return r.page(false)
	case key.Matches(msg, r.keys.PageDown):
		return r.page(true)

	case key.Matches(msg, r.keys.SelectAll):
		return r.selectAll()
	case key.Matches(msg, r.keys.Clear):
		return r.clear()
	case key.Matches(msg, r.keys.Remove):
		return r.remove()
	}

	if msg.Type == tea.KeyRunes && !msg.Alt && len(msg.Runes) == 1 {
		return r.typeahead(msg.Runes[0])
	}
	return false
}

// move handles a plain directional key. Recognized directional keys are
// always consumed, even at a boundary, so the host's viewport does not
// scroll underneath a stationary focus.
func (r *Router) move(step func(collection.Key) (collection.Key, bool), wrapTo func() (collection.Key, bool)) bool {
	r.resetSearch()
	from, ok := r.foc.FocusedKey()
	if !ok {
		return r.jump(r.delegate.FirstKey)
	}

	next, ok := step(from)
	if !ok && r.cfg.Wrap && wrapTo != nil {
		next, ok = wrapTo()
	}
	if ok {
		r.focusTo(next)
	}
	return true
}

// jump moves focus to an absolute position (first/last).
func (r *Router) jump(to func() (collection.Key, bool)) bool {
	r.resetSearch()
	if k, ok := to(); ok {
		r.focusTo(k)
	}
	return true
}

func (r *Router) page(down bool) bool {
	pager, ok := r.delegate.(nav.Pager)
	if !ok {
		return false
	}
	r.resetSearch()
	from, focused := r.foc.FocusedKey()
	if !focused {
		return r.jump(r.delegate.FirstKey)
	}
	step := pager.KeyPageAbove
	if down {
		step = pager.KeyPageBelow
	}
	if k, ok := step(from, r.cfg.pageSize()); ok {
		r.focusTo(k)
	}
	return true
}

// extend handles a shift-directional key: focus moves and the selection
// extends from the anchor to the new focus. Outside multiple mode the
// selection half is a silent no-op and only focus moves.
func (r *Router) extend(step func(collection.Key) (collection.Key, bool)) bool {
	r.resetSearch()
	from, ok := r.foc.FocusedKey()
	if !ok {
		return r.jump(r.delegate.FirstKey)
	}
	next, ok := step(from)
	if !ok {
		return true
	}
	r.foc.SetFocusVisible(true)
	r.foc.Focus(next)
	r.sel.Extend(next)
	return true
}

func (r *Router) toggle() bool {
	k, ok := r.foc.FocusedKey()
	if !ok || r.sel.Mode() == selection.ModeNone {
		return false
	}
	r.sel.Toggle(k)
	return true
}

func (r *Router) selectAll() bool {
	r.resetSearch()
	if r.sel.Mode() != selection.ModeMultiple {
		return false
	}
	r.sel.SelectAll()
	return true
}

// clear resolves Escape: an active typeahead query is abandoned first; only
// a second Escape clears the selection. With nothing to do (empty selection,
// or a disallow-empty configuration that would turn Clear into a no-op) the
// key passes through so the host can use Escape for its own dismissal logic.
func (r *Router) clear() bool {
	if r.searchActive() {
		r.resetSearch()
		return true
	}
	if r.sel.Count() == 0 || r.cfg.DisallowEmptySelection {
		return false
	}
	r.sel.Clear()
	return true
}

// remove runs the deletion pathway: compute and stage the recovery focus
// target, then hand the doomed keys to the host. No engine state changes
// here; selection and focus are repaired when the host commits the
// post-removal snapshot.
func (r *Router) remove() bool {
	if !r.cfg.AllowsRemoval || r.removeRequested == nil {
		return false
	}
	keys := r.sel.SelectedKeys()
	if len(keys) == 0 {
		return false
	}
	target, ok := r.foc.RecoveryTarget(keys, r.delegate)
	r.foc.Stage(target, ok)
	r.removeRequested(keys)
	return true
}

// typeahead appends ch to the search buffer and moves focus to the first
// label match. Consumed only when the delegate supports searching.
func (r *Router) typeahead(ch rune) bool {
	searcher, ok := r.delegate.(nav.Searcher)
	if !ok {
		return false
	}

	fresh := !r.searchActive()
	if fresh {
		r.searchBuf = ""
	}
	r.searchBuf += string(ch)
	r.searchTime = r.now()

	// A fresh single-rune query searches past the focused item so repeating
	// the rune cycles through matches; a growing query re-anchors one item
	// up so the current match can keep matching.
	from, focused := r.foc.FocusedKey()
	if focused && !fresh {
		from, _ = r.delegate.KeyAbove(from)
	}

	if k, ok := searcher.KeyForSearch(r.searchBuf, from); ok {
		r.focusTo(k)
	}
	return true
}

func (r *Router) focusTo(k collection.Key) {
	r.foc.SetFocusVisible(true)
	r.foc.Focus(k)
	if r.cfg.SelectionFollowsFocus {
		r.sel.Replace(k)
	}
}

func (r *Router) searchActive() bool {
	return r.searchBuf != "" && r.now().Sub(r.searchTime) <= typeaheadGap
}

func (r *Router) resetSearch() {
	r.searchBuf = ""
}
