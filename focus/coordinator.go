package focus

import (
	"github.com/five82/selkit/collection"
	"github.com/five82/selkit/nav"
)

// Coordinator owns the single focused key of a collection component and
// keeps it valid across snapshot replacements: focus is repaired onto a
// surviving item, or dropped when the collection empties, but never left
// pointing at a key the current snapshot does not contain.
type Coordinator struct {
	changed func(collection.Key, bool)

	view    *collection.View
	focused collection.Key
	active  bool
	visible bool

	// Staged focus target computed ahead of a removal; applied exactly once
	// by the next SetView and discarded by any focus mutation before that.
	staged       collection.Key
	stagedActive bool
	stagedSet    bool
}

// Option configures a Coordinator at construction.
type Option func(*Coordinator)

// WithChangeFunc registers fn to be called whenever the focused key changes.
// ok=false reports that no item holds focus (empty collection); hosts then
// treat the container itself as the focus target.
func WithChangeFunc(fn func(k collection.Key, ok bool)) Option {
	return func(c *Coordinator) { c.changed = fn }
}

// NewCoordinator returns a Coordinator with no focused key.
func NewCoordinator(opts ...Option) *Coordinator {
	c := &Coordinator{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FocusedKey returns the currently focused key, if any.
func (c *Coordinator) FocusedKey() (collection.Key, bool) {
	return c.focused, c.active
}

// IsFocusVisible reports whether the focus ring should be drawn. Keyboard
// interaction turns it on; hosts may turn it off on pointer interaction.
func (c *Coordinator) IsFocusVisible() bool { return c.visible }

// SetFocusVisible sets the focus-ring visibility flag.
func (c *Coordinator) SetFocusVisible(v bool) { c.visible = v }

// Focus moves focus to k. Stale and disabled keys are ignored. Any staged
// focus target is discarded: an explicit move supersedes a pending removal
// computation.
func (c *Coordinator) Focus(k collection.Key) {
	if n, ok := c.view.Node(k); !ok || n.Disabled {
		return
	}
	c.dropStaged()
	c.set(k, true)
}

// Blur drops focus entirely, along with any staged target.
func (c *Coordinator) Blur() {
	c.dropStaged()
	c.set("", false)
}

// Stage records a focus target to be applied when the next snapshot arrives.
// It mirrors delegate results: ok=false stages "no focus", used when a
// removal is expected to empty the collection. Staging does not touch the
// live focus; the host still renders the old snapshot until it commits the
// removal.
func (c *Coordinator) Stage(k collection.Key, ok bool) {
	c.staged = k
	c.stagedActive = ok
	c.stagedSet = true
}

// RecoveryTarget computes where focus should land after the given keys are
// removed: the first survivor below the bottom of the removed range, else
// the first survivor above its top, else nothing. Pure; the caller stages
// the result and emits the removal request to the host.
func (c *Coordinator) RecoveryTarget(toRemove []collection.Key, d nav.Delegate) (collection.Key, bool) {
	if len(toRemove) == 0 || d == nil {
		return "", false
	}

	removed := make(map[collection.Key]struct{}, len(toRemove))
	first, last := -1, -1
	var firstKey, lastKey collection.Key
	for _, k := range toRemove {
		i := c.view.IndexOf(k)
		if i < 0 {
			continue
		}
		removed[k] = struct{}{}
		if first < 0 || i < first {
			first, firstKey = i, k
		}
		if i > last {
			last, lastKey = i, k
		}
	}
	if first < 0 {
		return "", false
	}

	if k, ok := survivor(lastKey, removed, d.KeyBelow, c.view.Len()); ok {
		return k, true
	}
	return survivor(firstKey, removed, d.KeyAbove, c.view.Len())
}

// SetView revalidates focus against a new snapshot. A staged target takes
// priority: it is applied if the new snapshot still contains it, otherwise
// focus falls back to the first enabled key (or to nothing when the
// collection emptied). Without a staged target, dangling focus is repaired
// to the nearest surviving enabled key, scanning forward from the old
// position and then backward.
func (c *Coordinator) SetView(v *collection.View) {
	old := c.view
	c.view = v

	if c.stagedSet {
		k, ok := c.staged, c.stagedActive
		c.dropStaged()
		if ok && !v.Disabled(k) && v.Contains(k) {
			c.set(k, true)
			return
		}
		k, ok = firstEnabled(v)
		c.set(k, ok)
		return
	}

	if !c.active {
		return
	}
	if v.Contains(c.focused) && !v.Disabled(c.focused) {
		return
	}
	c.set(nearestSurvivor(old, v, c.focused))
}

func (c *Coordinator) set(k collection.Key, ok bool) {
	if c.active == ok && c.focused == k {
		return
	}
	c.focused = k
	c.active = ok
	if c.changed != nil {
		c.changed(k, ok)
	}
}

func (c *Coordinator) dropStaged() {
	c.staged = ""
	c.stagedActive = false
	c.stagedSet = false
}

// survivor walks step from k until it reaches a key outside the removed set.
// The delegate already skips disabled keys.
func survivor(k collection.Key, removed map[collection.Key]struct{}, step func(collection.Key) (collection.Key, bool), maxSteps int) (collection.Key, bool) {
	cur := k
	for i := 0; i < maxSteps; i++ {
		next, ok := step(cur)
		if !ok {
			return "", false
		}
		if _, gone := removed[next]; !gone {
			return next, true
		}
		cur = next
	}
	return "", false
}

// nearestSurvivor finds the enabled key in next closest to where k sat in
// old, preferring the forward direction.
func nearestSurvivor(old, next *collection.View, k collection.Key) (collection.Key, bool) {
	at := old.IndexOf(k)
	if at < 0 {
		return firstEnabled(next)
	}
	for i := at + 1; i < old.Len(); i++ {
		if n, _ := old.At(i); next.Contains(n.Key) && !next.Disabled(n.Key) {
			return n.Key, true
		}
	}
	for i := at - 1; i >= 0; i-- {
		if n, _ := old.At(i); next.Contains(n.Key) && !next.Disabled(n.Key) {
			return n.Key, true
		}
	}
	return firstEnabled(next)
}

func firstEnabled(v *collection.View) (collection.Key, bool) {
	for i := 0; i < v.Len(); i++ {
		if n, _ := v.At(i); !n.Disabled {
			return n.Key, true
		}
	}
	return "", false
}
