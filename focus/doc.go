// Package focus owns the focused-key state of a collection component and the
// focus-recovery algorithm that runs when selected items are deleted.
//
// # Two-Phase Removal
//
// Removal crosses a render boundary: the engine decides which keys should
// go, but the host performs the deletion and only then supplies a new
// collection snapshot. Focus therefore cannot be moved synchronously: the
// recovery target may not exist as a focusable item until the host
// re-renders. The Coordinator models this as an explicit two-phase commit:
//
//  1. RecoveryTarget computes, purely, where focus should land once the
//     removed keys are gone: the first survivor below the removed range,
//     else the first survivor above it, else nothing.
//  2. Stage records that target. The next SetView applies it, falling back
//     to the first enabled key when the host deleted differently than
//     requested, and the staged value is consumed.
//
// There are no timers or deferred callbacks; both phases are plain function
// calls driven by the host's own render cycle. A staged target that is
// overtaken by an explicit focus change before the snapshot arrives is
// discarded, so a stale key can never be applied.
package focus
