// Package selection owns the selection state of a collection component:
// which keys are selected, the selection mode, and the anchor that pivots
// shift-range extension.
//
// # Ownership And Lifecycle
//
// Each collection component constructs its own Manager and keeps it for the
// component's lifetime; there is no shared or process-wide selection state.
// The host is expected to call SetView with every fresh collection snapshot
// so the selected set is repaired against the surviving key set; invariants
// are restored there, never left dangling.
//
// # Invariants
//
//   - Selected keys are always members of the current snapshot and never
//     disabled.
//   - In single mode the selected set holds at most one key.
//   - In none mode the selected set is always empty.
//   - The anchor, when set, is a member of the selected set.
//
// # Notification Discipline
//
// A Manager configured with WithChangeFunc invokes the callback exactly once
// per mutating call that changes the selected set, after the new state is
// fully applied. Calls that change nothing, such as toggling a disabled key
// or clearing an already-empty selection, invoke nothing, so hosts can
// re-render directly from the callback without debouncing.
package selection
