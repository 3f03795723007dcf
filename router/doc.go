// Package router maps keyboard input onto selection and focus operations.
// It is the engine facade: a Router owns the selection.Manager and
// focus.Coordinator for one collection component, and a host drives the
// whole engine through two calls: SetView with each fresh snapshot, and
// HandleKey with each key message.
//
// Dispatch is stateless per keystroke: every key message resolves to exactly
// one action (navigate, extend, toggle, select-all, clear, remove, typeahead)
// or to none, in which case HandleKey returns false and the host handles the
// key itself. The only carried state besides selection and focus is the
// typeahead buffer, which expires by timestamp comparison on the next rune;
// there are no timers.
//
// Key bindings follow the bubbles key idiom and can be replaced wholesale
// with WithKeyMap; KeyMap satisfies the bubbles help interfaces so hosts can
// render the engine's bindings in their help footer.
package router
