package router

import "github.com/five82/selkit/selection"

const defaultPageSize = 10

// Config describes the behavior of one collection component's engine.
type Config struct {
	// Mode is the selection mode for the component.
	Mode selection.Mode

	// DisallowEmptySelection prevents keyboard operations from emptying a
	// non-empty selection.
	DisallowEmptySelection bool

	// SelectionFollowsFocus makes plain directional navigation also replace
	// the selection with the newly focused item. Shift-extension and
	// discrete toggles behave the same either way.
	SelectionFollowsFocus bool

	// AllowsRemoval enables the Delete/Backspace pathway. Without it the
	// removal keys are passed through unhandled.
	AllowsRemoval bool

	// Wrap makes navigation wrap from the last item to the first and back.
	// Off by default: boundary keystrokes leave focus where it is.
	Wrap bool

	// PageSize is the row count used for PageUp/PageDown. Zero means 10.
	PageSize int
}

func (c Config) pageSize() int {
	if c.PageSize > 0 {
		return c.PageSize
	}
	return defaultPageSize
}
