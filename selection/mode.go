package selection

// Mode controls how many items a collection allows to be selected at once.
type Mode int

const (
	// ModeNone disables selection entirely; every selection operation is a
	// no-op and the selected set stays empty.
	ModeNone Mode = iota
	// ModeSingle allows at most one selected item. Toggling the selected
	// item clears it.
	ModeSingle
	// ModeMultiple allows any number of selected items, range extension,
	// and select-all.
	ModeMultiple
)

func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeSingle:
		return "single"
	case ModeMultiple:
		return "multiple"
	}
	return "unknown"
}

// ParseMode maps a config string to a Mode, defaulting to ModeSingle for
// unrecognized values.
func ParseMode(s string) Mode {
	switch s {
	case "none":
		return ModeNone
	case "multiple":
		return ModeMultiple
	default:
		return ModeSingle
	}
}
