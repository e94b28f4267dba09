package types

import "fmt"

// Mode selects how extracted content is placed into the destination.
// It is a closed set: every switch over Mode must handle all three
// variants explicitly.
type Mode int

const (
	// ModeSubdir places content inside a new child directory of the
	// destination, named after the archive.
	ModeSubdir Mode = iota

	// ModeFlatten merges content directly into the destination,
	// collapsing a single wrapper directory when the archive has one.
	ModeFlatten

	// ModeRespect preserves the archive's internal layout exactly as
	// unpacked, with no wrapper collapsing.
	ModeRespect
)

// String returns the mode's command-line spelling
func (m Mode) String() string {
	switch m {
	case ModeSubdir:
		return "subdir"
	case ModeFlatten:
		return "flatten"
	case ModeRespect:
		return "respect"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts a command-line or config spelling into a Mode
func ParseMode(s string) (Mode, error) {
	switch s {
	case "subdir":
		return ModeSubdir, nil
	case "flatten":
		return ModeFlatten, nil
	case "respect":
		return ModeRespect, nil
	default:
		return ModeSubdir, fmt.Errorf("unknown extraction mode %q (want subdir, flatten or respect)", s)
	}
}
