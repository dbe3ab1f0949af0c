package render

import (
	"errors"
	"fmt"
)

// ErrUnknownMode is returned for a drawing mode outside point|line|bezier.
var ErrUnknownMode = errors.New("unknown draw mode")

// Mode selects how strokes are drawn.
type Mode int

const (
	ModePoint Mode = iota + 1
	ModeLine
	ModeBezier
)

// Modes lists every drawing mode in selector order.
var Modes = []Mode{ModePoint, ModeLine, ModeBezier}

func (m Mode) String() string {
	switch m {
	case ModePoint:
		return "point"
	case ModeLine:
		return "line"
	case ModeBezier:
		return "bezier"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode converts a selector value into a Mode.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownMode)
}

// ModeNames returns the selector labels for every mode.
func ModeNames() []string {
	names := make([]string, len(Modes))
	for i, m := range Modes {
		names[i] = m.String()
	}
	return names
}
