// Package action maps classified ball colors to robot motion primitives and
// keeps the per-appearance latch that stops terminal actions from repeating.
package action

import (
	"fmt"

	"github.com/LeonardoGuevara/trilobot-examples/pkg/palette"
)

// Action is a motion primitive.
type Action int

const (
	None Action = iota
	ForwardPulse
	SquarePath
	CircularPath
	Tracking
)

var actionNames = map[Action]string{
	None:         "NONE",
	ForwardPulse: "FORWARD_PULSE",
	SquarePath:   "SQUARE_PATH",
	CircularPath: "CIRCULAR_PATH",
	Tracking:     "TRACKING",
}

// String implements fmt.Stringer.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// MarshalText implements encoding.TextMarshaler.
func (a Action) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Action) UnmarshalText(text []byte) error {
	for act, name := range actionNames {
		if name == string(text) {
			*a = act
			return nil
		}
	}
	return fmt.Errorf("action: unknown name %q", text)
}

// Terminal reports whether the action runs once to completion and then latches.
func (a Action) Terminal() bool {
	switch a {
	case ForwardPulse, SquarePath, CircularPath:
		return true
	default:
		return false
	}
}

// ForColor is the fixed color policy table.
func ForColor(c palette.Color) Action {
	switch c {
	case palette.Green:
		return ForwardPulse
	case palette.Yellow:
		return SquarePath
	case palette.Blue:
		return CircularPath
	case palette.Red:
		return Tracking
	default:
		return None
	}
}
