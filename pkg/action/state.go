package action

import (
	"fmt"

	"github.com/LeonardoGuevara/trilobot-examples/pkg/palette"
)

// Mode is the controller state as seen from outside.
type Mode int

const (
	// ModeIdle is free to start a new action.
	ModeIdle Mode = iota
	// ModeActiveTerminal has completed a terminal action and waits for the ball to go away.
	ModeActiveTerminal
	// ModeTracking re-runs the tracking law every cycle and never latches.
	ModeTracking
)

var modeNames = map[Mode]string{
	ModeIdle:           "IDLE",
	ModeActiveTerminal: "ACTIVE_TERMINAL",
	ModeTracking:       "TRACKING",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	for mode, name := range modeNames {
		if name == string(text) {
			*m = mode
			return nil
		}
	}
	return fmt.Errorf("action: unknown mode %q", text)
}

// State is the only data carried from one cycle to the next.
// The zero value is the initial state.
type State struct {
	ActionCompleted bool   `json:"action_completed"`
	LastAction      Action `json:"last_action"`
}

// Mode derives the controller mode from the state.
func (s State) Mode() Mode {
	switch {
	case s.ActionCompleted:
		return ModeActiveTerminal
	case s.LastAction == Tracking:
		return ModeTracking
	default:
		return ModeIdle
	}
}

// Observation is what one perception pass tells the controller.
type Observation struct {
	Circles int           // Circles detected in the frame
	Color   palette.Color // Classified color, Unknown when not classified
	X       int           // Center x of the selected circle
	Width   int           // Frame width in pixels
}

// Detected reports whether the frame held a ball of a known color.
func (o Observation) Detected() bool {
	return o.Circles > 0 && o.Color.Known()
}

// Next is the transition function. It returns the new state and the action
// to execute this cycle (None when nothing should move).
//
// A missing or unknown ball resets to the zero state. A known color starts
// its action from Idle or Tracking; terminal actions latch until the ball
// is gone.
func Next(s State, obs Observation) (State, Action) {
	if !obs.Detected() {
		return State{}, None
	}
	if s.ActionCompleted {
		return s, None
	}

	a := ForColor(obs.Color)
	return State{ActionCompleted: a.Terminal(), LastAction: a}, a
}
