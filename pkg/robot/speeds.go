package robot

// Wheel speed limits, normalized to the motor driver's full duty cycle.
const (
	MaxSpeed = 1.0
	MinSpeed = -1.0
)

// clamp restricts v to the range [min, max].
func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Speeds is a left/right wheel command.
type Speeds struct {
	Left, Right float64
}

// Clamp returns Speeds with both wheels limited to [-1, 1].
func (s Speeds) Clamp() Speeds {
	return Speeds{
		Left:  clamp(s.Left, MinSpeed, MaxSpeed),
		Right: clamp(s.Right, MinSpeed, MaxSpeed),
	}
}

// IsZero reports whether both wheels are stopped.
func (s Speeds) IsZero() bool {
	return s.Left == 0 && s.Right == 0
}

// Common drive commands at full speed, matching the Trilobot helpers.
var (
	Forward   = Speeds{Left: 1, Right: 1}
	TurnRight = Speeds{Left: 1, Right: -1}
	Halt      = Speeds{}
)
