package action

import (
	"math"

	"github.com/LeonardoGuevara/trilobot-examples/pkg/robot"
)

// TrackingLaw is a proportional steering law that turns the robot in place
// to keep the ball centered.
type TrackingLaw struct {
	Gain     float64 // Proportional gain
	Scale    float64 // Pixels per unit of error
	Deadband float64 // Disable the motors below this |velocity|
}

// DefaultTrackingLaw returns the gains tuned for a 320px wide frame.
func DefaultTrackingLaw() TrackingLaw {
	return TrackingLaw{
		Gain:     0.5,
		Scale:    100,
		Deadband: 0.15,
	}
}

// TrackingCommand is one output of the law.
type TrackingCommand struct {
	Error    float64 `json:"error"`    // Pixels right of center
	Velocity float64 `json:"velocity"` // Signed turn velocity
	Disable  bool    `json:"disable"`  // Inside the deadband
}

// Command computes the turn for a ball at x in a frame width pixels wide.
func (l TrackingLaw) Command(x, width int) TrackingCommand {
	err := float64(x) - float64(width)/2
	v := l.Gain * (-err / l.Scale)
	return TrackingCommand{
		Error:    err,
		Velocity: v,
		Disable:  math.Abs(v) < l.Deadband,
	}
}

// Speeds returns the wheel speeds for the command: left -v, right +v.
func (c TrackingCommand) Speeds() robot.Speeds {
	return robot.Speeds{Left: -c.Velocity, Right: c.Velocity}.Clamp()
}

// Apply sends the command to the wheels. Inside the deadband the motors are
// disabled rather than driven at a near-zero speed.
func (c TrackingCommand) Apply(wheels robot.WheelController) error {
	if c.Disable {
		return wheels.DisableMotors()
	}
	s := c.Speeds()
	return wheels.SetMotorSpeeds(s.Left, s.Right)
}
