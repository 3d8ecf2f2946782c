// Package robot provides interfaces and implementations for Trilobot hardware.
//
// This package follows the Interface Segregation Principle (ISP) by defining
// small, focused interfaces that can be composed as needed. Consumers should
// depend only on the interfaces they actually use.
package robot

import (
	"image/color"
	"time"
)

// WheelController drives the two differential-drive wheels.
type WheelController interface {
	// SetMotorSpeeds enables the motors and sets normalized speeds in [-1, 1].
	SetMotorSpeeds(left, right float64) error

	// DisableMotors stops both wheels and cuts the motor driver enable line.
	// This is distinct from SetMotorSpeeds(0, 0), which leaves the driver enabled.
	DisableMotors() error
}

// StatusLight fills the RGB underlighting with one color.
type StatusLight interface {
	FillUnderlighting(c color.RGBA) error
}

// RangeSensor measures the distance to the nearest object in front of the robot.
type RangeSensor interface {
	// ReadDistance takes samples pings, each bounded by timeout, and returns
	// a distance in centimetres.
	ReadDistance(timeout time.Duration, samples int) (float64, error)
}

// Actuator is what the action controller drives: wheels plus status light.
type Actuator interface {
	WheelController
	StatusLight
}

// Robot is the composite interface for the whole Trilobot.
type Robot interface {
	Actuator
	RangeSensor
	Close() error
}

// Ensure implementations satisfy Robot
var (
	_ Robot = (*Trilobot)(nil)
	_ Robot = (*Mock)(nil)
)
