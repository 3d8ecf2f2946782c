package robot

import (
	"errors"
	"fmt"
)

// Sentinel errors for hardware conditions.
var (
	// ErrHardwareUnavailable is returned when a device cannot be opened or
	// stops responding. Loops do not recover from it.
	ErrHardwareUnavailable = errors.New("robot: hardware unavailable")

	// ErrNoEcho is returned when no ultrasonic ping got an echo within the
	// timeout. Usually nothing is in range.
	ErrNoEcho = errors.New("robot: no ultrasonic echo")
)

// HardwareError wraps a device failure. It matches ErrHardwareUnavailable
// with errors.Is.
type HardwareError struct {
	Device string
	Err    error
}

// Error implements the error interface.
func (e *HardwareError) Error() string {
	return fmt.Sprintf("robot [%s]: %v", e.Device, e.Err)
}

// Unwrap returns the underlying error.
func (e *HardwareError) Unwrap() error {
	return e.Err
}

// Is makes every HardwareError match ErrHardwareUnavailable.
func (e *HardwareError) Is(target error) bool {
	return target == ErrHardwareUnavailable
}

// WrapHardware wraps an error with device context.
func WrapHardware(device string, err error) error {
	if err == nil {
		return nil
	}
	return &HardwareError{Device: device, Err: err}
}
