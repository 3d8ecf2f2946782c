package robot

import (
	"time"

	"gonum.org/v1/gonum/stat"
	"periph.io/x/conn/v3/gpio"
)

// Speed of sound at room temperature, in cm per second.
const speedOfSoundCM = 34300.0

// Shortest and longest echoes the HC-SR04 reports reliably.
const (
	minRangeCM = 2.0
	maxRangeCM = 400.0
)

// ultrasonic is an HC-SR04 on a trigger/echo pin pair.
type ultrasonic struct {
	trig gpio.PinIO
	echo gpio.PinIO
}

func (u *ultrasonic) init() error {
	if err := u.trig.Out(gpio.Low); err != nil {
		return err
	}
	return u.echo.In(gpio.PullDown, gpio.BothEdges)
}

// read pings samples times and averages the valid echoes.
func (u *ultrasonic) read(timeout time.Duration, samples int) (float64, error) {
	if samples < 1 {
		samples = 1
	}

	readings := make([]float64, 0, samples)
	for i := 0; i < samples; i++ {
		d, ok, err := u.ping(timeout)
		if err != nil {
			return 0, WrapHardware("ultrasonic", err)
		}
		if ok {
			readings = append(readings, d)
		}
	}

	if len(readings) == 0 {
		return 0, ErrNoEcho
	}
	return stat.Mean(readings, nil), nil
}

// ping sends one 10µs trigger pulse and times the echo pulse.
func (u *ultrasonic) ping(timeout time.Duration) (float64, bool, error) {
	if err := u.trig.Out(gpio.High); err != nil {
		return 0, false, err
	}
	time.Sleep(10 * time.Microsecond)
	if err := u.trig.Out(gpio.Low); err != nil {
		return 0, false, err
	}

	deadline := time.Now().Add(timeout)

	// Rising edge: echo pulse starts
	for u.echo.Read() == gpio.Low {
		remaining := time.Until(deadline)
		if remaining <= 0 || !u.echo.WaitForEdge(remaining) {
			return 0, false, nil
		}
	}
	start := time.Now()

	// Falling edge: echo pulse ends
	for u.echo.Read() == gpio.High {
		remaining := time.Until(deadline)
		if remaining <= 0 || !u.echo.WaitForEdge(remaining) {
			return 0, false, nil
		}
	}
	pulse := time.Since(start)

	d := pulseToCM(pulse)
	if d < minRangeCM || d > maxRangeCM {
		return 0, false, nil
	}
	return d, true, nil
}

// pulseToCM converts a round-trip echo pulse width to a one-way distance.
func pulseToCM(pulse time.Duration) float64 {
	return pulse.Seconds() * speedOfSoundCM / 2
}
