// Package behavior runs the two Trilobot control loops: ball counting gated
// by distance, and color-driven actions.
package behavior

import (
	"errors"
	"time"

	"github.com/LeonardoGuevara/trilobot-examples/pkg/action"
	"github.com/LeonardoGuevara/trilobot-examples/pkg/robot"
)

// GateConfig controls how distance is sampled and when perception runs.
type GateConfig struct {
	Threshold float64       // Perception runs when distance < Threshold (cm)
	Reads     int           // Successive readings per cycle, the last one is kept
	ReadDelay time.Duration // Pause after each reading
	Timeout   time.Duration // Sensor timeout per reading
	Samples   int           // Sensor samples per reading
}

// DefaultGateConfig returns the 50cm gate with three settle reads.
func DefaultGateConfig() GateConfig {
	return GateConfig{
		Threshold: 50,
		Reads:     3,
		ReadDelay: 10 * time.Millisecond,
		Timeout:   25 * time.Millisecond,
		Samples:   3,
	}
}

// Validate checks if the config values are within valid ranges.
func (c *GateConfig) Validate() []string {
	var errors []string
	if c.Threshold <= 0 {
		errors = append(errors, "gate threshold must be positive")
	}
	if c.Reads < 1 {
		errors = append(errors, "gate reads must be at least 1")
	}
	if c.ReadDelay < 0 {
		errors = append(errors, "gate read delay must not be negative")
	}
	if c.Timeout <= 0 {
		errors = append(errors, "sensor timeout must be positive")
	}
	if c.Samples < 1 {
		errors = append(errors, "sensor samples must be at least 1")
	}
	return errors
}

// Reading is the settled distance of one cycle.
type Reading struct {
	Distance float64 // cm, 0 when there was no echo
	Echo     bool    // False when nothing answered within range
}

// DistanceGate debounces the range sensor and decides whether to look.
type DistanceGate struct {
	sensor robot.RangeSensor
	clock  action.Clock
	config GateConfig
}

// NewDistanceGate creates a gate. A nil clock uses action.SystemClock.
func NewDistanceGate(sensor robot.RangeSensor, clock action.Clock, cfg GateConfig) *DistanceGate {
	if clock == nil {
		clock = action.SystemClock{}
	}
	return &DistanceGate{sensor: sensor, clock: clock, config: cfg}
}

// Read takes Reads rapid readings and returns the last one.
// A reading with no echo counts as out of range.
func (g *DistanceGate) Read() (Reading, error) {
	var last Reading
	for i := 0; i < g.config.Reads; i++ {
		d, err := g.sensor.ReadDistance(g.config.Timeout, g.config.Samples)
		switch {
		case errors.Is(err, robot.ErrNoEcho):
			last = Reading{}
		case err != nil:
			return Reading{}, err
		default:
			last = Reading{Distance: d, Echo: true}
		}
		g.clock.Sleep(g.config.ReadDelay)
	}
	return last, nil
}

// Open reports whether the reading is close enough to run perception.
func (g *DistanceGate) Open(r Reading) bool {
	return r.Echo && r.Distance < g.config.Threshold
}
