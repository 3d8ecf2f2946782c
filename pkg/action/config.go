package action

import "time"

// Config holds the motion primitive parameters.
type Config struct {
	// Forward pulse
	ForwardSpeed    float64       // Both wheels, also used for square sides
	ForwardDuration time.Duration // How long GREEN drives forward

	// Square path
	SquareSides int           // Forward+turn repetitions
	SquareSide  time.Duration // Forward time per side
	SquareTurn  time.Duration // Turn time per corner
	TurnSpeed   float64       // Turn right at (+TurnSpeed, -TurnSpeed)

	// Circular arc
	ArcLeft     float64
	ArcRight    float64
	ArcDuration time.Duration

	// Visual tracking
	Tracking TrackingLaw
}

// DefaultConfig returns the Trilobot motion parameters.
func DefaultConfig() Config {
	return Config{
		ForwardSpeed:    1.0,
		ForwardDuration: 3 * time.Second,

		SquareSides: 4,
		SquareSide:  1 * time.Second,
		SquareTurn:  300 * time.Millisecond,
		TurnSpeed:   1.0,

		ArcLeft:     0.8,
		ArcRight:    0.2,
		ArcDuration: 5 * time.Second,

		Tracking: DefaultTrackingLaw(),
	}
}

// Validate checks if the config values are within valid ranges.
// Returns a list of validation errors, or nil if valid.
func (c *Config) Validate() []string {
	var errors []string

	speeds := map[string]float64{
		"forward speed": c.ForwardSpeed,
		"turn speed":    c.TurnSpeed,
		"arc left":      c.ArcLeft,
		"arc right":     c.ArcRight,
	}
	for _, name := range []string{"forward speed", "turn speed", "arc left", "arc right"} {
		if v := speeds[name]; v < -1 || v > 1 {
			errors = append(errors, name+" must be between -1 and 1")
		}
	}

	if c.ForwardDuration <= 0 {
		errors = append(errors, "forward duration must be positive")
	}
	if c.SquareSides < 1 {
		errors = append(errors, "square sides must be at least 1")
	}
	if c.SquareSide <= 0 || c.SquareTurn <= 0 {
		errors = append(errors, "square side and turn durations must be positive")
	}
	if c.ArcDuration <= 0 {
		errors = append(errors, "arc duration must be positive")
	}

	if c.Tracking.Scale <= 0 {
		errors = append(errors, "tracking scale must be positive")
	}
	if c.Tracking.Deadband < 0 {
		errors = append(errors, "tracking deadband must not be negative")
	}

	return errors
}
