// Package camera provides frame sources for the Trilobot loops: the Pi camera
// through V4L2, and image files for offline replay.
package camera

// Config holds all camera configuration parameters.
type Config struct {
	// === Device ===
	// Device is a V4L2 index ("0") or path ("/dev/video0").
	Device string `json:"device"`

	// === Resolution ===
	Width     int `json:"width"`     // Frame width in pixels
	Height    int `json:"height"`    // Frame height in pixels
	Framerate int `json:"framerate"` // Target FPS

	// === Exposure ===
	// Brightness is passed to the driver as-is. 0 leaves the driver default.
	Brightness float64 `json:"brightness"`

	// Exposure is a manual exposure value for the driver.
	// Set to 0 for auto exposure.
	Exposure float64 `json:"exposure"`
}

// Sensor capabilities of the Pi camera in video mode
const (
	SensorMinWidth  = 160
	SensorMinHeight = 120
	SensorMaxWidth  = 1920
	SensorMaxHeight = 1080
)

// DefaultConfig returns the 320x240 configuration the vision thresholds are tuned for.
func DefaultConfig() Config {
	return Config{
		Device:    "0",
		Width:     320,
		Height:    240,
		Framerate: 30,

		// Auto exposure
		Brightness: 0,
		Exposure:   0,
	}
}

// Validate checks if the config values are within valid ranges.
// Returns a list of validation errors, or nil if valid.
func (c *Config) Validate() []string {
	var errors []string

	if c.Device == "" {
		errors = append(errors, "device must be set")
	}

	// Resolution
	if c.Width < SensorMinWidth || c.Width > SensorMaxWidth {
		errors = append(errors, "width must be between 160 and 1920")
	}
	if c.Height < SensorMinHeight || c.Height > SensorMaxHeight {
		errors = append(errors, "height must be between 120 and 1080")
	}
	if c.Framerate < 1 || c.Framerate > 120 {
		errors = append(errors, "framerate must be between 1 and 120")
	}

	if c.Exposure < 0 {
		errors = append(errors, "exposure must be 0 (auto) or positive")
	}

	return errors
}
