package vision

// Detector finds circular objects in a frame.
type Detector interface {
	// Detect returns the circles found in the frame, in no particular order.
	// Finding nothing is not an error: the result is simply empty.
	Detect(frame Frame) ([]Circle, error)

	// Close releases resources
	Close() error
}

// HoughConfig holds the gradient Hough transform parameters.
type HoughConfig struct {
	BlurKernel int     // Box blur kernel size applied before the transform
	Dp         float64 // Inverse accumulator resolution ratio
	MinDist    float64 // Minimum distance between detected centers (px)
	Param1     float64 // Upper Canny edge-gradient threshold
	Param2     float64 // Accumulator threshold for centers
	MinRadius  int     // 0 = no lower bound
	MaxRadius  int     // 0 = no upper bound
}

// DefaultHoughConfig returns parameters tuned for the 320x240 Trilobot camera.
func DefaultHoughConfig() HoughConfig {
	return HoughConfig{
		BlurKernel: 3,
		Dp:         1,
		MinDist:    20,
		Param1:     30,
		Param2:     80,
		MinRadius:  0,
		MaxRadius:  0,
	}
}

// Validate checks the config values.
// Returns a list of validation errors, or nil if valid.
func (c *HoughConfig) Validate() []string {
	var errors []string

	if c.BlurKernel < 1 {
		errors = append(errors, "blur_kernel must be at least 1")
	}
	if c.Dp < 1 {
		errors = append(errors, "dp must be at least 1")
	}
	if c.MinDist <= 0 {
		errors = append(errors, "min_dist must be positive")
	}
	if c.Param1 <= 0 || c.Param2 <= 0 {
		errors = append(errors, "param1 and param2 must be positive")
	}
	if c.MinRadius < 0 || c.MaxRadius < 0 {
		errors = append(errors, "radius bounds must be 0 (unbounded) or positive")
	}
	if c.MaxRadius > 0 && c.MinRadius > c.MaxRadius {
		errors = append(errors, "min_radius must not exceed max_radius")
	}

	return errors
}
