package vision

import (
	"fmt"
	"image"
	"math"
	"strings"
	"sync"

	"github.com/LeonardoGuevara/trilobot-examples/pkg/debug"
	"gocv.io/x/gocv"
)

// HoughDetector finds circles with OpenCV's gradient Hough transform.
type HoughDetector struct {
	config HoughConfig
	mu     sync.Mutex // Protects the scratch mats
	gray   gocv.Mat
	blur   gocv.Mat
}

// NewHough creates a circle detector with the given parameters.
func NewHough(cfg HoughConfig) (*HoughDetector, error) {
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("invalid hough config: %s", strings.Join(errs, "; "))
	}
	return &HoughDetector{
		config: cfg,
		gray:   gocv.NewMat(),
		blur:   gocv.NewMat(),
	}, nil
}

// Config returns the detector parameters.
func (d *HoughDetector) Config() HoughConfig {
	return d.config
}

// Detect finds circles in the frame
func (d *HoughDetector) Detect(frame Frame) ([]Circle, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	img, err := frame.Mat()
	if err != nil {
		return nil, err
	}
	defer img.Close()

	// Intensity only, smoothed so pixel noise does not vote
	gocv.CvtColor(img, &d.gray, gocv.ColorBGRToGray)
	k := d.config.BlurKernel
	gocv.Blur(d.gray, &d.blur, image.Pt(k, k))

	found := gocv.NewMat()
	defer found.Close()

	gocv.HoughCirclesWithParams(
		d.blur,
		&found,
		gocv.HoughGradient,
		d.config.Dp,
		d.config.MinDist,
		d.config.Param1,
		d.config.Param2,
		d.config.MinRadius,
		d.config.MaxRadius,
	)

	if found.Empty() {
		return nil, nil
	}

	// Output is a 1xN row of (x, y, r) float triples
	circles := make([]Circle, 0, found.Cols())
	for i := 0; i < found.Cols(); i++ {
		v := found.GetVecfAt(0, i)
		if len(v) < 3 {
			continue
		}
		circles = append(circles, Circle{
			X: roundPixel(v[0]),
			Y: roundPixel(v[1]),
			R: roundPixel(v[2]),
		})
	}

	if len(circles) > 0 {
		debug.VisionLog("🔵 Hough found %d circle(s): %v\n", len(circles), circles)
	}

	return circles, nil
}

// Close releases the detector resources
func (d *HoughDetector) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.gray.Close()
	d.blur.Close()
	return nil
}

// roundPixel rounds half to even and floors at zero.
func roundPixel(v float32) int {
	r := math.RoundToEven(float64(v))
	if r < 0 {
		return 0
	}
	return int(r)
}
