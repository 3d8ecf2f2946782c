package palette

import (
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/LeonardoGuevara/trilobot-examples/pkg/debug"
	"github.com/LeonardoGuevara/trilobot-examples/pkg/vision"
	"gocv.io/x/gocv"
)

// ErrNoCircles is returned when Classify is called without any circle.
var ErrNoCircles = errors.New("palette: no circles to classify")

// Result is the classification of the largest circle in a frame.
type Result struct {
	Color  Color         `json:"color"`
	Circle vision.Circle `json:"circle"`
	X      int           `json:"x"` // Selected circle's x, passed on to tracking
	Votes  []Vote        `json:"votes"`
}

// Classifier labels a ball by counting in-band pixels inside its bounding square.
type Classifier struct {
	bands []Band

	mu   sync.Mutex // Protects the scratch mats
	hsv  gocv.Mat
	mask gocv.Mat
	part gocv.Mat
}

// NewClassifier creates a classifier over bands, evaluated in the given order.
// A nil slice uses DefaultBands.
func NewClassifier(bands []Band) *Classifier {
	if bands == nil {
		bands = DefaultBands()
	}
	return &Classifier{
		bands: bands,
		hsv:   gocv.NewMat(),
		mask:  gocv.NewMat(),
		part:  gocv.NewMat(),
	}
}

// Bands returns the bands in evaluation order.
func (c *Classifier) Bands() []Band {
	return c.bands
}

// Classify selects the largest circle and returns its color.
// circles must not be empty.
func (c *Classifier) Classify(frame vision.Frame, circles []vision.Circle) (Result, error) {
	idx := vision.SelectLargest(circles)
	if idx < 0 {
		return Result{}, ErrNoCircles
	}
	target := circles[idx]

	c.mu.Lock()
	defer c.mu.Unlock()

	img, err := frame.Mat()
	if err != nil {
		return Result{}, err
	}
	defer img.Close()

	gocv.CvtColor(img, &c.hsv, gocv.ColorBGRToHSV)

	box := target.Bounds(frame.Width, frame.Height)
	votes := make([]Vote, len(c.bands))
	for i, band := range c.bands {
		mass, err := c.bandMass(band, box)
		if err != nil {
			return Result{}, fmt.Errorf("classify %s: %w", band.Color, err)
		}
		votes[i] = Vote{Color: band.Color, Present: mass > 0, Mass: mass}
	}

	winner := SelectWinner(votes)
	debug.VisionLog("🎨 circle %v → %s %v\n", target, winner, votes)

	return Result{
		Color:  winner,
		Circle: target,
		X:      target.X,
		Votes:  votes,
	}, nil
}

// bandMass builds the band's mask over the whole HSV frame and counts the
// masked pixels inside box.
func (c *Classifier) bandMass(band Band, box image.Rectangle) (int, error) {
	if len(band.Ranges) == 0 {
		return 0, fmt.Errorf("band %s has no ranges", band.Color)
	}

	gocv.InRangeWithScalar(c.hsv, band.Ranges[0].lowerScalar(), band.Ranges[0].upperScalar(), &c.mask)
	for _, r := range band.Ranges[1:] {
		gocv.InRangeWithScalar(c.hsv, r.lowerScalar(), r.upperScalar(), &c.part)
		gocv.BitwiseOr(c.mask, c.part, &c.mask)
	}

	if box.Empty() {
		return 0, nil
	}

	roi := c.mask.Region(box)
	defer roi.Close()
	return gocv.CountNonZero(roi), nil
}

// Close releases the classifier resources
func (c *Classifier) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hsv.Close()
	c.mask.Close()
	c.part.Close()
	return nil
}
