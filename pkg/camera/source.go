package camera

import (
	"errors"
	"image"

	"gocv.io/x/gocv"

	"github.com/LeonardoGuevara/trilobot-examples/pkg/vision"
)

// ErrNoFrames is returned by a FileSource with nothing to replay.
var ErrNoFrames = errors.New("camera: no frames")

// Source yields BGR frames at the configured working resolution.
type Source interface {
	// Capture blocks until the next frame is available.
	Capture() (vision.Frame, error)
	Close() error
}

// toFrame scales img to width x height when needed and copies it out.
func toFrame(img gocv.Mat, width, height int) (vision.Frame, error) {
	if img.Cols() == width && img.Rows() == height {
		return vision.FrameFromMat(img)
	}

	scaled := gocv.NewMat()
	defer scaled.Close()
	gocv.Resize(img, &scaled, image.Pt(width, height), 0, 0, gocv.InterpolationLinear)
	return vision.FrameFromMat(scaled)
}
