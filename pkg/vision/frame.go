// Package vision provides circle detection on raw camera frames.
package vision

import (
	"errors"
	"fmt"

	"gocv.io/x/gocv"
)

// Default camera resolution used by the Trilobot loops.
const (
	DefaultWidth  = 320
	DefaultHeight = 240
)

// ErrBadFrame is returned when a frame's buffer does not match its dimensions.
var ErrBadFrame = errors.New("vision: malformed frame")

// Frame is a Width×Height grid of 8-bit B,G,R samples, row-major and interleaved.
// A frame is treated as immutable once captured.
type Frame struct {
	Width  int
	Height int
	Pix    []byte
}

// NewFrame allocates a black frame of the given size.
func NewFrame(width, height int) Frame {
	return Frame{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*3),
	}
}

// Validate checks that Pix holds exactly Width*Height*3 bytes.
func (f Frame) Validate() error {
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrBadFrame, f.Width, f.Height)
	}
	if len(f.Pix) != f.Width*f.Height*3 {
		return fmt.Errorf("%w: %d bytes for %dx%d BGR", ErrBadFrame, len(f.Pix), f.Width, f.Height)
	}
	return nil
}

// At returns the B,G,R sample at (x, y).
func (f Frame) At(x, y int) (b, g, r uint8) {
	i := (y*f.Width + x) * 3
	return f.Pix[i], f.Pix[i+1], f.Pix[i+2]
}

// Set writes a B,G,R sample at (x, y). Only used while building a frame.
func (f Frame) Set(x, y int, b, g, r uint8) {
	i := (y*f.Width + x) * 3
	f.Pix[i], f.Pix[i+1], f.Pix[i+2] = b, g, r
}

// Mat wraps the frame in a CV_8UC3 Mat. The caller must Close it.
func (f Frame) Mat() (gocv.Mat, error) {
	if err := f.Validate(); err != nil {
		return gocv.NewMat(), err
	}
	mat, err := gocv.NewMatFromBytes(f.Height, f.Width, gocv.MatTypeCV8UC3, f.Pix)
	if err != nil {
		return gocv.NewMat(), fmt.Errorf("frame to mat: %w", err)
	}
	return mat, nil
}

// FrameFromMat copies a BGR Mat into a new Frame.
func FrameFromMat(m gocv.Mat) (Frame, error) {
	if m.Empty() {
		return Frame{}, fmt.Errorf("%w: empty mat", ErrBadFrame)
	}
	if m.Type() != gocv.MatTypeCV8UC3 {
		return Frame{}, fmt.Errorf("%w: mat type %v, want CV_8UC3", ErrBadFrame, m.Type())
	}
	frame := Frame{
		Width:  m.Cols(),
		Height: m.Rows(),
		Pix:    m.ToBytes(),
	}
	return frame, frame.Validate()
}
