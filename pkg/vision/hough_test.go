package vision

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"gocv.io/x/gocv"
)

// discFrame draws a filled white disc on a black frame.
func discFrame(t *testing.T, center image.Point, radius int) Frame {
	t.Helper()

	img := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), DefaultHeight, DefaultWidth, gocv.MatTypeCV8UC3)
	defer img.Close()
	gocv.Circle(&img, center, radius, color.RGBA{255, 255, 255, 0}, -1)

	frame, err := FrameFromMat(img)
	if err != nil {
		t.Fatalf("FrameFromMat: %v", err)
	}
	return frame
}

func TestFrame_Validate(t *testing.T) {
	good := NewFrame(DefaultWidth, DefaultHeight)
	if err := good.Validate(); err != nil {
		t.Errorf("valid frame: unexpected error %v", err)
	}

	short := Frame{Width: 4, Height: 4, Pix: make([]byte, 10)}
	if err := short.Validate(); !errors.Is(err, ErrBadFrame) {
		t.Errorf("short buffer: got %v, want ErrBadFrame", err)
	}

	empty := Frame{}
	if err := empty.Validate(); !errors.Is(err, ErrBadFrame) {
		t.Errorf("empty frame: got %v, want ErrBadFrame", err)
	}
}

func TestFrame_SetAt(t *testing.T) {
	f := NewFrame(4, 3)
	f.Set(2, 1, 10, 20, 30)

	b, g, r := f.At(2, 1)
	if b != 10 || g != 20 || r != 30 {
		t.Errorf("At: got (%d,%d,%d), want (10,20,30)", b, g, r)
	}
}

func TestFrame_MatRoundTrip(t *testing.T) {
	f := NewFrame(8, 6)
	f.Set(3, 4, 1, 2, 3)

	mat, err := f.Mat()
	if err != nil {
		t.Fatalf("Mat: %v", err)
	}
	defer mat.Close()

	if mat.Cols() != 8 || mat.Rows() != 6 {
		t.Fatalf("mat size: got %dx%d, want 8x6", mat.Cols(), mat.Rows())
	}

	back, err := FrameFromMat(mat)
	if err != nil {
		t.Fatalf("FrameFromMat: %v", err)
	}
	b, g, r := back.At(3, 4)
	if b != 1 || g != 2 || r != 3 {
		t.Errorf("round trip pixel: got (%d,%d,%d), want (1,2,3)", b, g, r)
	}
}

func TestNewHough_InvalidConfig(t *testing.T) {
	cfg := DefaultHoughConfig()
	cfg.MinDist = 0

	if _, err := NewHough(cfg); err == nil {
		t.Error("expected error for zero min distance")
	}
}

func TestHoughDetect_BlankFrame(t *testing.T) {
	d, err := NewHough(DefaultHoughConfig())
	if err != nil {
		t.Fatalf("NewHough: %v", err)
	}
	defer d.Close()

	circles, err := d.Detect(NewFrame(DefaultWidth, DefaultHeight))
	if err != nil {
		t.Fatalf("blank frame should not be an error: %v", err)
	}
	if len(circles) != 0 {
		t.Errorf("blank frame: got %d circles, want 0", len(circles))
	}
}

func TestHoughDetect_BadFrame(t *testing.T) {
	d, err := NewHough(DefaultHoughConfig())
	if err != nil {
		t.Fatalf("NewHough: %v", err)
	}
	defer d.Close()

	_, err = d.Detect(Frame{Width: 320, Height: 240, Pix: make([]byte, 12)})
	if !errors.Is(err, ErrBadFrame) {
		t.Errorf("got %v, want ErrBadFrame", err)
	}
}

func TestHoughDetect_Disc(t *testing.T) {
	cfg := DefaultHoughConfig()
	cfg.Param2 = 30 // synthetic disc has a clean but thin edge

	d, err := NewHough(cfg)
	if err != nil {
		t.Fatalf("NewHough: %v", err)
	}
	defer d.Close()

	frame := discFrame(t, image.Pt(160, 120), 50)
	circles, err := d.Detect(frame)
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if len(circles) == 0 {
		t.Fatal("expected at least one circle")
	}

	best := circles[SelectLargest(circles)]
	if abs(best.X-160) > 4 || abs(best.Y-120) > 4 {
		t.Errorf("center: got (%d,%d), want near (160,120)", best.X, best.Y)
	}
	if abs(best.R-50) > 5 {
		t.Errorf("radius: got %d, want near 50", best.R)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
