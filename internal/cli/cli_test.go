package cli

import (
	"flag"
	"path/filepath"
	"testing"
	"time"

	"gocv.io/x/gocv"

	"github.com/LeonardoGuevara/trilobot-examples/pkg/robot"
	"github.com/LeonardoGuevara/trilobot-examples/pkg/vision"
)

func parse(t *testing.T, args ...string) *Flags {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f := Register(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return f
}

func TestRegister_EnvDefaults(t *testing.T) {
	t.Setenv("TRILOBOT_CAMERA", "/dev/video2")
	t.Setenv("TRILOBOT_DASHBOARD_PORT", "")
	t.Setenv("TRILOBOT_LOG_LEVEL", "warn")

	f := parse(t)
	if f.Camera != "/dev/video2" {
		t.Errorf("camera: got %q", f.Camera)
	}
	if f.Dashboard != "" {
		t.Errorf("dashboard should be disabled, got %q", f.Dashboard)
	}
	if f.LogLevel != "warn" {
		t.Errorf("log level: got %q", f.LogLevel)
	}
	if f.StartDashboard() != nil {
		t.Error("StartDashboard should return nil when disabled")
	}
}

func TestFlags_Overrides(t *testing.T) {
	f := parse(t, "--dry-run", "--distance", "42", "--interval", "250ms", "--preset", "vga")

	cfg := f.BehaviorConfig()
	if cfg.Interval != 250*time.Millisecond {
		t.Errorf("interval: got %s", cfg.Interval)
	}

	cam, err := f.CameraConfig()
	if err != nil {
		t.Fatalf("CameraConfig: %v", err)
	}
	if cam.Width != 640 || cam.Device != f.Camera {
		t.Errorf("camera config: got %+v", cam)
	}

	hw, err := f.Hardware()
	if err != nil {
		t.Fatalf("Hardware: %v", err)
	}
	m, ok := hw.(*robot.Mock)
	if !ok {
		t.Fatalf("dry run should use the mock, got %T", hw)
	}
	if d, _ := m.ReadDistance(0, 1); d != 42 {
		t.Errorf("mock distance: got %v, want 42", d)
	}
}

func TestFlags_UnknownPreset(t *testing.T) {
	f := parse(t, "--preset", "cinema")
	if _, err := f.Source(); err == nil {
		t.Error("unknown preset should fail")
	}
}

func TestFlags_FrameReplay(t *testing.T) {
	dir := t.TempDir()
	img := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 255, 0, 0), 480, 640, gocv.MatTypeCV8UC3)
	defer img.Close()
	for _, name := range []string{"a.png", "b.jpg"} {
		if !gocv.IMWrite(filepath.Join(dir, name), img) {
			t.Fatalf("IMWrite %s", name)
		}
	}

	f := parse(t, "--frames", filepath.Join(dir, "*.png")+", "+filepath.Join(dir, "*.jpg"))
	src, err := f.Source()
	if err != nil {
		t.Fatalf("Source: %v", err)
	}
	defer src.Close()

	frame, err := src.Capture()
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if frame.Width != vision.DefaultWidth || frame.Height != vision.DefaultHeight {
		t.Errorf("replayed frame: got %dx%d", frame.Width, frame.Height)
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" a/*.png, ,b.jpg ")
	if len(got) != 2 || got[0] != "a/*.png" || got[1] != "b.jpg" {
		t.Errorf("splitList: got %q", got)
	}
}
