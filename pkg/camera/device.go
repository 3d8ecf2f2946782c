package camera

import (
	"fmt"
	"strings"
	"sync"

	"gocv.io/x/gocv"

	"github.com/LeonardoGuevara/trilobot-examples/pkg/debug"
	"github.com/LeonardoGuevara/trilobot-examples/pkg/robot"
	"github.com/LeonardoGuevara/trilobot-examples/pkg/vision"
)

// DeviceSource reads frames from a V4L2 camera. Config sets the capture
// mode; frames always come out at the working resolution.
type DeviceSource struct {
	config Config

	mu     sync.Mutex
	cap    *gocv.VideoCapture
	img    gocv.Mat
	frames int
}

// OpenDevice opens the camera named by cfg.Device and applies the config.
// Open failures are reported as robot.ErrHardwareUnavailable.
func OpenDevice(cfg Config) (*DeviceSource, error) {
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("camera config: %s", strings.Join(errs, "; "))
	}

	vc, err := gocv.OpenVideoCapture(cfg.Device)
	if err != nil {
		return nil, robot.WrapHardware("camera", err)
	}
	if !vc.IsOpened() {
		vc.Close()
		return nil, robot.WrapHardware("camera", fmt.Errorf("device %s not opened", cfg.Device))
	}

	vc.Set(gocv.VideoCaptureFrameWidth, float64(cfg.Width))
	vc.Set(gocv.VideoCaptureFrameHeight, float64(cfg.Height))
	vc.Set(gocv.VideoCaptureFPS, float64(cfg.Framerate))
	if cfg.Brightness != 0 {
		vc.Set(gocv.VideoCaptureBrightness, cfg.Brightness)
	}
	if cfg.Exposure > 0 {
		vc.Set(gocv.VideoCaptureExposure, cfg.Exposure)
	}

	debug.Log("📷 Camera %s opened at %dx%d@%d\n", cfg.Device, cfg.Width, cfg.Height, cfg.Framerate)

	return &DeviceSource{
		config: cfg,
		cap:    vc,
		img:    gocv.NewMat(),
	}, nil
}

// Config returns the active camera configuration.
func (d *DeviceSource) Config() Config {
	return d.config
}

// Capture grabs one frame and scales it to the 320x240 working resolution
// the vision thresholds are tuned for.
func (d *DeviceSource) Capture() (vision.Frame, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.cap == nil {
		return vision.Frame{}, robot.WrapHardware("camera", fmt.Errorf("closed"))
	}
	if ok := d.cap.Read(&d.img); !ok || d.img.Empty() {
		return vision.Frame{}, robot.WrapHardware("camera", fmt.Errorf("read failed after %d frames", d.frames))
	}
	d.frames++

	return toFrame(d.img, vision.DefaultWidth, vision.DefaultHeight)
}

// Close releases the device.
func (d *DeviceSource) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.cap == nil {
		return nil
	}
	err := d.cap.Close()
	d.img.Close()
	d.cap = nil
	return err
}
