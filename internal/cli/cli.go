// Package cli holds the flags and wiring shared by the loop commands.
package cli

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/LeonardoGuevara/trilobot-examples/internal/config"
	"github.com/LeonardoGuevara/trilobot-examples/internal/log"
	"github.com/LeonardoGuevara/trilobot-examples/pkg/behavior"
	"github.com/LeonardoGuevara/trilobot-examples/pkg/camera"
	"github.com/LeonardoGuevara/trilobot-examples/pkg/debug"
	"github.com/LeonardoGuevara/trilobot-examples/pkg/robot"
	"github.com/LeonardoGuevara/trilobot-examples/pkg/vision"
	"github.com/LeonardoGuevara/trilobot-examples/pkg/web"
)

// Flags are the command line options of a loop command.
type Flags struct {
	Debug       bool
	DebugVision bool
	LogLevel    string

	Camera string
	Preset string
	Frames string // Comma-separated globs, replaces the camera

	DryRun   bool    // Mock actuators and range sensor
	Distance float64 // Mock distance in cm for dry runs

	Interval  time.Duration
	Dashboard string // Port, empty disables
}

// Register defines the flags on fs. Defaults come from the environment.
func Register(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.BoolVar(&f.Debug, "debug", false, "Enable verbose debug logging")
	fs.BoolVar(&f.DebugVision, "debug-vision", false, "Log every detection pass (very verbose)")
	fs.StringVar(&f.LogLevel, "log-level", config.LogLevel(), "Log level: debug, info, warn, error")
	fs.StringVar(&f.Camera, "camera", config.CameraDevice(), "Camera device index or path")
	fs.StringVar(&f.Preset, "preset", camera.PresetDefault, "Camera preset: "+strings.Join(camera.PresetNames(), ", "))
	fs.StringVar(&f.Frames, "frames", "", "Replay image files instead of the camera (comma-separated globs)")
	fs.BoolVar(&f.DryRun, "dry-run", false, "Use mock motors, lights and range sensor")
	fs.Float64Var(&f.Distance, "distance", 30, "Distance in cm reported by the mock range sensor")
	fs.DurationVar(&f.Interval, "interval", 0, "Pause between cycles")
	fs.StringVar(&f.Dashboard, "dashboard", config.DashboardPort(), "Dashboard port (empty disables)")
	return f
}

// Apply sets up logging and the debug switches.
func (f *Flags) Apply() {
	level := f.LogLevel
	if f.Debug {
		level = "debug"
	}
	log.Init(level)
	debug.Enabled = f.Debug
	debug.Vision = f.DebugVision
}

// CameraConfig resolves the preset and device.
func (f *Flags) CameraConfig() (camera.Config, error) {
	cfg := camera.GetPreset(f.Preset)
	if cfg == nil {
		return camera.Config{}, fmt.Errorf("unknown camera preset %q", f.Preset)
	}
	cfg.Device = f.Camera
	return *cfg, nil
}

// Source opens the frame source: replayed files when --frames is set,
// the camera otherwise.
func (f *Flags) Source() (camera.Source, error) {
	cfg, err := f.CameraConfig()
	if err != nil {
		return nil, err
	}

	if f.Frames != "" {
		src, err := camera.NewFileSource(vision.DefaultWidth, vision.DefaultHeight, splitList(f.Frames)...)
		if err != nil {
			return nil, err
		}
		log.Info("replaying frames", "files", len(src.Paths()))
		return src, nil
	}

	src, err := camera.OpenDevice(cfg)
	if err != nil {
		return nil, err
	}
	return src, nil
}

// Hardware opens the robot, or a mock for dry runs.
func (f *Flags) Hardware() (robot.Robot, error) {
	if f.DryRun {
		log.Info("dry run: motors and lights are simulated", "distance", f.Distance)
		return robot.NewMock(f.Distance), nil
	}
	bot, err := robot.Open(robot.DefaultConfig())
	if err != nil {
		return nil, err
	}
	return bot, nil
}

// BehaviorConfig returns the loop config with the flag overrides.
func (f *Flags) BehaviorConfig() behavior.Config {
	cfg := behavior.DefaultConfig()
	cfg.Interval = f.Interval
	return cfg
}

// StartDashboard starts the dashboard in the background when a port is set.
// It returns nil when the dashboard is disabled.
func (f *Flags) StartDashboard() *web.Server {
	if f.Dashboard == "" {
		return nil
	}
	srv := web.NewServer(f.Dashboard)
	srv.StartAsync()
	return srv
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
