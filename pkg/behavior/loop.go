package behavior

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/LeonardoGuevara/trilobot-examples/internal/log"
	"github.com/LeonardoGuevara/trilobot-examples/pkg/palette"
	"github.com/LeonardoGuevara/trilobot-examples/pkg/robot"
	"github.com/LeonardoGuevara/trilobot-examples/pkg/vision"
)

// Hardware is the part of the robot the loops talk to.
type Hardware interface {
	robot.Actuator
	robot.RangeSensor
}

// Classifier picks the color of the largest circle.
type Classifier interface {
	Classify(frame vision.Frame, circles []vision.Circle) (palette.Result, error)
}

// Config holds loop settings shared by both behaviors.
type Config struct {
	// Interval is the pause between cycles. 0 runs back to back.
	Interval time.Duration

	// Gate is only used by the ball counter.
	Gate GateConfig
}

// DefaultConfig returns back-to-back cycles and the default gate.
func DefaultConfig() Config {
	return Config{
		Interval: 0,
		Gate:     DefaultGateConfig(),
	}
}

// Validate checks if the config values are within valid ranges.
func (c *Config) Validate() []string {
	var errors []string
	if c.Interval < 0 {
		errors = append(errors, "interval must not be negative")
	}
	return append(errors, c.Gate.Validate()...)
}

func (c *Config) check() error {
	if errs := c.Validate(); len(errs) > 0 {
		return fmt.Errorf("behavior config: %s", strings.Join(errs, "; "))
	}
	return nil
}

// newRun tags a loop run with a fresh ID.
func newRun(loop string) (string, *slog.Logger) {
	id := uuid.NewString()
	return id, log.With("loop", loop, "run_id", id)
}

// run calls cycle until ctx is done or a cycle fails. On the way out the
// motors are disabled and the light turned off. Cancellation is a clean
// stop and returns nil.
func run(ctx context.Context, interval time.Duration, logger *slog.Logger, hw robot.Actuator, cycle func(context.Context) (Report, error)) error {
	logger.Info("loop started")
	defer safeStop(hw, logger)

	var timer *time.Timer
	if interval > 0 {
		timer = time.NewTimer(interval)
		defer timer.Stop()
	}

	for {
		if _, err := cycle(ctx); err != nil {
			if ctx.Err() != nil {
				logger.Info("loop stopped")
				return nil
			}
			logger.Error("loop halted", "error", err)
			return err
		}

		if timer == nil {
			if ctx.Err() != nil {
				logger.Info("loop stopped")
				return nil
			}
			continue
		}

		timer.Reset(interval)
		select {
		case <-ctx.Done():
			logger.Info("loop stopped")
			return nil
		case <-timer.C:
		}
	}
}

func safeStop(hw robot.Actuator, logger *slog.Logger) {
	if err := hw.DisableMotors(); err != nil {
		logger.Warn("disable motors on exit", "error", err)
	}
	if err := hw.FillUnderlighting(palette.StatusOff); err != nil {
		logger.Warn("lights off on exit", "error", err)
	}
}
