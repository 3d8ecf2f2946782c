package behavior

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/LeonardoGuevara/trilobot-examples/pkg/action"
	"github.com/LeonardoGuevara/trilobot-examples/pkg/camera"
	"github.com/LeonardoGuevara/trilobot-examples/pkg/palette"
	"github.com/LeonardoGuevara/trilobot-examples/pkg/vision"
)

// ColorAction runs capture, detect, classify and act. The controller holds
// the only state carried between cycles.
type ColorAction struct {
	source     camera.Source
	detector   vision.Detector
	classifier Classifier
	controller *action.Controller
	hw         Hardware
	config     Config

	observer Observer
	runID    string
	logger   *slog.Logger
	cycle    int
}

// NewColorAction wires the color action loop. A nil clock uses action.SystemClock.
func NewColorAction(src camera.Source, det vision.Detector, cls Classifier, hw Hardware, clock action.Clock, actionCfg action.Config, cfg Config) (*ColorAction, error) {
	if err := cfg.check(); err != nil {
		return nil, err
	}
	ctrl, err := action.NewController(hw, clock, actionCfg)
	if err != nil {
		return nil, err
	}

	id, logger := newRun(LoopColorAction)
	return &ColorAction{
		source:     src,
		detector:   det,
		classifier: cls,
		controller: ctrl,
		hw:         hw,
		config:     cfg,
		runID:      id,
		logger:     logger,
	}, nil
}

// SetObserver registers the report observer. Call before Run.
func (c *ColorAction) SetObserver(o Observer) {
	c.observer = o
}

// RunID identifies this loop's reports.
func (c *ColorAction) RunID() string {
	return c.runID
}

// State returns the controller state.
func (c *ColorAction) State() action.State {
	return c.controller.State()
}

// Cycle runs one perception pass and the resulting controller step.
// A timed action blocks the cycle until it finishes.
func (c *ColorAction) Cycle(ctx context.Context) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	c.cycle++
	r := Report{
		RunID: c.runID,
		Loop:  LoopColorAction,
		Cycle: c.cycle,
		Time:  time.Now(),
	}

	frame, err := c.source.Capture()
	if err != nil {
		return r, fmt.Errorf("capture: %w", err)
	}
	r.Frame = &frame

	circles, err := c.detector.Detect(frame)
	if err != nil {
		return r, fmt.Errorf("detect: %w", err)
	}
	r.Circles = len(circles)
	r.Detections = circles

	obs := action.Observation{Circles: len(circles), Color: palette.Unknown, Width: frame.Width}
	if len(circles) > 0 {
		res, err := c.classifier.Classify(frame, circles)
		if err != nil {
			return r, fmt.Errorf("classify: %w", err)
		}
		obs.Color = res.Color
		obs.X = res.X
		selected := res.Circle
		r.Selected = &selected
	}
	r.Color = obs.Color
	r.X = obs.X

	out, err := c.controller.Step(obs)
	if err != nil {
		return r, fmt.Errorf("action: %w", err)
	}
	r.Action = out.Action
	r.Mode = out.State.Mode()
	r.Tracking = out.Tracking
	r.Light = out.Light

	c.log(r, out)
	c.notify(r)
	return r, nil
}

// Run cycles until ctx is cancelled or a collaborator fails.
func (c *ColorAction) Run(ctx context.Context) error {
	return run(ctx, c.config.Interval, c.logger, c.hw, c.Cycle)
}

func (c *ColorAction) log(r Report, out action.Outcome) {
	switch {
	case r.Circles == 0:
		c.logger.Debug("no balls detected", "cycle", r.Cycle)
	case !r.Color.Known():
		c.logger.Debug("unknown color", "cycle", r.Cycle, "circles", r.Circles)
	case out.Action.Terminal():
		c.logger.Info("action completed", "cycle", r.Cycle, "color", r.Color, "action", out.Action)
	case out.Action == action.Tracking:
		c.logger.Debug("tracking", "cycle", r.Cycle, "x", r.X, "velocity", out.Tracking.Velocity)
	}
	if out.Previous.ActionCompleted && !out.State.ActionCompleted {
		c.logger.Info("action reset", "cycle", r.Cycle)
	}
}

func (c *ColorAction) notify(r Report) {
	if c.observer != nil {
		c.observer.OnReport(r)
	}
}
