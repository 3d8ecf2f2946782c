package behavior

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"github.com/LeonardoGuevara/trilobot-examples/pkg/action"
	"github.com/LeonardoGuevara/trilobot-examples/pkg/camera"
	"github.com/LeonardoGuevara/trilobot-examples/pkg/palette"
	"github.com/LeonardoGuevara/trilobot-examples/pkg/vision"
)

// DetectingLight is shown while the counter sees at least one ball.
var DetectingLight = palette.StatusRed

// BallCounter counts balls in view whenever something is within range.
// It keeps no state between cycles apart from the cycle number.
type BallCounter struct {
	source   camera.Source
	detector vision.Detector
	hw       Hardware
	gate     *DistanceGate
	config   Config

	observer Observer
	runID    string
	logger   *slog.Logger
	cycle    int
}

// NewBallCounter wires the counter. A nil clock uses action.SystemClock.
func NewBallCounter(src camera.Source, det vision.Detector, hw Hardware, clock action.Clock, cfg Config) (*BallCounter, error) {
	if err := cfg.check(); err != nil {
		return nil, err
	}
	id, logger := newRun(LoopBallCount)
	return &BallCounter{
		source:   src,
		detector: det,
		hw:       hw,
		gate:     NewDistanceGate(hw, clock, cfg.Gate),
		config:   cfg,
		runID:    id,
		logger:   logger,
	}, nil
}

// SetObserver registers the report observer. Call before Run.
func (b *BallCounter) SetObserver(o Observer) {
	b.observer = o
}

// RunID identifies this counter's reports.
func (b *BallCounter) RunID() string {
	return b.runID
}

// Cycle runs one gate, detect, light pass.
func (b *BallCounter) Cycle(ctx context.Context) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	b.cycle++
	r := Report{
		RunID: b.runID,
		Loop:  LoopBallCount,
		Cycle: b.cycle,
		Time:  time.Now(),
	}

	reading, err := b.gate.Read()
	if err != nil {
		return r, fmt.Errorf("distance: %w", err)
	}
	r.Distance = reading.Distance
	r.Echo = reading.Echo

	if !b.gate.Open(reading) {
		r.Gated = true
		if err := b.light(&r, palette.StatusOff); err != nil {
			return r, err
		}
		b.logger.Debug("out of range", "cycle", r.Cycle, "distance", r.Distance, "echo", r.Echo)
		b.notify(r)
		return r, nil
	}

	frame, err := b.source.Capture()
	if err != nil {
		return r, fmt.Errorf("capture: %w", err)
	}
	r.Frame = &frame

	circles, err := b.detector.Detect(frame)
	if err != nil {
		return r, fmt.Errorf("detect: %w", err)
	}
	r.Circles = len(circles)
	r.Detections = circles

	lightColor := palette.StatusOff
	if len(circles) > 0 {
		lightColor = DetectingLight
	}
	if err := b.light(&r, lightColor); err != nil {
		return r, err
	}

	b.logger.Info("balls counted", "cycle", r.Cycle, "distance", r.Distance, "count", r.Circles)
	b.notify(r)
	return r, nil
}

// Run cycles until ctx is cancelled or a collaborator fails.
func (b *BallCounter) Run(ctx context.Context) error {
	return run(ctx, b.config.Interval, b.logger, b.hw, b.Cycle)
}

func (b *BallCounter) light(r *Report, c color.RGBA) error {
	if err := b.hw.FillUnderlighting(c); err != nil {
		return fmt.Errorf("underlighting: %w", err)
	}
	r.Light = c
	return nil
}

func (b *BallCounter) notify(r Report) {
	if b.observer != nil {
		b.observer.OnReport(r)
	}
}
