package action

import (
	"fmt"
	"image/color"
	"strings"
	"sync"

	"github.com/LeonardoGuevara/trilobot-examples/pkg/debug"
	"github.com/LeonardoGuevara/trilobot-examples/pkg/palette"
	"github.com/LeonardoGuevara/trilobot-examples/pkg/robot"
)

// Outcome describes what one controller step did.
type Outcome struct {
	Previous State      `json:"previous"`
	State    State      `json:"state"`
	Action   Action     `json:"action"` // Executed this step, None if nothing moved
	Light    color.RGBA `json:"light"`  // Underlighting after the step

	// Set when the tracking law ran
	Tracking *TrackingCommand `json:"tracking,omitempty"`
}

// Controller owns the action state and drives the actuators.
// Step must be called from a single loop; the mutex only guards State reads.
type Controller struct {
	config    Config
	actuator  robot.Actuator
	scheduler *Scheduler

	mu    sync.Mutex
	state State
	light color.RGBA
}

// NewController creates a controller in the initial state.
func NewController(actuator robot.Actuator, clock Clock, cfg Config) (*Controller, error) {
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("action config: %s", strings.Join(errs, "; "))
	}
	return &Controller{
		config:    cfg,
		actuator:  actuator,
		scheduler: NewScheduler(actuator, clock),
		light:     palette.StatusOff,
	}, nil
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Step runs one transition and its side effects. Timed plans block until
// they finish. Actuator errors are returned as-is and leave the state
// unchanged.
func (c *Controller) Step(obs Observation) (Outcome, error) {
	c.mu.Lock()
	prev := c.state
	c.mu.Unlock()

	next, act := Next(prev, obs)
	out := Outcome{Previous: prev, State: next, Action: act}

	switch {
	case !obs.Detected():
		if err := c.fill(palette.StatusOff); err != nil {
			return out, err
		}
		if err := c.actuator.DisableMotors(); err != nil {
			return out, err
		}
		if prev.ActionCompleted {
			debug.Log("🔄 Ball gone, action reset\n")
		}

	case act == None:
		// Latched: the ball is still there but its action already ran.

	case act == Tracking:
		if err := c.fill(obs.Color.RGBA()); err != nil {
			return out, err
		}
		cmd := c.config.Tracking.Command(obs.X, obs.Width)
		out.Tracking = &cmd
		debug.Log("🎯 Tracking: err=%.0fpx v=%.2f disable=%v\n", cmd.Error, cmd.Velocity, cmd.Disable)
		if err := cmd.Apply(c.actuator); err != nil {
			return out, err
		}

	default:
		if err := c.fill(obs.Color.RGBA()); err != nil {
			return out, err
		}
		plan := c.config.PlanFor(act)
		debug.Log("▶️  %s started (%s, %d steps)\n", act, plan.Duration(), len(plan))
		if err := c.scheduler.Run(plan); err != nil {
			return out, err
		}
		debug.Log("✅ %s completed\n", act)
	}

	c.mu.Lock()
	c.state = next
	out.Light = c.light
	c.mu.Unlock()
	return out, nil
}

func (c *Controller) fill(rgba color.RGBA) error {
	if err := c.actuator.FillUnderlighting(rgba); err != nil {
		return err
	}
	c.mu.Lock()
	c.light = rgba
	c.mu.Unlock()
	return nil
}
