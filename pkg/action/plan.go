package action

import (
	"time"

	"github.com/LeonardoGuevara/trilobot-examples/pkg/robot"
)

// Step holds both wheel speeds for Duration.
type Step struct {
	Left     float64       `json:"left"`
	Right    float64       `json:"right"`
	Duration time.Duration `json:"duration"`
}

// Plan is an open-loop sequence of steps. Plans built by Config end with a
// zero-duration stop.
type Plan []Step

// Duration is the total time the plan blocks for.
func (p Plan) Duration() time.Duration {
	var total time.Duration
	for _, s := range p {
		total += s.Duration
	}
	return total
}

func step(s robot.Speeds, d time.Duration) Step {
	return Step{Left: s.Left, Right: s.Right, Duration: d}
}

// PlanFor builds the timed plan of a terminal action.
// Non-terminal actions have no plan.
func (c Config) PlanFor(a Action) Plan {
	forward := robot.Speeds{Left: c.ForwardSpeed, Right: c.ForwardSpeed}
	stop := step(robot.Halt, 0)

	switch a {
	case ForwardPulse:
		return Plan{step(forward, c.ForwardDuration), stop}

	case SquarePath:
		turn := robot.Speeds{Left: c.TurnSpeed, Right: -c.TurnSpeed}
		plan := make(Plan, 0, 2*c.SquareSides+1)
		for i := 0; i < c.SquareSides; i++ {
			plan = append(plan, step(forward, c.SquareSide), step(turn, c.SquareTurn))
		}
		return append(plan, stop)

	case CircularPath:
		return Plan{step(robot.Speeds{Left: c.ArcLeft, Right: c.ArcRight}, c.ArcDuration), stop}

	default:
		return nil
	}
}
