package action

import (
	"time"

	"github.com/LeonardoGuevara/trilobot-examples/pkg/robot"
)

// Clock blocks for a duration.
type Clock interface {
	Sleep(d time.Duration)
}

// SystemClock sleeps on the wall clock.
type SystemClock struct{}

// Sleep implements Clock.
func (SystemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

// Scheduler runs plans synchronously. A running plan is not interruptible:
// perception does not happen until it returns.
type Scheduler struct {
	wheels robot.WheelController
	clock  Clock
}

// NewScheduler creates a scheduler. A nil clock uses SystemClock.
func NewScheduler(wheels robot.WheelController, clock Clock) *Scheduler {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Scheduler{wheels: wheels, clock: clock}
}

// Run sets each step's speeds and holds them for its duration.
func (s *Scheduler) Run(p Plan) error {
	for _, st := range p {
		if err := s.wheels.SetMotorSpeeds(st.Left, st.Right); err != nil {
			return err
		}
		if st.Duration > 0 {
			s.clock.Sleep(st.Duration)
		}
	}
	return nil
}
