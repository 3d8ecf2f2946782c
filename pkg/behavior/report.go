package behavior

import (
	"image/color"
	"time"

	"github.com/LeonardoGuevara/trilobot-examples/pkg/action"
	"github.com/LeonardoGuevara/trilobot-examples/pkg/palette"
	"github.com/LeonardoGuevara/trilobot-examples/pkg/vision"
)

// Loop names as they appear in reports.
const (
	LoopBallCount   = "ballcount"
	LoopColorAction = "coloraction"
)

// Report is what one cycle saw and did.
type Report struct {
	RunID string    `json:"run_id"`
	Loop  string    `json:"loop"`
	Cycle int       `json:"cycle"`
	Time  time.Time `json:"time"`

	// Distance gate (ball counting only)
	Distance float64 `json:"distance"`
	Echo     bool    `json:"echo"`
	Gated    bool    `json:"gated"` // Perception skipped this cycle

	// Perception
	Circles    int             `json:"circles"`
	Detections []vision.Circle `json:"detections,omitempty"`
	Selected   *vision.Circle  `json:"selected,omitempty"`
	Color      palette.Color   `json:"color"`
	X          int             `json:"x"`

	// Action (color action only)
	Action   action.Action           `json:"action"`
	Mode     action.Mode             `json:"mode"`
	Tracking *action.TrackingCommand `json:"tracking,omitempty"`

	Light color.RGBA `json:"light"`

	// Frame is the processed frame, nil when nothing was captured.
	Frame *vision.Frame `json:"-"`
}

// Observer receives every report. OnReport is called from the loop
// goroutine and must not block.
type Observer interface {
	OnReport(Report)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Report)

// OnReport implements Observer.
func (f ObserverFunc) OnReport(r Report) {
	f(r)
}

// Observers fans a report out to several observers in order.
type Observers []Observer

// OnReport implements Observer.
func (o Observers) OnReport(r Report) {
	for _, obs := range o {
		obs.OnReport(r)
	}
}
