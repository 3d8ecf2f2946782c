package main

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/LeonardoGuevara/trilobot-examples/pkg/action"
	"github.com/LeonardoGuevara/trilobot-examples/pkg/behavior"
	"github.com/LeonardoGuevara/trilobot-examples/pkg/palette"
)

func TestFormatReport(t *testing.T) {
	ts := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		name string
		r    behavior.Report
		want string
	}{
		{"gated", behavior.Report{Loop: behavior.LoopBallCount, Cycle: 3, Gated: true, Time: ts}, "out of range"},
		{"count", behavior.Report{Loop: behavior.LoopBallCount, Cycle: 4, Circles: 2, Distance: 31.5, Time: ts}, "2 balls at 31.5cm"},
		{"no balls", behavior.Report{Loop: behavior.LoopColorAction, Cycle: 5, Time: ts}, "no balls [IDLE]"},
		{"tracking", behavior.Report{
			Loop: behavior.LoopColorAction, Cycle: 6, Circles: 1, Time: ts,
			Color: palette.Red, X: 200, Action: action.Tracking, Mode: action.ModeTracking,
		}, "RED x=200 → TRACKING [TRACKING]"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := formatReport(tc.r)
			if !strings.HasPrefix(got, "15:04:05.000") || !strings.Contains(got, tc.want) {
				t.Errorf("got %q, want it to contain %q", got, tc.want)
			}
		})
	}
}

func TestReport_DecodesFromDashboard(t *testing.T) {
	in := behavior.Report{
		Loop:   behavior.LoopColorAction,
		Cycle:  9,
		Color:  palette.Yellow,
		Action: action.SquarePath,
		Mode:   action.ModeActiveTerminal,
		Light:  palette.StatusYellow,
	}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var out behavior.Report
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out.Color != in.Color || out.Action != in.Action || out.Mode != in.Mode || out.Light != in.Light {
		t.Errorf("got %+v", out)
	}
}
