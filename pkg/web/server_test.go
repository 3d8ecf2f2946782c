package web

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/LeonardoGuevara/trilobot-examples/pkg/action"
	"github.com/LeonardoGuevara/trilobot-examples/pkg/behavior"
	"github.com/LeonardoGuevara/trilobot-examples/pkg/palette"
	"github.com/LeonardoGuevara/trilobot-examples/pkg/vision"
)

func get(t *testing.T, s *Server, path string) (int, []byte) {
	t.Helper()
	resp, err := s.app.Test(httptest.NewRequest("GET", path, nil))
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, body
}

func report(cycle int) behavior.Report {
	return behavior.Report{
		RunID:   "run-1",
		Loop:    behavior.LoopColorAction,
		Cycle:   cycle,
		Circles: 1,
		Color:   palette.Red,
		Action:  action.Tracking,
		Mode:    action.ModeTracking,
		Light:   palette.StatusRed,
	}
}

func TestStatus_EmptyThenLatest(t *testing.T) {
	s := NewServer("0")

	if code, _ := get(t, s, "/api/status"); code != 204 {
		t.Errorf("empty status: got %d, want 204", code)
	}

	s.OnReport(report(1))
	s.OnReport(report(2))

	code, body := get(t, s, "/api/status")
	if code != 200 {
		t.Fatalf("status: got %d", code)
	}

	var got struct {
		Cycle  int    `json:"cycle"`
		Color  string `json:"color"`
		Action string `json:"action"`
		Mode   string `json:"mode"`
	}
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("decode: %v (%s)", err, body)
	}
	if got.Cycle != 2 || got.Color != "RED" || got.Action != "TRACKING" || got.Mode != "TRACKING" {
		t.Errorf("status: got %+v", got)
	}
}

func TestReports_BoundedAndLimited(t *testing.T) {
	s := NewServer("0")
	for i := 1; i <= MaxReports+5; i++ {
		s.OnReport(report(i))
	}

	_, body := get(t, s, "/api/reports")
	var all []behavior.Report
	if err := json.Unmarshal(body, &all); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(all) != MaxReports {
		t.Fatalf("got %d reports, want %d", len(all), MaxReports)
	}
	if all[0].Cycle != 6 || all[len(all)-1].Cycle != MaxReports+5 {
		t.Errorf("window: got cycles %d..%d", all[0].Cycle, all[len(all)-1].Cycle)
	}

	_, body = get(t, s, "/api/reports?limit=3")
	var last []behavior.Report
	if err := json.Unmarshal(body, &last); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(last) != 3 || last[2].Cycle != MaxReports+5 {
		t.Errorf("limit=3: got %d reports", len(last))
	}

	if code, _ := get(t, s, "/api/reports?limit=-1"); code != 400 {
		t.Errorf("negative limit: got %d, want 400", code)
	}
}

func TestHealth(t *testing.T) {
	s := NewServer("0")
	s.OnReport(report(1))

	code, body := get(t, s, "/api/health")
	if code != 200 {
		t.Fatalf("health: got %d", code)
	}
	var h Health
	if err := json.Unmarshal(body, &h); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if h.Status != "ok" || h.Cycles != 1 {
		t.Errorf("health: got %+v", h)
	}
}

func TestNoControlEndpoints(t *testing.T) {
	s := NewServer("0")

	resp, err := s.app.Test(httptest.NewRequest("POST", "/api/status", nil))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	if resp.StatusCode != 405 && resp.StatusCode != 404 {
		t.Errorf("POST /api/status: got %d, want 404 or 405", resp.StatusCode)
	}
}

func TestWebsocket_RequiresUpgrade(t *testing.T) {
	s := NewServer("0")
	if code, _ := get(t, s, "/ws/status"); code != 426 {
		t.Errorf("plain GET /ws/status: got %d, want 426", code)
	}
}

func TestReportFrameNotStored(t *testing.T) {
	s := NewServer("0")
	r := report(1)
	frame := vision.NewFrame(vision.DefaultWidth, vision.DefaultHeight)
	r.Frame = &frame
	s.OnReport(r)

	latest, _ := s.Latest()
	if latest.Frame != nil {
		t.Error("stored reports should not keep frames")
	}
}

func TestPreview_JPEG(t *testing.T) {
	frame := vision.NewFrame(vision.DefaultWidth, vision.DefaultHeight)
	r := report(3)
	r.Detections = []vision.Circle{{X: 100, Y: 100, R: 20}, {X: 200, Y: 120, R: 40}}
	r.Selected = &r.Detections[1]

	jpeg, err := Preview(frame, r, 80)
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if !bytes.HasPrefix(jpeg, []byte{0xff, 0xd8}) {
		t.Errorf("not a JPEG: % x", jpeg[:4])
	}

	for _, b := range frame.Pix {
		if b != 0 {
			t.Fatal("Preview should not draw on the frame")
		}
	}
}
