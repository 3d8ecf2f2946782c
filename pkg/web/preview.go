package web

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/LeonardoGuevara/trilobot-examples/pkg/behavior"
	"github.com/LeonardoGuevara/trilobot-examples/pkg/vision"
)

var (
	detectionColor = color.RGBA{0, 255, 0, 0}
	textColor      = color.RGBA{255, 255, 255, 0}
)

// Preview draws the report's detections on the frame and encodes it as JPEG.
// Every circle gets a thin outline; the selected one is outlined in the
// status light color.
func Preview(frame vision.Frame, r behavior.Report, quality int) ([]byte, error) {
	src, err := frame.Mat()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	// Draw on a copy so the frame itself stays untouched
	mat := src.Clone()
	defer mat.Close()

	for _, c := range r.Detections {
		gocv.Circle(&mat, image.Pt(c.X, c.Y), c.R, detectionColor, 1)
	}
	if r.Selected != nil {
		gocv.Circle(&mat, image.Pt(r.Selected.X, r.Selected.Y), r.Selected.R, r.Light, 3)
	}

	label := fmt.Sprintf("#%d %d balls", r.Cycle, r.Circles)
	if r.Loop == behavior.LoopColorAction {
		label = fmt.Sprintf("#%d %s %s", r.Cycle, r.Color, r.Action)
	} else if r.Echo {
		label += fmt.Sprintf(" %.0fcm", r.Distance)
	}
	gocv.PutText(&mat, label, image.Pt(6, 18), gocv.FontHersheySimplex, 0.5, textColor, 1)

	buf, err := gocv.IMEncodeWithParams(gocv.JPEGFileExt, mat, []int{gocv.IMWriteJpegQuality, quality})
	if err != nil {
		return nil, fmt.Errorf("jpeg: %w", err)
	}
	defer buf.Close()

	return append([]byte(nil), buf.GetBytes()...), nil
}
