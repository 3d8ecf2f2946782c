package vision

import (
	"fmt"
	"image"
)

// Circle is a detected circle in pixel space.
type Circle struct {
	X int `json:"x"`
	Y int `json:"y"`
	R int `json:"r"`
}

// String implements fmt.Stringer.
func (c Circle) String() string {
	return fmt.Sprintf("(%d,%d r=%d)", c.X, c.Y, c.R)
}

// Bounds returns the circle's bounding square [x-r, x+r) × [y-r, y+r)
// clipped to a width×height frame. The result may be empty.
func (c Circle) Bounds(width, height int) image.Rectangle {
	box := image.Rect(c.X-c.R, c.Y-c.R, c.X+c.R, c.Y+c.R)
	return box.Intersect(image.Rect(0, 0, width, height))
}

// SelectLargest returns the index of the circle with the largest radius.
// Ties keep the earliest circle. Returns -1 for an empty slice.
func SelectLargest(circles []Circle) int {
	if len(circles) == 0 {
		return -1
	}
	best := 0
	for i := 1; i < len(circles); i++ {
		if circles[i].R > circles[best].R {
			best = i
		}
	}
	return best
}
