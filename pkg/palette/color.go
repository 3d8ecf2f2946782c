// Package palette classifies the color of a detected ball against a fixed
// set of HSV color bands.
package palette

import (
	"fmt"
	"image/color"
	"strings"
)

// Color is a discrete ball color label.
type Color int

const (
	Unknown Color = iota
	Red
	Yellow
	Green
	Blue
)

// Status light colors, as RGB fills for the underlighting.
var (
	StatusOff    = color.RGBA{0, 0, 0, 255}
	StatusRed    = color.RGBA{255, 0, 0, 255}
	StatusYellow = color.RGBA{255, 255, 0, 255}
	StatusGreen  = color.RGBA{0, 255, 0, 255}
	StatusBlue   = color.RGBA{0, 0, 255, 255}
)

var colorNames = map[Color]string{
	Unknown: "UNKNOWN",
	Red:     "RED",
	Yellow:  "YELLOW",
	Green:   "GREEN",
	Blue:    "BLUE",
}

// String implements fmt.Stringer.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

// Known reports whether c is one of the palette colors.
func (c Color) Known() bool {
	return c >= Red && c <= Blue
}

// RGBA returns the underlighting fill for the color. Unknown is off (black).
func (c Color) RGBA() color.RGBA {
	switch c {
	case Red:
		return StatusRed
	case Yellow:
		return StatusYellow
	case Green:
		return StatusGreen
	case Blue:
		return StatusBlue
	default:
		return StatusOff
	}
}

// ParseColor parses a color name as produced by String.
func ParseColor(s string) (Color, error) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	for c, name := range colorNames {
		if name == upper {
			return c, nil
		}
	}
	return Unknown, fmt.Errorf("palette: unknown color name %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
