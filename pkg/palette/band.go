package palette

import "gocv.io/x/gocv"

// HSVRange is an inclusive HSV box in OpenCV scale (H 0-180, S and V 0-255).
type HSVRange struct {
	Lower [3]uint8
	Upper [3]uint8
}

func (r HSVRange) lowerScalar() gocv.Scalar {
	return gocv.NewScalar(float64(r.Lower[0]), float64(r.Lower[1]), float64(r.Lower[2]), 0)
}

func (r HSVRange) upperScalar() gocv.Scalar {
	return gocv.NewScalar(float64(r.Upper[0]), float64(r.Upper[1]), float64(r.Upper[2]), 0)
}

// Band is a named color and the HSV ranges that make it up.
// A pixel belongs to the band if any range contains it.
type Band struct {
	Color  Color
	Ranges []HSVRange
}

func hueRange(lo, hi uint8) HSVRange {
	return HSVRange{
		Lower: [3]uint8{lo, 0, 0},
		Upper: [3]uint8{hi, 255, 255},
	}
}

// DefaultBands returns the palette in evaluation order: RED, YELLOW, GREEN, BLUE.
// Red wraps around hue 0 and needs two ranges.
func DefaultBands() []Band {
	return []Band{
		{Color: Red, Ranges: []HSVRange{hueRange(0, 10), hueRange(170, 180)}},
		{Color: Yellow, Ranges: []HSVRange{hueRange(15, 36)}},
		{Color: Green, Ranges: []HSVRange{hueRange(36, 70)}},
		{Color: Blue, Ranges: []HSVRange{hueRange(100, 135)}},
	}
}
