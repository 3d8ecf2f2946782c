package palette

// Vote is one band's evidence inside the selected circle's bounding square.
type Vote struct {
	Color   Color `json:"color"`
	Present bool  `json:"present"`
	Mass    int   `json:"mass"` // Count of in-band pixels (zeroth moment)
}

// SelectWinner picks the color from votes given in band order.
// The first present band is the initial candidate; a later present band
// replaces it only with a strictly greater mass. No present band is Unknown.
func SelectWinner(votes []Vote) Color {
	best := -1
	for i, v := range votes {
		if !v.Present {
			continue
		}
		if best < 0 || v.Mass > votes[best].Mass {
			best = i
		}
	}
	if best < 0 {
		return Unknown
	}
	return votes[best].Color
}
