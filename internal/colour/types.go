// Package colour converts between hex, RGB, HSL and CMYK representations and
// derives harmonious colours (complementary, analogous, triadic, tetradic and
// monochrome ladders) from a single base colour.
package colour

import (
	"fmt"
	"math"
)

// RGB represents a colour in RGB format. Channels are integers in [0,255];
// values outside that range are rejected by Validate rather than clamped.
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Validate checks that every channel is within [0,255].
func (rgb RGB) Validate() error {
	channels := []struct {
		name  string
		value int
	}{
		{"red", rgb.R},
		{"green", rgb.G},
		{"blue", rgb.B},
	}
	for _, ch := range channels {
		if ch.value < 0 || ch.value > 255 {
			return fmt.Errorf("%s channel %d: %w", ch.name, ch.value, ErrInvalidRange)
		}
	}
	return nil
}

// HSL represents a colour in HSL space.
// H is in degrees [0,360); S and L are in [0,1].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// String returns the HSL colour in CSS notation, e.g. "hsl(204, 100%, 50%)".
func (hsl HSL) String() string {
	return fmt.Sprintf("hsl(%.0f, %.0f%%, %.0f%%)", hsl.H, hsl.S*100, hsl.L*100)
}

// Rotate returns the colour with its hue shifted by delta degrees and wrapped
// back into [0,360). Saturation and lightness are unchanged.
func (hsl HSL) Rotate(delta float64) HSL {
	return HSL{H: NormalizeHue(hsl.H + delta), S: hsl.S, L: hsl.L}
}

// NormalizeHue wraps any angle into [0,360).
func NormalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// -1e-15 + 360 rounds to 360 in float64.
	if h >= 360 {
		h = 0
	}
	return h
}

// CMYK represents a colour in the subtractive CMYK model, each component in [0,1].
type CMYK struct {
	C float64 `json:"c"`
	M float64 `json:"m"`
	Y float64 `json:"y"`
	K float64 `json:"k"`
}

// String returns the CMYK colour as percentages, e.g. "cmyk(100%, 39%, 0%, 0%)".
func (c CMYK) String() string {
	return fmt.Sprintf("cmyk(%.0f%%, %.0f%%, %.0f%%, %.0f%%)", c.C*100, c.M*100, c.Y*100, c.K*100)
}
