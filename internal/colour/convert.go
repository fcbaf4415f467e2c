package colour

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// MaxDecimal is the largest colour expressible as a 6-digit hex value.
const MaxDecimal = 0xffffff

// HexToRGB splits a 6-digit hex string (optional leading '#') into its three
// channels. Use Normalize first to accept 3-digit input.
func HexToRGB(hex string) (RGB, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if s == "" {
		return RGB{}, fmt.Errorf("hex to rgb: %w", ErrUndefinedInput)
	}
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("hex to rgb: %q has %d digits, want 6: %w", hex, len(s), ErrInvalidFormat)
	}

	var ch [3]int
	for i := range ch {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("hex to rgb: %q: %w", hex, ErrInvalidFormat)
		}
		ch[i] = int(v)
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// RGBToHex formats each channel as zero-padded lowercase hex in red, green,
// blue order, without a leading '#'.
func RGBToHex(rgb RGB) (string, error) {
	if err := rgb.Validate(); err != nil {
		return "", fmt.Errorf("rgb to hex: %w", err)
	}
	return formatHex(rgb), nil
}

// formatHex assumes rgb has already been validated or produced by HSLToRGB.
func formatHex(rgb RGB) string {
	return fmt.Sprintf("%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// RGBToHSL converts RGB to HSL colour space.
// Returns hue (0-360), saturation (0-1), lightness (0-1).
func RGBToHSL(rgb RGB) HSL {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	l := (maxVal + minVal) / 2.0

	// Achromatic.
	if delta == 0 {
		return HSL{H: 0, S: 0, L: l}
	}

	var s float64
	if l > 0.5 {
		s = delta / (2.0 - maxVal - minVal)
	} else {
		s = delta / (maxVal + minVal)
	}

	var h float64
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}

	return HSL{H: NormalizeHue(h * 60), S: s, L: l}
}

// HSLToRGB converts HSL to RGB colour space. The hue is wrapped into [0,360)
// and each channel is rounded to the nearest integer in [0,255].
func HSLToRGB(hsl HSL) RGB {
	h := NormalizeHue(hsl.H)
	s := clamp01(hsl.S)
	l := clamp01(hsl.L)

	if s == 0 {
		v := toChannel(l)
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return RGB{
		R: toChannel(hueToRGB(p, q, h+120)),
		G: toChannel(hueToRGB(p, q, h)),
		B: toChannel(hueToRGB(p, q, h-120)),
	}
}

// hueToRGB evaluates one channel of the six-sextant HSL function, t in degrees.
func hueToRGB(p, q, t float64) float64 {
	t = NormalizeHue(t)

	if t < 60 {
		return p + (q-p)*t/60
	}
	if t < 180 {
		return q
	}
	if t < 240 {
		return p + (q-p)*(240-t)/60
	}
	return p
}

func toChannel(v float64) int {
	return int(math.Round(clamp01(v) * 255))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// RGBToCMYK converts RGB to the subtractive CMYK model.
// Pure black has no chromatic ink: {0, 0, 0, 1}.
func RGBToCMYK(rgb RGB) CMYK {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	k := 1 - math.Max(r, math.Max(g, b))
	if k >= 1 {
		return CMYK{K: 1}
	}

	return CMYK{
		C: (1 - r - k) / (1 - k),
		M: (1 - g - k) / (1 - k),
		Y: (1 - b - k) / (1 - k),
		K: k,
	}
}

// CMYKToRGB converts CMYK back to RGB. Components outside [0,1] are clamped.
func CMYKToRGB(c CMYK) RGB {
	k := clamp01(c.K)
	return RGB{
		R: toChannel((1 - clamp01(c.C)) * (1 - k)),
		G: toChannel((1 - clamp01(c.M)) * (1 - k)),
		B: toChannel((1 - clamp01(c.Y)) * (1 - k)),
	}
}

// HexToDec parses a 3- or 6-digit hex colour (optional '#') into its integer value.
func HexToDec(code string) (int, error) {
	hex, err := Normalize(Hex(code))
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("hex to decimal %q: %w", code, ErrInvalidFormat)
	}
	return int(v), nil
}

// DecToHex formats an integer colour as a zero-padded 6-digit hex string.
func DecToHex(v int) (string, error) {
	if v < 0 || v > MaxDecimal {
		return "", fmt.Errorf("decimal colour %d: %w", v, ErrInvalidRange)
	}
	return fmt.Sprintf("%06x", v), nil
}

// RotateHex walks the whole 24-bit colour space as if it were a wheel: the
// angle selects a fraction of 0xffffff which is added to the colour's integer
// value, wrapping around. Unlike the HSL harmonies this does not preserve
// saturation or lightness.
func RotateHex(code string, angle float64) (string, error) {
	dec, err := HexToDec(code)
	if err != nil {
		return "", err
	}
	frac := NormalizeHue(angle) / 360
	v := math.Round(math.Mod(frac*MaxDecimal+float64(dec), MaxDecimal))
	return DecToHex(int(v))
}

// Grayscale returns the colour with its saturation removed, keeping its HSL lightness.
func Grayscale(rgb RGB) RGB {
	hsl := RGBToHSL(rgb)
	hsl.S = 0
	return HSLToRGB(hsl)
}

// SortByHue converts colours to HSL ordered by ascending hue. Equal hues keep
// their input order.
func SortByHue(colours []RGB) []HSL {
	out := make([]HSL, len(colours))
	for i, c := range colours {
		out[i] = RGBToHSL(c)
	}
	slices.SortStableFunc(out, func(a, b HSL) int {
		return cmp.Compare(a.H, b.H)
	})
	return out
}
