package colour

// Harmony angles in degrees, added to the base hue.
var (
	splitComplementAngles = []float64{150, 210}
	triadicAngles         = [2]float64{120, 240}
	tetradicAngles        = []float64{60, 180, 240}
)

// MaxAnalogousOffset bounds the offset accepted by Analogous.
const MaxAnalogousOffset = 90

// rotations converts c to HSL once and returns one rotated copy per delta.
func rotations(c RGB, deltas ...float64) []HSL {
	hsl := RGBToHSL(c)
	out := make([]HSL, len(deltas))
	for i, d := range deltas {
		out[i] = hsl.Rotate(d)
	}
	return out
}

// Complementary returns the colour opposite c on the hue wheel (+180°).
func Complementary(c RGB, format Format) Value {
	return toValues(rotations(c, 180), format)[0]
}

// SplitComplementary returns the two colours either side of the complement,
// at +150° and +210°.
func SplitComplementary(c RGB, format Format) []Value {
	return toValues(rotations(c, splitComplementAngles...), format)
}

// ComplementaryAt returns one colour per hue offset, in the order given.
func ComplementaryAt(c RGB, offsets []float64, format Format) []Value {
	return toValues(rotations(c, offsets...), format)
}

// Analogous returns the adjacent colour for c. The offset is clamped to
// [0,90]. The hue is reflected rather than shifted: (180 - (h + offset)) mod
// 360. Palettes built on this depend on that exact formula.
func Analogous(c RGB, offset float64) RGB {
	hsl := RGBToHSL(c)
	offset = min(max(offset, 0), MaxAnalogousOffset)
	hsl.H = NormalizeHue(180 - (hsl.H + offset))
	return HSLToRGB(hsl)
}

// Triadic returns the colours at +120° and +240°, each shifted by offset.
func Triadic(c RGB, offset float64, format Format) []Value {
	return TriadicSplit(c, [2]float64{offset, offset}, format)
}

// TriadicSplit is Triadic with a separate offset for each of the two colours.
func TriadicSplit(c RGB, offsets [2]float64, format Format) []Value {
	return toValues(rotations(c,
		triadicAngles[0]+offsets[0],
		triadicAngles[1]+offsets[1],
	), format)
}

// Tetradic returns the colours at +60°, +180° and +240°, each shifted by offset.
func Tetradic(c RGB, offset float64, format Format) []Value {
	deltas := make([]float64, len(tetradicAngles))
	for i, a := range tetradicAngles {
		deltas[i] = a + offset
	}
	return toValues(rotations(c, deltas...), format)
}
