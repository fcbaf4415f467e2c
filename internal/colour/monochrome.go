package colour

import "math"

// LadderSize is the number of tones produced by MonochromeLadder.
const LadderSize = 5

// Periods used to fold ladder components back into range. Lightness is kept
// below 0.7 so the lightest tone never washes out to white.
const (
	saturationPeriod = 1.0
	lightnessPeriod  = 0.7
)

// hueShift picks the hue increment for the ladder midpoint from the base
// lightness. Dark colours drift towards +20°, light ones towards -20°.
var hueShift = []struct {
	contains func(l float64) bool
	delta    float64
}{
	{func(l float64) bool { return l >= 0.8 && l <= 1 }, -20},
	{func(l float64) bool { return l > 0.6 && l < 0.8 }, -10},
	{func(l float64) bool { return l >= 0.4 && l <= 0.6 }, 0},
	{func(l float64) bool { return l >= 0.2 && l < 0.4 }, 10},
	{func(l float64) bool { return l >= 0 && l < 0.2 }, 20},
}

// componentBand spreads one HSL component (saturation or lightness) into five
// steps between the base value and the ladder midpoint. The formulas are
// empirically tuned per band and do not share a closed form.
type componentBand struct {
	name     string
	contains func(v float64) bool
	spread   func(base, mid float64) [LadderSize]float64
}

var componentBands = []componentBand{
	{
		name:     "A",
		contains: func(v float64) bool { return v >= 0 && v <= 0.2 },
		spread: func(base, mid float64) [LadderSize]float64 {
			avg := (mid + base) / 2
			d := mid - avg
			return [LadderSize]float64{base, avg, mid, mid + d, mid + d*2}
		},
	},
	{
		name:     "B",
		contains: func(v float64) bool { return v > 0.2 && v <= 0.4 },
		spread: func(base, mid float64) [LadderSize]float64 {
			d := mid - base
			return [LadderSize]float64{base - d, base, mid, base + d, base + d*2}
		},
	},
	{
		name:     "C",
		contains: func(v float64) bool { return v > 0.4 && v < 0.6 },
		spread: func(base, _ float64) [LadderSize]float64 {
			// The step is 20 whole units, not 0.2; folding by the period
			// brings the values back into range.
			const d = 20
			return [LadderSize]float64{base - d*2, base - d, base, base + d, base + d*2}
		},
	},
	{
		name:     "D",
		contains: func(v float64) bool { return v >= 0.6 && v < 0.8 },
		spread: func(base, mid float64) [LadderSize]float64 {
			d := base - mid
			return [LadderSize]float64{mid - d*2, mid - d, mid, base, base + d}
		},
	},
	{
		name:     "E",
		contains: func(v float64) bool { return v >= 0.8 && v <= 1 },
		spread: func(base, mid float64) [LadderSize]float64 {
			avg := (mid + base) / 2
			d := mid + avg
			return [LadderSize]float64{mid - d*2, mid - d, mid, avg, base}
		},
	},
}

// bandFor returns the band containing v, clamped into [0,1] first.
func bandFor(v float64) componentBand {
	v = clamp01(v)
	for _, b := range componentBands {
		if b.contains(v) {
			return b
		}
	}
	// Unreachable for v in [0,1]: the bands tile the unit interval.
	return componentBands[len(componentBands)-1]
}

func midpointShift(l float64) float64 {
	l = clamp01(l)
	for _, s := range hueShift {
		if s.contains(l) {
			return s.delta
		}
	}
	return 0
}

// componentLadder spreads base towards mid using the band of base and folds
// every step into [0, period).
func componentLadder(base, mid, period float64) [LadderSize]float64 {
	steps := bandFor(base).spread(base, mid)
	for i, v := range steps {
		steps[i] = fold(v, period)
	}
	return steps
}

// fold reduces |v| modulo period, rounded to 4 decimal places.
func fold(v, period float64) float64 {
	r := math.Mod(math.Mod(math.Abs(v), period)+period, period)
	return math.Round(r*1e4) / 1e4
}

// MonochromeLadder builds the five-step tonal ladder for c before any
// deduplication. The midpoint has saturation and lightness equal to the mean
// of the base saturation and lightness, and a hue nudged by the base
// lightness band; the hues fan out at -20, -10, 0, +10 and +20 degrees around it.
func MonochromeLadder(c RGB) [LadderSize]HSL {
	hsl := RGBToHSL(c)
	basePoint := (hsl.S + hsl.L) / 2
	mid := HSL{
		H: hsl.H + midpointShift(hsl.L),
		S: basePoint,
		L: basePoint,
	}

	sats := componentLadder(hsl.S, mid.S, saturationPeriod)
	lights := componentLadder(hsl.L, mid.L, lightnessPeriod)

	var ladder [LadderSize]HSL
	for i := range ladder {
		ladder[i] = HSL{
			H: NormalizeHue(mid.H + float64(i-2)*10),
			S: sats[i],
			L: lights[i],
		}
	}
	return ladder
}

// Monochrome returns the tonal ladder of c with adjacent duplicates removed,
// so it holds between 1 and 5 colours.
func Monochrome(c RGB, format Format) []Value {
	ladder := MonochromeLadder(c)
	return DedupAdjacent(toValues(ladder[:], format))
}
