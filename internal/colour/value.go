package colour

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Format selects how a derived colour is presented to the caller.
type Format int

const (
	FormatHex Format = iota // "009cff"
	FormatRGB               // {"r":0,"g":156,"b":255}
)

// String returns the format name as used on the command line.
func (f Format) String() string {
	switch f {
	case FormatHex:
		return "hex"
	case FormatRGB:
		return "rgb"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat converts "hex" or "rgb" to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "hex":
		return FormatHex, nil
	case "rgb":
		return FormatRGB, nil
	default:
		return 0, fmt.Errorf("invalid colour format: %s (valid: hex, rgb)", s)
	}
}

// Value is a derived colour tagged with the representation the caller asked
// for. Both representations are always available; the tag decides what
// String and MarshalJSON produce.
type Value struct {
	format Format
	rgb    RGB
}

// NewValue wraps an RGB colour in the given representation.
func NewValue(rgb RGB, format Format) Value {
	return Value{format: format, rgb: rgb}
}

// Format returns the representation chosen for this value.
func (v Value) Format() Format { return v.format }

// RGB returns the colour as an RGB record.
func (v Value) RGB() RGB { return v.rgb }

// Hex returns the colour as a lowercase 6-digit hex string.
func (v Value) Hex() string { return formatHex(v.rgb) }

// HSL returns the colour in HSL space.
func (v Value) HSL() HSL { return RGBToHSL(v.rgb) }

// String renders the value in its tagged representation.
func (v Value) String() string {
	if v.format == FormatRGB {
		return v.rgb.String()
	}
	return v.Hex()
}

// MarshalJSON encodes hex values as strings and RGB values as objects.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.format == FormatRGB {
		return json.Marshal(v.rgb)
	}
	return json.Marshal(v.Hex())
}

// Strings renders every value with String.
func Strings(values []Value) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.String()
	}
	return out
}

// DedupAdjacent drops entries equal to their immediate predecessor. It is not
// a full-set dedup: a colour may appear again later if something else sits
// between the two occurrences.
func DedupAdjacent(values []Value) []Value {
	return slices.Compact(slices.Clone(values))
}

func toValues(colours []HSL, format Format) []Value {
	out := make([]Value, len(colours))
	for i, c := range colours {
		out[i] = NewValue(HSLToRGB(c), format)
	}
	return out
}
