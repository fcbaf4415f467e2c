package colour

import (
	"fmt"
	"strconv"
	"strings"
)

// Input is a colour supplied by a caller: either a Hex string or an RGB
// record. It is the only shape accepted by public entry points, and every one
// of them normalises it with Normalize before doing anything else.
type Input interface {
	normalize() (string, error)
}

// Hex is a hexadecimal colour of 3 or 6 digits, with or without a leading '#'.
type Hex string

func (h Hex) normalize() (string, error) {
	s := strings.TrimSpace(string(h))
	if s == "" {
		return "", fmt.Errorf("empty hex string: %w", ErrUndefinedInput)
	}
	digits := strings.TrimPrefix(s, "#")

	switch len(digits) {
	case 3:
		digits = string([]byte{
			digits[0], digits[0],
			digits[1], digits[1],
			digits[2], digits[2],
		})
	case 6:
	default:
		return "", fmt.Errorf("%q has %d digits, want 3 or 6: %w", s, len(digits), ErrInvalidFormat)
	}

	if !isHexDigits(digits) {
		return "", fmt.Errorf("%q contains non-hex characters: %w", s, ErrInvalidFormat)
	}
	return strings.ToLower(digits), nil
}

func (rgb RGB) normalize() (string, error) {
	if err := rgb.Validate(); err != nil {
		return "", err
	}
	return formatHex(rgb), nil
}

// Normalize validates a colour input and returns it as a canonical lowercase
// 6-digit hex string without a leading '#'. A 3-digit hex "abc" becomes "aabbcc".
func Normalize(in Input) (string, error) {
	if in == nil {
		return "", ErrUndefinedInput
	}
	return in.normalize()
}

// NormalizeRGB is Normalize followed by HexToRGB, for callers that want the
// RGB form of an input.
func NormalizeRGB(in Input) (RGB, error) {
	hex, err := Normalize(in)
	if err != nil {
		return RGB{}, err
	}
	return HexToRGB(hex)
}

// ParseInput turns free-form text into an Input. It accepts hex ("#abc",
// "009cff"), CSS notation ("rgb(0, 156, 255)") and bare triples ("0,156,255").
// Range checks are left to Normalize.
func ParseInput(s string) (Input, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrUndefinedInput
	}

	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "rgb(") && strings.HasSuffix(lower, ")") {
		return parseTriple(lower[len("rgb(") : len(lower)-1])
	}
	if strings.Contains(s, ",") {
		return parseTriple(s)
	}
	return Hex(s), nil
}

func parseTriple(s string) (RGB, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return RGB{}, fmt.Errorf("rgb %q needs 3 channels, got %d: %w", s, len(parts), ErrInvalidFormat)
	}

	var ch [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return RGB{}, fmt.Errorf("rgb channel %q: %w", p, ErrInvalidFormat)
		}
		ch[i] = v
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

func isHexDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
