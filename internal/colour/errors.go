package colour

import "errors"

// Validation errors returned by the codec. Callers should match them with
// errors.Is since every returned error wraps one of these with context.
var (
	// ErrInvalidFormat is returned when a hex string has a digit count other
	// than 3 or 6, or contains non-hex characters.
	ErrInvalidFormat = errors.New("invalid colour hex format")

	// ErrInvalidRange is returned when an RGB channel is outside [0,255] or a
	// decimal colour is outside [0,0xffffff].
	ErrInvalidRange = errors.New("colour value out of range")

	// ErrUndefinedInput is returned when a colour is required but missing.
	ErrUndefinedInput = errors.New("undefined colour input")
)
