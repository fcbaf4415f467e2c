// Package seed derives the random seed used when composing palettes, so that
// randomised palettes can be reproduced.
package seed

import (
	crand "crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"slices"

	"github.com/jmylchreest/harmonia/internal/colour"
)

// Mode determines how the random seed is generated.
type Mode string

const (
	// ModeRandom uses a non-deterministic seed (varies each run, default).
	ModeRandom Mode = "random"
	// ModeManual uses a user-provided seed value.
	ModeManual Mode = "manual"
	// ModeInput derives the seed from the base colour, so the same colour
	// always yields the same palette.
	ModeInput Mode = "input"
)

// Config holds configuration for seed generation.
type Config struct {
	Mode  Mode    // Seed mode
	Value *uint64 // Seed value (only used when Mode is ModeManual)
}

// Calculate determines the seed value based on the seed mode.
// base: the base colour (required for ModeInput)
// config: seed configuration
func Calculate(base colour.Input, config Config) (uint64, error) {
	switch config.Mode {
	case ModeRandom, "":
		return GenerateRandomSeed(), nil
	case ModeManual:
		if config.Value == nil {
			return 0, fmt.Errorf("seed value is required for manual seed mode")
		}
		return *config.Value, nil
	case ModeInput:
		if base == nil {
			return 0, fmt.Errorf("base colour is required for input seed mode")
		}
		return CalculateInputSeed(base)
	default:
		return 0, fmt.Errorf("unknown seed mode: %s", config.Mode)
	}
}

// CalculateInputSeed hashes the normalised base colour, so "#ABC", "aabbcc"
// and rgb(170,187,204) share a seed.
func CalculateInputSeed(base colour.Input) (uint64, error) {
	hex, err := colour.Normalize(base)
	if err != nil {
		return 0, fmt.Errorf("input seed: %w", err)
	}
	hash := sha256.Sum256([]byte(hex))
	return binary.LittleEndian.Uint64(hash[:8]), nil
}

// GenerateRandomSeed generates a non-deterministic random seed.
func GenerateRandomSeed() uint64 {
	var b [8]byte
	_, _ = crand.Read(b[:])
	return binary.LittleEndian.Uint64(b[:])
}

// ValidModes returns a list of valid seed modes.
func ValidModes() []Mode {
	return []Mode{ModeRandom, ModeManual, ModeInput}
}

// ParseMode converts a string to a Mode.
// Returns an error if the string is not a valid mode.
func ParseMode(s string) (Mode, error) {
	mode := Mode(s)
	if slices.Contains(ValidModes(), mode) {
		return mode, nil
	}
	return "", fmt.Errorf("invalid seed mode: %s (valid: random, manual, input)", s)
}
