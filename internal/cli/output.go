package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/harmonia/internal/colour"
)

// parseColour reads a colour argument in any accepted notation.
func parseColour(arg string) (colour.RGB, error) {
	in, err := colour.ParseInput(arg)
	if err != nil {
		return colour.RGB{}, fmt.Errorf("invalid colour %q: %w", arg, err)
	}
	rgb, err := colour.NormalizeRGB(in)
	if err != nil {
		return colour.RGB{}, fmt.Errorf("invalid colour %q: %w", arg, err)
	}
	return rgb, nil
}

// parseAngle reads an angle argument in degrees.
func parseAngle(arg string) (float64, error) {
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid angle %q: %w", arg, err)
	}
	return v, nil
}

// writeJSON encodes v as indented JSON.
func (a *app) writeJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeValues prints one colour per line, or a JSON array.
func (a *app) writeValues(values []colour.Value) error {
	if a.json() {
		return a.writeJSON(values)
	}
	for _, v := range values {
		if _, err := fmt.Fprintln(a.out, a.preview.Label(v)); err != nil {
			return err
		}
	}
	return nil
}

// colourCommand builds a command taking exactly one colour argument whose
// result is a list of colours.
func colourCommand(a *app, use, short, long string, run func(cmd *cobra.Command, c colour.RGB) ([]colour.Value, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Long:  long,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseColour(args[0])
			if err != nil {
				return err
			}
			values, err := run(cmd, c)
			if err != nil {
				return err
			}
			a.logger.Debug("derived colours", "command", cmd.Name(), "base", c.String(), "count", len(values))
			return a.writeValues(values)
		},
	}
}
