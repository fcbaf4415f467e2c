package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/harmonia/internal/colour"
)

// addOffsetFlag registers the --offset flag shared by the harmony commands.
func addOffsetFlag(fs *pflag.FlagSet, p *float64, usage string) {
	fs.Float64Var(p, "offset", 0, usage)
}

func newComplementaryCmd(a *app) *cobra.Command {
	var (
		split  bool
		angles []float64
	)

	cmd := colourCommand(a, "complementary <colour>",
		"Derive the complementary colour",
		`Derive the colour opposite on the hue wheel.

With --split the two colours either side of the complement (150 and 210
degrees) are returned instead. --angles rotates by arbitrary amounts.

Examples:
  harmonia complementary 009cff
  harmonia complementary "#f00" --split
  harmonia complementary "#f00" --angles 90,270`,
		func(cmd *cobra.Command, c colour.RGB) ([]colour.Value, error) {
			switch {
			case split:
				return colour.SplitComplementary(c, a.format()), nil
			case len(angles) > 0:
				return colour.ComplementaryAt(c, angles, a.format()), nil
			default:
				return []colour.Value{colour.Complementary(c, a.format())}, nil
			}
		})

	cmd.Flags().BoolVar(&split, "split", false, "return the split-complementary pair")
	cmd.Flags().Float64SliceVar(&angles, "angles", nil, "rotate by these angles in degrees")
	cmd.MarkFlagsMutuallyExclusive("split", "angles")
	return cmd
}

func newAnalogousCmd(a *app) *cobra.Command {
	var offset float64

	cmd := colourCommand(a, "analogous <colour>",
		"Derive an analogous colour",
		`Derive an analogous colour by reflecting the hue, shifted by --offset
degrees. The offset is clamped to [0, 90].

Examples:
  harmonia analogous 009cff --offset 30`,
		func(cmd *cobra.Command, c colour.RGB) ([]colour.Value, error) {
			if offset < 0 || offset > colour.MaxAnalogousOffset {
				a.logger.Warn("analogous offset clamped", "offset", offset, "max", colour.MaxAnalogousOffset)
			}
			return []colour.Value{colour.NewValue(colour.Analogous(c, offset), a.format())}, nil
		})

	addOffsetFlag(cmd.Flags(), &offset, "hue offset in degrees (0-90)")
	return cmd
}

func newTriadicCmd(a *app) *cobra.Command {
	var (
		offset  float64
		offsets []float64
	)

	cmd := colourCommand(a, "triadic <colour>",
		"Derive the triadic pair",
		`Derive the two colours a third of the wheel away (120 and 240 degrees),
each shifted by --offset. --offsets shifts each independently.

Examples:
  harmonia triadic 009cff
  harmonia triadic "#f00" --offsets 0,120`,
		func(cmd *cobra.Command, c colour.RGB) ([]colour.Value, error) {
			if cmd.Flags().Changed("offsets") {
				if len(offsets) != 2 {
					return nil, fmt.Errorf("--offsets needs exactly 2 values, got %d", len(offsets))
				}
				return colour.TriadicSplit(c, [2]float64{offsets[0], offsets[1]}, a.format()), nil
			}
			return colour.Triadic(c, offset, a.format()), nil
		})

	addOffsetFlag(cmd.Flags(), &offset, "shift both colours by this many degrees")
	cmd.Flags().Float64SliceVar(&offsets, "offsets", nil, "separate shifts for each colour (a,b)")
	cmd.MarkFlagsMutuallyExclusive("offset", "offsets")
	return cmd
}

func newTetradicCmd(a *app) *cobra.Command {
	var offset float64

	cmd := colourCommand(a, "tetradic <colour>",
		"Derive the tetradic set",
		`Derive three colours at 60, 180 and 240 degrees, each shifted by --offset.

Examples:
  harmonia tetradic 009cff`,
		func(cmd *cobra.Command, c colour.RGB) ([]colour.Value, error) {
			return colour.Tetradic(c, offset, a.format()), nil
		})

	addOffsetFlag(cmd.Flags(), &offset, "shift every colour by this many degrees")
	return cmd
}

func newMonoCmd(a *app) *cobra.Command {
	return colourCommand(a, "mono <colour>",
		"Derive a monochrome ladder",
		`Derive up to five tonal variations of a colour, ordered from the first
step to the last. Adjacent duplicates are dropped, so greys and other
extreme colours may produce fewer entries.

Examples:
  harmonia mono 009cff --preview`,
		func(cmd *cobra.Command, c colour.RGB) ([]colour.Value, error) {
			return colour.Monochrome(c, a.format()), nil
		})
}

func newGrayscaleCmd(a *app) *cobra.Command {
	return colourCommand(a, "grayscale <colour>",
		"Remove a colour's saturation",
		`Return the grey with the same HSL lightness.`,
		func(cmd *cobra.Command, c colour.RGB) ([]colour.Value, error) {
			return []colour.Value{colour.NewValue(colour.Grayscale(c), a.format())}, nil
		})
}

func newRotateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rotate <colour> <angle>",
		Short: "Rotate a colour through the 24-bit colour space",
		Long: `Rotate a colour by treating it as a 24-bit number and adding angle/360 of
the full range, wrapping around. Unlike the harmony commands this does not
keep saturation or lightness.

Examples:
  harmonia rotate 000000 180`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseColour(args[0])
			if err != nil {
				return err
			}
			angle, err := parseAngle(args[1])
			if err != nil {
				return err
			}
			hex, err := colour.RGBToHex(c)
			if err != nil {
				return err
			}
			rotated, err := colour.RotateHex(hex, angle)
			if err != nil {
				return err
			}
			rgb, err := colour.HexToRGB(rotated)
			if err != nil {
				return err
			}
			return a.writeValues([]colour.Value{colour.NewValue(rgb, a.format())})
		},
	}
}
