package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/harmonia/internal/colour"
	"github.com/jmylchreest/harmonia/internal/palette"
	"github.com/jmylchreest/harmonia/internal/seed"
)

// seedOptions holds the seed flags shared by palette and random.
type seedOptions struct {
	mode  string
	value uint64
}

func addSeedFlags(fs *pflag.FlagSet, o *seedOptions) {
	fs.StringVar(&o.mode, "seed-mode", "", "seed mode (random, manual, input)")
	fs.Uint64Var(&o.value, "seed", 0, "seed value; implies --seed-mode manual")
}

// newComposer builds a composer seeded from configuration and flags. base may
// be nil when no colour was given; an input seed mode that came from
// configuration then falls back to a random seed, while --seed-mode input is
// an error.
func (a *app) newComposer(cmd *cobra.Command, o *seedOptions, base colour.Input) (*palette.Composer, error) {
	cfg := a.config
	if cmd.Flags().Changed("seed-mode") {
		mode, err := seed.ParseMode(o.mode)
		if err != nil {
			return nil, err
		}
		cfg.SeedMode = mode
	}
	if cmd.Flags().Changed("seed") {
		v := o.value
		cfg.Seed = &v
		if !cmd.Flags().Changed("seed-mode") {
			cfg.SeedMode = seed.ModeManual
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if base == nil && cfg.SeedMode == seed.ModeInput && !cmd.Flags().Changed("seed-mode") {
		a.logger.Warn("input seed mode needs a base colour, using a random seed", "command", cmd.Name())
		cfg.SeedMode = seed.ModeRandom
	}

	s, err := seed.Calculate(base, cfg.SeedConfig())
	if err != nil {
		return nil, err
	}
	a.logger.Debug("composer seeded", "mode", cfg.SeedMode, "seed", s)

	return palette.NewComposer(
		palette.WithSeed(s),
		palette.WithLogger(a.logger.Named("palette")),
		palette.WithFormat(a.format()),
	), nil
}

func newPaletteCmd(a *app) *cobra.Command {
	var (
		offset float64
		seeds  seedOptions
	)

	kinds := make([]string, 0, len(palette.Kinds()))
	for _, k := range palette.Kinds() {
		kinds = append(kinds, string(k))
	}

	cmd := &cobra.Command{
		Use:   "palette <kind> [colour]",
		Short: "Compose a multi-role palette",
		Long: fmt.Sprintf(`Compose a palette with primary, secondary and accent roles from a base
colour. When no colour is given a random base is chosen.

Kinds: %s

Seeds:
  random  a different result every run (default)
  manual  use --seed (or HARMONIA_SEED)
  input   derive the seed from the base colour, so the same colour always
          gives the same palette

Examples:
  harmonia palette alpha 009cff
  harmonia palette mix "#336699" --seed-mode input
  harmonia palette pro-tetradic --seed 42 --format json`, strings.Join(kinds, ", ")),
		Args:      cobra.RangeArgs(1, 2),
		ValidArgs: kinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := palette.ParseKind(args[0])
			if err != nil {
				return err
			}

			var base colour.Input
			if len(args) == 2 {
				if base, err = colour.ParseInput(args[1]); err != nil {
					return fmt.Errorf("invalid colour %q: %w", args[1], err)
				}
			}

			composer, err := a.newComposer(cmd, &seeds, base)
			if err != nil {
				return err
			}
			p, err := composer.Compose(kind, base, offset)
			if err != nil {
				return err
			}
			a.logger.Debug("palette composed", "kind", p.Kind, "base", p.Base, "colours", p.Len())

			if a.json() {
				data, err := p.ToJSON()
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(a.out, string(data))
				return err
			}
			return a.writePalette(p)
		},
	}

	addOffsetFlag(cmd.Flags(), &offset, "hue offset in degrees for alpha, beta, gamma and pro-tetradic")
	addSeedFlags(cmd.Flags(), &seeds)
	return cmd
}

// writePalette prints one row per role group.
func (a *app) writePalette(p *palette.Palette) error {
	if _, err := fmt.Fprintf(a.out, "%s palette (base #%s)\n", p.Kind, p.Base); err != nil {
		return err
	}

	table := NewTable("ROLE", "COLOURS")
	for _, role := range p.Roles() {
		for i, g := range role.Groups {
			name := role.Name
			if len(role.Groups) > 1 {
				name = fmt.Sprintf("%s-%d", role.Name, i+1)
			}
			labels := make([]string, len(g))
			for j, v := range g {
				labels[j] = a.preview.Label(v)
			}
			table.AddRow(name, strings.Join(labels, "  "))
		}
	}
	_, err := table.WriteTo(a.out)
	return err
}

func newRandomCmd(a *app) *cobra.Command {
	var (
		count int
		seeds seedOptions
	)

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate random colours",
		Long: `Generate uniformly random 24-bit colours.

Examples:
  harmonia random --count 5
  harmonia random --seed 42`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be at least 1, got %d", count)
			}
			composer, err := a.newComposer(cmd, &seeds, nil)
			if err != nil {
				return err
			}

			values := make([]colour.Value, count)
			for i := range values {
				rgb, err := colour.HexToRGB(composer.RandomColour())
				if err != nil {
					return err
				}
				values[i] = colour.NewValue(rgb, a.format())
			}
			return a.writeValues(values)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of colours")
	addSeedFlags(cmd.Flags(), &seeds)
	return cmd
}
