package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/harmonia/internal/colour"
	"github.com/jmylchreest/harmonia/internal/naming"
)

func newNameCmd(a *app) *cobra.Command {
	var (
		exact bool
		names string
	)

	cmd := &cobra.Command{
		Use:   "name <colour>",
		Short: "Look up the name of a colour",
		Long: `Look up a colour's name. When there is no exact match the closest named
colour by RGB distance is reported, unless --exact is given.

A custom dataset is a JSON array of {"name": ..., "hex": ...} objects, given
with --names or HARMONIA_NAMES.

Examples:
  harmonia name "#ff0000"
  harmonia name 009cff --names colornames.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseColour(args[0])
			if err != nil {
				return err
			}

			path := a.config.NamesFile
			if cmd.Flags().Changed("names") {
				path = names
			}
			dataset, err := loadNames(path)
			if err != nil {
				return err
			}
			a.logger.Debug("colour names loaded", "path", path, "entries", dataset.Len())

			match, err := dataset.Lookup(c, !exact)
			if errors.Is(err, naming.ErrNotFound) {
				return fmt.Errorf("no name for #%s: %w", hexOf(c), err)
			}
			if err != nil {
				return err
			}

			if a.json() {
				return a.writeJSON(match)
			}
			swatch := a.preview.Swatch(c)
			if swatch != "" {
				swatch += " "
			}
			if match.Exact {
				_, err = fmt.Fprintf(a.out, "%s%s\n", swatch, match.Name)
			} else {
				_, err = fmt.Fprintf(a.out, "%s%s (#%s, distance %g)\n", swatch, match.Name, match.Value, match.Distance)
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&exact, "exact", false, "only report exact matches")
	cmd.Flags().StringVar(&names, "names", "", "JSON colour name dataset (default: built-in)")
	return cmd
}

// loadNames returns the dataset at path, or the built-in one when path is empty.
func loadNames(path string) (*naming.Dataset, error) {
	if path == "" {
		return naming.Default(), nil
	}
	return naming.LoadFile(path)
}

func hexOf(c colour.RGB) string {
	hex, _ := colour.RGBToHex(c)
	return hex
}
