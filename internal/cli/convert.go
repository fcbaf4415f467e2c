package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/harmonia/internal/colour"
)

// conversion is the JSON shape of the convert command.
type conversion struct {
	Hex     string      `json:"hex"`
	RGB     colour.RGB  `json:"rgb"`
	HSL     colour.HSL  `json:"hsl"`
	CMYK    colour.CMYK `json:"cmyk"`
	Decimal int         `json:"decimal"`
}

func newConversion(c colour.RGB) (conversion, error) {
	hex, err := colour.RGBToHex(c)
	if err != nil {
		return conversion{}, err
	}
	dec, err := colour.HexToDec(hex)
	if err != nil {
		return conversion{}, err
	}
	return conversion{
		Hex:     hex,
		RGB:     c,
		HSL:     colour.RGBToHSL(c),
		CMYK:    colour.RGBToCMYK(c),
		Decimal: dec,
	}, nil
}

func newConvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <colour>",
		Short: "Show a colour in every supported notation",
		Long: `Show a colour as hex, RGB, HSL, CMYK and its 24-bit decimal value.

Examples:
  harmonia convert 009cff
  harmonia convert "rgb(0, 156, 255)" --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseColour(args[0])
			if err != nil {
				return err
			}
			conv, err := newConversion(c)
			if err != nil {
				return err
			}
			if a.json() {
				return a.writeJSON(conv)
			}

			if a.preview.Enabled() {
				if _, err := fmt.Fprintln(a.out, a.preview.WithWidth(24).SwatchWithText(c, "#"+conv.Hex)); err != nil {
					return err
				}
			}
			table := NewTable("FORMAT", "VALUE")
			table.AddRow("hex", "#"+conv.Hex)
			table.AddRow("rgb", conv.RGB.String())
			table.AddRow("hsl", conv.HSL.String())
			table.AddRow("cmyk", conv.CMYK.String())
			table.AddRow("decimal", strconv.Itoa(conv.Decimal))
			_, err = table.WriteTo(a.out)
			return err
		},
	}
}
