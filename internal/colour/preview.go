package colour

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

const defaultSwatchWidth = 8

// Previewer renders colour swatches for a terminal. A disabled Previewer
// returns plain text so output stays pipe-friendly.
type Previewer struct {
	renderer *lipgloss.Renderer
	width    int
	enabled  bool
}

// NewPreviewer creates a Previewer writing to w. When enabled is false every
// swatch is empty and labels are plain text. When enabled is true, truecolour
// output is forced even if w is not a terminal.
func NewPreviewer(w io.Writer, enabled bool) *Previewer {
	r := lipgloss.NewRenderer(w)
	if enabled {
		r.SetColorProfile(termenv.TrueColor)
	}
	return &Previewer{renderer: r, width: defaultSwatchWidth, enabled: enabled}
}

// WithWidth returns a copy of the Previewer drawing swatches width cells wide.
func (p *Previewer) WithWidth(width int) *Previewer {
	cp := *p
	if width <= 0 {
		width = defaultSwatchWidth
	}
	cp.width = width
	return &cp
}

// Enabled reports whether swatches are drawn.
func (p *Previewer) Enabled() bool { return p.enabled }

// Swatch returns a solid block in colour c, or "" when previews are disabled.
func (p *Previewer) Swatch(c RGB) string {
	if !p.enabled {
		return ""
	}
	return p.renderer.NewStyle().
		Background(lipgloss.Color("#" + formatHex(c))).
		Width(p.width).
		Render("")
}

// SwatchWithText draws text centred on a block of colour c, using black or
// white text depending on which reads better. Text wider than the swatch is
// cut at a cell boundary.
func (p *Previewer) SwatchWithText(c RGB, text string) string {
	if !p.enabled {
		return text
	}
	text = ansi.Truncate(text, p.width, "")
	fg := ReadableOn(c)
	return p.renderer.NewStyle().
		Background(lipgloss.Color("#" + formatHex(c))).
		Foreground(lipgloss.Color("#" + formatHex(fg))).
		Width(p.width).
		Align(lipgloss.Center).
		Render(text)
}

// Label formats a value with its swatch in front, e.g. "████████ 009cff".
func (p *Previewer) Label(v Value) string {
	if !p.enabled {
		return v.String()
	}
	return p.Swatch(v.RGB()) + " " + v.String()
}
