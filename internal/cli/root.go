// Package cli provides the command-line interface for harmonia.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/harmonia/internal/colour"
	"github.com/jmylchreest/harmonia/internal/config"
	"github.com/jmylchreest/harmonia/internal/version"
)

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	format  string
	preview string
	verbose bool
	quiet   bool
	dotEnv  string
}

// app is the state resolved before a command runs.
type app struct {
	config       config.Config
	colourFormat colour.Format
	logger       hclog.Logger
	preview      *colour.Previewer
	out          io.Writer
}

// format returns the colour representation for the configured output.
func (a *app) format() colour.Format {
	return a.colourFormat
}

// json reports whether results are written as JSON.
func (a *app) json() bool {
	return a.config.Output == config.OutputJSON
}

// NewRootCmd builds a fresh command tree. Each call is independent so tests
// can execute commands without sharing flag state.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}
	a := &app{logger: hclog.NewNullLogger()}

	rootCmd := &cobra.Command{
		Use:   "harmonia",
		Short: "A colour harmony toolkit",
		Long: `Harmonia converts colours between notations and derives harmonious
colours from them: complementary, analogous, triadic and tetradic schemes,
monochrome ladders and multi-role palettes.

Colours may be given as hex ("#009cff", "abc") or RGB ("rgb(0,156,255)",
"0,156,255").`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, opts)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&opts.format, "format", "f", "", "output format (hex, rgb, json)")
	pf.StringVar(&opts.preview, "preview", "", "draw colour swatches (auto, always, never)")
	pf.Lookup("preview").NoOptDefVal = string(config.PreviewAlways)
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	pf.BoolVarP(&opts.quiet, "quiet", "q", false, "only log errors")
	pf.StringVar(&opts.dotEnv, "env-file", config.DefaultDotEnv, "dotenv file with HARMONIA_* settings")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(
		newVersionCmd(),
		newConvertCmd(a),
		newComplementaryCmd(a),
		newAnalogousCmd(a),
		newTriadicCmd(a),
		newTetradicCmd(a),
		newMonoCmd(a),
		newGrayscaleCmd(a),
		newRotateCmd(a),
		newPaletteCmd(a),
		newRandomCmd(a),
		newNameCmd(a),
	)

	return rootCmd
}

// setup resolves configuration, then applies flag overrides on top.
func (a *app) setup(cmd *cobra.Command, opts *globalOptions) error {
	a.logger = newLogger(cmd.ErrOrStderr(), opts.verbose, opts.quiet)
	a.out = cmd.OutOrStdout()

	cfg, err := config.NewBuilder().
		WithEnv().
		WithDotEnv(opts.dotEnv).
		Build()
	if err != nil {
		return err
	}

	if opts.format != "" {
		if cfg.Output, err = config.ParseOutput(opts.format); err != nil {
			return err
		}
	}
	if opts.preview != "" {
		if cfg.Preview, err = config.ParsePreviewMode(opts.preview); err != nil {
			return err
		}
	}
	a.config = cfg

	// JSON output carries hex strings.
	a.colourFormat = colour.FormatHex
	if !a.json() {
		if a.colourFormat, err = colour.ParseFormat(string(cfg.Output)); err != nil {
			return err
		}
	}

	a.preview = colour.NewPreviewer(a.out, previewEnabled(cfg.Preview, a.out))
	a.logger.Debug("configuration resolved",
		"output", cfg.Output,
		"preview", cfg.Preview,
		"swatches", a.preview.Enabled(),
		"seed_mode", cfg.SeedMode)

	return nil
}

// newLogger creates the command logger writing to w.
func newLogger(w io.Writer, verbose, quiet bool) hclog.Logger {
	level := hclog.Warn
	switch {
	case verbose:
		level = hclog.Debug
	case quiet:
		level = hclog.Error
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "harmonia",
		Output: w,
		Level:  level,
	})
}

// previewEnabled decides whether swatches are drawn. JSON output never
// carries swatches, which the caller handles.
func previewEnabled(mode config.PreviewMode, w io.Writer) bool {
	switch mode {
	case config.PreviewAlways:
		return true
	case config.PreviewNever:
		return false
	default:
		return isTerminal(w)
	}
}

// isTerminal reports whether w is a terminal file descriptor.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.String())
			return err
		},
	}
}
