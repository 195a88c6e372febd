// Command symbolgen prints the geometry of receipt symbols: bar/space run
// lengths for linear barcodes and module matrices for QR Code.
//
// Defaults come from SYMBOLGEN_OPTIONS, SYMBOLGEN_FORMAT,
// SYMBOLGEN_QUIET_ZONE and SYMBOLGEN_VERBOSE; flags override them.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	// Register the writers.
	_ "github.com/ericlevine/printsymbol/oned"
	_ "github.com/ericlevine/printsymbol/qrcode"
)

type config struct {
	Options   string `env:"OPTIONS"`
	Format    string `env:"FORMAT" envDefault:"text"`
	QuietZone bool   `env:"QUIET_ZONE"`
	Verbose   bool   `env:"VERBOSE"`
}

// loadConfig reads the SYMBOLGEN_ variables from environ, or from the
// process environment when environ is nil.
func loadConfig(environ map[string]string) (config, error) {
	var cfg config
	err := env.ParseWithOptions(&cfg, env.Options{
		Prefix:      "SYMBOLGEN_",
		Environment: environ,
	})
	if err != nil {
		return config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	cfg, err := loadConfig(nil)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
	if err := newRootCmd(cfg, os.Stdout, os.Stderr).Execute(); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

type app struct {
	cfg    config
	out    io.Writer
	errOut io.Writer
	log    *slog.Logger
}

func newRootCmd(cfg config, stdout, stderr io.Writer) *cobra.Command {
	a := &app{cfg: cfg, out: stdout, errOut: stderr}

	root := &cobra.Command{
		Use:           "symbolgen",
		Short:         "Print run lengths and module matrices for receipt symbols",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch a.cfg.Format {
			case formatText, formatJSON, formatYAML:
			default:
				return fmt.Errorf("unknown format %q", a.cfg.Format)
			}
			level := slog.LevelInfo
			if a.cfg.Verbose {
				level = slog.LevelDebug
			}
			a.log = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: level}))
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfg.Format, "format", cfg.Format, "output format: text, json or yaml")
	flags.BoolVarP(&a.cfg.Verbose, "verbose", "v", cfg.Verbose, "log encoder decisions")
	flags.BoolVar(&a.cfg.QuietZone, "quiet-zone", cfg.QuietZone, "add the symbology's quiet zone")
	flags.StringVar(&a.cfg.Options, "option", cfg.Options, `markup option string, e.g. "code39 3 96 hri"`)

	root.AddCommand(a.barcodeCmd(), a.qrcodeCmd(), a.batchCmd())
	return root
}
