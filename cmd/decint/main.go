// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command decint does decimal integer arithmetic from the command line and
// runs the decint self-checks.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/db47h/decint/internal/config"
	"github.com/db47h/decint/internal/logger"
)

// app holds the state shared by all subcommands once flags and configuration
// have been resolved.
type app struct {
	cfg      *config.Config
	log      *zap.SugaredLogger
	useColor bool

	configPath string
}

func newRootCmd() *cobra.Command {
	a := new(app)
	root := &cobra.Command{
		Use:           "decint",
		Short:         "Arbitrary-precision decimal integer calculator",
		Long:          `decint adds, subtracts and compares integers of any size and checks its own arithmetic.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "path to "+config.FileName+" (default: search from the working directory up)")
	pf.String("color", config.ColorAuto, "colorize output (auto|on|off)")
	pf.String("format", config.FormatPretty, "output format (pretty|json)")
	pf.String("log-level", "info", "log level (debug|info|warn|error)")

	root.AddCommand(
		newCalcCmd(a, "add", "Add integers, folding left"),
		newCalcCmd(a, "sub", "Subtract integers, folding left"),
		newCmpCmd(a),
		newSumCmd(a),
		newCheckCmd(a),
		newVersionCmd(a),
	)
	return root
}

// setup loads the configuration, applies flag overrides and configures
// logging.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Resolve(a.configPath, ".")
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("color") {
		cfg.Output.Color, _ = flags.GetString("color")
	}
	if flags.Changed("format") {
		cfg.Output.Format, _ = flags.GetString("format")
	}
	if flags.Changed("log-level") {
		cfg.Log.Level, _ = flags.GetString("log-level")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger.SetOutput(cmd.ErrOrStderr())
	if err := logger.SetLevel(cfg.Log.Level); err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logger.GetLogger(logger.ModuleCLI)
	if cfg.Path != "" {
		logger.GetLogger(logger.ModuleConfig).Debugw("loaded configuration", "path", cfg.Path)
	}

	switch cfg.Output.Color {
	case config.ColorOn:
		a.useColor = true
	case config.ColorOff:
		a.useColor = false
	default:
		a.useColor = isTerminal(cmd.OutOrStdout())
	}
	return nil
}

func (a *app) json() bool {
	return a.cfg.Output.Format == config.FormatJSON
}

// color returns a color printer honoring the resolved color mode.
func (a *app) color(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if a.useColor {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func main() {
	err := execute(newRootCmd(), os.Args[1:])
	_ = logger.Sync()
	if err != nil {
		if err != errCheckFailed {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
