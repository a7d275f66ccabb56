// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/symatrix/internal/calc"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

const (
	flagConfig = "config"
	flagDebug  = "debug"
	flagSet    = "set"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "symatrix",
		Short: "Symbolic square matrix calculator",
		Long: "Push square matrices with integer or variable cells, combine them " +
			"with + - *, bind variables and evaluate.",
		Example: `
# Interactive session
symatrix

# Seed variables
symatrix --set x=3 --set y=-1
`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runInteractive,
	}

	pf := root.PersistentFlags()
	pf.StringP(flagConfig, "c", "", "YAML config file")
	pf.BoolP(flagDebug, "d", false, "Log debug records to stderr")
	pf.StringArray(flagSet, nil, "Bind a variable, name=value (repeatable)")

	root.AddCommand(newExecCmd(), newConfigCmd())

	return root
}

func runInteractive(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	sess, err := newSession(cmd, cfg)
	if err != nil {
		return err
	}

	prompt := ""
	if isTerminal(cmd.InOrStdin()) {
		prompt = cfg.Prompt
		if cfg.Banner {
			sess.WriteBanner()
		}
	}

	return sess.Run(cmd.InOrStdin(), prompt)
}

// resolveConfig loads --config (or defaults) and applies --set bindings.
func resolveConfig(cmd *cobra.Command) (calc.Config, error) {
	cfg := calc.DefaultConfig()
	if path, _ := cmd.Flags().GetString(flagConfig); path != "" {
		var err error
		if cfg, err = calc.LoadConfig(path); err != nil {
			return cfg, err
		}
	}

	sets, _ := cmd.Flags().GetStringArray(flagSet)
	for _, kv := range sets {
		name, val, ok := strings.Cut(kv, "=")
		if !ok {
			return cfg, fmt.Errorf("--set %q: want name=value", kv)
		}
		x, err := strconv.Atoi(val)
		if err != nil {
			return cfg, fmt.Errorf("--set %q: %w", kv, err)
		}
		if cfg.Values == nil {
			cfg.Values = map[string]int{}
		}
		cfg.Values[name] = x
	}

	return cfg, cfg.Validate()
}

func newSession(cmd *cobra.Command, cfg calc.Config) (*calc.Session, error) {
	vs, err := cfg.Valuation()
	if err != nil {
		return nil, err
	}

	return calc.NewSession(cmd.OutOrStdout(),
		calc.WithLogger(newLogger(cmd)),
		calc.WithValues(vs),
	), nil
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if debug, _ := cmd.Flags().GetBool(flagDebug); debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// isTerminal reports whether r is a terminal. Non-file readers never are.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
