// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	logging "github.com/ipfs/go-log/v2"
	"github.com/katalvlaran/lvmat/internal/scenario"
	"github.com/katalvlaran/lvmat/matrix"
	"github.com/spf13/cobra"
)

var log = logging.Logger("lvmat")

const defaultLogLevel = "error"

// options holds the persistent flag values shared by every subcommand.
type options struct {
	logLevel string
	pretty   bool
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
)

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:          "lvmat",
		Short:        "generic dense matrix playground",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := logging.LevelFromString(opts.logLevel)
			if err != nil {
				return fmt.Errorf("--log-level: %w", err)
			}
			logging.SetAllLoggers(lvl)

			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", defaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&opts.pretty, "pretty", false, "draw a border around every printed matrix")

	multiplyCmd := &cobra.Command{
		Use:   "multiply",
		Short: "multiply a 3x2 matrix by a 2x3 matrix in place and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuiltin(cmd, opts, "multiply")
		},
	}

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "add a 3x3 matrix to itself in place and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuiltin(cmd, opts, "add")
		},
	}

	runCmd := &cobra.Command{
		Use:   "run [file]",
		Short: "run a YAML scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := scenario.Load(args[0])
			if err != nil {
				return err
			}

			return execute(cmd, opts, sc)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list embedded scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range scenario.BuiltinNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(multiplyCmd, addCmd, runCmd, listCmd)

	return rootCmd
}

func runBuiltin(cmd *cobra.Command, opts *options, name string) error {
	sc, err := scenario.Builtin(name)
	if err != nil {
		return err
	}

	return execute(cmd, opts, sc)
}

func execute(cmd *cobra.Command, opts *options, sc *scenario.Scenario) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	r := scenario.NewRunner(cmd.OutOrStdout())
	if opts.pretty {
		r.Print = prettyPrinter
	}
	log.Debugf("running scenario %q", sc.Name)

	_, err := r.Run(ctx, sc)

	return err
}

// prettyPrinter titles m with its name and wraps it in a rounded border.
func prettyPrinter(w io.Writer, name string, m *matrix.Matrix[float64], opts ...matrix.FormatOption) error {
	body := strings.TrimRight(matrix.Sprint(m, opts...), "\n")
	_, err := fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(name),
		boxStyle.Render(body),
	))

	return err
}
