// Package cli implements the bigcalc command line interface.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/db47h/bigint"
	"github.com/db47h/bigint/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigPath string
	Base       uint64
	Strategy   string

	// Config is loaded in the persistent pre-run hook, with the --base and
	// --strategy flags applied.
	Config *config.Config
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the bigcalc CLI. Run without a
// subcommand, it behaves like calc.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	calcOpts := &CalcOptions{RootOptions: opts}

	cmd := &cobra.Command{
		Use:   "bigcalc [a b]",
		Short: "bigcalc - arbitrary precision integer calculator",
		Long: `bigcalc adds and subtracts arbitrary precision integers stored in a
configurable digit base, and checks the engine against math/big.

Without a subcommand, bigcalc runs calc.`,
		Args:          usageArgs(cobra.MaximumNArgs(2)),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalc(calcOpts, args, cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to a YAML config file")
	cmd.PersistentFlags().Uint64Var(&opts.Base, "base", config.DefaultBase, "digit base of the computation flavor")
	cmd.PersistentFlags().StringVar(&opts.Strategy, "strategy", config.DefaultStrategy, "radix conversion strategy (horner|division)")

	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, "invalid flags", err)
	})

	// Add subcommands
	cmd.AddCommand(NewCalcCommand(opts))
	cmd.AddCommand(NewConvertCommand(opts))
	cmd.AddCommand(NewDiffTestCommand(opts))
	cmd.AddCommand(NewVersionCommand(opts))

	return cmd
}

// setup validates the global flags, loads the configuration and installs the
// default logger.
func (opts *RootOptions) setup(cmd *cobra.Command) error {
	// Validate format flag
	if !isValidFormat(opts.Format) {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
	}

	c := config.Default()
	if opts.ConfigPath != "" {
		var err error
		if c, err = config.Load(opts.ConfigPath); err != nil {
			return WrapExitError(ExitCommandError, "failed to load config", err)
		}
	}
	flags := cmd.Flags()
	if flags.Changed("base") {
		c.Base = opts.Base
	}
	if flags.Changed("strategy") {
		c.Strategy = opts.Strategy
	}
	if err := c.Validate(); err != nil {
		return WrapExitError(ExitCommandError, "invalid configuration", err)
	}
	opts.Config = c

	setupLogging(opts.Verbose, cmd.ErrOrStderr())
	slog.Debug("configuration loaded", "file", opts.ConfigPath, "base", c.Base, "strategy", c.Strategy)
	return nil
}

// flavor returns the configured computation flavor and conversion strategy.
func (opts *RootOptions) flavor() (bigint.Flavor, bigint.Strategy) {
	// validated in setup
	f, _ := opts.Config.Flavor()
	s, _ := opts.Config.ConvStrategy()
	return f, s
}

func (opts *RootOptions) output(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
}

// setupLogging configures the default slog logger based on the verbose flag.
func setupLogging(verbose bool, w io.Writer) {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

// usageArgs wraps argument validation errors into command errors.
func usageArgs(p cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := p(cmd, args); err != nil {
			return WrapExitError(ExitCommandError, "invalid arguments", err)
		}
		return nil
	}
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
