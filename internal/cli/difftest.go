package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/db47h/bigint/internal/difftest"
)

// DiffTestOptions holds flags for the difftest command.
type DiffTestOptions struct {
	*RootOptions
	Cases   int
	MaxLen  int
	Seed    int64
	Workers int
	Mul     bool
}

// DiffTestResult is the output of the difftest command.
type DiffTestResult struct {
	*difftest.Report
}

func (r DiffTestResult) String() string {
	var sb strings.Builder
	status := "PASS"
	if !r.OK() {
		status = "FAIL"
	}
	fmt.Fprintf(&sb, "%s run %s: %d cases, %d checks, %d failed (seed %d, base %d, %s)",
		status, r.RunID, r.Cases, r.Checks, r.Failed, r.Seed, r.Base, r.Strategy)
	for _, c := range r.Failures {
		fmt.Fprintf(&sb, "\ncase %d: %s %s %s\n  got:  %s\n  want: %s", c.Index, c.A, c.Op, c.B, c.Got, c.Want)
	}
	return sb.String()
}

// NewDiffTestCommand creates the difftest command.
func NewDiffTestCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DiffTestOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "difftest",
		Short: "Check the engine against math/big on random inputs",
		Long: `Run randomized differential tests: random decimal operands are added and
subtracted (and optionally multiplied by a random scalar) with both this engine,
in the configured flavor, and math/big. Any mismatch fails the command with exit
code 1.

Example:
  bigcalc difftest --cases 10000 --workers 8
  bigcalc difftest --base 3 --strategy division --seed 42 --mul`,
		Args:          usageArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiffTest(opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Cases, "cases", 0, "number of random cases (defaults to the config value)")
	cmd.Flags().IntVar(&opts.MaxLen, "max-len", 0, "maximum operand length in decimal digits")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "random seed (0 picks one from the clock)")
	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "number of concurrent workers")
	cmd.Flags().BoolVar(&opts.Mul, "mul", false, "also check multiplication by a random scalar")

	return cmd
}

func runDiffTest(opts *DiffTestOptions, cmd *cobra.Command) error {
	dc := opts.Config.DiffTest
	flags := cmd.Flags()
	if flags.Changed("cases") {
		dc.Cases = opts.Cases
	}
	if flags.Changed("max-len") {
		dc.MaxLen = opts.MaxLen
	}
	if flags.Changed("seed") {
		dc.Seed = opts.Seed
	}
	if flags.Changed("workers") {
		dc.Workers = opts.Workers
	}
	if flags.Changed("mul") {
		dc.Mul = opts.Mul
	}
	if dc.Cases < 0 || dc.MaxLen < 1 || dc.Workers < 1 {
		return NewExitError(ExitCommandError, "--cases must not be negative, --max-len and --workers must be positive")
	}

	f, s := opts.flavor()
	report, err := difftest.Run(cmd.Context(), difftest.Options{
		Flavor:   f,
		Strategy: s,
		Cases:    dc.Cases,
		MaxLen:   dc.MaxLen,
		Seed:     dc.Seed,
		Workers:  dc.Workers,
		Mul:      dc.Mul,
		Logger:   slog.Default(),
	})
	if err != nil {
		return WrapExitError(ExitCommandError, "difftest aborted", err)
	}

	if err := opts.output(cmd).Success(DiffTestResult{report}); err != nil {
		return err
	}
	if !report.OK() {
		return NewExitError(ExitFailure, fmt.Sprintf("difftest failed: %d of %d checks", report.Failed, report.Checks))
	}
	return nil
}
