package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/db47h/bigint"
)

// CalcOptions holds flags for the calc command.
type CalcOptions struct {
	*RootOptions
}

// CalcResult is the output of the calc command.
type CalcResult struct {
	A          *bigint.Int `json:"a"`
	B          *bigint.Int `json:"b"`
	Base       uint64      `json:"base"`
	Sum        *bigint.Int `json:"sum"`
	Difference *bigint.Int `json:"difference"`
}

func (r *CalcResult) String() string {
	return fmt.Sprintf("a + b: %v\na - b: %v", r.Sum, r.Difference)
}

// NewCalcCommand creates the calc command.
func NewCalcCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CalcOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "calc [a b]",
		Short: "Add and subtract two integers",
		Long: `Read two decimal integers, convert them to the computation flavor and
print their sum and difference.

The operands are read from the command line, or from standard input when no
argument is given. Use -- before negative operands on the command line.

Example:
  echo "123456789012345678901234567890 -1" | bigcalc calc
  bigcalc calc --base 3 -- -5 3`,
		Args:          usageArgs(cobra.RangeArgs(0, 2)),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalc(opts, args, cmd)
		},
	}

	return cmd
}

func runCalc(opts *CalcOptions, args []string, cmd *cobra.Command) error {
	var sa, sb string
	switch len(args) {
	case 0:
		if _, err := fmt.Fscan(cmd.InOrStdin(), &sa, &sb); err != nil {
			return WrapExitError(ExitCommandError, "failed to read operands", err)
		}
	case 2:
		sa, sb = args[0], args[1]
	default:
		return NewExitError(ExitCommandError, "expected two operands")
	}

	f, s := opts.flavor()
	a, err := parseOperand(sa, f, s)
	if err != nil {
		return err
	}
	b, err := parseOperand(sb, f, s)
	if err != nil {
		return err
	}
	slog.Debug("operands parsed", "flavor", f, "a_digits", a.Len(), "b_digits", b.Len())

	sum, err := a.Add(b)
	if err != nil {
		return WrapExitError(ExitCommandError, "addition failed", err)
	}
	diff, err := a.Sub(b)
	if err != nil {
		return WrapExitError(ExitCommandError, "subtraction failed", err)
	}

	return opts.output(cmd).Success(&CalcResult{
		A:          a,
		B:          b,
		Base:       f.Base(),
		Sum:        sum,
		Difference: diff,
	})
}

// parseOperand parses s in the Default flavor and converts it to f.
func parseOperand(s string, f bigint.Flavor, st bigint.Strategy) (*bigint.Int, error) {
	x, err := bigint.Parse(s)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid operand", err)
	}
	if x, err = x.ConvertWith(f, st); err != nil {
		return nil, WrapExitError(ExitCommandError, "conversion failed", err)
	}
	return x, nil
}
