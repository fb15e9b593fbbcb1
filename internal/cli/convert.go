package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/db47h/bigint"
)

// ConvertOptions holds flags for the convert command.
type ConvertOptions struct {
	*RootOptions
	ToBase uint64
}

// ConvertResult is the output of the convert command.
type ConvertResult struct {
	Base     uint64        `json:"base"`
	Width    int           `json:"width"`
	Negative bool          `json:"negative"`
	Digits   []bigint.Word `json:"digits"`
	Value    *bigint.Int   `json:"value"`
}

func (r *ConvertResult) String() string {
	sign := "+"
	if r.Negative {
		sign = "-"
	}
	return fmt.Sprintf("base %d: %s%v\nvalue: %v", r.Base, sign, r.Digits, r.Value)
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConvertOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "convert <n>",
		Short: "Show the digits of an integer in another base",
		Long: `Convert a decimal integer to the flavor of the given base and print its
little-endian digit vector, followed by the value rendered back to decimal.

Example:
  bigcalc convert 10 --to-base 3
  bigcalc convert --to-base 65536 --strategy division -- -4294967296`,
		Args:          usageArgs(cobra.ExactArgs(1)),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(opts, args[0], cmd)
		},
	}

	cmd.Flags().Uint64Var(&opts.ToBase, "to-base", 0, "target digit base (defaults to --base)")

	return cmd
}

func runConvert(opts *ConvertOptions, n string, cmd *cobra.Command) error {
	f, s := opts.flavor()
	if cmd.Flags().Changed("to-base") {
		var err error
		if f, err = bigint.NewFlavor(opts.ToBase); err != nil {
			return WrapExitError(ExitCommandError, "invalid target base", err)
		}
	}

	x, err := parseOperand(n, f, s)
	if err != nil {
		return err
	}
	// render back through the Default flavor
	back, err := x.ConvertWith(bigint.Default, s)
	if err != nil {
		return WrapExitError(ExitCommandError, "conversion failed", err)
	}

	return opts.output(cmd).Success(&ConvertResult{
		Base:     f.Base(),
		Width:    f.Width(),
		Negative: x.Sign() < 0,
		Digits:   x.Digits(),
		Value:    back,
	})
}
