package cli

import (
	"runtime"

	"github.com/spf13/cobra"
)

// Version is the bigcalc version, set at link time with
// -ldflags "-X github.com/db47h/bigint/internal/cli.Version=...".
var Version = "dev"

// VersionResult is the output of the version command.
type VersionResult struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
}

func (r *VersionResult) String() string {
	return "bigcalc " + r.Version + " (" + r.GoVersion + ")"
}

// NewVersionCommand creates the version command.
func NewVersionCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "version",
		Short:         "Print the bigcalc version",
		Args:          usageArgs(cobra.NoArgs),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.output(cmd).Success(&VersionResult{
				Version:   Version,
				GoVersion: runtime.Version(),
			})
		},
	}
}
