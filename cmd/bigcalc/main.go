// Command bigcalc is a calculator and test driver for arbitrary precision
// integers.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/db47h/bigint/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := cli.NewRootCommand()
	err := cmd.ExecuteContext(ctx)
	if err != nil {
		format, _ := cmd.PersistentFlags().GetString("format")
		out := &cli.OutputFormatter{Format: format, Writer: os.Stderr}
		if format == "json" {
			out.Writer = os.Stdout
		}
		_ = out.Error(err)
	}
	stop()
	os.Exit(cli.GetExitCode(err))
}
