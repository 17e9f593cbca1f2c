// Command curp generates CURP codes and validates birth dates from the
// command line.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/dmitrymomot/curp/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := cli.NewRootCommand().ExecuteContext(ctx)
	if err != nil {
		if msg := err.Error(); msg != "" {
			fmt.Fprintln(os.Stderr, "Error:", msg)
		}
	}
	stop()
	os.Exit(cli.GetExitCode(err))
}
