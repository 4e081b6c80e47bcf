// Package main is the entry point for the adoclint CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/eykd/adoclint-go/cmd"
)

func main() {
	// Cancelled on SIGINT so --watch and long runs shut down cleanly.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprint(os.Stderr, cmd.FormatError(err))
		cancel()
		os.Exit(cmd.ExitCodeFromError(err))
	}
}
