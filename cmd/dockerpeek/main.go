package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dockerpeek/dockerpeek/internal/cli"
	"github.com/dockerpeek/dockerpeek/internal/printer"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		printer.Fprintln(os.Stderr, printer.Error(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}

// runCLI runs the root command and returns any error instead of exiting,
// so it can be exercised from tests.
func runCLI(args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cli.New().Run(ctx, args)
}
