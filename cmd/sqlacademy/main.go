// Package main provides the CLI for the SQLAcademy learning platform.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sqlacademy-labs/sqlacademy/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		os.Exit(1)
	}
}
