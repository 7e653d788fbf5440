// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cmd := &cli.Command{
		Name:     "app",
		Usage:    "Client signup service",
		Version:  version,
		Commands: getCommands(version),
	}

	if err := cmd.Run(ctx, os.Args); err != nil {
		slog.Error("application error", slog.Any("error", err))
		cancel()
		os.Exit(1)
	}
}
