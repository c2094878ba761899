// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/auth/cmd/app/commands"
	"github.com/allisson/auth/internal/app"
	"github.com/allisson/auth/internal/config"
)

const version = "1.0.0"

func main() {
	cmd := &cli.Command{
		Name:    "auth",
		Usage:   "Authentication and role-based access control service",
		Version: version,
		Commands: []*cli.Command{
			{
				Name:  "server",
				Usage: "Start the HTTP server",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunServer(ctx, version)
				},
			},
			{
				Name:  "migrate",
				Usage: "Run database migrations",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg := config.Load()
					container := app.NewContainer(cfg)
					return commands.RunMigrations(
						container.Logger(),
						cfg.DBDriver,
						cfg.DBConnectionString,
					)
				},
			},
			{
				Name:  "onboard",
				Usage: "Bootstrap the default roles and the root user",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunOnboard(ctx)
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}
