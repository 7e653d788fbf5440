package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/clients/cmd/app/commands"
	"github.com/allisson/clients/internal/app"
	"github.com/allisson/clients/internal/config"
)

func getClientCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "signup",
			Usage: "Sign up a client from a JSON document",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "file",
					Aliases: []string{"i"},
					Usage:   "Path to the signup JSON document (reads stdin when omitted)",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg, err := loadConfig()
				if err != nil {
					return err
				}
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				signupUseCase, err := container.SignupUseCase()
				if err != nil {
					return err
				}

				return commands.RunSignup(
					ctx,
					signupUseCase,
					container.Logger(),
					cmd.String("file"),
					cmd.String("format"),
					commands.DefaultIO(),
				)
			},
		},
	}
}

// loadConfig loads and validates the configuration from the environment.
func loadConfig() (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
