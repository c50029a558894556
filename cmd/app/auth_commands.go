package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/authgate/cmd/app/commands"
	authService "github.com/allisson/authgate/internal/auth/service"
)

func getAuthCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "hash-password",
			Usage: "Hash a password read from stdin and print a credentials file entry",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "username",
					Aliases:  []string{"u"},
					Required: true,
					Usage:    "Username for the credentials entry",
				},
				&cli.BoolFlag{
					Name:    "generate",
					Aliases: []string{"g"},
					Value:   false,
					Usage:   "Generate a random password instead of reading one from stdin",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunHashPassword(
					authService.NewPasswordService(),
					commands.DefaultIO(),
					cmd.String("username"),
					cmd.Bool("generate"),
				)
			},
		},
	}
}
