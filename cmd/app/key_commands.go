package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/authgate/cmd/app/commands"
	"github.com/allisson/authgate/internal/app"
	"github.com/allisson/authgate/internal/config"
)

func getKeyCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-key",
			Usage: "Generate a 32-byte key for ROOT_KEY, CIPHER_KEY or AUTH_TOKEN_SIGNING_KEY",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "env-var",
					Aliases: []string{"e"},
					Value:   "ROOT_KEY",
					Usage:   "Setting the key is printed for (ROOT_KEY, CIPHER_KEY, AUTH_TOKEN_SIGNING_KEY)",
				},
				&cli.StringFlag{
					Name:  "kms-key-uri",
					Value: "",
					Usage: "Wrap the key with this KMS key (e.g., base64key://, gcpkms://projects/.../cryptoKeys/...)",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				return commands.RunCreateKey(
					ctx,
					container.KMSService(),
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("env-var"),
					cmd.String("kms-key-uri"),
					cmd.String("format"),
				)
			},
		},
	}
}
