package commands

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"

	cryptoDomain "github.com/allisson/authgate/internal/crypto/domain"
	cryptoService "github.com/allisson/authgate/internal/crypto/service"
)

// keyEnvVars lists the settings that accept a generated key.
var keyEnvVars = map[string]bool{
	"ROOT_KEY":               true,
	"CIPHER_KEY":             true,
	"AUTH_TOKEN_SIGNING_KEY": true,
}

// RunCreateKey generates a 32-byte key and prints it as a base64 environment assignment.
// When kmsKeyURI is set the key is wrapped with that KMS key first, and KMS_KEY_URI is printed
// alongside it. For local development use kmsKeyURI="base64key://<32-byte-base64-key>".
func RunCreateKey(
	ctx context.Context,
	kmsService cryptoService.KMSService,
	logger *slog.Logger,
	out io.Writer,
	envVar string,
	kmsKeyURI string,
	format string,
) error {
	if !keyEnvVars[envVar] {
		return fmt.Errorf("invalid env var: %s (valid options: ROOT_KEY, CIPHER_KEY, AUTH_TOKEN_SIGNING_KEY)", envVar)
	}
	if err := validateFormat(format); err != nil {
		return err
	}

	key := make([]byte, cryptoDomain.KeySize)
	if _, err := rand.Read(key); err != nil {
		return fmt.Errorf("failed to generate key: %w", err)
	}
	defer cryptoDomain.Zero(key)

	material := key
	if kmsKeyURI != "" {
		keeper, err := kmsService.OpenKeeper(ctx, kmsKeyURI)
		if err != nil {
			return fmt.Errorf("failed to open KMS keeper: %w", err)
		}
		defer func() {
			if closeErr := keeper.Close(); closeErr != nil {
				logger.Warn("failed to close KMS keeper", slog.Any("error", closeErr))
			}
		}()

		material, err = keeper.Encrypt(ctx, key)
		if err != nil {
			return fmt.Errorf("failed to encrypt key with KMS: %w", err)
		}
	}

	encodedKey := base64.StdEncoding.EncodeToString(material)

	logger.Info("key created",
		slog.String("env_var", envVar),
		slog.Bool("kms_wrapped", kmsKeyURI != ""),
	)

	if format == "json" {
		result := map[string]any{envVar: encodedKey}
		if kmsKeyURI != "" {
			result["KMS_KEY_URI"] = kmsKeyURI
		}
		return writeJSON(out, result)
	}

	_, _ = fmt.Fprintln(out, "# Copy these environment variables to your .env file or secrets manager")
	if kmsKeyURI != "" {
		_, _ = fmt.Fprintln(out, "# Every configured key must be wrapped with the same KMS key")
		_, _ = fmt.Fprintf(out, "KMS_KEY_URI=\"%s\"\n", kmsKeyURI)
	}
	_, err := fmt.Fprintf(out, "%s=\"%s\"\n", envVar, encodedKey)
	return err
}
