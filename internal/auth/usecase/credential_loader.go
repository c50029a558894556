package usecase

import (
	"context"
	"fmt"

	authDomain "github.com/allisson/authgate/internal/auth/domain"
	authService "github.com/allisson/authgate/internal/auth/service"
)

// BootstrapUser is a user whose plaintext password is supplied through configuration and
// hashed at startup.
type BootstrapUser struct {
	Username string
	Password string
}

// LoadCredentialStore reads provisioned credentials from repo, adds bootstrap when it has a
// username, and builds the store. A bootstrap username already present in repo is an error.
func LoadCredentialStore(
	ctx context.Context,
	repo CredentialRepository,
	passwords authService.PasswordService,
	bootstrap BootstrapUser,
) (authService.CredentialStore, error) {
	credentials, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if bootstrap.Username != "" {
		if bootstrap.Password == "" {
			return nil, fmt.Errorf("%w: bootstrap user %q has no password", authDomain.ErrInvalidCredential, bootstrap.Username)
		}

		hash, err := passwords.HashPassword(bootstrap.Password)
		if err != nil {
			return nil, err
		}
		credentials = append(credentials, &authDomain.Credential{
			Username:     bootstrap.Username,
			PasswordHash: hash,
		})
	}

	return authService.NewCredentialStore(passwords, credentials)
}
