package app

import (
	"context"
	"fmt"

	authHTTP "github.com/allisson/authgate/internal/auth/http"
	authRepository "github.com/allisson/authgate/internal/auth/repository"
	authService "github.com/allisson/authgate/internal/auth/service"
	authUseCase "github.com/allisson/authgate/internal/auth/usecase"
	cryptoDomain "github.com/allisson/authgate/internal/crypto/domain"
	cryptoService "github.com/allisson/authgate/internal/crypto/service"
)

// PasswordService returns the password hashing service.
func (c *Container) PasswordService() authService.PasswordService {
	c.passwordServiceInit.Do(func() {
		c.passwordService = authService.NewPasswordService()
	})
	return c.passwordService
}

// CredentialRepository returns the YAML credential file reader.
func (c *Container) CredentialRepository() authUseCase.CredentialRepository {
	c.credentialRepositoryInit.Do(func() {
		c.credentialRepository = authRepository.NewFileCredentialRepository(c.config.AuthCredentialsFile)
	})
	return c.credentialRepository
}

// CredentialStore returns the immutable credential store built at startup.
func (c *Container) CredentialStore() (authService.CredentialStore, error) {
	err := c.resolve("credentialStore", &c.credentialStoreInit, func() error {
		store, err := authUseCase.LoadCredentialStore(
			context.Background(),
			c.CredentialRepository(),
			c.PasswordService(),
			authUseCase.BootstrapUser{
				Username: c.config.AuthBootstrapUsername,
				Password: c.config.AuthBootstrapPassword,
			},
		)
		if err != nil {
			return fmt.Errorf("failed to load credential store: %w", err)
		}
		c.credentialStore = store
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.credentialStore, nil
}

// TokenService returns the session token service.
func (c *Container) TokenService() (authService.TokenService, error) {
	err := c.resolve("tokenService", &c.tokenServiceInit, func() error {
		var err error
		c.tokenService, err = c.initTokenService()
		return err
	})
	if err != nil {
		return nil, err
	}
	return c.tokenService, nil
}

// GatewayUseCase returns the login and session verification use case.
func (c *Container) GatewayUseCase() (authUseCase.GatewayUseCase, error) {
	err := c.resolve("gatewayUseCase", &c.gatewayUseCaseInit, func() error {
		var err error
		c.gatewayUseCase, err = c.initGatewayUseCase()
		return err
	})
	if err != nil {
		return nil, err
	}
	return c.gatewayUseCase, nil
}

// AuthHandler returns the HTTP handler for /authenticate and /verify.
func (c *Container) AuthHandler() (*authHTTP.AuthHandler, error) {
	err := c.resolve("authHandler", &c.authHandlerInit, func() error {
		gatewayUseCase, err := c.GatewayUseCase()
		if err != nil {
			return fmt.Errorf("failed to get gateway use case for auth handler: %w", err)
		}
		c.authHandler = authHTTP.NewAuthHandler(gatewayUseCase, c.Logger())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.authHandler, nil
}

// initTokenService loads the signing key and creates the token service.
func (c *Container) initTokenService() (authService.TokenService, error) {
	keyLoader, err := c.KeyLoader()
	if err != nil {
		return nil, fmt.Errorf("failed to get key loader for token service: %w", err)
	}

	key, err := keyLoader.Load(context.Background(), cryptoService.PurposeTokenSigning, c.config.AuthTokenSigningKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load token signing key: %w", err)
	}

	tokens, err := authService.NewTokenService(key, c.config.AuthTokenSigningAlgorithm, c.config.AuthTokenExpiration)
	if err != nil {
		cryptoDomain.Zero(key)
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}
	return tokens, nil
}

// initGatewayUseCase creates the gateway use case, wrapped with metrics when enabled.
func (c *Container) initGatewayUseCase() (authUseCase.GatewayUseCase, error) {
	store, err := c.CredentialStore()
	if err != nil {
		return nil, fmt.Errorf("failed to get credential store for gateway use case: %w", err)
	}

	tokens, err := c.TokenService()
	if err != nil {
		return nil, fmt.Errorf("failed to get token service for gateway use case: %w", err)
	}

	tracker, err := c.AttemptTracker()
	if err != nil {
		return nil, fmt.Errorf("failed to get attempt tracker for gateway use case: %w", err)
	}

	events, err := c.SecurityEventUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get security event use case for gateway use case: %w", err)
	}

	baseUseCase := authUseCase.NewGatewayUseCase(store, tokens, tracker, events, c.Logger())

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for gateway use case: %w", err)
		}
		return authUseCase.NewGatewayUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
