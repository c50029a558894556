package app

import (
	"context"
	"fmt"

	cryptoDomain "github.com/allisson/authgate/internal/crypto/domain"
	cryptoHTTP "github.com/allisson/authgate/internal/crypto/http"
	cryptoService "github.com/allisson/authgate/internal/crypto/service"
	cryptoUseCase "github.com/allisson/authgate/internal/crypto/usecase"
)

// KMSService returns the service used to open KMS keepers.
func (c *Container) KMSService() cryptoService.KMSService {
	c.kmsServiceInit.Do(func() {
		c.kmsService = cryptoService.NewKMSService()
	})
	return c.kmsService
}

// KMSKeeper returns the keeper for KMS_KEY_URI, or nil when configured keys are plain.
func (c *Container) KMSKeeper() (cryptoDomain.KMSKeeper, error) {
	err := c.resolve("kmsKeeper", &c.kmsKeeperInit, func() error {
		if c.config.KMSKeyURI == "" {
			return nil
		}
		keeper, err := c.KMSService().OpenKeeper(context.Background(), c.config.KMSKeyURI)
		if err != nil {
			return err
		}
		c.kmsKeeper = keeper
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.kmsKeeper, nil
}

// KeyLoader returns the loader that resolves the cipher and token signing keys.
func (c *Container) KeyLoader() (cryptoService.KeyLoader, error) {
	err := c.resolve("keyLoader", &c.keyLoaderInit, func() error {
		keeper, err := c.KMSKeeper()
		if err != nil {
			return fmt.Errorf("failed to get kms keeper for key loader: %w", err)
		}

		c.keyLoader, err = cryptoService.NewKeyLoader(context.Background(), c.config.RootKey, keeper, c.Logger())
		return err
	})
	if err != nil {
		return nil, err
	}
	return c.keyLoader, nil
}

// AEADManager returns the AEAD cipher factory.
func (c *Container) AEADManager() cryptoService.AEADManager {
	c.aeadManagerInit.Do(func() {
		c.aeadManager = cryptoService.NewAEADManager()
	})
	return c.aeadManager
}

// CipherService returns the cipher service keyed with the process-lifetime cipher key.
func (c *Container) CipherService() (cryptoService.CipherService, error) {
	err := c.resolve("cipherService", &c.cipherServiceInit, func() error {
		var err error
		c.cipherService, err = c.initCipherService()
		return err
	})
	if err != nil {
		return nil, err
	}
	return c.cipherService, nil
}

// CipherUseCase returns the text cipher use case.
func (c *Container) CipherUseCase() (cryptoUseCase.CipherUseCase, error) {
	err := c.resolve("cipherUseCase", &c.cipherUseCaseInit, func() error {
		var err error
		c.cipherUseCase, err = c.initCipherUseCase()
		return err
	})
	if err != nil {
		return nil, err
	}
	return c.cipherUseCase, nil
}

// CipherHandler returns the HTTP handler for /encrypt and /decrypt.
func (c *Container) CipherHandler() (*cryptoHTTP.CipherHandler, error) {
	err := c.resolve("cipherHandler", &c.cipherHandlerInit, func() error {
		useCase, err := c.CipherUseCase()
		if err != nil {
			return fmt.Errorf("failed to get cipher use case for cipher handler: %w", err)
		}
		c.cipherHandler = cryptoHTTP.NewCipherHandler(useCase, c.Logger())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.cipherHandler, nil
}

// initCipherService loads the cipher key and builds the service for the configured algorithm.
func (c *Container) initCipherService() (cryptoService.CipherService, error) {
	alg, err := cryptoDomain.ParseAlgorithm(c.config.CipherAlgorithm)
	if err != nil {
		return nil, fmt.Errorf("failed to parse cipher algorithm: %w", err)
	}

	keyLoader, err := c.KeyLoader()
	if err != nil {
		return nil, fmt.Errorf("failed to get key loader for cipher service: %w", err)
	}

	key, err := keyLoader.Load(context.Background(), cryptoService.PurposeCipher, c.config.CipherKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load cipher key: %w", err)
	}
	defer cryptoDomain.Zero(key)

	service, err := cryptoService.NewCipherService(c.AEADManager(), key, alg)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher service: %w", err)
	}
	return service, nil
}

// initCipherUseCase creates the cipher use case, wrapped with metrics when enabled.
func (c *Container) initCipherUseCase() (cryptoUseCase.CipherUseCase, error) {
	cipher, err := c.CipherService()
	if err != nil {
		return nil, fmt.Errorf("failed to get cipher service for cipher use case: %w", err)
	}

	baseUseCase := cryptoUseCase.NewCipherUseCase(cipher)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for cipher use case: %w", err)
		}
		return cryptoUseCase.NewCipherUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
