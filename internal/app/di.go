// Package app provides the dependency injection container that assembles the gateway.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/lmittmann/tint"

	authHTTP "github.com/allisson/authgate/internal/auth/http"
	authService "github.com/allisson/authgate/internal/auth/service"
	authUseCase "github.com/allisson/authgate/internal/auth/usecase"
	"github.com/allisson/authgate/internal/config"
	cryptoDomain "github.com/allisson/authgate/internal/crypto/domain"
	cryptoHTTP "github.com/allisson/authgate/internal/crypto/http"
	cryptoService "github.com/allisson/authgate/internal/crypto/service"
	cryptoUseCase "github.com/allisson/authgate/internal/crypto/usecase"
	"github.com/allisson/authgate/internal/database"
	"github.com/allisson/authgate/internal/http"
	"github.com/allisson/authgate/internal/metrics"
	securityHTTP "github.com/allisson/authgate/internal/security/http"
	securityService "github.com/allisson/authgate/internal/security/service"
	securityUseCase "github.com/allisson/authgate/internal/security/usecase"
)

// ErrDatabaseNotConfigured is returned by DB when the security log driver is file based.
var ErrDatabaseNotConfigured = errors.New("database not configured for security log driver")

// Container holds all application dependencies and creates them on first access.
type Container struct {
	config    *config.Config
	logOutput io.Writer

	// Infrastructure
	logger          *slog.Logger
	db              *sql.DB
	txManager       database.TxManager
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Crypto
	kmsService    cryptoService.KMSService
	kmsKeeper     cryptoDomain.KMSKeeper
	keyLoader     cryptoService.KeyLoader
	aeadManager   cryptoService.AEADManager
	cipherService cryptoService.CipherService
	cipherUseCase cryptoUseCase.CipherUseCase
	cipherHandler *cryptoHTTP.CipherHandler

	// Auth
	passwordService      authService.PasswordService
	credentialRepository authUseCase.CredentialRepository
	credentialStore      authService.CredentialStore
	tokenService         authService.TokenService
	gatewayUseCase       authUseCase.GatewayUseCase
	authHandler          *authHTTP.AuthHandler

	// Security
	attemptTracker       *securityService.AttemptTracker
	eventRepository      securityUseCase.EventRepository
	securityEventUseCase securityUseCase.SecurityEventUseCase
	logsHandler          *securityHTTP.LogsHandler

	// Servers
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	mu                       sync.Mutex
	errMu                    sync.Mutex
	loggerInit               sync.Once
	dbInit                   sync.Once
	txManagerInit            sync.Once
	metricsProviderInit      sync.Once
	businessMetricsInit      sync.Once
	kmsServiceInit           sync.Once
	kmsKeeperInit            sync.Once
	keyLoaderInit            sync.Once
	aeadManagerInit          sync.Once
	cipherServiceInit        sync.Once
	cipherUseCaseInit        sync.Once
	cipherHandlerInit        sync.Once
	passwordServiceInit      sync.Once
	credentialRepositoryInit sync.Once
	credentialStoreInit      sync.Once
	tokenServiceInit         sync.Once
	gatewayUseCaseInit       sync.Once
	authHandlerInit          sync.Once
	attemptTrackerInit       sync.Once
	eventRepositoryInit      sync.Once
	securityEventUseCaseInit sync.Once
	logsHandlerInit          sync.Once
	httpServerInit           sync.Once
	metricsServerInit        sync.Once
	initErrors               map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		logOutput:  os.Stdout,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// resolve runs init once and remembers its error under key for later callers.
func (c *Container) resolve(key string, once *sync.Once, init func() error) error {
	once.Do(func() {
		if err := init(); err != nil {
			c.errMu.Lock()
			c.initErrors[key] = err
			c.errMu.Unlock()
		}
	})

	c.errMu.Lock()
	defer c.errMu.Unlock()
	return c.initErrors[key]
}

// Logger returns the structured logger. LOG_FORMAT=text selects a human readable handler.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// DB returns the database connection used by the postgres and mysql event sinks.
func (c *Container) DB() (*sql.DB, error) {
	err := c.resolve("db", &c.dbInit, func() error {
		var err error
		c.db, err = c.initDB()
		return err
	})
	if err != nil {
		return nil, err
	}
	return c.db, nil
}

// TxManager returns the transaction manager over DB.
func (c *Container) TxManager() (database.TxManager, error) {
	err := c.resolve("txManager", &c.txManagerInit, func() error {
		db, err := c.DB()
		if err != nil {
			return fmt.Errorf("failed to get database for tx manager: %w", err)
		}
		c.txManager = database.NewTxManager(db)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.txManager, nil
}

// MetricsProvider returns the Prometheus-backed meter provider, or nil when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	err := c.resolve("metricsProvider", &c.metricsProviderInit, func() error {
		if !c.config.MetricsEnabled {
			return nil
		}
		provider, err := metrics.NewProvider(c.config.MetricsNamespace)
		if err != nil {
			return fmt.Errorf("failed to create metrics provider: %w", err)
		}
		c.metricsProvider = provider
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder; a no-op when metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	err := c.resolve("businessMetrics", &c.businessMetricsInit, func() error {
		provider, err := c.MetricsProvider()
		if err != nil {
			return err
		}
		if provider == nil {
			c.businessMetrics = metrics.NewNoOpBusinessMetrics()
			return nil
		}

		bm, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
		if err != nil {
			return fmt.Errorf("failed to create business metrics: %w", err)
		}
		c.businessMetrics = bm
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.businessMetrics, nil
}

// HTTPServer returns the public HTTP server with all routes configured.
func (c *Container) HTTPServer() (*http.Server, error) {
	err := c.resolve("httpServer", &c.httpServerInit, func() error {
		var err error
		c.httpServer, err = c.initHTTPServer()
		return err
	})
	if err != nil {
		return nil, err
	}
	return c.httpServer, nil
}

// MetricsServer returns the Prometheus scrape server, or nil when metrics are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	err := c.resolve("metricsServer", &c.metricsServerInit, func() error {
		provider, err := c.MetricsProvider()
		if err != nil {
			return err
		}
		if provider == nil {
			return nil
		}
		c.metricsServer = http.NewMetricsServer(c.config.ServerHost, c.config.MetricsPort, c.Logger(), provider)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.metricsServer, nil
}

// Shutdown releases every initialized resource.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var errs []error

	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("http server shutdown: %w", err))
		}
	}

	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if c.kmsKeeper != nil {
		if err := c.kmsKeeper.Close(); err != nil {
			errs = append(errs, fmt.Errorf("kms keeper close: %w", err))
		}
	}

	if c.db != nil {
		if err := c.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("database close: %w", err))
		}
	}

	return errors.Join(errs...)
}

// initLogger creates a JSON logger, or a tint text logger when LOG_FORMAT=text.
func (c *Container) initLogger() *slog.Logger {
	var level slog.Level
	switch c.config.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var handler slog.Handler
	if c.config.LogFormat == "text" {
		handler = tint.NewHandler(c.logOutput, &tint.Options{
			Level:      level,
			TimeFormat: "2006-01-02 15:04:05.000",
			NoColor:    c.logOutput != os.Stdout,
		})
	} else {
		handler = slog.NewJSONHandler(c.logOutput, &slog.HandlerOptions{Level: level})
	}

	return slog.New(handler)
}

// initDB connects to the database selected by the security log driver.
func (c *Container) initDB() (*sql.DB, error) {
	if !c.config.UsesDatabase() {
		return nil, ErrDatabaseNotConfigured
	}

	db, err := database.Connect(context.Background(), database.Config{
		Driver:             c.config.SecurityLogDriver,
		ConnectionString:   c.config.DBConnectionString,
		MaxOpenConnections: c.config.DBMaxOpenConnections,
		MaxIdleConnections: c.config.DBMaxIdleConnections,
		ConnMaxLifetime:    c.config.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// initHTTPServer wires handlers into the public server.
func (c *Container) initHTTPServer() (*http.Server, error) {
	authHandler, err := c.AuthHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get auth handler for http server: %w", err)
	}

	cipherHandler, err := c.CipherHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get cipher handler for http server: %w", err)
	}

	logsHandler, err := c.LogsHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get logs handler for http server: %w", err)
	}

	gatewayUseCase, err := c.GatewayUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get gateway use case for http server: %w", err)
	}

	metricsProvider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
	}

	var db *sql.DB
	if c.config.UsesDatabase() {
		if db, err = c.DB(); err != nil {
			return nil, fmt.Errorf("failed to get database for http server: %w", err)
		}
	}

	server := http.NewServer(db, c.config.ServerHost, c.config.ServerPort, c.Logger())
	server.SetupRouter(c.config, authHandler, cipherHandler, logsHandler, gatewayUseCase, metricsProvider)

	return server, nil
}
