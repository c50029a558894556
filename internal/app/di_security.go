package app

import (
	"fmt"

	"github.com/allisson/authgate/internal/database"
	securityDomain "github.com/allisson/authgate/internal/security/domain"
	securityHTTP "github.com/allisson/authgate/internal/security/http"
	securityRepository "github.com/allisson/authgate/internal/security/repository"
	securityService "github.com/allisson/authgate/internal/security/service"
	securityUseCase "github.com/allisson/authgate/internal/security/usecase"
)

// AttemptTracker returns the process-wide failed login counter.
func (c *Container) AttemptTracker() (*securityService.AttemptTracker, error) {
	err := c.resolve("attemptTracker", &c.attemptTrackerInit, func() error {
		tracker, err := securityService.NewAttemptTracker(c.config.SecurityAlertThreshold)
		if err != nil {
			return fmt.Errorf("failed to create attempt tracker: %w", err)
		}
		c.attemptTracker = tracker
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.attemptTracker, nil
}

// EventRepository returns the security event sink selected by SECURITY_LOG_DRIVER.
func (c *Container) EventRepository() (securityUseCase.EventRepository, error) {
	err := c.resolve("eventRepository", &c.eventRepositoryInit, func() error {
		var err error
		c.eventRepository, err = c.initEventRepository()
		return err
	})
	if err != nil {
		return nil, err
	}
	return c.eventRepository, nil
}

// SecurityEventUseCase returns the use case that records and reads security events.
func (c *Container) SecurityEventUseCase() (securityUseCase.SecurityEventUseCase, error) {
	err := c.resolve("securityEventUseCase", &c.securityEventUseCaseInit, func() error {
		var err error
		c.securityEventUseCase, err = c.initSecurityEventUseCase()
		return err
	})
	if err != nil {
		return nil, err
	}
	return c.securityEventUseCase, nil
}

// LogsHandler returns the HTTP handler for /logs.
func (c *Container) LogsHandler() (*securityHTTP.LogsHandler, error) {
	err := c.resolve("logsHandler", &c.logsHandlerInit, func() error {
		useCase, err := c.SecurityEventUseCase()
		if err != nil {
			return fmt.Errorf("failed to get security event use case for logs handler: %w", err)
		}
		c.logsHandler = securityHTTP.NewLogsHandler(useCase, c.Logger())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.logsHandler, nil
}

func (c *Container) initEventRepository() (securityUseCase.EventRepository, error) {
	switch c.config.SecurityLogDriver {
	case "file":
		return securityRepository.NewFileEventRepository(c.config.SecurityLogFile), nil
	case "postgres":
		db, err := c.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get database for event repository: %w", err)
		}
		return securityRepository.NewPostgreSQLEventRepository(db), nil
	case "mysql":
		db, err := c.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get database for event repository: %w", err)
		}
		return securityRepository.NewMySQLEventRepository(db), nil
	default:
		return nil, fmt.Errorf("%w: %q", securityDomain.ErrUnsupportedDriver, c.config.SecurityLogDriver)
	}
}

// initSecurityEventUseCase creates the use case, wrapped with metrics when enabled.
// Database sinks purge inside a transaction.
func (c *Container) initSecurityEventUseCase() (securityUseCase.SecurityEventUseCase, error) {
	repo, err := c.EventRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get event repository for security event use case: %w", err)
	}

	var txManager database.TxManager
	if c.config.UsesDatabase() {
		if txManager, err = c.TxManager(); err != nil {
			return nil, fmt.Errorf("failed to get tx manager for security event use case: %w", err)
		}
	}

	baseUseCase := securityUseCase.NewSecurityEventUseCase(repo, txManager)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for security event use case: %w", err)
		}
		return securityUseCase.NewSecurityEventUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
