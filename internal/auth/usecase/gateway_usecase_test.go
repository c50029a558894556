package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"

	authDomain "github.com/allisson/authgate/internal/auth/domain"
	authService "github.com/allisson/authgate/internal/auth/service"
	usecaseMocks "github.com/allisson/authgate/internal/auth/usecase/mocks"
	securityRepository "github.com/allisson/authgate/internal/security/repository"
	securityService "github.com/allisson/authgate/internal/security/service"
	securityUseCase "github.com/allisson/authgate/internal/security/usecase"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type gatewayMocks struct {
	credentials *usecaseMocks.MockCredentialStore
	tokens      *usecaseMocks.MockTokenService
	tracker     *usecaseMocks.MockAttemptTracker
	events      *usecaseMocks.MockSecurityEventEmitter
}

func (m *gatewayMocks) assertExpectations(t *testing.T) {
	m.credentials.AssertExpectations(t)
	m.tokens.AssertExpectations(t)
	m.tracker.AssertExpectations(t)
	m.events.AssertExpectations(t)
}

func setupGatewayWithMocks() (GatewayUseCase, *gatewayMocks) {
	m := &gatewayMocks{
		credentials: &usecaseMocks.MockCredentialStore{},
		tokens:      &usecaseMocks.MockTokenService{},
		tracker:     &usecaseMocks.MockAttemptTracker{},
		events:      &usecaseMocks.MockSecurityEventEmitter{},
	}
	return NewGatewayUseCase(m.credentials, m.tokens, m.tracker, m.events, discardLogger()), m
}

func TestGatewayUseCase_Authenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_IssuesTokenWithoutTouchingTracker", func(t *testing.T) {
		uc, m := setupGatewayWithMocks()
		issued := &authDomain.IssuedToken{Token: "jwt", ExpiresAt: time.Now().Add(time.Hour)}

		m.credentials.On("Verify", "admin", "password123").Return(true).Once()
		m.tokens.On("Issue", "admin").Return(issued, nil).Once()

		output, err := uc.Authenticate(ctx, &authDomain.AuthenticateInput{
			Username: "admin",
			Password: "password123",
			SourceID: "1.2.3.4",
		})
		require.NoError(t, err)
		assert.Equal(t, issued, output.Token)
		m.assertExpectations(t)
	})

	t.Run("Failure_BelowThresholdNoEvent", func(t *testing.T) {
		uc, m := setupGatewayWithMocks()

		m.credentials.On("Verify", "admin", "wrong").Return(false).Once()
		m.tracker.On("RecordFailure", "1.2.3.4").Return(uint64(2)).Once()
		m.tracker.On("ShouldAlert", uint64(2)).Return(false).Once()

		output, err := uc.Authenticate(ctx, &authDomain.AuthenticateInput{
			Username: "admin",
			Password: "wrong",
			SourceID: "1.2.3.4",
		})
		assert.Nil(t, output)
		assert.ErrorIs(t, err, authDomain.ErrInvalidCredentials)
		m.assertExpectations(t)
	})

	t.Run("Failure_PastThresholdEmitsEvent", func(t *testing.T) {
		uc, m := setupGatewayWithMocks()

		m.credentials.On("Verify", "admin", "wrong").Return(false).Once()
		m.tracker.On("RecordFailure", "1.2.3.4").Return(uint64(4)).Once()
		m.tracker.On("ShouldAlert", uint64(4)).Return(true).Once()
		m.events.On("Emit", ctx, "1.2.3.4", uint64(4)).Return(nil).Once()

		_, err := uc.Authenticate(ctx, &authDomain.AuthenticateInput{
			Username: "admin",
			Password: "wrong",
			SourceID: "1.2.3.4",
		})
		assert.ErrorIs(t, err, authDomain.ErrInvalidCredentials)
		m.assertExpectations(t)
	})

	t.Run("Failure_SinkErrorIsNotReturned", func(t *testing.T) {
		uc, m := setupGatewayWithMocks()

		m.credentials.On("Verify", "admin", "wrong").Return(false).Once()
		m.tracker.On("RecordFailure", "1.2.3.4").Return(uint64(9)).Once()
		m.tracker.On("ShouldAlert", uint64(9)).Return(true).Once()
		m.events.On("Emit", ctx, "1.2.3.4", uint64(9)).Return(errors.New("disk full")).Once()

		_, err := uc.Authenticate(ctx, &authDomain.AuthenticateInput{
			Username: "admin",
			Password: "wrong",
			SourceID: "1.2.3.4",
		})
		assert.ErrorIs(t, err, authDomain.ErrInvalidCredentials)
		m.assertExpectations(t)
	})

	t.Run("Failure_EmptySourceUsesUnknown", func(t *testing.T) {
		uc, m := setupGatewayWithMocks()

		m.credentials.On("Verify", "", "").Return(false).Once()
		m.tracker.On("RecordFailure", authDomain.DefaultSourceID).Return(uint64(1)).Once()
		m.tracker.On("ShouldAlert", uint64(1)).Return(false).Once()

		_, err := uc.Authenticate(ctx, &authDomain.AuthenticateInput{})
		assert.ErrorIs(t, err, authDomain.ErrInvalidCredentials)
		m.assertExpectations(t)
	})

	t.Run("Error_IssueFails", func(t *testing.T) {
		uc, m := setupGatewayWithMocks()

		m.credentials.On("Verify", "admin", "password123").Return(true).Once()
		m.tokens.On("Issue", "admin").Return(nil, errors.New("signer broken")).Once()

		_, err := uc.Authenticate(ctx, &authDomain.AuthenticateInput{Username: "admin", Password: "password123"})
		assert.Error(t, err)
		assert.NotErrorIs(t, err, authDomain.ErrInvalidCredentials)
		m.assertExpectations(t)
	})
}

func TestGatewayUseCase_VerifySession(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		uc, m := setupGatewayWithMocks()
		m.tokens.On("Verify", "jwt").Return(&authDomain.Claims{User: "admin"}, nil).Once()

		output, err := uc.VerifySession(ctx, "jwt")
		require.NoError(t, err)
		assert.Equal(t, "admin", output.Username)
	})

	t.Run("Expired", func(t *testing.T) {
		uc, m := setupGatewayWithMocks()
		m.tokens.On("Verify", "jwt").Return(nil, fmt.Errorf("wrapped: %w", authDomain.ErrTokenExpired)).Once()

		_, err := uc.VerifySession(ctx, "jwt")
		assert.Equal(t, authDomain.ErrTokenExpired, err)
	})

	t.Run("AnyOtherErrorIsInvalid", func(t *testing.T) {
		uc, m := setupGatewayWithMocks()
		m.tokens.On("Verify", "jwt").Return(nil, errors.New("garbage")).Once()

		_, err := uc.VerifySession(ctx, "jwt")
		assert.Equal(t, authDomain.ErrTokenInvalid, err)
	})
}

// newRealGateway wires the gateway to real components with a single admin user.
func newRealGateway(t *testing.T, clock func() time.Time) (GatewayUseCase, *securityService.AttemptTracker, securityUseCase.SecurityEventUseCase) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	store, err := authService.NewCredentialStore(authService.NewPasswordService(), []*authDomain.Credential{
		{Username: "admin", PasswordHash: string(hash)},
	})
	require.NoError(t, err)

	tokens, err := authService.NewTokenService(
		[]byte("0123456789abcdef0123456789abcdef"),
		"HS256",
		time.Hour,
		authService.WithClock(clock),
	)
	require.NoError(t, err)

	tracker, err := securityService.NewAttemptTracker(3)
	require.NoError(t, err)

	events := securityUseCase.NewSecurityEventUseCase(
		securityRepository.NewFileEventRepository(filepath.Join(t.TempDir(), "security_logs.txt")),
		nil,
	)

	return NewGatewayUseCase(store, tokens, tracker, events, discardLogger()), tracker, events
}

func TestGatewayUseCase_BruteForceScenario(t *testing.T) {
	ctx := context.Background()
	uc, tracker, events := newRealGateway(t, time.Now)

	wrong := &authDomain.AuthenticateInput{Username: "admin", Password: "nope", SourceID: "1.2.3.4"}

	for i := 1; i <= 3; i++ {
		_, err := uc.Authenticate(ctx, wrong)
		require.ErrorIs(t, err, authDomain.ErrInvalidCredentials)

		lines, err := events.ReadLogs(ctx, 0, 0)
		require.NoError(t, err)
		assert.Empty(t, lines, "no event after failure %d", i)
	}

	_, err := uc.Authenticate(ctx, wrong)
	require.ErrorIs(t, err, authDomain.ErrInvalidCredentials)

	lines, err := events.ReadLogs(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "Potential Brute Force Attack from 1.2.3.4")

	// Correct password still works and does not reset the counter.
	output, err := uc.Authenticate(ctx, &authDomain.AuthenticateInput{
		Username: "admin",
		Password: "password123",
		SourceID: "1.2.3.4",
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(4), tracker.Count("1.2.3.4"))

	session, err := uc.VerifySession(ctx, output.Token.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", session.Username)

	// Every further failure re-alerts.
	_, err = uc.Authenticate(ctx, wrong)
	require.ErrorIs(t, err, authDomain.ErrInvalidCredentials)
	lines, err = events.ReadLogs(ctx, 0, 0)
	require.NoError(t, err)
	assert.Len(t, lines, 2)

	// Other sources are counted separately.
	assert.Equal(t, uint64(0), tracker.Count("5.6.7.8"))
}

func TestGatewayUseCase_VerifyAfterExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	uc, _, _ := newRealGateway(t, func() time.Time { return now })

	output, err := uc.Authenticate(ctx, &authDomain.AuthenticateInput{Username: "admin", Password: "password123"})
	require.NoError(t, err)

	now = now.Add(time.Hour + time.Second)

	_, err = uc.VerifySession(ctx, output.Token.Token)
	assert.ErrorIs(t, err, authDomain.ErrTokenExpired)
}

func TestGatewayUseCase_ConcurrentFailures(t *testing.T) {
	ctx := context.Background()
	uc, tracker, events := newRealGateway(t, time.Now)

	const attempts = 20
	var g errgroup.Group
	for i := 0; i < attempts; i++ {
		g.Go(func() error {
			_, err := uc.Authenticate(ctx, &authDomain.AuthenticateInput{
				Username: "admin",
				Password: "wrong",
				SourceID: "9.9.9.9",
			})
			if !errors.Is(err, authDomain.ErrInvalidCredentials) {
				return fmt.Errorf("unexpected error: %v", err)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, uint64(attempts), tracker.Count("9.9.9.9"))

	lines, err := events.ReadLogs(ctx, 0, 0)
	require.NoError(t, err)
	assert.Len(t, lines, attempts-3)
}
