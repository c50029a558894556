package usecase

import (
	"context"
	"log/slog"

	authDomain "github.com/allisson/authgate/internal/auth/domain"
	authService "github.com/allisson/authgate/internal/auth/service"
	apperrors "github.com/allisson/authgate/internal/errors"
)

// gatewayUseCase implements GatewayUseCase.
type gatewayUseCase struct {
	credentials authService.CredentialStore
	tokens      authService.TokenService
	tracker     AttemptTracker
	events      SecurityEventEmitter
	logger      *slog.Logger
}

// Authenticate checks credentials and either issues a token or records the failure.
//
// Unknown users, wrong passwords and empty fields are indistinguishable to the caller.
// A successful login leaves the source's counter untouched.
func (g *gatewayUseCase) Authenticate(
	ctx context.Context,
	input *authDomain.AuthenticateInput,
) (*authDomain.AuthenticateOutput, error) {
	sourceID := authDomain.NormalizeSourceID(input.SourceID)

	if !g.credentials.Verify(input.Username, input.Password) {
		g.recordFailure(ctx, sourceID)
		return nil, authDomain.ErrInvalidCredentials
	}

	issued, err := g.tokens.Issue(input.Username)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to issue token")
	}

	return &authDomain.AuthenticateOutput{Token: issued}, nil
}

// recordFailure bumps the counter and emits an event past the threshold. Sink errors are
// logged and never surface to the login caller.
func (g *gatewayUseCase) recordFailure(ctx context.Context, sourceID string) {
	count := g.tracker.RecordFailure(sourceID)

	g.logger.Info("authentication failed",
		slog.String("source_id", sourceID),
		slog.Uint64("failed_attempts", count),
	)

	if !g.tracker.ShouldAlert(count) {
		return
	}

	g.logger.Warn("potential brute force attack",
		slog.String("source_id", sourceID),
		slog.Uint64("failed_attempts", count),
	)

	if err := g.events.Emit(ctx, sourceID, count); err != nil {
		g.logger.Error("failed to record security event",
			slog.String("source_id", sourceID),
			slog.Any("error", err),
		)
	}
}

// VerifySession validates token.
func (g *gatewayUseCase) VerifySession(
	ctx context.Context,
	token string,
) (*authDomain.VerifySessionOutput, error) {
	claims, err := g.tokens.Verify(token)
	if err != nil {
		if apperrors.Is(err, authDomain.ErrTokenExpired) {
			return nil, authDomain.ErrTokenExpired
		}
		return nil, authDomain.ErrTokenInvalid
	}

	return &authDomain.VerifySessionOutput{Username: claims.Username()}, nil
}

// NewGatewayUseCase creates a new GatewayUseCase.
func NewGatewayUseCase(
	credentials authService.CredentialStore,
	tokens authService.TokenService,
	tracker AttemptTracker,
	events SecurityEventEmitter,
	logger *slog.Logger,
) GatewayUseCase {
	return &gatewayUseCase{
		credentials: credentials,
		tokens:      tokens,
		tracker:     tracker,
		events:      events,
		logger:      logger,
	}
}
