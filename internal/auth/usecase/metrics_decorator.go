package usecase

import (
	"context"
	"time"

	authDomain "github.com/allisson/authgate/internal/auth/domain"
	"github.com/allisson/authgate/internal/metrics"
)

// gatewayUseCaseWithMetrics decorates GatewayUseCase with metrics instrumentation.
type gatewayUseCaseWithMetrics struct {
	next    GatewayUseCase
	metrics metrics.BusinessMetrics
}

// NewGatewayUseCaseWithMetrics wraps a GatewayUseCase with metrics recording.
func NewGatewayUseCaseWithMetrics(useCase GatewayUseCase, m metrics.BusinessMetrics) GatewayUseCase {
	return &gatewayUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Authenticate records metrics for login attempts.
func (g *gatewayUseCaseWithMetrics) Authenticate(
	ctx context.Context,
	input *authDomain.AuthenticateInput,
) (*authDomain.AuthenticateOutput, error) {
	start := time.Now()
	output, err := g.next.Authenticate(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	g.metrics.RecordOperation(ctx, "auth", "authenticate", status)
	g.metrics.RecordDuration(ctx, "auth", "authenticate", time.Since(start), status)

	return output, err
}

// VerifySession records metrics for session checks.
func (g *gatewayUseCaseWithMetrics) VerifySession(
	ctx context.Context,
	token string,
) (*authDomain.VerifySessionOutput, error) {
	start := time.Now()
	output, err := g.next.VerifySession(ctx, token)

	status := "success"
	if err != nil {
		status = "error"
	}

	g.metrics.RecordOperation(ctx, "auth", "verify_session", status)
	g.metrics.RecordDuration(ctx, "auth", "verify_session", time.Since(start), status)

	return output, err
}
