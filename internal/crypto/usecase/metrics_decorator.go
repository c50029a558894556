package usecase

import (
	"context"
	"time"

	"github.com/allisson/authgate/internal/metrics"
)

// cipherUseCaseWithMetrics decorates CipherUseCase with metrics instrumentation.
type cipherUseCaseWithMetrics struct {
	next    CipherUseCase
	metrics metrics.BusinessMetrics
}

// NewCipherUseCaseWithMetrics wraps a CipherUseCase with metrics recording.
func NewCipherUseCaseWithMetrics(useCase CipherUseCase, m metrics.BusinessMetrics) CipherUseCase {
	return &cipherUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Encrypt records metrics for encrypt operations.
func (c *cipherUseCaseWithMetrics) Encrypt(ctx context.Context, text string) (string, error) {
	start := time.Now()
	out, err := c.next.Encrypt(ctx, text)
	c.record(ctx, "cipher_encrypt", start, err)
	return out, err
}

// Decrypt records metrics for decrypt operations.
func (c *cipherUseCaseWithMetrics) Decrypt(ctx context.Context, encryptedText string) (string, error) {
	start := time.Now()
	out, err := c.next.Decrypt(ctx, encryptedText)
	c.record(ctx, "cipher_decrypt", start, err)
	return out, err
}

func (c *cipherUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "crypto", operation, status)
	c.metrics.RecordDuration(ctx, "crypto", operation, time.Since(start), status)
}
