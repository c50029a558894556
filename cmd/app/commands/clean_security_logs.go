package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	securityUseCase "github.com/allisson/authgate/internal/security/usecase"
)

// RunCleanSecurityLogs removes security events older than days from the configured sink.
// With dryRun it only reports how many would be removed.
func RunCleanSecurityLogs(
	ctx context.Context,
	securityEventUseCase securityUseCase.SecurityEventUseCase,
	logger *slog.Logger,
	out io.Writer,
	days int,
	dryRun bool,
	format string,
) error {
	if days < 0 {
		return fmt.Errorf("days must be a positive number, got: %d", days)
	}
	if err := validateFormat(format); err != nil {
		return err
	}

	logger.Info("cleaning security logs",
		slog.Int("days", days),
		slog.Bool("dry_run", dryRun),
	)

	count, err := securityEventUseCase.Purge(ctx, days, dryRun)
	if err != nil {
		return fmt.Errorf("failed to delete security logs: %w", err)
	}

	if format == "json" {
		if err := writeJSON(out, map[string]any{
			"count":   count,
			"days":    days,
			"dry_run": dryRun,
		}); err != nil {
			return err
		}
	} else {
		outputCleanText(out, count, days, dryRun)
	}

	logger.Info("cleanup completed",
		slog.Int64("count", count),
		slog.Int("days", days),
		slog.Bool("dry_run", dryRun),
	)

	return nil
}

func outputCleanText(out io.Writer, count int64, days int, dryRun bool) {
	if dryRun {
		_, _ = fmt.Fprintf(out, "Dry-run mode: Would delete %d security log(s) older than %d day(s)\n", count, days)
		return
	}
	_, _ = fmt.Fprintf(out, "Successfully deleted %d security log(s) older than %d day(s)\n", count, days)
}
