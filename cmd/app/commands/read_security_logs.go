package commands

import (
	"context"
	"fmt"
	"io"

	securityDomain "github.com/allisson/authgate/internal/security/domain"
	securityUseCase "github.com/allisson/authgate/internal/security/usecase"
)

// RunReadSecurityLogs prints recorded security events, one per line, or the no-logs marker.
func RunReadSecurityLogs(
	ctx context.Context,
	securityEventUseCase securityUseCase.SecurityEventUseCase,
	out io.Writer,
	offset int,
	limit int,
	format string,
) error {
	if offset < 0 || limit < 0 {
		return fmt.Errorf("offset and limit must not be negative, got: %d, %d", offset, limit)
	}
	if err := validateFormat(format); err != nil {
		return err
	}

	lines, err := securityEventUseCase.ReadLogs(ctx, offset, limit)
	if err != nil {
		return fmt.Errorf("failed to read security logs: %w", err)
	}

	if format == "json" {
		if len(lines) == 0 {
			return writeJSON(out, map[string]any{"logs": securityDomain.NoLogsMarker})
		}
		return writeJSON(out, map[string]any{"logs": lines})
	}

	if len(lines) == 0 {
		_, err = fmt.Fprintln(out, securityDomain.NoLogsMarker)
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}
