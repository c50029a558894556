// Package http provides the HTTP handler that exposes the security event log.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/authgate/internal/httputil"
	"github.com/allisson/authgate/internal/security/http/dto"
	securityUseCase "github.com/allisson/authgate/internal/security/usecase"
)

// LogsHandler handles HTTP requests for the security event log.
type LogsHandler struct {
	securityEventUseCase securityUseCase.SecurityEventUseCase
	logger               *slog.Logger
}

// NewLogsHandler creates a new logs handler with required dependencies.
func NewLogsHandler(securityEventUseCase securityUseCase.SecurityEventUseCase, logger *slog.Logger) *LogsHandler {
	return &LogsHandler{
		securityEventUseCase: securityEventUseCase,
		logger:               logger,
	}
}

// ListHandler returns recorded security events.
// GET /logs?offset=&limit= - Returns 200 with lines, or the no-logs marker when empty.
func (h *LogsHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	lines, err := h.securityEventUseCase.ReadLogs(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapLinesToLogsResponse(lines))
}
