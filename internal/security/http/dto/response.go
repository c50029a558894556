// Package dto provides data transfer objects for the security log endpoints.
package dto

import securityDomain "github.com/allisson/authgate/internal/security/domain"

// LogsResponse carries either the recorded lines or the NoLogsMarker string.
type LogsResponse struct {
	Logs any `json:"logs"`
}

// MapLinesToLogsResponse converts recorded lines to the response body.
func MapLinesToLogsResponse(lines []string) LogsResponse {
	if len(lines) == 0 {
		return LogsResponse{Logs: securityDomain.NoLogsMarker}
	}
	return LogsResponse{Logs: lines}
}
