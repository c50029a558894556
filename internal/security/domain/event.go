// Package domain defines intrusion signaling models: security events and their log line format.
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultAlertThreshold is the failure count a source must exceed before events are emitted.
	DefaultAlertThreshold = 3

	// NoLogsMarker is returned to readers when no event has been recorded yet.
	NoLogsMarker = "No logs available"

	// LineTimeLayout is the timestamp layout of a log line, millisecond precision.
	LineTimeLayout = "2006-01-02 15:04:05,000"
)

// SecurityEvent is an append-only record of suspicious activity from one source.
type SecurityEvent struct {
	ID        uuid.UUID
	SourceID  string
	Message   string
	Count     uint64
	CreatedAt time.Time
}

// NewBruteForceEvent builds the event emitted when sourceID exceeds the failure threshold.
func NewBruteForceEvent(sourceID string, count uint64, now time.Time) *SecurityEvent {
	return &SecurityEvent{
		ID:        uuid.Must(uuid.NewV7()),
		SourceID:  sourceID,
		Message:   BruteForceMessage(sourceID),
		Count:     count,
		CreatedAt: now.UTC(),
	}
}

// BruteForceMessage is the human readable message for a brute force signal.
func BruteForceMessage(sourceID string) string {
	return fmt.Sprintf("Potential Brute Force Attack from %s", sourceID)
}

// Line renders the event as "timestamp - message".
func (e *SecurityEvent) Line() string {
	return e.CreatedAt.UTC().Format(LineTimeLayout) + " - " + e.Message
}
