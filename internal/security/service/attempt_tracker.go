// Package service provides the in-memory attempt tracker used for brute force detection.
package service

import (
	"sync"

	securityDomain "github.com/allisson/authgate/internal/security/domain"
)

// AttemptTracker counts failed authentication attempts per source. Counters only grow;
// nothing resets or decays them for the lifetime of the process.
type AttemptTracker struct {
	mu        sync.Mutex
	counts    map[string]uint64
	threshold uint64
}

// RecordFailure increments the counter for sourceID and returns the new value.
func (a *AttemptTracker) RecordFailure(sourceID string) uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.counts[sourceID]++
	return a.counts[sourceID]
}

// Count returns the current counter for sourceID, zero when it has never failed.
func (a *AttemptTracker) Count(sourceID string) uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.counts[sourceID]
}

// ShouldAlert reports whether count is past the threshold. Every failure past the
// threshold alerts again.
func (a *AttemptTracker) ShouldAlert(count uint64) bool {
	return count > a.threshold
}

// NewAttemptTracker creates an AttemptTracker that alerts once a source exceeds threshold failures.
func NewAttemptTracker(threshold int) (*AttemptTracker, error) {
	if threshold < 0 {
		return nil, securityDomain.ErrInvalidThreshold
	}
	return &AttemptTracker{
		counts:    make(map[string]uint64),
		threshold: uint64(threshold),
	}, nil
}
