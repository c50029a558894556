// Package domain defines the identity gateway domain models: credentials, session tokens
// and the inputs and outputs of the gateway operations.
package domain

// DefaultSourceID identifies requests that did not report where they came from.
// All such requests share one attempt counter.
const DefaultSourceID = "unknown"

// NormalizeSourceID returns sourceID, or DefaultSourceID when it is empty.
func NormalizeSourceID(sourceID string) string {
	if sourceID == "" {
		return DefaultSourceID
	}
	return sourceID
}
