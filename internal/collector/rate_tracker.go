package collector

import (
	"sync"
	"time"
)

// RateTracker remembers the GitHub API quota reported by the latest response.
// It never delays calls.
type RateTracker interface {
	CheckLimit() (remaining int, resetTime time.Time, known bool)
	UpdateLimit(remaining int, resetTime time.Time)
}

// githubRateTracker implements RateTracker for GitHub API
type githubRateTracker struct {
	mu        sync.Mutex
	remaining int
	resetTime time.Time
	known     bool
}

// NewRateTracker creates a new rate tracker
func NewRateTracker() RateTracker {
	return &githubRateTracker{}
}

// CheckLimit returns the last known rate limit status
func (r *githubRateTracker) CheckLimit() (remaining int, resetTime time.Time, known bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.remaining, r.resetTime, r.known
}

// UpdateLimit updates the rate limit from API response headers
func (r *githubRateTracker) UpdateLimit(remaining int, resetTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.remaining = remaining
	r.resetTime = resetTime
	r.known = true
}
