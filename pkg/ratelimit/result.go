package ratelimit

import "time"

// Result contains the outcome of a rate limit check.
type Result struct {
	// Allowed indicates whether the request is within quota
	Allowed bool

	// Limit is the configured request quota for the window
	Limit int

	// Remaining is the quota left in the current window, clamped at zero
	Remaining int

	// ResetAt is when the current window fully slides past
	ResetAt time.Time

	// TotalHits is the entry count observed by this check, including the
	// check itself. Zero when the store was unreachable and the limiter
	// failed open.
	TotalHits int64
}

// RetryAfter returns how long to wait before the next request could be
// admitted. Zero when the request was allowed.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed {
		return 0
	}
	return time.Until(r.ResetAt)
}
