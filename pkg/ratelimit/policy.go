package ratelimit

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Policy configures the quota for one class of keyed actions.
type Policy struct {
	// Requests is the number of hits allowed per window
	Requests int

	// Window is the sliding window size as "<int>s|m|h|d" (e.g. "30s", "15m")
	Window string

	// KeyFunc overrides the default client-address + route-path derivation
	KeyFunc KeyFunc

	// SkipSuccessfulRequests compensates the counter when the response
	// status is below 400.
	SkipSuccessfulRequests bool

	// SkipFailedRequests compensates the counter when the response status
	// is 400 or above.
	SkipFailedRequests bool
}

var windowPattern = regexp.MustCompile(`^(\d+)([smhd])$`)

// ParseWindow converts a window string into a duration. Any string not
// matching <int>s|m|h|d is rejected; misconfigured windows must surface at
// startup rather than be silently misread.
func ParseWindow(window string) (time.Duration, error) {
	m := windowPattern.FindStringSubmatch(window)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWindow, window)
	}

	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWindow, window)
	}

	switch m[2] {
	case "s":
		return time.Duration(n) * time.Second, nil
	case "m":
		return time.Duration(n) * time.Minute, nil
	case "h":
		return time.Duration(n) * time.Hour, nil
	default:
		return time.Duration(n) * 24 * time.Hour, nil
	}
}

// Validate checks the policy for configuration errors.
func (p Policy) Validate() error {
	if p.Requests <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRequests, p.Requests)
	}
	_, err := ParseWindow(p.Window)
	return err
}
