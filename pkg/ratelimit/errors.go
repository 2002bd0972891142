package ratelimit

import "errors"

var (
	// ErrStoreRequired indicates the limiter was constructed without a store
	ErrStoreRequired = errors.New("ratelimit.store_required")

	// ErrKeyRequired indicates a check was issued with an empty key
	ErrKeyRequired = errors.New("ratelimit.key_required")

	// ErrInvalidWindow indicates a window string that is not <int>s|m|h|d.
	// This is a configuration error and is never swallowed by fail-open.
	ErrInvalidWindow = errors.New("ratelimit.invalid_window")

	// ErrInvalidRequests indicates a non-positive request quota
	ErrInvalidRequests = errors.New("ratelimit.invalid_requests")
)
