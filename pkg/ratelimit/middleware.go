package ratelimit

import (
	"fmt"
	"net/http"
	"strconv"
)

// Middleware enforces the policy on every request, emitting the standard
// X-RateLimit-* headers and a Retry-After on rejection.
//
// Panics on an invalid policy so misconfiguration surfaces at wiring time,
// not on the first throttled request. At request time the middleware never
// blocks traffic on limiter errors.
func Middleware(limiter *Limiter, policy Policy) func(http.Handler) http.Handler {
	if err := policy.Validate(); err != nil {
		panic(fmt.Sprintf("ratelimit.Middleware: %v", err))
	}

	keyFunc := policy.KeyFunc
	if keyFunc == nil {
		keyFunc = DefaultKey
	}

	compensate := policy.SkipSuccessfulRequests || policy.SkipFailedRequests

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := keyFunc(r)

			result, err := limiter.Check(r.Context(), key, policy)
			if err != nil {
				// Config errors were ruled out at construction; anything
				// else must not block the request.
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))
			w.Header().Set("X-RateLimit-Window", policy.Window)

			if !result.Allowed {
				retryAfter := int(result.RetryAfter().Seconds())
				if retryAfter < 1 {
					retryAfter = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
				return
			}

			if !compensate {
				next.ServeHTTP(w, r)
				return
			}

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			failed := rec.status >= http.StatusBadRequest
			if (policy.SkipSuccessfulRequests && !failed) || (policy.SkipFailedRequests && failed) {
				limiter.Decrement(r.Context(), key)
			}
		})
	}
}

// statusRecorder captures the response status so skip policies can decide
// whether the hit should have counted.
type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (r *statusRecorder) WriteHeader(status int) {
	if !r.wroteHeader {
		r.status = status
		r.wroteHeader = true
	}
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	r.wroteHeader = true
	return r.ResponseWriter.Write(b)
}
