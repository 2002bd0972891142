// Package redis manages the shared Redis client backing the rate limiter's
// counter store: URL-based configuration with a local default, retrying
// connect and a health probe. The client is created once per process and
// shared; go-redis clients are safe for concurrent use.
package redis
