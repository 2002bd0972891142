// Package pg manages the PostgreSQL connection pool backing the session
// store: pooled connections with retry on startup, schema migrations and a
// health probe. The pool is created once per process and shared; pgx pools
// are safe for concurrent use.
package pg
