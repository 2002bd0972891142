package pg

import "context"

// logger is the subset of slog the migration runner needs, kept as an
// interface so goose output can be routed through any structured logger.
type logger interface {
	InfoContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}
