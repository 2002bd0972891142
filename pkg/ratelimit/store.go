package ratelimit

import (
	"context"
	"time"
)

// CounterStore is the shared timestamped-entry store the limiter counts
// against. Implementations must be safe for concurrent use.
type CounterStore interface {
	// Hit atomically prunes entries with a timestamp at or before
	// now-window, records a new uniquely-tagged entry at now, refreshes the
	// key's expiry to the window length and returns the number of entries
	// remaining under the key (including the one just added). The whole
	// sequence is a single round trip so concurrent hits never corrupt
	// the count.
	Hit(ctx context.Context, key string, now time.Time, window time.Duration) (int64, error)

	// MostRecent returns the entry with the highest timestamp under the
	// key, or found=false when the key holds none.
	MostRecent(ctx context.Context, key string) (member string, found bool, err error)

	// Remove deletes exactly the given entry from the key
	Remove(ctx context.Context, key, member string) error
}
