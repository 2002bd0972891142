package ratelimit

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore implements CounterStore on a Redis sorted set per key: entry
// scores are unix-millisecond timestamps and members carry a random suffix
// so two hits in the same millisecond never collide.
type RedisStore struct {
	client redis.UniversalClient
}

// NewRedisStore creates a Redis-backed counter store. The client is a
// long-lived shared handle, safe for concurrent use.
func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client}
}

// Hit submits prune+add+count+expire as one MULTI/EXEC pipeline, so the
// count can never be corrupted by a concurrent hit against the same key.
func (s *RedisStore) Hit(ctx context.Context, key string, now time.Time, window time.Duration) (int64, error) {
	nowMs := now.UnixMilli()
	windowStart := nowMs - window.Milliseconds()
	member := fmt.Sprintf("%d-%s", nowMs, randomSuffix())

	pipe := s.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart, 10))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(nowMs), Member: member})
	count := pipe.ZCard(ctx, key)
	// Idle keys reclaim themselves after one untouched window. Rounded up
	// to whole seconds for EXPIRE.
	pipe.Expire(ctx, key, roundUpToSecond(window))

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}

	return count.Val(), nil
}

// MostRecent returns the member with the highest score under key.
func (s *RedisStore) MostRecent(ctx context.Context, key string) (string, bool, error) {
	members, err := s.client.ZRevRange(ctx, key, 0, 0).Result()
	if err != nil {
		return "", false, err
	}
	if len(members) == 0 {
		return "", false, nil
	}
	return members[0], true, nil
}

// Remove deletes exactly one entry from the key's set.
func (s *RedisStore) Remove(ctx context.Context, key, member string) error {
	return s.client.ZRem(ctx, key, member).Err()
}

func roundUpToSecond(d time.Duration) time.Duration {
	if rounded := d.Truncate(time.Second); rounded != d {
		return rounded + time.Second
	}
	return d
}

func randomSuffix() string {
	var b [4]byte
	// rand.Read on the system CSPRNG does not fail in practice; a zero
	// suffix still keeps members unique across milliseconds.
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
