package ratelimit_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatewaylab/admitkit/pkg/ratelimit"
)

func TestDefaultKey(t *testing.T) {
	t.Parallel()

	t.Run("proxy-reported address wins", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest("GET", "/api/items", nil)
		r.Header.Set("X-Forwarded-For", "203.0.113.7")
		r.RemoteAddr = "10.0.0.1:4321"

		assert.Equal(t, "rate_limit:203.0.113.7:/api/items", ratelimit.DefaultKey(r))
	})

	t.Run("falls back to remote socket address", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest("GET", "/api/items", nil)
		r.RemoteAddr = "192.0.2.9:4321"

		assert.Equal(t, "rate_limit:192.0.2.9:/api/items", ratelimit.DefaultKey(r))
	})

	t.Run("unknown address as last resort", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest("GET", "/api/items", nil)
		r.RemoteAddr = ""

		assert.Equal(t, "rate_limit:unknown:/api/items", ratelimit.DefaultKey(r))
	})

	t.Run("prefers matched route template over raw path", func(t *testing.T) {
		t.Parallel()

		var key string
		router := chi.NewRouter()
		router.Get("/users/{id}", func(w http.ResponseWriter, r *http.Request) {
			key = ratelimit.DefaultKey(r)
		})

		r := httptest.NewRequest("GET", "/users/42", nil)
		r.RemoteAddr = "192.0.2.9:4321"
		router.ServeHTTP(httptest.NewRecorder(), r)

		require.NotEmpty(t, key)
		assert.Equal(t, "rate_limit:192.0.2.9:/users/{id}", key)
	})

	t.Run("independent of query parameters", func(t *testing.T) {
		t.Parallel()
		r1 := httptest.NewRequest("GET", "/search?q=a", nil)
		r1.RemoteAddr = "192.0.2.9:4321"
		r2 := httptest.NewRequest("GET", "/search?q=b", nil)
		r2.RemoteAddr = "192.0.2.9:4321"

		assert.Equal(t, ratelimit.DefaultKey(r1), ratelimit.DefaultKey(r2))
	})
}

func TestMemoryStore_Hit(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := newFakeClock()
	store := ratelimit.NewMemoryStore()

	t.Run("counts include the new entry", func(t *testing.T) {
		count, err := store.Hit(ctx, "k1", clock.Now(), time.Minute)
		require.NoError(t, err)
		assert.EqualValues(t, 1, count)

		count, err = store.Hit(ctx, "k1", clock.Now(), time.Minute)
		require.NoError(t, err)
		assert.EqualValues(t, 2, count)
	})

	t.Run("entries past the window are pruned lazily", func(t *testing.T) {
		_, err := store.Hit(ctx, "k2", clock.Now(), time.Minute)
		require.NoError(t, err)

		clock.Advance(2 * time.Minute)

		count, err := store.Hit(ctx, "k2", clock.Now(), time.Minute)
		require.NoError(t, err)
		assert.EqualValues(t, 1, count)
	})

	t.Run("remove targets one exact member", func(t *testing.T) {
		_, err := store.Hit(ctx, "k3", clock.Now(), time.Minute)
		require.NoError(t, err)
		clock.Advance(time.Millisecond)
		_, err = store.Hit(ctx, "k3", clock.Now(), time.Minute)
		require.NoError(t, err)

		member, found, err := store.MostRecent(ctx, "k3")
		require.NoError(t, err)
		require.True(t, found)
		require.NoError(t, store.Remove(ctx, "k3", member))

		clock.Advance(time.Millisecond)
		count, err := store.Hit(ctx, "k3", clock.Now(), time.Minute)
		require.NoError(t, err)
		assert.EqualValues(t, 2, count)
	})

	t.Run("most recent on empty key", func(t *testing.T) {
		_, found, err := store.MostRecent(ctx, "never")
		require.NoError(t, err)
		assert.False(t, found)
	})
}
