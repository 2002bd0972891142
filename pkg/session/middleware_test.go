package session_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatewaylab/admitkit/pkg/session"
)

func TestManager_RequireAuth(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	manager, _, ownerID := setupManager(t, clock)

	handler := manager.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		owner, ok := session.OwnerFromContext(r.Context())
		require.True(t, ok)
		w.Header().Set("X-Owner", owner.Email)
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("no cookie yields generic 401", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("GET", "/me", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token yields generic 401", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest("GET", "/me", nil)
		r.AddCookie(&http.Cookie{Name: "test_session", Value: "not-a-real-token"})
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid cookie resolves identity", func(t *testing.T) {
		t.Parallel()
		_, cookie, err := manager.Create(context.Background(), ownerID, session.Metadata{})
		require.NoError(t, err)

		r := httptest.NewRequest("GET", "/me", nil)
		r.AddCookie(cookie)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "u1@example.com", w.Header().Get("X-Owner"))
	})

	t.Run("expired cookie yields generic 401", func(t *testing.T) {
		clock2 := newFakeClock()
		manager2, _, owner2 := setupManager(t, clock2)

		_, cookie, err := manager2.Create(context.Background(), owner2, session.Metadata{})
		require.NoError(t, err)

		clock2.Advance(31 * 24 * time.Hour)

		h := manager2.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		r := httptest.NewRequest("GET", "/me", nil)
		r.AddCookie(cookie)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestManager_Middleware(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	manager, _, ownerID := setupManager(t, clock)

	var gotSession bool
	handler := manager.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, gotSession = session.FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("passes through unauthenticated", func(t *testing.T) {
		gotSession = false
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.False(t, gotSession)
	})

	t.Run("attaches identity when valid", func(t *testing.T) {
		gotSession = false
		_, cookie, err := manager.Create(context.Background(), ownerID, session.Metadata{})
		require.NoError(t, err)

		r := httptest.NewRequest("GET", "/", nil)
		r.AddCookie(cookie)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, gotSession)
	})
}
