// Package session manages the lifecycle of authenticated sessions backed by
// a relational store: issuance, validation with sliding expiration, coarse
// activity tracking, per-owner concurrent-session caps and invalidation.
//
// A Manager orchestrates the lifecycle. It relies on a Store to persist
// session rows (a pgx-backed implementation and a concurrent in-memory one
// ship out of the box) and produces *http.Cookie values carrying the raw
// token; only the SHA-256 digest of the token is ever persisted.
//
// # Lifecycle
//
// Create issues a token, enforces the per-owner cap by evicting the oldest
// rows inside a transaction, inserts the row and returns the cookie. Validate
// resolves a session id (token digest) to a sanitized session and owner
// projection, deleting expired rows on discovery, sliding the expiry forward
// when it is within the refresh threshold and touching the activity timestamp
// at most once per threshold interval. Invalidate is an idempotent single
// logout; InvalidateAll revokes every session an owner holds.
//
// Validation fails closed: any storage error, missing row or missing owner
// yields the same unauthenticated result, so an outage can never authenticate
// a request and callers cannot distinguish "expired" from "never existed".
//
// # Usage
//
//	store := session.NewPGStore(pool)
//	manager := session.New(store,
//	    session.WithConfig(cfg),
//	    session.WithLogger(log),
//	)
//
//	// login
//	sess, cookie, err := manager.Create(ctx, ownerID, session.Metadata{
//	    UserAgent: r.UserAgent(),
//	    IPAddress: clientip.GetIP(r),
//	})
//
//	// per-request identity resolution
//	r.Use(manager.Middleware)
package session
