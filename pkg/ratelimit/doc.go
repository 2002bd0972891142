// Package ratelimit enforces sliding-window request quotas per key across
// many server processes, backed by a shared counter store.
//
// Each check is a single atomic round trip to the store: prune entries that
// fell out of the window, record the new hit, count what remains and refresh
// the key's expiry. Two concurrent checks against the same key therefore
// never corrupt the count, though the admit decision itself stays lock-free:
// requests arriving in the same instant may jointly exceed the quota by the
// number of in-flight checks, the standard cost of this design.
//
// The limiter fails open. When the counter store is unreachable a check
// reports the request as allowed with a full quota remaining and the outage
// is logged: a throttling outage must never become an outage of the
// protected service. Contrast with session validation, which fails closed.
//
// Decrement compensates for hits that a policy says should not have counted
// (skip-successful / skip-failed response policies), removing the most
// recent entry best-effort.
//
//	limiter, err := ratelimit.New(ratelimit.NewRedisStore(client),
//	    ratelimit.WithLogger(log),
//	)
//
//	policy := ratelimit.Policy{Requests: 100, Window: "15m"}
//	r.Use(ratelimit.Middleware(limiter, policy))
package ratelimit
