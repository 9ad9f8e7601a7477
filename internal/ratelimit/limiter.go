// Package ratelimit guards the /v1/evaluate and /v1/stream collaborator
// endpoints against abuse (spec.md §5: the core itself has no timeouts or
// resource bounds; the caller owns wall-clock and rate budgets). Adapted
// from internal/web/ratelimit/redis.go, trimmed to the sliding-window
// limiter actually wired into internal/server — the teacher's in-memory
// token-bucket variant has no collaborator here since every Spock
// deployment this repo targets already runs Redis for the audit/session
// tier, so there is no "no Redis available" fallback path to support.
package ratelimit

import (
	"context"
	"time"
)

// Limiter reports whether a request identified by key should be allowed.
type Limiter interface {
	Allow(ctx context.Context, key string) (*Info, error)
}

// Info describes the current rate-limit window state for a key.
type Info struct {
	Limit     int
	Remaining int
	ResetAt   time.Time
	Allowed   bool
}
