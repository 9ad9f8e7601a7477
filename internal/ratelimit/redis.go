package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// slidingWindowScript atomically evicts entries older than the window,
// counts what remains, and admits the request if under limit — ported
// verbatim from the teacher's redis.go, which already expressed this
// concern in a domain-agnostic way.
var slidingWindowScript = redis.NewScript(`
	local key = KEYS[1]
	local now = tonumber(ARGV[1])
	local window_start = tonumber(ARGV[2])
	local limit = tonumber(ARGV[3])
	local window = tonumber(ARGV[4])

	redis.call('ZREMRANGEBYSCORE', key, 0, window_start)
	local current = redis.call('ZCARD', key)

	if current < limit then
		redis.call('ZADD', key, now, now)
		redis.call('EXPIRE', key, window)
		return {1, current + 1}
	else
		return {0, current}
	end
`)

// RedisLimiter rate-limits evaluate/stream requests per API-key ID using
// a Redis-backed sliding window.
type RedisLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
	prefix string
}

// Config configures a RedisLimiter.
type Config struct {
	Client *redis.Client
	Limit  int
	Window time.Duration
	Prefix string
}

// DefaultConfig allows 60 evaluate requests per minute per key, a budget
// generous enough for an interactive REPL session but tight enough to
// bound a misbehaving script.
func DefaultConfig(client *redis.Client) Config {
	return Config{Client: client, Limit: 60, Window: time.Minute, Prefix: "spock:ratelimit:"}
}

// NewRedisLimiter constructs a RedisLimiter from Config.
func NewRedisLimiter(cfg Config) (*RedisLimiter, error) {
	if cfg.Client == nil {
		return nil, errors.New("redis client is required")
	}
	if cfg.Limit <= 0 {
		return nil, errors.New("limit must be greater than 0")
	}
	if cfg.Window <= 0 {
		return nil, errors.New("window must be greater than 0")
	}
	return &RedisLimiter{client: cfg.Client, limit: cfg.Limit, window: cfg.Window, prefix: cfg.Prefix}, nil
}

// Allow checks and records one request for key under the sliding window.
func (r *RedisLimiter) Allow(ctx context.Context, key string) (*Info, error) {
	redisKey := r.prefix + key
	now := time.Now()
	windowStart := now.Add(-r.window)

	result, err := slidingWindowScript.Run(ctx, r.client, []string{redisKey},
		now.UnixNano(), windowStart.UnixNano(), r.limit, int(r.window.Seconds()),
	).Result()
	if err != nil {
		return nil, fmt.Errorf("rate limit check failed: %w", err)
	}

	resultSlice, ok := result.([]interface{})
	if !ok || len(resultSlice) != 2 {
		return nil, errors.New("unexpected rate limit script result")
	}
	allowed, ok := resultSlice[0].(int64)
	if !ok {
		return nil, errors.New("invalid allowed value from rate limit script")
	}
	count, ok := resultSlice[1].(int64)
	if !ok {
		return nil, errors.New("invalid count value from rate limit script")
	}

	remaining := r.limit - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return &Info{
		Limit:     r.limit,
		Remaining: remaining,
		ResetAt:   now.Add(r.window),
		Allowed:   allowed == 1,
	}, nil
}

// Reset clears all rate-limit state for key; the tests use it.
func (r *RedisLimiter) Reset(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.prefix+key).Err()
}
