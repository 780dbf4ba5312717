package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// incrScript increments the counter and starts the window on first hit.
// Returns {count, ttl_ms}.
var incrScript = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if count == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("PTTL", KEYS[1])
if ttl < 0 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
  ttl = tonumber(ARGV[1])
end
return {count, ttl}
`)

// RedisLimiter shares counters across instances through Redis
type RedisLimiter struct {
	client *redis.Client
	cfg    Config
	prefix string
	now    Clock
}

// NewRedisLimiter creates a Redis-backed limiter
func NewRedisLimiter(client *redis.Client, cfg Config, prefix string, clock Clock) *RedisLimiter {
	if prefix == "" {
		prefix = "rate:ip"
	}
	if clock == nil {
		clock = time.Now
	}
	return &RedisLimiter{client: client, cfg: cfg.normalize(), prefix: prefix, now: clock}
}

// Allow counts one request for key atomically on the Redis side
func (l *RedisLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	redisKey := fmt.Sprintf("%s:%s", l.prefix, key)

	res, err := incrScript.Run(ctx, l.client, []string{redisKey}, l.cfg.Window.Milliseconds()).Result()
	if err != nil {
		return Unmetered(l.cfg, l.now()), fmt.Errorf("failed to increment rate counter: %w", err)
	}

	vals, ok := res.([]interface{})
	if !ok || len(vals) != 2 {
		return Unmetered(l.cfg, l.now()), fmt.Errorf("unexpected rate counter reply: %v", res)
	}
	count, _ := vals[0].(int64)
	ttlMs, _ := vals[1].(int64)

	now := l.now()
	resetAt := now.Add(time.Duration(ttlMs) * time.Millisecond)
	return decide(l.cfg, int(count), resetAt, now), nil
}
