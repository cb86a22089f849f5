package inflight

import (
	"context"
	"fmt"
	"sync"
	"time"

	"competition-hub/utils"

	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the key only if it still carries our token
const releaseScript = `if redis.call("GET", KEYS[1]) == ARGV[1] then return redis.call("DEL", KEYS[1]) else return 0 end`

//go:generate mockgen -destination=mock_redis.go -package=inflight competition-hub/internal/inflight RedisCommander

// RedisCommander is the subset of the go-redis client used by RedisGuard
type RedisCommander interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

// RedisGuard shares claims between service replicas. Claims expire after ttl so a
// crashed holder cannot block an action forever.
type RedisGuard struct {
	rdb RedisCommander
	ttl time.Duration
}

// NewRedisGuard creates a RedisGuard over rdb
func NewRedisGuard(rdb RedisCommander, ttl time.Duration) *RedisGuard {
	if ttl <= 0 {
		ttl = 2 * time.Minute
	}
	return &RedisGuard{rdb: rdb, ttl: ttl}
}

// NewRedisClient connects to redis and verifies the connection
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return rdb, nil
}

// Acquire sets key with NX and a fresh token
func (g *RedisGuard) Acquire(ctx context.Context, key string) (func(), bool, error) {
	token := utils.GenerateID()

	ok, err := g.rdb.SetNX(ctx, key, token, g.ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("inflight: acquire %s: %w", key, err)
	}
	if !ok {
		return nil, false, nil
	}

	var once sync.Once
	release := func() {
		once.Do(func() {
			// the caller's context may already be done when release runs
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := g.rdb.Eval(ctx, releaseScript, []string{key}, token).Err(); err != nil {
				utils.Warn("inflight: release failed", map[string]any{"key": key, "error": err.Error()})
				return
			}
			utils.Debug("inflight: released", map[string]any{"key": key})
		})
	}
	return release, true, nil
}

// InFlight reports whether key exists
func (g *RedisGuard) InFlight(ctx context.Context, key string) (bool, error) {
	n, err := g.rdb.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("inflight: exists %s: %w", key, err)
	}
	return n > 0, nil
}
