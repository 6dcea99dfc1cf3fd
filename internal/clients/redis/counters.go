package redis

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/skillconnect/server/internal/logger"
)

// CounterCache holds hot follower/like counts so list endpoints do not hit
// Postgres with a COUNT per row. Callers treat a miss as "go count in SQL";
// mutations invalidate rather than update.
type CounterCache interface {
	Get(ctx context.Context, key string) (int64, bool)
	Set(ctx context.Context, key string, val int64)
	Invalidate(ctx context.Context, keys ...string)
	Close() error
}

type counterCache struct {
	log *logger.Logger
	rdb *goredis.Client
	ttl time.Duration
}

func NewCounterCache(log *logger.Logger) (CounterCache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &counterCache{
		log: log.With("service", "RedisCounterCache"),
		rdb: rdb,
		ttl: 5 * time.Minute,
	}, nil
}

func FollowerCountKey(userID string) string  { return "follow:followers:" + userID }
func FollowingCountKey(userID string) string { return "follow:following:" + userID }
func LikeCountKey(postID string) string      { return "like:post:" + postID }

func (c *counterCache) Get(ctx context.Context, key string) (int64, bool) {
	val, err := c.rdb.Get(ctx, key).Int64()
	if err != nil {
		if err != goredis.Nil {
			c.log.Debug("counter cache get failed", "key", key, "error", err)
		}
		return 0, false
	}
	return val, true
}

func (c *counterCache) Set(ctx context.Context, key string, val int64) {
	if err := c.rdb.Set(ctx, key, val, c.ttl).Err(); err != nil {
		c.log.Debug("counter cache set failed", "key", key, "error", err)
	}
}

func (c *counterCache) Invalidate(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.log.Debug("counter cache invalidate failed", "keys", keys, "error", err)
	}
}

func (c *counterCache) Close() error {
	return c.rdb.Close()
}
