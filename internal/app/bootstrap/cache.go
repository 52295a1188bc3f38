package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/code1iners/ce1pers/internal/cfg"
	"github.com/code1iners/ce1pers/pkg/cache"
	"github.com/code1iners/ce1pers/pkg/logger"

	"github.com/avast/retry-go/v4"
)

const (
	cachePingAttempts = 5
	cachePingDelay    = 200 * time.Millisecond
)

// InitCache connects to Redis and waits until it answers PING.
// It returns nil when Redis is not configured.
func InitCache(ctx context.Context, redisCfg *cfg.RedisConfig, log logger.Logger) (cache.Cache, error) {
	if redisCfg == nil {
		return nil, nil
	}

	c := cache.NewRedisCache(redisCfg.Addr(), redisCfg.Password)

	err := retry.Do(
		func() error {
			return c.Ping(ctx)
		},
		retry.Context(ctx),
		retry.Attempts(cachePingAttempts),
		retry.Delay(cachePingDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.MaxDelay(2*time.Second),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Warn(ctx, "redis not ready, retrying",
				logger.Field{Key: "attempt", Value: n + 1},
				logger.Field{Key: "error", Value: err.Error()},
			)
		}),
	)
	if err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("redis ping %s: %w", redisCfg.Addr(), err)
	}

	return c, nil
}
