package cache

import (
	"context"
	"log/slog"
	"time"

	"medtrack/config"
	"medtrack/internal/domain/service"
	"medtrack/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// FactoryParams holds dependencies for the route cache factory
type FactoryParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

// NewRouteCacheFactory returns a factory for the backend chosen by
// routing.cacheBackend. The Redis client is opened once and shared by all slots.
func NewRouteCacheFactory(params FactoryParams) (service.RouteCacheFactory, error) {
	routingCfg := params.Config.Routing

	switch routingCfg.CacheBackend {
	case config.CacheBackendMemory, "":
		return func(string) service.RouteCache {
			return NewMemoryRouteCache()
		}, nil
	case config.CacheBackendRedis:
	default:
		return nil, errors.Errorf("unknown route cache backend: %s", routingCfg.CacheBackend)
	}

	redisCfg := params.Config.Redis
	if redisCfg == nil || redisCfg.Addr == "" {
		return nil, errors.New("redis.addr is required for the redis route cache")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     redisCfg.Addr,
		Password: redisCfg.Password,
		DB:       redisCfg.DB,
	})

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to connect to redis")
			}
			params.Logger.Info("Route cache connected to redis", slog.String("addr", redisCfg.Addr))

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	return RedisSlotFactory(client, redisCfg.KeyPrefix, routingCfg.CacheTTL, params.Logger), nil
}

// RedisSlotFactory creates Redis slots named prefix + "route:" + scope
func RedisSlotFactory(client redis.Cmdable, prefix string, ttl time.Duration, logger *slog.Logger) service.RouteCacheFactory {
	return func(scope string) service.RouteCache {
		return NewRedisRouteCache(client, prefix+"route:"+scope, ttl, logger)
	}
}
