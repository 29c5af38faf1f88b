package routing

import (
	"context"
	"log/slog"
	"time"

	"medtrack/config"
	"medtrack/internal/domain/entity"
	domainerrors "medtrack/internal/domain/errors"
	"medtrack/internal/domain/service"
	"medtrack/internal/errors"

	"go.uber.org/fx"
)

const (
	// DefaultTimeout bounds a single provider request
	DefaultTimeout = 6 * time.Second

	// DefaultCacheTTL is how long a cached route is served without a network call
	DefaultCacheTTL = 15 * time.Second

	// keyDecimals quantizes coordinates to roughly 11 m for cache keys
	keyDecimals = 4
)

// CacheKey builds the quantized "lat,lng->lat,lng" cache key for a route request
func CacheKey(from, to entity.Coordinate) string {
	return from.Quantize(keyDecimals).String() + "->" + to.Quantize(keyDecimals).String()
}

type fetchOptions struct {
	timeout  time.Duration
	cacheTTL time.Duration
}

// FetchOption overrides fetcher defaults for one call
type FetchOption func(*fetchOptions)

// WithTimeout overrides the request timeout
func WithTimeout(timeout time.Duration) FetchOption {
	return func(o *fetchOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithCacheTTL overrides how long a cached route stays fresh
func WithCacheTTL(ttl time.Duration) FetchOption {
	return func(o *fetchOptions) {
		if ttl > 0 {
			o.cacheTTL = ttl
		}
	}
}

// Fetcher retrieves driving routes through a provider, serving recent
// results from its single-slot cache
type Fetcher struct {
	provider service.RouteProvider
	cache    service.RouteCache
	timeout  time.Duration
	cacheTTL time.Duration
	now      func() time.Time
	logger   *slog.Logger
}

// NewFetcher creates a fetcher. A nil cache disables caching.
func NewFetcher(provider service.RouteProvider, cache service.RouteCache, cfg *config.RoutingConfig, logger *slog.Logger) *Fetcher {
	f := &Fetcher{
		provider: provider,
		cache:    cache,
		timeout:  DefaultTimeout,
		cacheTTL: DefaultCacheTTL,
		now:      time.Now,
		logger:   logger,
	}

	if cfg != nil {
		if cfg.Timeout > 0 {
			f.timeout = cfg.Timeout
		}
		if cfg.CacheTTL > 0 {
			f.cacheTTL = cfg.CacheTTL
		}
	}
	if f.logger == nil {
		f.logger = slog.Default()
	}

	return f
}

// Fetch returns the route between from and to using the fetcher defaults
func (f *Fetcher) Fetch(ctx context.Context, from, to entity.Coordinate) (*entity.Route, error) {
	return f.FetchWithOptions(ctx, from, to)
}

// FetchWithOptions returns the route between from and to.
//
// A cached route for the same quantized key younger than the cache TTL is
// returned without a network call. Otherwise exactly one provider request
// is made, bounded by the timeout and by ctx. Cancellation of ctx yields an
// aborted RoutingError; hitting the timeout yields a timeout RoutingError.
// Only successful fetches are cached.
func (f *Fetcher) FetchWithOptions(ctx context.Context, from, to entity.Coordinate, opts ...FetchOption) (*entity.Route, error) {
	options := fetchOptions{timeout: f.timeout, cacheTTL: f.cacheTTL}
	for _, opt := range opts {
		opt(&options)
	}

	if !from.IsFinite() || !to.IsFinite() {
		return nil, domainerrors.ErrInvalidCoordinate
	}

	key := CacheKey(from, to)
	at := f.now()

	if f.cache != nil {
		if entry, ok := f.cache.Get(ctx, key); ok && entry.Route != nil && at.Sub(entry.FetchedAt) < options.cacheTTL {
			f.logger.Debug("route cache hit", slog.String("key", key))

			return entry.Route, nil
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, domainerrors.NewRoutingAborted(err)
	}

	callCtx, cancel := context.WithTimeout(ctx, options.timeout)
	defer cancel()

	route, err := f.provider.Route(callCtx, from, to)
	if err != nil {
		return nil, f.classify(ctx, callCtx, err)
	}
	if route.Provider == "" {
		route.Provider = f.provider.Name()
	}

	if f.cache != nil {
		f.cache.Put(ctx, entity.RouteCacheEntry{Key: key, FetchedAt: at, Route: route})
	}

	f.logger.Debug("route fetched",
		slog.String("key", key),
		slog.String("provider", route.Provider),
		slog.Int("points", len(route.Polyline)),
		slog.Duration("elapsed", f.now().Sub(at)),
	)

	return route, nil
}

func (f *Fetcher) classify(parent, callCtx context.Context, err error) error {
	if parent.Err() != nil {
		return domainerrors.NewRoutingAborted(parent.Err())
	}
	if errors.Is(callCtx.Err(), context.DeadlineExceeded) {
		return domainerrors.NewRoutingTimeout(err)
	}

	var routingErr *domainerrors.RoutingError
	if errors.As(err, &routingErr) {
		return routingErr
	}

	return domainerrors.NewRoutingError(0, "network", err)
}

// FetcherFactoryParams holds dependencies for creating per-session fetchers
type FetcherFactoryParams struct {
	fx.In

	Config       *config.Config
	Provider     service.RouteProvider
	CacheFactory service.RouteCacheFactory
	Logger       *slog.Logger
}

// FetcherFactory creates fetchers that each own a separate cache slot
type FetcherFactory struct {
	provider     service.RouteProvider
	cacheFactory service.RouteCacheFactory
	cfg          *config.RoutingConfig
	logger       *slog.Logger
}

// NewFetcherFactory creates a new fetcher factory
func NewFetcherFactory(params FetcherFactoryParams) service.RouteFetcherFactory {
	return &FetcherFactory{
		provider:     params.Provider,
		cacheFactory: params.CacheFactory,
		cfg:          params.Config.Routing,
		logger:       params.Logger,
	}
}

// New returns a fetcher whose cache slot is identified by scope
func (ff *FetcherFactory) New(scope string) service.RouteFetcher {
	var cache service.RouteCache
	if ff.cacheFactory != nil {
		cache = ff.cacheFactory(scope)
	}

	return NewFetcher(ff.provider, cache, ff.cfg, ff.logger.With(slog.String("scope", scope)))
}
