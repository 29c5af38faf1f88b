package service

import (
	"context"

	"medtrack/internal/domain/entity"
)

// RouteProvider fetches a driving route from an external routing service
type RouteProvider interface {
	// Name identifies the provider in routes and logs
	Name() string

	// Route issues one request for a driving route between two coordinates.
	// Implementations honour ctx cancellation and never retry.
	Route(ctx context.Context, from, to entity.Coordinate) (*entity.Route, error)
}

// RouteFetcher returns routes through a provider and a cache slot it owns
type RouteFetcher interface {
	Fetch(ctx context.Context, from, to entity.Coordinate) (*entity.Route, error)
}

// RouteFetcherFactory creates fetchers whose cache slots are identified by scope
type RouteFetcherFactory interface {
	New(scope string) RouteFetcher
}
