package impl

import (
	"context"

	"medtrack/internal/domain/entity"
	domainerrors "medtrack/internal/domain/errors"
	"medtrack/internal/domain/service"
	"medtrack/internal/geometry"
	"medtrack/internal/usecase"

	"go.uber.org/fx"
)

// oneShotScope owns the cache slot shared by one-shot route lookups
const oneShotScope = "oneshot"

// RouteServiceParams holds dependencies for the route service
type RouteServiceParams struct {
	fx.In

	Fetchers   service.RouteFetcherFactory
	Reconciler *geometry.Reconciler
}

type routeService struct {
	fetcher    service.RouteFetcher
	reconciler *geometry.Reconciler
}

// NewRouteService creates a new route service instance
func NewRouteService(params RouteServiceParams) usecase.RouteUsecase {
	return &routeService{
		fetcher:    params.Fetchers.New(oneShotScope),
		reconciler: params.Reconciler,
	}
}

// FetchRoute fetches a route and returns it with a simplified polyline
func (s *routeService) FetchRoute(ctx context.Context, from, to entity.Coordinate) (*usecase.RouteView, error) {
	if !from.IsFinite() || !to.IsFinite() {
		return nil, domainerrors.ErrInvalidCoordinate
	}

	route, err := s.fetcher.Fetch(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return newRouteView(route, s.reconciler.SimplifyRoute(route)), nil
}
