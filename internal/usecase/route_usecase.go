package usecase

import (
	"context"

	"medtrack/internal/domain/entity"
)

// RouteUsecase serves one-shot route lookups outside a tracking session
type RouteUsecase interface {
	FetchRoute(ctx context.Context, from, to entity.Coordinate) (*RouteView, error)
}
