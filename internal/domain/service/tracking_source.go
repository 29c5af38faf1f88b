package service

import (
	"context"

	"medtrack/internal/domain/entity"
)

// TrackingSource reads orders and tracking snapshots from the commerce backend
type TrackingSource interface {
	GetOrder(ctx context.Context, orderID string, tokens TokenSource) (*entity.Order, error)
	GetTracking(ctx context.Context, orderID string, tokens TokenSource) (*entity.TrackingSnapshot, error)
}
