package usecase

import (
	"context"
	"time"

	"medtrack/internal/domain/entity"
	"medtrack/internal/geometry"
	"medtrack/internal/presentation/mapview"
)

// TrackingErrorOffline is reported when the backend could not be reached
const TrackingErrorOffline = "OFFLINE"

// OpenSessionInput represents the input for mounting a tracking session
type OpenSessionInput struct {
	AccessToken  string `json:"-"`
	RefreshToken string `json:"refresh_token,omitempty"`

	// LiveMap set to false forces the static map fallback for this session
	LiveMap *bool `json:"live_map,omitempty"`
}

// RouteView is a route prepared for display
type RouteView struct {
	Provider        string              `json:"provider"`
	DistanceMeters  float64             `json:"distance_meters"`
	DurationSeconds float64             `json:"duration_seconds"`
	ETAMinutes      *int                `json:"eta_minutes,omitempty"`
	DistanceKm      *float64            `json:"distance_km,omitempty"`
	Polyline        []entity.Coordinate `json:"polyline"`

	// Stale marks a route kept from an earlier fetch after a newer one failed
	Stale bool   `json:"stale"`
	Error string `json:"error,omitempty"`
}

// RiderView is the rider as shown on the map
type RiderView struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`

	geometry.Reconciliation
}

// TrackingView is everything a client needs to draw the tracking screen
type TrackingView struct {
	SessionID string             `json:"session_id"`
	OrderID   string             `json:"order_id"`
	Status    entity.OrderStatus `json:"status"`
	Polling   bool               `json:"polling"`

	Tracking      *entity.TrackingSnapshot `json:"tracking,omitempty"`
	TrackingError string                   `json:"tracking_error,omitempty"`

	Rider       *RiderView         `json:"rider,omitempty"`
	Destination *entity.Coordinate `json:"destination,omitempty"`
	Route       *RouteView         `json:"route,omitempty"`

	// ETAMinutes and DistanceKm prefer the fetched route and fall back to
	// the backend's own estimate
	ETAMinutes *int     `json:"eta_minutes,omitempty"`
	DistanceKm *float64 `json:"distance_km,omitempty"`

	Map      mapview.Frame     `json:"map"`
	Fallback *mapview.Fallback `json:"fallback,omitempty"`

	RenderedAt time.Time `json:"rendered_at"`
}

// TrackingUsecase manages per-order tracking sessions
type TrackingUsecase interface {
	// OpenSession mounts a session for the order, replacing an existing one
	OpenSession(ctx context.Context, orderID string, input *OpenSessionInput) (*TrackingView, error)
	GetView(ctx context.Context, orderID string) (*TrackingView, error)

	// Refresh reloads tracking now and waits for any route fetch it triggers
	Refresh(ctx context.Context, orderID string) (*TrackingView, error)

	// Map gestures
	Pan(ctx context.Context, orderID string) (*TrackingView, error)
	Recenter(ctx context.Context, orderID string) (*TrackingView, error)

	// CloseSession unmounts the session and waits for its background work to stop
	CloseSession(ctx context.Context, orderID string) error

	// Shutdown closes every open session
	Shutdown(ctx context.Context) error
}
