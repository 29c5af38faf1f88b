package impl

import (
	"math"

	"medtrack/internal/domain/entity"
	"medtrack/internal/usecase"
)

// newRouteView describes route with the simplified polyline drawn on the map
func newRouteView(route, display *entity.Route) *usecase.RouteView {
	if route == nil {
		return nil
	}

	view := &usecase.RouteView{
		Provider:        route.Provider,
		DistanceMeters:  route.DistanceMeters,
		DurationSeconds: route.DurationSeconds,
		Polyline:        route.Polyline,
	}
	if display != nil {
		view.Polyline = display.Polyline
	}
	if eta, ok := route.ETAMinutes(); ok {
		view.ETAMinutes = &eta
	}
	if km, ok := route.DistanceKm(); ok {
		view.DistanceKm = &km
	}

	return view
}

// backendETA rounds the backend's own estimate, never below zero
func backendETA(minutes *float64) *int {
	if minutes == nil {
		return nil
	}
	eta := max(0, int(math.Round(*minutes)))

	return &eta
}
