package entity

import (
	"math"
	"time"
)

// Route providers
const (
	ProviderOSRM   = "osrm"
	ProviderGoogle = "google"
)

// Route is a fetched driving route. It is treated as immutable once built;
// a newer fetch replaces it wholesale.
type Route struct {
	Provider        string       `json:"provider"`
	DistanceMeters  float64      `json:"distance_meters"`
	DurationSeconds float64      `json:"duration_seconds"`
	Polyline        []Coordinate `json:"polyline"`
}

// IsRenderable reports whether the route has enough points to draw a line
func (r *Route) IsRenderable() bool {
	return r != nil && len(r.Polyline) >= 2
}

// ETAMinutes returns the travel time rounded to whole minutes, at least one
func (r *Route) ETAMinutes() (int, bool) {
	if r == nil || !positiveFinite(r.DurationSeconds) {
		return 0, false
	}

	return max(1, int(math.Round(r.DurationSeconds/60))), true
}

// DistanceKm returns the route length in kilometers
func (r *Route) DistanceKm() (float64, bool) {
	if r == nil || !positiveFinite(r.DistanceMeters) {
		return 0, false
	}

	return r.DistanceMeters / 1000, true
}

// WithPolyline returns a copy of the route carrying a different polyline
func (r *Route) WithPolyline(polyline []Coordinate) *Route {
	out := *r
	out.Polyline = polyline

	return &out
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// RouteCacheEntry is the single cached route slot
type RouteCacheEntry struct {
	Key       string    `json:"key"`
	FetchedAt time.Time `json:"fetched_at"`
	Route     *Route    `json:"route"`
}
