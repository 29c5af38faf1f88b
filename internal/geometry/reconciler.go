package geometry

import (
	"medtrack/config"
	"medtrack/internal/domain/entity"
)

// DefaultSnapMaxMeters is the default radius within which a snap is trusted
const DefaultSnapMaxMeters = 40.0

// Reconciliation is the outcome of matching a raw fix against a route
type Reconciliation struct {
	Raw     entity.Coordinate `json:"raw"`
	Display entity.Coordinate `json:"display"`
	Snapped bool              `json:"snapped"`

	// OffsetMeters is the distance from the raw fix to the nearest route point
	OffsetMeters float64 `json:"offset_meters"`
}

// Reconciler applies the snap and simplification thresholds
type Reconciler struct {
	simplifyMinMeters float64
	snapMaxMeters     float64
}

// NewReconciler creates a reconciler, falling back to default thresholds
// for zero or negative values
func NewReconciler(cfg *config.GeometryConfig) *Reconciler {
	r := &Reconciler{
		simplifyMinMeters: DefaultSimplifyMinMeters,
		snapMaxMeters:     DefaultSnapMaxMeters,
	}

	if cfg != nil {
		if cfg.SimplifyMinMeters > 0 {
			r.simplifyMinMeters = cfg.SimplifyMinMeters
		}
		if cfg.SnapMaxMeters > 0 {
			r.snapMaxMeters = cfg.SnapMaxMeters
		}
	}

	return r
}

// Reconcile snaps raw onto polyline, keeping the raw fix when the snapped
// point lies farther than the snap radius. A rider that far off the route
// has most likely left it.
func (r *Reconciler) Reconcile(raw entity.Coordinate, polyline []entity.Coordinate) Reconciliation {
	out := Reconciliation{Raw: raw, Display: raw}
	if len(polyline) < 2 {
		return out
	}

	snapped := SnapToPolyline(raw, polyline)
	out.OffsetMeters = DistanceMeters(raw, snapped)
	if out.OffsetMeters <= r.snapMaxMeters {
		out.Display = snapped
		out.Snapped = true
	}

	return out
}

// SimplifyRoute returns a copy of route with its polyline thinned for rendering
func (r *Reconciler) SimplifyRoute(route *entity.Route) *entity.Route {
	if route == nil {
		return nil
	}

	return route.WithPolyline(Simplify(route.Polyline, r.simplifyMinMeters))
}
