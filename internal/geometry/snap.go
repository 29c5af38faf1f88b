package geometry

import (
	"math"

	"medtrack/internal/domain/entity"
)

// minLngScale keeps the planar frame invertible at the poles
const minLngScale = 1e-9

// SnapToPolyline projects point onto the nearest segment of polyline.
//
// Projection happens in a local planar frame where longitude is scaled by
// cos(latitude of point); this is accurate for the short distances a rider
// deviates from a route, not globally. Polylines with fewer than two points
// return point unchanged.
func SnapToPolyline(point entity.Coordinate, polyline []entity.Coordinate) entity.Coordinate {
	if len(polyline) < 2 {
		return point
	}

	kx := math.Max(math.Cos(toRadians(point.Lat)), minLngScale)
	px, py := point.Lng*kx, point.Lat

	best := point
	bestDist := math.Inf(1)

	for i := 1; i < len(polyline); i++ {
		a, b := polyline[i-1], polyline[i]
		ax, ay := a.Lng*kx, a.Lat
		dx, dy := b.Lng*kx-ax, b.Lat-ay

		t := 0.0
		if lengthSq := dx*dx + dy*dy; lengthSq > 0 {
			t = ((px-ax)*dx + (py-ay)*dy) / lengthSq
			t = math.Min(1, math.Max(0, t))
		}

		qx, qy := ax+t*dx, ay+t*dy
		dist := (px-qx)*(px-qx) + (py-qy)*(py-qy)
		if dist < bestDist {
			bestDist = dist
			best = entity.Coordinate{Lat: qy, Lng: qx / kx}
		}
	}

	return best
}
