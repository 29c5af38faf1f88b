package geometry

import "medtrack/internal/domain/entity"

// DefaultSimplifyMinMeters is the default minimum spacing between kept points
const DefaultSimplifyMinMeters = 6.0

// Simplify drops intermediate points that lie within minMeters of the last
// kept point. The first and last points are always kept and order is
// preserved. Lines with fewer than three points are returned unchanged.
func Simplify(line []entity.Coordinate, minMeters float64) []entity.Coordinate {
	if len(line) < 3 {
		return line
	}

	out := make([]entity.Coordinate, 0, len(line))
	out = append(out, line[0])
	last := line[0]

	for _, p := range line[1 : len(line)-1] {
		if DistanceMeters(last, p) > minMeters {
			out = append(out, p)
			last = p
		}
	}

	return append(out, line[len(line)-1])
}
