package detect

import "sort"

// convexHull computes the convex hull of a point set using Andrew's
// monotone chain algorithm.
//
// Points are sorted by x ascending with ties broken by y ascending, then a
// lower and an upper chain are built; the last point is popped while the
// trailing three points make a non-left turn (cross product <= 0), so
// collinear points never appear as hull vertices. The two chains are
// concatenated with the final point of each dropped, avoiding duplication
// of the shared extreme points.
//
// Inputs of 0 or 1 points are returned unchanged. The result has a
// consistent winding order; downstream area computation takes an absolute
// value, so the direction itself does not matter.
func convexHull(points []Point) []Point {
	if len(points) <= 1 {
		return points
	}

	sorted := make([]Point, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})

	lower := make([]Point, 0, len(sorted))
	for _, p := range sorted {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	upper := make([]Point, 0, len(sorted))
	for i := len(sorted) - 1; i >= 0; i-- {
		p := sorted[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	// Drop the last point of each chain: it is the first point of the other.
	hull := make([]Point, 0, len(lower)+len(upper)-2)
	hull = append(hull, lower[:len(lower)-1]...)
	hull = append(hull, upper[:len(upper)-1]...)
	return hull
}

// cross returns the z component of (b-a) x (c-a). Positive for a left turn,
// negative for a right turn, zero when the three points are collinear.
func cross(a, b, c Point) int {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}
