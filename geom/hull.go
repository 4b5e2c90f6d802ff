package geom

import (
	"math"
	"sort"
)

// Algorithm selects a convex hull construction. Both produce the same hull
// as a point set; they may start the ring at different vertices.
type Algorithm int

const (
	// MonotoneChain is Andrew's monotone chain: sort by x then y, then build
	// the lower and upper chains with a single scan each.
	MonotoneChain Algorithm = iota
	// GrahamScan sorts the points by polar angle around the lowest point and
	// builds the hull with one stack scan.
	GrahamScan
)

func (a Algorithm) String() string {
	if a == GrahamScan {
		return "graham"
	}
	return "monotone"
}

// ConvexHull returns the hull of the point set as a counterclockwise ring of
// input points. Collinear boundary points are eliminated: every surviving
// vertex is a strict left turn from its neighbors. Fewer than three input
// points yield a nil hull.
func ConvexHull(points []Point, algorithm Algorithm) []Point {
	if len(points) < 3 {
		return nil
	}
	if algorithm == GrahamScan {
		return grahamScan(points)
	}
	return monotoneChain(points)
}

func monotoneChain(points []Point) []Point {
	sorted := make([]Point, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		return a.X < b.X || (a.X == b.X && a.Y < b.Y)
	})

	// Lower chain, scanning left to right. Popping on cross <= 0 drops
	// right turns and collinear middles alike.
	var lower []Point
	for _, p := range sorted {
		for len(lower) >= 2 && Cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	// Upper chain, scanning right to left.
	var upper []Point
	for i := len(sorted) - 1; i >= 0; i-- {
		p := sorted[i]
		for len(upper) >= 2 && Cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	// Each chain ends on the point the other starts with; drop the
	// duplicates when concatenating.
	return append(lower[:len(lower)-1], upper[:len(upper)-1]...)
}

func grahamScan(points []Point) []Point {
	sorted := make([]Point, len(points))
	copy(sorted, points)

	// The pivot is the lowest point, leftmost on ties. It is on the hull.
	pivot := 0
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Y < sorted[pivot].Y ||
			(sorted[i].Y == sorted[pivot].Y && sorted[i].X < sorted[pivot].X) {
			pivot = i
		}
	}
	sorted[0], sorted[pivot] = sorted[pivot], sorted[0]
	p0 := sorted[0]

	// Sort the rest by polar angle around the pivot, nearer point first when
	// collinear with it.
	rest := sorted[1:]
	sort.Slice(rest, func(i, j int) bool {
		order := Cross(p0, rest[i], rest[j])
		if math.Abs(order) < Epsilon {
			return distSq(p0, rest[i]) < distSq(p0, rest[j])
		}
		return order > 0
	})

	hull := []Point{sorted[0], sorted[1]}
	for _, p := range sorted[2:] {
		for len(hull) > 1 && Cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return hull
}

func distSq(a, b Point) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx + dy*dy
}
