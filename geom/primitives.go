package geom

import "math"

// Cross returns the z component of (b-a) x (c-a). Positive means the path
// a -> b -> c turns left (counterclockwise), negative means it turns right,
// zero means the three points are collinear.
func Cross(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// onSegment reports whether c lies on the segment ab: inside the bounding
// box of the endpoints and collinear with them.
func onSegment(a, b, c Point) bool {
	if c.X < math.Min(a.X, b.X) || c.X > math.Max(a.X, b.X) ||
		c.Y < math.Min(a.Y, b.Y) || c.Y > math.Max(a.Y, b.Y) {
		return false
	}
	return math.Abs(Cross(a, b, c)) < containsTolerance
}

// SegmentsIntersect reports whether the segments p1p2 and q1q2 cross. An
// endpoint of one segment lying in the interior of the other counts as a
// crossing; two segments that merely share an endpoint do not.
func SegmentsIntersect(p1, p2, q1, q2 Point) bool {
	o1 := Cross(p1, p2, q1)
	o2 := Cross(p1, p2, q2)
	o3 := Cross(q1, q2, p1)
	o4 := Cross(q1, q2, p2)

	// Proper crossing: each segment's endpoints straddle the other's line.
	if ((o1 > 0 && o2 < 0) || (o1 < 0 && o2 > 0)) &&
		((o3 > 0 && o4 < 0) || (o3 < 0 && o4 > 0)) {
		return true
	}

	// Collinear touch: an endpoint lies on the other segment but is not one
	// of its endpoints.
	if o1 == 0 && onSegment(p1, p2, q1) && q1 != p1 && q1 != p2 {
		return true
	}
	if o2 == 0 && onSegment(p1, p2, q2) && q2 != p1 && q2 != p2 {
		return true
	}
	if o3 == 0 && onSegment(q1, q2, p1) && p1 != q1 && p1 != q2 {
		return true
	}
	if o4 == 0 && onSegment(q1, q2, p2) && p2 != q1 && p2 != q2 {
		return true
	}

	return false
}

// segmentIntersection solves for the crossing of the open interiors of p1p2
// and q1q2 by Cramer's rule. Near-parallel pairs (determinant magnitude
// below Epsilon) and crossings within Epsilon of an endpoint report no
// intersection. t and u are the parametric positions of the crossing along
// p1p2 and q1q2 respectively.
func segmentIntersection(p1, p2, q1, q2 Point) (at Point, t, u float64, ok bool) {
	det := (p2.X-p1.X)*(q2.Y-q1.Y) - (p2.Y-p1.Y)*(q2.X-q1.X)
	if math.Abs(det) < Epsilon {
		return Point{}, 0, 0, false
	}

	t = ((q1.X-p1.X)*(q2.Y-q1.Y) - (q1.Y-p1.Y)*(q2.X-q1.X)) / det
	u = -((p2.X-p1.X)*(q1.Y-p1.Y) - (p2.Y-p1.Y)*(q1.X-p1.X)) / det
	if t <= Epsilon || t >= 1-Epsilon || u <= Epsilon || u >= 1-Epsilon {
		return Point{}, 0, 0, false
	}

	at = Point{p1.X + t*(p2.X-p1.X), p1.Y + t*(p2.Y-p1.Y)}
	return at, t, u, true
}

// Contains is the rightward ray-casting parity test: cast a horizontal ray
// from pt towards +x and count edge crossings. An odd count means inside.
// Rings with fewer than three vertices contain nothing.
func (p Polygon) Contains(pt Point) bool {
	if len(p) < 3 {
		return false
	}
	inside := false
	for i, j := 0, len(p)-1; i < len(p); j, i = i, i+1 {
		a, b := p[i], p[j]
		if (a.Y > pt.Y) == (b.Y > pt.Y) {
			continue
		}
		// The x coordinate where the edge crosses the ray's line.
		x := (b.X-a.X)*(pt.Y-a.Y)/(b.Y-a.Y) + a.X
		if pt.X < x {
			inside = !inside
		}
	}
	return inside
}

// SignedArea is the shoelace sum over the ring. Positive means the ring
// winds counterclockwise, negative clockwise, zero degenerate. Note this is
// twice the enclosed area; use Area for the geometric value.
func (p Polygon) SignedArea() float64 {
	var sum float64
	for i, a := range p {
		b := p[CircularIndex(i+1, len(p))]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum
}

// Area is the enclosed area, independent of winding direction.
func (p Polygon) Area() float64 {
	return math.Abs(p.SignedArea()) / 2
}

// IsClockwise reports whether the ring winds clockwise.
func (p Polygon) IsClockwise() bool {
	return p.SignedArea() < 0
}

// Reverse returns a copy of the ring with the opposite winding.
func (p Polygon) Reverse() Polygon {
	r := make(Polygon, len(p))
	for i, pt := range p {
		r[len(p)-1-i] = pt
	}
	return r
}

// stripClosing drops a trailing duplicate of the first vertex, which some
// producers emit to close the ring explicitly.
func (p Polygon) stripClosing() Polygon {
	if len(p) > 1 && p[0] == p[len(p)-1] {
		return p[:len(p)-1]
	}
	return p
}

// Contains reports whether pt lies inside or on the triangle, by comparing
// the triangle's area against the sum of the areas of the three triangles pt
// forms with its edges. For an interior point they agree exactly; for an
// exterior point the sum is strictly larger. Cross products give doubled
// areas directly, so there is no division, and absolute values make the test
// independent of corner order.
func (t Triangle) Contains(pt Point) bool {
	total := math.Abs((t.B.X-t.A.X)*(t.C.Y-t.A.Y) - (t.B.Y-t.A.Y)*(t.C.X-t.A.X))

	a1 := math.Abs((t.A.X-pt.X)*(t.B.Y-pt.Y) - (t.A.Y-pt.Y)*(t.B.X-pt.X))
	a2 := math.Abs((t.B.X-pt.X)*(t.C.Y-pt.Y) - (t.B.Y-pt.Y)*(t.C.X-pt.X))
	a3 := math.Abs((t.C.X-pt.X)*(t.A.Y-pt.Y) - (t.C.Y-pt.Y)*(t.A.X-pt.X))

	return math.Abs(a1+a2+a3-total) < containsTolerance
}

// Area of the triangle.
func (t Triangle) Area() float64 {
	return math.Abs(Cross(t.A, t.B, t.C)) / 2
}
