package geom

// IsSimple reports whether the ring is a simple polygon: no zero-length
// edges and no crossing between non-adjacent edges. Fewer than three
// vertices cannot self-intersect, and three vertices always form a simple
// (possibly zero-area) triangle. Edge pairs sharing an endpoint by
// construction are legal contacts, not self-intersections. O(n^2) over edge
// pairs, which is fine at the input sizes this engine sees.
func (p Polygon) IsSimple() bool {
	n := len(p)
	if n <= 3 {
		return true
	}

	for i := 0; i < n; i++ {
		p1, p2 := p[i], p[(i+1)%n]
		if p1 == p2 {
			return false
		}
		for j := i + 1; j < n; j++ {
			// Skip the edge itself and the two adjacent edges.
			if j == (i+1)%n || i == (j+1)%n {
				continue
			}
			q1, q2 := p[j], p[(j+1)%n]
			if SegmentsIntersect(p1, p2, q1, q2) {
				return false
			}
		}
	}
	return true
}

// Validate checks the ring as an engine input and returns a typed error for
// the first problem found, or nil. This is the mandatory gate in front of
// triangulation, and what the demo CLI reports to users.
func (p Polygon) Validate(minVertices int) *Error {
	if len(p) < minVertices {
		return errorf(InsufficientVertices, "polygon has %d vertices, need at least %d", len(p), minVertices)
	}
	n := len(p)
	for i := 0; i < n; i++ {
		if p[i] == p[(i+1)%n] {
			return errorf(ZeroLengthEdge, "vertices %d and %d coincide", i, (i+1)%n)
		}
	}
	if !p.IsSimple() {
		return errorf(SelfIntersecting, "polygon has crossing edges")
	}
	return nil
}
