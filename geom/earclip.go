package geom

// Triangulate decomposes a simple polygon into exactly len-2 triangles by
// ear clipping. The input must have at least three vertices and pass the
// simple-polygon check; winding may be either direction (it is normalized to
// counterclockwise internally) and a trailing closing vertex is stripped.
//
// On any failure the function panics with a typed *Error; use the wrapper in
// the root package to receive it as an ordinary error. A failed run produces
// no partial output.
func Triangulate(p Polygon) []Triangle {
	remaining := append(Polygon{}, p.stripClosing()...)
	if err := remaining.Validate(3); err != nil {
		panic(err)
	}
	if remaining.IsClockwise() {
		remaining = remaining.Reverse()
	}

	triangles := make([]Triangle, 0, len(remaining)-2)
	attempts := 0

	for len(remaining) > 3 {
		// Each full scan that fails to clip an ear counts as an attempt.
		// A simple polygon always has an ear, so repeated failed scans mean
		// the geometry is too degenerate for the float arithmetic here and
		// the loop will never make progress.
		if attempts >= 2*len(remaining) {
			throw(AlgorithmDivergence, "ear clipping stalled with %d vertices left", len(remaining))
		}

		clipped := false
		for i := 0; i < len(remaining); i++ {
			n := len(remaining)
			p1 := remaining[i]
			p2 := remaining[(i+1)%n]
			p3 := remaining[(i+2)%n]

			// The tip must be strictly convex.
			if Cross(p1, p2, p3) <= 0 {
				continue
			}
			ear := Triangle{p1, p2, p3}
			if earBlocked(ear, remaining, i) {
				continue
			}

			triangles = append(triangles, ear)
			tip := (i + 1) % n
			remaining = append(remaining[:tip], remaining[tip+1:]...)
			attempts = 0
			clipped = true
			break
		}
		if !clipped {
			attempts++
		}
	}

	return append(triangles, Triangle{remaining[0], remaining[1], remaining[2]})
}

// earBlocked reports whether any ring vertex other than the ear's own three
// corners lies inside or on the candidate triangle.
func earBlocked(ear Triangle, ring Polygon, i int) bool {
	n := len(ring)
	for j := 0; j < n; j++ {
		if j == i || j == (i+1)%n || j == (i+2)%n {
			continue
		}
		if ear.Contains(ring[j]) {
			return true
		}
	}
	return false
}
