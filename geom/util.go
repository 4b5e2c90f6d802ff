package geom

const (
	// Epsilon guards the strict segment intersection test: determinants
	// smaller than this are treated as parallel, and intersection parameters
	// within Epsilon of an endpoint are treated as touches, not crossings.
	Epsilon = 1e-9

	// containsTolerance is the slack in area-sum containment tests. It is
	// tighter than Epsilon because the quantities compared are doubled areas
	// of the same triangle computed two ways, which mostly cancel.
	containsTolerance = 1e-10
)

// CircularIndex treats an index as wrapping around a ring of length n.
// Unlike the raw modulo operator it never returns negative values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
