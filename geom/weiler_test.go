package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contourArea(contours []Polygon) float64 {
	var sum float64
	for _, c := range contours {
		sum += c.Area()
	}
	return sum
}

func TestBooleanOpOverlappingSquares(t *testing.T) {
	a := Polygon{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	b := Polygon{{2, 2}, {6, 2}, {6, 6}, {2, 6}}

	t.Run("intersection", func(t *testing.T) {
		contours := BooleanOp(a, b, Intersection)
		require.Len(t, contours, 1)
		assert.InDelta(t, 4, contourArea(contours), Epsilon)
		assert.Equal(t,
			hullPointSet([]Point{{4, 2}, {4, 4}, {2, 4}, {2, 2}}),
			hullPointSet(contours[0]))
		assert.False(t, contours[0].IsClockwise())
	})

	t.Run("union", func(t *testing.T) {
		contours := BooleanOp(a, b, Union)
		require.Len(t, contours, 1)
		assert.Len(t, contours[0], 8, "union of the two squares is an octagon")
		assert.InDelta(t, 28, contourArea(contours), Epsilon)
		assert.False(t, contours[0].IsClockwise())
	})
}

func TestBooleanOpDisjoint(t *testing.T) {
	a := Polygon{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	b := Polygon{{10, 10}, {14, 10}, {14, 14}, {10, 14}}

	assert.Nil(t, BooleanOp(a, b, Intersection))

	union := BooleanOp(a, b, Union)
	require.Len(t, union, 2, "disjoint union keeps both contours")
	assert.Equal(t, a, union[0])
	assert.Equal(t, b, union[1])
}

func TestBooleanOpNested(t *testing.T) {
	outer := Polygon{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	inner := Polygon{{4, 4}, {6, 4}, {6, 6}, {4, 6}}

	intersection := BooleanOp(outer, inner, Intersection)
	require.Len(t, intersection, 1)
	assert.Equal(t, inner, intersection[0])

	union := BooleanOp(inner, outer, Union)
	require.Len(t, union, 1)
	assert.Equal(t, outer, union[0])
}

func TestBooleanOpWindingAndClosingNormalized(t *testing.T) {
	// Clockwise subject with an explicit closing vertex must clip the same
	// as the open counterclockwise ring.
	a := Polygon{{0, 4}, {4, 4}, {4, 0}, {0, 0}, {0, 4}}
	b := Polygon{{2, 2}, {6, 2}, {6, 6}, {2, 6}}

	contours := BooleanOp(a, b, Intersection)
	require.Len(t, contours, 1)
	assert.InDelta(t, 4, contourArea(contours), Epsilon)
}

func TestBooleanOpTooFewVertices(t *testing.T) {
	square := Polygon{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	assert.Nil(t, BooleanOp(Polygon{{0, 0}, {1, 1}}, square, Intersection))
	assert.Nil(t, BooleanOp(square, Polygon{}, Union))
}

func TestClipperClassification(t *testing.T) {
	a := Polygon{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	b := Polygon{{2, 2}, {6, 2}, {6, 6}, {2, 6}}

	c := newClipper(a, b)
	require.Equal(t, 2, c.findIntersections())

	// The subject ring enters the clip square at (4,2) and leaves it at
	// (2,4).
	entering := map[Point]bool{}
	for _, n := range c.lists[0] {
		if !n.intersection {
			continue
		}
		entering[n.pt] = n.entering
		twin := c.lists[1][n.neighbor]
		assert.Equal(t, n.pt, twin.pt, "twin nodes carry the same point")
		assert.Equal(t, !n.entering, twin.entering, "twin flags are opposite")
	}
	assert.Equal(t, map[Point]bool{{4, 2}: true, {2, 4}: false}, entering)

	if t.Failed() {
		t.Log(c.dump())
	}
}

func TestBooleanOpDeterministic(t *testing.T) {
	a := loadFixture("ell")
	b := Polygon{{20, 20}, {100, 20}, {100, 100}, {20, 100}}
	for _, op := range []Op{Intersection, Union} {
		first := BooleanOp(a, b, op)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, BooleanOp(a, b, op))
		}
	}
}
