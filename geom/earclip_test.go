package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// triangulateErr mirrors the root package wrapper so tests can look at the
// returned error instead of handling panics themselves.
func triangulateErr(p Polygon) (result []Triangle, err error) {
	defer func() {
		if e := RecoverError(recover()); e != nil {
			result = nil
			err = e
		}
	}()
	return Triangulate(p), nil
}

func assertTriangulation(t *testing.T, poly Polygon) []Triangle {
	t.Helper()
	triangles := Triangulate(poly)
	require.Len(t, triangles, len(poly.stripClosing())-2)

	var sum float64
	for _, tri := range triangles {
		sum += tri.Area()
	}
	assert.InDelta(t, poly.Area(), sum, 1e-6, "triangle areas must sum to the polygon area")
	return triangles
}

func TestTriangulateSquare(t *testing.T) {
	triangles := assertTriangulation(t, Polygon{{0, 0}, {4, 0}, {4, 4}, {0, 4}})
	assert.Len(t, triangles, 2)
}

func TestTriangulateFixtures(t *testing.T) {
	for _, name := range []string{"ell", "comb", "star"} {
		t.Run(name, func(t *testing.T) {
			assertTriangulation(t, loadFixture(name))
		})
	}
}

func TestTriangulateWindingIndependent(t *testing.T) {
	poly := loadFixture("ell")
	ccw := Triangulate(poly)
	cw := Triangulate(poly.Reverse())
	assert.Len(t, cw, len(ccw))
}

func TestTriangulateStripsClosingVertex(t *testing.T) {
	closed := Polygon{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0, 0}}
	assert.Len(t, Triangulate(closed), 2)
}

func TestTriangulateDiagonalsStayInside(t *testing.T) {
	poly := loadFixture("ell")
	edges := make(map[[2]Point]bool)
	n := len(poly)
	for i, a := range poly {
		b := poly[(i+1)%n]
		edges[[2]Point{a, b}] = true
		edges[[2]Point{b, a}] = true
	}

	for _, tri := range Triangulate(poly) {
		for _, edge := range [][2]Point{{tri.A, tri.B}, {tri.B, tri.C}, {tri.C, tri.A}} {
			if edges[edge] {
				continue
			}
			mid := Point{(edge[0].X + edge[1].X) / 2, (edge[0].Y + edge[1].Y) / 2}
			assert.True(t, poly.Contains(mid),
				"diagonal %v-%v leaves the polygon", edge[0], edge[1])
		}
	}
}

func TestTriangulateErrors(t *testing.T) {
	cases := []struct {
		name string
		poly Polygon
		kind Kind
	}{
		{"too few vertices", Polygon{{0, 0}, {4, 0}}, InsufficientVertices},
		{"bowtie", Polygon{{0, 0}, {4, 4}, {4, 0}, {0, 4}}, SelfIntersecting},
		{"zero-length edge", Polygon{{0, 0}, {4, 0}, {4, 0}, {0, 4}}, ZeroLengthEdge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			triangles, err := triangulateErr(tc.poly)
			assert.Nil(t, triangles)
			var gerr *Error
			if assert.ErrorAs(t, err, &gerr) {
				assert.Equal(t, tc.kind, gerr.Kind)
			}
		})
	}
}

func TestTriangulateDeterministic(t *testing.T) {
	poly := loadFixture("star")
	first := Triangulate(poly)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Triangulate(poly))
	}
}
