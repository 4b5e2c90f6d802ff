// Package planar analyzes polygons in the plane: convex hull construction,
// simple-polygon validation, ear-clipping triangulation, shoelace areas and
// Weiler-Atherton boolean operations (intersection and union, including
// nested and disjoint inputs).
//
// Coordinates are mathematical: y increases up the page and counterclockwise
// rings have positive signed area. Every operation takes its own copy of the
// input, runs to completion and returns a freshly allocated result; nothing
// is retained between calls.
//
// This package is a thin facade over geom, which implements the algorithms.
// The core signals failures by panicking with typed errors; the wrappers
// here recover and hand them back as ordinary error values.
package planar

import "github.com/planarkit/planar/geom"

type Point = geom.Point
type Polygon = geom.Polygon
type Triangle = geom.Triangle

// Error is the typed failure value returned by the fallible operations. Its
// Kind is one of geom.InsufficientVertices, geom.SelfIntersecting,
// geom.ZeroLengthEdge or geom.AlgorithmDivergence.
type Error = geom.Error

// Convex hull algorithm selectors.
const (
	MonotoneChain = geom.MonotoneChain
	GrahamScan    = geom.GrahamScan
)

// Boolean operation selectors.
const (
	Intersection = geom.Intersection
	Union        = geom.Union
)

// ConvexHull returns the counterclockwise convex hull of the point set, or
// nil when fewer than three points are given.
func ConvexHull(points []Point, algorithm geom.Algorithm) []Point {
	return geom.ConvexHull(points, algorithm)
}

// IsSimple reports whether the points form a simple polygon: no zero-length
// edges and no crossings between non-adjacent edges.
func IsSimple(polygon []Point) bool {
	return Polygon(polygon).IsSimple()
}

// Area returns the enclosed area of the polygon by the shoelace formula,
// independent of winding direction.
func Area(polygon []Point) float64 {
	return Polygon(polygon).Area()
}

// Triangulate splits a simple polygon into exactly len(polygon)-2 triangles
// by ear clipping. A non-nil error is always a *Error; on error the triangle
// slice is nil.
func Triangulate(polygon []Point) (result []Triangle, err error) {
	defer func() {
		if e := geom.RecoverError(recover()); e != nil {
			result = nil
			err = e
		}
	}()
	return geom.Triangulate(polygon), nil
}

// BooleanOp computes the intersection or union of two simple polygons. The
// result is a list of contours to be filled with the non-zero winding rule;
// several contours represent disjoint regions or a region with a hole. An
// input with fewer than three vertices yields a nil result and no error.
func BooleanOp(a, b []Point, op geom.Op) (result []Polygon, err error) {
	defer func() {
		if e := geom.RecoverError(recover()); e != nil {
			result = nil
			err = e
		}
	}()
	return geom.BooleanOp(a, b, op), nil
}
