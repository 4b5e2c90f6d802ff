// Package geom implements the planar polygon engine: orientation and
// intersection primitives, simple-polygon validation, convex hull
// construction, ear-clipping triangulation and Weiler-Atherton boolean
// operations.
//
// The coordinate convention throughout is the mathematical one: x increases
// to the right and y increases up the page. Under this convention a polygon
// whose signed (shoelace) area is positive winds counterclockwise, and a
// positive cross product means a left turn.
package geom

// Point is a location in the plane. Points are plain values and algorithms
// compare them with exact equality unless they explicitly apply an epsilon,
// so callers keep precision guarantees end to end.
type Point struct {
	X, Y float64
}

// Polygon is an ordered vertex ring. The last vertex connects implicitly
// back to the first; a trailing duplicate of the first point is tolerated on
// input and stripped before processing.
type Polygon []Point

// Triangle is a triangle by its three corners.
type Triangle struct {
	A, B, C Point
}
