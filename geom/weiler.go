package geom

import (
	"fmt"
	"sort"
	"strings"

	"github.com/planarkit/planar/dbg"
)

// Op selects a boolean operation on two polygons.
type Op int

const (
	Intersection Op = iota
	Union
)

func (op Op) String() string {
	if op == Union {
		return "union"
	}
	return "intersection"
}

// vertexNode is one entry in a clip ring. Nodes live in a flat arena per
// polygon and are linked into a ring through next indexes; an intersection
// node additionally carries the index of its twin in the other polygon's
// arena. Index cross-references keep the two-rings-pointing-into-each-other
// topology inspectable and free of aliasing hazards. Nodes exist only for
// the duration of one BooleanOp call.
type vertexNode struct {
	pt           Point
	intersection bool
	entering     bool    // meaningful only for intersection nodes
	processed    bool    // visited during stitching
	alpha        float64 // parametric position along the original edge
	neighbor     int     // twin index in the other arena, -1 for input vertices
	next         int
}

// cursor addresses one node across the two arenas.
type cursor struct {
	ring int // 0 = subject, 1 = clip
	idx  int
}

type clipper struct {
	rings [2]Polygon
	lists [2][]vertexNode
	// hits[r][e] collects the intersection nodes discovered on edge e of
	// ring r, so they can be spliced in sorted by alpha once discovery is
	// complete.
	hits [2][][]int
}

// BooleanOp computes the intersection or union of two simple polygons with
// the Weiler-Atherton algorithm. The result is a set of contours: more than
// one contour means disjoint regions or an outer boundary plus a hole, to be
// filled with the non-zero winding rule. If either input has fewer than
// three vertices the result is nil (a no-op, not an error). If the contour
// stitching guard trips, the call panics with an AlgorithmDivergence *Error
// and produces no partial output; use the root package wrapper to receive it
// as an ordinary error.
func BooleanOp(a, b Polygon, op Op) []Polygon {
	a = append(Polygon{}, a.stripClosing()...)
	b = append(Polygon{}, b.stripClosing()...)
	if len(a) < 3 || len(b) < 3 {
		return nil
	}

	// Both rings counterclockwise, so that "interior on the left" holds
	// everywhere below.
	if a.IsClockwise() {
		a = a.Reverse()
	}
	if b.IsClockwise() {
		b = b.Reverse()
	}

	c := newClipper(a, b)
	if c.findIntersections() == 0 {
		return nestedOrDisjoint(a, b, op)
	}
	return c.stitch(op)
}

func newClipper(a, b Polygon) *clipper {
	c := &clipper{rings: [2]Polygon{a, b}}
	for r, ring := range c.rings {
		list := make([]vertexNode, len(ring))
		for i, pt := range ring {
			list[i] = vertexNode{pt: pt, neighbor: -1, next: (i + 1) % len(ring)}
		}
		c.lists[r] = list
		c.hits[r] = make([][]int, len(ring))
	}
	return c
}

// findIntersections runs every subject edge against every clip edge,
// appending paired intersection nodes to both arenas, then splices each
// edge's nodes into its ring ordered by parametric position. Returns the
// number of intersection pairs found. O(n*m).
func (c *clipper) findIntersections() int {
	a, b := c.rings[0], c.rings[1]
	pairs := 0
	for i := range a {
		p1, p2 := a[i], a[(i+1)%len(a)]
		for j := range b {
			q1, q2 := b[j], b[(j+1)%len(b)]
			at, t, u, ok := segmentIntersection(p1, p2, q1, q2)
			if !ok {
				continue
			}

			// Classify by the cross product of the two outgoing edge
			// directions. Both rings wind counterclockwise, so the clip
			// polygon's interior lies to the left of its edge: the subject
			// is entering it exactly when its direction points into that
			// left half-plane, which is the negative-cross side here.
			det := Cross(Point{}, Point{p2.X - p1.X, p2.Y - p1.Y}, Point{q2.X - q1.X, q2.Y - q1.Y})

			ai := c.add(0, vertexNode{pt: at, intersection: true, entering: det < 0, alpha: t, neighbor: -1})
			bi := c.add(1, vertexNode{pt: at, intersection: true, entering: det > 0, alpha: u, neighbor: -1})
			c.lists[0][ai].neighbor = bi
			c.lists[1][bi].neighbor = ai
			c.hits[0][i] = append(c.hits[0][i], ai)
			c.hits[1][j] = append(c.hits[1][j], bi)
			pairs++
		}
	}
	c.splice(0)
	c.splice(1)
	return pairs
}

func (c *clipper) add(r int, n vertexNode) int {
	c.lists[r] = append(c.lists[r], n)
	return len(c.lists[r]) - 1
}

// splice links each edge's intersection nodes into the ring in order of
// their position along that edge.
func (c *clipper) splice(r int) {
	list := c.lists[r]
	for edge, nodes := range c.hits[r] {
		if len(nodes) == 0 {
			continue
		}
		sort.Slice(nodes, func(i, j int) bool {
			return list[nodes[i]].alpha < list[nodes[j]].alpha
		})
		prev := edge
		for _, idx := range nodes {
			list[idx].next = list[prev].next
			list[prev].next = idx
			prev = idx
		}
	}
}

// stitch walks the augmented rings and collects the output contours. An
// intersection walk begins at entering crossings and switches rings at
// exiting ones (tracing boundary that lies inside the other polygon); a
// union walk begins at exiting crossings and switches at entering ones
// (tracing boundary that lies outside). A walk closes when it returns to its
// start node or reaches the start node's twin.
func (c *clipper) stitch(op Op) []Polygon {
	isUnion := op == Union
	maxSteps := len(c.lists[0]) + len(c.lists[1]) + 1
	var result []Polygon

	for start := range c.lists[0] {
		startNode := &c.lists[0][start]
		if !startNode.intersection || startNode.processed {
			continue
		}
		if isUnion == startNode.entering {
			continue
		}

		var contour Polygon
		cur := cursor{0, start}
		startTwin := cursor{1, startNode.neighbor}
		for steps := 0; ; steps++ {
			if steps > maxSteps {
				throw(AlgorithmDivergence, "contour stitching exceeded %d steps, clip topology is inconsistent", maxSteps)
			}

			n := &c.lists[cur.ring][cur.idx]
			n.processed = true
			if n.intersection {
				c.lists[1-cur.ring][n.neighbor].processed = true
			}
			contour = append(contour, n.pt)

			// A crossing of the opposite polarity from the start switches
			// rings: jump to the twin and keep walking there.
			if n.intersection && n.entering == isUnion {
				cur = cursor{1 - cur.ring, n.neighbor}
				n = &c.lists[cur.ring][cur.idx]
			}

			cur.idx = n.next
			if cur == (cursor{0, start}) || cur == startTwin {
				break
			}
		}

		if len(contour) > 2 {
			result = append(result, contour)
		}
	}
	return result
}

// nestedOrDisjoint resolves the zero-crossing cases by containment of one
// representative vertex: one polygon fully inside the other, or the two
// fully apart.
func nestedOrDisjoint(a, b Polygon, op Op) []Polygon {
	aInB := b.Contains(a[0])
	bInA := a.Contains(b[0])

	switch {
	case op == Intersection && aInB:
		return []Polygon{a}
	case op == Intersection && bInA:
		return []Polygon{b}
	case op == Intersection:
		return nil
	case aInB:
		return []Polygon{b}
	case bInA:
		return []Polygon{a}
	default:
		return []Polygon{a, b}
	}
}

// dump renders both rings in walking order with readable node names, for
// test diagnostics.
func (c *clipper) dump() string {
	var sb strings.Builder
	for r := range c.lists {
		fmt.Fprintf(&sb, "ring %d:\n", r)
		list := c.lists[r]
		idx := 0
		for steps := 0; steps <= len(list); steps++ {
			n := &list[idx]
			tag := "."
			if n.intersection {
				tag = "out"
				if n.entering {
					tag = "in"
				}
			}
			fmt.Fprintf(&sb, "  %-3s %s (%g, %g) alpha=%g\n", tag, dbg.Name(n), n.pt.X, n.pt.Y, n.alpha)
			idx = n.next
			if idx == 0 {
				break
			}
		}
	}
	return sb.String()
}
