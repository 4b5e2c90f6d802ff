package geom

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// PNG rendering of results for the demo CLI and for debugging. This is the
// consumer side of the engine contract, not part of the engines themselves.

const renderPadding = 16

// RenderContours rasterizes a set of contours to a PNG. The contours are
// filled together with the non-zero winding rule, so a hole contour produced
// by a boolean operation comes out hollow. Scale is pixels per input unit.
func RenderContours(contours []Polygon, scale float64, path string) error {
	if len(contours) == 0 {
		return nil
	}
	c := newCanvas(boundsOf(contours), scale)
	tracePaths(c, contours)
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()
	return c.SavePNG(path)
}

// RenderTriangles rasterizes a triangulation to a PNG: translucent fill with
// every triangle outlined.
func RenderTriangles(triangles []Triangle, scale float64, path string) error {
	if len(triangles) == 0 {
		return nil
	}
	contours := make([]Polygon, len(triangles))
	for i, t := range triangles {
		contours[i] = Polygon{t.A, t.B, t.C}
	}
	c := newCanvas(boundsOf(contours), scale)
	tracePaths(c, contours)
	c.SetRGBA(0, 0, 1, 0.25)
	c.FillPreserve()
	c.SetRGB(0.6, 0.6, 0.6)
	c.Stroke()
	return c.SavePNG(path)
}

// ShowPNG prints a previously rendered PNG inline in the terminal.
func ShowPNG(path string) error {
	return imgcat.CatFile(path, os.Stdout)
}

type bounds struct {
	minX, minY, maxX, maxY float64
}

func boundsOf(contours []Polygon) bounds {
	b := bounds{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
	for _, poly := range contours {
		for _, p := range poly {
			b.minX = math.Min(b.minX, p.X)
			b.minY = math.Min(b.minY, p.Y)
			b.maxX = math.Max(b.maxX, p.X)
			b.maxY = math.Max(b.maxY, p.Y)
		}
	}
	return b
}

func newCanvas(b bounds, scale float64) *gg.Context {
	width := int(scale*(b.maxX-b.minX)) + renderPadding*2
	height := int(scale*(b.maxY-b.minY)) + renderPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetFillRuleWinding()

	// Flip the context so the origin is at the bottom left, matching the
	// y-up convention of the engine.
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	c.Translate(renderPadding, renderPadding)
	c.Scale(scale, scale)
	c.Translate(-b.minX, -b.minY)
	c.SetLineWidth(2)
	return c
}

func tracePaths(c *gg.Context, contours []Polygon) {
	for _, poly := range contours {
		if len(poly) == 0 {
			continue
		}
		c.MoveTo(poly[0].X, poly[0].Y)
		for _, p := range poly[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
	}
}
