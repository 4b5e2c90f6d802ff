package geom

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures into polygons. It is not a full (or even
// correct) SVG handler: it finds the single polygon element, reads its
// points attribute and normalizes the result to counterclockwise. If
// anything goes wrong, it bails out; fixtures are test inputs, not user
// data.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func loadFixture(name string) Polygon {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Fixture %q should contain exactly one polygon, found %d", name, len(polygons))
	}

	var poly Polygon
	for _, pointString := range strings.Fields(polygons[0].Attributes["points"]) {
		parts := strings.Split(pointString, ",")
		if len(parts) != 2 {
			log.Fatalf("Invalid point string %q in fixture %q", pointString, name)
		}
		x, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q in fixture %q: %v", parts[0], name, err)
		}
		y, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q in fixture %q: %v", parts[1], name, err)
		}
		poly = append(poly, Point{x, y})
	}

	// SVG y points down, so fixtures usually arrive clockwise under the
	// engine's convention.
	if poly.IsClockwise() {
		poly = poly.Reverse()
	}
	return poly
}
