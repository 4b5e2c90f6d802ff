package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/planarkit/planar"
	"github.com/planarkit/planar/geom"
)

// Demo driver for the polygon engine. Input on stdin should be newline
// separated points in the form "x y", with each polygon separated by an
// extra newline. Coordinates are y-up; winding may be either direction.

var (
	app    = kingpin.New("planar", "Planar polygon analysis: hulls, triangulation, areas and boolean operations.")
	render = app.Flag("render", "Write the result to a PNG at this path.").String()
	show   = app.Flag("show", "Preview the rendered PNG inline in the terminal.").Bool()
	scale  = app.Flag("scale", "Render scale in pixels per input unit.").Default("10").Float64()

	hullCmd  = app.Command("hull", "Convex hull of all input points.")
	hullAlgo = hullCmd.Flag("algorithm", "Hull construction to use.").Default("monotone").Enum("monotone", "graham")

	validateCmd = app.Command("validate", "Check each input polygon for simplicity.")
	areaCmd     = app.Command("area", "Shoelace area of each input polygon.")
	triCmd      = app.Command("triangulate", "Ear clipping triangulation of the first input polygon.")
	interCmd    = app.Command("intersect", "Intersection of the first two input polygons.")
	unionCmd    = app.Command("union", "Union of the first two input polygons.")
)

func main() {
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	polygons, err := readPolygons(os.Stdin)
	if err != nil {
		app.Fatalf("reading polygons: %v", err)
	}
	if len(polygons) == 0 {
		app.Fatalf("no input polygons on stdin")
	}

	switch cmd {
	case hullCmd.FullCommand():
		runHull(polygons)
	case validateCmd.FullCommand():
		runValidate(polygons)
	case areaCmd.FullCommand():
		runArea(polygons)
	case triCmd.FullCommand():
		runTriangulate(polygons[0])
	case interCmd.FullCommand():
		runBoolean(polygons, planar.Intersection)
	case unionCmd.FullCommand():
		runBoolean(polygons, planar.Union)
	}
}

func runHull(polygons []planar.Polygon) {
	var points []planar.Point
	for _, poly := range polygons {
		points = append(points, poly...)
	}

	algorithm := planar.MonotoneChain
	if *hullAlgo == "graham" {
		algorithm = planar.GrahamScan
	}
	hull := planar.ConvexHull(points, algorithm)
	if hull == nil {
		app.Fatalf("need at least 3 points for a hull, got %d", len(points))
	}

	fmt.Printf("%s hull of %d points: %d vertices\n", algorithm, len(points), aurora.Green(len(hull)))
	printContour(hull)
	renderResult([]planar.Polygon{hull}, nil)
}

func runValidate(polygons []planar.Polygon) {
	bad := 0
	for i, poly := range polygons {
		if err := geom.Polygon(poly).Validate(3); err != nil {
			bad++
			fmt.Printf("polygon %d: %s (%s)\n", i+1, aurora.Red(err.Kind), err.Message)
		} else {
			fmt.Printf("polygon %d: %s\n", i+1, aurora.Green("simple"))
		}
	}
	if bad > 0 {
		os.Exit(1)
	}
}

func runArea(polygons []planar.Polygon) {
	for i, poly := range polygons {
		fmt.Printf("polygon %d: area %s\n", i+1, aurora.Cyan(strconv.FormatFloat(planar.Area(poly), 'f', 2, 64)))
	}
}

func runTriangulate(polygon planar.Polygon) {
	triangles, err := planar.Triangulate(polygon)
	if err != nil {
		fatalTyped(err)
	}
	fmt.Printf("%s triangles from %d vertices\n", aurora.Green(len(triangles)), len(polygon))
	for _, t := range triangles {
		fmt.Printf("  (%g %g) (%g %g) (%g %g)\n", t.A.X, t.A.Y, t.B.X, t.B.Y, t.C.X, t.C.Y)
	}
	renderResult(nil, triangles)
}

func runBoolean(polygons []planar.Polygon, op geom.Op) {
	if len(polygons) < 2 {
		app.Fatalf("%s needs two input polygons, got %d", op, len(polygons))
	}
	for i, poly := range polygons[:2] {
		if err := geom.Polygon(poly).Validate(3); err != nil {
			fmt.Printf("polygon %d: %s (%s)\n", i+1, aurora.Red(err.Kind), err.Message)
			os.Exit(1)
		}
	}

	contours, err := planar.BooleanOp(polygons[0], polygons[1], op)
	if err != nil {
		fatalTyped(err)
	}
	fmt.Printf("%s: %s contours\n", op, aurora.Green(len(contours)))
	for i, contour := range contours {
		fmt.Printf("contour %d (%d vertices, area %.2f):\n", i+1, len(contour), contour.Area())
		printContour(contour)
	}
	renderResult(contours, nil)
}

func printContour(points []planar.Point) {
	for _, p := range points {
		fmt.Printf("  %g %g\n", p.X, p.Y)
	}
}

// fatalTyped reports an engine failure with its kind when it carries one.
func fatalTyped(err error) {
	if gerr, ok := err.(*planar.Error); ok {
		fmt.Printf("%s: %s\n", aurora.Red(gerr.Kind), gerr.Message)
		os.Exit(1)
	}
	app.Fatalf("%v", err)
}

func renderResult(contours []planar.Polygon, triangles []planar.Triangle) {
	if *render == "" {
		if !*show {
			return
		}
		*render = "/tmp/planar.png"
	}

	var err error
	if triangles != nil {
		err = geom.RenderTriangles(triangles, *scale, *render)
	} else {
		err = geom.RenderContours(contours, *scale, *render)
	}
	if err != nil {
		app.Fatalf("rendering %s: %v", *render, err)
	}
	if *show {
		if err := geom.ShowPNG(*render); err != nil {
			app.Fatalf("displaying %s: %v", *render, err)
		}
	}
}

func readPolygons(in io.Reader) ([]planar.Polygon, error) {
	var polygons []planar.Polygon
	var points planar.Polygon

	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		// A blank line ends the current polygon.
		if line == "" {
			if len(points) > 0 {
				polygons = append(polygons, points)
				points = nil
			}
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	// Handle the trailing polygon if any.
	if len(points) > 0 {
		polygons = append(polygons, points)
	}
	return polygons, nil
}

func parsePoint(line string) (planar.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return planar.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return planar.Point{}, errors.Wrapf(err, "bad x coordinate %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return planar.Point{}, errors.Wrapf(err, "bad y coordinate %q", parts[1])
	}
	return planar.Point{X: x, Y: y}, nil
}
