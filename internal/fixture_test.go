package internal

import (
	"embed"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs polygons. This is not a full
// (or even correct) svg parser. It parses the SVG and then finds the polygon,
// then converts that into a CCW Polygon. If anything goes wrong, it bails.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) Polygon {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, false)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected one polygon in fixture %q, found %d", name, len(polygons))
	}

	var points []Point
	for _, pointString := range strings.Fields(polygons[0].Attributes["points"]) {
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.Atoi(coords[0])
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.Atoi(coords[1])
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coords[1], err)
		}
		points = append(points, Point{x, y})
	}
	result := Polygon{Points: points}

	// Ensure that the polygon is CCW
	if result.IsCW() {
		result = result.Reverse()
	}
	return result
}

// Some ad hoc fixtures

func Square() Polygon {
	return Polygon{[]Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}}}
}

func LShape() Polygon {
	return Polygon{[]Point{{0, 0}, {4, 0}, {4, 2}, {2, 2}, {2, 4}, {0, 4}}}
}

// A regular n-gon snapped to the integer grid. With a large enough radius the
// rounding can't make it non-convex.
func RegularPolygon(n int, radius float64) Polygon {
	var points []Point
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points = append(points, Point{
			X: int(math.Round(radius * math.Cos(angle))),
			Y: int(math.Round(radius * math.Sin(angle))),
		})
	}
	return Polygon{points}
}

// A staircase: every other vertex is reflex, so most vertices are not ears.
func Staircase(steps int) Polygon {
	points := []Point{{0, 0}}
	for i := 0; i < steps; i++ {
		points = append(points, Point{2*i + 2, 2 * i}, Point{2*i + 2, 2*i + 2})
	}
	points = append(points, Point{0, 2 * steps})
	return Polygon{points}
}
