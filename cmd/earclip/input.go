package main

import (
	"bufio"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	json "github.com/goccy/go-json"
	"github.com/osuushi/earclip"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type polygonReader func(in io.Reader) (earclip.Polygon, error)

var readers = map[string]polygonReader{
	"text":    readText,
	"yaml":    readYAML,
	"svg":     readSVG,
	"geojson": readGeoJSON,
}

// Open the named file (or stdin for "-") and read a polygon from it. Fewer than
// three vertices is reported as earclip.ErrInvalidInputSize.
func readInput(name, format string, stdin io.Reader) (earclip.Polygon, error) {
	in := stdin
	if name != "-" {
		file, err := os.Open(name)
		if err != nil {
			return earclip.Polygon{}, errors.Wrap(err, "opening input")
		}
		defer file.Close()
		in = file
	}

	if format == "auto" {
		format = formatFromExtension(name)
	}
	read, ok := readers[format]
	if !ok {
		return earclip.Polygon{}, errors.Errorf("unknown input format %q", format)
	}

	polygon, err := read(in)
	if err != nil {
		return earclip.Polygon{}, errors.Wrapf(err, "reading %s input", format)
	}
	if len(polygon.Points) < 3 {
		return earclip.Polygon{}, errors.Wrapf(earclip.ErrInvalidInputSize, "got %d vertices", len(polygon.Points))
	}
	return polygon, nil
}

func formatFromExtension(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".svg":
		return "svg"
	case ".json", ".geojson":
		return "geojson"
	}
	return "text"
}

// A vertex count followed by that many "x y" pairs. Line breaks don't matter,
// and anything after the last pair is ignored.
func readText(in io.Reader) (earclip.Polygon, error) {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	nextInt := func(what string) (int, error) {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, err
			}
			return 0, errors.Errorf("%s: unexpected end of input", what)
		}
		value, err := strconv.Atoi(scanner.Text())
		if err != nil {
			return 0, errors.Wrap(err, what)
		}
		return value, nil
	}

	n, err := nextInt("vertex count")
	if err != nil {
		return earclip.Polygon{}, err
	}
	// Checked before reading any coordinates, so a short count fails fast
	if n < 3 {
		return earclip.Polygon{}, errors.Wrapf(earclip.ErrInvalidInputSize, "vertex count %d", n)
	}

	var points []earclip.Point
	for i := 0; i < n; i++ {
		x, err := nextInt("vertex " + strconv.Itoa(i) + " x")
		if err != nil {
			return earclip.Polygon{}, err
		}
		y, err := nextInt("vertex " + strconv.Itoa(i) + " y")
		if err != nil {
			return earclip.Polygon{}, err
		}
		points = append(points, earclip.Point{X: x, Y: y})
	}
	return earclip.Polygon{Points: points}, nil
}

// points: [[x, y], ...]
func readYAML(in io.Reader) (earclip.Polygon, error) {
	var doc struct {
		Points [][]int `yaml:"points"`
	}
	if err := yaml.NewDecoder(in).Decode(&doc); err != nil {
		return earclip.Polygon{}, errors.Wrap(err, "decoding yaml")
	}

	points := make([]earclip.Point, 0, len(doc.Points))
	for i, p := range doc.Points {
		if len(p) != 2 {
			return earclip.Polygon{}, errors.Errorf("point %d: expected [x, y], got %d values", i, len(p))
		}
		points = append(points, earclip.Point{X: p[0], Y: p[1]})
	}
	return earclip.Polygon{Points: points}, nil
}

// The points of the one <polygon> element in the document. Coordinates may be
// separated by commas, whitespace, or both.
func readSVG(in io.Reader) (earclip.Polygon, error) {
	rootEl, err := svgparser.Parse(in, false)
	if err != nil {
		return earclip.Polygon{}, errors.Wrap(err, "parsing svg")
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		return earclip.Polygon{}, errors.Errorf("expected one polygon element, found %d", len(polygons))
	}

	pointString := polygons[0].Attributes["points"]
	coords := strings.Fields(strings.ReplaceAll(pointString, ",", " "))
	if len(coords)%2 != 0 {
		return earclip.Polygon{}, errors.Errorf("odd number of coordinates in %q", pointString)
	}

	points := make([]earclip.Point, 0, len(coords)/2)
	for i := 0; i < len(coords); i += 2 {
		x, err := strconv.Atoi(coords[i])
		if err != nil {
			return earclip.Polygon{}, errors.Wrapf(err, "point %d x", i/2)
		}
		y, err := strconv.Atoi(coords[i+1])
		if err != nil {
			return earclip.Polygon{}, errors.Wrapf(err, "point %d y", i/2)
		}
		points = append(points, earclip.Point{X: x, Y: y})
	}
	return earclip.Polygon{Points: points}, nil
}

// A Polygon geometry, bare or inside a Feature, or the first feature of a
// FeatureCollection. Holes aren't supported, and the closing coordinate of the
// ring is dropped.
func readGeoJSON(in io.Reader) (earclip.Polygon, error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return earclip.Polygon{}, err
	}

	var header struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return earclip.Polygon{}, errors.Wrap(err, "decoding geojson")
	}

	var geometry orb.Geometry
	switch header.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return earclip.Polygon{}, errors.Wrap(err, "decoding feature collection")
		}
		if len(fc.Features) == 0 {
			return earclip.Polygon{}, errors.New("feature collection is empty")
		}
		geometry = fc.Features[0].Geometry
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return earclip.Polygon{}, errors.Wrap(err, "decoding feature")
		}
		geometry = f.Geometry
	default:
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return earclip.Polygon{}, errors.Wrap(err, "decoding geometry")
		}
		geometry = g.Geometry()
	}

	polygon, ok := geometry.(orb.Polygon)
	if !ok {
		if geometry == nil {
			return earclip.Polygon{}, errors.New("no geometry found")
		}
		return earclip.Polygon{}, errors.Errorf("expected a Polygon geometry, got %s", geometry.GeoJSONType())
	}
	if len(polygon) == 0 {
		return earclip.Polygon{}, errors.New("polygon has no rings")
	}
	if len(polygon) > 1 {
		return earclip.Polygon{}, errors.Errorf("polygons with holes are not supported, got %d rings", len(polygon))
	}

	ring := polygon[0]
	if len(ring) > 1 && ring[0].Equal(ring[len(ring)-1]) {
		ring = ring[:len(ring)-1]
	}

	points := make([]earclip.Point, 0, len(ring))
	for i, p := range ring {
		x, xOK := toInt(p[0])
		y, yOK := toInt(p[1])
		if !xOK || !yOK {
			return earclip.Polygon{}, errors.Errorf("point %d: coordinates %v are not integers in range", i, p)
		}
		points = append(points, earclip.Point{X: x, Y: y})
	}
	return earclip.Polygon{Points: points}, nil
}

// Converting a float outside the int range is implementation defined, so those
// are rejected along with fractions. float64(math.MaxInt) rounds up past the
// largest int, hence the strict bound.
func toInt(f float64) (int, bool) {
	if f != math.Trunc(f) || f < math.MinInt || f >= math.MaxInt {
		return 0, false
	}
	return int(f), true
}
