// Package fixture loads test and demo geometry. SVG files are parsed for
// their polygon, polyline, line, rect and circle elements. This is not a
// full (or even correct) SVG reader: transforms, paths and units are
// ignored.
//
// Embedded fixtures are available by name from the fixtures/ directory, sans
// extension.
package fixture

import (
	"embed"
	"io"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/deardanieldavis/shapetypes-sub000/shapes"
	"github.com/deardanieldavis/shapetypes-sub000/tolerance"
	"github.com/pkg/errors"
)

//go:embed fixtures
var fixtures embed.FS

// Scene is a parsed SVG. The polygon elements make up Region: the first is
// the boundary and any further ones are holes. Every other element becomes
// a probe shape.
type Scene struct {
	Region shapes.Shape
	Probes shapes.Shapes
}

// Names lists the embedded fixtures.
func Names() []string {
	entries, _ := fixtures.ReadDir("fixtures")
	var names []string
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	sort.Strings(names)
	return names
}

// Load parses an embedded fixture.
func Load(name string, tol tolerance.Tolerance) (*Scene, error) {
	f, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		return nil, errors.Wrapf(err, "could not load fixture %q", name)
	}
	defer f.Close()
	scene, err := Parse(f, tol)
	return scene, errors.Wrapf(err, "fixture %q", name)
}

// MustLoad is Load for tests, panicking on error.
func MustLoad(name string) *Scene {
	scene, err := Load(name, tolerance.Default())
	if err != nil {
		panic(err)
	}
	return scene
}

// Parse reads an SVG document.
func Parse(r io.Reader, tol tolerance.Tolerance) (*Scene, error) {
	root, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	var rings [][]shapes.Point
	scene := &Scene{}
	var walk func(el *svgparser.Element) error
	walk = func(el *svgparser.Element) error {
		switch el.Name {
		case "polygon":
			pts, err := parsePoints(el.Attributes["points"])
			if err != nil {
				return err
			}
			rings = append(rings, pts)
		case "polyline":
			pts, err := parsePoints(el.Attributes["points"])
			if err != nil {
				return err
			}
			scene.Probes = append(scene.Probes, shapes.NewPolyline(pts...))
		case "line":
			v, err := floats(el.Attributes, "x1", "y1", "x2", "y2")
			if err != nil {
				return err
			}
			scene.Probes = append(scene.Probes, shapes.NewLine(v[0], v[1], v[2], v[3]))
		case "rect":
			v, err := floats(el.Attributes, "x", "y", "width", "height")
			if err != nil {
				return err
			}
			scene.Probes = append(scene.Probes, shapes.NewRectangle(v[0], v[1], v[0]+v[2], v[1]+v[3]))
		case "circle":
			v, err := floats(el.Attributes, "cx", "cy", "r")
			if err != nil {
				return err
			}
			c, err := shapes.NewCircle(shapes.Point{X: v[0], Y: v[1]}, v[2])
			if err != nil {
				return err
			}
			scene.Probes = append(scene.Probes, c)
		}
		for _, child := range el.Children {
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(root); err != nil {
		return nil, err
	}

	if len(rings) > 0 {
		region, err := shapes.FromRings(rings, tol)
		if err != nil {
			return nil, errors.Wrap(err, "building region")
		}
		scene.Region = region
	}
	return scene, nil
}

// parsePoints reads an SVG points list. Coordinates may be separated by
// commas, whitespace or both.
func parsePoints(s string) ([]shapes.Point, error) {
	fields := strings.Fields(strings.ReplaceAll(s, ",", " "))
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", s)
	}
	points := make([]shapes.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		points = append(points, shapes.Point{X: x, Y: y})
	}
	return points, nil
}

func floats(attrs map[string]string, keys ...string) ([]float64, error) {
	v := make([]float64, len(keys))
	for i, k := range keys {
		raw, ok := attrs[k]
		if !ok {
			return nil, errors.Errorf("missing attribute %q", k)
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid %s value %q", k, raw)
		}
		v[i] = f
	}
	return v, nil
}
