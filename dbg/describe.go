package dbg

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/deardanieldavis/shapetypes-sub000/shapes"
	"github.com/kr/pretty"
	"github.com/logrusorgru/aurora"
)

// Describe gives a short, coloured, one-line summary of s.
func Describe(s shapes.Shape) string {
	return describe(s, true)
}

func describe(s shapes.Shape, colour bool) string {
	kind := func(name string) string {
		if colour {
			return aurora.Cyan(name).String()
		}
		return name
	}
	switch s := s.(type) {
	case nil:
		return "Ø"
	case shapes.Point:
		return kind("point") + " " + point(s)
	case shapes.Line:
		return fmt.Sprintf("%s %s→%s", kind("line"), point(s.From), point(s.To))
	case shapes.Ray:
		return fmt.Sprintf("%s %s dir %s", kind("ray"), point(s.Origin), point(shapes.Point(s.Direction)))
	case shapes.Rectangle:
		return fmt.Sprintf("%s %s→%s", kind("rectangle"), point(s.Min()), point(s.Max()))
	case shapes.Circle:
		return fmt.Sprintf("%s %s r=%s", kind("circle"), point(s.Center), num(s.Radius))
	case shapes.Polyline:
		return kind("polyline") + " " + points(s.Points())
	case shapes.Polygon:
		d := kind("polygon") + " " + points(s.Boundary.Points())
		for _, h := range s.Holes {
			d += " hole " + points(h.Points())
		}
		return d
	case shapes.Shapes:
		parts := make([]string, len(s))
		for i, e := range s {
			parts[i] = describe(e, colour)
		}
		return fmt.Sprintf("%s(%s)", kind("shapes"), strings.Join(parts, "; "))
	}
	return fmt.Sprintf("%T", s)
}

// Containment colours a containment result for the terminal.
func Containment(c shapes.Containment) string {
	switch c {
	case shapes.Inside:
		return aurora.Green(c.String()).String()
	case shapes.Outside:
		return aurora.Red(c.String()).String()
	case shapes.Coincident:
		return aurora.Yellow(c.String()).String()
	}
	return aurora.Magenta(c.String()).String()
}

// Params formats intersection parameters compactly.
func Params(params []float64) string {
	if len(params) == 0 {
		return aurora.Red("none").String()
	}
	parts := make([]string, len(params))
	for i, t := range params {
		parts[i] = num(t)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Dump pretty-prints any value, unexported fields included.
func Dump(v interface{}) string {
	return pretty.Sprint(v)
}

// Diff lists the differences between two values, one per line.
func Diff(a, b interface{}) []string {
	return pretty.Diff(a, b)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

func point(p shapes.Point) string {
	return "(" + num(p.X) + "," + num(p.Y) + ")"
}

func points(pts []shapes.Point) string {
	if len(pts) > 4 {
		return fmt.Sprintf("%s %s … %s (%d points)", point(pts[0]), point(pts[1]), point(pts[len(pts)-1]), len(pts))
	}
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = point(p)
	}
	return strings.Join(parts, " ")
}
