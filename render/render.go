// Package render rasterises shapes, intersection markers and classified
// points with gg. It exists for eyeballing results, so it favours legibility
// over fidelity: line widths and marker sizes are in pixels whatever the
// scale.
package render

import (
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/deardanieldavis/shapetypes-sub000/dbg"
	"github.com/deardanieldavis/shapetypes-sub000/shapes"
	"github.com/deardanieldavis/shapetypes-sub000/tolerance"
	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// Padding around the drawing, in pixels, so that rays visibly run off the
// edge.
const padding = 20

type Canvas struct {
	c       *gg.Context
	inverse gg.Matrix
	scale   float64
	labels  bool
}

// New sets up a canvas showing world at scale pixels per unit, with the
// origin at the bottom left.
func New(world shapes.Rectangle, scale float64) *Canvas {
	if world.Empty() {
		world = shapes.NewRectangle(0, 0, 1, 1)
	}
	minX, minY := world.X.Min, world.Y.Min
	width := int(scale*world.X.Length()) + padding*2
	height := int(scale*world.Y.Length()) + padding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetFillRuleEvenOdd()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(padding, padding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	// gg can't invert its matrix, so build the inverse by reversing the
	// steps above.
	inverse := gg.Identity().
		Translate(minX, minY).
		Scale(1/scale, 1/scale).
		Translate(-padding, -padding).
		Scale(1, -1).
		Translate(0, -float64(height))

	c.SetLineWidth(2)
	return &Canvas{c: c, inverse: inverse, scale: scale}
}

// Fit sizes a canvas to hold every shape. Rays contribute only their origin.
func Fit(scale float64, ss ...shapes.Shape) *Canvas {
	return New(Bounds(ss...), scale)
}

// Bounds is the union of the finite parts of the shapes' bounding boxes.
func Bounds(ss ...shapes.Shape) shapes.Rectangle {
	r := shapes.NewRectangleFromPoints()
	for _, s := range ss {
		switch s := s.(type) {
		case nil:
		case shapes.Ray:
			r = r.Union(s.Origin.BoundingBox())
		case shapes.Shapes:
			r = r.Union(Bounds(s...))
		default:
			r = r.Union(s.BoundingBox())
		}
	}
	return r
}

// WithLabels makes Shape write each shape's debug name next to it.
func (cv *Canvas) WithLabels() *Canvas {
	cv.labels = true
	return cv
}

// Visible is the world rectangle covered by the canvas, padding included.
func (cv *Canvas) Visible() shapes.Rectangle {
	x0, y0 := cv.inverse.TransformPoint(0, 0)
	x1, y1 := cv.inverse.TransformPoint(float64(cv.c.Width()), float64(cv.c.Height()))
	return shapes.NewRectangle(x0, y0, x1, y1)
}

// Shape draws s. Closed regions are filled, everything else is stroked.
func (cv *Canvas) Shape(s shapes.Shape) {
	c := cv.c
	var anchor shapes.Point
	switch s := s.(type) {
	case shapes.Point:
		cv.dot(s, 3)
		c.SetRGB(1, 1, 1)
		c.Fill()
		anchor = s
	case shapes.Line:
		c.MoveTo(s.From.X, s.From.Y)
		c.LineTo(s.To.X, s.To.Y)
		cv.stroke(1, 1, 1)
		anchor = s.Midpoint()
	case shapes.Ray:
		anchor = s.Origin
		// Only the part on the canvas gets drawn.
		ok, span := shapes.RayRectangle(s, cv.Visible(), shapes.RangePositiveAndZero)
		if !ok {
			return
		}
		from, to := s.PointAt(span.Min), s.PointAt(span.Max)
		c.MoveTo(from.X, from.Y)
		c.LineTo(to.X, to.Y)
		cv.stroke(1, 0.6, 0)
	case shapes.Rectangle:
		cv.region(s.Outline())
		anchor = s.Center()
	case shapes.Circle:
		c.DrawCircle(s.Center.X, s.Center.Y, s.Radius)
		cv.fillAndStroke()
		anchor = s.Center
	case shapes.Polyline:
		if s.IsClosed(tolerance.Default()) {
			cv.region(s)
		} else {
			cv.path(s, false)
			cv.stroke(0, 1, 1)
		}
		anchor = s.BoundingBox().Center()
	case shapes.Polygon:
		cv.region(s.Edges()...)
		anchor = s.BoundingBox().Center()
	case shapes.Shapes:
		for _, e := range s {
			cv.Shape(e)
		}
		return
	default:
		return
	}
	if cv.labels {
		cv.label(dbg.Name(s), anchor)
	}
}

// Markers draws a cross at each point, such as the points at the parameters
// returned by an Intersector.
func (cv *Canvas) Markers(pts ...shapes.Point) {
	c := cv.c
	d := 5 / cv.scale
	for _, p := range pts {
		c.MoveTo(p.X-d, p.Y-d)
		c.LineTo(p.X+d, p.Y+d)
		c.MoveTo(p.X-d, p.Y+d)
		c.LineTo(p.X+d, p.Y-d)
	}
	cv.stroke(1, 0, 1)
}

// Classified draws p coloured by where it sits relative to a boundary.
func (cv *Canvas) Classified(p shapes.Point, in shapes.Containment) {
	cv.dot(p, 4)
	switch in {
	case shapes.Inside:
		cv.c.SetRGB(0, 1, 0)
	case shapes.Outside:
		cv.c.SetRGB(1, 0, 0)
	case shapes.Coincident:
		cv.c.SetRGB(1, 1, 0)
	default:
		cv.c.SetRGB(0.5, 0.5, 0.5)
	}
	cv.c.Fill()
}

func (cv *Canvas) Image() image.Image {
	return cv.c.Image()
}

func (cv *Canvas) SavePNG(path string) error {
	return errors.Wrapf(cv.c.SavePNG(path), "saving %s", path)
}

func (cv *Canvas) EncodePNG(w io.Writer) error {
	return cv.c.EncodePNG(w)
}

// Cat prints the image inline in the terminal (iTerm only).
func (cv *Canvas) Cat(w io.Writer) error {
	dir, err := os.MkdirTemp("", "shapetypes")
	if err != nil {
		return errors.Wrap(err, "creating temp dir")
	}
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "render.png")
	if err := cv.SavePNG(path); err != nil {
		return err
	}
	imgcat.CatFile(path, w)
	return nil
}

func (cv *Canvas) dot(p shapes.Point, pixels float64) {
	cv.c.DrawCircle(p.X, p.Y, pixels/cv.scale)
}

func (cv *Canvas) path(p shapes.Polyline, close bool) {
	pts := p.Points()
	if len(pts) == 0 {
		return
	}
	cv.c.NewSubPath()
	cv.c.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		cv.c.LineTo(pt.X, pt.Y)
	}
	if close {
		cv.c.ClosePath()
	}
}

// region fills the rings with the even-odd rule, so holes stay empty.
func (cv *Canvas) region(rings ...shapes.Polyline) {
	for _, r := range rings {
		cv.path(r, true)
	}
	cv.fillAndStroke()
}

func (cv *Canvas) fillAndStroke() {
	cv.c.SetRGB(0, 0.5, 0)
	cv.c.FillPreserve()
	cv.stroke(0, 1, 1)
}

func (cv *Canvas) stroke(r, g, b float64) {
	cv.c.SetRGB(r, g, b)
	cv.c.Stroke()
}

func (cv *Canvas) label(text string, at shapes.Point) {
	c := cv.c
	// Text is drawn in pixel space, or it would come out upside down.
	x, y := c.TransformPoint(at.X, at.Y)
	c.Push()
	c.Identity()
	c.SetRGB(1, 1, 1)
	c.DrawStringAnchored(text, x, y, 0.5, 0.5)
	c.Pop()
}
