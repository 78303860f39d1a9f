package shapes

import "math"

// Line is the finite segment From→To. Its parameter runs from 0 at From to 1
// at To.
type Line struct {
	From, To Point
}

func NewLine(x0, y0, x1, y1 float64) Line {
	return Line{Point{x0, y0}, Point{x1, y1}}
}

// Direction is the vector From→To; its length is the segment length.
func (l Line) Direction() Vector {
	return l.To.Sub(l.From)
}

func (l Line) Length() float64 {
	return l.Direction().Length()
}

func (l Line) PointAt(t float64) Point {
	return l.From.Add(l.Direction().Scale(t))
}

func (l Line) Midpoint() Point {
	return l.PointAt(0.5)
}

func (l Line) Reverse() Line {
	return Line{l.To, l.From}
}

// ClosestParameter is the parameter in [0,1] of the point on the segment
// nearest to p. A zero-length segment always answers 0.
func (l Line) ClosestParameter(p Point) float64 {
	d := l.Direction()
	lenSq := d.Dot(d)
	if lenSq == 0 {
		return 0
	}
	t := p.Sub(l.From).Dot(d) / lenSq
	return math.Max(0, math.Min(1, t))
}

func (l Line) ClosestPoint(p Point) Point {
	return l.PointAt(l.ClosestParameter(p))
}

func (l Line) DistanceTo(p Point) float64 {
	return l.ClosestPoint(p).DistanceTo(p)
}

func (l Line) BoundingBox() Rectangle {
	return NewRectangle(l.From.X, l.From.Y, l.To.X, l.To.Y)
}
