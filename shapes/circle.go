package shapes

import (
	"math"

	"github.com/deardanieldavis/shapetypes-sub000/tolerance"
	"github.com/pkg/errors"
)

// Circle has a strictly positive radius.
type Circle struct {
	Center Point
	Radius float64
}

// NewCircle returns ErrNonPositiveRadius unless radius > 0.
func NewCircle(center Point, radius float64) (Circle, error) {
	if !(radius > 0) {
		return Circle{}, errors.Wrapf(ErrNonPositiveRadius, "radius %g", radius)
	}
	return Circle{Center: center, Radius: radius}, nil
}

// PointAt gives the point on the circle at angle radians counter-clockwise
// from the x axis.
func (c Circle) PointAt(angle float64) Point {
	return Point{c.Center.X + c.Radius*math.Cos(angle), c.Center.Y + c.Radius*math.Sin(angle)}
}

// ClosestPoint is the point on the circumference nearest to p. For the
// center itself every point is equally close; the one at angle 0 is used.
func (c Circle) ClosestPoint(p Point) Point {
	v := p.Sub(c.Center)
	if v.Length() == 0 {
		return c.PointAt(0)
	}
	return c.Center.Add(v.Unitize().Scale(c.Radius))
}

// Contains classifies p against the disc bounded by the circle.
func (c Circle) Contains(p Point, tol tolerance.Tolerance) Containment {
	d := p.DistanceTo(c.Center)
	switch {
	case tol.Equal(d, c.Radius):
		return Coincident
	case d < c.Radius:
		return Inside
	}
	return Outside
}

func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

func (c Circle) BoundingBox() Rectangle {
	return NewRectangle(c.Center.X-c.Radius, c.Center.Y-c.Radius, c.Center.X+c.Radius, c.Center.Y+c.Radius)
}
