package shapes

import "math"

// Ray is a line through Origin with a unit Direction. Its parameter is the
// signed distance from the origin and spans all reals; a Range decides which
// parameters a given query accepts.
type Ray struct {
	Origin    Point
	Direction Vector
}

// NewRay unitizes the direction. A zero direction is kept as is; such a ray
// is degenerate and never intersects anything.
func NewRay(origin Point, direction Vector) Ray {
	return Ray{Origin: origin, Direction: direction.Unitize()}
}

func (r Ray) PointAt(t float64) Point {
	return r.Origin.Add(r.Direction.Scale(t))
}

// ClosestParameter is the unclamped parameter of the point on the ray's line
// nearest to p.
func (r Ray) ClosestParameter(p Point) float64 {
	return p.Sub(r.Origin).Dot(r.Direction)
}

func (r Ray) ClosestPoint(p Point) Point {
	return r.PointAt(r.ClosestParameter(p))
}

func (r Ray) Reverse() Ray {
	return Ray{r.Origin, r.Direction.Reverse()}
}

// BoundingBox is unbounded along every axis the ray moves on.
func (r Ray) BoundingBox() Rectangle {
	span := func(o, d float64) Interval {
		switch {
		case d > 0:
			return Interval{o, math.Inf(1)}
		case d < 0:
			return Interval{math.Inf(-1), o}
		}
		return Interval{o, o}
	}
	return Rectangle{X: span(r.Origin.X, r.Direction.X), Y: span(r.Origin.Y, r.Direction.Y)}
}

// Range restricts which ray parameters count as answers.
type Range int

const (
	// RangeBoth accepts every parameter: the ray behaves as an infinite line.
	RangeBoth Range = iota
	// RangePositive accepts only parameters strictly ahead of the origin.
	RangePositive
	// RangePositiveAndZero accepts the origin and everything ahead of it.
	RangePositiveAndZero
)

// Admits reports whether t is an acceptable parameter under r.
func (r Range) Admits(t float64) bool {
	switch r {
	case RangePositive:
		return t > 0
	case RangePositiveAndZero:
		return t >= 0
	}
	return true
}

// excludesNegative is true for the ranges that pin the lower bound at the
// origin.
func (r Range) excludesNegative() bool {
	return r == RangePositive || r == RangePositiveAndZero
}

func (r Range) String() string {
	switch r {
	case RangeBoth:
		return "both"
	case RangePositive:
		return "positive"
	case RangePositiveAndZero:
		return "positive-and-zero"
	}
	return "unknown"
}
