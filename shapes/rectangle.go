package shapes

import (
	"math"

	"github.com/deardanieldavis/shapetypes-sub000/tolerance"
)

// Interval is a closed range of values. Min <= Max holds for every interval
// built with NewInterval.
type Interval struct {
	Min, Max float64
}

// NewInterval sorts a and b into an interval.
func NewInterval(a, b float64) Interval {
	if a > b {
		a, b = b, a
	}
	return Interval{a, b}
}

func (i Interval) Length() float64 {
	return i.Max - i.Min
}

func (i Interval) Mid() float64 {
	return (i.Min + i.Max) / 2
}

// Contains reports whether v lies in the interval, widened by the distance
// tolerance.
func (i Interval) Contains(v float64, tol tolerance.Tolerance) bool {
	return tol.Within(v, i.Min, i.Max)
}

func (i Interval) Overlaps(o Interval) bool {
	return i.Min <= o.Max && o.Min <= i.Max
}

// Expand widens the interval by d on both sides.
func (i Interval) Expand(d float64) Interval {
	return Interval{i.Min - d, i.Max + d}
}

func (i Interval) Union(o Interval) Interval {
	return Interval{math.Min(i.Min, o.Min), math.Max(i.Max, o.Max)}
}

// Rectangle is an axis-aligned box.
type Rectangle struct {
	X, Y Interval
}

// NewRectangle builds a box from two opposite corners given in any order.
func NewRectangle(x0, y0, x1, y1 float64) Rectangle {
	return Rectangle{X: NewInterval(x0, x1), Y: NewInterval(y0, y1)}
}

// NewRectangleFromPoints gives the smallest box containing all of points.
// With no points it returns an empty box that contains nothing.
func NewRectangleFromPoints(points ...Point) Rectangle {
	r := Rectangle{
		X: Interval{math.Inf(1), math.Inf(-1)},
		Y: Interval{math.Inf(1), math.Inf(-1)},
	}
	for _, p := range points {
		r.X.Min = math.Min(r.X.Min, p.X)
		r.X.Max = math.Max(r.X.Max, p.X)
		r.Y.Min = math.Min(r.Y.Min, p.Y)
		r.Y.Max = math.Max(r.Y.Max, p.Y)
	}
	return r
}

func (r Rectangle) Empty() bool {
	return r.X.Max < r.X.Min || r.Y.Max < r.Y.Min
}

func (r Rectangle) Min() Point {
	return Point{r.X.Min, r.Y.Min}
}

func (r Rectangle) Max() Point {
	return Point{r.X.Max, r.Y.Max}
}

func (r Rectangle) Center() Point {
	return Point{r.X.Mid(), r.Y.Mid()}
}

func (r Rectangle) Area() float64 {
	return r.X.Length() * r.Y.Length()
}

// Contains reports whether p is inside the box or within the distance
// tolerance of it.
func (r Rectangle) Contains(p Point, tol tolerance.Tolerance) bool {
	return r.X.Contains(p.X, tol) && r.Y.Contains(p.Y, tol)
}

func (r Rectangle) Overlaps(o Rectangle) bool {
	return r.X.Overlaps(o.X) && r.Y.Overlaps(o.Y)
}

func (r Rectangle) Expand(d float64) Rectangle {
	return Rectangle{X: r.X.Expand(d), Y: r.Y.Expand(d)}
}

func (r Rectangle) Union(o Rectangle) Rectangle {
	return Rectangle{X: r.X.Union(o.X), Y: r.Y.Union(o.Y)}
}

func (r Rectangle) BoundingBox() Rectangle {
	return r
}

// Corners lists the corners counter-clockwise from the minimum corner.
func (r Rectangle) Corners() [4]Point {
	return [4]Point{
		{r.X.Min, r.Y.Min},
		{r.X.Max, r.Y.Min},
		{r.X.Max, r.Y.Max},
		{r.X.Min, r.Y.Max},
	}
}

// Outline is the closed, counter-clockwise polyline around the box.
func (r Rectangle) Outline() Polyline {
	c := r.Corners()
	return NewPolyline(c[0], c[1], c[2], c[3], c[0])
}
