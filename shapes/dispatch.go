package shapes

import (
	"math"
	"sort"

	"github.com/deardanieldavis/shapetypes-sub000/tolerance"
)

// Intersector finds where a Line, Ray or Polyline meets any Shape. Results
// are the ascending parameters on the first operand. Parameters closer than
// the distance tolerance are merged unless KeepDuplicates is set.
type Intersector struct {
	Tolerance      tolerance.Tolerance
	KeepDuplicates bool
}

func NewIntersector(tol tolerance.Tolerance) Intersector {
	return Intersector{Tolerance: tol}
}

// Line returns the parameters in [0,1] at which l meets s.
func (it Intersector) Line(l Line, s Shape) (params []float64, err error) {
	defer func() {
		if recoveredErr := HandleDispatchPanicRecover(recover()); recoveredErr != nil {
			params = nil
			err = recoveredErr
		}
	}()
	validate(s)
	return it.finish(it.line(l, s, nil)), nil
}

// Ray returns the ray parameters admitted by rng at which r meets s.
func (it Intersector) Ray(r Ray, rng Range, s Shape) (params []float64, err error) {
	defer func() {
		if recoveredErr := HandleDispatchPanicRecover(recover()); recoveredErr != nil {
			params = nil
			err = recoveredErr
		}
	}()
	validate(s)
	return it.finish(it.ray(r, rng, s, nil)), nil
}

// Polyline returns the polyline parameters (segment index plus the position
// along that segment) at which p meets s.
func (it Intersector) Polyline(p Polyline, s Shape) (params []float64, err error) {
	defer func() {
		if recoveredErr := HandleDispatchPanicRecover(recover()); recoveredErr != nil {
			params = nil
			err = recoveredErr
		}
	}()
	validate(s)
	return it.finish(it.polyline(p, s, nil)), nil
}

// validate walks the operand so that an unsupported shape is reported even
// when a bounding-box test would have skipped it.
func validate(s Shape) {
	switch s := s.(type) {
	case Point, Line, Ray, Rectangle, Circle, Polyline, Polygon:
	case Shapes:
		for _, e := range s {
			validate(e)
		}
	default:
		fatalf(ErrUnsupportedShape, "operand %T", s)
	}
}

func (it Intersector) finish(params []float64) []float64 {
	sort.Float64s(params)
	if it.KeepDuplicates || len(params) < 2 {
		return params
	}
	unique := params[:1]
	for _, t := range params[1:] {
		if !it.Tolerance.Equal(t, unique[len(unique)-1]) {
			unique = append(unique, t)
		}
	}
	return unique
}

// overlaps is the bounding-box pre-test, widened by the distance tolerance.
func (it Intersector) overlaps(a, b Rectangle) bool {
	return a.Expand(it.Tolerance.Distance).Overlaps(b)
}

func (it Intersector) line(l Line, s Shape, out []float64) []float64 {
	tol := it.Tolerance
	switch s := s.(type) {
	case Point:
		if t := l.ClosestParameter(s); l.PointAt(t).DistanceTo(s) <= tol.Distance {
			out = append(out, t)
		}
	case Line:
		if ok, t, _ := LineLine(l, s, true, tol); ok {
			out = append(out, t)
		}
	case Ray:
		if ok, _, t := RayLine(s, l, RangeBoth, tol); ok {
			out = append(out, t)
		}
	case Rectangle:
		if it.overlaps(l.BoundingBox(), s) {
			out = it.linePolyline(l, s.Outline(), out)
		}
	case Circle:
		kind, t1, t2 := LineCircle(l, s, tol)
		out = appendCircle(out, kind, t1, t2)
	case Polyline:
		out = it.linePolyline(l, s, out)
	case Polygon:
		if !it.overlaps(l.BoundingBox(), s.BoundingBox()) {
			return out
		}
		out = it.linePolyline(l, s.Boundary, out)
		for _, hole := range s.Holes {
			out = it.linePolyline(l, hole, out)
		}
	case Shapes:
		for _, e := range s {
			out = it.line(l, e, out)
		}
	default:
		fatalf(ErrUnsupportedShape, "line intersection with %T", s)
	}
	return out
}

// linePolyline tests each segment of p after a whole-polyline box test.
func (it Intersector) linePolyline(l Line, p Polyline, out []float64) []float64 {
	if !it.overlaps(l.BoundingBox(), p.BoundingBox()) {
		return out
	}
	for _, seg := range p.Segments() {
		if ok, t, _ := LineLine(l, seg, true, it.Tolerance); ok {
			out = append(out, t)
		}
	}
	return out
}

func (it Intersector) ray(r Ray, rng Range, s Shape, out []float64) []float64 {
	tol := it.Tolerance
	switch s := s.(type) {
	case Point:
		t := r.ClosestParameter(s)
		if !rng.Admits(t) {
			// Behind the origin, the nearest admissible point is the origin
			// itself, if the range allows it.
			t = 0
			if !rng.Admits(t) {
				return out
			}
		}
		if r.PointAt(t).DistanceTo(s) <= tol.Distance {
			out = append(out, t)
		}
	case Line:
		if ok, t, _ := RayLine(r, s, rng, tol); ok {
			out = append(out, t)
		}
	case Ray:
		if ok, t, _ := RayRay(r, s, rng, RangeBoth); ok {
			out = append(out, t)
		}
	case Rectangle:
		if it.overlaps(rayBounds(r, rng), s) {
			out = it.rayPolyline(r, rng, s.Outline(), out)
		}
	case Circle:
		kind, t1, t2 := RayCircle(r, s, rng, tol)
		out = appendCircle(out, kind, t1, t2)
	case Polyline:
		out = it.rayPolyline(r, rng, s, out)
	case Polygon:
		if !it.overlaps(rayBounds(r, rng), s.BoundingBox()) {
			return out
		}
		out = it.rayPolyline(r, rng, s.Boundary, out)
		for _, hole := range s.Holes {
			out = it.rayPolyline(r, rng, hole, out)
		}
	case Shapes:
		for _, e := range s {
			out = it.ray(r, rng, e, out)
		}
	default:
		fatalf(ErrUnsupportedShape, "ray intersection with %T", s)
	}
	return out
}

func (it Intersector) rayPolyline(r Ray, rng Range, p Polyline, out []float64) []float64 {
	if !it.overlaps(rayBounds(r, rng), p.BoundingBox()) {
		return out
	}
	for _, seg := range p.Segments() {
		if ok, t, _ := RayLine(r, seg, rng, it.Tolerance); ok {
			out = append(out, t)
		}
	}
	return out
}

// rayBounds is the box swept by the admissible part of the ray. Under
// RangeBoth the ray is a full line.
func rayBounds(r Ray, rng Range) Rectangle {
	if rng.excludesNegative() {
		return r.BoundingBox()
	}
	span := func(o, d float64) Interval {
		if d == 0 {
			return Interval{o, o}
		}
		return Interval{math.Inf(-1), math.Inf(1)}
	}
	return Rectangle{X: span(r.Origin.X, r.Direction.X), Y: span(r.Origin.Y, r.Direction.Y)}
}

func (it Intersector) polyline(p Polyline, s Shape, out []float64) []float64 {
	if !it.overlaps(p.BoundingBox(), operandBounds(s)) {
		return out
	}
	var local []float64
	for i, seg := range p.Segments() {
		local = it.line(seg, s, local[:0])
		for _, t := range local {
			out = append(out, float64(i)+t)
		}
	}
	return out
}

// operandBounds is the box of s as the dispatcher sees it: a Ray operand
// stands for its whole line.
func operandBounds(s Shape) Rectangle {
	switch s := s.(type) {
	case Ray:
		return rayBounds(s, RangeBoth)
	case Shapes:
		r := NewRectangleFromPoints()
		for _, e := range s {
			r = r.Union(operandBounds(e))
		}
		return r
	}
	return s.BoundingBox()
}

func appendCircle(out []float64, kind CircleIntersection, t1, t2 float64) []float64 {
	switch kind {
	case CircleSingle:
		out = append(out, t1)
	case CircleMultiple:
		out = append(out, t1, t2)
	}
	return out
}
