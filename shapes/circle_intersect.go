package shapes

import (
	"math"

	"github.com/deardanieldavis/shapetypes-sub000/tolerance"
)

// CircleIntersection classifies how a segment or ray meets a circle.
type CircleIntersection int

const (
	CircleNone CircleIntersection = iota
	// CircleSingle is a tangent touch, or a crossing where the other root
	// fell outside the admissible parameters.
	CircleSingle
	// CircleMultiple is two distinct crossings.
	CircleMultiple
)

func (c CircleIntersection) String() string {
	switch c {
	case CircleSingle:
		return "single"
	case CircleMultiple:
		return "multiple"
	}
	return "none"
}

// LineCircle intersects a segment with a circle. Roots outside [0,1],
// widened by the distance tolerance, are dropped. For CircleSingle both
// returned parameters are the same root.
func LineCircle(l Line, c Circle, tol tolerance.Tolerance) (kind CircleIntersection, t1, t2 float64) {
	t1, t2, ok := quadraticRoots(l.From, l.Direction(), c)
	if !ok {
		return CircleNone, 0, 0
	}
	in1 := tol.Within(t1, 0, 1)
	in2 := tol.Within(t2, 0, 1)
	if math.Abs(t1-t2) < tol.Distance {
		if in1 {
			return CircleSingle, t1, t1
		}
		return CircleNone, 0, 0
	}
	return classifyRoots(t1, t2, in1, in2)
}

// RayCircle intersects a ray with a circle. Each root is filtered by rng
// before classification, so two crossings can degrade to one, or to none.
func RayCircle(r Ray, c Circle, rng Range, tol tolerance.Tolerance) (kind CircleIntersection, t1, t2 float64) {
	t1, t2, ok := quadraticRoots(r.Origin, r.Direction, c)
	if !ok {
		return CircleNone, 0, 0
	}
	in1 := rng.Admits(t1)
	in2 := rng.Admits(t2)
	if in1 && in2 && math.Abs(t1-t2) < tol.Distance {
		return CircleSingle, t1, t1
	}
	return classifyRoots(t1, t2, in1, in2)
}

func classifyRoots(t1, t2 float64, in1, in2 bool) (CircleIntersection, float64, float64) {
	switch {
	case in1 && in2:
		return CircleMultiple, t1, t2
	case in1:
		return CircleSingle, t1, t1
	case in2:
		return CircleSingle, t2, t2
	}
	return CircleNone, 0, 0
}

// quadraticRoots substitutes o+t*d into |x-center|² = r² and solves
// a·t² + b·t + c = 0. The roots come back ordered, t1 <= t2. ok is false for
// a negative discriminant or a zero direction.
func quadraticRoots(o Point, d Vector, circle Circle) (t1, t2 float64, ok bool) {
	f := o.Sub(circle.Center)
	a := d.Dot(d)
	if a == 0 {
		return 0, 0, false
	}
	b := 2 * f.Dot(d)
	c := f.Dot(f) - circle.Radius*circle.Radius
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, 0, false
	}
	sq := math.Sqrt(disc)
	return (-b - sq) / (2 * a), (-b + sq) / (2 * a), true
}
