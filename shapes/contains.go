package shapes

import (
	"github.com/deardanieldavis/shapetypes-sub000/tolerance"
	"github.com/pkg/errors"
)

// Containment is where a point sits relative to a closed boundary.
type Containment int

const (
	// Undefined is the answer for a boundary that is not closed.
	Undefined Containment = iota
	Outside
	Inside
	// Coincident means on the boundary, within the distance tolerance.
	Coincident
)

func (c Containment) String() string {
	switch c {
	case Outside:
		return "outside"
	case Inside:
		return "inside"
	case Coincident:
		return "coincident"
	}
	return "undefined"
}

// HorizontalRayCrosses reports whether the ray from p towards +x crosses
// seg, and if so at which segment parameter. The segment is treated as
// half-open in y, so a ray through a shared vertex is counted once.
//
// Segments entirely above, entirely below, or entirely behind p are
// rejected before any division.
func HorizontalRayCrosses(p Point, seg Line) (bool, float64) {
	a, b := seg.From, seg.To
	if (a.Y > p.Y) == (b.Y > p.Y) {
		return false, 0
	}
	if a.X < p.X && b.X < p.X {
		return false, 0
	}
	t := (p.Y - a.Y) / (b.Y - a.Y)
	x := a.X + t*(b.X-a.X)
	if x <= p.X {
		return false, 0
	}
	return true, t
}

// CrossingCount counts how many edges of the ring a horizontal ray from p
// crosses. The edge from the last point back to the first is included
// unless the two points are identical.
func CrossingCount(ring Polyline, p Point) int {
	count := 0
	for _, seg := range ring.Segments() {
		if crosses, _ := HorizontalRayCrosses(p, seg); crosses {
			count++
		}
	}
	if n := ring.PointCount(); n > 1 && ring.Start() != ring.End() {
		if crosses, _ := HorizontalRayCrosses(p, Line{ring.End(), ring.Start()}); crosses {
			count++
		}
	}
	return count
}

// Contains classifies pt against the closed polyline. It returns Undefined
// and ErrNotClosed if the polyline is open.
func (p Polyline) Contains(pt Point, tol tolerance.Tolerance) (Containment, error) {
	if len(p.points) == 0 {
		return Undefined, errors.Wrap(ErrNotClosed, "empty polyline")
	}
	if !p.IsClosed(tol) {
		return Undefined, errors.Wrapf(ErrNotClosed, "%d points from %v to %v", len(p.points), p.Start(), p.End())
	}
	return p.classify(pt, tol), nil
}

// classify assumes p is closed.
func (p Polyline) classify(pt Point, tol tolerance.Tolerance) Containment {
	if !p.BoundingBox().Contains(pt, tol) {
		return Outside
	}
	if p.DistanceTo(pt) <= tol.Distance {
		return Coincident
	}
	if CrossingCount(p, pt)%2 == 1 {
		return Inside
	}
	return Outside
}

// Contains classifies pt against the polygon. A point inside a hole is
// outside the polygon, and a point on a hole's edge is coincident.
func (p Polygon) Contains(pt Point, tol tolerance.Tolerance) (Containment, error) {
	for i, ring := range p.Edges() {
		if !ring.IsClosed(tol) {
			if ring.PointCount() == 0 {
				return Undefined, errors.Wrapf(ErrNotClosed, "ring %d is empty", i)
			}
			return Undefined, errors.Wrapf(ErrNotClosed, "ring %d", i)
		}
	}

	switch p.Boundary.classify(pt, tol) {
	case Outside:
		return Outside, nil
	case Coincident:
		return Coincident, nil
	}
	for _, hole := range p.Holes {
		switch hole.classify(pt, tol) {
		case Inside:
			return Outside, nil
		case Coincident:
			return Coincident, nil
		}
	}
	return Inside, nil
}
