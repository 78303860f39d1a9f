package shapes

import (
	"math"
	"sort"

	"github.com/ctessum/geom"
	"github.com/ctessum/polyclip-go"
	"github.com/deardanieldavis/shapetypes-sub000/tolerance"
	"github.com/pkg/errors"
)

// FromRings rebuilds a shape from coordinate rings. A single ring becomes a
// closed Polyline; several become a Polygon whose first ring is the
// boundary and the rest are holes. Rings that are not explicitly closed are
// closed by repeating their first point.
func FromRings(rings [][]Point, tol tolerance.Tolerance) (Shape, error) {
	if len(rings) == 0 {
		return nil, errors.Wrap(ErrTooFewPoints, "no rings")
	}
	lines := make([]Polyline, len(rings))
	for i, ring := range rings {
		pl, err := ringToPolyline(ring, tol)
		if err != nil {
			return nil, errors.Wrapf(err, "ring %d", i)
		}
		lines[i] = pl
	}
	if len(lines) == 1 {
		return lines[0], nil
	}
	return NewPolygon(lines[0], lines[1:]...), nil
}

func ringToPolyline(ring []Point, tol tolerance.Tolerance) (Polyline, error) {
	pts := make([]Point, len(ring), len(ring)+1)
	copy(pts, ring)
	if len(pts) > 0 && !pts[0].Equals(pts[len(pts)-1], tol) {
		pts = append(pts, pts[0])
	}
	if len(pts) < 4 {
		return Polyline{}, errors.Wrapf(ErrTooFewPoints, "ring of %d points", len(ring))
	}
	return NewPolyline(pts...), nil
}

// rings lists the closed rings of a clip operand.
func rings(s Shape, tol tolerance.Tolerance) ([][]Point, error) {
	switch s := s.(type) {
	case Rectangle:
		return [][]Point{s.Outline().Ring()}, nil
	case Polyline:
		if !s.IsClosed(tol) {
			return nil, errors.Wrap(ErrNotClosed, "boolean operand")
		}
		return [][]Point{s.Ring()}, nil
	case Polygon:
		for i, ring := range s.Edges() {
			if !ring.IsClosed(tol) {
				return nil, errors.Wrapf(ErrNotClosed, "boolean operand ring %d", i)
			}
		}
		return s.Rings(), nil
	case Shapes:
		var all [][]Point
		for _, e := range s {
			r, err := rings(e, tol)
			if err != nil {
				return nil, err
			}
			all = append(all, r...)
		}
		return all, nil
	}
	return nil, errors.Wrapf(ErrUnsupportedShape, "boolean operand %T", s)
}

// toPolyClip drops the closing point of every ring; the clip engine's
// contours are implicitly closed.
func toPolyClip(rs [][]Point) polyclip.Polygon {
	o := make(polyclip.Polygon, 0, len(rs))
	for _, r := range rs {
		c := make(polyclip.Contour, 0, len(r))
		for _, p := range r[:len(r)-1] {
			c = append(c, polyclip.Point(p))
		}
		o = append(o, c)
	}
	return o
}

func fromPolyClip(p polyclip.Polygon, tol tolerance.Tolerance) []Shape {
	var lines []Polyline
	for _, c := range p {
		ring := make([]Point, len(c))
		for i, pt := range c {
			ring[i] = Point(pt)
		}
		pl, err := ringToPolyline(ring, tol)
		if err != nil {
			// Slivers left behind by the clip engine carry no area.
			continue
		}
		lines = append(lines, pl)
	}
	return nest(lines, tol)
}

// nest groups rings into shapes by containment. A ring enclosed by an even
// number of other rings is a boundary; one enclosed by an odd number is a
// hole of the smallest ring around it.
func nest(lines []Polyline, tol tolerance.Tolerance) []Shape {
	sort.SliceStable(lines, func(i, j int) bool {
		return math.Abs(lines[i].SignedArea()) > math.Abs(lines[j].SignedArea())
	})
	depth := make([]int, len(lines))
	parent := make([]int, len(lines))
	for i := range lines {
		parent[i] = -1
		for j := 0; j < i; j++ {
			if encloses(lines[j], lines[i], tol) {
				depth[i]++
				parent[i] = j
			}
		}
	}

	var result []Shape
	holes := make(map[int][]Polyline)
	for i := range lines {
		if depth[i]%2 == 1 && parent[i] >= 0 {
			holes[parent[i]] = append(holes[parent[i]], lines[i])
		}
	}
	for i := range lines {
		if depth[i]%2 == 1 {
			continue
		}
		if hs := holes[i]; len(hs) > 0 {
			result = append(result, NewPolygon(lines[i], hs...))
		} else {
			result = append(result, lines[i])
		}
	}
	return result
}

// encloses decides with the first vertex of inner that is not on outer.
func encloses(outer, inner Polyline, tol tolerance.Tolerance) bool {
	for _, p := range inner.points {
		switch outer.classify(p, tol) {
		case Inside:
			return true
		case Outside:
			return false
		}
	}
	return false
}

func boolean(a, b Shape, op polyclip.Op, tol tolerance.Tolerance) ([]Shape, error) {
	ra, err := rings(a, tol)
	if err != nil {
		return nil, err
	}
	rb, err := rings(b, tol)
	if err != nil {
		return nil, err
	}
	return fromPolyClip(toPolyClip(ra).Construct(op, toPolyClip(rb)), tol), nil
}

// Union returns the region covered by a or b. Operands may be closed
// polylines, rectangles, polygons or lists of these.
func Union(a, b Shape, tol tolerance.Tolerance) ([]Shape, error) {
	return boolean(a, b, polyclip.UNION, tol)
}

// Intersection returns the region covered by both a and b.
func Intersection(a, b Shape, tol tolerance.Tolerance) ([]Shape, error) {
	return boolean(a, b, polyclip.INTERSECTION, tol)
}

// Difference returns the region of a not covered by b.
func Difference(a, b Shape, tol tolerance.Tolerance) ([]Shape, error) {
	return boolean(a, b, polyclip.DIFFERENCE, tol)
}

// XOr returns the region covered by exactly one of a and b.
func XOr(a, b Shape, tol tolerance.Tolerance) ([]Shape, error) {
	return boolean(a, b, polyclip.XOR, tol)
}

// ToGeom converts a closed shape to a geom.Polygon.
func ToGeom(s Shape, tol tolerance.Tolerance) (geom.Polygon, error) {
	rs, err := rings(s, tol)
	if err != nil {
		return nil, err
	}
	g := make(geom.Polygon, len(rs))
	for i, r := range rs {
		g[i] = make([]geom.Point, len(r))
		for j, p := range r {
			g[i][j] = geom.Point(p)
		}
	}
	return g, nil
}

// FromGeom converts a geom.Polygon with FromRings.
func FromGeom(g geom.Polygon, tol tolerance.Tolerance) (Shape, error) {
	rs := make([][]Point, len(g))
	for i, r := range g {
		rs[i] = make([]Point, len(r))
		for j, p := range r {
			rs[i][j] = Point(p)
		}
	}
	return FromRings(rs, tol)
}
