package shapes

import (
	"math/rand"
	"testing"

	"github.com/ctessum/geom"
	"github.com/deardanieldavis/shapetypes-sub000/tolerance"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRings(t *testing.T) {
	t.Run("single ring round trip", func(t *testing.T) {
		s := star(0, 0, 10, 4, 5)
		got, err := FromRings([][]Point{s.Ring()}, tol)
		require.NoError(t, err)
		pl, ok := got.(Polyline)
		require.True(t, ok, "got %T", got)
		assert.Equal(t, s.Points(), pl.Points())
	})

	t.Run("polygon round trip", func(t *testing.T) {
		poly := NewPolygon(square(0, 0, 10, 10), square(1, 1, 2, 2), square(5, 5, 8, 8).Reverse())
		got, err := FromRings(poly.Rings(), tol)
		require.NoError(t, err)
		out, ok := got.(Polygon)
		require.True(t, ok, "got %T", got)
		assert.Equal(t, poly.Boundary.Points(), out.Boundary.Points())
		require.Len(t, out.Holes, 2)
		for i := range poly.Holes {
			assert.Equal(t, poly.Holes[i].Points(), out.Holes[i].Points())
		}
	})

	t.Run("closes open rings", func(t *testing.T) {
		got, err := FromRings([][]Point{{{0, 0}, {1, 0}, {1, 1}}}, tol)
		require.NoError(t, err)
		assert.Equal(t, []Point{{0, 0}, {1, 0}, {1, 1}, {0, 0}}, got.(Polyline).Points())
	})

	t.Run("errors", func(t *testing.T) {
		_, err := FromRings(nil, tol)
		assert.Equal(t, ErrTooFewPoints, errors.Cause(err))
		_, err = FromRings([][]Point{{{0, 0}, {1, 0}}}, tol)
		assert.Equal(t, ErrTooFewPoints, errors.Cause(err))
		_, err = FromRings([][]Point{square(0, 0, 1, 1).Ring(), {}}, tol)
		assert.Equal(t, ErrTooFewPoints, errors.Cause(err))
	})
}

func TestBoolean(t *testing.T) {
	a := square(0, 0, 10, 10)
	b := square(5, 5, 15, 15)

	for _, c := range []struct {
		name  string
		op    func(a, b Shape, tol tolerance.Tolerance) ([]Shape, error)
		count int
		area  float64
	}{
		{"union", Union, 1, 175},
		{"intersection", Intersection, 1, 25},
		{"difference", Difference, 1, 75},
		{"xor", XOr, -1, 150},
	} {
		t.Run(c.name, func(t *testing.T) {
			got, err := c.op(a, b, tol)
			require.NoError(t, err)
			if c.count >= 0 {
				assert.Len(t, got, c.count)
			}
			assert.InDelta(t, c.area, area(Shapes(got)), 1e-9)
		})
	}

	t.Run("hole", func(t *testing.T) {
		got, err := Difference(a, NewRectangle(4, 4, 6, 6), tol)
		require.NoError(t, err)
		require.Len(t, got, 1)
		poly, ok := got[0].(Polygon)
		require.True(t, ok, "got %T", got[0])
		assert.Len(t, poly.Holes, 1)
		assert.InDelta(t, 96, poly.Area(), 1e-9)

		in, err := poly.Contains(Point{5, 5}, tol)
		require.NoError(t, err)
		assert.Equal(t, Outside, in)
	})

	t.Run("disjoint union", func(t *testing.T) {
		got, err := Union(a, square(20, 0, 30, 10), tol)
		require.NoError(t, err)
		assert.Len(t, got, 2)
		assert.InDelta(t, 200, area(Shapes(got)), 1e-9)
	})

	t.Run("island in a hole", func(t *testing.T) {
		donut := NewPolygon(square(0, 0, 10, 10), square(2, 2, 8, 8))
		got, err := Union(donut, square(4, 4, 6, 6), tol)
		require.NoError(t, err)
		assert.Len(t, got, 2)
		assert.InDelta(t, 64+4, area(Shapes(got)), 1e-9)
	})

	t.Run("bad operands", func(t *testing.T) {
		_, err := Union(NewPolyline(Point{0, 0}, Point{1, 0}, Point{1, 1}), a, tol)
		assert.Equal(t, ErrNotClosed, errors.Cause(err))
		_, err = Intersection(a, mustCircle(t, 0, 0, 1), tol)
		assert.Equal(t, ErrUnsupportedShape, errors.Cause(err))
		_, err = Difference(a, NewPolygon(square(0, 0, 1, 1), NewPolyline(Point{0, 0}, Point{1, 0})), tol)
		assert.Equal(t, ErrNotClosed, errors.Cause(err))
	})
}

func TestGeom(t *testing.T) {
	poly := NewPolygon(square(0, 0, 10, 10), square(4, 4, 6, 6))
	g, err := ToGeom(poly, tol)
	require.NoError(t, err)
	require.Len(t, g, 2)
	assert.Equal(t, geom.Point{X: 10, Y: 0}, g[0][1])
	assert.InDelta(t, 96, g.Area(), 1e-9)

	back, err := FromGeom(g, tol)
	require.NoError(t, err)
	assert.Equal(t, poly.Rings(), back.(Polygon).Rings())

	_, err = ToGeom(Point{}, tol)
	assert.Equal(t, ErrUnsupportedShape, errors.Cause(err))
}

// Samples random points and checks the parity classification against
// geom's independent point-in-polygon test. Points close to an edge are
// skipped, since the two disagree on what counts as the boundary.
func TestContains_AgreesWithGeom(t *testing.T) {
	for _, poly := range []Polygon{
		NewPolygon(star(0, 0, 10, 4, 5)),
		NewPolygon(star(0, 0, 10, 7, 12), square(-2, -2, 2, 2), star(4, 0, 1.5, 0.5, 3)),
		NewPolygon(square(-10, -10, 10, 10), square(-8, -8, -1, -1), square(1, 1, 8, 8)),
	} {
		g, err := ToGeom(poly, tol)
		require.NoError(t, err)

		rnd := rand.New(rand.NewSource(4))
		for i := 0; i < 2000; i++ {
			p := Point{rnd.Float64()*24 - 12, rnd.Float64()*24 - 12}
			near := false
			for _, e := range poly.Edges() {
				if e.DistanceTo(p) < 1e-3 {
					near = true
				}
			}
			if near {
				continue
			}
			got, err := poly.Contains(p, tol)
			require.NoError(t, err)
			want := Outside
			if geom.Point(p).Within(g) == geom.Inside {
				want = Inside
			}
			require.Equal(t, want, got, "%v", p)
		}
	}
}
