package shapes

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLine(t *testing.T) {
	l := NewLine(0, 0, 10, 0)
	assert.Equal(t, 10.0, l.Length())
	assert.Equal(t, Point{2.5, 0}, l.PointAt(0.25))
	assert.Equal(t, Point{5, 0}, l.Midpoint())
	assert.Equal(t, NewLine(10, 0, 0, 0), l.Reverse())

	assert.Equal(t, 0.3, l.ClosestParameter(Point{3, 5}))
	assert.Equal(t, 0.0, l.ClosestParameter(Point{-3, 5}))
	assert.Equal(t, 1.0, l.ClosestParameter(Point{30, 5}))
	assert.Equal(t, 5.0, l.DistanceTo(Point{3, 5}))

	degenerate := NewLine(1, 1, 1, 1)
	assert.Equal(t, 0.0, degenerate.ClosestParameter(Point{5, 5}))
}

func TestRay(t *testing.T) {
	r := NewRay(Point{1, 1}, Vector{0, 5})
	assert.Equal(t, YAxis, r.Direction)
	assert.Equal(t, Point{1, 4}, r.PointAt(3))
	assert.Equal(t, -2.0, r.ClosestParameter(Point{7, -1}))
	assert.Equal(t, Point{1, -1}, r.ClosestPoint(Point{7, -1}))
	assert.Equal(t, Vector{0, -1}, r.Reverse().Direction)

	bb := r.BoundingBox()
	assert.Equal(t, Interval{1, 1}, bb.X)
	assert.Equal(t, 1.0, bb.Y.Min)
	assert.True(t, math.IsInf(bb.Y.Max, 1))

	degenerate := NewRay(Point{}, Vector{})
	assert.Equal(t, Vector{}, degenerate.Direction)
}

func TestRange(t *testing.T) {
	for _, c := range []struct {
		rng            Range
		neg, zero, pos bool
	}{
		{RangeBoth, true, true, true},
		{RangePositive, false, false, true},
		{RangePositiveAndZero, false, true, true},
	} {
		t.Run(c.rng.String(), func(t *testing.T) {
			assert.Equal(t, c.neg, c.rng.Admits(-1))
			assert.Equal(t, c.zero, c.rng.Admits(0))
			assert.Equal(t, c.pos, c.rng.Admits(1))
		})
	}
	assert.Equal(t, "unknown", Range(42).String())
}

func TestCircle(t *testing.T) {
	_, err := NewCircle(Point{}, 0)
	assert.Equal(t, ErrNonPositiveRadius, errors.Cause(err))
	_, err = NewCircle(Point{}, -1)
	assert.Error(t, err)
	_, err = NewCircle(Point{}, math.NaN())
	assert.Error(t, err)

	c, err := NewCircle(Point{3, 4}, 1)
	require.NoError(t, err)
	assert.Equal(t, NewRectangle(2, 3, 4, 5), c.BoundingBox())
	assert.Equal(t, Point{4, 4}, c.PointAt(0))
	assert.Equal(t, Point{3, 5}, c.ClosestPoint(Point{3, 10}))
	assert.Equal(t, Point{4, 4}, c.ClosestPoint(Point{3, 4}))
	assert.Equal(t, Inside, c.Contains(Point{3.5, 4}, tol))
	assert.Equal(t, Coincident, c.Contains(Point{3, 5}, tol))
	assert.Equal(t, Outside, c.Contains(Point{3, 6}, tol))
	assert.InDelta(t, math.Pi, c.Area(), 1e-12)
}
