package shapes

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolyline(t *testing.T) {
	pl := NewPolyline(Point{0, 0}, Point{10, 0}, Point{10, 10})

	assert.Equal(t, 3, pl.PointCount())
	assert.Equal(t, 2, pl.SegmentCount())
	assert.Equal(t, NewLine(10, 0, 10, 10), pl.Segment(1))
	assert.Equal(t, 20.0, pl.Length())
	assert.Equal(t, NewRectangle(0, 0, 10, 10), pl.BoundingBox())
	assert.Equal(t, Point{0, 0}, pl.Start())
	assert.Equal(t, Point{10, 10}, pl.End())
	assert.False(t, pl.IsClosed(tol))

	assert.Equal(t, Point{5, 0}, pl.PointAt(0.5))
	assert.Equal(t, Point{10, 5}, pl.PointAt(1.5))
	assert.Equal(t, Point{10, 10}, pl.PointAt(2))
	assert.Equal(t, Point{10, 15}, pl.PointAt(2.5), "extrapolates the last segment")

	assert.Equal(t, 1.5, pl.ClosestParameter(Point{12, 5}))
	assert.Equal(t, Point{10, 5}, pl.ClosestPoint(Point{12, 5}))
	assert.Equal(t, 2.0, pl.DistanceTo(Point{12, 5}))
}

func TestPolyline_Degenerate(t *testing.T) {
	empty := NewPolyline()
	assert.Equal(t, 0, empty.SegmentCount())
	assert.Empty(t, empty.Segments())
	assert.True(t, empty.BoundingBox().Empty())
	assert.Equal(t, Origin, empty.PointAt(0))

	single := NewPolyline(Point{3, 4})
	assert.Equal(t, 0, single.SegmentCount())
	assert.Equal(t, Point{3, 4}, single.PointAt(1))
	assert.Equal(t, 5.0, single.DistanceTo(Point{}))

	var zero Polyline
	assert.Equal(t, 0.0, zero.Length())
}

func TestPolyline_PointsAreCopied(t *testing.T) {
	pts := []Point{{0, 0}, {1, 0}}
	pl := NewPolyline(pts...)
	pts[0] = Point{5, 5}
	assert.Equal(t, Point{0, 0}, pl.Start())

	out := pl.Points()
	out[0] = Point{5, 5}
	assert.Equal(t, Point{0, 0}, pl.Start())
}

func TestPolyline_SharedCache(t *testing.T) {
	pl := star(0, 0, 10, 4, 9)
	var wg sync.WaitGroup
	lengths := make([]float64, 16)
	for i := range lengths {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			cp := pl
			lengths[i] = cp.Length()
		}(i)
	}
	wg.Wait()
	for _, l := range lengths {
		assert.Equal(t, lengths[0], l)
	}
	assert.Same(t, &pl.Segments()[0], &pl.Segments()[0])
}

func TestPolyline_Winding(t *testing.T) {
	sq := square(0, 0, 10, 10)
	assert.True(t, sq.IsClosed(tol))
	assert.Equal(t, 100.0, sq.SignedArea())
	assert.False(t, sq.IsClockwise())

	rev := sq.Reverse()
	assert.Equal(t, -100.0, rev.SignedArea())
	assert.True(t, rev.IsClockwise())
	assert.Equal(t, sq.Start(), rev.End())

	assert.Equal(t, 0.0, NewPolyline(Point{0, 0}, Point{1, 1}).SignedArea())
}

func TestPolyline_RemoveCollinear(t *testing.T) {
	pl := NewPolyline(Point{0, 0}, Point{1, 0}, Point{2, 0}, Point{2, 0}, Point{2, 1})
	assert.Equal(t, []Point{{0, 0}, {2, 0}, {2, 1}}, pl.RemoveCollinear(tol).Points())

	backtrack := NewPolyline(Point{0, 0}, Point{2, 0}, Point{1, 0})
	assert.Equal(t, 3, backtrack.RemoveCollinear(tol).PointCount())

	short := NewPolyline(Point{0, 0}, Point{0, 0})
	assert.Equal(t, 2, short.RemoveCollinear(tol).PointCount())
}

func TestPolyline_Ring(t *testing.T) {
	open := NewPolyline(Point{0, 0}, Point{1, 0}, Point{1, 1})
	assert.Equal(t, []Point{{0, 0}, {1, 0}, {1, 1}, {0, 0}}, open.Ring())

	closed := square(0, 0, 1, 1)
	assert.Equal(t, closed.Points(), closed.Ring())
	assert.Empty(t, NewPolyline().Ring())
}

func TestPolygon(t *testing.T) {
	holes := []Polyline{square(1, 1, 2, 2), square(3, 3, 5, 5)}
	poly := NewPolygon(square(0, 0, 10, 10), holes...)
	holes[0] = square(0, 0, 9, 9)

	assert.Equal(t, 100.0-1-4, poly.Area())
	assert.Equal(t, NewRectangle(0, 0, 10, 10), poly.BoundingBox())
	require.Len(t, poly.Rings(), 3)
	assert.Equal(t, square(1, 1, 2, 2).Points(), poly.Rings()[1])
	assert.Len(t, poly.Edges(), 3)

	assert.Equal(t, 100.0-1-4, NewPolygon(square(0, 0, 10, 10), holes[1].Reverse(), square(1, 1, 2, 2)).Area())
}

func TestCircularIndex(t *testing.T) {
	assert.Equal(t, 0, CircularIndex(3, 3))
	assert.Equal(t, 2, CircularIndex(-1, 3))
	assert.Equal(t, 1, CircularIndex(-5, 3))
	assert.Equal(t, 1, CircularIndex(1, 3))
}
