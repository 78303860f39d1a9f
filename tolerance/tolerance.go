// Package tolerance holds the numeric policy used by every geometric
// predicate: an absolute distance tolerance and an angular tolerance.
//
// Predicates never read the process-wide default themselves. They take a
// Tolerance argument, and callers that do not care pass Default().
package tolerance

import (
	"math"
	"sync/atomic"

	"gonum.org/v1/gonum/floats"
)

// Default settings. The distance tolerance is absolute, so it should be
// scaled to the model's units if those are very large or very small.
const (
	DefaultDistance = 1e-6
	DefaultAngle    = 1e-4 // radians
)

// Tolerance is the pair of epsilons used for equality, tangency and
// coincidence decisions.
type Tolerance struct {
	Distance float64 `toml:"distance" yaml:"distance"`
	Angle    float64 `toml:"angle" yaml:"angle"`
}

var current atomic.Value

func init() {
	current.Store(Tolerance{Distance: DefaultDistance, Angle: DefaultAngle})
}

// Default returns the process-wide tolerance.
func Default() Tolerance {
	return current.Load().(Tolerance)
}

// SetDefault replaces the process-wide tolerance. Calls already in flight
// keep whatever value they were handed; the last write wins.
func SetDefault(t Tolerance) {
	current.Store(t)
}

// Equal reports whether a and b are within the distance tolerance.
func (t Tolerance) Equal(a, b float64) bool {
	return floats.EqualWithinAbs(a, b, t.Distance)
}

// Zero reports whether v is within the distance tolerance of zero.
func (t Tolerance) Zero(v float64) bool {
	return floats.EqualWithinAbs(v, 0, t.Distance)
}

// Within reports whether v lies in [min-Distance, max+Distance].
func (t Tolerance) Within(v, min, max float64) bool {
	return v >= min-t.Distance && v <= max+t.Distance
}

// AngleEqual compares two angles in radians, treating a and a+2π as equal.
func (t Tolerance) AngleEqual(a, b float64) bool {
	d := math.Mod(math.Abs(a-b), 2*math.Pi)
	return d <= t.Angle || 2*math.Pi-d <= t.Angle
}

// Valid reports whether both tolerances are positive and finite.
func (t Tolerance) Valid() bool {
	return t.Distance > 0 && t.Angle > 0 && !math.IsInf(t.Distance, 0) && !math.IsInf(t.Angle, 0)
}
