package shapes

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrNotClosed is returned when a containment test or ring conversion
	// is given a polyline whose ends do not meet.
	ErrNotClosed = errors.New("polyline is not closed")
	// ErrNonPositiveRadius is returned by NewCircle.
	ErrNonPositiveRadius = errors.New("circle radius must be positive")
	// ErrUnsupportedShape is raised by the dispatcher for an operand that is
	// not one of the shapes it knows, such as a nil Shape.
	ErrUnsupportedShape = errors.New("unsupported shape")
	// ErrTooFewPoints is returned when a ring has fewer than three distinct
	// points.
	ErrTooFewPoints = errors.New("too few points")
)

// Threading errors through every level of the recursive dispatch would add a
// lot of noise for what is always a caller bug. Instead, the dispatcher
// panics with a DispatchError, and the exported entry points recover it.

// DispatchError is the panic payload raised inside the dispatcher.
type DispatchError struct {
	error
}

// fatalf panics with a DispatchError wrapping cause.
func fatalf(cause error, format string, args ...interface{}) {
	panic(DispatchError{errors.Wrap(cause, fmt.Sprintf(format, args...))})
}

// HandleDispatchPanicRecover converts a recovered DispatchError into an
// error. Any other panic is re-raised.
func HandleDispatchPanicRecover(r interface{}) error {
	if r != nil {
		if dispatchError, ok := r.(DispatchError); ok {
			return dispatchError.error
		}
		panic(r)
	}
	return nil
}
