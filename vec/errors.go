package vec

import (
	"errors"
	"fmt"
)

// Domain errors for vector operations.
var (
	// ErrEmpty indicates a removal from a vector with no elements.
	ErrEmpty = errors.New("vec: vector is empty")

	// ErrOutOfBounds indicates an index at or beyond the current size.
	ErrOutOfBounds = errors.New("vec: index out of bounds")

	// ErrIterOutOfBounds indicates an iterator whose offset falls outside
	// the range permitted by the operation.
	ErrIterOutOfBounds = errors.New("vec: iterator out of bounds")
)

// BoundsError wraps a bounds violation with the offending index and the
// vector size at the time of the call.
type BoundsError struct {
	Index   int
	Size    int
	Wrapped error
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("%v (index %d, size %d)", e.Wrapped, e.Index, e.Size)
}

func (e *BoundsError) Unwrap() error {
	return e.Wrapped
}
