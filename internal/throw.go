package internal

import "github.com/pkg/errors"

// Threading errors through the ring bookkeeping and the clipping loop would add
// a lot of noise to the geometry code. Instead, fatal conditions panic with a
// *TriangulateError, and Run recovers it into an ordinary error.

var (
	// Fewer than three vertices. There's nothing to triangulate.
	ErrInvalidInputSize = errors.New("polygon must have at least 3 vertices")
	// No ear was found while more than three vertices remain. A simple,
	// counterclockwise polygon always has at least two ears, so the input was
	// not one (or a predicate is broken).
	ErrInvariantViolated = errors.New("no ear found")
)

type TriangulateError struct {
	cause error
}

func (e *TriangulateError) Error() string {
	return e.cause.Error()
}

func (e *TriangulateError) Unwrap() error {
	return e.cause
}

// Satisfies the pkg/errors causer interface, so errors.Cause sees through it.
func (e *TriangulateError) Cause() error {
	return e.cause
}

// Panic with a TriangulateError.
func fatalf(format string, args ...interface{}) {
	panic(&TriangulateError{errors.Errorf(format, args...)})
}

// Panic with a TriangulateError wrapping err.
func fatal(err error) {
	panic(&TriangulateError{err})
}

func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if triangulateError, ok := r.(*TriangulateError); ok {
			return triangulateError
		}
		panic(r)
	}
	return nil
}
