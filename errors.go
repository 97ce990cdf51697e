package mixedfft

import "errors"

// Sentinel errors returned by plan constructors and transform methods.
var (
	// ErrInvalidLength is returned when the transform size is not valid:
	// non-positive, not factorable within the radix chain capacity, or odd
	// for a real plan.
	ErrInvalidLength = errors.New("mixedfft: invalid transform length")

	// ErrNilSlice is returned when a nil slice is passed to a transform method.
	ErrNilSlice = errors.New("mixedfft: nil slice")

	// ErrLengthMismatch is returned when input/output slice sizes don't match
	// the plan's expected dimensions.
	ErrLengthMismatch = errors.New("mixedfft: slice length mismatch")

	// ErrInvalidStride is returned when a stride parameter is invalid
	// for the given data layout (e.g., stride < 1 or doesn't align with data).
	ErrInvalidStride = errors.New("mixedfft: invalid stride")
)
