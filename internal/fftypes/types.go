// Package fftypes holds the canonical type constraints and the complex
// container shared by the public API and the internal transform engine.
package fftypes

// Float is the constraint for floating-point sample types. Arithmetic on
// these types is direct IEEE math.
type Float interface {
	float32 | float64
}

// Fixed is the constraint for fixed-point sample types: signed integers
// scaled so that the type's maximum value represents magnitude 1.0.
// Arithmetic on these types renormalizes after every multiply.
type Fixed interface {
	int16 | int32
}

// Scalar is the constraint for all supported sample types.
type Scalar interface {
	Float | Fixed
}

// Complex is a complex value over a scalar sample type. For Float types it
// behaves like the built-in complex types; for Fixed types both components
// live in the type's scaled integer range.
type Complex[T Scalar] struct {
	Re, Im T
}
