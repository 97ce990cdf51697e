package mixedfft

import "github.com/cwbudde/algo-mixedfft/internal/fftypes"

// Scalar is the constraint for supported sample types: floating point of
// either width, or a fixed-point signed integer type.
// The canonical definition is in internal/fftypes.
type Scalar = fftypes.Scalar

// Float is the constraint for floating-point sample types.
// The canonical definition is in internal/fftypes.
type Float = fftypes.Float

// Fixed is the constraint for fixed-point sample types.
// The canonical definition is in internal/fftypes.
type Fixed = fftypes.Fixed

// Complex is a complex value over a scalar sample type. Transform buffers
// and twiddle tables are slices of this type.
type Complex[T Scalar] = fftypes.Complex[T]
