// Package scalar implements the arithmetic layer shared by every transform
// kernel. Each operation is written once against the Scalar constraint and
// specialized by a type switch: floating-point types use direct math while
// fixed-point types widen, multiply, and renormalize with round-half-up
// shifting. The switch resolves per concrete instantiation, so the kernels
// carry no per-element category dispatch.
package scalar

import (
	"math"

	"github.com/cwbudde/algo-mixedfft/internal/fftypes"
)

// Aliases for the canonical constraints in internal/fftypes.
type (
	Float  = fftypes.Float
	Fixed  = fftypes.Fixed
	Scalar = fftypes.Scalar
)

// Fractional bit widths of the supported fixed-point types. The type maximum
// (2^frac - 1) represents magnitude 1.0.
const (
	fracBits16 = 15
	fracBits32 = 31
)

// IsFixed reports whether T is a fixed-point sample type. The result is a
// compile-time constant for each instantiation; kernels use it to hoist the
// fixed-point pre-scaling passes.
func IsFixed[T Scalar]() bool {
	var zero T
	switch any(zero).(type) {
	case int16, int32:
		return true
	default:
		return false
	}
}

// MaxValue returns the largest representable value of T. For fixed-point
// types this is the scaled representation of magnitude 1.0.
func MaxValue[T Scalar]() T {
	var zero T
	switch any(zero).(type) {
	case float32:
		r, _ := any(float32(math.MaxFloat32)).(T)
		return r
	case float64:
		r, _ := any(float64(math.MaxFloat64)).(T)
		return r
	case int16:
		r, _ := any(int16(math.MaxInt16)).(T)
		return r
	case int32:
		r, _ := any(int32(math.MaxInt32)).(T)
		return r
	default:
		panic("scalar: unsupported sample type")
	}
}

// Mul returns the product of two samples. Fixed-point operands are widened
// to twice their width, multiplied, and shifted back down by the fractional
// bit width with round-half-up (half an LSB is added before the shift), so
// the intermediate never overflows for any pair of narrow-type values.
func Mul[T Scalar](a, b T) T {
	switch x := any(a).(type) {
	case float32:
		r, _ := any(x * any(b).(float32)).(T)
		return r
	case float64:
		r, _ := any(x * any(b).(float64)).(T)
		return r
	case int16:
		p := int32(x) * int32(any(b).(int16))
		r, _ := any(int16((p + 1<<(fracBits16-1)) >> fracBits16)).(T)
		return r
	case int32:
		p := int64(x) * int64(any(b).(int32))
		r, _ := any(int32((p + 1<<(fracBits32-1)) >> fracBits32)).(T)
		return r
	default:
		panic("scalar: unsupported sample type")
	}
}

// Div divides a sample by a small positive integer (a radix or 2). For
// fixed-point types the quotient is computed as a multiply by the scaled
// integer reciprocal MaxValue/d, matching the reference convention.
func Div[T Scalar](a T, d int) T {
	switch x := any(a).(type) {
	case float32:
		r, _ := any(x / float32(d)).(T)
		return r
	case float64:
		r, _ := any(x / float64(d)).(T)
		return r
	case int16:
		recip := int16(math.MaxInt16 / d)
		p := int32(x) * int32(recip)
		r, _ := any(int16((p + 1<<(fracBits16-1)) >> fracBits16)).(T)
		return r
	case int32:
		recip := int32(math.MaxInt32 / d)
		p := int64(x) * int64(recip)
		r, _ := any(int32((p + 1<<(fracBits32-1)) >> fracBits32)).(T)
		return r
	default:
		panic("scalar: unsupported sample type")
	}
}

// Halve multiplies a sample by 0.5: a true multiply for floats, an
// arithmetic right shift for fixed point.
func Halve[T Scalar](a T) T {
	switch x := any(a).(type) {
	case float32:
		r, _ := any(x * 0.5).(T)
		return r
	case float64:
		r, _ := any(x * 0.5).(T)
		return r
	case int16:
		r, _ := any(x >> 1).(T)
		return r
	case int32:
		r, _ := any(x >> 1).(T)
		return r
	default:
		panic("scalar: unsupported sample type")
	}
}

// Phasor returns the unit phasor exp(i*phase) as a (cos, sin) pair of
// samples. Fixed-point components are scaled by the type maximum and rounded
// to the nearest integer.
func Phasor[T Scalar](phase float64) (cosv, sinv T) {
	return fromFloat64[T](math.Cos(phase)), fromFloat64[T](math.Sin(phase))
}

// fromFloat64 converts a unit-range value to a sample of type T.
func fromFloat64[T Scalar](v float64) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		r, _ := any(float32(v)).(T)
		return r
	case float64:
		r, _ := any(v).(T)
		return r
	case int16:
		r, _ := any(int16(math.Floor(0.5 + math.MaxInt16*v))).(T)
		return r
	case int32:
		r, _ := any(int32(math.Floor(0.5 + math.MaxInt32*v))).(T)
		return r
	default:
		panic("scalar: unsupported sample type")
	}
}

// ToFloat64 converts a sample to float64, undoing the fixed-point scaling.
// Intended for tests and diagnostics, not for the transform hot path.
func ToFloat64[T Scalar](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		return float64(x)
	case float64:
		return x
	case int16:
		return float64(x) / math.MaxInt16
	case int32:
		return float64(x) / math.MaxInt32
	default:
		panic("scalar: unsupported sample type")
	}
}

// FromFloat64 converts a unit-range float64 to a sample of type T. Inverse
// of ToFloat64; intended for tests and signal construction.
func FromFloat64[T Scalar](v float64) T {
	return fromFloat64[T](v)
}
