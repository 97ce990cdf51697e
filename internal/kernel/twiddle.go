package kernel

import (
	"math"

	"github.com/cwbudde/algo-mixedfft/internal/scalar"
)

// Twiddles returns the n precomputed roots of unity for a size-n transform:
// exp(-2πik/n) for k = 0..n-1, or the conjugate-phase table when inverse is
// true. Fixed-point sample types get entries pre-scaled to the type maximum.
func Twiddles[T scalar.Scalar](n int, inverse bool) []scalar.Complex[T] {
	if n <= 0 {
		return nil
	}

	factor := -2 * math.Pi / float64(n)
	if inverse {
		factor = -factor
	}

	twiddles := make([]scalar.Complex[T], n)
	for k := range n {
		twiddles[k] = scalar.CExp[T](factor * float64(k))
	}

	return twiddles
}

// RealTwiddles returns the adapter table used by the real-signal packing
// step of a size-2m real transform. The phase offset differs from the main
// table: entry i carries exp(-iπ((i+1)/m + 1/2)).
func RealTwiddles[T scalar.Scalar](m int) []scalar.Complex[T] {
	if m <= 0 {
		return nil
	}

	twiddles := make([]scalar.Complex[T], m)
	for i := range m {
		phase := -math.Pi * (float64(i+1)/float64(m) + 0.5)
		twiddles[i] = scalar.CExp[T](phase)
	}

	return twiddles
}
