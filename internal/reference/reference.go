// Package reference provides a direct O(n²) DFT used as the correctness
// oracle in tests. It is never part of a transform hot path.
package reference

import (
	"math"
	"math/cmplx"
)

// NaiveDFT computes the forward DFT by direct summation:
// out[k] = Σ_n in[n]·exp(-2πi·nk/N).
func NaiveDFT(in []complex128) []complex128 {
	n := len(in)
	out := make([]complex128, n)

	for k := range n {
		var sum complex128
		for j := range n {
			angle := -2 * math.Pi * float64(k) * float64(j) / float64(n)
			sum += in[j] * cmplx.Exp(complex(0, angle))
		}

		out[k] = sum
	}

	return out
}

// NaiveIDFT computes the unnormalized inverse DFT by direct summation:
// out[n] = Σ_k in[k]·exp(+2πi·nk/N). No 1/N scaling is applied, matching
// the engine's inverse convention.
func NaiveIDFT(in []complex128) []complex128 {
	n := len(in)
	out := make([]complex128, n)

	for j := range n {
		var sum complex128
		for k := range n {
			angle := 2 * math.Pi * float64(k) * float64(j) / float64(n)
			sum += in[k] * cmplx.Exp(complex(0, angle))
		}

		out[j] = sum
	}

	return out
}
