package kernel

import "github.com/cwbudde/algo-mixedfft/internal/scalar"

// ScaleInv divides every element of buf by n in place. Used by the
// normalized inverse variants; the plain inverse stays unnormalized.
func ScaleInv[T scalar.Scalar](buf []scalar.Complex[T], n int) {
	for i := range buf {
		buf[i] = scalar.CDiv(buf[i], n)
	}
}
