package mixedfft

import (
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-mixedfft/internal/scalar"
)

// Shared test helper functions used across multiple test files

func randomSignal[T Float](n int, seed int64) []Complex[T] {
	rnd := rand.New(rand.NewSource(seed))

	out := make([]Complex[T], n)
	for i := range out {
		out[i] = Complex[T]{
			Re: scalar.FromFloat64[T](rnd.Float64() - 0.5),
			Im: scalar.FromFloat64[T](rnd.Float64() - 0.5),
		}
	}

	return out
}

func toC128[T Scalar](in []Complex[T]) []complex128 {
	out := make([]complex128, len(in))
	for i, c := range in {
		out[i] = complex(scalar.ToFloat64(c.Re), scalar.ToFloat64(c.Im))
	}

	return out
}

func assertApproxComplex128Tolf(t *testing.T, got, want complex128, tol float64, format string, args ...any) {
	t.Helper()

	if cmplx.Abs(got-want) > tol {
		t.Fatalf(format+": got %v want %v (diff=%v)", append(args, got, want, cmplx.Abs(got-want))...)
	}
}
