package kernel

import "github.com/cwbudde/algo-mixedfft/internal/scalar"

// PackReal interleaves a flat scalar buffer into complex pairs:
// dst[i] = src[2i] + i·src[2i+1]. len(dst) complex values are written.
func PackReal[T scalar.Scalar](dst []scalar.Complex[T], src []T) {
	for i := range dst {
		dst[i] = scalar.Complex[T]{Re: src[2*i], Im: src[2*i+1]}
	}
}

// UnpackReal flattens complex pairs back into a scalar buffer:
// dst[2i], dst[2i+1] = src[i]. len(src) complex values are read.
func UnpackReal[T scalar.Scalar](dst []T, src []scalar.Complex[T]) {
	for i := range src {
		dst[2*i] = src[i].Re
		dst[2*i+1] = src[i].Im
	}
}
