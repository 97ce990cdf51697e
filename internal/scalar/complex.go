package scalar

import "github.com/cwbudde/algo-mixedfft/internal/fftypes"

// Complex is an alias for the canonical container in internal/fftypes.
type Complex[T Scalar] = fftypes.Complex[T]

// CAdd returns a + b componentwise. Addition needs no renormalization in
// either arithmetic category.
func CAdd[T Scalar](a, b Complex[T]) Complex[T] {
	return Complex[T]{Re: a.Re + b.Re, Im: a.Im + b.Im}
}

// CSub returns a - b componentwise.
func CSub[T Scalar](a, b Complex[T]) Complex[T] {
	return Complex[T]{Re: a.Re - b.Re, Im: a.Im - b.Im}
}

// CConj returns the complex conjugate of a.
func CConj[T Scalar](a Complex[T]) Complex[T] {
	return Complex[T]{Re: a.Re, Im: -a.Im}
}

// CMul returns the complex product of a and b using the category-correct
// scalar multiply.
func CMul[T Scalar](a, b Complex[T]) Complex[T] {
	return Complex[T]{
		Re: Mul(a.Re, b.Re) - Mul(a.Im, b.Im),
		Im: Mul(a.Re, b.Im) + Mul(a.Im, b.Re),
	}
}

// CDiv divides both components by a small positive integer.
func CDiv[T Scalar](a Complex[T], d int) Complex[T] {
	return Complex[T]{Re: Div(a.Re, d), Im: Div(a.Im, d)}
}

// CHalve halves both components.
func CHalve[T Scalar](a Complex[T]) Complex[T] {
	return Complex[T]{Re: Halve(a.Re), Im: Halve(a.Im)}
}

// CExp returns the unit phasor exp(i*phase) as a complex sample.
func CExp[T Scalar](phase float64) Complex[T] {
	re, im := Phasor[T](phase)
	return Complex[T]{Re: re, Im: im}
}
