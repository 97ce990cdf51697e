package kernel

import "github.com/cwbudde/algo-mixedfft/internal/scalar"

// maxStackRadix is the largest radix served by the generic butterfly's
// fixed-size scratch array. Larger single-step radices fall back to a heap
// allocation per call; lengths whose factor chain stays within {2,3,4} and
// small primes never take that path.
const maxStackRadix = 32

// Transform is the complex mixed-radix engine. All tables are computed at
// construction and read-only afterwards, so a single instance may serve
// concurrent Forward/Inverse calls on disjoint buffers.
type Transform[T scalar.Scalar] struct {
	n       int
	factors []Factor
	twFwd   []scalar.Complex[T]
	twInv   []scalar.Complex[T]
}

// NewTransform builds the engine for a size-n transform, computing the radix
// chain and both twiddle tables eagerly. Returns false if n cannot be
// factored into the supported chain.
func NewTransform[T scalar.Scalar](n int) (*Transform[T], bool) {
	factors, ok := Factorize(n)
	if !ok {
		return nil, false
	}

	return &Transform[T]{
		n:       n,
		factors: factors,
		twFwd:   Twiddles[T](n, false),
		twInv:   Twiddles[T](n, true),
	}, true
}

// Len returns the transform size.
func (t *Transform[T]) Len() int {
	return t.n
}

// Factors returns a copy of the radix chain.
func (t *Transform[T]) Factors() []Factor {
	factors := make([]Factor, len(t.factors))
	copy(factors, t.factors)

	return factors
}

// Forward computes dst[k] = Σ_n src[n]·exp(-2πi·nk/N). dst and src must not
// overlap and must hold at least Len() elements; neither is checked here.
func (t *Transform[T]) Forward(dst, src []scalar.Complex[T]) {
	t.perform(dst[:t.n], src, 0, 1, 0, false)
}

// Inverse computes the unnormalized inverse transform: applying Forward then
// Inverse reproduces the input scaled by N. Same buffer contract as Forward.
func (t *Transform[T]) Inverse(dst, src []scalar.Complex[T]) {
	t.perform(dst[:t.n], src, 0, 1, 0, true)
}

// perform runs one decomposition step: recursively transform radix
// sub-spans over strided input samples, then combine them with the
// radix-specific butterfly. Recursion depth is bounded by MaxFactors.
func (t *Transform[T]) perform(out, src []scalar.Complex[T], srcOff, stride, level int, inverse bool) {
	factor := t.factors[level]
	radix, length := factor.Radix, factor.Length

	if length == 1 {
		for q := range radix {
			out[q] = src[srcOff+q*stride]
		}
	} else {
		for q := range radix {
			t.perform(out[q*length:(q+1)*length], src, srcOff+q*stride, stride*radix, level+1, inverse)
		}
	}

	tw := t.twFwd
	if inverse {
		tw = t.twInv
	}

	switch radix {
	case 2:
		butterfly2(out, stride, length, tw)
	case 4:
		butterfly4(out, stride, length, tw, inverse)
	default:
		t.butterflyGeneric(out, stride, radix, length, tw)
	}
}

// butterfly2 combines two length-point halves. Fixed-point operands are
// halved first so the combine cannot overflow the narrow type.
func butterfly2[T scalar.Scalar](out []scalar.Complex[T], stride, length int, tw []scalar.Complex[T]) {
	if scalar.IsFixed[T]() {
		for i := range 2 * length {
			out[i] = scalar.CDiv(out[i], 2)
		}
	}

	twIdx := 0

	for i := range length {
		v := scalar.CMul(out[length+i], tw[twIdx])
		twIdx += stride

		out[length+i] = scalar.CSub(out[i], v)
		out[i] = scalar.CAdd(out[i], v)
	}
}

// butterfly4 combines four length-point quarters directly, cheaper than two
// nested radix-2 stages. The sign of the cross terms flips between forward
// and inverse transforms.
func butterfly4[T scalar.Scalar](out []scalar.Complex[T], stride, length int, tw []scalar.Complex[T], inverse bool) {
	if scalar.IsFixed[T]() {
		for i := range 4 * length {
			out[i] = scalar.CDiv(out[i], 4)
		}
	}

	l1, l2, l3 := length, 2*length, 3*length
	tw1, tw2, tw3 := 0, 0, 0

	for i := range length {
		s0 := scalar.CMul(out[l1+i], tw[tw1])
		s1 := scalar.CMul(out[l2+i], tw[tw2])
		s2 := scalar.CMul(out[l3+i], tw[tw3])

		s3 := scalar.CAdd(s0, s2)
		s4 := scalar.CSub(s0, s2)
		s5 := scalar.CSub(out[i], s1)

		x0 := scalar.CAdd(out[i], s1)
		out[l2+i] = scalar.CSub(x0, s3)
		out[i] = scalar.CAdd(x0, s3)

		if inverse {
			out[l1+i] = scalar.Complex[T]{Re: s5.Re - s4.Im, Im: s5.Im + s4.Re}
			out[l3+i] = scalar.Complex[T]{Re: s5.Re + s4.Im, Im: s5.Im - s4.Re}
		} else {
			out[l1+i] = scalar.Complex[T]{Re: s5.Re + s4.Im, Im: s5.Im - s4.Re}
			out[l3+i] = scalar.Complex[T]{Re: s5.Re - s4.Im, Im: s5.Im + s4.Re}
		}

		tw1 += stride
		tw2 += 2 * stride
		tw3 += 3 * stride
	}
}

// butterflyGeneric is the direct O(radix²) combine used for any radix
// without a specialized kernel. The twiddle index grows by stride·k per
// term, which keeps it below 2N, so a single subtraction wraps it; the
// incremental bound must be preserved by any change here.
func (t *Transform[T]) butterflyGeneric(out []scalar.Complex[T], stride, radix, length int, tw []scalar.Complex[T]) {
	if scalar.IsFixed[T]() {
		for i := range radix * length {
			out[i] = scalar.CDiv(out[i], radix)
		}
	}

	var stack [maxStackRadix]scalar.Complex[T]

	scratch := stack[:]
	if radix > maxStackRadix {
		scratch = make([]scalar.Complex[T], radix)
	}

	for u := range length {
		for q, k := 0, u; q < radix; q++ {
			scratch[q] = out[k]
			k += length
		}

		for q1, k := 0, u; q1 < radix; q1++ {
			acc := scratch[0]
			twIdx := 0

			for q := 1; q < radix; q++ {
				twIdx += stride * k
				if twIdx >= t.n {
					twIdx -= t.n
				}

				acc = scalar.CAdd(acc, scalar.CMul(scratch[q], tw[twIdx]))
			}

			out[k] = acc
			k += length
		}
	}
}
