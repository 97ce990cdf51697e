package mixedfft

import (
	"sync"

	"github.com/cwbudde/algo-mixedfft/internal/kernel"
	"github.com/cwbudde/algo-mixedfft/internal/scalar"
)

// RealPlan computes DFTs of real-valued signals. An N-point real transform
// runs as one N/2-point complex transform plus an O(N) recombination pass
// over a dedicated adapter twiddle table, exploiting the conjugate symmetry
// of a real signal's spectrum.
//
// A RealPlan is safe for concurrent use once constructed, provided
// concurrent calls supply disjoint buffers; internal scratch is pooled per
// call.
type RealPlan[T Scalar] struct {
	n       int
	half    int
	t       *kernel.Transform[T]
	adapter []Complex[T]
	pool    sync.Pool // *[]Complex[T] of half elements
}

// NewRealPlan creates a plan for size-n real transforms. The size must be
// even and n/2 must be factorable by the complex engine; anything else
// returns ErrInvalidLength.
func NewRealPlan[T Scalar](n int) (*RealPlan[T], error) {
	if n < 2 || n%2 != 0 {
		return nil, ErrInvalidLength
	}

	half := n / 2

	t, ok := kernel.NewTransform[T](half)
	if !ok {
		return nil, ErrInvalidLength
	}

	p := &RealPlan[T]{
		n:       n,
		half:    half,
		t:       t,
		adapter: kernel.RealTwiddles[T](half),
	}
	p.pool.New = func() any {
		s := make([]Complex[T], half)
		return &s
	}

	return p, nil
}

// Len returns the number of real samples per transform.
func (p *RealPlan[T]) Len() int {
	return p.n
}

// SpectrumLen returns the number of meaningful complex frequency bins
// (N/2+1).
func (p *RealPlan[T]) SpectrumLen() int {
	return p.half + 1
}

// Forward computes the spectrum of a real signal. Bins [0, N/2] carry the
// spectrum with purely real DC and Nyquist bins; bins above N/2 are zeroed,
// since a real signal's spectrum beyond Nyquist carries no independent
// information. dst must hold Len() elements, src Len() samples; the two must
// not share storage.
//
// Returns ErrNilSlice if dst or src is nil, ErrLengthMismatch if either is
// too short.
func (p *RealPlan[T]) Forward(dst []Complex[T], src []T) error {
	if dst == nil || src == nil {
		return ErrNilSlice
	}

	if len(dst) < p.n || len(src) < p.n {
		return ErrLengthMismatch
	}

	half := p.half

	// The upper half of dst is zero-filled on the way out, so it doubles as
	// the packing area for the half-size complex input.
	kernel.PackReal(dst[half:p.n], src)
	p.t.Forward(dst[:half], dst[half:p.n])

	if scalar.IsFixed[T]() {
		for k := range half {
			dst[k] = scalar.CDiv(dst[k], 2)
		}
	}

	// DC and Nyquist come from bin 0 alone.
	tdc := dst[0]
	dst[0] = Complex[T]{Re: tdc.Re + tdc.Im}
	nyquist := Complex[T]{Re: tdc.Re - tdc.Im}

	for k := 1; k <= half/2; k++ {
		s0 := dst[k]
		s1 := scalar.CConj(dst[half-k])
		even := scalar.CAdd(s0, s1)
		odd := scalar.CSub(s0, s1)
		tw := scalar.CMul(odd, p.adapter[k-1])

		dst[k] = Complex[T]{
			Re: scalar.Halve(even.Re + tw.Re),
			Im: scalar.Halve(even.Im + tw.Im),
		}
		dst[half-k] = Complex[T]{
			Re: scalar.Halve(even.Re - tw.Re),
			Im: scalar.Halve(tw.Im - even.Im),
		}
	}

	dst[half] = nyquist

	for k := half + 1; k < p.n; k++ {
		dst[k] = Complex[T]{}
	}

	return nil
}

// Inverse reconstructs a real signal from its packed spectrum without
// modifying src: the spectrum is copied into pooled scratch before the
// combine. src must hold SpectrumLen() bins, dst Len() samples.
//
// Returns ErrNilSlice if dst or src is nil, ErrLengthMismatch if either is
// too short.
func (p *RealPlan[T]) Inverse(dst []T, src []Complex[T]) error {
	if err := p.validateInverse(dst, src); err != nil {
		return err
	}

	tmp := p.getScratch()
	out := p.getScratch()

	defer p.putScratch(tmp)
	defer p.putScratch(out)

	p.buildHalfSpectrum(*tmp, src, false)
	p.t.Inverse(*out, *tmp)
	kernel.UnpackReal(dst, (*out)[:p.half])

	return nil
}

// InverseInPlace reconstructs a real signal from its packed spectrum,
// mutating src in the process to avoid the copy Inverse makes. Same size
// contract as Inverse.
func (p *RealPlan[T]) InverseInPlace(dst []T, src []Complex[T]) error {
	if err := p.validateInverse(dst, src); err != nil {
		return err
	}

	out := p.getScratch()
	defer p.putScratch(out)

	p.buildHalfSpectrum(src, src, true)
	p.t.Inverse(*out, src)
	kernel.UnpackReal(dst, (*out)[:p.half])

	return nil
}

// InverseNormalized is Inverse followed by division by Len(), recovering
// the original floating-point samples from an unnormalized spectrum.
func (p *RealPlan[T]) InverseNormalized(dst []T, src []Complex[T]) error {
	if err := p.Inverse(dst, src); err != nil {
		return err
	}

	for i := range p.n {
		dst[i] = scalar.Div(dst[i], p.n)
	}

	return nil
}

// buildHalfSpectrum reconstructs the half-size complex spectrum in
// buf[:half] from the packed bins in src, undoing the even/odd split with
// the conjugated adapter table. When inPlace is true buf and src are the
// same slice and the combine mutates it directly.
func (p *RealPlan[T]) buildHalfSpectrum(buf, src []Complex[T], inPlace bool) {
	half := p.half

	// Fold DC and Nyquist back into bin 0.
	buf[0] = Complex[T]{
		Re: src[0].Re + src[half].Re,
		Im: src[0].Re - src[half].Re,
	}

	if !inPlace {
		copy(buf[1:half], src[1:half])
	}

	if scalar.IsFixed[T]() {
		for k := range half {
			buf[k] = scalar.CDiv(buf[k], 2)
		}
	}

	for k := 1; k <= half/2; k++ {
		s0 := buf[k]
		s1 := scalar.CConj(buf[half-k])
		even := scalar.CAdd(s0, s1)
		odd := scalar.CSub(s0, s1)
		tw := scalar.CMul(odd, scalar.CConj(p.adapter[k-1]))

		buf[k] = scalar.CAdd(even, tw)
		buf[half-k] = scalar.CConj(scalar.CSub(even, tw))
	}
}

func (p *RealPlan[T]) validateInverse(dst []T, src []Complex[T]) error {
	if dst == nil || src == nil {
		return ErrNilSlice
	}

	if len(dst) < p.n || len(src) < p.half+1 {
		return ErrLengthMismatch
	}

	return nil
}

func (p *RealPlan[T]) getScratch() *[]Complex[T] {
	s, _ := p.pool.Get().(*[]Complex[T])
	return s
}

func (p *RealPlan[T]) putScratch(s *[]Complex[T]) {
	p.pool.Put(s)
}
