package mixedfft

import (
	"sync"

	"github.com/cwbudde/algo-mixedfft/internal/kernel"
)

// Factor is one step of a plan's radix chain.
type Factor = kernel.Factor

// Plan computes forward and inverse complex DFTs of a fixed size. All setup
// (radix factorization, twiddle tables) happens eagerly in NewPlan; the
// transform methods allocate nothing beyond bounded kernel scratch.
//
// A Plan is safe for concurrent use once constructed, provided concurrent
// calls supply disjoint buffers.
type Plan[T Scalar] struct {
	t    *kernel.Transform[T]
	pool sync.Pool // *[]Complex[T] scratch, used by the strided variants
}

// NewPlan creates a plan for size-n transforms. The size may be any positive
// integer; lengths that cannot be decomposed within the radix chain capacity
// return ErrInvalidLength.
func NewPlan[T Scalar](n int) (*Plan[T], error) {
	if n < 1 {
		return nil, ErrInvalidLength
	}

	t, ok := kernel.NewTransform[T](n)
	if !ok {
		return nil, ErrInvalidLength
	}

	p := &Plan[T]{t: t}
	p.pool.New = func() any {
		s := make([]Complex[T], n)
		return &s
	}

	return p, nil
}

// Len returns the transform size.
func (p *Plan[T]) Len() int {
	return p.t.Len()
}

// Factors returns the radix chain the size decomposes into. The product of
// the radices equals Len() and the final entry has Length 1.
func (p *Plan[T]) Factors() []Factor {
	return p.t.Factors()
}

// Forward computes dst[k] = Σ_n src[n]·exp(-2πi·nk/N).
// dst and src must not overlap.
//
// Returns ErrNilSlice if dst or src is nil, ErrLengthMismatch if either
// holds fewer than Len() elements.
func (p *Plan[T]) Forward(dst, src []Complex[T]) error {
	if err := p.validate(dst, src); err != nil {
		return err
	}

	p.t.Forward(dst, src)

	return nil
}

// Inverse computes the unnormalized inverse DFT: Forward followed by Inverse
// reproduces the input scaled by Len() (callers divide by Len() to recover
// exact values; fixed-point sample types instead come back scaled by
// 1/Len() due to the per-stage overflow scaling). dst and src must not
// overlap.
//
// Returns ErrNilSlice if dst or src is nil, ErrLengthMismatch if either
// holds fewer than Len() elements.
func (p *Plan[T]) Inverse(dst, src []Complex[T]) error {
	if err := p.validate(dst, src); err != nil {
		return err
	}

	p.t.Inverse(dst, src)

	return nil
}

// InverseNormalized computes the inverse DFT and divides the result by
// Len(), so a Forward/InverseNormalized round trip reproduces the input for
// floating-point sample types.
func (p *Plan[T]) InverseNormalized(dst, src []Complex[T]) error {
	if err := p.Inverse(dst, src); err != nil {
		return err
	}

	kernel.ScaleInv(dst[:p.t.Len()], p.t.Len())

	return nil
}

func (p *Plan[T]) validate(dst, src []Complex[T]) error {
	if dst == nil || src == nil {
		return ErrNilSlice
	}

	if len(dst) < p.t.Len() || len(src) < p.t.Len() {
		return ErrLengthMismatch
	}

	return nil
}

func (p *Plan[T]) getScratch() *[]Complex[T] {
	s, _ := p.pool.Get().(*[]Complex[T])
	return s
}

func (p *Plan[T]) putScratch(s *[]Complex[T]) {
	p.pool.Put(s)
}
