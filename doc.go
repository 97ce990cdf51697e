// Package mixedfft computes forward and inverse DFTs of arbitrary
// (non-power-of-two) length via recursive mixed-radix Cooley-Tukey
// decomposition, for both floating-point and saturating fixed-point sample
// types.
//
// A Plan is created once per transform size; construction computes the radix
// factorization and twiddle tables eagerly, so repeated transforms run
// without further allocation. RealPlan halves the work for real-valued
// signals by mapping an N-point real transform onto an N/2-point complex
// transform plus an O(N) packing correction.
//
// The inverse transforms are unnormalized: Inverse(Forward(x)) reproduces x
// scaled by N (for fixed-point sample types the per-stage overflow scaling
// instead yields x/N). Use InverseNormalized or divide by N to recover the
// original values.
//
// Plans are safe for concurrent use once constructed, provided each call
// supplies disjoint buffers.
package mixedfft
