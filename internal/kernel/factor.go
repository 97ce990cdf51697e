// Package kernel implements the mixed-radix transform engine: length
// factorization, twiddle tables, and the recursive decimation-in-time
// decomposition with its butterfly kernels. Nothing here validates buffer
// sizes; the public plans in the root package are the checked entry points.
package kernel

// Factor is one step of the radix chain: combine Radix sub-transforms of
// Length points each. The chain telescopes, so Length at step i is the
// transform size divided by the product of the radices up to and including
// step i, and the final entry has Length == 1.
type Factor struct {
	Radix  int
	Length int
}

// MaxFactors bounds the radix chain and therefore the recursion depth of the
// transform. 32 radix-2 steps cover every length representable in an int32,
// so the bound is never hit for realistic sizes.
const MaxFactors = 32

// Factorize decomposes n into the radix chain. The trial radix starts at 4
// and falls through 2, 3, then ascending odd values; once the trial radix
// squared exceeds the remaining length, the remainder is taken as a single
// final radix. This greedily favors the cheap radix-4 and radix-2 kernels
// and leaves large prime or composite remainders to the generic kernel.
//
// Returns false if n < 1 or the chain would exceed MaxFactors entries.
func Factorize(n int) ([]Factor, bool) {
	if n < 1 {
		return nil, false
	}

	if n == 1 {
		return []Factor{{Radix: 1, Length: 1}}, true
	}

	factors := make([]Factor, 0, 8)
	p := 4
	m := n

	for m > 1 {
		for m%p != 0 {
			switch p {
			case 4:
				p = 2
			case 2:
				p = 3
			default:
				p += 2
			}

			if p*p > m {
				p = m
			}
		}

		m /= p

		if len(factors) == MaxFactors {
			return nil, false
		}

		factors = append(factors, Factor{Radix: p, Length: m})
	}

	return factors, true
}
