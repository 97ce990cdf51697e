package kernel

import "testing"

func TestFactorizeChainInvariants(t *testing.T) {
	t.Parallel()

	sizes := []int{1, 2, 3, 4, 5, 6, 8, 12, 15, 16, 24, 36, 37, 40, 100, 105, 1024, 1200, 12000}

	for _, n := range sizes {
		factors, ok := Factorize(n)
		if !ok {
			t.Fatalf("Factorize(%d) failed", n)
		}

		if len(factors) > MaxFactors {
			t.Fatalf("Factorize(%d) produced %d factors, cap is %d", n, len(factors), MaxFactors)
		}

		product := 1
		remaining := n

		for i, f := range factors {
			product *= f.Radix
			remaining /= f.Radix

			if f.Length != remaining {
				t.Errorf("Factorize(%d) step %d: length %d, want %d", n, i, f.Length, remaining)
			}
		}

		if product != n {
			t.Errorf("Factorize(%d): radix product %d", n, product)
		}

		if last := factors[len(factors)-1]; last.Length != 1 {
			t.Errorf("Factorize(%d): final length %d, want 1", n, last.Length)
		}
	}
}

func TestFactorizeGreedyPolicy(t *testing.T) {
	t.Parallel()

	// 24 = 4·2·3 under the 4-first greedy policy.
	factors, ok := Factorize(24)
	if !ok {
		t.Fatal("Factorize(24) failed")
	}

	radices := make([]int, len(factors))
	for i, f := range factors {
		radices[i] = f.Radix
	}

	want := []int{4, 2, 3}
	if len(radices) != len(want) {
		t.Fatalf("Factorize(24) radices %v, want %v", radices, want)
	}

	for i := range want {
		if radices[i] != want[i] {
			t.Fatalf("Factorize(24) radices %v, want %v", radices, want)
		}
	}
}

func TestFactorizeTwelve(t *testing.T) {
	t.Parallel()

	factors, ok := Factorize(12)
	if !ok {
		t.Fatal("Factorize(12) failed")
	}

	product := 1
	for _, f := range factors {
		product *= f.Radix
	}

	if product != 12 {
		t.Errorf("radix product %d, want 12", product)
	}

	if factors[len(factors)-1].Length != 1 {
		t.Errorf("final length %d, want 1", factors[len(factors)-1].Length)
	}
}

func TestFactorizeLargePrimeAsSingleRadix(t *testing.T) {
	t.Parallel()

	factors, ok := Factorize(37)
	if !ok {
		t.Fatal("Factorize(37) failed")
	}

	if len(factors) != 1 || factors[0].Radix != 37 || factors[0].Length != 1 {
		t.Errorf("Factorize(37) = %+v, want single radix-37 step", factors)
	}
}

func TestFactorizeInvalid(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, -1, -24} {
		if _, ok := Factorize(n); ok {
			t.Errorf("Factorize(%d) succeeded, want failure", n)
		}
	}
}

func TestFactorizeOne(t *testing.T) {
	t.Parallel()

	factors, ok := Factorize(1)
	if !ok || len(factors) != 1 || factors[0].Radix != 1 {
		t.Errorf("Factorize(1) = %+v ok=%v, want degenerate chain", factors, ok)
	}
}
