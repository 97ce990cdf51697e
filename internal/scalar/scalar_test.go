package scalar

import (
	"math"
	"testing"
)

func TestMulFloat(t *testing.T) {
	t.Parallel()

	if got := Mul(float32(2), float32(3)); got != 6 {
		t.Errorf("Mul(2, 3) = %v, want 6", got)
	}

	if got := Mul(0.5, -0.25); got != -0.125 {
		t.Errorf("Mul(0.5, -0.25) = %v, want -0.125", got)
	}
}

func TestMulFixedRenormalizes(t *testing.T) {
	t.Parallel()

	// 0.5 * 0.5 = 0.25 in Q31.
	if got := Mul(int32(1<<30), int32(1<<30)); got != 1<<29 {
		t.Errorf("Mul(2^30, 2^30) = %d, want %d", got, 1<<29)
	}

	// Same in Q15.
	if got := Mul(int16(1<<14), int16(1<<14)); got != 1<<13 {
		t.Errorf("Mul(2^14, 2^14) = %d, want %d", got, 1<<13)
	}
}

func TestMulFixedRoundHalfUp(t *testing.T) {
	t.Parallel()

	// 1 * 2^30 in Q31 produces exactly half an LSB: rounds up to 1.
	if got := Mul(int32(1), int32(1<<30)); got != 1 {
		t.Errorf("half-LSB product rounded to %d, want 1", got)
	}

	// Just under half an LSB: rounds down to 0.
	if got := Mul(int32(1), int32(1<<30-1)); got != 0 {
		t.Errorf("sub-half-LSB product rounded to %d, want 0", got)
	}

	// Negative half-LSB rounds toward positive infinity (half-up).
	if got := Mul(int32(-1), int32(1<<30)); got != 0 {
		t.Errorf("negative half-LSB product rounded to %d, want 0", got)
	}

	if got := Mul(int16(1), int16(1<<14)); got != 1 {
		t.Errorf("Q15 half-LSB product rounded to %d, want 1", got)
	}
}

// TestMulFixedIntermediateRange confirms the widened intermediate holds the
// product plus the rounding bias for the extreme values of the narrow type.
func TestMulFixedIntermediateRange(t *testing.T) {
	t.Parallel()

	extremes16 := []int16{math.MinInt16, math.MinInt16 + 1, -1, 0, 1, math.MaxInt16 - 1, math.MaxInt16}

	for _, a := range extremes16 {
		for _, b := range extremes16 {
			wide := int32(a) * int32(b)
			if int64(wide) != int64(a)*int64(b) {
				t.Fatalf("int32 intermediate overflowed for %d*%d", a, b)
			}

			if int64(wide)+1<<(fracBits16-1) > math.MaxInt32 {
				t.Fatalf("rounding bias overflows intermediate for %d*%d", a, b)
			}
		}
	}

	// For int32 the widened product is at most 2^62 in magnitude, so the
	// 2^30 rounding bias cannot overflow int64.
	const maxProduct = int64(math.MinInt32) * int64(math.MinInt32)
	if maxProduct+1<<(fracBits32-1) < 0 {
		t.Fatal("rounding bias overflows int64 intermediate")
	}
}

func TestDiv(t *testing.T) {
	t.Parallel()

	if got := Div(float64(1), 4); got != 0.25 {
		t.Errorf("Div(1, 4) = %v, want 0.25", got)
	}

	// Q31: 0.5/2 = 0.25, exact through the reciprocal multiply.
	if got := Div(int32(1<<30), 2); got != 1<<29 {
		t.Errorf("Div(2^30, 2) = %d, want %d", got, 1<<29)
	}

	// Reciprocal convention: Div(a, d) == Mul(a, MaxValue/d).
	a := int16(12345)
	if got, want := Div(a, 4), Mul(a, int16(math.MaxInt16/4)); got != want {
		t.Errorf("Div(%d, 4) = %d, want Mul form %d", a, got, want)
	}
}

func TestHalve(t *testing.T) {
	t.Parallel()

	if got := Halve(float32(3)); got != 1.5 {
		t.Errorf("Halve(3) = %v, want 1.5", got)
	}

	// Fixed-point halve is an arithmetic shift: rounds toward -inf.
	if got := Halve(int16(-3)); got != -2 {
		t.Errorf("Halve(-3) = %d, want -2", got)
	}

	if got := Halve(int32(7)); got != 3 {
		t.Errorf("Halve(7) = %d, want 3", got)
	}
}

func TestPhasorFixedScaling(t *testing.T) {
	t.Parallel()

	cos16, sin16 := Phasor[int16](0)
	if cos16 != math.MaxInt16 || sin16 != 0 {
		t.Errorf("Phasor[int16](0) = (%d, %d), want (%d, 0)", cos16, sin16, math.MaxInt16)
	}

	cos32, sin32 := Phasor[int32](math.Pi)
	if cos32 != -math.MaxInt32 {
		t.Errorf("Phasor[int32](pi) cos = %d, want %d", cos32, -math.MaxInt32)
	}

	if sin32 > 2 || sin32 < -2 {
		t.Errorf("Phasor[int32](pi) sin = %d, want ~0", sin32)
	}
}

func TestPhasorFloat(t *testing.T) {
	t.Parallel()

	cosv, sinv := Phasor[float64](math.Pi / 2)
	if math.Abs(cosv) > 1e-15 || math.Abs(sinv-1) > 1e-15 {
		t.Errorf("Phasor(pi/2) = (%v, %v), want (0, 1)", cosv, sinv)
	}
}

func TestFloat64RoundTrip(t *testing.T) {
	t.Parallel()

	for _, v := range []float64{-1, -0.5, 0, 0.25, 0.999} {
		got := ToFloat64(FromFloat64[int32](v))
		if math.Abs(got-v) > 1e-9 {
			t.Errorf("int32 unit round trip of %v = %v", v, got)
		}
	}
}

func TestCMul(t *testing.T) {
	t.Parallel()

	// (1+2i)(3+4i) = -5+10i.
	got := CMul(Complex[float64]{Re: 1, Im: 2}, Complex[float64]{Re: 3, Im: 4})
	if got.Re != -5 || got.Im != 10 {
		t.Errorf("CMul = %+v, want {-5 10}", got)
	}

	// i * i = -1 in Q15.
	unit := Complex[int16]{Re: 0, Im: math.MaxInt16}

	sq := CMul(unit, unit)
	if sq.Im != 0 || sq.Re > -math.MaxInt16+2 {
		t.Errorf("CMul(i, i) = %+v, want ~{-%d 0}", sq, math.MaxInt16)
	}
}

func TestCExpUnitMagnitude(t *testing.T) {
	t.Parallel()

	for k := range 16 {
		c := CExp[float64](2 * math.Pi * float64(k) / 16)
		if mag := math.Hypot(c.Re, c.Im); math.Abs(mag-1) > 1e-15 {
			t.Errorf("CExp(k=%d) magnitude %v, want 1", k, mag)
		}
	}
}
