package tol

import (
	"math"
	"testing"
)

func TestULP(t *testing.T) {
	if u := ULP(1); u != Epsilon {
		t.Errorf("ULP(1) = %v, want machine epsilon", u)
	}
	if u := ULP(0); u != math.SmallestNonzeroFloat64 {
		t.Errorf("ULP(0) = %v, want smallest subnormal", u)
	}
	if !math.IsInf(ULP(math.Inf(1)), 1) {
		t.Error("ULP(+Inf) should be +Inf")
	}
	if !math.IsNaN(ULP(math.NaN())) {
		t.Error("ULP(NaN) should be NaN")
	}
	// Scales with the exponent.
	if u := ULP(1e300); u <= 1e283 {
		t.Errorf("ULP(1e300) = %v, too small", u)
	}
}

func TestIsApprox(t *testing.T) {
	d := Default()
	if !d.IsApprox(1.00000000001, 1) {
		t.Error("within relative tolerance should pass")
	}
	if d.IsApprox(1.001, 1) {
		t.Error("outside relative tolerance should fail")
	}
	if d.IsApprox(math.NaN(), 1) || d.IsApprox(1, math.NaN()) {
		t.Error("NaN never approximates")
	}
}

func TestIsApproxZero(t *testing.T) {
	d := Default()
	if !d.IsApproxZero(1e-12, 1) {
		t.Error("tiny value against unit scale should pass")
	}
	if d.IsApproxZero(1e-3, 1) {
		t.Error("1e-3 against unit scale should fail")
	}
	// A zero scale falls back to 1 rather than making the test vacuous.
	if !d.IsApproxZero(1e-12, 0) {
		t.Error("zero scale should behave like unit scale")
	}
}

func TestStrict(t *testing.T) {
	s := Strict()
	if !s.IsApprox(1+Epsilon, 1) {
		t.Error("one ulp off should pass the strict tolerance")
	}
	if s.IsApprox(1+8*Epsilon, 1) {
		t.Error("eight ulp off should fail the strict tolerance")
	}
}
