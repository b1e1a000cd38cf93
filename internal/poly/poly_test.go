package poly

import (
	"math"
	"testing"
)

func TestHorner(t *testing.T) {
	tests := []struct {
		coeffs   []float64
		x        float64
		expected float64
	}{
		{nil, 3, 0},
		{[]float64{7}, 100, 7},
		{[]float64{1, 2, 3}, 2, 17},       // 1 + 2x + 3x^2
		{[]float64{-5, -2, 0, 1}, 2.5, 5.625}, // x^3 - 2x - 5
	}

	for _, tt := range tests {
		if got := Horner(tt.coeffs, tt.x); got != tt.expected {
			t.Errorf("Horner(%v, %v) = %v, want %v", tt.coeffs, tt.x, got, tt.expected)
		}
	}
}

func TestClenshaw(t *testing.T) {
	// T0 + T1 + T2 at x: 1 + x + (2x^2 - 1) = x + 2x^2.
	coeffs := []float64{1, 1, 1}
	for _, x := range []float64{-1, -0.5, 0, 0.5, 1} {
		want := x + 2*x*x
		if got := Clenshaw(coeffs, x); math.Abs(got-want) > 1e-15 {
			t.Errorf("Clenshaw at %v = %v, want %v", x, got, want)
		}
	}
}

func TestClenshawMatchesDirect(t *testing.T) {
	// Compare against explicit Chebyshev recursion for a longer series.
	coeffs := []float64{0.3, -1.2, 0.5, 0.08, -0.033}
	for _, x := range []float64{-0.9, -0.2, 0.1, 0.77} {
		tkm1, tk := 1.0, x
		want := coeffs[0]*tkm1 + coeffs[1]*tk
		for k := 2; k < len(coeffs); k++ {
			tkm1, tk = tk, 2*x*tk-tkm1
			want += coeffs[k] * tk
		}
		if got := Clenshaw(coeffs, x); math.Abs(got-want) > 1e-14 {
			t.Errorf("Clenshaw at %v = %.16f, want %.16f", x, got, want)
		}
	}
}
