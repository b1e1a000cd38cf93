package quad

import (
	"math"
	"testing"
)

func TestTrapezoid(t *testing.T) {
	// Exact for linear integrands at any panel count.
	f := func(x float64) float64 { return 2*x + 1 }
	if got := Trapezoid(f, 0, 4, 7); math.Abs(got-20) > 1e-13 {
		t.Errorf("Trapezoid = %.15f, want 20", got)
	}
}

func TestRombergPolynomial(t *testing.T) {
	f := func(x float64) float64 { return x * x }
	r := Romberg(f, 0, 1, 1e-12, 0)
	if !r.Converged {
		t.Fatal("did not converge")
	}
	if math.Abs(r.Value-1.0/3.0) > 1e-13 {
		t.Errorf("integral = %.16f, want 1/3", r.Value)
	}
}

func TestRombergSine(t *testing.T) {
	r := Romberg(math.Sin, 0, math.Pi, 1e-13, 0)
	if !r.Converged {
		t.Fatal("did not converge")
	}
	if math.Abs(r.Value-2) > 1e-12 {
		t.Errorf("integral = %.16f, want 2", r.Value)
	}
}

func TestRombergGaussian(t *testing.T) {
	// integral of e^(-x^2) over [0, 5] = sqrt(pi)/2 * erf(5).
	f := func(x float64) float64 { return math.Exp(-x * x) }
	r := Romberg(f, 0, 5, 1e-12, 0)
	if !r.Converged {
		t.Fatal("did not converge")
	}
	want := math.SqrtPi / 2 * math.Erf(5)
	if math.Abs(r.Value-want) > 1e-12*want {
		t.Errorf("integral = %.16f, want %.16f", r.Value, want)
	}
}

func TestRombergReportsEvaluations(t *testing.T) {
	count := 0
	f := func(x float64) float64 { count++; return x }
	r := Romberg(f, 0, 1, 1e-12, 0)
	if r.Evaluations != count {
		t.Errorf("reported %d evaluations, actual %d", r.Evaluations, count)
	}
}
