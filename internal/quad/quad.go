package quad

import "math"

// Result reports a quadrature outcome: the value reached, whether the
// refinement converged, and how many integrand evaluations were spent.
type Result struct {
	Converged   bool
	Evaluations int
	Value       float64
}

// Trapezoid integrates f over [a, b] with n equal panels.
func Trapezoid(f func(float64) float64, a, b float64, n int) float64 {
	if n < 1 {
		n = 1
	}
	h := (b - a) / float64(n)
	s := (f(a) + f(b)) / 2
	for i := 1; i < n; i++ {
		s += f(a + float64(i)*h)
	}
	return s * h
}

// DefaultMaxLevel caps Romberg refinement at 2^20 panels.
const DefaultMaxLevel = 20

// Romberg integrates f over [a, b] by repeated trapezoid halving with
// Richardson extrapolation. Refinement stops when two successive diagonal
// estimates agree to relTol, or when maxLevel halvings have been spent.
func Romberg(f func(float64) float64, a, b, relTol float64, maxLevel int) Result {
	if maxLevel <= 0 || maxLevel > 30 {
		maxLevel = DefaultMaxLevel
	}
	r := make([][]float64, maxLevel+1)
	h := b - a
	evals := 2
	r[0] = []float64{Trapezoid(f, a, b, 1)}

	for k := 1; k <= maxLevel; k++ {
		h /= 2
		// New midpoints only; previous abscissae are folded in from r[k-1][0].
		s := 0.0
		n := 1 << uint(k-1)
		for i := 0; i < n; i++ {
			s += f(a + h*(2*float64(i)+1))
		}
		evals += n

		r[k] = make([]float64, k+1)
		r[k][0] = r[k-1][0]/2 + h*s
		pow4 := 1.0
		for j := 1; j <= k; j++ {
			pow4 *= 4
			r[k][j] = r[k][j-1] + (r[k][j-1]-r[k-1][j-1])/(pow4-1)
		}

		cur, prev := r[k][k], r[k-1][k-1]
		if k >= 3 && math.Abs(cur-prev) <= relTol*math.Abs(cur)+1e-300 {
			return Result{Converged: true, Evaluations: evals, Value: cur}
		}
	}
	return Result{Converged: false, Evaluations: evals, Value: r[maxLevel][maxLevel]}
}
