package roots

import "math"

// Ridders solves f(x) == intercept by fitting an exponential through the
// endpoint values and the midpoint value, solving it in closed form for the
// next abscissa, and re-bracketing so the sign change is never lost.
func Ridders(f Func, br Estimate, tolr, intercept float64) Result {
	c := &counter{f: f}
	g := c.shifted(intercept)

	a, b := br.A, br.B
	fa, fb := br.FA-intercept, br.FB-intercept
	if r, done := checkEndpoints(a, b, fa, fb, c); done {
		return r
	}

	for i := 0; i < DefaultMaxIterations; i++ {
		m := a + (b-a)/2
		fm := g(m)
		s := math.Sqrt(fm*fm - fa*fb)
		if s == 0 {
			// All three values vanish together; the midpoint is as good as
			// it gets.
			return Result{Status: Converged, Estimate: exact(m), Evaluations: c.n}
		}

		// The exponential fit, solved for its zero crossing.
		x := m + (m-a)*math.Copysign(1, fa-fb)*fm/s
		fx := g(x)
		if fx == 0 {
			return Result{Status: Converged, Estimate: exact(x), Evaluations: c.n}
		}

		// Keep whichever pair of points still confines the sign change.
		switch {
		case !sameSign(fm, fx):
			a, fa = m, fm
			b, fb = x, fx
		case !sameSign(fa, fx):
			b, fb = x, fx
		default:
			a, fa = x, fx
		}
		if a > b {
			a, b, fa, fb = b, a, fb, fa
		}

		e := Estimate{A: a, B: b, FA: fa + intercept, FB: fb + intercept}
		if withinTolerance(e, fx, tolr, intercept) {
			return Result{Status: Converged, Estimate: e, Evaluations: c.n}
		}
	}
	return Result{
		Status:      MaxIterations,
		Estimate:    Estimate{A: a, B: b, FA: fa + intercept, FB: fb + intercept},
		Evaluations: c.n,
	}
}
