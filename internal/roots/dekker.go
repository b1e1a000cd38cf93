package roots

import "math"

// Dekker solves f(x) == intercept keeping a true bracket: at each step a
// secant step through the two most recent iterates competes with the
// bisection midpoint, and the secant point is taken only when it lies
// strictly between the last iterate and the midpoint.
func Dekker(f Func, br Estimate, tolr, intercept float64) Result {
	c := &counter{f: f}
	g := c.shifted(intercept)

	// b is the best iterate, a its contrapoint (f changes sign across
	// [a, b]), prev the previous best.
	a, b := br.A, br.B
	fa, fb := br.FA-intercept, br.FB-intercept
	if r, done := checkEndpoints(a, b, fa, fb, c); done {
		return r
	}
	if math.Abs(fa) < math.Abs(fb) {
		a, b, fa, fb = b, a, fb, fa
	}
	prev, fprev := a, fa

	for i := 0; i < DefaultMaxIterations; i++ {
		m := b + (a-b)/2

		next := m
		if fb != fprev {
			s := b - fb*(b-prev)/(fb-fprev)
			if between(s, b, m) {
				next = s
			}
		}

		fnext := g(next)
		prev, fprev = b, fb
		if fnext == 0 {
			return Result{Status: Converged, Estimate: exact(next), Evaluations: c.n}
		}
		if sameSign(fnext, fa) {
			a, fa = b, fb
		}
		b, fb = next, fnext
		if math.Abs(fa) < math.Abs(fb) {
			a, b, fa, fb = b, a, fb, fa
			prev, fprev = a, fa
		}

		e := NewEstimate(a, b, fa+intercept, fb+intercept)
		if withinTolerance(e, fb, tolr, intercept) {
			return Result{Status: Converged, Estimate: e, Evaluations: c.n}
		}
	}
	return Result{
		Status:      MaxIterations,
		Estimate:    NewEstimate(a, b, fa+intercept, fb+intercept),
		Evaluations: c.n,
	}
}

// between reports whether x lies strictly between lo and hi (in either
// order).
func between(x, lo, hi float64) bool {
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo < x && x < hi
}
