package roots

import "math"

// Secant solves f(x) == intercept by linear interpolation through the two
// most recent iterates. No bracket is maintained, so the iteration can walk
// away from the root on flat regions; that is a documented limitation of
// the method, not of this implementation. The returned estimate is the
// degenerate single-point form.
func Secant(f Func, br Estimate, tolr, intercept float64) Result {
	c := &counter{f: f}
	g := c.shifted(intercept)

	x0, x1 := br.A, br.B
	f0, f1 := br.FA-intercept, br.FB-intercept
	if f0 == 0 {
		return Result{Status: Converged, Estimate: exact(x0), Evaluations: c.n}
	}

	for i := 0; i < DefaultMaxIterations; i++ {
		if f1 == 0 {
			return Result{Status: Converged, Estimate: exact(x1), Evaluations: c.n}
		}
		if f1 == f0 {
			// Flat secant; no step can be formed.
			return Result{Status: MaxIterations, Estimate: exact(x1), Evaluations: c.n}
		}
		x2 := x1 - f1*(x1-x0)/(f1-f0)
		if math.IsNaN(x2) || math.IsInf(x2, 0) {
			return Result{Status: MaxIterations, Estimate: exact(x1), Evaluations: c.n}
		}
		f2 := g(x2)
		x0, f0 = x1, f1
		x1, f1 = x2, f2

		step := math.Abs(x1 - x0)
		if step <= tolr*math.Max(math.Abs(x1), 1)+minWidth || withinTolerance(exact(x1), f1, tolr, intercept) {
			return Result{Status: Converged, Estimate: exact(x1), Evaluations: c.n}
		}
	}
	return Result{Status: MaxIterations, Estimate: exact(x1), Evaluations: c.n}
}
