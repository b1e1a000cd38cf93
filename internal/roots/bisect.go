package roots

// Bisect solves f(x) == intercept on the bracket by repeated halving,
// keeping whichever half still confines the sign change. Linear
// convergence, but it cannot fail on a valid bracket.
func Bisect(f Func, br Estimate, tolr, intercept float64) Result {
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
		if fm == 0 {
			return Result{Status: Converged, Estimate: exact(m), Evaluations: c.n}
		}
		if sameSign(fm, fa) {
			a, fa = m, fm
		} else {
			b, fb = m, fm
		}
		e := Estimate{A: a, B: b, FA: fa + intercept, FB: fb + intercept}
		if withinTolerance(e, fm, tolr, intercept) {
			return Result{Status: Converged, Estimate: e, Evaluations: c.n}
		}
	}
	return Result{
		Status:      MaxIterations,
		Estimate:    Estimate{A: a, B: b, FA: fa + intercept, FB: fb + intercept},
		Evaluations: c.n,
	}
}

// checkEndpoints handles the trivial outcomes shared by every bracketed
// method: an endpoint already on the intercept, or a bracket that never
// confined a sign change.
func checkEndpoints(a, b, fa, fb float64, c *counter) (Result, bool) {
	if fa == 0 {
		return Result{Status: Converged, Estimate: exact(a), Evaluations: c.n}, true
	}
	if fb == 0 {
		return Result{Status: Converged, Estimate: exact(b), Evaluations: c.n}, true
	}
	if fa*fb > 0 {
		return Result{Status: BracketFailed, Evaluations: c.n}, true
	}
	return Result{}, false
}
