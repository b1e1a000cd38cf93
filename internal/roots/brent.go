package roots

import "math"

// Brent solves f(x) == intercept by Brent's method: inverse quadratic
// interpolation when three distinct points are available, secant otherwise,
// with d/e step history that forces a bisection whenever an interpolated
// step fails to shrink the bracket fast enough or would leave it.
// Guaranteed to converge on a valid bracket.
func Brent(f Func, br Estimate, tolr, intercept float64) Result {
	c := &counter{f: f}
	g := c.shifted(intercept)

	a, b := br.A, br.B
	fa, fb := br.FA-intercept, br.FB-intercept
	if r, done := checkEndpoints(a, b, fa, fb, c); done {
		return r
	}

	// b is the best iterate, a the previous one, cc the contrapoint.
	cc, fc := a, fa
	// d is the last step taken, e the one before it.
	d := b - a
	e := d

	for i := 0; i < DefaultMaxIterations; i++ {
		if math.Abs(fc) < math.Abs(fb) {
			a, b, cc = b, cc, b
			fa, fb, fc = fb, fc, fb
		}

		tol1 := 2*ulp1*math.Abs(b) + tolr*math.Max(math.Abs(b), 1)/2
		xm := (cc - b) / 2
		if math.Abs(xm) <= tol1 || fb == 0 {
			est := NewEstimate(b, cc, fb+intercept, fc+intercept)
			if fb == 0 {
				est = exact(b)
			}
			return Result{Status: Converged, Estimate: est, Evaluations: c.n}
		}

		if math.Abs(e) >= tol1 && math.Abs(fa) > math.Abs(fb) {
			var p, q, r float64
			s := fb / fa
			if a == cc {
				// Secant.
				p = 2 * xm * s
				q = 1 - s
			} else {
				// Inverse quadratic interpolation.
				q = fa / fc
				r = fb / fc
				p = s * (2*xm*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			}
			p = math.Abs(p)
			if 2*p < math.Min(3*xm*q-math.Abs(tol1*q), math.Abs(e*q)) {
				// Interpolation accepted.
				e, d = d, p/q
			} else {
				d = xm
				e = d
			}
		} else {
			d = xm
			e = d
		}

		a, fa = b, fb
		if math.Abs(d) > tol1 {
			b += d
		} else {
			b += math.Copysign(tol1, xm)
		}
		fb = g(b)
		if sameSign(fb, fc) {
			cc, fc = a, fa
			d = b - a
			e = d
		}
	}
	return Result{
		Status:      MaxIterations,
		Estimate:    NewEstimate(b, cc, fb+intercept, fc+intercept),
		Evaluations: c.n,
	}
}

// ulp1 is the machine epsilon for float64.
const ulp1 = 2.220446049250313e-16
