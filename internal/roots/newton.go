package roots

import "math"

// Newton solves f(x) == intercept from guess using the first derivative.
// Steps that would leave [xmin, xmax] are replaced by a bisection half-step
// toward the violated bound. Pass infinities for unbounded search.
func Newton(f, df Func, guess, xmin, xmax, tolr, intercept float64) Result {
	return newtonHalley(f, df, nil, guess, xmin, xmax, tolr, intercept)
}

// Halley solves f(x) == intercept using first and second derivatives.
func Halley(f, df, d2f Func, guess, xmin, xmax, tolr, intercept float64) Result {
	ratio := func(x float64) float64 { return d2f(x) / df(x) }
	return newtonHalley(f, df, ratio, guess, xmin, xmax, tolr, intercept)
}

// HalleyRatio is Halley's method taking the precomputed ratio f''/f'
// directly. For several special functions that ratio has a far simpler
// closed form than f'' alone, e.g. (a-1)/x - 1 for the regularized gamma.
func HalleyRatio(f, df, ratio Func, guess, xmin, xmax, tolr, intercept float64) Result {
	return newtonHalley(f, df, ratio, guess, xmin, xmax, tolr, intercept)
}

func newtonHalley(f, df, ratio Func, guess, xmin, xmax, tolr, intercept float64) Result {
	c := &counter{f: f}
	x := math.Min(math.Max(guess, xmin), xmax)

	for i := 0; i < DefaultMaxIterations; i++ {
		fx := c.call(x) - intercept
		if fx == 0 {
			return Result{Status: Converged, Estimate: exact(x), Evaluations: c.n}
		}
		dfx := df(x)

		var step float64
		if dfx == 0 || math.IsNaN(dfx) || math.IsInf(dfx, 0) {
			// Flat derivative: fall back to a half-step toward whichever
			// bound is finite, or give up unbounded.
			next, ok := halfStep(x, fx, xmin, xmax)
			if !ok {
				return Result{Status: MaxIterations, Estimate: exact(x), Evaluations: c.n}
			}
			step = x - next
		} else {
			step = fx / dfx
			if ratio != nil {
				den := 1 - step*ratio(x)/2
				// A Halley denominator near or below zero means the
				// correction has left its region of validity; keep the
				// plain Newton step there.
				if den > 0.1 && !math.IsNaN(den) {
					step /= den
				}
			}
		}

		// Steps that would reach or cross a bound become bisection
		// half-steps, keeping every iterate strictly inside the interval.
		next := x - step
		if next <= xmin {
			next = x + (xmin-x)/2
		} else if next >= xmax {
			next = x + (xmax-x)/2
		}
		if next == x && (x == xmin || x == xmax) {
			// Pinned at a bound with a nonzero residual; standing still is
			// not convergence.
			return Result{Status: MaxIterations, Estimate: exact(x), Evaluations: c.n}
		}

		moved := math.Abs(next - x)
		x = next
		if moved <= tolr*math.Max(math.Abs(x), 1) {
			return Result{Status: Converged, Estimate: exact(x), Evaluations: c.n}
		}
	}
	return Result{Status: MaxIterations, Estimate: exact(x), Evaluations: c.n}
}

func halfStep(x, fx, xmin, xmax float64) (float64, bool) {
	switch {
	case fx > 0 && !math.IsInf(xmin, -1):
		return x + (xmin-x)/2, true
	case fx < 0 && !math.IsInf(xmax, 1):
		return x + (xmax-x)/2, true
	default:
		return 0, false
	}
}
