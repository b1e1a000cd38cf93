package roots

import "math"

const (
	// DefaultBracketFactor is the geometric expansion factor of the
	// bracketing search.
	DefaultBracketFactor = 1.6
	// DefaultBracketMaxIterations bounds the expansion steps.
	DefaultBracketMaxIterations = 30
)

// Bracket searches outward from guess for an interval with a sign change,
// expanding geometrically with no bounds on either side.
//
// Known limitation: for a non-monotonic f and a poor guess the expansion
// can step over both roots and report BracketFailed.
func Bracket(f Func, guess float64) Result {
	return BracketIn(f, guess, math.Inf(-1), math.Inf(1))
}

// BracketIn is Bracket with caller-supplied bounds. Expansion steps that
// would cross a bound are clamped so the endpoint approaches the bound
// geometrically instead of jumping past it.
func BracketIn(f Func, guess, xmin, xmax float64) Result {
	c := &counter{f: f}

	a := clampToward(guess, xmin, xmax, guess)
	b := a * DefaultBracketFactor
	if b == a {
		// A zero guess has no scale to expand from; seed with a unit step.
		b = a + 1
	}
	b = clampToward(b, xmin, xmax, a)

	fa := c.call(a)
	fb := c.call(b)

	for i := 0; i < DefaultBracketMaxIterations; i++ {
		if fa == 0 {
			return Result{Status: Converged, Estimate: exact(a), Evaluations: c.n}
		}
		if fb == 0 {
			return Result{Status: Converged, Estimate: exact(b), Evaluations: c.n}
		}
		if fa*fb < 0 {
			return Result{Status: Converged, Estimate: NewEstimate(a, b, fa, fb), Evaluations: c.n}
		}

		// Move the endpoint whose value is closer to zero further out.
		if math.Abs(fa) < math.Abs(fb) {
			next := a + DefaultBracketFactor*(a-b)
			next = clampToward(next, xmin, xmax, a)
			if next == a {
				return Result{Status: BracketFailed, Evaluations: c.n}
			}
			a, b, fa, fb = next, a, c.call(next), fa
		} else {
			next := b + DefaultBracketFactor*(b-a)
			next = clampToward(next, xmin, xmax, b)
			if next == b {
				return Result{Status: BracketFailed, Evaluations: c.n}
			}
			a, b, fa, fb = b, next, fb, c.call(next)
		}
	}
	return Result{Status: BracketFailed, Evaluations: c.n}
}

// clampToward keeps x inside [xmin, xmax]. A point past a finite bound is
// pulled to a fraction of the remaining distance from prev to the bound, so
// repeated expansions converge on the bound without touching it.
func clampToward(x, xmin, xmax, prev float64) float64 {
	if x < xmin {
		if prev <= xmin {
			return xmin
		}
		return xmin + (prev-xmin)/DefaultBracketFactor
	}
	if x > xmax {
		if prev >= xmax {
			return xmax
		}
		return xmax - (xmax-prev)/DefaultBracketFactor
	}
	return x
}
