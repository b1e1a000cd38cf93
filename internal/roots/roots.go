// Package roots is a root-finding toolkit: a geometric bracketing search
// plus interchangeable bracketed solvers (bisection, secant, Dekker,
// Ridders, Brent, TOMS 748) and derivative-based solvers (Newton, Halley)
// sharing one result contract. Outcomes are tagged values, never panics:
// callers inspect Status and decide whether a non-converged estimate is
// still usable.
package roots

import "math"

// Func is a scalar function of one variable. Solvers call it repeatedly and
// assume it is referentially transparent.
type Func func(x float64) float64

// Estimate is a bracketed root estimate: an interval [A, B] with the
// function values at both ends. Invariant: FA*FB <= 0 (or both zero). The
// degenerate form A == B encodes an exact root.
type Estimate struct {
	A, B   float64
	FA, FB float64
}

// NewEstimate builds an Estimate, normalizing endpoint order so A <= B.
func NewEstimate(a, b, fa, fb float64) Estimate {
	if b < a {
		a, b = b, a
		fa, fb = fb, fa
	}
	return Estimate{A: a, B: b, FA: fa, FB: fb}
}

func exact(x float64) Estimate {
	return Estimate{A: x, B: x}
}

// Bracketed reports whether the interval still confines a sign change.
func (e Estimate) Bracketed() bool {
	return e.FA*e.FB <= 0
}

// Exact reports the degenerate zero-width form.
func (e Estimate) Exact() bool { return e.A == e.B }

// Width returns the bracket width.
func (e Estimate) Width() float64 { return e.B - e.A }

// Best returns the endpoint with the function value closest to zero.
func (e Estimate) Best() float64 {
	if math.Abs(e.FB) < math.Abs(e.FA) {
		return e.B
	}
	return e.A
}

// Status tags a solver outcome.
type Status int

const (
	// Converged carries a satisfied estimate.
	Converged Status = iota
	// MaxIterations carries the best estimate obtained when the iteration
	// cap was hit.
	MaxIterations
	// BracketFailed means no sign change was found; root search never
	// started.
	BracketFailed
)

func (s Status) String() string {
	switch s {
	case Converged:
		return "converged"
	case MaxIterations:
		return "max iterations"
	case BracketFailed:
		return "bracket failed"
	}
	return "unknown"
}

// Result is the shared solver outcome: the tag, the final estimate, and the
// number of function evaluations spent.
type Result struct {
	Status      Status
	Estimate    Estimate
	Evaluations int
}

// DefaultMaxIterations bounds every solver in this package.
const DefaultMaxIterations = 100

// counter wraps a Func and counts invocations. One counter is owned by one
// solver call; nothing escapes it.
type counter struct {
	n int
	f Func
}

func (c *counter) call(x float64) float64 {
	c.n++
	return c.f(x)
}

// shifted returns the counted target g(x) = f(x) - intercept, so solvers
// find f(x) == intercept without the caller re-deriving the function.
func (c *counter) shifted(intercept float64) Func {
	return func(x float64) float64 { return c.call(x) - intercept }
}

// withinTolerance is the shared convergence predicate: the bracket width is
// within tol relative to the larger endpoint (with a floor for roots at
// zero), or the function value at the newer endpoint is within tol of the
// intercept. fNew is already intercept-shifted; scale sets the magnitude
// used when the intercept is zero.
func withinTolerance(e Estimate, fNew, tolr, scale float64) bool {
	if e.Exact() {
		return true
	}
	m := math.Max(math.Abs(e.A), math.Abs(e.B))
	if e.Width() <= tolr*m+minWidth {
		return true
	}
	if scale == 0 {
		scale = 1
	}
	return math.Abs(fNew) <= tolr*math.Abs(scale)
}

// minWidth is the absolute bracket-width floor, guarding roots at or next
// to zero where a purely relative test can never fire.
const minWidth = 4 * math.SmallestNonzeroFloat64

func sameSign(a, b float64) bool {
	return (a > 0 && b > 0) || (a < 0 && b < 0)
}
