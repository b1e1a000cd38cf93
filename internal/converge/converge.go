package converge

import "math"

// Status classifies how an iterative evaluation finished.
type Status int

const (
	// Converged means adjacent updates came within tolerance.
	Converged Status = iota
	// MaxIterations means the iteration cap was hit first.
	MaxIterations
	// ExhaustedInput means the term source stopped producing values.
	ExhaustedInput
)

func (s Status) String() string {
	switch s {
	case Converged:
		return "converged"
	case MaxIterations:
		return "max iterations"
	case ExhaustedInput:
		return "exhausted input"
	}
	return "unknown"
}

// Result carries the last value reached together with the outcome tag and
// the number of iterations spent. Callers must inspect Status; a
// MaxIterations value is the best estimate obtained, not garbage.
type Result struct {
	Status     Status
	Iterations int
	Value      float64
}

// DefaultMaxIterations bounds every iterative helper in this package.
const DefaultMaxIterations = 100

// Series sums term(0) + term(1) + ... until a term is negligible relative
// to the running sum. Works for monotone and for oscillating-but-decaying
// term sequences. term returning (_, false) ends the input early.
func Series(term func(n int) (float64, bool), relTol float64, maxIter int) Result {
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}
	sum := 0.0
	for n := 0; n < maxIter; n++ {
		t, ok := term(n)
		if !ok {
			return Result{Status: ExhaustedInput, Iterations: n, Value: sum}
		}
		sum += t
		if math.Abs(t) <= relTol*math.Abs(sum) {
			return Result{Status: Converged, Iterations: n + 1, Value: sum}
		}
	}
	return Result{Status: MaxIterations, Iterations: maxIter, Value: sum}
}

// tiny replaces a zero denominator inside the Lentz recurrences.
const tiny = 1e-300

// Lentz evaluates the continued fraction
//
//	b0 + a(1)/(b(1) + a(2)/(b(2) + ...))
//
// with the modified Lentz method: running numerator/denominator ratios C and
// D are updated per term so the fraction never has to be re-expanded from
// the bottom, and zeros are nudged to a tiny value to keep the recurrence
// defined.
func Lentz(b0 float64, a, b func(i int) float64, relTol float64, maxIter int) Result {
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}
	f := b0
	if f == 0 {
		f = tiny
	}
	c := f
	d := 0.0
	for i := 1; i <= maxIter; i++ {
		ai, bi := a(i), b(i)
		d = bi + ai*d
		if d == 0 {
			d = tiny
		}
		c = bi + ai/c
		if c == 0 {
			c = tiny
		}
		d = 1 / d
		delta := c * d
		f *= delta
		if math.Abs(delta-1) <= relTol {
			return Result{Status: Converged, Iterations: i, Value: f}
		}
	}
	return Result{Status: MaxIterations, Iterations: maxIter, Value: f}
}
