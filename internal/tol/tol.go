package tol

import "math"

// Epsilon is the float64 machine epsilon, the ulp of 1.0.
const Epsilon = 2.220446049250313e-16

// Tolerance describes when two floating-point values count as equal.
// Rel is compared against the magnitude of the target, Abs is an absolute
// floor used when the target is zero or untrusted.
type Tolerance struct {
	Rel float64
	Abs float64
}

// Default returns the general-purpose tolerance used by the iterative
// routines in this repository: 1e-10 relative with a tiny absolute floor.
func Default() Tolerance {
	return Tolerance{Rel: 1e-10, Abs: 1e-300}
}

// Strict returns the tightest convergence tolerance that makes sense for
// accumulated double-precision sums: 2 ulp relative.
func Strict() Tolerance {
	return Tolerance{Rel: 2 * Epsilon, Abs: 0}
}

// ULP returns the distance from x to the next representable float64 away
// from zero. Infinities map to +Inf.
func ULP(x float64) float64 {
	if math.IsInf(x, 0) {
		return math.Inf(1)
	}
	if math.IsNaN(x) {
		return math.NaN()
	}
	return math.Abs(x - math.Float64frombits(math.Float64bits(x)^1))
}

// IsApprox reports whether v is within the tolerance of a possibly nonzero
// target. The relative part scales with |target|.
func (t Tolerance) IsApprox(v, target float64) bool {
	if math.IsNaN(v) || math.IsNaN(target) {
		return false
	}
	return math.Abs(v-target) <= t.Rel*math.Abs(target)+t.Abs
}

// IsApproxZero reports whether v is negligible against a known-zero target.
// scale sets the magnitude the caller trusts; pass 1 for unscaled checks.
func (t Tolerance) IsApproxZero(v, scale float64) bool {
	if math.IsNaN(v) {
		return false
	}
	if scale == 0 {
		scale = 1
	}
	return math.Abs(v) <= t.Rel*math.Abs(scale)+t.Abs
}
