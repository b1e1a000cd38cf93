package prob

import "math"

// Probability is a value in [0, 1] stored as whichever of the lower tail p
// or the upper tail q = 1-p was computed directly, so that the small tail
// is never reconstructed by subtraction from 1. Immutable; p + q == 1 to
// full precision by construction.
type Probability struct {
	value float64
	upper bool
}

// FromP builds a Probability from a directly computed lower tail.
func FromP(p float64) Probability {
	return Probability{value: p}
}

// FromQ builds a Probability from a directly computed upper tail.
func FromQ(q float64) Probability {
	return Probability{value: q, upper: true}
}

// NaN is the domain-violation sentinel in Probability form.
func NaN() Probability {
	return Probability{value: math.NaN()}
}

// P returns the lower tail.
func (pr Probability) P() float64 {
	if pr.upper {
		return 1 - pr.value
	}
	return pr.value
}

// Q returns the upper tail.
func (pr Probability) Q() float64 {
	if pr.upper {
		return pr.value
	}
	return 1 - pr.value
}

// Value returns the tail that was computed directly.
func (pr Probability) Value() float64 { return pr.value }

// IsUpper reports whether the stored tail is q rather than p.
func (pr Probability) IsUpper() bool { return pr.upper }

// IsNaN reports the domain-violation sentinel.
func (pr Probability) IsNaN() bool { return math.IsNaN(pr.value) }

// Sub returns pr - other as a signed float64, pairing stored tails so the
// difference is taken between directly computed values whenever both sides
// stored the same tail. Near-cancellation of two large complements is
// avoided that way; mixed storage falls back to the direct form.
func (pr Probability) Sub(other Probability) float64 {
	switch {
	case !pr.upper && !other.upper:
		return pr.value - other.value
	case pr.upper && other.upper:
		return other.value - pr.value
	default:
		return pr.P() - other.P()
	}
}

// Less orders probabilities by their lower tails, comparing on the stored
// sides.
func (pr Probability) Less(other Probability) bool {
	return pr.Sub(other) < 0
}
