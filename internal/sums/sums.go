package sums

import "math"

// Naive adds the terms left to right. Fine for short, well-conditioned sums.
func Naive(xs []float64) float64 {
	s := 0.0
	for _, x := range xs {
		s += x
	}
	return s
}

// Kahan compensated summation: carries the low-order bits lost by each
// addition in a separate correction term.
func Kahan(xs []float64) float64 {
	s, c := 0.0, 0.0
	for _, x := range xs {
		y := x - c
		t := s + y
		c = (t - s) - y
		s = t
	}
	return s
}

// KBN is Kahan–Babuška–Neumaier summation. Unlike plain Kahan it stays
// accurate when a term exceeds the running sum in magnitude.
func KBN(xs []float64) float64 {
	s, c := 0.0, 0.0
	for _, x := range xs {
		t := s + x
		if math.Abs(s) >= math.Abs(x) {
			c += (s - t) + x
		} else {
			c += (x - t) + s
		}
		s = t
	}
	return s + c
}

// Pairwise sums by recursive halving, giving O(log n) error growth.
func Pairwise(xs []float64) float64 {
	const cutoff = 32
	if len(xs) <= cutoff {
		return Naive(xs)
	}
	mid := len(xs) / 2
	return Pairwise(xs[:mid]) + Pairwise(xs[mid:])
}
