package poly

// Horner evaluates the polynomial with the given coefficients at x.
// coeffs[i] multiplies x^i.
func Horner(coeffs []float64, x float64) float64 {
	if len(coeffs) == 0 {
		return 0
	}
	r := coeffs[len(coeffs)-1]
	for i := len(coeffs) - 2; i >= 0; i-- {
		r = r*x + coeffs[i]
	}
	return r
}

// Clenshaw evaluates a Chebyshev series sum c[k] T_k(x) on [-1, 1] by the
// Clenshaw recurrence.
func Clenshaw(coeffs []float64, x float64) float64 {
	if len(coeffs) == 0 {
		return 0
	}
	if len(coeffs) == 1 {
		return coeffs[0]
	}
	var b1, b2 float64
	for k := len(coeffs) - 1; k >= 1; k-- {
		b1, b2 = 2*x*b1-b2+coeffs[k], b1
	}
	return x*b1 - b2 + coeffs[0]
}
