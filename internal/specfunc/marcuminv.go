package specfunc

import (
	"math"

	"special-functions/internal/prob"
	"special-functions/internal/roots"
	"special-functions/internal/tol"
)

// MarcumQInv inverts MarcumQ in y: it returns the y with
// Q_mu(x, y) == pr.Q(). The seed comes from the large-mu uniform
// expansion: a zeta estimate from the erfc leading term with a one-step
// Newton correction against the first expansion term, mapped back to y by
// inverting zeta(y). Brent's method against MarcumQ finishes, with the
// residual normalized by the requested tail so deep-tail targets converge
// to relative rather than absolute precision.
func MarcumQInv(mu, x float64, pr prob.Probability) float64 {
	p, q := pr.P(), pr.Q()
	switch {
	case math.IsNaN(mu) || math.IsNaN(x) || mu <= 0 || x < 0 || pr.IsNaN():
		return math.NaN()
	case p == 0:
		return 0
	case q == 0:
		return math.Inf(1)
	case x == 0:
		return GammaRegInv(mu, pr)
	}

	zeta := marcumInvZeta(mu, q)
	xs := x / mu
	ys := marcumInvScaledY(xs, zeta)
	guess := mu * ys
	if !(guess > 0) || math.IsInf(guess, 0) || math.IsNaN(guess) {
		guess = x + mu // fallback near the distribution mean
	}

	scale := math.Min(p, q)
	f := func(yv float64) float64 {
		return MarcumQ(mu, x, yv).Sub(pr) / scale
	}
	r := roots.RootIn(f, guess, 0, math.Inf(1), 1e-13, 0, roots.Brent)
	return r.Estimate.Best()
}

// marcumInvZeta estimates the zeta of the large-mu representation for an
// upper tail q: the erfc leading term gives zeta0, and one Newton step
// against the first correction term of the expansion sharpens it.
func marcumInvZeta(mu, q float64) float64 {
	zeta := -math.Sqrt(2/mu) * ErfcInv(2*q)

	// G(zeta) = erfc(-zeta sqrt(mu/2))/2 - corr(zeta) - q with the
	// first-order correction; G'(zeta) ~ sqrt(mu/(2 pi)) e^(-mu zeta^2/2).
	ez := math.Exp(-mu * zeta * zeta / 2)
	dg := math.Sqrt(mu/(2*math.Pi)) * ez
	if dg > 0 {
		psi0 := math.Sqrt(math.Pi/(2*mu)) * math.Erfc(-zeta*math.Sqrt(mu/2))
		psi1 := ez / mu
		corr := math.Sqrt(mu/(2*math.Pi)) * (psi0/mu + psi1)
		g := 0.5*math.Erfc(-zeta*math.Sqrt(mu/2)) - corr - q
		step := g / dg
		if math.Abs(step) < 0.5*(math.Abs(zeta)+1) {
			zeta -= step
		}
	}
	return zeta
}

// marcumInvScaledY inverts zeta(ys) for the scaled variable ys = y/mu at
// fixed xs = x/mu. zeta vanishes on ys = xs + 1 with slope
// -1/sqrt(2 xs + 1), which gives the small-zeta linearization; away from
// the line a Newton iteration on the closed form finishes.
func marcumInvScaledY(xs, zeta float64) float64 {
	ys := xs + 1 - zeta*math.Sqrt(2*xs+1)
	if math.Abs(zeta) < 1e-3 {
		return math.Max(ys, 1e-12)
	}

	ys = math.Max(ys, 1e-12)
	for i := 0; i < 40; i++ {
		hz := marcumHalfZeta2(xs, ys)
		zc := math.Copysign(math.Sqrt(2*hz), xs+1-ys)
		g := zc - zeta
		if zc == 0 {
			break
		}
		// d(zeta^2/2)/dy = 1 - 2 xs/(1+s) - 1/ys, s = sqrt(1+4 xs ys).
		s := math.Sqrt(1 + 4*xs*ys)
		dz := (1 - 2*xs/(1+s) - 1/ys) / zc
		if dz == 0 || math.IsNaN(dz) {
			break
		}
		step := g / dz
		next := ys - step
		if next <= 0 {
			next = ys / 2
		}
		// Do not let Newton jump across the zeta = 0 line; the sign of
		// zeta pins which side the solution lives on.
		if (zeta < 0) != (next > xs+1) {
			next = (ys + xs + 1) / 2
		}
		if (tol.Tolerance{Rel: 1e-12}).IsApprox(next, ys) {
			ys = next
			break
		}
		ys = next
	}
	return ys
}
