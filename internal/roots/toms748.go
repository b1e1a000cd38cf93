package roots

import "math"

// TOMS748 solves f(x) == intercept with the Alefeld, Potra and Shi
// algorithm (TOMS Algorithm 748): inverse cubic interpolation over a
// rolling four-point history (a, b, d, e), degrading to a Newton step on a
// quadratic fit whenever two history values coincide, plus a double-length
// secant step per outer iteration. An outer iteration that fails to shrink
// the bracket by the contraction factor mu = 0.5 is finished with a forced
// bisection, which preserves the guaranteed convergence of bisection while
// keeping the asymptotic efficiency of the cubic steps.
func TOMS748(f Func, br Estimate, tolr, intercept float64) Result {
	c := &counter{f: f}
	g := c.shifted(intercept)

	s := &apsState{
		a: br.A, b: br.B,
		fa: br.FA - intercept, fb: br.FB - intercept,
	}
	if r, done := checkEndpoints(s.a, s.b, s.fa, s.fb, c); done {
		return r
	}
	s.fe = math.NaN() // e/fe unset until the second iteration

	const mu = 0.5

	// First two steps outside the main loop: a secant step, then a
	// quadratic step, building up the point history the cubic needs.
	s.insert(g, s.secantStep(), tolr)
	if r, ok := s.finished(c, tolr, intercept); ok {
		return r
	}
	s.insert(g, s.quadraticStep(2), tolr)
	if r, ok := s.finished(c, tolr, intercept); ok {
		return r
	}

	for c.n < DefaultMaxIterations {
		a0, b0 := s.a, s.b

		// Two interpolated steps per outer iteration, cubic when the
		// four-point history is usable.
		for k := 2; k <= 3; k++ {
			s.insert(g, s.cubicStep(k), tolr)
			if r, ok := s.finished(c, tolr, intercept); ok {
				return r
			}
		}

		// Double-length secant from the endpoint with the smaller value.
		u, fu := s.a, s.fa
		if math.Abs(s.fb) < math.Abs(s.fa) {
			u, fu = s.b, s.fb
		}
		step := u - 2*fu*(s.b-s.a)/(s.fb-s.fa)
		if math.IsNaN(step) || math.Abs(step-u) > (s.b-s.a)/2 {
			step = s.mid()
		}
		s.insert(g, step, tolr)
		if r, ok := s.finished(c, tolr, intercept); ok {
			return r
		}

		// Contraction test: without enough shrinkage, force a bisection.
		if s.b-s.a >= mu*(b0-a0) {
			s.insert(g, s.mid(), tolr)
			if r, ok := s.finished(c, tolr, intercept); ok {
				return r
			}
		}
	}
	return Result{Status: MaxIterations, Estimate: s.estimate(intercept), Evaluations: c.n}
}

// apsState is the rolling bracket-plus-history state of TOMS 748: the
// current bracket [a, b], the endpoint d most recently dropped from it, and
// the older point e kept for the cubic fit.
type apsState struct {
	a, b, d, e     float64
	fa, fb, fd, fe float64
	root           float64
	exactRoot      bool
}

func (s *apsState) mid() float64 { return s.a + (s.b-s.a)/2 }

func (s *apsState) estimate(intercept float64) Estimate {
	if s.exactRoot {
		return exact(s.root)
	}
	return Estimate{A: s.a, B: s.b, FA: s.fa + intercept, FB: s.fb + intercept}
}

func (s *apsState) finished(c *counter, tolr, intercept float64) (Result, bool) {
	if s.exactRoot {
		return Result{Status: Converged, Estimate: exact(s.root), Evaluations: c.n}, true
	}
	e := s.estimate(intercept)
	if withinTolerance(e, s.fNewer(), tolr, intercept) {
		return Result{Status: Converged, Estimate: e, Evaluations: c.n}, true
	}
	return Result{}, false
}

func (s *apsState) fNewer() float64 {
	if math.Abs(s.fb) < math.Abs(s.fa) {
		return s.fb
	}
	return s.fa
}

// insert evaluates g at x (nudged off the endpoints), shrinks the bracket
// to whichever side keeps the sign change, and rolls the dropped endpoint
// into the d/e history.
func (s *apsState) insert(g Func, x, tolr float64) {
	if s.exactRoot {
		return
	}
	tolx := tolr*math.Max(math.Abs(s.a), math.Abs(s.b)) + minWidth
	width := s.b - s.a
	if width < 2*tolx {
		x = s.mid()
	} else if x <= s.a+tolx {
		x = s.a + tolx
	} else if x >= s.b-tolx {
		x = s.b - tolx
	}

	fx := g(x)
	if fx == 0 {
		s.root, s.exactRoot = x, true
		return
	}
	s.e, s.fe = s.d, s.fd
	if sameSign(fx, s.fa) {
		s.d, s.fd = s.a, s.fa
		s.a, s.fa = x, fx
	} else {
		s.d, s.fd = s.b, s.fb
		s.b, s.fb = x, fx
	}
}

// secantStep interpolates linearly through the bracket endpoints.
func (s *apsState) secantStep() float64 {
	x := s.a - s.fa*(s.b-s.a)/(s.fb-s.fa)
	if math.IsNaN(x) || x <= s.a || x >= s.b {
		return s.mid()
	}
	return x
}

// quadraticStep takes count Newton steps on the quadratic through
// (a, fa), (b, fb), (d, fd).
func (s *apsState) quadraticStep(count int) float64 {
	bCoef := (s.fb - s.fa) / (s.b - s.a)
	aCoef := ((s.fd-s.fb)/(s.d-s.b) - bCoef) / (s.d - s.a)
	if aCoef == 0 || math.IsNaN(aCoef) || math.IsInf(aCoef, 0) {
		return s.secantStep()
	}

	// Start on the side the curvature pushes the root toward.
	x := s.a
	if aCoef*s.fa > 0 {
		x = s.b
	}
	for i := 0; i < count; i++ {
		num := s.fa + (bCoef+aCoef*(x-s.b))*(x-s.a)
		den := bCoef + aCoef*(2*x-s.a-s.b)
		if den == 0 {
			return s.secantStep()
		}
		x -= num / den
	}
	if math.IsNaN(x) || x <= s.a || x >= s.b {
		return s.secantStep()
	}
	return x
}

// cubicStep interpolates the inverse function through the four history
// points. When any two function values coincide the divided differences
// blow up, so the quadratic Newton step is used instead.
func (s *apsState) cubicStep(count int) float64 {
	if math.IsNaN(s.fe) || !distinct(s.fa, s.fb, s.fd, s.fe) {
		return s.quadraticStep(count)
	}

	q11 := (s.d - s.e) * s.fd / (s.fe - s.fd)
	q21 := (s.b - s.d) * s.fb / (s.fd - s.fb)
	q31 := (s.a - s.b) * s.fa / (s.fb - s.fa)
	d21 := (s.b - s.d) * s.fd / (s.fd - s.fb)
	d31 := (s.a - s.b) * s.fb / (s.fb - s.fa)
	q22 := (d21 - q11) * s.fb / (s.fe - s.fb)
	q32 := (d31 - q21) * s.fa / (s.fd - s.fa)
	d32 := (d31 - q21) * s.fd / (s.fd - s.fa)
	q33 := (d32 - q22) * s.fa / (s.fe - s.fa)

	x := s.a + q31 + q32 + q33
	if math.IsNaN(x) || x <= s.a || x >= s.b {
		return s.quadraticStep(count)
	}
	return x
}

func distinct(vs ...float64) bool {
	for i := 0; i < len(vs); i++ {
		for j := i + 1; j < len(vs); j++ {
			if vs[i] == vs[j] {
				return false
			}
		}
	}
	return true
}
