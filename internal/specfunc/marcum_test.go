package specfunc

import (
	"math"
	"testing"

	"special-functions/internal/prob"
)

func TestMarcumQSeriesValue(t *testing.T) {
	// Reference value for the noncentral series region.
	p := MarcumQ(11.5, 15.3, 23).P()
	want := 0.2948691834572695
	if math.Abs(p-want) > 5e-12 {
		t.Errorf("MarcumQ(11.5, 15.3, 23).P() = %.16f, want %.16f", p, want)
	}
}

func TestMarcumQCentralCase(t *testing.T) {
	// x == 0 reduces to the central regularized gamma.
	cases := [][2]float64{{3.5, 2.2}, {1, 0.5}, {20, 25}}
	for _, c := range cases {
		mu, y := c[0], c[1]
		got := MarcumQ(mu, 0, y)
		want := GammaReg(mu, y)
		if math.Abs(got.Sub(want)) > 1e-15 {
			t.Errorf("MarcumQ(%v, 0, %v) differs from GammaReg by %v",
				mu, y, got.Sub(want))
		}
	}
}

func TestMarcumQEdges(t *testing.T) {
	if p := MarcumQ(2, 3, 0).P(); p != 0 {
		t.Errorf("MarcumQ(2, 3, 0).P() = %v, want 0", p)
	}
	bad := [][3]float64{{0, 1, 1}, {-1, 1, 1}, {2, -1, 1}, {2, 1, -1}, {math.NaN(), 1, 1}}
	for _, c := range bad {
		if !MarcumQ(c[0], c[1], c[2]).IsNaN() {
			t.Errorf("MarcumQ(%v, %v, %v) should be NaN", c[0], c[1], c[2])
		}
	}
}

func TestMarcumQMonotone(t *testing.T) {
	// Q decreases in y and increases in x.
	mu, x := 4.0, 6.0
	prev := math.Inf(1)
	for _, y := range []float64{1, 4, 8, 12, 20, 35} {
		q := MarcumQ(mu, x, y).Q()
		if q > prev {
			t.Errorf("Q not decreasing in y at y=%v: %v > %v", y, q, prev)
		}
		prev = q
	}

	y := 10.0
	prevQ := -1.0
	for _, xv := range []float64{0.5, 2, 5, 9, 15} {
		q := MarcumQ(mu, xv, y).Q()
		if q < prevQ {
			t.Errorf("Q not increasing in x at x=%v: %v < %v", xv, q, prevQ)
		}
		prevQ = q
	}
}

func TestMarcumQHighOrderInsideParabola(t *testing.T) {
	// Reference from the Poisson mixture sum_i e^-x x^i/i! Q(mu+i, y)
	// summed independently at high order. The point sits inside the
	// transition parabola at mu well past the old recurrence cutoff.
	q := MarcumQ(200, 80, 280).Q()
	want := 0.49143
	if math.Abs(q-want) > 1e-5 {
		t.Errorf("MarcumQ(200, 80, 280).Q() = %.10f, want %.5f", q, want)
	}
}

func TestMarcumQComplement(t *testing.T) {
	cases := [][3]float64{{2, 5, 9}, {1.5, 50, 52}, {20, 40, 60}, {200, 80, 280}, {10, 40, 10}}
	for _, c := range cases {
		r := MarcumQ(c[0], c[1], c[2])
		if r.P()+r.Q() != 1 {
			t.Errorf("P+Q at mu=%v x=%v y=%v: %v", c[0], c[1], c[2], r.P()+r.Q())
		}
	}
}

// Round trips through the inverse exercise every evaluation region: the
// series (small x), the large-xi expansion, the order recurrence at small
// and large mu, and the quadrature fallback.
func TestMarcumQInvRoundTrip(t *testing.T) {
	cases := [][3]float64{
		{2, 5, 9},        // series, upper sum
		{11.5, 15.3, 23}, // series, lower sum
		{1.5, 50, 52},    // large xi
		{20, 40, 60},     // recurrence
		{200, 80, 280},   // recurrence, long climb
		{10, 40, 10},     // quadrature
	}
	for _, c := range cases {
		mu, x, y := c[0], c[1], c[2]
		pr := MarcumQ(mu, x, y)
		recovered := MarcumQInv(mu, x, pr)
		if math.Abs(recovered-y) > 1e-8*y {
			t.Errorf("MarcumQInv(%v, %v, MarcumQ(.., %v)) = %.12e, relative error %.2e",
				mu, x, y, recovered, math.Abs(recovered-y)/y)
		}
	}
}

func TestMarcumQInvEdges(t *testing.T) {
	if y := MarcumQInv(2, 3, prob.FromP(0)); y != 0 {
		t.Errorf("inverse at p=0 = %v, want 0", y)
	}
	if y := MarcumQInv(2, 3, prob.FromQ(0)); !math.IsInf(y, 1) {
		t.Errorf("inverse at q=0 = %v, want +Inf", y)
	}
	if !math.IsNaN(MarcumQInv(0, 3, prob.FromP(0.5))) {
		t.Error("inverse with mu <= 0 should be NaN")
	}
	// x == 0 delegates to the gamma inverse.
	y := MarcumQInv(3, 0, prob.FromP(0.5))
	want := GammaRegInv(3, prob.FromP(0.5))
	if math.Abs(y-want) > 1e-14*want {
		t.Errorf("central inverse = %v, want %v", y, want)
	}
}
