package curve

import (
	"errors"
	"math"
	"testing"

	"czkcurve"
)

// benchmarkTable is a plausible CZK benchmark set: maturity in years, yield
// in percent.
func benchmarkTable() czkcurve.Table {
	return czkcurve.Table{
		{Tenor: "3 months", Years: 0.25, Rate: 3.8},
		{Tenor: "1 year", Years: 1, Rate: 3.6},
		{Tenor: "5 years", Years: 5, Rate: 3.2},
		{Tenor: "10 years", Years: 10, Rate: 3.4},
		{Tenor: "30 years", Years: 30, Rate: 3.9},
	}
}

func TestBuild_interpolatesKnotsExactly(t *testing.T) {
	table := benchmarkTable()
	c, err := Build(table)
	if err != nil {
		t.Fatalf("Build() unexpected error = %v", err)
	}
	for _, o := range table {
		got := c.Evaluate(o.Years)
		if math.Abs(got-o.Rate) > 1e-9 {
			t.Errorf("Evaluate(%g) = %g, want %g", o.Years, got, o.Rate)
		}
	}
}

func TestBuild_rejectsBadInput(t *testing.T) {
	cases := map[string]czkcurve.Table{
		"empty":     {},
		"one point": {{Years: 1, Rate: 3.5}},
		"decreasing maturities": {
			{Years: 5, Rate: 3.2},
			{Years: 1, Rate: 3.6},
		},
		"duplicate maturities": {
			{Years: 1, Rate: 3.6},
			{Years: 1, Rate: 3.7},
			{Years: 5, Rate: 3.2},
		},
		"nan yield": {
			{Years: 1, Rate: math.NaN()},
			{Years: 5, Rate: 3.2},
		},
		"infinite maturity": {
			{Years: 1, Rate: 3.6},
			{Years: math.Inf(1), Rate: 3.2},
		},
	}
	for name, table := range cases {
		if _, err := Build(table); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Build(%s) error = %v, want ErrInvalidInput", name, err)
		}
	}
}

func TestBuild_twoPointsIsLinear(t *testing.T) {
	c, err := Build(czkcurve.Table{
		{Years: 1, Rate: 3.0},
		{Years: 3, Rate: 4.0},
	})
	if err != nil {
		t.Fatalf("Build() unexpected error = %v", err)
	}
	if got := c.Evaluate(2); math.Abs(got-3.5) > 1e-12 {
		t.Errorf("Evaluate(2) = %g, want 3.5 (linear midpoint)", got)
	}
}

// The spline must be continuous with continuous first and second derivatives
// at every interior knot. Checked by central finite differences straddling
// each knot.
func TestCurve_smoothAtInteriorKnots(t *testing.T) {
	c, err := Build(benchmarkTable())
	if err != nil {
		t.Fatalf("Build() unexpected error = %v", err)
	}

	const eps = 1e-6
	knots := []float64{1, 5, 10}
	for _, x := range knots {
		left := c.Evaluate(x - eps)
		right := c.Evaluate(x + eps)
		if math.Abs(left-right) > 1e-4 {
			t.Errorf("value jump at knot %g: %g vs %g", x, left, right)
		}

		dLeft := (c.Evaluate(x-eps) - c.Evaluate(x-3*eps)) / (2 * eps)
		dRight := (c.Evaluate(x+3*eps) - c.Evaluate(x+eps)) / (2 * eps)
		if math.Abs(dLeft-dRight) > 1e-3 {
			t.Errorf("first derivative jump at knot %g: %g vs %g", x, dLeft, dRight)
		}

		sLeft := c.SecondDerivative(x - eps)
		sRight := c.SecondDerivative(x + eps)
		if math.Abs(sLeft-sRight) > 1e-3 {
			t.Errorf("second derivative jump at knot %g: %g vs %g", x, sLeft, sRight)
		}
	}
}

func TestCurve_naturalBoundary(t *testing.T) {
	c, err := Build(benchmarkTable())
	if err != nil {
		t.Fatalf("Build() unexpected error = %v", err)
	}
	if s := c.SecondDerivative(c.MinYears()); math.Abs(s) > 1e-9 {
		t.Errorf("second derivative at first knot = %g, want 0", s)
	}
	if s := c.SecondDerivative(c.MaxYears()); math.Abs(s) > 1e-9 {
		t.Errorf("second derivative at last knot = %g, want 0", s)
	}
}

// A flat table must fit to the constant function with no oscillation,
// including between knots.
func TestCurve_constantInputStaysConstant(t *testing.T) {
	table := czkcurve.Table{
		{Years: 0.5, Rate: 3.5},
		{Years: 2, Rate: 3.5},
		{Years: 7, Rate: 3.5},
		{Years: 12, Rate: 3.5},
	}
	c, err := Build(table)
	if err != nil {
		t.Fatalf("Build() unexpected error = %v", err)
	}
	for x := 0.5; x <= 12; x += 0.25 {
		if got := c.Evaluate(x); math.Abs(got-3.5) > 1e-12 {
			t.Errorf("Evaluate(%g) = %g, want constant 3.5", x, got)
		}
	}
}

// Mid-curve values for the well-behaved benchmark set must stay between the
// yields of the neighboring observations, with no wild overshoot.
func TestCurve_noOvershootMidCurve(t *testing.T) {
	c, err := Build(benchmarkTable())
	if err != nil {
		t.Fatalf("Build() unexpected error = %v", err)
	}
	got := c.Evaluate(2.5)
	if got <= 3.2 || got >= 3.6 {
		t.Errorf("Evaluate(2.5) = %g, want strictly between 3.2 and 3.6", got)
	}
}

func TestCurve_extrapolationIsFinite(t *testing.T) {
	c, err := Build(benchmarkTable())
	if err != nil {
		t.Fatalf("Build() unexpected error = %v", err)
	}
	for _, x := range []float64{0.05, 50} {
		got := c.Evaluate(x)
		if math.IsNaN(got) || math.IsInf(got, 0) {
			t.Errorf("Evaluate(%g) = %g, want finite extrapolation", x, got)
		}
		if c.Interpolates(x) {
			t.Errorf("Interpolates(%g) = true, want false", x)
		}
	}
	if !c.Interpolates(2.5) {
		t.Error("Interpolates(2.5) = false, want true")
	}
}

func TestCurve_sample(t *testing.T) {
	c, err := Build(benchmarkTable())
	if err != nil {
		t.Fatalf("Build() unexpected error = %v", err)
	}
	pts := c.Sample(100)
	if len(pts) != 100 {
		t.Fatalf("Sample(100) returned %d points", len(pts))
	}
	if pts[0].Years != c.MinYears() || pts[99].Years != c.MaxYears() {
		t.Errorf("Sample endpoints = %g..%g, want %g..%g", pts[0].Years, pts[99].Years, c.MinYears(), c.MaxYears())
	}
	if math.Abs(pts[0].Rate-3.8) > 1e-9 || math.Abs(pts[99].Rate-3.9) > 1e-9 {
		t.Errorf("Sample endpoint rates = %g, %g, want 3.8, 3.9", pts[0].Rate, pts[99].Rate)
	}
	for i := 1; i < len(pts); i++ {
		if pts[i].Years <= pts[i-1].Years {
			t.Fatalf("Sample points not increasing at %d", i)
		}
	}
}
