// Package curve fits a natural cubic spline through a benchmark table and
// evaluates it at arbitrary maturities.
//
// The boundary condition is natural: the second derivative is zero at the
// first and last knot. With two points the spline degenerates to the
// straight line through them.
package curve

import (
	"errors"
	"fmt"
	"sort"

	"czkcurve"
)

// ErrInvalidInput reports a malformed observation table: fewer than two
// points, maturities not strictly increasing, or a non-finite value.
var ErrInvalidInput = errors.New("invalid observations")

// Curve is an immutable piecewise-cubic interpolant through a benchmark
// table. On segment i the yield is
//
//	S_i(x) = y_i + b_i*(x-x_i) + c_i*(x-x_i)^2 + d_i*(x-x_i)^3
//
// with coefficients chosen so that the curve passes through every
// observation and has continuous first and second derivatives at the
// interior knots.
type Curve struct {
	xs, ys  []float64 // knots, strictly increasing maturities
	b, c, d []float64 // per-segment coefficients, len(xs)-1
}

// Build fits a natural cubic spline through the observations. It fails
// wrapping ErrInvalidInput if fewer than two points are supplied, if
// maturities are not strictly increasing, or if any value is non-finite.
//
// Two points define a single linear segment; four or more are recommended
// for a well-conditioned cubic fit.
func Build(t czkcurve.Table) (*Curve, error) {
	if len(t) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 observations, got %d", ErrInvalidInput, len(t))
	}
	if err := t.Check(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	xs := t.Years()
	ys := t.Rates()
	n := len(xs)

	h := make([]float64, n-1)
	for i := range h {
		h[i] = xs[i+1] - xs[i]
	}

	// Second derivatives at the knots. Natural boundary pins m[0] and
	// m[n-1] to zero; the interior values solve the tridiagonal system
	// arising from first-derivative continuity.
	m := make([]float64, n)
	if n > 2 {
		solveSecondDerivatives(h, ys, m)
	}

	c := &Curve{
		xs: xs,
		ys: ys,
		b:  make([]float64, n-1),
		c:  make([]float64, n-1),
		d:  make([]float64, n-1),
	}
	for i := 0; i < n-1; i++ {
		c.b[i] = (ys[i+1]-ys[i])/h[i] - h[i]*(2*m[i]+m[i+1])/6
		c.c[i] = m[i] / 2
		c.d[i] = (m[i+1] - m[i]) / (6 * h[i])
	}
	return c, nil
}

// solveSecondDerivatives fills m[1..n-2] by solving the spline continuity
// system with the Thomas algorithm. The matrix is strictly diagonally
// dominant, so the elimination is stable without pivoting.
func solveSecondDerivatives(h, ys, m []float64) {
	n := len(ys)
	k := n - 2 // interior unknowns

	diag := make([]float64, k)
	rhs := make([]float64, k)
	for i := 0; i < k; i++ {
		diag[i] = 2 * (h[i] + h[i+1])
		rhs[i] = 6 * ((ys[i+2]-ys[i+1])/h[i+1] - (ys[i+1]-ys[i])/h[i])
	}

	// Forward sweep. Sub- and super-diagonal entries are h[i+1] between
	// interior unknowns i and i+1.
	for i := 1; i < k; i++ {
		w := h[i] / diag[i-1]
		diag[i] -= w * h[i]
		rhs[i] -= w * rhs[i-1]
	}

	// Back substitution into m, offset by one for the natural boundary.
	m[k] = rhs[k-1] / diag[k-1]
	for i := k - 2; i >= 0; i-- {
		m[i+1] = (rhs[i] - h[i+1]*m[i+2]) / diag[i]
	}
}

// Evaluate returns the interpolated yield at maturity x.
//
// Outside [MinYears, MaxYears] the boundary segment's polynomial is
// extended. That keeps the result finite and smooth but carries lower
// confidence than interpolation between observed points; callers showing
// extrapolated values should flag them as such.
func (c *Curve) Evaluate(x float64) float64 {
	// First knot >= x; the segment starting one knot earlier contains x.
	i := sort.SearchFloat64s(c.xs, x)
	seg := min(max(i-1, 0), len(c.xs)-2)

	t := x - c.xs[seg]
	return c.ys[seg] + t*(c.b[seg]+t*(c.c[seg]+t*c.d[seg]))
}

// MinYears returns the shortest observed maturity.
func (c *Curve) MinYears() float64 { return c.xs[0] }

// MaxYears returns the longest observed maturity.
func (c *Curve) MaxYears() float64 { return c.xs[len(c.xs)-1] }

// Interpolates reports whether x lies within the observed maturity range,
// i.e. whether Evaluate interpolates rather than extrapolates at x.
func (c *Curve) Interpolates(x float64) bool {
	return x >= c.MinYears() && x <= c.MaxYears()
}

// Point is a sampled (maturity, yield) pair.
type Point struct {
	Years float64
	Rate  float64
}

// Sample returns n evenly spaced points across the observed maturity range,
// endpoints included. It panics if n < 2; charts use around 100 points for
// a smooth line.
func (c *Curve) Sample(n int) []Point {
	if n < 2 {
		panic("curve: Sample needs at least 2 points")
	}
	pts := make([]Point, n)
	step := (c.MaxYears() - c.MinYears()) / float64(n-1)
	for i := range pts {
		x := c.MinYears() + float64(i)*step
		if i == n-1 {
			x = c.MaxYears() // avoid drifting past the last knot
		}
		pts[i] = Point{Years: x, Rate: c.Evaluate(x)}
	}
	return pts
}

// SecondDerivative returns S''(x), exposed for conditioning diagnostics.
func (c *Curve) SecondDerivative(x float64) float64 {
	i := sort.SearchFloat64s(c.xs, x)
	seg := min(max(i-1, 0), len(c.xs)-2)
	t := x - c.xs[seg]
	return 2*c.c[seg] + 6*c.d[seg]*t
}
