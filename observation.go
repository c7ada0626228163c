package czkcurve

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// ErrSourceUnavailable reports that a data source could not deliver an
// observation table (network failure, unexpected page layout, unreadable
// snapshot). It is owned by the sources; the curve builder never sees it.
var ErrSourceUnavailable = errors.New("source unavailable")

// Observation is a single benchmark point: the yield quoted for a bond of a
// given residual maturity.
type Observation struct {
	Tenor string  // source label, e.g. "9 months"
	Years float64 // maturity in years
	Rate  float64 // annualized yield in percent
}

// Days returns the ACT/360 day count for the observation's maturity.
func (o Observation) Days() int {
	return int(math.Round(o.Years * 360))
}

// DiscountFactor returns the continuously compounded discount factor
// exp(-r*t) implied by the observation.
func (o Observation) DiscountFactor() float64 {
	return math.Exp(-(o.Rate / 100) * o.Years)
}

// PresentValue returns the value today of 100 CZK paid at the observation's
// maturity, discounted at the observed yield.
func (o Observation) PresentValue() Money {
	return CZK(o.DiscountFactor() * 100)
}

// Table is an ordered list of observations. A well-formed table is sorted by
// strictly increasing maturity; sources are responsible for delivering it
// that way, Check verifies it.
type Table []Observation

// Sort orders the table by increasing maturity, in place. The sort is
// stable so that sources can keep the first of two equal tenors.
func (t Table) Sort() {
	slices.SortStableFunc(t, func(a, b Observation) int {
		switch {
		case a.Years < b.Years:
			return -1
		case a.Years > b.Years:
			return 1
		}
		return 0
	})
}

// Check verifies that the table is well formed: every value finite, every
// maturity positive, and maturities strictly increasing.
func (t Table) Check() error {
	var errs error
	for i, o := range t {
		if math.IsNaN(o.Years) || math.IsInf(o.Years, 0) || math.IsNaN(o.Rate) || math.IsInf(o.Rate, 0) {
			errs = errors.Join(errs, fmt.Errorf("observation %d (%q): non-finite value", i, o.Tenor))
		}
		if o.Years <= 0 {
			errs = errors.Join(errs, fmt.Errorf("observation %d (%q): maturity %g years is not positive", i, o.Tenor, o.Years))
		}
		if i > 0 && o.Years <= t[i-1].Years {
			errs = errors.Join(errs, fmt.Errorf("observation %d (%q): maturity %g years does not increase over %g", i, o.Tenor, o.Years, t[i-1].Years))
		}
	}
	return errs
}

// Years returns the maturities of the table, in order.
func (t Table) Years() []float64 {
	xs := make([]float64, len(t))
	for i, o := range t {
		xs[i] = o.Years
	}
	return xs
}

// Rates returns the yields of the table, in order.
func (t Table) Rates() []float64 {
	ys := make([]float64, len(t))
	for i, o := range t {
		ys[i] = o.Rate
	}
	return ys
}
