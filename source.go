package czkcurve

// Source delivers a well-formed observation table, ready for curve fitting.
//
// Implementations own their freshness and failure policy entirely: the curve
// builder never retries or caches on a source's behalf. A failed Fetch wraps
// ErrSourceUnavailable.
type Source interface {
	// Fetch returns the benchmark table, sorted by strictly increasing
	// maturity.
	Fetch() (Table, error)

	// CurveName identifies the curve this source produces in quant JSON
	// metadata.
	CurveName() string
}
