// Package czkcurve models the Czech government bond benchmark curve.
//
// It defines the observation table shared by every data source (a sorted
// list of maturity/yield pairs), the money-market math derived from it
// (ACT/360 day counts, discount factors), and the quant JSON export format.
// The actual curve fitting lives in the curve subpackage, data acquisition
// in the wgb subpackage, and presentation in renderer and web.
package czkcurve
