package wgb

import (
	"math"
	"testing"
)

// pageFixture mimics the relevant part of the country page: a decorative
// table first, then the benchmark table with noisy cells.
const pageFixture = `
<html><body>
<table>
  <tr><th>Rating</th><th>Outlook</th></tr>
  <tr><td>AA-</td><td>Stable</td></tr>
</table>
<table>
  <thead>
    <tr><th>Residual Maturity</th><th>Yield</th><th>Bond Price</th></tr>
  </thead>
  <tbody>
    <tr><td>3 months</td><td>3.510%</td><td>99.13</td></tr>
    <tr><td>9 months</td><td>3.442%</td><td>97.48</td></tr>
    <tr><td>1 year</td><td>3.380%</td><td>96.68</td></tr>
    <tr><td>5 years</td><td>+3.810%</td><td>82.66</td></tr>
    <tr><td>5 years</td><td>3.815%</td><td>82.64</td></tr>
    <tr><td>10 years</td><td>4.240%</td><td>65.45</td></tr>
    <tr><td>Central Bank Rate</td><td>3.50%</td><td></td></tr>
    <tr><td>20 years</td><td>-</td><td></td></tr>
  </tbody>
</table>
</body></html>`

func TestParse(t *testing.T) {
	table, err := Parse(pageFixture)
	if err != nil {
		t.Fatalf("Parse() unexpected error = %v", err)
	}

	// "Central Bank Rate" has no numeric tenor, "20 years" has no yield,
	// and the duplicate 5 years row is dropped.
	if len(table) != 5 {
		t.Fatalf("Parse() returned %d observations, want 5: %v", len(table), table)
	}

	first := table[0]
	if first.Tenor != "3 months" || math.Abs(first.Years-0.25) > 1e-12 || first.Rate != 3.510 {
		t.Errorf("first observation = %+v", first)
	}

	nine := table[1]
	if math.Abs(nine.Years-0.75) > 1e-12 {
		t.Errorf("9 months parsed as %g years, want 0.75", nine.Years)
	}

	five := table[3]
	if five.Rate != 3.810 {
		t.Errorf("duplicate handling kept rate %g, want the first row's 3.810", five.Rate)
	}

	last := table[len(table)-1]
	if last.Years != 10 || last.Rate != 4.240 {
		t.Errorf("last observation = %+v", last)
	}

	if err := table.Check(); err != nil {
		t.Errorf("parsed table fails Check: %v", err)
	}
}

func TestParse_noBenchmarkTable(t *testing.T) {
	if _, err := Parse("<html><body><p>maintenance</p></body></html>"); err == nil {
		t.Error("Parse() on a page without tables should fail")
	}
	if _, err := Parse("<table><tr><th>Price</th></tr></table>"); err == nil {
		t.Error("Parse() on a page without a Maturity column should fail")
	}
}

func TestParseYield(t *testing.T) {
	cases := map[string]float64{
		"4.523%":  4.523,
		"+0.120%": 0.12,
		" 3.8 % ": 3.8,
	}
	for in, want := range cases {
		got, err := parseYield(in)
		if err != nil {
			t.Errorf("parseYield(%q) unexpected error = %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("parseYield(%q) = %g, want %g", in, got, want)
		}
	}
	for _, in := range []string{"", "-", "n/a"} {
		if _, err := parseYield(in); err == nil {
			t.Errorf("parseYield(%q) should fail", in)
		}
	}
}
