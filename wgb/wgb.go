// Package wgb fetches Czech government bond benchmark yields from
// worldgovernmentbonds.com.
//
// The country page carries several HTML tables; the benchmark one is
// recognized by a header cell mentioning "Maturity". Rows that fail to
// parse (footnotes, blank cells) are skipped, matching what a human reader
// would keep.
package wgb

import (
	"fmt"
	"log"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopspring/decimal"

	"czkcurve"
)

// PageURL is the Czech Republic benchmark page.
const PageURL = "https://www.worldgovernmentbonds.com/country/czech-republic/"

// The page blocks obvious robots, so requests carry a desktop browser
// user agent.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Source fetches the live benchmark table. The zero value is not usable;
// call NewSource.
type Source struct {
	client *cachingClient
	url    string
}

// NewSource returns a live source for the Czech benchmark page. Responses
// are cached on disk and expire daily, so repeated renders within a day do
// not hammer the site.
func NewSource() *Source {
	return &Source{client: newDailyCachingClient(), url: PageURL}
}

func (s *Source) CurveName() string { return czkcurve.LiveCurveName }

// Fetch implements czkcurve.Source by scraping the benchmark page.
func (s *Source) Fetch() (czkcurve.Table, error) {
	body, err := s.client.wget(s.url, userAgent)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w: %w", s.url, czkcurve.ErrSourceUnavailable, err)
	}
	t, err := Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w: %w", s.url, czkcurve.ErrSourceUnavailable, err)
	}
	return t, nil
}

// Parse extracts the benchmark table from the page HTML. The result is
// sorted by maturity and checked for well-formedness.
func Parse(html string) (czkcurve.Table, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	table := findBenchmarkTable(doc)
	if table == nil {
		return nil, fmt.Errorf("no table with a Maturity column in page")
	}

	maturityCol, yieldCol := headerColumns(table)
	if maturityCol < 0 || yieldCol < 0 {
		return nil, fmt.Errorf("benchmark table misses Maturity or Yield column")
	}

	var t czkcurve.Table
	table.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td, th")
		if cells.Length() <= maturityCol || cells.Length() <= yieldCol {
			return
		}
		tenor := strings.TrimSpace(cells.Eq(maturityCol).Text())
		years, err := czkcurve.ParseTenor(tenor)
		if err != nil {
			return
		}
		rate, err := parseYield(cells.Eq(yieldCol).Text())
		if err != nil {
			log.Printf("skipping %q: %v", tenor, err)
			return
		}
		t = append(t, czkcurve.Observation{Tenor: tenor, Years: years, Rate: rate})
	})

	if len(t) == 0 {
		return nil, fmt.Errorf("benchmark table holds no readable rows")
	}

	t.Sort()
	t = dedupe(t)
	if err := t.Check(); err != nil {
		return nil, err
	}
	return t, nil
}

// findBenchmarkTable returns the first table whose header mentions Maturity,
// or nil.
func findBenchmarkTable(doc *goquery.Document) *goquery.Selection {
	var found *goquery.Selection
	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		header := strings.ToLower(table.Find("thead, tr").First().Text())
		if strings.Contains(header, "maturity") {
			found = table
			return false
		}
		return true
	})
	return found
}

// headerColumns locates the maturity and yield column indexes in the
// table's first header row. Returns -1 for a missing column.
func headerColumns(table *goquery.Selection) (maturity, yield int) {
	maturity, yield = -1, -1
	table.Find("tr").First().Find("th, td").Each(func(i int, cell *goquery.Selection) {
		text := strings.ToLower(cell.Text())
		if maturity < 0 && strings.Contains(text, "maturity") {
			maturity = i
		}
		if yield < 0 && strings.Contains(text, "yield") {
			yield = i
		}
	})
	return maturity, yield
}

// parseYield reads a scraped yield cell like "4.523%" or "+0.12 %" into a
// percent value. decimal keeps the quoted digits exact before the float
// conversion.
func parseYield(text string) (float64, error) {
	s := strings.TrimSpace(text)
	s = strings.TrimSuffix(s, "%")
	s = strings.TrimPrefix(s, "+")
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return 0, fmt.Errorf("empty yield cell")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("unreadable yield %q: %w", text, err)
	}
	f, _ := d.Float64()
	return f, nil
}

// dedupe drops observations repeating an already seen maturity, keeping the
// first. The page occasionally lists a tenor twice while a bond rolls over.
func dedupe(t czkcurve.Table) czkcurve.Table {
	out := t[:0]
	for _, o := range t {
		if len(out) > 0 && o.Years == out[len(out)-1].Years {
			log.Printf("dropping duplicate tenor %q at %g years", o.Tenor, o.Years)
			continue
		}
		out = append(out, o)
	}
	return out
}
