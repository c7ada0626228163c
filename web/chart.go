package web

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"czkcurve"
	"czkcurve/curve"
)

// chartSamples is the number of spline points drawn for a smooth line.
const chartSamples = 100

// renderChart writes the interactive chart page: the sampled spline as a
// continuous line, overlapped with the raw benchmark observations as
// discrete markers.
func renderChart(w io.Writer, name string, table czkcurve.Table, c *curve.Curve) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "CZK Sovereign Yield Curve",
			Width:     "1100px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "CZK Sovereign Yield Curve",
			Subtitle: name + ": natural cubic spline over benchmark yields",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Maturity (years)", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Yield (%)", Type: "value", Scale: opts.Bool(true)}),
	)

	spline := make([]opts.LineData, 0, chartSamples)
	for _, p := range c.Sample(chartSamples) {
		spline = append(spline, opts.LineData{Value: []any{p.Years, p.Rate}})
	}
	line.AddSeries("Cubic spline", spline,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true), ShowSymbol: opts.Bool(false)}),
	)

	marks := make([]opts.ScatterData, 0, len(table))
	for _, o := range table {
		marks = append(marks, opts.ScatterData{
			Name:       o.Tenor,
			Value:      []any{o.Years, o.Rate},
			SymbolSize: 10,
		})
	}
	scatter := charts.NewScatter()
	scatter.AddSeries("Benchmarks", marks)
	line.Overlap(scatter)

	return line.Render(w)
}
