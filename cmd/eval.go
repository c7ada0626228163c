package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"

	"czkcurve/renderer"
)

type evalCmd struct {
	samples int
}

func (*evalCmd) Name() string     { return "eval" }
func (*evalCmd) Synopsis() string { return "evaluate the fitted curve at given maturities" }
func (*evalCmd) Usage() string {
	return `eval [-n <samples>] [maturity...]

  Fits the cubic spline through the benchmark table and evaluates it at the
  given maturities (in years). Without arguments, prints an evenly spaced
  sample of the whole curve. Maturities outside the observed range are
  flagged as extrapolated.

Usage Examples:
# Yield at 2.5 and 12 years, from the live page.
$ czkc -source live eval 2.5 12

`
}

func (c *evalCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.samples, "n", 21, "number of evenly spaced samples when no maturity is given")
}

func (c *evalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	src, _, crv, err := fetchCurve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not build curve: %v\n", err)
		return subcommands.ExitFailure
	}

	var points []renderer.EvalPoint
	if f.NArg() == 0 {
		if c.samples < 2 {
			fmt.Fprintln(os.Stderr, "Error: -n must be at least 2")
			return subcommands.ExitUsageError
		}
		for _, p := range crv.Sample(c.samples) {
			points = append(points, renderer.EvalPoint{Years: p.Years, Rate: p.Rate})
		}
	} else {
		for _, arg := range f.Args() {
			x, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: invalid maturity %q: %v\n", arg, err)
				return subcommands.ExitUsageError
			}
			points = append(points, renderer.EvalPoint{
				Years:        x,
				Rate:         crv.Evaluate(x),
				Extrapolated: !crv.Interpolates(x),
			})
		}
	}

	printMarkdown(renderer.EvaluationMarkdown(&renderer.Evaluation{
		CurveName: src.CurveName(),
		Boundary:  "natural",
		MinYears:  crv.MinYears(),
		MaxYears:  crv.MaxYears(),
		Points:    points,
	}))
	return subcommands.ExitSuccess
}
