package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"czkcurve/renderer"
)

type tableCmd struct{}

func (*tableCmd) Name() string     { return "table" }
func (*tableCmd) Synopsis() string { return "display the benchmark yield table" }
func (*tableCmd) Usage() string {
	return `table

  Fetches the benchmark observations from the configured source and displays
  the tenor, yield, ACT/360 day count, discount factor and present value of
  100 CZK for each maturity.
`
}

func (c *tableCmd) SetFlags(f *flag.FlagSet) {}

func (c *tableCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	src, table, err := fetchTable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not fetch observations: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.BenchmarkMarkdown(&renderer.Benchmark{
		CurveName: src.CurveName(),
		Table:     table,
	}))
	return subcommands.ExitSuccess
}
