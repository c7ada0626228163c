package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"czkcurve"
)

type jsonCmd struct {
	outputFile string
}

func (*jsonCmd) Name() string     { return "json" }
func (*jsonCmd) Synopsis() string { return "emit the curve as quant-ready JSON" }
func (*jsonCmd) Usage() string {
	return `json [-o <file>]

  Emits the benchmark table as a quant JSON document: curve metadata plus
  one record per tenor (tenor, days, rate_pct, df). The same document can
  later be read back with -source snapshot -snapshot-file.

Usage Examples:
# Capture today's live curve as tomorrow's snapshot.
$ czkc -source live json -o curve.json

`
}

func (c *jsonCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputFile, "o", "", "write to this file instead of stdout")
}

func (c *jsonCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	src, table, err := fetchTable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not fetch observations: %v\n", err)
		return subcommands.ExitFailure
	}

	out := os.Stdout
	if c.outputFile != "" {
		out, err = os.Create(c.outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening %q for writing: %v\n", c.outputFile, err)
			return subcommands.ExitFailure
		}
		defer out.Close()
	}

	meta := czkcurve.NewMetadata(src.CurveName())
	if err := czkcurve.EncodeQuantJSON(out, meta, table); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing quant JSON: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
