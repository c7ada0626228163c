// Package cmd implements the CLI application to render the CZK yield curve.
package cmd

import (
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"czkcurve"
	"czkcurve/curve"
	"czkcurve/wgb"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&tableCmd{}, "reports")
	c.Register(&evalCmd{}, "reports")
	c.Register(&jsonCmd{}, "reports")

	c.Register(&serveCmd{}, "web")

	c.Register(&assistCmd{}, "assistant")
	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var sourceName = flag.String("source", "snapshot", "data source: 'live' scrapes worldgovernmentbonds.com, 'snapshot' reads a quant JSON document")
var snapshotFile = flag.String("snapshot-file", "", "path to a quant JSON snapshot; empty means the embedded one (snapshot source only)")

// openSource returns the configured data source.
func openSource() (czkcurve.Source, error) {
	switch *sourceName {
	case "live":
		return wgb.NewSource(), nil
	case "snapshot":
		return &czkcurve.SnapshotSource{Path: *snapshotFile}, nil
	default:
		return nil, fmt.Errorf("unknown source %q, want 'live' or 'snapshot'", *sourceName)
	}
}

// fetchTable runs the configured source once.
func fetchTable() (czkcurve.Source, czkcurve.Table, error) {
	src, err := openSource()
	if err != nil {
		return nil, nil, err
	}
	table, err := src.Fetch()
	if err != nil {
		return nil, nil, err
	}
	return src, table, nil
}

// fetchCurve runs one full pass: fetch the table and fit the spline.
func fetchCurve() (czkcurve.Source, czkcurve.Table, *curve.Curve, error) {
	src, table, err := fetchTable()
	if err != nil {
		return nil, nil, nil, err
	}
	c, err := curve.Build(table)
	if err != nil {
		return nil, nil, nil, err
	}
	return src, table, c, nil
}
