package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"czkcurve/cmd"
)

// completion describes the CLI for shell completion. Run
// `COMP_INSTALL=1 czkc` once to install it.
var completion = &complete.Command{
	Flags: map[string]complete.Predictor{
		"source":        predict.Set{"live", "snapshot"},
		"snapshot-file": predict.Files("*.json"),
	},
	Sub: map[string]*complete.Command{
		"table": {},
		"eval": {Flags: map[string]complete.Predictor{
			"n": predict.Something,
		}},
		"json": {Flags: map[string]complete.Predictor{
			"o": predict.Files("*.json"),
		}},
		"serve": {Flags: map[string]complete.Predictor{
			"addr": predict.Something,
		}},
		"assist": {},
		"topic": {Args: predict.Set{
			"readme", "sources", "spline", "quant-json",
		}},
		"help": {},
	},
}

func main() {
	completion.Complete("czkc")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
