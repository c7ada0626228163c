package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	"czkcurve"
	"czkcurve/agent"
)

type assistCmd struct{}

func (*assistCmd) Name() string { return "assist" }
func (*assistCmd) Synopsis() string {
	return "start an interactive session with the curve analyst"
}
func (*assistCmd) Usage() string {
	return `assist [question]

  Starts an interactive session with a Gemini-backed analyst seeded with
  the current benchmark table. Requires Gemini API credentials in the
  environment (GEMINI_API_KEY or GOOGLE_API_KEY).
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	src, table, err := fetchTable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not fetch observations: %v\n", err)
		return subcommands.ExitFailure
	}

	var quantJSON strings.Builder
	meta := czkcurve.NewMetadata(src.CurveName())
	if err := czkcurve.EncodeQuantJSON(&quantJSON, meta, table); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not encode curve for the analyst: %v\n", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	a := agent.New(os.Stdout, os.Stdin, agent.NewAnalyst(quantJSON.String()))
	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Analyst failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
