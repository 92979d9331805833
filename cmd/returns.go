package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/datavest/wealth"
	"github.com/datavest/wealth/renderer"
	"github.com/google/subcommands"
)

type returnsCmd struct {
	chartFlags
}

func (*returnsCmd) Name() string     { return "returns" }
func (*returnsCmd) Synopsis() string { return "cumulative return of each competitor" }
func (*returnsCmd) Usage() string {
	return `datavest returns [-horizon <horizon>]

  Shows the cumulative return of each competitor over the horizon.
`
}

func (c *returnsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, err := c.load(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	returns, err := wealth.CumulativeReturns(in.series, in.window.Rows())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing returns over %s: %v\n", in.window, err)
		return subcommands.ExitFailure
	}

	if *jsonOutput {
		return printJSON(returns)
	}
	printMarkdown(renderer.ReturnsMarkdown(returns))
	return subcommands.ExitSuccess
}
