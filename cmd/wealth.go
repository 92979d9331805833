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

// wealthCmd holds the flags for the 'wealth' subcommand.
type wealthCmd struct {
	chartFlags
}

func (*wealthCmd) Name() string     { return "wealth" }
func (*wealthCmd) Synopsis() string { return "wealth of an investment in each competitor" }
func (*wealthCmd) Usage() string {
	return `datavest wealth [-i <millions>] [-horizon <horizon>]

  Shows how an initial investment would have grown in each competitor over
  the horizon. Every competitor starts at the initial investment.
`
}

func (c *wealthCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, err := c.load(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	w, err := wealth.Normalize(in.series, in.window.Rows(), in.initial)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing wealth over %s: %v\n", in.window, err)
		return subcommands.ExitFailure
	}

	if *jsonOutput {
		return printJSON(w)
	}
	printMarkdown(renderer.WealthMarkdown(w))
	return subcommands.ExitSuccess
}
