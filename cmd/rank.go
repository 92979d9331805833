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

type rankCmd struct {
	chartFlags
}

func (*rankCmd) Name() string     { return "rank" }
func (*rankCmd) Synopsis() string { return "weekly ranking of the competitors" }
func (*rankCmd) Usage() string {
	return `datavest rank [-horizon <horizon>]

  Ranks the competitors by price for every row of the horizon. Rank 1 is the
  highest price, tied competitors share the average of their positions.
`
}

func (c *rankCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, err := c.load(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	r, err := wealth.Rank(in.series, in.window.Rows())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error ranking over %s: %v\n", in.window, err)
		return subcommands.ExitFailure
	}

	if *jsonOutput {
		return printJSON(r)
	}
	printMarkdown(renderer.RankMarkdown(r))
	return subcommands.ExitSuccess
}
