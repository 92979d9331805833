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

type allocationCmd struct {
	chartFlags
}

func (*allocationCmd) Name() string     { return "allocation" }
func (*allocationCmd) Synopsis() string { return "fund allocation over the horizon" }
func (*allocationCmd) Usage() string {
	return `datavest allocation [-horizon <horizon>]

  Shows the allocation table aligned on the dates of the wealth table.
  It fails if the allocation file does not exist.
`
}

func (c *allocationCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, err := c.load(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	a, err := wealth.LoadAllocation(in.settings.Allocation)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading allocation: %v\n", err)
		return subcommands.ExitFailure
	}
	w, err := wealth.Normalize(in.series, in.window.Rows(), in.initial)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing wealth over %s: %v\n", in.window, err)
		return subcommands.ExitFailure
	}
	aligned, err := a.Align(w)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error aligning allocation: %v\n", err)
		return subcommands.ExitFailure
	}

	if *jsonOutput {
		return printJSON(aligned)
	}
	printMarkdown(renderer.AllocationMarkdown(aligned))
	return subcommands.ExitSuccess
}
