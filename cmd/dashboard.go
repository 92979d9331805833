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

// dashboardCmd renders every report at once.
type dashboardCmd struct {
	chartFlags
	noFee bool
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "full wealth management dashboard" }
func (*dashboardCmd) Usage() string {
	return `datavest dashboard [-i <millions>] [-horizon <horizon>] [-nofee]

  Shows the wealth, ranking, returns and allocation tables, followed by the
  fee quote of the settings. The allocation table is skipped when its file
  does not exist.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	c.chartFlags.SetFlags(f)
	f.BoolVar(&c.noFee, "nofee", false, "Do not include the fee quote")
}

func (c *dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, err := c.load(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	d, err := c.dashboard(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if *jsonOutput {
		return printJSON(dashboardJSON(d))
	}
	printMarkdown(renderer.DashboardMarkdown(d))
	return subcommands.ExitSuccess
}

func (c *dashboardCmd) dashboard(in *chart) (*renderer.Dashboard, error) {
	rows := in.window.Rows()
	d := &renderer.Dashboard{Window: in.window}

	var err error
	if d.Wealth, err = wealth.Normalize(in.series, rows, in.initial); err != nil {
		return nil, fmt.Errorf("wealth over %s: %w", in.window, err)
	}
	if d.Ranks, err = wealth.Rank(in.series, rows); err != nil {
		return nil, fmt.Errorf("ranking over %s: %w", in.window, err)
	}
	if d.Returns, err = wealth.CumulativeReturns(in.series, rows); err != nil {
		return nil, fmt.Errorf("returns over %s: %w", in.window, err)
	}

	a, err := DecodeAllocation(in.settings)
	if err != nil {
		return nil, fmt.Errorf("allocation: %w", err)
	}
	if a != nil {
		if d.Allocation, err = a.Align(d.Wealth); err != nil {
			return nil, fmt.Errorf("allocation: %w", err)
		}
	}

	if !c.noFee {
		h, err := wealth.ParseHorizon(in.settings.Fee.Horizon)
		if err != nil {
			return nil, fmt.Errorf("fee horizon: %w", err)
		}
		if d.Quote, err = wealth.NewQuote(wealth.D(in.settings.Fee.Investment), h); err != nil {
			return nil, fmt.Errorf("fee: %w", err)
		}
	}
	return d, nil
}

// dashboardJSON is the JSON document of a dashboard, absent sections omitted.
func dashboardJSON(d *renderer.Dashboard) map[string]any {
	doc := map[string]any{
		"horizon": d.Window.String(),
		"wealth":  d.Wealth,
		"ranks":   d.Ranks,
		"returns": d.Returns,
	}
	if d.Allocation != nil {
		doc["allocation"] = d.Allocation
	}
	if d.Quote != nil {
		doc["fee"] = d.Quote
	}
	return doc
}
