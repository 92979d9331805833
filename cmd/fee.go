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

// feeCmd holds the flags for the 'fee' subcommand.
type feeCmd struct {
	amount  float64
	horizon string
}

func (*feeCmd) Name() string     { return "fee" }
func (*feeCmd) Synopsis() string { return "management fee quote" }
func (*feeCmd) Usage() string {
	return `datavest fee [-amount <millions>] [-horizon <3mo|6mo|9mo|1y>]

  Computes the management fee of an investment, its payment plan and the
  monthly savings against the three months plan.
`
}

func (c *feeCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "amount", 0, "Investment amount in millions of Toman (defaults to the settings)")
	f.StringVar(&c.horizon, "horizon", "", "Investment horizon: 3mo, 6mo, 9mo or 1y (defaults to the settings)")
}

func (c *feeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if isSet(f, "amount") {
		s.Fee.Investment = c.amount
	}
	if isSet(f, "horizon") {
		s.Fee.Horizon = c.horizon
	}

	h, err := wealth.ParseHorizon(s.Fee.Horizon)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing horizon: %v\n", err)
		return subcommands.ExitUsageError
	}
	q, err := wealth.NewQuote(wealth.D(s.Fee.Investment), h)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing fee: %v\n", err)
		return subcommands.ExitUsageError
	}

	if *jsonOutput {
		return printJSON(q)
	}
	printMarkdown(renderer.QuoteMarkdown(q))
	return subcommands.ExitSuccess
}
