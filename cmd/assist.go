package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/datavest/wealth/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd is the subcommand for the fee advisor.
type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "chat with the AI fee advisor" }
func (*assistCmd) Usage() string {
	return `datavest assist [<question>]

  Starts an interactive session with the AI fee advisor. The Gemini client is
  configured from the environment (GOOGLE_API_KEY or GEMINI_API_KEY).
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := strings.Join(f.Args(), " ")

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	a := agent.New(stdout, os.Stdin, agent.NewAdvisor())
	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Advisor failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
