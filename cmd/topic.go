package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/datavest/wealth/docs"
	"github.com/google/subcommands"
)

// topicCmd prints the embedded documentation.
type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "read the datavest manual" }
func (*topicCmd) Usage() string {
	return `datavest topic [<topic>...]

  Prints the given manual topics, "*" for all of them. Without a topic it
  prints the readme, which lists the topics.
`
}

func (*topicCmd) SetFlags(*flag.FlagSet) {}

func (*topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}
	doc, err := docs.GetTopics(topics...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}
