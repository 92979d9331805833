// Command datavest renders the DataVest wealth management dashboard and fee
// quotes in the terminal.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/datavest/wealth/cmd"
	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	cmd.Completion(commander).Complete("datavest")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
