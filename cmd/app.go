// Package cmd implements the datavest CLI application.
package cmd

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/datavest/wealth"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&dashboardCmd{}, "reports")
	c.Register(&wealthCmd{}, "reports")
	c.Register(&rankCmd{}, "reports")
	c.Register(&returnsCmd{}, "reports")
	c.Register(&allocationCmd{}, "reports")

	c.Register(&feeCmd{}, "fees")
	c.Register(&assistCmd{}, "fees")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "datavest.yaml", "Path to the settings file (YAML), ignored if missing")
var pricesFile = flag.String("prices", "", "Path to the competitor price file (CSV), overrides the settings")
var allocationFile = flag.String("allocation", "", "Path to the optional allocation file (CSV), overrides the settings")
var jsonOutput = flag.Bool("json", false, "Print reports as JSON instead of markdown")

// stdout receives the reports.
var stdout io.Writer = os.Stdout

// LoadSettings reads the settings file and applies the global flags on top of it.
func LoadSettings() (*Settings, error) {
	s, err := ReadSettings(*configFile)
	if err != nil {
		return nil, err
	}
	if *pricesFile != "" {
		s.Prices = *pricesFile
	}
	if *allocationFile != "" {
		s.Allocation = *allocationFile
	}
	return s, nil
}

// DecodeAllocation loads the optional allocation table.
// It returns nil, without error, when the file does not exist.
func DecodeAllocation(s *Settings) (*wealth.Allocation, error) {
	a, err := wealth.LoadAllocation(s.Allocation)
	var missing *wealth.MissingOptionalInputError
	if errors.As(err, &missing) {
		log.Printf("warning, allocation file %q does not exist, skipping the allocation table", s.Allocation)
		return nil, nil
	}
	return a, err
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) subcommands.ExitStatus {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(stdout, string(b))
	return subcommands.ExitSuccess
}
