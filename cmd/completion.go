package cmd

import (
	"flag"

	"github.com/datavest/wealth"
	"github.com/datavest/wealth/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion builds the shell completion tree of the commander's subcommands
// and of the global flags.
func Completion(c *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flags(flag.CommandLine),
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(fs)
		sub := &complete.Command{Flags: flags(fs)}
		if cmd.Name() == "topic" {
			if topics, err := docs.GetAllTopics(); err == nil {
				sub.Args = predict.Set(topics)
			}
		}
		root.Sub[cmd.Name()] = sub
	})
	return root
}

// flags returns the predictors of every flag in fs.
func flags(fs *flag.FlagSet) map[string]complete.Predictor {
	m := map[string]complete.Predictor{}
	fs.VisitAll(func(f *flag.Flag) { m[f.Name] = predictor(fs.Name(), f.Name) })
	return m
}

// predictor returns the completion of a flag value.
func predictor(command, name string) complete.Predictor {
	switch name {
	case "config":
		return predict.Files("*.yaml")
	case "prices", "allocation":
		return predict.Files("*.csv")
	case "horizon":
		if command == "fee" {
			return predict.Set(horizonLabels())
		}
		return predict.Set(windowLabels())
	case "json", "nofee":
		return predict.Nothing
	default:
		return predict.Something
	}
}

func horizonLabels() []string {
	labels := make([]string, 0, len(wealth.Horizons))
	for _, h := range wealth.Horizons {
		labels = append(labels, h.Flag())
	}
	return labels
}

func windowLabels() []string {
	labels := make([]string, 0, len(wealth.Windows))
	for _, w := range wealth.Windows {
		labels = append(labels, w.Flag())
	}
	return labels
}
