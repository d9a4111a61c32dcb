package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/metals/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion. When invoked by the shell's completion hook
	// this prints candidates and exits.
	subs := make(map[string]*complete.Command, len(cmd.Commands))
	for _, c := range cmd.Commands {
		subs[c.Name()] = &complete.Command{}
	}
	subs["topic"].Args = predict.Something
	completion := &complete.Command{
		Sub: subs,
		Flags: map[string]complete.Predictor{
			"ledger-file": predict.Files("*.csv"),
			"currency":    predict.Set{"CAD", "USD", "EUR"},
			"source":      predict.Set{"yahoo", "stooq"},
		},
	}
	complete.Complete("mtl", completion)

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
