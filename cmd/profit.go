package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/metals"
	"github.com/etnz/metals/renderer"
	"github.com/google/subcommands"
)

// profitCmd holds the flags for the 'profit' subcommand.
type profitCmd struct {
	csvFile string
}

func (*profitCmd) Name() string     { return "profit" }
func (*profitCmd) Synopsis() string { return "display the daily unrealized profit series" }
func (*profitCmd) Usage() string {
	return `mtl profit [-csv <file>]

  Walks every day from the first purchase to the last and reports the
  position, average cost, spot price and unrealized profit per metal.
  With -csv the series is written as CSV instead of rendered.
`
}

func (c *profitCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.csvFile, "csv", "", "Write the series as CSV to this file, '-' for stdout.")
}

func (c *profitCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := ReadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	spots, err := NewSpotService()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	rows := metals.ProfitSeries(ledger, spots)
	if rows == nil {
		fmt.Fprintf(os.Stderr, "Ledger %q has no valuable purchases.\n", *ledgerFile)
		return subcommands.ExitSuccess
	}

	if c.csvFile != "" {
		out := os.Stdout
		if c.csvFile != "-" {
			out, err = os.Create(c.csvFile)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.csvFile, err)
				return subcommands.ExitFailure
			}
			defer out.Close()
		}
		if err := metals.ExportProfitRows(out, rows); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing CSV: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.ProfitMarkdown(rows, *currency))
	return subcommands.ExitSuccess
}
