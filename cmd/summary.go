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

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display ledger totals by metal, vendor and month" }
func (*summaryCmd) Usage() string {
	return `mtl summary

  Displays total ounces and weighted average cost per ounce, grouped
  by metal, by vendor, and by month.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := ReadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	if len(ledger) == 0 {
		fmt.Fprintf(os.Stderr, "Ledger %q is empty, nothing to summarize.\n", *ledgerFile)
		return subcommands.ExitSuccess
	}

	summary := metals.Summarize(ledger)
	printMarkdown(renderer.SummaryMarkdown(summary, *currency))
	return subcommands.ExitSuccess
}
