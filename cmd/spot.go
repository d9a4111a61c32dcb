package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/metals"
	"github.com/google/subcommands"
)

// spotCmd holds the flags for the 'spot' subcommand.
type spotCmd struct {
	metal   string
	from    string
	to      string
	outFile string
}

func (*spotCmd) Name() string     { return "spot" }
func (*spotCmd) Synopsis() string { return "fetch daily spot closes for a metal" }
func (*spotCmd) Usage() string {
	return `mtl spot [-metal <gold|silver>] [-from <date>] [-to <date>] [-o <file>]

  Fetches daily closing prices in the reporting currency and writes
  them as CSV. The range defaults to the first purchase in the ledger
  through today, or the last year when the ledger is empty.
`
}

func (c *spotCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.metal, "metal", metals.Gold, "Metal to quote: gold or silver.")
	f.StringVar(&c.from, "from", "", "First day of the range, YYYY-MM-DD.")
	f.StringVar(&c.to, "to", "", "Last day of the range, YYYY-MM-DD.")
	f.StringVar(&c.outFile, "o", "-", "Write the CSV to this file, '-' for stdout.")
}

func (c *spotCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, status := c.window()
	if status != subcommands.ExitSuccess {
		return status
	}

	spots, err := NewSpotService()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	series := spots.Resolve(c.metal, r)
	if series.Len() == 0 {
		fmt.Fprintf(os.Stderr, "No %s closes available for %s.\n", c.metal, r)
		return subcommands.ExitFailure
	}

	out := os.Stdout
	if c.outFile != "-" {
		out, err = os.Create(c.outFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.outFile, err)
			return subcommands.ExitFailure
		}
		defer out.Close()
	}
	if err := metals.ExportSpotSeries(out, c.metal, *currency, series); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing CSV: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// window resolves the requested date range, defaulting to the ledger's
// purchase span ending today.
func (c *spotCmd) window() (metals.Range, subcommands.ExitStatus) {
	to := metals.Today()
	if c.to != "" {
		day, err := metals.Parse(c.to)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -to: %v\n", err)
			return metals.Range{}, subcommands.ExitUsageError
		}
		to = day
	}

	from := to.Add(-365)
	if c.from != "" {
		day, err := metals.Parse(c.from)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -from: %v\n", err)
			return metals.Range{}, subcommands.ExitUsageError
		}
		from = day
	} else if ledger, err := ReadLedger(); err == nil {
		if span, ok := metals.PurchaseRange(ledger); ok {
			from = span.From
		}
	}

	return metals.NewRange(from, to), subcommands.ExitSuccess
}
