package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/metals"
	"github.com/etnz/metals/renderer"
	"github.com/google/subcommands"
)

// extractCmd holds the flags for the 'extract' subcommand.
type extractCmd struct {
	subject   string
	messageID string
	vendor    string
	date      string
	asJSON    bool
	toLedger  bool
}

func (*extractCmd) Name() string     { return "extract" }
func (*extractCmd) Synopsis() string { return "extract metal amounts from an order message" }
func (*extractCmd) Usage() string {
	return `mtl extract [-subject <subject>] [-id <message-id>] [-json] \
            [-csv [-vendor <vendor>] [-date <date>]] [<file>...]

  Scans order message text for gold and silver amounts and an order id.
  Reads the message body from the given files, or from stdin when no
  file is given. With -csv the extracted amounts are appended to the
  ledger as purchase rows stamped with -vendor and -date, instead of
  being printed.
`
}

func (c *extractCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.subject, "subject", "", "Message subject line, searched first for the order id.")
	f.StringVar(&c.messageID, "id", "", "Message identifier carried into the extraction.")
	f.StringVar(&c.vendor, "vendor", "", "Vendor stamped on appended ledger rows.")
	f.StringVar(&c.date, "date", "", "Purchase date stamped on appended rows, YYYY-MM-DD. Defaults to today.")
	f.BoolVar(&c.asJSON, "json", false, "Output the extraction as JSON instead of markdown.")
	f.BoolVar(&c.toLedger, "csv", false, "Append the extracted amounts to the ledger file.")
}

func (c *extractCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var extractions []metals.OrderExtraction

	if f.NArg() == 0 {
		body, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
			return subcommands.ExitFailure
		}
		extractions = append(extractions, metals.NewOrderExtraction(c.messageID, c.subject, string(body), 0))
	}
	for _, name := range f.Args() {
		body, err := os.ReadFile(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %q: %v\n", name, err)
			return subcommands.ExitFailure
		}
		id := c.messageID
		if id == "" {
			id = name
		}
		extractions = append(extractions, metals.NewOrderExtraction(id, c.subject, string(body), 0))
	}

	if c.toLedger {
		return c.appendToLedger(extractions)
	}

	if c.asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(extractions); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding extractions: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.ExtractionMarkdown(extractions))
	return subcommands.ExitSuccess
}

// appendToLedger merges the extracted amounts into the ledger file as
// purchase rows.
func (c *extractCmd) appendToLedger(extractions []metals.OrderExtraction) subcommands.ExitStatus {
	day := metals.Today()
	if c.date != "" {
		var err error
		day, err = metals.Parse(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	var updates []metals.Record
	for _, e := range extractions {
		updates = append(updates, e.Records(c.vendor, day)...)
	}
	if len(updates) == 0 {
		fmt.Fprintln(os.Stderr, "No metal amounts extracted, ledger untouched.")
		return subcommands.ExitSuccess
	}

	ledger, err := ReadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	ledger = metals.Merge(ledger, updates)
	if err := WriteLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Appended %d rows to %s (%d total)\n", len(updates), *ledgerFile, len(ledger))
	return subcommands.ExitSuccess
}
