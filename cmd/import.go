package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/metals"
	"github.com/google/subcommands"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	metal string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import vendor CSV files into the ledger" }
func (*importCmd) Usage() string {
	return `mtl import [-metal <gold|silver>] <file>...

  Reads purchase rows from vendor CSV exports and merges them into the
  ledger. Headers are matched case-insensitively, unknown columns are
  kept as extra fields, and -metal fills rows that do not name one.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.metal, "metal", "", "Metal assumed for rows without a metal column.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: no file to import")
		return subcommands.ExitUsageError
	}

	ledger, err := ReadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	imported := 0
	for _, name := range f.Args() {
		file, err := os.Open(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", name, err)
			return subcommands.ExitFailure
		}
		updates, err := metals.ImportRecords(file, c.metal)
		file.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", name, err)
			return subcommands.ExitFailure
		}
		ledger = metals.Merge(ledger, updates)
		imported += len(updates)
	}

	if err := WriteLedger(ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing ledger %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Imported %d rows into %s (%d total)\n", imported, *ledgerFile, len(ledger))
	return subcommands.ExitSuccess
}
