// Package cmd implements the CLI application to manage a metals ledger.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/etnz/metals"
	"github.com/etnz/metals/quote"
	"github.com/google/subcommands"
)

// Commands lists the subcommands. A main package registers them on its
// commander and Execute()s the user-selected one.
var Commands = []subcommands.Command{
	&extractCmd{},
	&importCmd{},
	&mergeCmd{},
	&summaryCmd{},
	&profitCmd{},
	&spotCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "costs.csv", "Path to the ledger file containing purchases (CSV format)")
var currency = flag.String("currency", metals.DefaultCurrency, "Reporting currency for costs and spot prices")
var source = flag.String("source", "yahoo", "Preferred spot price provider: yahoo or stooq")

// ReadLedger loads the app ledger file. A missing file is an empty
// ledger, not an error.
func ReadLedger() ([]metals.Record, error) {
	f, err := os.Open(*ledgerFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return metals.ImportRecords(f, "")
}

// WriteLedger writes records back to the app ledger file.
func WriteLedger(records []metals.Record) error {
	f, err := os.Create(*ledgerFile)
	if err != nil {
		return err
	}
	defer f.Close()
	return metals.ExportRecords(f, records)
}

// NewSpotService builds the spot resolver for the selected provider,
// with the other provider as fallback.
func NewSpotService() (*metals.SpotService, error) {
	yahoo := &quote.Yahoo{}
	stooq := &quote.Stooq{}

	var src metals.Source
	switch *source {
	case "yahoo":
		src = &quote.Fallback{Primary: yahoo, Secondary: stooq}
	case "stooq":
		src = &quote.Fallback{Primary: stooq, Secondary: yahoo}
	default:
		return nil, fmt.Errorf("unknown source %q: want yahoo or stooq", *source)
	}

	return &metals.SpotService{Source: src, Currency: *currency}, nil
}
