package cmd

import (
	"path/filepath"
	"testing"

	"github.com/etnz/metals"
)

func TestReadLedgerMissingFile(t *testing.T) {
	old := *ledgerFile
	defer func() { *ledgerFile = old }()
	*ledgerFile = filepath.Join(t.TempDir(), "costs.csv")

	records, err := ReadLedger()
	if err != nil {
		t.Fatalf("ReadLedger() on a missing file: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("ReadLedger() on a missing file returned %d records", len(records))
	}
}

func TestWriteReadLedger(t *testing.T) {
	old := *ledgerFile
	defer func() { *ledgerFile = old }()
	*ledgerFile = filepath.Join(t.TempDir(), "costs.csv")

	records := []metals.Record{
		{Date: "2024-01-15", OrderID: "123456", Vendor: "acme", Metal: metals.Gold, TotalOz: "1", CostPerOz: "2500"},
	}
	if err := WriteLedger(records); err != nil {
		t.Fatalf("WriteLedger(): %v", err)
	}

	got, err := ReadLedger()
	if err != nil {
		t.Fatalf("ReadLedger(): %v", err)
	}
	if len(got) != 1 || got[0].OrderID != "123456" || got[0].Metal != metals.Gold {
		t.Errorf("ReadLedger() = %+v", got)
	}
}

func TestNewSpotService(t *testing.T) {
	old := *source
	defer func() { *source = old }()

	for _, valid := range []string{"yahoo", "stooq"} {
		*source = valid
		if _, err := NewSpotService(); err != nil {
			t.Errorf("NewSpotService() with source %q: %v", valid, err)
		}
	}

	*source = "bloomberg"
	if _, err := NewSpotService(); err == nil {
		t.Error("NewSpotService() accepted an unknown source")
	}
}
