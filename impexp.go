package metals

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strings"
)

// this file contains functions to handle the ledger import/export format.
// It should remain human readable, single file and be easy to merge back
// into a spreadsheet.

// coreHeaders is the canonical column order of the ledger CSV. Any other
// column round-trips through [Record.Extra].
var coreHeaders = []string{"date", "order_id", "vendor", "metal", "total_oz", "cost_per_oz"}

// ImportRecords reads ledger records from a CSV stream.
//
// Header names are matched case- and whitespace-insensitively. Known headers
// map to the record's core fields, anything else lands in Extra. When
// assumedMetal is not empty it tags rows that carry no metal of their own,
// which is how single-metal sheets (a "Silver" tab) are imported.
func ImportRecords(r io.Reader, assumedMetal string) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // spreadsheet exports are ragged, tolerate it

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read ledger CSV header: %w", err)
	}
	cols := make([]string, len(header))
	for i, h := range header {
		cols[i] = strings.ToLower(strings.TrimSpace(h))
	}

	var records []Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read ledger CSV row: %w", err)
		}
		rec := Record{}
		empty := true
		for i, col := range cols {
			if i >= len(row) {
				break
			}
			val := strings.TrimSpace(row[i])
			if val != "" {
				empty = false
			}
			switch col {
			case "date":
				rec.Date = val
			case "order_id":
				rec.OrderID = val
			case "vendor":
				rec.Vendor = val
			case "metal":
				rec.Metal = strings.ToLower(val)
			case "total_oz":
				rec.TotalOz = val
			case "cost_per_oz":
				rec.CostPerOz = val
			default:
				if rec.Extra == nil {
					rec.Extra = make(map[string]string)
				}
				rec.Extra[col] = val
			}
		}
		if empty {
			continue
		}
		if rec.Metal == "" && assumedMetal != "" {
			rec.Metal = strings.ToLower(assumedMetal)
		}
		records = append(records, rec)
	}
	return records, nil
}

// ExportRecords writes the ledger in its canonical CSV form: core columns
// first, then the union of all extra columns in sorted order.
func ExportRecords(w io.Writer, records []Record) error {
	extras := extraHeaders(records)
	cw := csv.NewWriter(w)
	if err := cw.Write(append(slices.Clone(coreHeaders), extras...)); err != nil {
		return fmt.Errorf("cannot write ledger CSV header: %w", err)
	}
	for _, r := range records {
		row := []string{r.Date, r.OrderID, r.Vendor, r.Metal, r.TotalOz, r.CostPerOz}
		for _, h := range extras {
			row = append(row, r.Extra[h])
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write ledger CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// extraHeaders returns the sorted union of all extra column names.
func extraHeaders(records []Record) []string {
	set := make(map[string]bool)
	for _, r := range records {
		for h := range r.Extra {
			set[h] = true
		}
	}
	headers := make([]string, 0, len(set))
	for h := range set {
		headers = append(headers, h)
	}
	slices.Sort(headers)
	return headers
}

// ExportProfitRows writes the valuation series as CSV, mirroring the Profit
// sheet layout: ounces with 4 decimals, money with 2.
func ExportProfitRows(w io.Writer, rows []ProfitRow) error {
	cw := csv.NewWriter(w)
	header := []string{
		"date",
		"gold_oz", "gold_avg_cost", "gold_spot", "gold_pnl",
		"silver_oz", "silver_avg_cost", "silver_spot", "silver_pnl",
		"portfolio_pnl",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("cannot write profit CSV header: %w", err)
	}
	for _, r := range rows {
		row := []string{
			r.Date.String(),
			fmt.Sprintf("%.4f", r.GoldOz),
			fmt.Sprintf("%.2f", r.GoldAvgCost),
			fmt.Sprintf("%.2f", r.GoldSpot),
			fmt.Sprintf("%.2f", r.GoldPnL),
			fmt.Sprintf("%.4f", r.SilverOz),
			fmt.Sprintf("%.2f", r.SilverAvgCost),
			fmt.Sprintf("%.2f", r.SilverSpot),
			fmt.Sprintf("%.2f", r.SilverPnL),
			fmt.Sprintf("%.2f", r.PortfolioPnL),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write profit CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportSpotSeries writes a dense daily spot series as a two-column CSV.
func ExportSpotSeries(w io.Writer, metal, currency string, s *Series) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", fmt.Sprintf("%s_%s", strings.ToLower(metal), strings.ToLower(currency))}); err != nil {
		return fmt.Errorf("cannot write spot CSV header: %w", err)
	}
	for day, v := range s.Values() {
		if err := cw.Write([]string{day.String(), fmt.Sprintf("%.4f", v)}); err != nil {
			return fmt.Errorf("cannot write spot CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
