package renderer

import (
	"bytes"
	"slices"

	"github.com/etnz/metals"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the grouped ledger views as a markdown report:
// totals by metal, totals by vendor, then the monthly breakdown. The block
// layout mirrors the summary spreadsheet sheet this report replaces.
func SummaryMarkdown(s *metals.Summary, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Metals Summary")

	doc.H2("Totals by Metal")
	metalRows := make([][]string, 0, len(s.ByMetal))
	for _, metal := range []string{metals.Gold, metals.Silver} {
		if t, ok := s.ByMetal[metal]; ok {
			metalRows = append(metalRows, []string{metal, fmtOz(t.TotalOz), fmtMoney(t.AvgCost, currency)})
		}
	}
	doc.Table(md.TableSet{
		Header: []string{"Metal", "Total Ounces", "Avg Cost/Oz"},
		Rows:   metalRows,
	})

	doc.H2("Totals by Vendor")
	vendorRows := make([][]string, 0, len(s.ByVendor))
	for _, vendor := range sortedKeys(s.ByVendor) {
		t := s.ByVendor[vendor]
		vendorRows = append(vendorRows, []string{vendor, fmtOz(t.TotalOz), fmtMoney(t.AvgCost, currency)})
	}
	doc.Table(md.TableSet{
		Header: []string{"Vendor", "Total Ounces", "Avg Cost/Oz"},
		Rows:   vendorRows,
	})

	doc.H2("Monthly Avg Cost by Metal")
	months := sortedKeys(s.ByMonth)
	avgRows := make([][]string, 0, len(months))
	for _, month := range months {
		t := s.ByMonth[month]
		avgRows = append(avgRows, []string{month, fmtMoney(t.Gold.AvgCost, currency), fmtMoney(t.Silver.AvgCost, currency)})
	}
	doc.Table(md.TableSet{
		Header: []string{"Month", "Gold Avg", "Silver Avg"},
		Rows:   avgRows,
	})

	doc.H2("Monthly Ounces by Metal")
	ozRows := make([][]string, 0, len(months))
	for _, month := range months {
		t := s.ByMonth[month]
		ozRows = append(ozRows, []string{month, fmtOz(t.Gold.TotalOz), fmtOz(t.Silver.TotalOz)})
	}
	doc.Table(md.TableSet{
		Header: []string{"Month", "Gold Ounces", "Silver Ounces"},
		Rows:   ozRows,
	})

	return doc.String()
}

// sortedKeys returns the map keys in sorted order, for stable reports.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
