package metals

import "strings"

// MetalTotal is the aggregate of a group of purchases: total ounces and the
// quantity-weighted average cost per ounce.
type MetalTotal struct {
	TotalOz float64
	AvgCost float64
}

// MonthTotal aggregates one calendar month, per metal.
type MonthTotal struct {
	Gold   MetalTotal
	Silver MetalTotal
}

// Summary holds the grouped views of the ledger.
type Summary struct {
	ByMetal  map[string]MetalTotal
	ByVendor map[string]MetalTotal
	ByMonth  map[string]MonthTotal // keyed "YYYY-MM", months present in the data only
}

// accumulator is a sum of (oz, oz*cost) contributions, finalized into a
// weighted average.
type accumulator struct {
	oz   float64
	cost float64
}

func (a *accumulator) add(oz, costPerOz float64) { a.oz += oz; a.cost += oz * costPerOz }

func (a accumulator) total() MetalTotal {
	t := MetalTotal{TotalOz: a.oz}
	if a.oz > 0 {
		t.AvgCost = a.cost / a.oz
	}
	return t
}

// Summarize groups the ledger by metal, by vendor and by month.
//
// Only rows with both positive ounces and positive cost contribute; rows with
// unparseable numbers are skipped silently. Weighted averages are
// Σ(oz·cost)/Σoz over the contributing rows.
func Summarize(records []Record) *Summary {
	byMetal := make(map[string]*accumulator)
	byVendor := make(map[string]*accumulator)
	type monthAcc struct{ gold, silver accumulator }
	byMonth := make(map[string]*monthAcc)

	for _, r := range records {
		oz, ok := r.Oz()
		if !ok || oz <= 0 {
			continue
		}
		cost, ok := r.Cost()
		if !ok || cost <= 0 {
			continue
		}
		metal := strings.ToLower(r.Metal)

		m := byMetal[metal]
		if m == nil {
			m = &accumulator{}
			byMetal[metal] = m
		}
		m.add(oz, cost)

		v := byVendor[r.Vendor]
		if v == nil {
			v = &accumulator{}
			byVendor[r.Vendor] = v
		}
		v.add(oz, cost)

		if month := r.Month(); month != "" {
			ma := byMonth[month]
			if ma == nil {
				ma = &monthAcc{}
				byMonth[month] = ma
			}
			switch metal {
			case Gold:
				ma.gold.add(oz, cost)
			case Silver:
				ma.silver.add(oz, cost)
			}
		}
	}

	s := &Summary{
		ByMetal:  make(map[string]MetalTotal, len(byMetal)),
		ByVendor: make(map[string]MetalTotal, len(byVendor)),
		ByMonth:  make(map[string]MonthTotal, len(byMonth)),
	}
	for metal, a := range byMetal {
		s.ByMetal[metal] = a.total()
	}
	for vendor, a := range byVendor {
		s.ByVendor[vendor] = a.total()
	}
	for month, a := range byMonth {
		s.ByMonth[month] = MonthTotal{Gold: a.gold.total(), Silver: a.silver.total()}
	}
	return s
}
