package metals

import "strings"

// SpotResolver is the part of [SpotService] the valuation walk needs.
type SpotResolver interface {
	Resolve(metal string, r Range) *Series
}

// ProfitRow is the mark-to-market state of the portfolio for one calendar
// day: running inventory, weighted-average cost and unrealized profit per
// metal, plus the portfolio-wide total.
type ProfitRow struct {
	Date Date

	GoldOz      float64
	GoldAvgCost float64
	GoldSpot    float64
	GoldPnL     float64

	SilverOz      float64
	SilverAvgCost float64
	SilverSpot    float64
	SilverPnL     float64

	PortfolioPnL float64
}

// position is the running inventory of one metal during the valuation walk.
type position struct {
	oz   float64
	cost float64 // total cost of the inventory
}

func (p *position) add(oz, cost float64) { p.oz += oz; p.cost += cost }

// avg returns the weighted-average cost per ounce, zero on empty inventory.
func (p *position) avg() float64 {
	if p.oz <= 0 {
		return 0
	}
	return p.cost / p.oz
}

// pnl returns the unrealized profit against the given spot price. It is
// defined only when spot, average cost and inventory are all non-zero,
// otherwise zero: a day without usable market data contributes nothing
// rather than poisoning the series.
func (p *position) pnl(spot float64) float64 {
	avg := p.avg()
	if spot == 0 || avg == 0 || p.oz == 0 {
		return 0
	}
	return (spot - avg) * p.oz
}

// dayBucket accumulates all purchases of one calendar day, per metal.
type dayBucket struct {
	gold   position
	silver position
}

// ProfitSeries computes the daily unrealized profit and loss of the ledger,
// one row per calendar day from the earliest to the latest purchase date.
//
// Same-day purchases are bucketed per metal before the walk. Records with an
// unparseable date, an unknown metal, or non-positive ounces or cost are
// skipped, never fatal. An empty or fully-invalid ledger yields nil: nothing
// to value is a legitimate outcome.
//
// Spot prices come from the resolver for the full span; a day the resolver
// cannot price has zero profit for that metal.
func ProfitSeries(records []Record, spots SpotResolver) []ProfitRow {
	span, ok := PurchaseRange(records)
	if !ok {
		return nil
	}

	buckets := make(map[Date]*dayBucket)
	for _, r := range records {
		day, valid := purchaseDay(r)
		if !valid {
			continue
		}
		oz, _ := r.Oz()
		cost, _ := r.Cost()
		b := buckets[day]
		if b == nil {
			b = &dayBucket{}
			buckets[day] = b
		}
		switch strings.ToLower(r.Metal) {
		case Gold:
			b.gold.add(oz, oz*cost)
		case Silver:
			b.silver.add(oz, oz*cost)
		}
	}

	goldSpot := spots.Resolve(Gold, span)
	silverSpot := spots.Resolve(Silver, span)

	var gold, silver position
	var rows []ProfitRow
	for day := range span.Days() {
		if b := buckets[day]; b != nil {
			gold.add(b.gold.oz, b.gold.cost)
			silver.add(b.silver.oz, b.silver.cost)
		}
		gSpot, _ := goldSpot.Get(day)
		sSpot, _ := silverSpot.Get(day)
		gPnL := gold.pnl(gSpot)
		sPnL := silver.pnl(sSpot)
		rows = append(rows, ProfitRow{
			Date:          day,
			GoldOz:        gold.oz,
			GoldAvgCost:   gold.avg(),
			GoldSpot:      gSpot,
			GoldPnL:       gPnL,
			SilverOz:      silver.oz,
			SilverAvgCost: silver.avg(),
			SilverSpot:    sSpot,
			SilverPnL:     sPnL,
			PortfolioPnL:  gPnL + sPnL,
		})
	}
	return rows
}
