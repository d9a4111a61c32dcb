package metals

import (
	"log"
	"strings"
)

// DefaultCurrency is the reporting currency when none is configured.
const DefaultCurrency = "CAD"

// refCurrency is the reference currency used for cross-rate conversion when
// no native quote exists for the reporting currency.
const refCurrency = "USD"

// Pair identifies a quoted currency pair, e.g. {XAU CAD} for gold in
// canadian dollars. Each quote source formats its own symbol out of it.
type Pair struct{ Base, Quote string }

func (p Pair) String() string { return p.Base + "/" + p.Quote }

// metalBases maps a metal name to its quote-symbol base.
var metalBases = map[string]string{
	Gold:   "XAU",
	Silver: "XAG",
}

// Source provides daily closing prices for a currency pair over a date range.
//
// Implementations live in the quote package. A source is free to return a
// partial series; retry and backoff belong to the transport, not here.
type Source interface {
	Closes(pair Pair, r Range) (*Series, error)
}

// SpotService resolves dense daily spot price series for a metal in the
// reporting currency.
type SpotService struct {
	Source   Source
	Currency string // reporting currency, DefaultCurrency when empty
}

// Resolve returns a daily spot series for the metal covering every day of r.
//
// A native quote for the reporting currency is preferred. Dates it lacks are
// filled from a cross rate: the metal in USD multiplied by the USD to
// reporting currency rate, over the date intersection of both series.
// Whatever points that yields are then made dense over r (see [Series.Dense]).
//
// An unknown metal or a source with no data at all yields an empty series,
// never an error: missing market data degrades the valuation, it does not
// abort it.
func (s *SpotService) Resolve(metal string, r Range) *Series {
	base, ok := metalBases[strings.ToLower(metal)]
	if !ok {
		return &Series{}
	}
	cur := s.Currency
	if cur == "" {
		cur = DefaultCurrency
	}

	native := s.closes(Pair{base, cur}, r)
	var cross *Series
	if cur != refCurrency {
		usd := s.closes(Pair{base, refCurrency}, r)
		fx := s.closes(Pair{refCurrency, cur}, r)
		cross = mul(usd, fx)
	} else {
		cross = &Series{}
	}

	// Native values win, cross-rate values fill the dates the native
	// series lacks.
	out := native.Clone()
	for day, v := range cross.Values() {
		if _, ok := out.Get(day); !ok {
			out.Append(day, v)
		}
	}
	return out.Dense(r)
}

// closes fetches one pair, degrading a transport failure to an empty series.
func (s *SpotService) closes(pair Pair, r Range) *Series {
	series, err := s.Source.Closes(pair, r)
	if err != nil {
		log.Printf("no closes for %s over %s: %v", pair, r, err)
		return &Series{}
	}
	return series
}

// mul returns the elementwise product of two series over their date
// intersection.
func mul(a, b *Series) *Series {
	out := &Series{}
	for day, av := range a.Values() {
		if bv, ok := b.Get(day); ok {
			out.Append(day, av*bv)
		}
	}
	return out
}
