package metals

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in a currency, used for display and
// export. The valuation walk itself stays on float64: the ledger is a
// best-effort reconciliation of noisy spreadsheet data, not a book of
// account.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M builds a Money from a float amount and a currency code.
func M(value float64, currency string) Money {
	return Money{value: decimal.NewFromFloat(value), cur: currency}
}

// currency returns the money's currency.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the localized representation of the value, e.g. "$2,500.00".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString is like String but always carries an explicit sign, the usual
// way to print a profit.
func (m Money) SignedString() string {
	if m.value.IsNegative() {
		return m.String()
	}
	return "+" + m.String()
}

func (m Money) Currency() string        { return m.cur }
func (m Money) IsZero() bool            { return m.value.IsZero() }
func (m Money) IsNegative() bool        { return m.value.IsNegative() }
func (m Money) Neg() Money              { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Add(n Money) Money       { return Money{value: m.value.Add(n.value), cur: m.cur} }
func (m Money) Equal(n Money) bool      { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) InexactFloat64() float64 { return m.value.InexactFloat64() }
