package metals

import (
	"maps"
	"strconv"
	"strings"
)

// Known metals. Anything else is carried through the ledger untouched but
// ignored by spot resolution and valuation.
const (
	Gold   = "gold"
	Silver = "silver"
)

// Record is one purchase line of the costs ledger.
//
// Values come from spreadsheet rows and CSV files and are kept as the strings
// they arrived as: a cell can be empty, carry thousands separators, or plain
// garbage, and the merge must distinguish "empty" from "zero". Numeric access
// goes through the lenient Oz and Cost accessors instead.
type Record struct {
	Date      string // ISO date, "YYYY-MM-DD"
	OrderID   string
	Vendor    string
	Metal     string
	TotalOz   string
	CostPerOz string

	// Extra holds open-ended spreadsheet columns that must round-trip
	// through a merge without this package knowing what they mean.
	Extra map[string]string
}

// Key identifies a record for merging.
//
// Note that the key deliberately omits the date: two purchases with the same
// reused order id from the same vendor and metal collide. This mirrors how
// the ledger spreadsheet has always been reconciled and is kept as a known
// limitation.
type Key struct {
	OrderID string
	Vendor  string
	Metal   string // lower case
}

// Key returns the merge identity of the record.
func (r Record) Key() Key {
	return Key{OrderID: r.OrderID, Vendor: r.Vendor, Metal: strings.ToLower(r.Metal)}
}

// Oz returns the purchased troy ounces, and false when the field does not
// hold a usable number.
func (r Record) Oz() (float64, bool) { return parseLenient(r.TotalOz) }

// Cost returns the cost per troy ounce, and false when the field does not
// hold a usable number.
func (r Record) Cost() (float64, bool) { return parseLenient(r.CostPerOz) }

// Day returns the parsed purchase date, and false when the date field is
// empty or malformed.
func (r Record) Day() (Date, bool) {
	d, err := Parse(strings.TrimSpace(r.Date))
	if err != nil {
		return Date{}, false
	}
	return d, true
}

// Month returns the "YYYY-MM" prefix of the record date, or "" when the date
// is too short to carry one.
func (r Record) Month() string {
	if len(r.Date) < 7 {
		return ""
	}
	return r.Date[:7]
}

// Clone returns a copy of the record that shares no state with the original.
func (r Record) Clone() Record {
	c := r
	if r.Extra != nil {
		c.Extra = maps.Clone(r.Extra)
	}
	return c
}

// parseLenient parses a spreadsheet number: surrounding spaces, thousands
// separators and a currency sign are tolerated, anything else is a miss, not
// an error. Reconciliation is best-effort over noisy data.
func parseLenient(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimPrefix(s, "$")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
