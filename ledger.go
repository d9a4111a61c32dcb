package metals

import (
	"cmp"
	"maps"
	"slices"
	"strings"
)

// Merge upserts new records into an existing ledger.
//
// Records are matched by [Key]. On a match the core fields (date, order id,
// vendor, metal, total ounces, cost per ounce) are overwritten from the new
// record when it carries a non-empty value, extra fields from the new record
// fill slots the merged record does not have yet, and fields present only in
// the existing record survive untouched. Records with a novel key are
// inserted as-is.
//
// If existing itself carries duplicate keys the last one wins; deduplicated
// input is an upstream precondition.
//
// The result is sorted by (date, order id, metal) and the operation is
// idempotent: Merge(l, l) == l and Merge(Merge(a, b), b) == Merge(a, b).
func Merge(existing, updates []Record) []Record {
	merged := make(map[Key]Record, len(existing)+len(updates))
	for _, r := range existing {
		merged[r.Key()] = r.Clone()
	}

	for _, r := range updates {
		k := r.Key()
		base, ok := merged[k]
		if !ok {
			merged[k] = r.Clone()
			continue
		}
		overwrite(&base.Date, r.Date)
		overwrite(&base.OrderID, r.OrderID)
		overwrite(&base.Vendor, r.Vendor)
		overwrite(&base.Metal, r.Metal)
		overwrite(&base.TotalOz, r.TotalOz)
		overwrite(&base.CostPerOz, r.CostPerOz)
		for fld, val := range r.Extra {
			if base.Extra == nil {
				base.Extra = make(map[string]string)
			}
			if base.Extra[fld] == "" {
				base.Extra[fld] = val
			}
		}
		merged[k] = base
	}

	out := slices.Collect(maps.Values(merged))
	SortRecords(out)
	return out
}

// overwrite sets *dst to val unless val is empty.
func overwrite(dst *string, val string) {
	if val != "" {
		*dst = val
	}
}

// SortRecords sorts the ledger in its canonical order: by date, then order
// id, then metal. The metal as tertiary key disambiguates an order split
// across two metals.
func SortRecords(records []Record) {
	slices.SortStableFunc(records, func(a, b Record) int {
		return cmp.Or(
			cmp.Compare(a.Date, b.Date),
			cmp.Compare(a.OrderID, b.OrderID),
			cmp.Compare(a.Metal, b.Metal),
		)
	})
}

// PurchaseRange returns the range spanned by the earliest and latest valid
// purchase in the ledger. A record is a valid purchase when it has a
// parseable date, a known metal, and positive ounces and cost.
// ok is false when no such record exists.
func PurchaseRange(records []Record) (r Range, ok bool) {
	for _, rec := range records {
		day, valid := purchaseDay(rec)
		if !valid {
			continue
		}
		if !ok {
			r = Range{From: day, To: day}
			ok = true
			continue
		}
		if day.Before(r.From) {
			r.From = day
		}
		if day.After(r.To) {
			r.To = day
		}
	}
	return r, ok
}

// purchaseDay returns the record's date when it is a valid purchase.
func purchaseDay(r Record) (Date, bool) {
	day, ok := r.Day()
	if !ok {
		return Date{}, false
	}
	metal := strings.ToLower(r.Metal)
	if metal != Gold && metal != Silver {
		return Date{}, false
	}
	oz, ok := r.Oz()
	if !ok || oz <= 0 {
		return Date{}, false
	}
	cost, ok := r.Cost()
	if !ok || cost <= 0 {
		return Date{}, false
	}
	return day, true
}
