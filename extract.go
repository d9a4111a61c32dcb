package metals

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// GramsPerOz is the weight of one troy ounce in grams.
const GramsPerOz = 31.1035

// Order confirmation emails express a line item in one of three notations.
// All are case-insensitive, tolerate up to 60 characters of formatting noise
// between the quantity token and the metal keyword (never crossing a line
// break, matching is done line by line), and accept an optional "x Q"
// multiplier.
var (
	patFrac    = regexp.MustCompile(`(?i)\b(\d+)\s*/\s*(\d+)\s*oz\b.{0,60}?\b(gold|silver)\b(?:.*?\bx\s*(\d+))?`)
	patOz      = regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s*oz\b.{0,60}?\b(gold|silver)\b(?:.*?\bx\s*(\d+))?`)
	patGrams   = regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s*(?:g|gram|grams)\b.{0,60}?\b(gold|silver)\b(?:.*?\bx\s*(\d+))?`)
	patOrderID = regexp.MustCompile(`(?i)order\s*#?\s*(\d{6,})`)
)

// Amount holds extracted metal quantities in troy ounces.
type Amount struct {
	GoldOz   float64
	SilverOz float64
}

// Add returns the sum of two amounts.
func (a Amount) Add(b Amount) Amount {
	return Amount{GoldOz: a.GoldOz + b.GoldOz, SilverOz: a.SilverOz + b.SilverOz}
}

// HasMetals returns true if any quantity was extracted.
func (a Amount) HasMetals() bool { return a.GoldOz > 0 || a.SilverOz > 0 }

// OrderExtraction is the result of scanning a single source message.
// It is created once per message and never mutated afterwards.
type OrderExtraction struct {
	OrderID   string  `json:"order_id,omitempty"`
	MessageID string  `json:"message_id"`
	GoldOz    float64 `json:"gold_oz"`
	SilverOz  float64 `json:"silver_oz"`
	Subject   string  `json:"subject,omitempty"`
	DateMs    int64   `json:"date_ms,omitempty"`
}

// NewOrderExtraction scans one message and returns its immutable extraction.
func NewOrderExtraction(messageID, subject, body string, dateMs int64) OrderExtraction {
	amt := ExtractAmounts(body)
	id, _ := ExtractOrderID(subject, body)
	return OrderExtraction{
		OrderID:   id,
		MessageID: messageID,
		GoldOz:    amt.GoldOz,
		SilverOz:  amt.SilverOz,
		Subject:   subject,
		DateMs:    dateMs,
	}
}

// Records converts the extraction into ledger records, one per extracted
// metal, stamped with the given vendor. The message timestamp wins over the
// fallback day when present. The cost per ounce is unknown at extraction
// time and left empty for a later merge to fill in.
func (e OrderExtraction) Records(vendor string, day Date) []Record {
	stamp := day
	if e.DateMs > 0 {
		stamp = DateOfUnix(e.DateMs / 1000)
	}
	var records []Record
	add := func(metal string, oz float64) {
		if oz <= 0 {
			return
		}
		records = append(records, Record{
			Date:    stamp.String(),
			OrderID: e.OrderID,
			Vendor:  vendor,
			Metal:   metal,
			TotalOz: strconv.FormatFloat(oz, 'f', -1, 64),
		})
	}
	add(Gold, e.GoldOz)
	add(Silver, e.SilverOz)
	return records
}

// normalizeText prepares text for parsing, replacing unicode dashes that
// HTML-to-text conversion tends to produce.
func normalizeText(text string) string {
	return strings.NewReplacer("–", "-", "—", "-").Replace(text)
}

// ExtractOrderID finds a numeric order identifier of at least 6 digits
// preceded by the word "order". The subject is searched first, the body is
// only a fallback.
func ExtractOrderID(subject, text string) (string, bool) {
	if m := patOrderID.FindStringSubmatch(subject); m != nil {
		return m[1], true
	}
	if m := patOrderID.FindStringSubmatch(text); m != nil {
		return m[1], true
	}
	return "", false
}

// lineItem identifies a parsed line item for deduplication: quoted order
// threads repeat the same line verbatim and must be counted once.
type lineItem struct {
	metal  string
	unitOz float64 // rounded to 6 decimal places
	qty    float64
}

func round6(v float64) float64 { return math.Round(v*1e6) / 1e6 }

// ExtractAmounts extracts gold and silver ounces from free-form text.
//
// Supported notations:
//   - fractional ounces ("1/10 oz Gold")
//   - decimal ounces ("1 oz Silver")
//   - grams ("31.1 g Gold")
//   - quantities ("1 oz Gold x 5")
//
// It is a pure function of its input.
func ExtractAmounts(text string) Amount {
	var amt Amount
	seen := make(map[lineItem]bool)

	add := func(metal string, unitOz, qty float64) {
		key := lineItem{metal: metal, unitOz: round6(unitOz), qty: qty}
		if seen[key] {
			return
		}
		seen[key] = true
		switch metal {
		case "gold":
			amt.GoldOz += unitOz * qty
		case "silver":
			amt.SilverOz += unitOz * qty
		}
	}

	for _, ln := range strings.Split(normalizeText(text), "\n") {
		ln = strings.TrimSpace(ln)
		if ln == "" {
			continue
		}

		// Fractional ounces (e.g., "1/10 oz Gold").
		for _, m := range patFrac.FindAllStringSubmatch(ln, -1) {
			num := atof(m[1])
			den := math.Max(atof(m[2]), 1)
			add(strings.ToLower(m[3]), num/den, qtyOf(m[4]))
		}

		// Decimal ounces (e.g., "1 oz Silver"). A fraction denominator
		// ("10" in "1/10 oz") also looks like a decimal quantity; it is
		// recognized by the slash right before it and skipped.
		for _, idx := range patOz.FindAllStringSubmatchIndex(ln, -1) {
			if start := idx[2]; start > 0 && precededBySlash(ln, start) {
				continue
			}
			m := groups(ln, idx)
			add(strings.ToLower(m[2]), atof(m[1]), qtyOf(m[3]))
		}

		// Grams (e.g., "31.1 g Gold").
		for _, m := range patGrams.FindAllStringSubmatch(ln, -1) {
			add(strings.ToLower(m[2]), atof(m[1])/GramsPerOz, qtyOf(m[3]))
		}
	}
	return amt
}

// precededBySlash reports whether the token starting at 'start' follows a
// slash, ignoring intervening spaces.
func precededBySlash(s string, start int) bool {
	for i := start - 1; i >= 0; i-- {
		switch s[i] {
		case ' ', '\t':
			continue
		case '/':
			return true
		default:
			return false
		}
	}
	return false
}

// groups extracts submatch strings from a FindAllStringSubmatchIndex result.
func groups(s string, idx []int) []string {
	out := make([]string, len(idx)/2)
	for i := range out {
		lo, hi := idx[2*i], idx[2*i+1]
		if lo >= 0 {
			out[i] = s[lo:hi]
		}
	}
	return out
}

func atof(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

// qtyOf parses an optional "x Q" multiplier capture, defaulting to 1.
func qtyOf(s string) float64 {
	if s == "" {
		return 1
	}
	return atof(s)
}
