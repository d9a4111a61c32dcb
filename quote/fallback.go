package quote

import (
	"log"

	"github.com/etnz/metals"
)

// Fallback chains two sources: the secondary is consulted only when the
// primary errors out or comes back empty for a pair.
type Fallback struct {
	Primary, Secondary metals.Source
}

// Closes implements metals.Source.
func (f *Fallback) Closes(pair metals.Pair, r metals.Range) (*metals.Series, error) {
	series, err := f.Primary.Closes(pair, r)
	if err == nil && series.Len() > 0 {
		return series, nil
	}
	if err != nil {
		log.Printf("primary source failed for %s, falling back: %v", pair, err)
	}
	return f.Secondary.Closes(pair, r)
}
