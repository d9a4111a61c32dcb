package quote

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/etnz/metals"
	"github.com/shopspring/decimal"
)

// Stooq serves daily closes from the stooq.com CSV download endpoint. It
// needs no API key and returns the full history of a symbol; the window is
// sliced locally.
type Stooq struct {
	// Client overrides the HTTP client, for tests. Nil means the shared
	// daily caching client.
	Client *http.Client
	// BaseURL overrides the endpoint, for tests.
	BaseURL string
}

const stooqBaseURL = "https://stooq.com"

// symbol formats a pair the stooq way: "xaucad".
func (s *Stooq) symbol(p metals.Pair) string { return strings.ToLower(p.Base + p.Quote) }

// Closes fetches the daily closes for the pair and keeps the points inside r.
//
// The payload is a CSV of "Date,Open,High,Low,Close" lines. Lines that do
// not parse are skipped: the endpoint occasionally sprinkles footers and
// blank lines into the download.
func (s *Stooq) Closes(pair metals.Pair, r metals.Range) (*metals.Series, error) {
	client := s.Client
	if client == nil {
		client = newDailyCachingClient()
	}
	base := s.BaseURL
	if base == "" {
		base = stooqBaseURL
	}

	addr := fmt.Sprintf("%s/q/d/l/?s=%s&i=d", base, s.symbol(pair))
	body, err := wget(client, addr)
	if err != nil {
		return nil, fmt.Errorf("error in wget %q: %w", pair, err)
	}

	lines := strings.Split(string(body), "\n")
	if len(lines) == 0 || !strings.HasPrefix(strings.ToLower(lines[0]), "date,") {
		return nil, fmt.Errorf("unexpected payload for %q: no CSV header", pair)
	}

	series := &metals.Series{}
	for _, ln := range lines[1:] {
		fields := strings.Split(strings.TrimSpace(ln), ",")
		if len(fields) < 5 {
			continue
		}
		day, err := metals.Parse(fields[0])
		if err != nil {
			continue
		}
		if !r.Contains(day) {
			continue
		}
		close, err := decimal.NewFromString(fields[4])
		if err != nil {
			continue
		}
		series.Append(day, close.InexactFloat64())
	}
	return series, nil
}
