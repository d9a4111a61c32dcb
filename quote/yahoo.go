package quote

import (
	"fmt"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/metals"
)

/*
	{
	    "chart": {
	        "result": [
	            {
	                "meta": {...},
	                "timestamp": [1705276800, 1705363200],
	                "indicators": {
	                    "quote": [
	                        {"close": [2053.2, null, 2049.8], ...}
	                    ]
	                }
	            }
	        ],
	        "error": null
	    }
	}
*/

// Yahoo serves daily closes from the Yahoo Finance chart API. It needs no
// API key. The zero value is ready to use with a daily-expiring disk cache.
type Yahoo struct {
	// Client overrides the HTTP client, for tests. Nil means the shared
	// daily caching client.
	Client *http.Client
	// BaseURL overrides the endpoint, for tests.
	BaseURL string
}

const yahooBaseURL = "https://query1.finance.yahoo.com"

// symbol formats a pair the Yahoo way: "XAUCAD=X".
func (y *Yahoo) symbol(p metals.Pair) string { return p.Base + p.Quote + "=X" }

// Closes fetches the daily closes for the pair over r.
//
// The Yahoo window is [period1, period2) in unix seconds, so one day is
// added to include r.To. Null closes (holidays) are dropped, gap handling is
// the caller's concern.
func (y *Yahoo) Closes(pair metals.Pair, r metals.Range) (*metals.Series, error) {
	client := y.Client
	if client == nil {
		client = newDailyCachingClient()
	}
	base := y.BaseURL
	if base == "" {
		base = yahooBaseURL
	}

	addr := fmt.Sprintf("%s/v8/finance/chart/%s?period1=%d&period2=%d&interval=1d",
		base, y.symbol(pair), r.From.Unix(), r.To.Unix()+24*3600)

	var jobj any
	if err := jwget(client, addr, &jobj); err != nil {
		return nil, fmt.Errorf("error in wget %q: %w", pair, err)
	}

	timestamps, err := jsonlist(jobj, "$.chart.result[0].timestamp")
	if err != nil {
		return nil, fmt.Errorf("error parsing %q chart: %w", pair, err)
	}
	closes, err := jsonlist(jobj, "$.chart.result[0].indicators.quote[0].close")
	if err != nil {
		return nil, fmt.Errorf("error parsing %q chart: %w", pair, err)
	}

	series := &metals.Series{}
	for i, ts := range timestamps {
		sec, ok := ts.(float64)
		if !ok || i >= len(closes) {
			continue
		}
		// a null close is a day the market did not print
		v, ok := closes[i].(float64)
		if !ok {
			continue
		}
		series.Append(metals.DateOfUnix(int64(sec)), v)
	}
	return series, nil
}

// jsonlist evaluates a jsonpath expected to yield a list.
func jsonlist(jobj any, path string) ([]any, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("%q: not a list: %v", path, jval)
	}
	return jlist, nil
}
