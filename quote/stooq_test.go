package quote

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/etnz/metals"
)

const stooqPayload = `Date,Open,High,Low,Close
2024-01-12,2020.1,2031.0,2015.5,2025.75
2024-01-15,2025.0,2041.2,2020.0,2040.5
2024-01-16,2040.0,2052.3,2035.1,2050.25
not,a,row
2024-01-17,2050.0,2055.0,2040.0,notanumber
`

func TestStooqCloses(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Path + "?" + r.URL.RawQuery
		fmt.Fprint(w, stooqPayload)
	}))
	defer srv.Close()

	s := &Stooq{Client: srv.Client(), BaseURL: srv.URL}
	r := metals.NewRange(metals.MustParse("2024-01-15"), metals.MustParse("2024-01-17"))
	series, err := s.Closes(metals.Pair{Base: "XAU", Quote: "USD"}, r)
	if err != nil {
		t.Fatalf("Closes: %v", err)
	}

	if gotQuery != "/q/d/l/?s=xauusd&i=d" {
		t.Errorf("request = %q, want %q", gotQuery, "/q/d/l/?s=xauusd&i=d")
	}

	// The 12th is outside the window, the malformed rows are skipped.
	if series.Len() != 2 {
		t.Fatalf("Len = %d, want 2", series.Len())
	}
	if v, _ := series.Get(metals.MustParse("2024-01-15")); v != 2040.5 {
		t.Errorf("close on 2024-01-15 = %v, want 2040.5", v)
	}
	if v, _ := series.Get(metals.MustParse("2024-01-16")); v != 2050.25 {
		t.Errorf("close on 2024-01-16 = %v, want 2050.25", v)
	}
}

func TestStooqCloses_noHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "No data")
	}))
	defer srv.Close()

	s := &Stooq{Client: srv.Client(), BaseURL: srv.URL}
	r := metals.NewRange(metals.MustParse("2024-01-15"), metals.MustParse("2024-01-17"))
	if _, err := s.Closes(metals.Pair{Base: "XAU", Quote: "USD"}, r); err == nil {
		t.Error("Closes on a header-less payload = nil error, want error")
	}
}

// cannedSource is a test double for the fallback chain.
type cannedSource struct {
	series *metals.Series
	err    error
	hits   int
}

func (c *cannedSource) Closes(pair metals.Pair, r metals.Range) (*metals.Series, error) {
	c.hits++
	return c.series, c.err
}

func TestFallback(t *testing.T) {
	full := &metals.Series{}
	full.Append(metals.MustParse("2024-01-15"), 2040.5)

	t.Run("primary wins when it has data", func(t *testing.T) {
		primary := &cannedSource{series: full}
		secondary := &cannedSource{series: &metals.Series{}}
		f := &Fallback{Primary: primary, Secondary: secondary}
		got, err := f.Closes(metals.Pair{Base: "XAU", Quote: "USD"}, metals.Range{})
		if err != nil || got.Len() != 1 {
			t.Errorf("Closes = (%v, %v), want the primary series", got, err)
		}
		if secondary.hits != 0 {
			t.Error("secondary consulted although primary had data")
		}
	})

	t.Run("error falls back", func(t *testing.T) {
		primary := &cannedSource{err: errors.New("down")}
		secondary := &cannedSource{series: full}
		f := &Fallback{Primary: primary, Secondary: secondary}
		got, err := f.Closes(metals.Pair{Base: "XAU", Quote: "USD"}, metals.Range{})
		if err != nil || got.Len() != 1 {
			t.Errorf("Closes = (%v, %v), want the secondary series", got, err)
		}
	})

	t.Run("empty falls back", func(t *testing.T) {
		primary := &cannedSource{series: &metals.Series{}}
		secondary := &cannedSource{series: full}
		f := &Fallback{Primary: primary, Secondary: secondary}
		got, _ := f.Closes(metals.Pair{Base: "XAU", Quote: "USD"}, metals.Range{})
		if got.Len() != 1 {
			t.Error("empty primary did not fall back")
		}
	})
}
