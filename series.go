package metals

import (
	"iter"
	"slices"
	"sort"
)

// Series stores a chronological series of daily prices.
// It ensures that dates are unique and the series is always sorted.
type Series struct {
	days   []Date
	values []float64
}

// Len returns the number of points in the series.
func (s *Series) Len() int { return len(s.days) }

// First returns the earliest date and value in the series.
// If the series is empty, it returns zero values.
func (s *Series) First() (day Date, value float64) {
	if len(s.days) == 0 {
		return Date{}, 0
	}
	return s.days[0], s.values[0]
}

// Latest returns the latest date and value in the series.
// If the series is empty, it returns zero values.
func (s *Series) Latest() (day Date, value float64) {
	last := len(s.days) - 1
	if last < 0 {
		return Date{}, 0
	}
	return s.days[last], s.values[last]
}

// chronological is a private implementation to make this series chronologically sorted.
type chronological struct{ *Series }

func (c chronological) Less(i, j int) bool { return c.days[i].Before(c.days[j]) }

func (c chronological) Swap(i, j int) {
	c.days[i], c.days[j] = c.days[j], c.days[i]
	c.values[i], c.values[j] = c.values[j], c.values[i]
}

func (s *Series) sort() { sort.Sort(chronological{s}) }

// Append adds a point to the series.
//
// An existing value at that date is overwritten, the last write wins.
func (s *Series) Append(on Date, price float64) *Series {
	if i := slices.Index(s.days, on); i >= 0 {
		s.values[i] = price
		return s
	}
	s.days, s.values = append(s.days, on), append(s.values, price)
	s.sort()
	return s
}

// Get returns the value at 'day' and true, or zero and false.
func (s *Series) Get(day Date) (float64, bool) {
	if i := slices.Index(s.days, day); i >= 0 {
		return s.values[i], true
	}
	return 0, false
}

// Values returns an iterator over all date/value pairs in chronological order.
func (s *Series) Values() iter.Seq2[Date, float64] {
	return func(yield func(Date, float64) bool) {
		for i, on := range s.days {
			if !yield(on, s.values[i]) {
				return
			}
		}
	}
}

// Clone returns an independent copy of the series.
func (s *Series) Clone() *Series {
	return &Series{days: slices.Clone(s.days), values: slices.Clone(s.values)}
}

// Dense returns a series with one value for every calendar day in r.
//
// Days with an observed value keep it. Days without one are forward-filled
// from the last observed value; a leading gap before the first observed point
// is back-filled with that first value. If the series has no point inside r
// the result is empty: no value is ever fabricated out of nothing.
func (s *Series) Dense(r Range) *Series {
	var first float64
	seen := false
	for day, v := range s.Values() {
		if r.Contains(day) {
			first = v
			seen = true
			break
		}
	}
	if !seen {
		return &Series{}
	}

	out := &Series{days: make([]Date, 0), values: make([]float64, 0)}
	last, haveLast := 0.0, false
	for day := range r.Days() {
		if v, ok := s.Get(day); ok {
			last, haveLast = v, true
		} else if !haveLast {
			last, haveLast = first, true
		}
		out.days = append(out.days, day)
		out.values = append(out.values, last)
	}
	return out
}
