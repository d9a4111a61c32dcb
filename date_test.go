package metals

import (
	"slices"
	"testing"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2024-01-15", want: NewDate(2024, 1, 15)},
		{in: "2024-1-5", want: NewDate(2024, 1, 5)}, // permissive single digits
		{in: "2024-13-01", wantErr: true},
		{in: "garbage", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := Parse(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if err == nil && got != tc.want {
			t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestDateString(t *testing.T) {
	if got := NewDate(2024, 1, 5).String(); got != "2024-01-05" {
		t.Errorf("String = %q, want %q", got, "2024-01-05")
	}
	if got := NewDate(2024, 1, 5).YearMonth(); got != "2024-01" {
		t.Errorf("YearMonth = %q, want %q", got, "2024-01")
	}
}

func TestDateAdd(t *testing.T) {
	d := MustParse("2024-02-28")
	if got := d.Add(1); got != MustParse("2024-02-29") {
		t.Errorf("Add(1) = %v, want 2024-02-29 (leap year)", got)
	}
	if got := d.Add(2); got != MustParse("2024-03-01") {
		t.Errorf("Add(2) = %v, want 2024-03-01", got)
	}
	if got := d.Add(-28); got != MustParse("2024-01-31") {
		t.Errorf("Add(-28) = %v, want 2024-01-31", got)
	}
}

func TestDateOfUnix(t *testing.T) {
	// 2024-01-15T14:30:00Z: only the day matters.
	if got := DateOfUnix(1705329000); got != MustParse("2024-01-15") {
		t.Errorf("DateOfUnix = %v, want 2024-01-15", got)
	}
}

func TestRangeDays(t *testing.T) {
	r := NewRange(MustParse("2024-01-30"), MustParse("2024-02-02"))
	var got []string
	for d := range r.Days() {
		got = append(got, d.String())
	}
	want := []string{"2024-01-30", "2024-01-31", "2024-02-01", "2024-02-02"}
	if !slices.Equal(got, want) {
		t.Errorf("Days = %v, want %v", got, want)
	}
}

func TestRangeContains(t *testing.T) {
	r := NewRange(MustParse("2024-01-15"), MustParse("2024-01-20"))
	for _, d := range []string{"2024-01-15", "2024-01-17", "2024-01-20"} {
		if !r.Contains(MustParse(d)) {
			t.Errorf("Contains(%s) = false, want true", d)
		}
	}
	for _, d := range []string{"2024-01-14", "2024-01-21"} {
		if r.Contains(MustParse(d)) {
			t.Errorf("Contains(%s) = true, want false", d)
		}
	}
}

func TestDateJSON(t *testing.T) {
	d := MustParse("2024-01-15")
	b, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if string(b) != `"2024-01-15"` {
		t.Errorf("MarshalJSON = %s, want %q", b, `"2024-01-15"`)
	}
	var back Date
	if err := back.UnmarshalJSON(b); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}
