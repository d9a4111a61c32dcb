package metals

import (
	"reflect"
	"testing"
)

func TestMerge_emptyIdentities(t *testing.T) {
	ledger := []Record{
		{Date: "2024-01-15", OrderID: "100001", Vendor: "Mint", Metal: "gold", TotalOz: "1", CostPerOz: "2500"},
		{Date: "2024-02-01", OrderID: "100002", Vendor: "Mint", Metal: "silver", TotalOz: "10", CostPerOz: "32"},
	}

	if got := Merge(ledger, nil); !reflect.DeepEqual(got, ledger) {
		t.Errorf("Merge(L, nil) = %v, want %v", got, ledger)
	}
	if got := Merge(nil, ledger); !reflect.DeepEqual(got, ledger) {
		t.Errorf("Merge(nil, N) = %v, want %v", got, ledger)
	}
}

func TestMerge_idempotent(t *testing.T) {
	a := []Record{
		{Date: "2024-01-15", OrderID: "100001", Vendor: "Mint", Metal: "gold", TotalOz: "1", CostPerOz: "2500"},
	}
	b := []Record{
		{Date: "2024-01-16", OrderID: "100001", Vendor: "Mint", Metal: "gold", TotalOz: "2", CostPerOz: "2600"},
		{Date: "2024-03-01", OrderID: "100003", Vendor: "Refinery", Metal: "silver", TotalOz: "5", CostPerOz: "30"},
	}

	once := Merge(a, b)
	twice := Merge(once, b)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Merge(Merge(A,B), B) = %v, want %v", twice, once)
	}

	self := Merge(a, a)
	if !reflect.DeepEqual(self, a) {
		t.Errorf("Merge(L, L) = %v, want %v", self, a)
	}
}

func TestMerge_overwritesCoreFields(t *testing.T) {
	existing := []Record{
		{Date: "2024-01-15", OrderID: "100001", Vendor: "Mint", Metal: "gold", TotalOz: "1", CostPerOz: "2500"},
	}
	updates := []Record{
		{Date: "2024-01-16", OrderID: "100001", Vendor: "Mint", Metal: "gold", TotalOz: "2", CostPerOz: ""},
	}

	got := Merge(existing, updates)
	want := []Record{
		// date and ounces updated, the empty cost keeps the existing value.
		{Date: "2024-01-16", OrderID: "100001", Vendor: "Mint", Metal: "gold", TotalOz: "2", CostPerOz: "2500"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Merge = %v, want %v", got, want)
	}
}

func TestMerge_extraFields(t *testing.T) {
	existing := []Record{
		{Date: "2024-01-15", OrderID: "100001", Vendor: "Mint", Metal: "gold", TotalOz: "1", CostPerOz: "2500",
			Extra: map[string]string{"subject": "Confirmation", "tracking": "T1"}},
	}
	updates := []Record{
		{Date: "2024-01-15", OrderID: "100001", Vendor: "Mint", Metal: "gold", TotalOz: "1", CostPerOz: "2500",
			Extra: map[string]string{"subject": "Shipping notice", "carrier": "Post"}},
	}

	got := Merge(existing, updates)
	want := []Record{
		{Date: "2024-01-15", OrderID: "100001", Vendor: "Mint", Metal: "gold", TotalOz: "1", CostPerOz: "2500",
			// the existing subject survives, the novel carrier is added.
			Extra: map[string]string{"subject": "Confirmation", "tracking": "T1", "carrier": "Post"}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Merge = %v, want %v", got, want)
	}
}

func TestMerge_metalDistinguishesKeys(t *testing.T) {
	// The same order from the same vendor split across two metals is two
	// ledger entries.
	existing := []Record{
		{Date: "2024-01-15", OrderID: "100001", Vendor: "Mint", Metal: "gold", TotalOz: "1", CostPerOz: "2500"},
	}
	updates := []Record{
		{Date: "2024-01-15", OrderID: "100001", Vendor: "Mint", Metal: "silver", TotalOz: "20", CostPerOz: "32"},
	}

	got := Merge(existing, updates)
	if len(got) != 2 {
		t.Fatalf("Merge kept %d records, want 2: %v", len(got), got)
	}
	if got[0].Metal != "gold" || got[1].Metal != "silver" {
		t.Errorf("Merge order = [%s, %s], want [gold, silver]", got[0].Metal, got[1].Metal)
	}
}

func TestMerge_sortedOutput(t *testing.T) {
	updates := []Record{
		{Date: "2024-03-01", OrderID: "100003", Vendor: "Mint", Metal: "gold"},
		{Date: "2024-01-15", OrderID: "100002", Vendor: "Mint", Metal: "silver"},
		{Date: "2024-01-15", OrderID: "100001", Vendor: "Mint", Metal: "gold"},
		{Date: "2024-01-15", OrderID: "100002", Vendor: "Mint", Metal: "gold"},
	}

	got := Merge(nil, updates)
	wantOrder := []Key{
		{OrderID: "100001", Vendor: "Mint", Metal: "gold"},
		{OrderID: "100002", Vendor: "Mint", Metal: "gold"},
		{OrderID: "100002", Vendor: "Mint", Metal: "silver"},
		{OrderID: "100003", Vendor: "Mint", Metal: "gold"},
	}
	for i, w := range wantOrder {
		if got[i].Key() != w {
			t.Errorf("record %d = %v, want %v", i, got[i].Key(), w)
		}
	}
}

func TestMerge_duplicateExistingKeysLastWins(t *testing.T) {
	existing := []Record{
		{Date: "2024-01-15", OrderID: "100001", Vendor: "Mint", Metal: "gold", TotalOz: "1"},
		{Date: "2024-01-15", OrderID: "100001", Vendor: "Mint", Metal: "gold", TotalOz: "2"},
	}
	got := Merge(existing, nil)
	if len(got) != 1 || got[0].TotalOz != "2" {
		t.Errorf("Merge = %v, want a single record with TotalOz=2", got)
	}
}

func TestPurchaseRange(t *testing.T) {
	records := []Record{
		{Date: "2024-03-01", Metal: "gold", TotalOz: "1", CostPerOz: "2500"},
		{Date: "2024-01-15", Metal: "silver", TotalOz: "10", CostPerOz: "30"},
		{Date: "not-a-date", Metal: "gold", TotalOz: "1", CostPerOz: "2500"},
		{Date: "2023-01-01", Metal: "platinum", TotalOz: "1", CostPerOz: "900"}, // unknown metal
		{Date: "2025-01-01", Metal: "gold", TotalOz: "0", CostPerOz: "2500"},   // no quantity
	}

	r, ok := PurchaseRange(records)
	if !ok {
		t.Fatal("PurchaseRange returned !ok")
	}
	want := Range{From: MustParse("2024-01-15"), To: MustParse("2024-03-01")}
	if r != want {
		t.Errorf("PurchaseRange = %v, want %v", r, want)
	}

	if _, ok := PurchaseRange(nil); ok {
		t.Error("PurchaseRange(nil) returned ok")
	}
	if _, ok := PurchaseRange([]Record{{Date: "2024-01-01", Metal: "gold", TotalOz: "garbage", CostPerOz: "1"}}); ok {
		t.Error("PurchaseRange over invalid-only records returned ok")
	}
}

func TestRecordLenientParsing(t *testing.T) {
	testCases := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"1.5", 1.5, true},
		{" 2,500.00 ", 2500, true},
		{"$32.50", 32.5, true},
		{"", 0, false},
		{"n/a", 0, false},
	}
	for _, tc := range testCases {
		r := Record{TotalOz: tc.in}
		got, ok := r.Oz()
		if got != tc.want || ok != tc.wantOK {
			t.Errorf("Oz(%q) = (%v, %v), want (%v, %v)", tc.in, got, ok, tc.want, tc.wantOK)
		}
	}
}
