package calculator

import (
	"testing"

	"baljuseo/internal/model"
)

func testPrices() model.PriceTable {
	return model.NewPriceTable(map[string]int64{
		"14mm이상 600g": 21000,
		"16mm이상 400g": 18000,
		"18mm이상 400g": 22000,
	})
}

func TestSummary_SameLabelAccumulates(t *testing.T) {
	t.Parallel()

	s := NewSummary(testPrices())
	s.Accumulate("14mm이상 600g", 3)
	s.Accumulate("14mm이상 600g", 5)

	report := s.Finalize()
	if len(report.Entries) != 1 {
		t.Fatalf("entries=%d, want 1", len(report.Entries))
	}
	e := report.Entries[0]
	if e.Quantity != 8 {
		t.Fatalf("Quantity=%d, want 8", e.Quantity)
	}
	if e.UnitPrice != 21000 {
		t.Fatalf("UnitPrice=%d, want 21000", e.UnitPrice)
	}
	if e.LineTotal != 8*21000 {
		t.Fatalf("LineTotal=%d, want %d", e.LineTotal, 8*21000)
	}
}

func TestSummary_InsertionOrderAndGrandTotal(t *testing.T) {
	t.Parallel()

	s := NewSummary(testPrices())
	inputs := []struct {
		label string
		qty   int
	}{
		{"18mm이상 400g", 2},
		{"14mm이상 600g", 1},
		{"18mm이상 400g", 4},
		{"16mm이상 400g", 7},
		{"기타옵션", 3},
	}
	sumQty := 0
	for _, in := range inputs {
		s.Accumulate(in.label, in.qty)
		sumQty += in.qty
	}

	report := s.Finalize()
	wantOrder := []string{"18mm이상 400g", "14mm이상 600g", "16mm이상 400g", "기타옵션"}
	if len(report.Entries) != len(wantOrder) {
		t.Fatalf("entries=%d, want %d", len(report.Entries), len(wantOrder))
	}

	entryQty := 0
	var entryTotal int64
	for i, e := range report.Entries {
		if e.Label != wantOrder[i] {
			t.Fatalf("entries[%d].Label=%q, want %q", i, e.Label, wantOrder[i])
		}
		entryQty += e.Quantity
		entryTotal += e.LineTotal
	}

	if entryQty != sumQty || report.Total.Quantity != sumQty {
		t.Fatalf("quantity not conserved: entries=%d total=%d input=%d", entryQty, report.Total.Quantity, sumQty)
	}
	if report.Total.LineTotal != entryTotal {
		t.Fatalf("Total.LineTotal=%d, want %d", report.Total.LineTotal, entryTotal)
	}
	if report.Total.Label != "" || report.Total.UnitPrice != 0 {
		t.Fatalf("total row should have blank label and price: %+v", report.Total)
	}
}

func TestSummary_UnknownLabelPricesAtZero(t *testing.T) {
	t.Parallel()

	s := NewSummary(testPrices())
	s.Accumulate("기타옵션", 4)

	report := s.Finalize()
	if len(report.Entries) != 1 {
		t.Fatalf("unknown label should still produce an entry")
	}
	e := report.Entries[0]
	if e.UnitPrice != 0 || e.LineTotal != 0 || e.Quantity != 4 {
		t.Fatalf("entry=%+v", e)
	}

	unpriced := s.UnpricedLabels()
	if len(unpriced) != 1 || unpriced[0] != "기타옵션" {
		t.Fatalf("UnpricedLabels=%v", unpriced)
	}
}

func TestSummaryReport_Rows(t *testing.T) {
	t.Parallel()

	s := NewSummary(testPrices())
	s.Accumulate("16mm이상 400g", 2)

	rows := s.Finalize().Rows()
	if len(rows) != 2 {
		t.Fatalf("rows=%d, want 2", len(rows))
	}
	if rows[0][0] != "16mm이상 400g" || rows[0][1] != 2 || rows[0][2] != int64(18000) || rows[0][3] != int64(36000) {
		t.Fatalf("entry row=%#v", rows[0])
	}
	if rows[1][0] != "" || rows[1][1] != 2 || rows[1][2] != "" || rows[1][3] != int64(36000) {
		t.Fatalf("total row=%#v", rows[1])
	}
}

func TestSummary_Empty(t *testing.T) {
	t.Parallel()

	report := NewSummary(testPrices()).Finalize()
	if len(report.Entries) != 0 || report.Total.Quantity != 0 || report.Total.LineTotal != 0 {
		t.Fatalf("empty report=%+v", report)
	}
	if rows := report.Rows(); len(rows) != 1 {
		t.Fatalf("empty report should still render the total row, got %d rows", len(rows))
	}
}
