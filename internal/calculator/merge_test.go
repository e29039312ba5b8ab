package calculator

import (
	"testing"

	"NickelSentinel/internal/model"
)

func TestMerge_UnionOfDates(t *testing.T) {
	historical := model.Series{
		{Date: "2025-01-01", Price: 100},
		{Date: "2025-02-01", Price: 110},
		{Date: "2025-03-01", Price: 120},
	}
	predicted := model.Series{
		{Date: "2025-03-01", Price: 125},
		{Date: "2025-04-01", Price: 130},
	}

	merged := Merge(historical, predicted)

	if len(merged) != 4 {
		t.Fatalf("expected 4 records (union of dates), got %d", len(merged))
	}
	seen := map[string]int{}
	for _, rec := range merged {
		seen[rec.Date]++
	}
	for date, n := range seen {
		if n != 1 {
			t.Errorf("date %s appears %d times, want exactly once", date, n)
		}
	}
	for i := 1; i < len(merged); i++ {
		if merged[i-1].Date >= merged[i].Date {
			t.Errorf("records out of order: %s before %s", merged[i-1].Date, merged[i].Date)
		}
	}
}

func TestMerge_FieldCorrectness(t *testing.T) {
	historical := model.Series{{Date: "2025-01-01", Price: 100}}
	predicted := model.Series{{Date: "2025-02-01", Price: 200}}

	merged := Merge(historical, predicted)
	if len(merged) != 2 {
		t.Fatalf("expected 2 records, got %d", len(merged))
	}

	first := merged[0]
	if !first.Historical.Valid || first.Historical.Value != 100 {
		t.Errorf("expected historical=100 at %s, got %+v", first.Date, first.Historical)
	}
	if first.Predicted.Valid {
		t.Errorf("expected predicted absent at %s, got %+v", first.Date, first.Predicted)
	}

	second := merged[1]
	if second.Historical.Valid {
		t.Errorf("expected historical absent at %s, got %+v", second.Date, second.Historical)
	}
	if !second.Predicted.Valid || second.Predicted.Value != 200 {
		t.Errorf("expected predicted=200 at %s, got %+v", second.Date, second.Predicted)
	}
}

func TestMerge_AbsentIsNotZero(t *testing.T) {
	historical := model.Series{{Date: "2025-01-01", Price: 0}}
	merged := Merge(historical, nil)

	if !merged[0].Historical.Valid || merged[0].Historical.Value != 0 {
		t.Errorf("a real zero price must be present, got %+v", merged[0].Historical)
	}
	if merged[0].Predicted.Valid {
		t.Errorf("missing predicted value must be absent, got %+v", merged[0].Predicted)
	}
}

func TestMerge_EmptyInputs(t *testing.T) {
	if merged := Merge(nil, nil); len(merged) != 0 {
		t.Errorf("expected empty merge for empty inputs, got %d records", len(merged))
	}
}

func TestFilterByRange_InclusiveBounds(t *testing.T) {
	records := Merge(model.Series{
		{Date: "2025-01-01", Price: 1},
		{Date: "2025-02-01", Price: 2},
		{Date: "2025-03-01", Price: 3},
		{Date: "2025-04-01", Price: 4},
	}, nil)

	filtered := FilterByRange(records, "2025-02-01", "2025-03-01")
	if len(filtered) != 2 {
		t.Fatalf("expected 2 records in range, got %d", len(filtered))
	}
	if filtered[0].Date != "2025-02-01" {
		t.Errorf("start bound must be inclusive, first record is %s", filtered[0].Date)
	}
	if filtered[1].Date != "2025-03-01" {
		t.Errorf("end bound must be inclusive, last record is %s", filtered[1].Date)
	}
}

func TestFilterByRange_NoMatch(t *testing.T) {
	records := Merge(model.Series{{Date: "2025-01-01", Price: 1}}, nil)
	filtered := FilterByRange(records, "2030-01-01", "2031-01-01")
	if len(filtered) != 0 {
		t.Errorf("expected empty result, got %d records", len(filtered))
	}
}

func TestFilterByRange_DoesNotMutateInput(t *testing.T) {
	records := Merge(model.Series{
		{Date: "2025-01-01", Price: 1},
		{Date: "2025-02-01", Price: 2},
	}, nil)

	_ = FilterByRange(records, "2025-02-01", "2025-02-01")
	if len(records) != 2 || records[0].Date != "2025-01-01" {
		t.Error("input records were mutated by FilterByRange")
	}
}
