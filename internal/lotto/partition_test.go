package lotto

import (
	"reflect"
	"testing"

	"github.com/pfrederiksen/thai-lotto/internal/thaitime"
)

func TestPartitionKeys(t *testing.T) {
	got := PartitionKeys(thaitime.Thai.FromYMD(2025, 1, 17))
	want := []string{"all", "2025", "2568"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PartitionKeys() = %v, want %v", got, want)
	}
}

func TestPartition(t *testing.T) {
	rows := []*Draw{
		{Date: "2025-01-17"},
		{Date: "2024-12-30"},
		{Date: "2025-02-01"},
	}

	parts, err := Partition(rows)
	if err != nil {
		t.Fatalf("Partition() error: %v", err)
	}

	wantCounts := map[string]int{
		"all":  3,
		"2025": 2,
		"2568": 2,
		"2024": 1,
		"2567": 1,
	}
	if len(parts) != len(wantCounts) {
		t.Errorf("Partition() returned %d partitions, want %d: %v", len(parts), len(wantCounts), SortedKeys(parts))
	}
	for key, n := range wantCounts {
		if len(parts[key]) != n {
			t.Errorf("partition %q has %d rows, want %d", key, len(parts[key]), n)
		}
	}

	if parts["2025"][0].Date != "2025-01-17" || parts["2025"][1].Date != "2025-02-01" {
		t.Errorf("partition 2025 order changed: %v", parts["2025"])
	}
}

func TestPartition_Empty(t *testing.T) {
	parts, err := Partition([]*Result{})
	if err != nil {
		t.Fatalf("Partition() error: %v", err)
	}
	if rows, ok := parts[AllPartition]; !ok || len(rows) != 0 {
		t.Errorf("empty input should yield an empty %q partition, got %v", AllPartition, parts)
	}
}

func TestPartition_BadDate(t *testing.T) {
	if _, err := Partition([]*Draw{{Date: "not a date"}}); err == nil {
		t.Error("Partition() expected error for bad date")
	}
}

func TestSortedKeys(t *testing.T) {
	parts := map[string][]int{"2568": nil, "all": nil, "2024": nil, "2567": nil, "2025": nil}
	want := []string{"all", "2024", "2025", "2567", "2568"}
	if got := SortedKeys(parts); !reflect.DeepEqual(got, want) {
		t.Errorf("SortedKeys() = %v, want %v", got, want)
	}
}

func TestMissingDates(t *testing.T) {
	z := thaitime.Thai
	dates := []thaitime.OffsetTime{z.FromYMD(2025, 1, 17), z.FromYMD(2025, 2, 1), z.FromYMD(2025, 2, 16)}
	existing := []*Result{{Date: "2025-02-01"}}

	got := MissingDates(dates, existing)
	if len(got) != 2 || got[0].Date10() != "2025-01-17" || got[1].Date10() != "2025-02-16" {
		t.Errorf("MissingDates() = %v", got)
	}

	if got := MissingDates(nil, existing); len(got) != 0 {
		t.Errorf("MissingDates(nil) = %v, want empty", got)
	}
}

func TestMergeResults(t *testing.T) {
	existing := []*Result{
		{Date: "2025-02-01", FirstPrize: "111111"},
		{Date: "2025-01-17", FirstPrize: "222222"},
	}
	fresh := []*Result{
		{Date: "2025-02-16", FirstPrize: "333333"},
		{Date: "2025-02-01", FirstPrize: "999999"},
	}

	merged := MergeResults(existing, fresh)
	gotDates := make([]string, len(merged))
	for i, r := range merged {
		gotDates[i] = r.Date
	}
	if want := []string{"2025-01-17", "2025-02-01", "2025-02-16"}; !reflect.DeepEqual(gotDates, want) {
		t.Errorf("MergeResults() dates = %v, want %v", gotDates, want)
	}
	if merged[1].FirstPrize != "999999" {
		t.Errorf("fresh result should replace existing, got %q", merged[1].FirstPrize)
	}
}

func TestNewResult_EmptyListsNotNil(t *testing.T) {
	r := NewResult(thaitime.Thai.FromYMD(2025, 1, 17))
	if r.Date != "2025-01-17" {
		t.Errorf("Date = %q", r.Date)
	}
	for name, list := range r.Lists() {
		if list == nil {
			t.Errorf("%s is nil", name)
		}
	}
	if len(r.Columns()) != 10 {
		t.Errorf("Columns() = %v", r.Columns())
	}
}
