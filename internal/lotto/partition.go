package lotto

import (
	"fmt"
	"sort"

	"github.com/pfrederiksen/thai-lotto/internal/thaitime"
)

// AllPartition is the partition holding every row
const AllPartition = "all"

// Row is an exported record with a YYYY-MM-DD draw date
type Row interface {
	DrawDate() string
}

// PartitionKeys returns the export partitions a draw on date belongs to:
// "all", the Gregorian year and the Buddhist year.
func PartitionKeys(date thaitime.OffsetTime) []string {
	return []string{AllPartition, date.Format("YYYY"), date.Format("BBBB")}
}

// Partition groups rows by PartitionKeys, preserving row order inside each
// partition. The "all" partition is always present.
func Partition[T Row](rows []T) (map[string][]T, error) {
	parts := map[string][]T{AllPartition: {}}
	for _, row := range rows {
		date, err := thaitime.Thai.Parse(row.DrawDate())
		if err != nil {
			return nil, fmt.Errorf("partitioning row: %w", err)
		}
		for _, key := range PartitionKeys(date) {
			parts[key] = append(parts[key], row)
		}
	}
	return parts, nil
}

// SortedKeys returns partition keys in ascending order with "all" first
func SortedKeys[T any](parts map[string][]T) []string {
	keys := make([]string, 0, len(parts))
	for k := range parts {
		if k != AllPartition {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	if _, ok := parts[AllPartition]; ok {
		keys = append([]string{AllPartition}, keys...)
	}
	return keys
}

// MissingDates returns the draw dates that have no result in existing,
// keeping the order of dates.
func MissingDates(dates []thaitime.OffsetTime, existing []*Result) []thaitime.OffsetTime {
	seen := make(map[string]bool, len(existing))
	for _, r := range existing {
		seen[r.Date] = true
	}

	missing := make([]thaitime.OffsetTime, 0)
	for _, d := range dates {
		if !seen[d.Date10()] {
			missing = append(missing, d)
		}
	}
	return missing
}

// MergeResults combines previously exported results with fresh ones. A fresh
// result replaces an existing one for the same date. The output is sorted by date.
func MergeResults(existing, fresh []*Result) []*Result {
	byDate := make(map[string]*Result, len(existing)+len(fresh))
	for _, r := range existing {
		byDate[r.Date] = r
	}
	for _, r := range fresh {
		byDate[r.Date] = r
	}

	merged := make([]*Result, 0, len(byDate))
	for _, r := range byDate {
		merged = append(merged, r)
	}
	SortByDate(merged)
	return merged
}
