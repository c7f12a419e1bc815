package cli

import (
	"fmt"
	"strings"

	"github.com/pfrederiksen/thai-lotto/internal/lotto"
)

// SortOrder represents the available sorting options
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// parseSortOrder validates a --sort flag value
func parseSortOrder(s string) (SortOrder, error) {
	order := SortOrder(strings.ToLower(strings.TrimSpace(s)))
	if order != SortAsc && order != SortDesc {
		return "", fmt.Errorf("invalid sort order: %s (must be 'asc' or 'desc')", s)
	}
	return order, nil
}

// sortRows sorts rows by draw date in the given order
func sortRows[T lotto.Row](rows []T, order SortOrder) {
	lotto.SortByDate(rows)
	if order == SortDesc {
		for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
			rows[i], rows[j] = rows[j], rows[i]
		}
	}
}
