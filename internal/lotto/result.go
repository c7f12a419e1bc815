package lotto

import (
	"sort"

	"github.com/pfrederiksen/thai-lotto/internal/thaitime"
)

// Draw is a single draw date
type Draw struct {
	Date string `json:"date"`
}

// NewDraw creates a Draw for the given date
func NewDraw(date thaitime.OffsetTime) *Draw {
	return &Draw{Date: date.Date10()}
}

// DrawDate returns the YYYY-MM-DD draw date
func (d *Draw) DrawDate() string { return d.Date }

// Result holds the winning numbers of one draw
type Result struct {
	Date             string   `json:"date"`
	FirstPrize       string   `json:"firstPrize"`
	NearFirstPrize   []string `json:"nearFirstPrize"`
	SecondPrize      []string `json:"secondPrize"`
	ThirdPrize       []string `json:"thirdPrize"`
	FourthPrize      []string `json:"fourthPrize"`
	FifthPrize       []string `json:"fifthPrize"`
	FirstThreeDigits []string `json:"firstThreeDigits"`
	LastThreeDigits  []string `json:"lastThreeDigits"`
	TwoDigits        []string `json:"twoDigits"`
}

// NewResult creates an empty Result for the given draw date.
// All list fields are non-nil so they export as [] rather than null.
func NewResult(date thaitime.OffsetTime) *Result {
	return &Result{
		Date:             date.Date10(),
		NearFirstPrize:   []string{},
		SecondPrize:      []string{},
		ThirdPrize:       []string{},
		FourthPrize:      []string{},
		FifthPrize:       []string{},
		FirstThreeDigits: []string{},
		LastThreeDigits:  []string{},
		TwoDigits:        []string{},
	}
}

// DrawDate returns the YYYY-MM-DD draw date
func (r *Result) DrawDate() string { return r.Date }

// Columns returns the export column names in order.
func (r *Result) Columns() []string {
	return []string{
		"date", "firstPrize", "nearFirstPrize", "secondPrize", "thirdPrize",
		"fourthPrize", "fifthPrize", "firstThreeDigits", "lastThreeDigits", "twoDigits",
	}
}

// Lists returns the list-valued fields keyed by column name.
func (r *Result) Lists() map[string][]string {
	return map[string][]string{
		"nearFirstPrize":   r.NearFirstPrize,
		"secondPrize":      r.SecondPrize,
		"thirdPrize":       r.ThirdPrize,
		"fourthPrize":      r.FourthPrize,
		"fifthPrize":       r.FifthPrize,
		"firstThreeDigits": r.FirstThreeDigits,
		"lastThreeDigits":  r.LastThreeDigits,
		"twoDigits":        r.TwoDigits,
	}
}

// SortByDate sorts rows by draw date, oldest first. Dates are YYYY-MM-DD so
// string order is date order.
func SortByDate[T Row](rows []T) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].DrawDate() < rows[j].DrawDate()
	})
}
