package lotto

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/pfrederiksen/thai-lotto/internal/thaitime"
)

// ErrInvalidThaiDate is returned when a Thai date string cannot be parsed
var ErrInvalidThaiDate = errors.New(`invalid thai date, want "day month year" such as "17 มกราคม 2568"`)

// thaiMonthNumbers maps full and abbreviated Thai month names to 1-12
var thaiMonthNumbers = func() map[string]int {
	m := make(map[string]int, 24)
	for i := range thaitime.ThaiMonths {
		m[thaitime.ThaiMonths[i]] = i + 1
		m[thaitime.ThaiMonthsAbbr[i]] = i + 1
	}
	return m
}()

// thaiDigit maps ๐-๙ to 0-9
func thaiDigit(r rune) rune {
	if r >= '๐' && r <= '๙' {
		return '0' + (r - '๐')
	}
	return r
}

// NormalizeText composes Thai text to NFC, maps Thai numerals to ASCII digits
// and collapses runs of whitespace to one space.
func NormalizeText(s string) string {
	t := transform.Chain(norm.NFC, runes.Map(thaiDigit))
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.Join(strings.Fields(out), " ")
}

// ParseThaiDate parses a Buddhist-era Thai date such as "17 มกราคม 2568" into
// midnight of that day in Thai time.
func ParseThaiDate(s string) (thaitime.OffsetTime, error) {
	parts := strings.Split(NormalizeText(s), " ")
	if len(parts) != 3 {
		return thaitime.OffsetTime{}, fmt.Errorf("parsing %q: %w", s, ErrInvalidThaiDate)
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return thaitime.OffsetTime{}, fmt.Errorf("parsing day of %q: %w", s, ErrInvalidThaiDate)
	}
	month, ok := thaiMonthNumbers[parts[1]]
	if !ok {
		return thaitime.OffsetTime{}, fmt.Errorf("unknown month %q: %w", parts[1], ErrInvalidThaiDate)
	}
	yearBE, err := strconv.Atoi(parts[2])
	if err != nil {
		return thaitime.OffsetTime{}, fmt.Errorf("parsing year of %q: %w", s, ErrInvalidThaiDate)
	}

	date := thaitime.Thai.FromYMD(yearBE-thaitime.BuddhistEraOffset, month, day)
	if date.Day() != day {
		return thaitime.OffsetTime{}, fmt.Errorf("day %d out of range in %q: %w", day, s, ErrInvalidThaiDate)
	}
	return date, nil
}

// FormatThaiDate renders date the way the site prints it, "17 มกราคม 2568".
func FormatThaiDate(date thaitime.OffsetTime) string {
	return date.Format("D MMMMT BBBB")
}
