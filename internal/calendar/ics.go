// Package calendar renders lottery draws as an iCalendar (.ics) feed.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/pfrederiksen/thai-lotto/internal/lotto"
	"github.com/pfrederiksen/thai-lotto/internal/thaitime"
)

const (
	prodID = "-//thai-lotto//thai-lotto//TH"

	// DrawTime is the Thai civil time a draw starts
	DrawTime = "14:30"
	// DrawDuration is how long the draw broadcast runs
	DrawDuration = 90 * time.Minute

	// maxLineOctets is the RFC 5545 content line limit, excluding CRLF
	maxLineOctets = 75
)

var now = time.Now

// GenerateICS generates one calendar with an event per result. Results without
// a first prize are listed as upcoming draws.
func GenerateICS(results []*lotto.Result, name string) (string, error) {
	if len(results) == 0 {
		return "", nil
	}

	var ics strings.Builder

	writeLine(&ics, "BEGIN:VCALENDAR")
	writeLine(&ics, "VERSION:2.0")
	writeLine(&ics, "PRODID:"+prodID)
	writeLine(&ics, "CALSCALE:GREGORIAN")
	writeLine(&ics, "METHOD:PUBLISH")
	writeLine(&ics, "X-WR-CALNAME:"+escapeICS(name))
	writeLine(&ics, "X-WR-TIMEZONE:Asia/Bangkok")

	stamp := formatICSTime(now())
	for _, r := range results {
		if err := writeEvent(&ics, r, stamp); err != nil {
			return "", err
		}
	}

	writeLine(&ics, "END:VCALENDAR")
	return ics.String(), nil
}

func writeEvent(ics *strings.Builder, r *lotto.Result, stamp string) error {
	date, err := thaitime.Thai.Parse(r.Date)
	if err != nil {
		return fmt.Errorf("draw %q: %w", r.Date, err)
	}
	start, err := date.ChangeTime(DrawTime)
	if err != nil {
		return err
	}
	end := start.AddMilliseconds(DrawDuration.Milliseconds())

	writeLine(ics, "BEGIN:VEVENT")
	writeLine(ics, fmt.Sprintf("UID:%s@thai-lotto", r.Date))
	writeLine(ics, "DTSTAMP:"+stamp)
	writeLine(ics, "DTSTART:"+formatICSTime(start.Time()))
	writeLine(ics, "DTEND:"+formatICSTime(end.Time()))
	writeLine(ics, "SUMMARY:"+escapeICS("สลากกินแบ่งรัฐบาล งวด "+lotto.FormatThaiDate(date)))
	if desc := describe(r); desc != "" {
		writeLine(ics, "DESCRIPTION:"+escapeICS(desc))
		writeLine(ics, "STATUS:CONFIRMED")
	} else {
		writeLine(ics, "STATUS:TENTATIVE")
	}
	writeLine(ics, "TRANSP:TRANSPARENT")
	writeLine(ics, "END:VEVENT")
	return nil
}

// describe lists the headline prizes of a drawn result
func describe(r *lotto.Result) string {
	if r.FirstPrize == "" {
		return ""
	}
	lines := []string{"First prize: " + r.FirstPrize}
	if len(r.FirstThreeDigits) > 0 {
		lines = append(lines, "First three digits: "+strings.Join(r.FirstThreeDigits, " "))
	}
	if len(r.LastThreeDigits) > 0 {
		lines = append(lines, "Last three digits: "+strings.Join(r.LastThreeDigits, " "))
	}
	if len(r.TwoDigits) > 0 {
		lines = append(lines, "Two digits: "+strings.Join(r.TwoDigits, " "))
	}
	return strings.Join(lines, "\n")
}

// writeLine writes a content line, folding it at 75 octets without splitting a rune
func writeLine(ics *strings.Builder, line string) {
	limit := maxLineOctets
	for len(line) > limit {
		cut := limit
		for cut > 0 && !isRuneStart(line[cut]) {
			cut--
		}
		ics.WriteString(line[:cut])
		ics.WriteString("\r\n ")
		line = line[cut:]
		// continuation lines lose one octet to the leading space
		limit = maxLineOctets - 1
	}
	ics.WriteString(line)
	ics.WriteString("\r\n")
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}

// formatICSTime formats a time.Time as an iCalendar datetime string
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// escapeICS escapes special characters for iCalendar format
func escapeICS(s string) string {
	// Replace special characters according to RFC 5545
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
