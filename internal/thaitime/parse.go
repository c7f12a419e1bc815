package thaitime

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const isoLayout = "2006-01-02T15:04:05.000Z"

// ReferenceOffset is the offset, in hours, used to resolve strings that are
// neither civil (YYYY-MM-DD[ hh:nn[:ss[.zzz]]]) nor strict ISO UTC.
const ReferenceOffset = 7

// civilPattern matches YYYY-MM-DD with an optional hh:nn[:ss[.zzz]] part.
// Slashes are accepted as date separators and a colon as the millisecond separator.
var civilPattern = regexp.MustCompile(`^(\d{4})(?:-(\d{2})-(\d{2})|/(\d{2})/(\d{2}))(?: (\d{2}):(\d{2})(?::(\d{2})(?:[.:](\d{3}))?)?)?$`)

// referenceLayouts are tried in order against the UTC+7 reference zone.
// Layouts carrying their own offset keep it.
var referenceLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-1-2 15:04:05",
	"2006-1-2 15:04",
	"2006-1-2",
	"2006/1/2 15:04:05",
	"2006/1/2 15:04",
	"2006/1/2",
	"Jan 2 2006 15:04:05",
	"Jan 2 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
	time.RFC1123Z,
	time.RFC1123,
}

var referenceZone = NewZone(ReferenceOffset)

// Parse reads s and returns the instant rendered under z.
//
// Civil strings (YYYY-MM-DD, YYYY-MM-DD hh:nn, ...:ss, ...:ss.zzz) are read in z.
// A 24-character ISO string ending in Z (2023-01-06T02:18:58.118Z) is UTC.
// Anything else is read against the fixed UTC+7 reference offset, whatever z is.
// Out-of-range civil components roll over instead of failing.
func (z Zone) Parse(s string) (OffsetTime, error) {
	if len(s) == 24 && s[10] == 'T' && s[23] == 'Z' {
		t, err := time.Parse(isoLayout, s)
		if err != nil {
			return OffsetTime{}, fmt.Errorf("parsing %q: %w", s, ErrUnparseable)
		}
		return z.FromTime(t), nil
	}

	if m := civilPattern.FindStringSubmatch(s); m != nil {
		n := make([]int, len(m)-1)
		for i, part := range m[1:] {
			if part == "" {
				continue
			}
			// all groups are plain digit runs
			n[i], _ = strconv.Atoi(part)
		}
		// groups 2-3 hold a hyphenated date, 4-5 a slashed one
		month, day := n[1], n[2]
		if m[2] == "" {
			month, day = n[3], n[4]
		}
		return z.fromCivil(n[0], month, day, n[5], n[6], n[7], n[8]), nil
	}

	trimmed := strings.TrimSpace(s)
	loc := referenceZone.location()
	for _, layout := range referenceLayouts {
		if t, err := time.ParseInLocation(layout, trimmed, loc); err == nil {
			return z.FromTime(t), nil
		}
	}
	return OffsetTime{}, fmt.Errorf("parsing %q: %w", s, ErrUnparseable)
}

// MustParse is like Parse but panics on error. For tests and fixed literals.
func (z Zone) MustParse(s string) OffsetTime {
	t, err := z.Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}
