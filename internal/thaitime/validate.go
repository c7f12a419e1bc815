package thaitime

import "strings"

// IsValidDate reports whether s is a real calendar date in YYYY-MM-DD or YYYY/MM/DD form.
// It parses s and requires the rendered date to equal s with slashes turned into
// hyphens, so rolled-over dates such as 2019-02-29 are rejected.
func (z Zone) IsValidDate(s string) bool {
	if len(s) != 10 {
		return false
	}
	want := strings.ReplaceAll(s, "/", "-")
	t, err := z.Parse(s)
	return err == nil && t.Date10() == want
}

// IsValidTime reports whether s is hh:nn, hh:nn:ss or hh:nn:ss.zzz with in-range fields.
// The millisecond separator may also be a colon (15:20:49:293).
func (z Zone) IsValidTime(s string) bool {
	var want string
	switch len(s) {
	case 5:
		want = s + ":00.000"
	case 8:
		want = s + ".000"
	case 12:
		want = s
	default:
		return false
	}
	want = want[:8] + "." + want[9:]

	t, err := z.Parse("2020-01-01 " + s)
	return err == nil && t.Time12() == want
}

// IsValidDateTime reports whether s is a valid date, one space, and a valid time.
func (z Zone) IsValidDateTime(s string) bool {
	switch len(s) {
	case 11 + 5, 11 + 8, 11 + 12:
	default:
		return false
	}
	return s[10] == ' ' && z.IsValidDate(s[:10]) && z.IsValidTime(s[11:])
}

// IsValidDate is NewZone(offset).IsValidDate(s).
func IsValidDate(s string, offset float64) bool {
	return NewZone(offset).IsValidDate(s)
}

// IsValidTime is NewZone(offset).IsValidTime(s).
func IsValidTime(s string, offset float64) bool {
	return NewZone(offset).IsValidTime(s)
}

// IsValidDateTime is NewZone(offset).IsValidDateTime(s).
func IsValidDateTime(s string, offset float64) bool {
	return NewZone(offset).IsValidDateTime(s)
}
