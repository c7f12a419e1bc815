package thaitime

import (
	"errors"
	"fmt"
	"math"
	"time"
)

const (
	// ThaiOffset is the UTC offset, in hours, of Thai civil time.
	ThaiOffset = 7

	// BuddhistEraOffset is added to a Gregorian year to get the Buddhist year.
	BuddhistEraOffset = 543

	msPerSecond = int64(1000)
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
)

var (
	// ErrInvalidFormat is returned by ChangeTime for time strings of the wrong shape.
	ErrInvalidFormat = errors.New("time should be hh:nn or hh:nn:ss or hh:nn:ss.zzz")

	// ErrUnparseable is returned by Parse when the input matches no known layout.
	ErrUnparseable = errors.New("unparseable date/time string")
)

// now is swapped in tests
var now = time.Now

// Zone is a fixed UTC offset used to construct and validate OffsetTime values.
type Zone struct {
	hours float64
}

// Thai is the UTC+7 zone used for Thai civil dates.
var Thai = NewZone(ThaiOffset)

// NewZone returns a zone for the given offset in hours. Fractional offsets such as 5.5 are allowed.
func NewZone(hours float64) Zone {
	return Zone{hours: hours}
}

// Offset returns the zone offset in hours
func (z Zone) Offset() float64 {
	return z.hours
}

func (z Zone) location() *time.Location {
	secs := int(math.Round(z.hours * 3600))
	sign := '+'
	abs := secs
	if secs < 0 {
		sign = '-'
		abs = -secs
	}
	return time.FixedZone(fmt.Sprintf("UTC%c%02d:%02d", sign, abs/3600, abs%3600/60), secs)
}

// Now returns the current instant.
func (z Zone) Now() OffsetTime {
	return z.FromTime(now())
}

// FromTime wraps an existing time.Time. Its location is ignored, only the instant is kept.
func (z Zone) FromTime(t time.Time) OffsetTime {
	return z.FromEpochMillis(t.UnixMilli())
}

// FromEpochMillis wraps a Unix timestamp in milliseconds.
func (z Zone) FromEpochMillis(ms int64) OffsetTime {
	return OffsetTime{
		ms:     ms,
		offset: z.hours,
		civil:  time.UnixMilli(ms).In(z.location()),
	}
}

// FromYMD returns midnight of the given civil date. Month is 1-12; out-of-range
// components roll over (month 13 is January of the next year).
func (z Zone) FromYMD(year, month, day int) OffsetTime {
	return z.fromCivil(year, month, day, 0, 0, 0, 0)
}

// FromYMDHMS is FromYMD with a time of day. Hour is 0-23.
func (z Zone) FromYMDHMS(year, month, day, hour, minute, second int) OffsetTime {
	return z.fromCivil(year, month, day, hour, minute, second, 0)
}

func (z Zone) fromCivil(year, month, day, hour, minute, second, milli int) OffsetTime {
	t := time.Date(year, time.Month(month), day, hour, minute, second, milli*int(time.Millisecond), z.location())
	return z.FromTime(t)
}

// OffsetTime is an instant rendered under a fixed UTC offset.
// The zero value is the Unix epoch at UTC+0.
type OffsetTime struct {
	ms     int64
	offset float64
	civil  time.Time
}

func (o OffsetTime) zone() Zone {
	return Zone{hours: o.offset}
}

// Offset returns the offset in hours this value renders under
func (o OffsetTime) Offset() float64 {
	return o.offset
}

// EpochMillis returns milliseconds since the Unix epoch.
func (o OffsetTime) EpochMillis() int64 {
	return o.ms
}

// Time returns the instant as a UTC time.Time.
func (o OffsetTime) Time() time.Time {
	return time.UnixMilli(o.ms).UTC()
}

// ISOString returns the instant in UTC, e.g. 2023-01-06T02:18:58.118Z.
func (o OffsetTime) ISOString() string {
	return o.Time().Format(isoLayout)
}

func (o OffsetTime) Year() int { return o.view().Year() }

// Month returns 1-12
func (o OffsetTime) Month() int { return int(o.view().Month()) }

// Day returns 1-31
func (o OffsetTime) Day() int { return o.view().Day() }

// Hour returns 0-23
func (o OffsetTime) Hour() int { return o.view().Hour() }

func (o OffsetTime) Minute() int { return o.view().Minute() }

func (o OffsetTime) Second() int { return o.view().Second() }

func (o OffsetTime) Millisecond() int { return o.view().Nanosecond() / int(time.Millisecond) }

// DayOfWeek returns 0 for Sunday through 6 for Saturday.
func (o OffsetTime) DayOfWeek() int { return int(o.view().Weekday()) }

// view returns the civil breakdown, building it for zero values
func (o OffsetTime) view() time.Time {
	if o.civil.IsZero() {
		return o.zone().FromEpochMillis(o.ms).civil
	}
	return o.civil
}

// Date10 returns YYYY-MM-DD
func (o OffsetTime) Date10() string {
	return fmt.Sprintf("%04d-%02d-%02d", o.Year(), o.Month(), o.Day())
}

// Time8 returns HH:NN:SS
func (o OffsetTime) Time8() string {
	return fmt.Sprintf("%02d:%02d:%02d", o.Hour(), o.Minute(), o.Second())
}

// Time12 returns HH:NN:SS.ZZZ
func (o OffsetTime) Time12() string {
	return fmt.Sprintf("%s.%03d", o.Time8(), o.Millisecond())
}

// DateTime19 returns YYYY-MM-DD HH:NN:SS
func (o OffsetTime) DateTime19() string {
	return o.Date10() + " " + o.Time8()
}

// DateTime23 returns YYYY-MM-DD HH:NN:SS.ZZZ
func (o OffsetTime) DateTime23() string {
	return o.Date10() + " " + o.Time12()
}

// String returns the default format, see Format.
func (o OffsetTime) String() string {
	return o.Format("")
}

// Equal reports whether both values are the same instant, whatever their offsets.
func (o OffsetTime) Equal(other OffsetTime) bool { return o.ms == other.ms }

func (o OffsetTime) Before(other OffsetTime) bool { return o.ms < other.ms }

func (o OffsetTime) After(other OffsetTime) bool { return o.ms > other.ms }

// Compare returns -1, 0 or +1 comparing the instants.
func (o OffsetTime) Compare(other OffsetTime) int {
	switch {
	case o.ms < other.ms:
		return -1
	case o.ms > other.ms:
		return 1
	}
	return 0
}

func (o OffsetTime) addMillis(n int64) OffsetTime {
	return o.zone().FromEpochMillis(o.ms + n)
}

func (o OffsetTime) AddDays(n int) OffsetTime { return o.addMillis(int64(n) * msPerDay) }

func (o OffsetTime) AddHours(n int) OffsetTime { return o.addMillis(int64(n) * msPerHour) }

func (o OffsetTime) AddMinutes(n int) OffsetTime { return o.addMillis(int64(n) * msPerMinute) }

func (o OffsetTime) AddSeconds(n int) OffsetTime { return o.addMillis(int64(n) * msPerSecond) }

func (o OffsetTime) AddMilliseconds(n int64) OffsetTime { return o.addMillis(n) }

// StartOfDay returns 00:00:00.000 of the same civil date.
func (o OffsetTime) StartOfDay() OffsetTime {
	return o.zone().FromYMD(o.Year(), o.Month(), o.Day())
}

// EndOfDay returns one second before the next midnight, 23:59:59.000.
// Milliseconds are zero, not 999.
func (o OffsetTime) EndOfDay() OffsetTime {
	return o.StartOfDay().AddDays(1).AddSeconds(-1)
}

// StartOfMonth returns 00:00:00.000 on day 1 of the same civil month.
func (o OffsetTime) StartOfMonth() OffsetTime {
	return o.zone().FromYMD(o.Year(), o.Month(), 1)
}

// ChangeTime keeps the civil date and replaces the time of day.
// Accepted shapes are hh:nn, hh:nn:ss and hh:nn:ss.zzz.
func (o OffsetTime) ChangeTime(timeStr string) (OffsetTime, error) {
	switch len(timeStr) {
	case 5:
		timeStr += ":00"
	case 8, 12:
	default:
		return OffsetTime{}, fmt.Errorf("changing time to %q: %w", timeStr, ErrInvalidFormat)
	}
	return o.zone().Parse(o.Date10() + " " + timeStr)
}
