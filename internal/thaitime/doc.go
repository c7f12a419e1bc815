// Package thaitime provides a fixed-offset civil time value with Buddhist-era formatting.
//
// An OffsetTime is an immutable instant (milliseconds since the Unix epoch) viewed
// through a fixed UTC offset. Values are created from a Zone, which binds the offset
// once; Thai is the zone pre-bound to UTC+7. The package also provides a small
// pattern language for rendering dates (YYYY, BBBB, MMMMT, DOW, ...) and round-trip
// validators for date, time and date-time strings.
package thaitime
