package thaitime

import (
	"fmt"
	"strconv"
	"strings"
)

// legacyOffsetSuffix is appended by Format("") whatever the value's offset.
// Existing exports and links were produced with it, so it stays fixed.
const legacyOffsetSuffix = "+07:00"

var (
	EnglishDays     = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	EnglishDaysAbbr = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	ThaiDays        = [7]string{"อาทิตย์", "จันทร์", "อังคาร", "พุธ", "พฤหัส", "ศุกร์", "เสาร์"}
	ThaiDaysAbbr    = [7]string{"อา.", "จ.", "อ.", "พ.", "พฤ.", "ศ.", "ส."}

	EnglishMonths     = [12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"}
	EnglishMonthsAbbr = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	ThaiMonths        = [12]string{"มกราคม", "กุมภาพันธ์", "มีนาคม", "เมษายน", "พฤษภาคม", "มิถุนายน", "กรกฎาคม", "สิงหาคม", "กันยายน", "ตุลาคม", "พฤศจิกายน", "ธันวาคม"}
	ThaiMonthsAbbr    = [12]string{"ม.ค.", "ก.พ.", "มี.ค.", "เม.ย.", "พ.ค.", "มิ.ย.", "ก.ค.", "ส.ค.", "ก.ย.", "ต.ค.", "พ.ย.", "ธ.ค."}
)

type token struct {
	text   string
	render func(OffsetTime) string
}

// tokens is ordered longest first so that a scan never splits MMMM into MM+MM
// or DOWT into DOW+T.
var tokens = []token{
	{"MMMMT", func(o OffsetTime) string { return ThaiMonths[o.Month()-1] }},
	{"BBBB", func(o OffsetTime) string { return buddhistYear(o) }},
	{"YYYY", func(o OffsetTime) string { return gregorianYear(o) }},
	{"DOWT", func(o OffsetTime) string { return ThaiDays[o.DayOfWeek()] }},
	{"dowt", func(o OffsetTime) string { return ThaiDaysAbbr[o.DayOfWeek()] }},
	{"MMMT", func(o OffsetTime) string { return ThaiMonthsAbbr[o.Month()-1] }},
	{"MMMM", func(o OffsetTime) string { return EnglishMonths[o.Month()-1] }},
	{"DOW", func(o OffsetTime) string { return EnglishDays[o.DayOfWeek()] }},
	{"dow", func(o OffsetTime) string { return EnglishDaysAbbr[o.DayOfWeek()] }},
	{"MMM", func(o OffsetTime) string { return EnglishMonthsAbbr[o.Month()-1] }},
	{"zzz", func(o OffsetTime) string { return fmt.Sprintf("%03d", o.Millisecond()) }},
	{"BB", func(o OffsetTime) string { return buddhistYear(o)[2:] }},
	{"YY", func(o OffsetTime) string { return gregorianYear(o)[2:] }},
	{"MM", func(o OffsetTime) string { return fmt.Sprintf("%02d", o.Month()) }},
	{"DD", func(o OffsetTime) string { return fmt.Sprintf("%02d", o.Day()) }},
	{"hh", func(o OffsetTime) string { return fmt.Sprintf("%02d", o.Hour()) }},
	{"nn", func(o OffsetTime) string { return fmt.Sprintf("%02d", o.Minute()) }},
	{"ss", func(o OffsetTime) string { return fmt.Sprintf("%02d", o.Second()) }},
	{"M", func(o OffsetTime) string { return strconv.Itoa(o.Month()) }},
	{"D", func(o OffsetTime) string { return strconv.Itoa(o.Day()) }},
}

func gregorianYear(o OffsetTime) string {
	return fmt.Sprintf("%04d", o.Year())
}

func buddhistYear(o OffsetTime) string {
	return fmt.Sprintf("%04d", o.Year()+BuddhistEraOffset)
}

// Format renders o with pattern. An empty pattern gives
// YYYY-MM-DDThh:nn:ss+07:00, with the +07:00 suffix fixed for every offset.
//
// Tokens:
//
//	YYYY 2022       YY 22        BBBB 2565 (Buddhist)   BB 65
//	MMMM September  MMM Sep      MMMMT กันยายน          MMMT ก.ย.
//	MM 09           M 9          DD 05                  D 5
//	DOW Monday      dow Mon      DOWT จันทร์            dowt จ.
//	hh 15           nn 08        ss 59                  zzz 990
//
// Every occurrence is replaced; any other text is copied as is.
func (o OffsetTime) Format(pattern string) string {
	if pattern == "" {
		return o.Date10() + "T" + o.Time8() + legacyOffsetSuffix
	}

	var b strings.Builder
	b.Grow(len(pattern) + 16)
	for i := 0; i < len(pattern); {
		if tok, ok := matchToken(pattern[i:]); ok {
			b.WriteString(tok.render(o))
			i += len(tok.text)
			continue
		}
		b.WriteByte(pattern[i])
		i++
	}
	return b.String()
}

func matchToken(s string) (token, bool) {
	for _, tok := range tokens {
		if strings.HasPrefix(s, tok.text) {
			return tok, true
		}
	}
	return token{}, false
}
