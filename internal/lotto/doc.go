// Package lotto provides types and helpers for Thai government lottery draws.
//
// A Draw is a draw date and a Result holds every prize of one draw. Dates scraped
// from Thai pages ("17 มกราคม 2568") are parsed into thaitime values, and rows are
// grouped into export partitions keyed by "all", the Gregorian year and the
// Buddhist year.
package lotto
