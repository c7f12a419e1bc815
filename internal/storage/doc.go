// Package storage writes and reads exported lottery data.
//
// Draw dates are written under <data-dir>/date/ and results under
// <data-dir>/result/, one CSV and one JSON file per partition: all.csv/all.json,
// one pair per Gregorian year (2025.csv) and one per Buddhist year (2568.csv).
// CSV files use "|" as the delimiter and hold list fields as JSON arrays.
package storage
