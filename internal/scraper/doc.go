// Package scraper fetches Thai government lottery pages from myhora.com and parses them.
//
// The main page lists the current and previous draw dates and the years that have
// results. Each year page lists that year's draw dates in Thai ("17 มกราคม 2568")
// and each draw page holds the winning numbers. Requests are sequential, retried
// with exponential backoff on transport errors and 5xx responses, and spaced by a
// configurable delay.
package scraper
