package scraper

import (
	"context"
	"errors"
	"fmt"

	"github.com/pfrederiksen/thai-lotto/internal/logger"
	"github.com/pfrederiksen/thai-lotto/internal/lotto"
	"github.com/pfrederiksen/thai-lotto/internal/thaitime"
)

// CurrentDrawDate returns the most recent draw date shown on the main page
func (s *Scraper) CurrentDrawDate(ctx context.Context) (thaitime.OffsetTime, error) {
	doc, err := s.fetch(ctx, s.mainPageURL())
	if err != nil {
		return thaitime.OffsetTime{}, err
	}
	return parseCurrentDrawDate(doc)
}

// PreviousDrawDate returns the draw before the current one.
// Returns ErrNotFound if the page has no previous-draw heading.
func (s *Scraper) PreviousDrawDate(ctx context.Context) (thaitime.OffsetTime, error) {
	doc, err := s.fetch(ctx, s.mainPageURL())
	if err != nil {
		return thaitime.OffsetTime{}, err
	}
	return parsePreviousDrawDate(doc)
}

// DrawYears returns the Buddhist years that have results
func (s *Scraper) DrawYears(ctx context.Context) ([]int, error) {
	doc, err := s.fetch(ctx, s.mainPageURL())
	if err != nil {
		return nil, err
	}
	return parseDrawYears(doc), nil
}

// DrawDatesByYear returns the draw dates of a Gregorian year
func (s *Scraper) DrawDatesByYear(ctx context.Context, year int) ([]thaitime.OffsetTime, error) {
	doc, err := s.fetch(ctx, s.yearPageURL(year+thaitime.BuddhistEraOffset))
	if err != nil {
		return nil, err
	}
	dates, err := parseDrawDates(doc)
	if err != nil {
		return nil, fmt.Errorf("year %d: %w", year, err)
	}
	logger.Debug("Parsed draw dates", logger.Fields{"year": year, "count": len(dates)})
	return dates, nil
}

// DrawDates returns the draw dates of every year listed on the main page
func (s *Scraper) DrawDates(ctx context.Context) ([]thaitime.OffsetTime, error) {
	years, err := s.DrawYears(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing years: %w", err)
	}

	dates := make([]thaitime.OffsetTime, 0)
	for _, by := range years {
		yearDates, err := s.DrawDatesByYear(ctx, by-thaitime.BuddhistEraOffset)
		if err != nil {
			return nil, err
		}
		dates = append(dates, yearDates...)
	}
	return dates, nil
}

// Result fetches the winning numbers of the draw on date
func (s *Scraper) Result(ctx context.Context, date thaitime.OffsetTime) (*lotto.Result, error) {
	doc, err := s.fetch(ctx, s.drawPageURL(date))
	if err != nil {
		return nil, err
	}
	return parseResult(doc, date)
}

// PreviousResult fetches the result of the previous draw
func (s *Scraper) PreviousResult(ctx context.Context) (*lotto.Result, error) {
	date, err := s.PreviousDrawDate(ctx)
	if err != nil {
		return nil, err
	}
	return s.Result(ctx, date)
}

// Results fetches the result of each date in order
func (s *Scraper) Results(ctx context.Context, dates []thaitime.OffsetTime) ([]*lotto.Result, error) {
	results := make([]*lotto.Result, 0, len(dates))
	for i, date := range dates {
		r, err := s.Result(ctx, date)
		if err != nil {
			return nil, fmt.Errorf("draw %s: %w", date.Date10(), err)
		}
		results = append(results, r)
		logger.Debug("Fetched result", logger.Fields{
			"date":     r.Date,
			"progress": fmt.Sprintf("%d/%d", i+1, len(dates)),
		})
	}
	return results, nil
}

// AvailableResults is like Results but skips draws whose page has no prize box.
// The skipped dates are returned in order; any other error aborts.
func (s *Scraper) AvailableResults(ctx context.Context, dates []thaitime.OffsetTime) ([]*lotto.Result, []thaitime.OffsetTime, error) {
	results := make([]*lotto.Result, 0, len(dates))
	missing := make([]thaitime.OffsetTime, 0)
	for _, date := range dates {
		r, err := s.Result(ctx, date)
		if errors.Is(err, ErrNotFound) {
			logger.IncrCounter("scraper.missing")
			logger.Warn("Draw page has no result", logger.Fields{"date": date.Date10()})
			missing = append(missing, date)
			continue
		}
		if err != nil {
			return nil, nil, fmt.Errorf("draw %s: %w", date.Date10(), err)
		}
		results = append(results, r)
	}
	return results, missing, nil
}

// ResultsByYear fetches every result of a Gregorian year
func (s *Scraper) ResultsByYear(ctx context.Context, year int) ([]*lotto.Result, error) {
	dates, err := s.DrawDatesByYear(ctx, year)
	if err != nil {
		return nil, err
	}
	return s.Results(ctx, dates)
}

// ResultsByMonth fetches every result of a month (1-12) of a Gregorian year
func (s *Scraper) ResultsByMonth(ctx context.Context, month, year int) ([]*lotto.Result, error) {
	dates, err := s.DrawDatesByYear(ctx, year)
	if err != nil {
		return nil, err
	}

	inMonth := make([]thaitime.OffsetTime, 0)
	for _, d := range dates {
		if d.Month() == month {
			inMonth = append(inMonth, d)
		}
	}
	return s.Results(ctx, inMonth)
}

// AllResults fetches the result of every listed draw
func (s *Scraper) AllResults(ctx context.Context) ([]*lotto.Result, error) {
	dates, err := s.DrawDates(ctx)
	if err != nil {
		return nil, err
	}
	return s.Results(ctx, dates)
}
