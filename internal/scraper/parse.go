package scraper

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pfrederiksen/thai-lotto/internal/lotto"
	"github.com/pfrederiksen/thai-lotto/internal/thaitime"
)

// Selectors for the myhora.com page layout
const (
	lottoLeft       = "#container > div.content-main-fullwidth > div:nth-child(9) > div.lotto-left"
	currentDrawSel  = lottoLeft + " > div:nth-child(3) > a"
	previousDrawSel = lottoLeft + " > div:nth-child(9) > h3"
	yearListSel     = lottoLeft + " > div.mb-15"

	drawRowsSel = "#dl_lottery_stats_list > tbody > tr"
	drawLinkSel = "td > a > font"

	mainLottoSel   = "#main_lotto > div.lot-dr"
	prizeTableSel  = "#p_result2"
	nearFirstSel   = prizeTableSel + " > div:nth-child(1) > div.lot-cw70.lotto-fx"
	secondPrizeSel = prizeTableSel + " > div:nth-child(5)"
	thirdPrizeSel  = prizeTableSel + " > div:nth-child(9)"
	fourthPrizeSel = prizeTableSel + " > div:nth-child(13)"
	fifthPrizeSel  = prizeTableSel + " > div:nth-child(17)"
)

const (
	yearLinkPrefix = "ตรวจหวย"
	drawLinkPrefix = "ตรวจสลากกินแบ่งรัฐบาล งวด"
)

// previousDrawPattern matches the "งวดวันที่ 16 กันยายน 2568" heading
var previousDrawPattern = regexp.MustCompile(`งวดวันที่\s+(.*)`)

// parseCurrentDrawDate reads the latest draw date from the main page
func parseCurrentDrawDate(doc *goquery.Document) (thaitime.OffsetTime, error) {
	text := strings.TrimSpace(doc.Find(currentDrawSel).First().Text())
	if text == "" {
		return thaitime.OffsetTime{}, fmt.Errorf("current draw date: %w", ErrNotFound)
	}
	return lotto.ParseThaiDate(text)
}

// parsePreviousDrawDate reads the previous draw date heading from the main page
func parsePreviousDrawDate(doc *goquery.Document) (thaitime.OffsetTime, error) {
	text := lotto.NormalizeText(doc.Find(previousDrawSel).First().Text())
	match := previousDrawPattern.FindStringSubmatch(text)
	if len(match) < 2 {
		return thaitime.OffsetTime{}, fmt.Errorf("previous draw date: %w", ErrNotFound)
	}
	return lotto.ParseThaiDate(match[1])
}

// parseDrawYears returns the Buddhist years linked from the main page, in page order
func parseDrawYears(doc *goquery.Document) []int {
	years := make([]int, 0)
	doc.Find(yearListSel).Children().Each(func(i int, sel *goquery.Selection) {
		text := lotto.NormalizeText(sel.Text())
		text = strings.TrimSpace(strings.TrimPrefix(text, yearLinkPrefix))
		if year, err := strconv.Atoi(text); err == nil {
			years = append(years, year)
		}
	})
	return years
}

// parseDrawDates reads every draw date listed on a year page
func parseDrawDates(doc *goquery.Document) ([]thaitime.OffsetTime, error) {
	dates := make([]thaitime.OffsetTime, 0)
	var parseErr error

	doc.Find(drawRowsSel).EachWithBreak(func(i int, row *goquery.Selection) bool {
		text := lotto.NormalizeText(row.Find(drawLinkSel).Text())
		text = strings.TrimSpace(strings.TrimPrefix(text, drawLinkPrefix))
		if text == "" {
			return true
		}
		date, err := lotto.ParseThaiDate(text)
		if err != nil {
			parseErr = fmt.Errorf("parsing draw list row %d: %w", i+1, err)
			return false
		}
		dates = append(dates, date)
		return true
	})

	if parseErr != nil {
		return nil, parseErr
	}
	return dates, nil
}

// parseResult extracts every prize from a draw page
func parseResult(doc *goquery.Document, date thaitime.OffsetTime) (*lotto.Result, error) {
	if doc.Find(mainLottoSel).Length() == 0 {
		return nil, fmt.Errorf("result for %s: %w", date.Date10(), ErrNotFound)
	}

	r := lotto.NewResult(date)
	r.FirstPrize = strings.TrimSpace(mainLottoRow(doc, 1))
	r.FirstThreeDigits = fields(mainLottoRow(doc, 2))
	r.LastThreeDigits = fields(mainLottoRow(doc, 3))
	r.TwoDigits = fields(mainLottoRow(doc, 4))

	r.NearFirstPrize = fields(doc.Find(nearFirstSel).Text())
	r.SecondPrize = childTexts(doc.Find(secondPrizeSel))
	r.ThirdPrize = childTexts(doc.Find(thirdPrizeSel))
	r.FourthPrize = childTexts(doc.Find(fourthPrizeSel))
	r.FifthPrize = childTexts(doc.Find(fifthPrizeSel))

	return r, nil
}

// mainLottoRow returns the text of the n-th row (1-based) of the main prize box
func mainLottoRow(doc *goquery.Document, n int) string {
	return doc.Find(fmt.Sprintf("%s > div:nth-child(%d)", mainLottoSel, n)).First().Text()
}

// fields splits space-separated numbers, never returning nil
func fields(text string) []string {
	out := strings.Fields(text)
	if out == nil {
		return []string{}
	}
	return out
}

// childTexts returns the trimmed, non-empty text of each child element
func childTexts(sel *goquery.Selection) []string {
	out := make([]string, 0)
	sel.Children().Each(func(i int, child *goquery.Selection) {
		if text := strings.TrimSpace(child.Text()); text != "" {
			out = append(out, text)
		}
	})
	return out
}
