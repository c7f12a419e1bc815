package scraper

import (
	"fmt"
	"strings"
)

// mainPageHTML builds a main page with the site's nth-child layout
func mainPageHTML(current, previous string, yearLinks ...string) string {
	var b strings.Builder
	b.WriteString(`<html><body><div id="container"><div class="content-main-fullwidth">`)
	for i := 1; i <= 8; i++ {
		fmt.Fprintf(&b, `<div>block %d</div>`, i)
	}
	b.WriteString(`<div><div class="lotto-left">`)
	b.WriteString(`<div>header</div><div>menu</div>`)
	fmt.Fprintf(&b, `<div><a href="/x">%s</a></div>`, current)
	for i := 4; i <= 8; i++ {
		fmt.Fprintf(&b, `<div>row %d</div>`, i)
	}
	if previous != "" {
		fmt.Fprintf(&b, `<div><h3>งวดวันที่ %s</h3></div>`, previous)
	} else {
		b.WriteString(`<div><p>no heading</p></div>`)
	}
	b.WriteString(`<div class="mb-15">`)
	for _, y := range yearLinks {
		fmt.Fprintf(&b, `<a href="/y">%s</a>`, y)
	}
	b.WriteString(`</div></div></div></div></div></body></html>`)
	return b.String()
}

// yearPageHTML builds a year page listing the given Thai draw dates
func yearPageHTML(dates ...string) string {
	var b strings.Builder
	b.WriteString(`<html><body><table id="dl_lottery_stats_list">`)
	b.WriteString(`<tr><th>รายการ</th></tr>`)
	for _, d := range dates {
		fmt.Fprintf(&b, `<tr><td><a href="/d"><font>ตรวจสลากกินแบ่งรัฐบาล งวด %s</font></a></td></tr>`, d)
	}
	b.WriteString(`</table></body></html>`)
	return b.String()
}

type drawPage struct {
	first       string
	firstThree  string
	lastThree   string
	two         string
	nearFirst   string
	second      []string
	third       []string
	fourth      []string
	fifth       []string
}

// html builds a draw page with prize sections at children 5, 9, 13 and 17 of #p_result2
func (p drawPage) html() string {
	var b strings.Builder
	b.WriteString(`<html><body><div id="main_lotto"><div class="lot-dr">`)
	fmt.Fprintf(&b, `<div>%s</div><div>%s</div><div>%s</div><div>%s</div>`, p.first, p.firstThree, p.lastThree, p.two)
	b.WriteString(`</div></div><div id="p_result2">`)

	sections := map[int][]string{5: p.second, 9: p.third, 13: p.fourth, 17: p.fifth}
	for i := 1; i <= 17; i++ {
		switch {
		case i == 1:
			fmt.Fprintf(&b, `<div><div class="lot-cw70 lotto-fx"> %s </div></div>`, p.nearFirst)
		case sections[i] != nil:
			b.WriteString(`<div>`)
			for _, n := range sections[i] {
				fmt.Fprintf(&b, `<div> %s </div>`, n)
			}
			b.WriteString(`</div>`)
		default:
			fmt.Fprintf(&b, `<div>label %d</div>`, i)
		}
	}
	b.WriteString(`</div></body></html>`)
	return b.String()
}

var sampleDraw = drawPage{
	first:      "730209",
	firstThree: "446 065",
	lastThree:  "376 297",
	two:        "51",
	nearFirst:  "730208  730210",
	second:     []string{"053821", "081139", "337646", "737018", "845469"},
	third:      []string{"111111", "222222", "333333"},
	fourth:     []string{"444444", "555555"},
	fifth:      []string{"666666"},
}
