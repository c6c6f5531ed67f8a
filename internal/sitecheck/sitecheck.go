// Package sitecheck renders the live site in headless Chrome and inspects
// the houses section of the resulting HTML.
package sitecheck

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"
)

// Card is one house card as rendered on the page.
type Card struct {
	Name     string
	Day      string
	Time     string
	Location string
	Footer   string
	Active   bool
}

// Section is the parsed houses section.
type Section struct {
	Source  string // "live" or "fallback"
	Loading string // loading label, empty when absent
	Notice  string // fallback notice, empty when absent
	Cards   []Card
}

var ErrNoHousesSection = errors.New("page has no houses section")

// Render loads url in headless Chrome, waits for the houses section and
// returns the page HTML.
func Render(ctx context.Context, url string) (string, error) {
	opts := chromedp.DefaultExecAllocatorOptions[:]
	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}
	opts = append(opts,
		chromedp.Headless,
		chromedp.DisableGPU,
		chromedp.NoSandbox,
	)

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromeCtx, chromeCancel := chromedp.NewContext(allocCtx)
	defer chromeCancel()

	var html string
	err := chromedp.Run(chromeCtx,
		chromedp.Navigate(url),
		chromedp.WaitVisible(`#houses`, chromedp.ByQuery),
		chromedp.Sleep(500*time.Millisecond),
		chromedp.OuterHTML(`html`, &html, chromedp.ByQuery),
	)
	if err != nil {
		return "", fmt.Errorf("rendering %s: %w", url, err)
	}
	return html, nil
}

// ParseHouses extracts the houses section from an HTML document.
func ParseHouses(r io.Reader) (*Section, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	sel := doc.Find("section#houses")
	if sel.Length() == 0 {
		return nil, ErrNoHousesSection
	}

	section := &Section{
		Source:  sel.AttrOr("data-source", ""),
		Loading: text(sel.Find(".status.loading .status-label")),
		Notice:  text(sel.Find(".status.notice")),
	}

	sel.Find(".house-grid .house").Each(func(i int, card *goquery.Selection) {
		section.Cards = append(section.Cards, Card{
			Name:     text(card.Find(".house-name")),
			Day:      text(card.Find(".house-day")),
			Time:     text(card.Find(".house-time")),
			Location: text(card.Find(".house-location")),
			Footer:   text(card.Find(".house-footer")),
			Active:   card.AttrOr("data-active", "") == "true",
		})
	})

	return section, nil
}

// Check reports every way the section breaks the page's promises: an empty
// list, or a card whose footer disagrees with its active flag.
func (s *Section) Check(welcome, comingSoon string) error {
	var errs []error
	if len(s.Cards) == 0 {
		errs = append(errs, errors.New("no house cards rendered"))
	}
	for _, c := range s.Cards {
		want := welcome
		if !c.Active {
			want = comingSoon
		}
		if c.Footer != want {
			errs = append(errs, fmt.Errorf("house %q: footer %q, want %q", c.Name, c.Footer, want))
		}
	}
	return errors.Join(errs...)
}

func text(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.Text()), " ")
}
