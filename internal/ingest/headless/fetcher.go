// Package headless fetches stats API responses through a real browser.
// The stats API fingerprints plain HTTP clients and serves them block
// pages; navigating with Chrome gets the same JSON the site itself sees,
// wrapped in Chrome's viewer markup.
package headless

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"
)

const (
	// UserAgent for requests
	UserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// MinRequestInterval to prevent rate limiting
	MinRequestInterval = 2 * time.Second
)

// Fetcher implements statsapi.Fetcher over a headless Chrome instance,
// with rate limiting between requests.
type Fetcher struct {
	lastRequest time.Time
	interval    time.Duration

	allocCtx context.Context
	cancel   context.CancelFunc
}

// NewFetcher starts a headless browser allocator.
func NewFetcher() (*Fetcher, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(UserAgent),
	)

	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(), opts...)

	return &Fetcher{
		interval: MinRequestInterval,
		allocCtx: allocCtx,
		cancel:   cancel,
	}, nil
}

// Close releases the browser.
func (f *Fetcher) Close() {
	if f.cancel != nil {
		f.cancel()
	}
}

// Fetch navigates to the URL and returns the JSON body Chrome rendered.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if !f.lastRequest.IsZero() {
		elapsed := time.Since(f.lastRequest)
		if elapsed < f.interval {
			wait := f.interval - elapsed
			log.Printf("[headless] rate limiting: waiting %v before next request", wait)
			time.Sleep(wait)
		}
	}

	html, err := f.fetch(ctx, url)
	f.lastRequest = time.Now()
	if err != nil {
		return nil, err
	}

	body, err := extractJSONBody(html)
	if err != nil {
		return nil, fmt.Errorf("extracting body from %s: %w", url, err)
	}
	return body, nil
}

func (f *Fetcher) fetch(ctx context.Context, url string) (string, error) {
	browserCtx, cancel := chromedp.NewContext(f.allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, 45*time.Second)
	defer cancel()

	var htmlContent string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitVisible(`body`, chromedp.ByQuery),
		chromedp.OuterHTML(`html`, &htmlContent, chromedp.ByQuery),
	)
	if err != nil {
		return "", fmt.Errorf("chromedp error: %w", err)
	}
	if htmlContent == "" {
		return "", fmt.Errorf("empty HTML content returned")
	}

	return htmlContent, nil
}

// extractJSONBody pulls the raw JSON out of Chrome's rendering of a JSON
// document: the payload lands in a <pre> element. Falls back to the body
// text for responses served without the viewer wrapper.
func extractJSONBody(htmlContent string) ([]byte, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("parsing rendered page: %w", err)
	}

	text := strings.TrimSpace(doc.Find("pre").First().Text())
	if text == "" {
		text = strings.TrimSpace(doc.Find("body").Text())
	}
	if text == "" || text[0] != '{' {
		return nil, fmt.Errorf("no JSON payload in rendered page")
	}

	return []byte(text), nil
}
