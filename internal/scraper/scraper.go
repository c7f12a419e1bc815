package scraper

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cenkalti/backoff/v4"
	"golang.org/x/net/html/charset"

	"github.com/pfrederiksen/thai-lotto/internal/logger"
	"github.com/pfrederiksen/thai-lotto/internal/thaitime"
)

const (
	BaseURL   = "https://myhora.com/หวย"
	UserAgent = "thai-lotto/1.0 (github.com/pfrederiksen/thai-lotto)"
	Timeout   = 30 * time.Second

	DefaultRetries       = 3
	DefaultRetryInterval = 500 * time.Millisecond
)

// ErrNotFound is returned when an expected element is missing from a page
var ErrNotFound = errors.New("not found on page")

// Scraper fetches and parses myhora.com lottery pages.
// It is not safe for concurrent use; requests are issued one at a time.
type Scraper struct {
	client        *http.Client
	baseURL       string
	userAgent     string
	retries       uint64
	retryInterval time.Duration
	delay         time.Duration
	lastFetch     time.Time
}

// Option configures a Scraper
type Option func(*Scraper)

// WithBaseURL sets the site root, without a trailing slash
func WithBaseURL(u string) Option {
	return func(s *Scraper) { s.baseURL = u }
}

func WithUserAgent(ua string) Option {
	return func(s *Scraper) { s.userAgent = ua }
}

func WithTimeout(d time.Duration) Option {
	return func(s *Scraper) { s.client.Timeout = d }
}

// WithRetry sets how many times a failed request is retried and the first wait between attempts.
func WithRetry(retries uint64, interval time.Duration) Option {
	return func(s *Scraper) {
		s.retries = retries
		s.retryInterval = interval
	}
}

// WithDelay sets the minimum time between two requests
func WithDelay(d time.Duration) Option {
	return func(s *Scraper) { s.delay = d }
}

// New creates a new Scraper instance
func New(opts ...Option) *Scraper {
	s := &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
		baseURL:       BaseURL,
		userAgent:     UserAgent,
		retries:       DefaultRetries,
		retryInterval: DefaultRetryInterval,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Scraper) mainPageURL() string {
	return s.baseURL + "/"
}

func (s *Scraper) yearPageURL(buddhistYear int) string {
	return fmt.Sprintf("%s/ปี-%d.aspx", s.baseURL, buddhistYear)
}

// drawPageURL returns e.g. .../งวด-17-มกราคม-2568.aspx
func (s *Scraper) drawPageURL(date thaitime.OffsetTime) string {
	return s.baseURL + "/" + date.Format("งวด-D-MMMMT-BBBB") + ".aspx"
}

// fetch downloads a page and parses it, retrying transient failures.
func (s *Scraper) fetch(ctx context.Context, pageURL string) (*goquery.Document, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	defer func() { s.lastFetch = time.Now() }()

	start := time.Now()
	logger.Debug("Fetching page", logger.Fields{"url": pageURL})

	var doc *goquery.Document
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("creating request: %w", err))
		}
		req.Header.Set("User-Agent", s.userAgent)

		resp, err := s.client.Do(req)
		if err != nil {
			return fmt.Errorf("fetching page: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= http.StatusInternalServerError {
			return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			return backoff.Permanent(fmt.Errorf("unexpected status code: %d", resp.StatusCode))
		}

		body, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
		if err != nil {
			return backoff.Permanent(fmt.Errorf("decoding page: %w", err))
		}
		doc, err = goquery.NewDocumentFromReader(body)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("parsing HTML: %w", err))
		}
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.retryInterval
	b.MaxElapsedTime = 0
	policy := backoff.WithContext(backoff.WithMaxRetries(b, s.retries), ctx)

	notify := func(err error, wait time.Duration) {
		logger.IncrCounter("scraper.retries")
		logger.Warn("Retrying page fetch", logger.Fields{
			"url":  pageURL,
			"wait": wait.String(),
		})
	}
	if err := backoff.RetryNotify(operation, policy, notify); err != nil {
		logger.IncrCounter("scraper.failures")
		return nil, fmt.Errorf("fetching %s: %w", pageURL, err)
	}

	logger.IncrCounter("scraper.pages")
	logger.RecordTiming("scraper.fetch", time.Since(start))
	return doc, nil
}

// wait blocks until the configured delay since the previous request has passed
func (s *Scraper) wait(ctx context.Context) error {
	if s.delay <= 0 || s.lastFetch.IsZero() {
		return ctx.Err()
	}
	remaining := s.delay - time.Since(s.lastFetch)
	if remaining <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(remaining)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
