// Package opengraph fetches link-preview metadata: the og:* meta tags of a
// page, with pragmatic fallbacks for pages that carry none. Failures are
// returned as data (Record.Error), never as panics or pipeline-aborting
// errors.
package opengraph

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"

	"github.com/lepinkainen/extract-forge/pkg/httputil"
	"github.com/lepinkainen/extract-forge/pkg/urlutils"
)

// Config controls the fetch behavior.
type Config struct {
	// Timeout bounds the whole request, default 15s.
	Timeout time.Duration
	// UserAgent sent with every request.
	UserAgent string
	// MaxRedirects caps redirect chains, default 3.
	MaxRedirects int
	// MaxBodySize caps how much HTML is read, default 1MB.
	MaxBodySize int64
	// PerHostDelay is the minimum spacing between requests to the same
	// host. Zero disables rate limiting.
	PerHostDelay time.Duration
}

// DefaultConfig returns the default fetch configuration.
func DefaultConfig() *Config {
	return &Config{
		Timeout:      15 * time.Second,
		UserAgent:    "extract-forge/1.0 (OpenGraph fetcher)",
		MaxRedirects: 3,
		MaxBodySize:  1024 * 1024,
		PerHostDelay: time.Second,
	}
}

// Fetcher retrieves OpenGraph metadata over HTTP. It is stateless with
// respect to distinct URLs and safe for concurrent use.
type Fetcher struct {
	client *http.Client
	config *Config

	hostMu    sync.Mutex
	lastFetch map[string]time.Time
}

// NewFetcher creates a fetcher; a nil config uses DefaultConfig. The
// caller's config is copied, zero fields filled from the defaults.
func NewFetcher(config *Config) *Fetcher {
	if config == nil {
		config = DefaultConfig()
	}

	cfg := *config
	defaults := DefaultConfig()
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaults.Timeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaults.UserAgent
	}
	if cfg.MaxRedirects <= 0 {
		cfg.MaxRedirects = defaults.MaxRedirects
	}
	if cfg.MaxBodySize <= 0 {
		cfg.MaxBodySize = defaults.MaxBodySize
	}

	return &Fetcher{
		client: httputil.NewClient(&httputil.ClientConfig{
			Timeout:      cfg.Timeout,
			MaxRedirects: cfg.MaxRedirects,
		}),
		config:    &cfg,
		lastFetch: make(map[string]time.Time),
	}
}

// Fetch performs a single GET against targetURL and parses the response
// for OpenGraph metadata. Any failure, network, HTTP status or parse,
// produces a Record with Error set; Fetch never returns a Go error.
func (f *Fetcher) Fetch(ctx context.Context, targetURL string) *Record {
	record := &Record{
		URL:       targetURL,
		FetchedAt: time.Now(),
	}

	if !urlutils.IsHTTPURL(targetURL) {
		record.Error = fmt.Sprintf("invalid URL: %s", targetURL)
		return record
	}

	if f.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.config.Timeout)
		defer cancel()
	}

	if err := f.waitForHost(ctx, targetURL); err != nil {
		record.Error = err.Error()
		return record
	}

	doc, err := f.get(ctx, targetURL)
	if err != nil {
		slog.Debug("OpenGraph fetch failed", "url", targetURL, "error", err)
		record.Error = err.Error()
		return record
	}

	f.extractTags(doc, record)
	f.applyFallbacks(record, targetURL)
	f.cleanup(record)

	slog.Debug("Fetched OpenGraph metadata", "url", targetURL, "title", record.Title)
	return record
}

// waitForHost applies per-host rate limiting.
func (f *Fetcher) waitForHost(ctx context.Context, targetURL string) error {
	if f.config.PerHostDelay <= 0 {
		return nil
	}

	host := urlutils.Host(targetURL)

	f.hostMu.Lock()
	last, seen := f.lastFetch[host]
	now := time.Now()
	if seen && now.Sub(last) < f.config.PerHostDelay {
		wait := f.config.PerHostDelay - now.Sub(last)
		f.lastFetch[host] = now.Add(wait)
		f.hostMu.Unlock()

		slog.Debug("Rate limiting host", "host", host, "wait", wait)
		select {
		case <-time.After(wait):
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	f.lastFetch[host] = now
	f.hostMu.Unlock()
	return nil
}

// get performs the request and returns the parsed HTML document.
func (f *Fetcher) get(ctx context.Context, targetURL string) (*html.Node, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", f.config.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	req.Header.Set("Accept-Encoding", "gzip")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	// A non-success status is a failed fetch; there is no retry.
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	var reader io.Reader = resp.Body
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gz.Close()
		reader = gz
	}

	body, err := io.ReadAll(io.LimitReader(reader, f.config.MaxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	htmlContent := convertToUTF8(body, resp.Header.Get("Content-Type"))

	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return doc, nil
}

// extractTags walks the document collecting og:* meta tags and the <title>
// text used as a title fallback.
func (f *Fetcher) extractTags(n *html.Node, record *Record) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "meta":
			f.processMetaTag(n, record)
		case "title":
			if record.Title == "" && n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
				record.Title = strings.TrimSpace(n.FirstChild.Data)
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		f.extractTags(c, record)
	}
}

func (f *Fetcher) processMetaTag(n *html.Node, record *Record) {
	var property, name, content string
	for _, attr := range n.Attr {
		switch attr.Key {
		case "property":
			property = attr.Val
		case "name":
			name = attr.Val
		case "content":
			content = attr.Val
		}
	}

	// og:* values win over any fallback already collected: the walk order
	// is document order, so only fill empty fields for fallbacks but let an
	// og tag overwrite a <title>-derived title.
	switch property {
	case "og:title":
		record.Title = content
	case "og:description":
		record.Description = content
	case "og:image":
		record.Image = content
	case "og:url":
		record.URL = content
	case "og:site_name":
		record.SiteName = content
	case "og:type":
		record.Type = content
	}

	if record.Description == "" && name == "description" {
		record.Description = content
	}
}

// applyFallbacks fills fields pages commonly omit: og:url falls back to the
// requested URL, og:site_name to the host, and a relative og:image is
// resolved against the page URL.
func (f *Fetcher) applyFallbacks(record *Record, requestedURL string) {
	if record.URL == "" {
		record.URL = requestedURL
	}

	if record.SiteName == "" {
		record.SiteName = urlutils.Host(requestedURL)
	}

	if record.Image != "" && !urlutils.IsValidURL(record.Image) {
		if resolved, err := urlutils.ResolveURL(requestedURL, record.Image); err == nil {
			record.Image = resolved
		}
	}
}

// cleanup trims whitespace, strips control bytes and truncates
// unreasonably long values.
func (f *Fetcher) cleanup(record *Record) {
	clean := func(s string) string {
		return strings.ReplaceAll(strings.TrimSpace(s), "\x00", "")
	}

	record.Title = clean(record.Title)
	record.Description = clean(record.Description)
	record.SiteName = clean(record.SiteName)

	if len(record.Title) > 200 {
		record.Title = record.Title[:197] + "..."
	}
	if len(record.Description) > 500 {
		record.Description = record.Description[:497] + "..."
	}
}

// convertToUTF8 converts the response body using the declared charset,
// assuming UTF-8 when detection fails.
func convertToUTF8(body []byte, contentType string) string {
	utf8Reader, err := charset.NewReader(strings.NewReader(string(body)), contentType)
	if err != nil {
		slog.Debug("Failed to detect charset, assuming UTF-8", "error", err)
		return string(body)
	}

	utf8Bytes, err := io.ReadAll(utf8Reader)
	if err != nil {
		return string(body)
	}
	return string(utf8Bytes)
}
