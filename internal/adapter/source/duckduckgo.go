package source

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/time/rate"

	"trivia-research/internal/domain"
)

const maxSearchBodySize = 1 * 1024 * 1024 // 1MB

// DuckDuckGoBackend searches the web by scraping the DuckDuckGo HTML
// endpoint. Requests are rate limited: the endpoint bans aggressive
// clients.
type DuckDuckGoBackend struct {
	client    *http.Client
	baseURL   string
	userAgent string
	limiter   *rate.Limiter
	logger    *slog.Logger
}

// NewDuckDuckGoBackend creates a search backend over the DuckDuckGo
// HTML endpoint. ratePerMinute caps outbound request frequency.
func NewDuckDuckGoBackend(baseURL, userAgent string, timeout time.Duration, ratePerMinute int, logger *slog.Logger) *DuckDuckGoBackend {
	if ratePerMinute <= 0 {
		ratePerMinute = 30
	}
	return &DuckDuckGoBackend{
		client:    &http.Client{Timeout: timeout},
		baseURL:   strings.TrimRight(baseURL, "/") + "/",
		userAgent: userAgent,
		limiter:   rate.NewLimiter(rate.Limit(float64(ratePerMinute)/60.0), 1),
		logger:    logger,
	}
}

func (b *DuckDuckGoBackend) Name() string { return "duckduckgo" }

func (b *DuckDuckGoBackend) Search(ctx context.Context, query string, count int) ([]SearchResult, error) {
	if err := b.limiter.Wait(ctx); err != nil {
		return nil, domain.WrapOp("search rate wait", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.baseURL+"?q="+url.QueryEscape(query), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", b.userAgent)

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", domain.ErrUpstream)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search failed (HTTP %d): %w", resp.StatusCode, domain.ErrUpstream)
	}

	results, err := parseResultPage(io.LimitReader(resp.Body, maxSearchBodySize), count)
	if err != nil {
		return nil, fmt.Errorf("parse results: %w", domain.ErrParse)
	}

	b.logger.Debug("duckduckgo search completed", "query", query, "results", len(results))
	return results, nil
}

// parseResultPage extracts up to count results from a DuckDuckGo HTML
// result page: each hit is a div.result containing an a.result__a
// (title + href) and an a.result__snippet.
func parseResultPage(r io.Reader, count int) ([]SearchResult, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var results []SearchResult
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if len(results) >= count {
			return
		}
		if n.Type == html.ElementNode && n.Data == "div" && hasClass(n, "result") {
			if res, ok := parseResultDiv(n); ok {
				results = append(results, res)
			}
			return // result divs do not nest
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return results, nil
}

// parseResultDiv pulls title, link and snippet out of one result div.
func parseResultDiv(div *html.Node) (SearchResult, bool) {
	var res SearchResult
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			switch {
			case hasClass(n, "result__a"):
				res.Title = nodeText(n)
				res.URL = attrValue(n, "href")
			case hasClass(n, "result__snippet"):
				res.Snippet = nodeText(n)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(div)
	return res, res.Title != ""
}

// hasClass reports whether the node's class attribute contains the
// given class (whitespace-separated match, not substring).
func hasClass(n *html.Node, class string) bool {
	for _, f := range strings.Fields(attrValue(n, "class")) {
		if f == class {
			return true
		}
	}
	return false
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// nodeText concatenates all text nodes under n, trimmed.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}
