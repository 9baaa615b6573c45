package source

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"
	"golang.org/x/net/html"

	"trivia-research/internal/domain"
)

const maxPageBodySize = 2 * 1024 * 1024 // 2MB

// strippedTags are removed wholesale before text extraction; their
// contents are boilerplate, not page content.
var strippedTags = map[string]bool{
	"script": true,
	"style":  true,
	"nav":    true,
	"footer": true,
	"header": true,
	"aside":  true,
}

// PageFetcher retrieves a URL and extracts its visible text, truncated
// to a character budget.
type PageFetcher struct {
	client        *http.Client
	userAgent     string
	defaultBudget int
	logger        *slog.Logger
}

// NewPageFetcher creates a content fetcher with a redirect cap.
// defaultBudget bounds extracted text when a caller passes no budget.
func NewPageFetcher(userAgent string, timeout time.Duration, defaultBudget int, logger *slog.Logger) *PageFetcher {
	if defaultBudget <= 0 {
		defaultBudget = 5000
	}
	return &PageFetcher{
		client: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 5 {
					return fmt.Errorf("too many redirects")
				}
				return nil
			},
		},
		userAgent:     userAgent,
		defaultBudget: defaultBudget,
		logger:        logger,
	}
}

// Fetch retrieves rawURL and returns its extracted text, at most
// maxChars runes long (the fetcher's default budget when maxChars is
// zero). Readability extraction is tried first; pages it cannot make
// sense of fall back to plain tag stripping. Errors are returned as
// errors — callers render them, no sentinel strings.
func (f *PageFetcher) Fetch(ctx context.Context, rawURL string, maxChars int) (string, error) {
	if maxChars <= 0 {
		maxChars = f.defaultBudget
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", domain.NewDomainError("PageFetcher.Fetch", domain.ErrInvalidInput, "invalid URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", domain.NewDomainError("PageFetcher.Fetch", domain.ErrInvalidInput, "URL scheme must be http or https")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", rawURL, domain.ErrUpstream)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s (HTTP %d): %w", rawURL, resp.StatusCode, domain.ErrUpstream)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBodySize))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	text := f.extract(body, u)
	f.logger.Debug("page fetched", "url", rawURL, "chars", len(text))
	return truncateRunes(text, maxChars), nil
}

// extract runs readability first and falls back to tag stripping when
// it errors or finds nothing (short pages, non-article layouts).
func (f *PageFetcher) extract(body []byte, u *url.URL) string {
	article, err := readability.FromReader(bytes.NewReader(body), u)
	if err == nil {
		if text := collapseWhitespace(article.TextContent); text != "" {
			return text
		}
	}

	text, err := ExtractText(bytes.NewReader(body))
	if err != nil {
		return ""
	}
	return text
}

// ExtractText strips non-content tags (script, style, nav, footer,
// header, aside) from an HTML document and returns its visible text
// with whitespace collapsed to single spaces.
func ExtractText(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", fmt.Errorf("parse html: %w", domain.ErrParse)
	}

	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && strippedTags[n.Data] {
			return
		}
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return collapseWhitespace(sb.String()), nil
}

// collapseWhitespace folds all runs of whitespace into single spaces.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
