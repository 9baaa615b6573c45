package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"trivia-research/internal/domain"
)

const maxWikipediaBodySize = 2 * 1024 * 1024 // 2MB

// PageRef is an encyclopedia title-lookup hit.
type PageRef struct {
	Title       string
	Description string
	URL         string
}

// Wikipedia looks up article titles and intro summaries via the
// MediaWiki action API.
type Wikipedia struct {
	client       *http.Client
	apiURL       string
	userAgent    string
	summaryLimit int
	logger       *slog.Logger
}

// NewWikipedia creates a Wikipedia client. summaryLimit is the maximum
// length (in runes) of a returned intro summary.
func NewWikipedia(apiURL, userAgent string, timeout time.Duration, summaryLimit int, logger *slog.Logger) *Wikipedia {
	if summaryLimit <= 0 {
		summaryLimit = 2000
	}
	return &Wikipedia{
		client:       &http.Client{Timeout: timeout},
		apiURL:       apiURL,
		userAgent:    userAgent,
		summaryLimit: summaryLimit,
		logger:       logger,
	}
}

// Search runs an opensearch title lookup and returns up to limit hits.
func (w *Wikipedia) Search(ctx context.Context, query string, limit int) ([]PageRef, error) {
	params := url.Values{}
	params.Set("action", "opensearch")
	params.Set("search", query)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("format", "json")

	body, err := w.get(ctx, params)
	if err != nil {
		return nil, domain.WrapOp("Wikipedia.Search", err)
	}

	// The opensearch payload is a 4-element array:
	// [query, titles, descriptions, links].
	var payload []json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("Wikipedia.Search: %w", domain.ErrParse)
	}
	if len(payload) < 4 {
		return nil, fmt.Errorf("Wikipedia.Search: short payload: %w", domain.ErrParse)
	}

	var titles, descriptions, links []string
	if err := json.Unmarshal(payload[1], &titles); err != nil {
		return nil, fmt.Errorf("Wikipedia.Search: titles: %w", domain.ErrParse)
	}
	// Descriptions and links are best-effort; some wikis omit them.
	_ = json.Unmarshal(payload[2], &descriptions)
	_ = json.Unmarshal(payload[3], &links)

	results := make([]PageRef, 0, len(titles))
	for i, title := range titles {
		ref := PageRef{Title: title}
		if i < len(descriptions) {
			ref.Description = descriptions[i]
		}
		if i < len(links) {
			ref.URL = links[i]
		}
		results = append(results, ref)
	}

	w.logger.Debug("wikipedia search completed", "query", query, "results", len(results))
	return results, nil
}

// summaryResponse models the extracts query response.
type summaryResponse struct {
	Query struct {
		Pages map[string]struct {
			Extract string `json:"extract"`
		} `json:"pages"`
	} `json:"query"`
}

// Summary fetches the plaintext intro of an article, truncated to the
// configured limit. A missing page is an ErrUpstream-class failure so
// callers degrade the section rather than render an apology string.
func (w *Wikipedia) Summary(ctx context.Context, title string) (string, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("titles", title)
	params.Set("prop", "extracts")
	params.Set("exintro", "true")
	params.Set("explaintext", "true")
	params.Set("format", "json")
	params.Set("redirects", "1")

	body, err := w.get(ctx, params)
	if err != nil {
		return "", domain.WrapOp("Wikipedia.Summary", err)
	}

	var payload summaryResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("Wikipedia.Summary: %w", domain.ErrParse)
	}

	for pageID, page := range payload.Query.Pages {
		if pageID == "-1" {
			continue // missing page marker
		}
		return truncateRunes(page.Extract, w.summaryLimit), nil
	}

	return "", domain.NewDomainError("Wikipedia.Summary", domain.ErrUpstream, "no page for "+title)
}

func (w *Wikipedia) get(ctx context.Context, params url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", w.userAgent)

	resp, err := w.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", domain.ErrUpstream)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %w", resp.StatusCode, domain.ErrUpstream)
	}

	return io.ReadAll(io.LimitReader(resp.Body, maxWikipediaBodySize))
}

// truncateRunes cuts s to at most limit runes, never splitting one.
func truncateRunes(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
