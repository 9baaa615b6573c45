package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"

	"trivia-research/internal/domain"
	"trivia-research/internal/infra/config"
)

const maxFeedBodySize = 4 * 1024 * 1024 // 4MB; the all-sections feed is large

// OnThisDay fetches the Wikipedia REST "on this day" feed. Calls run
// through a circuit breaker: the weekly aggregator issues seven feed
// calls back to back, and a dead upstream should fail fast rather than
// stack seven timeouts.
type OnThisDay struct {
	client    *http.Client
	baseURL   string
	userAgent string
	breaker   *gobreaker.CircuitBreaker[*domain.DayFeed]
	logger    *slog.Logger
}

// NewOnThisDay creates a day-feed client with circuit breaker protection.
func NewOnThisDay(baseURL, userAgent string, timeout time.Duration, cfg config.BreakerConfig, logger *slog.Logger) *OnThisDay {
	maxFailures := cfg.MaxFailures
	if maxFailures == 0 {
		maxFailures = 5
	}
	breakerTimeout := cfg.Timeout
	if breakerTimeout == 0 {
		breakerTimeout = 30 * time.Second
	}
	interval := cfg.Interval
	if interval == 0 {
		interval = 60 * time.Second
	}

	cb := gobreaker.NewCircuitBreaker[*domain.DayFeed](gobreaker.Settings{
		Name:        "source:onthisday",
		MaxRequests: 1, // allow 1 probe in half-open state
		Interval:    interval,
		Timeout:     breakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				"breaker", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	})

	return &OnThisDay{
		client:    &http.Client{Timeout: timeout},
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		breaker:   cb,
		logger:    logger,
	}
}

// Feed fetches the raw feed for one calendar day. The caller treats
// any error as a degraded (empty) digest, never as a fatal failure.
func (o *OnThisDay) Feed(ctx context.Context, month, day int) (*domain.DayFeed, error) {
	feed, err := o.breaker.Execute(func() (*domain.DayFeed, error) {
		return o.fetch(ctx, month, day)
	})
	if err != nil {
		if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
			return nil, fmt.Errorf("day feed circuit open: %w", domain.ErrUpstream)
		}
		return nil, err
	}
	return feed, nil
}

func (o *OnThisDay) fetch(ctx context.Context, month, day int) (*domain.DayFeed, error) {
	url := fmt.Sprintf("%s/feed/onthisday/all/%02d/%02d", o.baseURL, month, day)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", o.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feed request: %w", domain.ErrUpstream)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed failed (HTTP %d): %w", resp.StatusCode, domain.ErrUpstream)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBodySize))
	if err != nil {
		return nil, fmt.Errorf("read feed: %w", err)
	}

	var feed domain.DayFeed
	if err := json.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("parse feed: %w", domain.ErrParse)
	}

	o.logger.Debug("day feed fetched",
		"month", month, "day", day,
		"events", len(feed.Events), "births", len(feed.Births), "deaths", len(feed.Deaths))
	return &feed, nil
}

// State returns the current circuit breaker state for monitoring.
func (o *OnThisDay) State() gobreaker.State {
	return o.breaker.State()
}
