package usecase

import (
	"context"
	"log/slog"
	"time"

	"trivia-research/internal/adapter/source"
	"trivia-research/internal/domain"
)

// Searcher is the keyword web search collaborator.
type Searcher interface {
	Search(ctx context.Context, query string, count int) ([]source.SearchResult, error)
}

// Encyclopedia is the title-lookup / summary collaborator.
type Encyclopedia interface {
	Search(ctx context.Context, query string, limit int) ([]source.PageRef, error)
	Summary(ctx context.Context, title string) (string, error)
}

// DayFeeder fetches the raw historical feed for a calendar day.
type DayFeeder interface {
	Feed(ctx context.Context, month, day int) (*domain.DayFeed, error)
}

// PageReader fetches and extracts text from an arbitrary URL.
type PageReader interface {
	Fetch(ctx context.Context, url string, maxChars int) (string, error)
}

// Options holds composition budgets.
type Options struct {
	// URLToolCharBudget bounds text returned by the direct URL tool.
	URLToolCharBudget int
}

// Service is the digest composer: it sequences collaborator calls per
// request type and renders one newline-joined report. Collaborator
// failures degrade the affected section and are logged; they never
// fail the report.
type Service struct {
	search Searcher
	wiki   Encyclopedia
	feed   DayFeeder
	pages  PageReader
	opts   Options
	logger *slog.Logger
	now    func() time.Time // injectable for tests
}

// NewService creates a digest composer over the given collaborators.
func NewService(search Searcher, wiki Encyclopedia, feed DayFeeder, pages PageReader, opts Options, logger *slog.Logger) *Service {
	if opts.URLToolCharBudget <= 0 {
		opts.URLToolCharBudget = 6000
	}
	return &Service{
		search: search,
		wiki:   wiki,
		feed:   feed,
		pages:  pages,
		opts:   opts,
		logger: logger,
		now:    time.Now,
	}
}

// degrade logs an upstream failure that turned into a missing section.
func (s *Service) degrade(op string, err error) {
	s.logger.Warn("upstream degraded, section omitted", "op", op, "error", err)
}
