package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"trivia-research/internal/adapter/source"
	"trivia-research/internal/domain"
)

type mockSearch struct {
	calls   int
	queries []string
	counts  []int
	results []source.SearchResult
	err     error
}

func (m *mockSearch) Search(ctx context.Context, query string, count int) ([]source.SearchResult, error) {
	m.calls++
	m.queries = append(m.queries, query)
	m.counts = append(m.counts, count)
	if m.err != nil {
		return nil, m.err
	}
	return m.results, nil
}

type mockWiki struct {
	searchCalls  int
	summaryCalls int
	hits         []source.PageRef
	summary      string
	searchErr    error
	summaryErr   error
}

func (m *mockWiki) Search(ctx context.Context, query string, limit int) ([]source.PageRef, error) {
	m.searchCalls++
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	return m.hits, nil
}

func (m *mockWiki) Summary(ctx context.Context, title string) (string, error) {
	m.summaryCalls++
	if m.summaryErr != nil {
		return "", m.summaryErr
	}
	return m.summary, nil
}

type mockFeed struct {
	calls int
	feed  *domain.DayFeed
	err   error
}

func (m *mockFeed) Feed(ctx context.Context, month, day int) (*domain.DayFeed, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.feed, nil
}

type mockPages struct {
	calls   int
	gotURL  string
	gotMax  int
	content string
	err     error
}

func (m *mockPages) Fetch(ctx context.Context, url string, maxChars int) (string, error) {
	m.calls++
	m.gotURL = url
	m.gotMax = maxChars
	if m.err != nil {
		return "", m.err
	}
	return m.content, nil
}

type testDeps struct {
	search *mockSearch
	wiki   *mockWiki
	feed   *mockFeed
	pages  *mockPages
}

func newTestService(t *testing.T) (*Service, *testDeps) {
	t.Helper()
	deps := &testDeps{
		search: &mockSearch{},
		wiki:   &mockWiki{},
		feed:   &mockFeed{feed: &domain.DayFeed{}},
		pages:  &mockPages{},
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewService(deps.search, deps.wiki, deps.feed, deps.pages, Options{URLToolCharBudget: 6000}, log)
	svc.now = func() time.Time {
		fixed, _ := time.Parse("2006-01-02", "2025-01-15") // a Wednesday
		return fixed
	}
	return svc, deps
}

func TestTopicReport_Sections(t *testing.T) {
	svc, deps := newTestService(t)
	deps.wiki.hits = []source.PageRef{{Title: "Apollo 11", Description: "1969 spaceflight"}}
	deps.wiki.summary = "Apollo 11 was the first crewed Moon landing."
	deps.search.results = []source.SearchResult{
		{Title: "Moon facts", Snippet: "Interesting lunar trivia."},
	}

	report := svc.TopicReport(context.Background(), "apollo 11", "")

	for _, want := range []string{
		"🔍 TRIVIA RESEARCH: APOLLO 11",
		"📚 WIKIPEDIA FINDINGS:",
		"**Apollo 11**",
		"Summary: Apollo 11 was the first crewed Moon landing....",
		"🌐 WEB SEARCH RESULTS:",
		"• Moon facts",
		"✅ Research complete!",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q", want)
		}
	}

	// Two web queries at the normal depth.
	if deps.search.calls != 2 {
		t.Errorf("search calls = %d, want 2", deps.search.calls)
	}
	for _, c := range deps.search.counts {
		if c != topicSearchNormal {
			t.Errorf("search count = %d, want %d", c, topicSearchNormal)
		}
	}
}

func TestTopicReport_DeepSearchCount(t *testing.T) {
	svc, deps := newTestService(t)

	svc.TopicReport(context.Background(), "jazz", "deep")

	for _, c := range deps.search.counts {
		if c != topicSearchDeep {
			t.Errorf("search count = %d, want %d for deep", c, topicSearchDeep)
		}
	}
}

func TestTopicReport_DegradedWiki(t *testing.T) {
	svc, deps := newTestService(t)
	deps.wiki.searchErr = errors.New("wiki down")
	deps.search.results = []source.SearchResult{{Title: "hit"}}

	report := svc.TopicReport(context.Background(), "topic", "")

	if strings.Contains(report, "📚 WIKIPEDIA FINDINGS:") {
		t.Error("degraded wiki should omit its section")
	}
	if !strings.Contains(report, "• hit") {
		t.Error("web results should survive a wiki failure")
	}
}

func TestDailyReport_MalformedDate(t *testing.T) {
	svc, deps := newTestService(t)

	_, err := svc.DailyReport(context.Background(), "13-45")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	// Validation happens before any network work.
	if deps.feed.calls != 0 || deps.search.calls != 0 {
		t.Errorf("collaborators called on bad input: feed=%d search=%d", deps.feed.calls, deps.search.calls)
	}
}

func TestDailyReport_Sections(t *testing.T) {
	svc, deps := newTestService(t)
	deps.feed.feed = &domain.DayFeed{
		Births: []domain.HistoricalRecord{
			{Year: "1926", Text: "Marilyn Monroe, American actress"},
		},
		Events: []domain.HistoricalRecord{
			{Year: "1927", Text: "first hollywood sound film premieres"},
		},
		Deaths: []domain.HistoricalRecord{
			{Year: "1977", Text: "American singer Elvis Presley"},
		},
	}
	deps.search.results = []source.SearchResult{{Title: "hit", Snippet: "snippet"}}

	report, err := svc.DailyReport(context.Background(), "12-25")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"📅 TRIVIA FOR DECEMBER 25",
		"Filtered for Western celebrities, entertainment, politics & science",
		"🎂 CELEBRITY & NOTABLE BIRTHDAYS:",
		"1926: Marilyn Monroe, American actress [ENTERTAINMENT]",
		"🏛️ MAJOR HISTORICAL EVENTS:",
		"🕯️ NOTABLE DEATHS:",
		"🌟 ADDITIONAL CELEBRITY BIRTHDAYS (Web Search):",
		"🎬 ENTERTAINMENT ON THIS DATE:",
		"✅ Daily trivia loaded!",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestDailyReport_DegradedFeed(t *testing.T) {
	svc, deps := newTestService(t)
	deps.feed.err = errors.New("feed down")
	deps.search.results = []source.SearchResult{{Title: "hit"}}

	report, err := svc.DailyReport(context.Background(), "")
	if err != nil {
		t.Fatalf("a dead feed must degrade, not fail: %v", err)
	}
	if strings.Contains(report, "🎂 CELEBRITY & NOTABLE BIRTHDAYS:") {
		t.Error("birthday section should be omitted when the feed is down")
	}
	if !strings.Contains(report, "✅ Daily trivia loaded!") {
		t.Error("report should still complete")
	}
	// Default date comes from the injected clock.
	if !strings.Contains(report, "📅 TRIVIA FOR JANUARY 15") {
		t.Error("report should use the current date when no override is given")
	}
}

func TestDailyReport_CelebrityLinesCapped(t *testing.T) {
	svc, deps := newTestService(t)
	deps.search.results = []source.SearchResult{
		{Title: "a", Snippet: "s"}, {Title: "b", Snippet: "s"},
		{Title: "c", Snippet: "s"}, {Title: "d", Snippet: "s"},
		{Title: "e", Snippet: "s"},
	}

	lines := svc.celebrityBirthdays(context.Background(), "December 25")
	if len(lines) != celebrityKeep {
		t.Errorf("lines = %d, want %d", len(lines), celebrityKeep)
	}
	if lines[0] != "a: s" {
		t.Errorf("line format = %q, want title: snippet", lines[0])
	}
}

func TestWeeklyReport_MalformedDate(t *testing.T) {
	svc, deps := newTestService(t)

	_, err := svc.WeeklyReport(context.Background(), "January 13")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if deps.feed.calls != 0 {
		t.Errorf("feed called on bad input: %d", deps.feed.calls)
	}
}

func TestWeeklyReport_DefaultsToCurrentWeek(t *testing.T) {
	svc, deps := newTestService(t)

	report, err := svc.WeeklyReport(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Injected now is Wednesday 2025-01-15; the week anchors on Monday the 13th.
	if !strings.Contains(report, "Week of January 13, 2025") {
		t.Errorf("report should anchor on Monday, got:\n%s", report)
	}
	if deps.feed.calls != 7 {
		t.Errorf("feed calls = %d, want 7", deps.feed.calls)
	}
}

func TestWeeklyReport_ExplicitAnchor(t *testing.T) {
	svc, deps := newTestService(t)
	deps.feed.feed = &domain.DayFeed{
		Births: []domain.HistoricalRecord{{Year: "1950", Text: "American actor"}},
	}

	report, err := svc.WeeklyReport(context.Background(), "2025-03-03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{
		"Week of March 03, 2025",
		"🎂 CELEBRITY BIRTHDAYS THIS WEEK:",
		"[03/03 (Mon)] 1950: American actor",
		"✅ Weekly trivia compiled!",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestURLReport(t *testing.T) {
	svc, deps := newTestService(t)
	deps.pages.content = "Extracted article text."

	report, err := svc.URLReport(context.Background(), "https://example.com/article")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{
		"📄 CONTENT FROM URL",
		"Source: https://example.com/article",
		"Extracted article text.",
		"✅ Content extracted!",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q", want)
		}
	}
	if deps.pages.gotMax != 6000 {
		t.Errorf("char budget = %d, want 6000", deps.pages.gotMax)
	}
}

func TestURLReport_ErrorPropagates(t *testing.T) {
	svc, deps := newTestService(t)
	deps.pages.err = domain.NewDomainError("PageFetcher.Fetch", domain.ErrUpstream, "HTTP 503")

	_, err := svc.URLReport(context.Background(), "https://example.com")
	if !errors.Is(err, domain.ErrUpstream) {
		t.Fatalf("expected the fetch error to propagate, got %v", err)
	}
}
