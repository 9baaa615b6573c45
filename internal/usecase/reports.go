package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"trivia-research/internal/notability"
)

// Lookup depths per request type, matching the digest shape consumers
// were built around.
const (
	topicWikiLimit     = 3
	topicSearchNormal  = 3
	topicSearchDeep    = 5
	dailyEventDisplay  = 8
	celebrityQueryHits = 5
	celebrityKeep      = 8
	releasesHits       = 4
	weekNewsHits       = 5
)

// TopicReport researches a free-text trivia topic: encyclopedia hits
// with summaries, then two web searches for supporting facts.
func (s *Service) TopicReport(ctx context.Context, topic, depth string) string {
	r := newReport("🔍 TRIVIA RESEARCH: " + strings.ToUpper(topic))

	hits, err := s.wiki.Search(ctx, topic, topicWikiLimit)
	if err != nil {
		s.degrade("wikipedia search", err)
	}
	if len(hits) > 0 {
		r.section("📚 WIKIPEDIA FINDINGS:")
		for _, hit := range hits {
			r.add("", "**"+hit.Title+"**")
			if hit.Description != "" {
				r.add("   " + hit.Description)
			}
			summary, err := s.wiki.Summary(ctx, hit.Title)
			if err != nil {
				s.degrade("wikipedia summary", err)
				continue
			}
			if summary != "" {
				r.add("   Summary: " + clip(summary, 800) + "...")
			}
		}
		r.add("")
	}

	searchCount := topicSearchNormal
	if strings.TrimSpace(strings.ToLower(depth)) == "deep" {
		searchCount = topicSearchDeep
	}

	r.section("🌐 WEB SEARCH RESULTS:")
	for _, query := range []string{topic + " trivia facts", topic + " interesting facts history"} {
		results, err := s.search.Search(ctx, query, searchCount)
		if err != nil {
			s.degrade("web search", err)
			continue
		}
		for _, res := range results {
			r.add("", "• "+res.Title)
			if res.Snippet != "" {
				r.add("  " + res.Snippet)
			}
		}
	}

	return r.finish("✅ Research complete! Use these facts for your trivia questions.")
}

// DailyReport builds the digest for one calendar day: the filtered
// historical record sections plus supplementary web searches. A
// malformed date override is the only error path; upstream failures
// degrade to missing sections.
func (s *Service) DailyReport(ctx context.Context, dateOverride string) (string, error) {
	var month, day int
	if strings.TrimSpace(dateOverride) != "" {
		var err error
		month, day, err = ParseMonthDay(dateOverride)
		if err != nil {
			return "", err
		}
	} else {
		now := s.now()
		month, day = int(now.Month()), now.Day()
	}

	monthName := time.Month(month).String()
	dateStr := fmt.Sprintf("%s %d", monthName, day)

	r := newReport(fmt.Sprintf("📅 TRIVIA FOR %s %d", strings.ToUpper(monthName), day))
	// Replace the blank spacer with the filter banner.
	r.lines = r.lines[:len(r.lines)-1]
	r.add("Filtered for Western celebrities, entertainment, politics & science", "")

	feed, err := s.feed.Feed(ctx, month, day)
	if err != nil {
		s.degrade("day feed", err)
		feed = nil
	}
	digest := notability.FilterDay(feed)

	if len(digest.Births) > 0 {
		r.section("🎂 CELEBRITY & NOTABLE BIRTHDAYS:")
		r.bullets(digest.Births)
		r.add("")
	}

	if len(digest.Events) > 0 {
		r.section("🏛️ MAJOR HISTORICAL EVENTS:")
		events := digest.Events
		if len(events) > dailyEventDisplay {
			events = events[:dailyEventDisplay]
		}
		r.bullets(events)
		r.add("")
	}

	if len(digest.Deaths) > 0 {
		r.section("🕯️ NOTABLE DEATHS:")
		r.bullets(digest.Deaths)
		r.add("")
	}

	r.section("🌟 ADDITIONAL CELEBRITY BIRTHDAYS (Web Search):")
	r.bullets(s.celebrityBirthdays(ctx, dateStr))
	r.add("")

	r.section("🎬 ENTERTAINMENT ON THIS DATE:")
	releases, err := s.search.Search(ctx, fmt.Sprintf("movies released %s history famous films", dateStr), releasesHits)
	if err != nil {
		s.degrade("releases search", err)
	}
	for _, res := range releases {
		r.add("• " + res.Title)
		if res.Snippet != "" {
			r.add("  " + clip(res.Snippet, 150))
		}
	}

	return r.finish("✅ Daily trivia loaded!"), nil
}

// celebrityBirthdays runs the fixed celebrity-birthday query set and
// flattens the hits into display lines, capped at celebrityKeep.
func (s *Service) celebrityBirthdays(ctx context.Context, dateStr string) []string {
	queries := []string{
		"famous celebrity birthdays " + dateStr,
		"actors actresses born " + dateStr,
		fmt.Sprintf("famous people born %s actors singers", dateStr),
	}

	var lines []string
	for _, query := range queries {
		results, err := s.search.Search(ctx, query, celebrityQueryHits)
		if err != nil {
			s.degrade("celebrity birthday search", err)
			continue
		}
		for _, res := range results {
			if res.Snippet != "" {
				lines = append(lines, res.Title+": "+clip(res.Snippet, 150))
			} else {
				lines = append(lines, res.Title)
			}
		}
	}

	if len(lines) > celebrityKeep {
		lines = lines[:celebrityKeep]
	}
	return lines
}

// WeeklyReport aggregates highlights for 7 days from the given anchor
// (default: the most recent Monday), plus an entertainment-news search.
func (s *Service) WeeklyReport(ctx context.Context, startDate string) (string, error) {
	var start time.Time
	if strings.TrimSpace(startDate) != "" {
		var err error
		start, err = ParseWeekStart(startDate)
		if err != nil {
			return "", err
		}
	} else {
		start = notability.WeekStart(s.now())
	}

	r := newReport("📆 WEEKLY TRIVIA: Week of " + start.Format("January 02, 2006"))
	r.lines = r.lines[:len(r.lines)-1]
	r.add("Filtered for Western celebrities, entertainment, politics & science", "")

	hl := notability.HighlightWeek(ctx, s.feed.Feed, start, s.logger)

	if len(hl.Births) > 0 {
		r.section("🎂 CELEBRITY BIRTHDAYS THIS WEEK:")
		r.bullets(hl.Births)
		r.add("")
	}

	if len(hl.Events) > 0 {
		r.section("🏛️ KEY HISTORICAL EVENTS THIS WEEK:")
		r.bullets(hl.Events)
		r.add("")
	}

	r.section("🎬 ENTERTAINMENT HIGHLIGHTS:")
	news, err := s.search.Search(ctx, "new movies tv shows "+start.Format("January 2006"), weekNewsHits)
	if err != nil {
		s.degrade("entertainment news search", err)
	}
	for _, res := range news {
		r.add("• " + res.Title)
	}

	return r.finish("✅ Weekly trivia compiled!"), nil
}

// URLReport fetches a page and wraps its extracted text. Fetch errors
// propagate: the tool layer renders them as a user-facing error result.
func (s *Service) URLReport(ctx context.Context, url string) (string, error) {
	content, err := s.pages.Fetch(ctx, url, s.opts.URLToolCharBudget)
	if err != nil {
		return "", err
	}

	lines := []string{
		"📄 CONTENT FROM URL",
		majorDivider,
		"Source: " + url,
		strings.Repeat("-", 50),
		"",
		content,
		"",
		majorDivider,
		"✅ Content extracted! Review for trivia-worthy facts.",
	}
	return strings.Join(lines, "\n"), nil
}
