package notability

import (
	"context"
	"log/slog"
	"time"

	"trivia-research/internal/domain"
)

// Per-day bounds when aggregating a week.
const (
	weekBirthsPerDay = 2
	weekEventsPerDay = 1
)

// FeedFunc fetches the raw feed for one calendar day.
type FeedFunc func(ctx context.Context, month, day int) (*domain.DayFeed, error)

// WeekHighlights holds the flat, date-tagged highlight lists for one
// week. Entries keep per-day order; there is no cross-day re-ranking.
type WeekHighlights struct {
	Births []string
	Events []string
}

// WeekStart returns the most recent Monday on or before t, at midnight
// in t's location.
func WeekStart(t time.Time) time.Time {
	back := (int(t.Weekday()) + 6) % 7
	t = t.AddDate(0, 0, -back)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// HighlightWeek runs the day filter over 7 consecutive days from start
// and collects the top births and events per day, each tagged with its
// source date. A day whose fetch fails contributes nothing; the
// failure is logged and the week continues.
func HighlightWeek(ctx context.Context, fetch FeedFunc, start time.Time, logger *slog.Logger) WeekHighlights {
	var hl WeekHighlights

	for i := 0; i < 7; i++ {
		current := start.AddDate(0, 0, i)
		tag := "[" + current.Format("01/02 (Mon)") + "] "

		feed, err := fetch(ctx, int(current.Month()), current.Day())
		if err != nil {
			logger.Warn("day feed degraded for weekly digest",
				"date", current.Format("01-02"), "error", err)
			continue
		}

		digest := FilterDay(feed)
		for _, birth := range bound(digest.Births, weekBirthsPerDay) {
			hl.Births = append(hl.Births, tag+birth)
		}
		for _, event := range bound(digest.Events, weekEventsPerDay) {
			hl.Events = append(hl.Events, tag+event)
		}
	}

	return hl
}

func bound(lines []string, limit int) []string {
	if len(lines) > limit {
		return lines[:limit]
	}
	return lines
}
