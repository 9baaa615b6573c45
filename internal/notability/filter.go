package notability

import (
	"fmt"
	"sort"
	"strings"

	"trivia-research/internal/domain"
)

// Per-day digest bounds.
const (
	MaxEvents = 10
	MaxBirths = 12
	MaxDeaths = 6
)

// Event two-tier scores: Western-relevant events outrank merely
// notable ones; everything else is dropped.
const (
	eventScoreWestern = 5
	eventScoreNotable = 3
)

// FilterDay converts a raw day feed into a relevance-ranked,
// length-bounded digest. It is pure: fetching (and fetch failure
// handling) is the caller's job, so a failed fetch simply never
// reaches here and degrades to an empty digest.
func FilterDay(feed *domain.DayFeed) domain.Digest {
	if feed == nil {
		return domain.Digest{}
	}
	return domain.Digest{
		Events: filterEvents(feed.Events),
		Births: filterPeople(feed.Births, MaxBirths),
		Deaths: filterPeople(feed.Deaths, MaxDeaths),
	}
}

// filterEvents applies the two-tier event score over each event's text
// plus its page descriptions, drops unscored events, and renders the
// top MaxEvents.
func filterEvents(events []domain.HistoricalRecord) []string {
	scored := make([]domain.ScoredRecord, 0, len(events))
	for _, ev := range events {
		var sb strings.Builder
		sb.WriteString(ev.Text)
		for _, p := range ev.Pages {
			sb.WriteByte(' ')
			sb.WriteString(p.Description)
		}
		combined := strings.ToLower(sb.String())

		var score int
		switch {
		case containsAny(combined, westernIndicators):
			score = eventScoreWestern
		case containsAny(combined, allNotableKeywords):
			score = eventScoreNotable
		default:
			continue
		}
		scored = append(scored, domain.ScoredRecord{HistoricalRecord: ev, Score: score})
	}

	scored = sortAndBound(scored, MaxEvents)

	lines := make([]string, 0, len(scored))
	for _, s := range scored {
		lines = append(lines, fmt.Sprintf("%s: %s", s.Year, s.Text))
	}
	return lines
}

// filterPeople classifies birth or death records, keeps the notable
// ones, and renders the top limit with their category tag.
func filterPeople(records []domain.HistoricalRecord, limit int) []string {
	scored := make([]domain.ScoredRecord, 0, len(records))
	for _, rec := range records {
		notable, category, score := Classify(rec.Text, rec.Pages)
		if !notable {
			continue
		}
		scored = append(scored, domain.ScoredRecord{
			HistoricalRecord: rec,
			Score:            score,
			Category:         category,
		})
	}

	scored = sortAndBound(scored, limit)

	lines := make([]string, 0, len(scored))
	for _, s := range scored {
		lines = append(lines, fmt.Sprintf("%s: %s [%s]", s.Year, s.Text, strings.ToUpper(string(s.Category))))
	}
	return lines
}

// sortAndBound sorts descending by score and truncates in place.
// The sort must be stable: feed order carries implicit recency and
// importance, and ties must preserve it.
func sortAndBound(scored []domain.ScoredRecord, limit int) []domain.ScoredRecord {
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}
