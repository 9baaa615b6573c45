package notability

import (
	"strings"

	"trivia-research/internal/domain"
)

// notableThreshold is the minimum score for a record to be kept.
// Policy constant, not derived: the score arithmetic below is tuned so
// that a bare category match (3) or a Western match plus any page
// bonus (2+1) clears it, while a Western indicator alone (2) does not.
const notableThreshold = 3

// categoryRule awards points and a category when any of its keywords
// appears in the record text.
type categoryRule struct {
	category domain.Category
	keywords []string
	points   int
}

// categoryRules is evaluated top to bottom, first match wins.
// Entertainment outranks politics outranks science outranks sports.
var categoryRules = []categoryRule{
	{domain.CategoryEntertainment, entertainmentKeywords, 3},
	{domain.CategoryPolitics, politicsKeywords, 3},
	{domain.CategoryScience, scienceKeywords, 3},
	{domain.CategorySports, sportsKeywords, 2},
}

// Classify scores a historical record's text and reference pages for
// Western notability. It returns whether the record clears the
// threshold, the first-matching category (CategoryOther if none), and
// the total score.
func Classify(text string, pages []domain.RecordPage) (bool, domain.Category, int) {
	lower := strings.ToLower(text)
	score := 0
	category := domain.CategoryOther

	if containsAny(lower, westernIndicators) {
		score += 2
	}

	for _, rule := range categoryRules {
		if containsAny(lower, rule.keywords) {
			score += rule.points
			category = rule.category
			break
		}
	}

	// Reference pages contribute an independent additive bonus.
	for _, page := range pages {
		combined := strings.ToLower(page.Description + " " + page.Title)
		if containsAny(combined, allNotableKeywords) {
			score += 2
		}
		if containsAny(combined, westernIndicators) {
			score++
		}
	}

	return score >= notableThreshold, category, score
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
