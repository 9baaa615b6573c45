package usecase

import (
	"context"
	"fmt"
	"strings"
)

// Category-scoped lookups per request type.
const (
	categoryWikiLimit     = 3
	categoryWikiDisplayed = 2
	categorySearchHits    = 4
)

// queryTemplate maps a set of category aliases to search query
// patterns (one %s placeholder each) and an encyclopedia query pattern.
type queryTemplate struct {
	aliases  []string
	searches []string
	wiki     string
}

func (t queryTemplate) matches(category string) bool {
	for _, a := range t.aliases {
		if a == category {
			return true
		}
	}
	return false
}

// resolveTemplate picks the first template whose aliases contain
// category; unrecognized categories fall back to fallback.
func resolveTemplate(templates []queryTemplate, fallback queryTemplate, category string) queryTemplate {
	category = strings.ToLower(strings.TrimSpace(category))
	for _, t := range templates {
		if t.matches(category) {
			return t
		}
	}
	return fallback
}

var entertainmentTemplates = []queryTemplate{
	{[]string{"movie", "movies", "film"}, []string{"%s movie trivia facts", "%s film behind the scenes"}, "%s film"},
	{[]string{"tv", "television", "show"}, []string{"%s tv show trivia", "%s television series facts"}, "%s TV series"},
	{[]string{"music", "song", "album"}, []string{"%s music trivia facts", "%s song history"}, "%s"},
	{[]string{"oscar", "oscars", "academy", "awards"}, []string{"%s Oscar Academy Award trivia", "%s award winning"}, "%s Academy Award"},
	{[]string{"emmy", "emmys"}, []string{"%s Emmy Award trivia", "%s Emmy winning"}, "%s Emmy Award"},
}

var entertainmentFallback = queryTemplate{
	searches: []string{"%s entertainment trivia", "%s pop culture facts"},
	wiki:     "%s",
}

var sportsTemplates = []queryTemplate{
	{[]string{"nfl", "football"}, []string{"%s NFL football trivia", "%s Super Bowl history"}, "%s"},
	{[]string{"nba", "basketball"}, []string{"%s NBA basketball trivia", "%s NBA championship"}, "%s"},
	{[]string{"mlb", "baseball"}, []string{"%s MLB baseball trivia", "%s World Series"}, "%s"},
	{[]string{"nhl", "hockey"}, []string{"%s NHL hockey trivia", "%s Stanley Cup"}, "%s"},
	{[]string{"soccer", "mls", "premier"}, []string{"%s soccer football trivia", "%s World Cup"}, "%s"},
	{[]string{"olympics", "olympic"}, []string{"%s Olympic trivia", "%s Olympic medal history"}, "%s"},
}

var sportsFallback = queryTemplate{
	searches: []string{"%s sports trivia facts", "%s sports history records"},
	wiki:     "%s",
}

var geographyTemplates = []queryTemplate{
	{[]string{"capital", "capitals"}, []string{"%s capital city trivia", "%s capital facts"}, "%s"},
	{[]string{"landmark", "landmarks", "wonder"}, []string{"%s landmark trivia facts", "%s famous places"}, "%s"},
	{[]string{"country", "countries", "nation"}, []string{"%s country facts trivia", "%s nation history"}, "%s"},
	{[]string{"flag", "flags"}, []string{"%s flag trivia facts", "%s flag history meaning"}, "%s"},
}

var geographyFallback = queryTemplate{
	searches: []string{"%s geography trivia", "%s world facts"},
	wiki:     "%s",
}

var scienceTemplates = []queryTemplate{
	{[]string{"space", "astronomy", "nasa"}, []string{"%s space astronomy trivia", "%s NASA facts"}, "%s"},
	{[]string{"biology", "nature", "animal"}, []string{"%s biology nature trivia", "%s animal facts"}, "%s"},
	{[]string{"chemistry", "element"}, []string{"%s chemistry trivia", "%s element facts"}, "%s"},
	{[]string{"physics"}, []string{"%s physics trivia facts", "%s science discovery"}, "%s"},
	{[]string{"tech", "technology", "computer"}, []string{"%s technology trivia", "%s invention history"}, "%s"},
}

var scienceFallback = queryTemplate{
	searches: []string{"%s science trivia facts", "%s scientific discovery"},
	wiki:     "%s",
}

// EntertainmentReport searches movie/TV/music/awards trivia scoped by
// category.
func (s *Service) EntertainmentReport(ctx context.Context, category, query string) string {
	t := resolveTemplate(entertainmentTemplates, entertainmentFallback, category)
	return s.categoryReport(ctx, query, t,
		"🎬 ENTERTAINMENT TRIVIA: "+strings.ToUpper(query),
		"🌐 TRIVIA FACTS:",
		"✅ Entertainment trivia found!",
		600)
}

// SportsReport searches team/player/record trivia scoped by sport.
func (s *Service) SportsReport(ctx context.Context, sport, query string) string {
	t := resolveTemplate(sportsTemplates, sportsFallback, sport)
	return s.categoryReport(ctx, query, t,
		"🏆 SPORTS TRIVIA: "+strings.ToUpper(query),
		"🌐 SPORTS FACTS:",
		"✅ Sports trivia compiled!",
		600)
}

// GeographyReport searches country/capital/landmark trivia.
func (s *Service) GeographyReport(ctx context.Context, query, category string) string {
	t := resolveTemplate(geographyTemplates, geographyFallback, category)
	return s.categoryReport(ctx, query, t,
		"🌍 GEOGRAPHY TRIVIA: "+strings.ToUpper(query),
		"🌐 GEOGRAPHY FACTS:",
		"✅ Geography trivia compiled!",
		700)
}

// ScienceReport searches discovery/invention trivia scoped by field.
func (s *Service) ScienceReport(ctx context.Context, field, query string) string {
	t := resolveTemplate(scienceTemplates, scienceFallback, field)
	return s.categoryReport(ctx, query, t,
		"🔬 SCIENCE TRIVIA: "+strings.ToUpper(query),
		"🌐 SCIENCE FACTS:",
		"✅ Science trivia compiled!",
		700)
}

// categoryReport is the shared shape of the four category-scoped
// request types: encyclopedia section, then the templated web
// searches. Ordering is call order; no ranking happens here.
func (s *Service) categoryReport(ctx context.Context, query string, t queryTemplate, title, factsTitle, status string, summaryClip int) string {
	r := newReport(title)

	wikiQuery := fmt.Sprintf(t.wiki, query)
	hits, err := s.wiki.Search(ctx, wikiQuery, categoryWikiLimit)
	if err != nil {
		s.degrade("wikipedia search", err)
	}
	if len(hits) > 0 {
		r.section("📚 WIKIPEDIA:")
		shown := hits
		if len(shown) > categoryWikiDisplayed {
			shown = shown[:categoryWikiDisplayed]
		}
		for _, hit := range shown {
			r.add("", "**"+hit.Title+"**")
			summary, err := s.wiki.Summary(ctx, hit.Title)
			if err != nil {
				s.degrade("wikipedia summary", err)
				continue
			}
			if summary != "" {
				r.add("   " + clip(summary, summaryClip) + "...")
			}
		}
		r.add("")
	}

	r.section(factsTitle)
	for _, pattern := range t.searches {
		results, err := s.search.Search(ctx, fmt.Sprintf(pattern, query), categorySearchHits)
		if err != nil {
			s.degrade("web search", err)
			continue
		}
		for _, res := range results {
			r.add("• " + res.Title)
			if res.Snippet != "" {
				r.add("  " + clip(res.Snippet, 200))
			}
		}
	}

	return r.finish(status)
}
