package notability

// Keyword tables driving the notability heuristic. Matching is plain
// lowercase substring containment; the lists are tuned for Western
// bar-trivia relevance, not completeness.

// entertainmentKeywords match entertainment occupations.
var entertainmentKeywords = []string{
	"actor", "actress", "singer", "musician", "rapper", "comedian", "director",
	"producer", "screenwriter", "filmmaker", "entertainer", "television host",
	"tv host", "talk show", "radio host", "model", "supermodel", "dancer",
	"choreographer", "composer", "songwriter", "rock", "pop", "country",
	"hip hop", "r&b", "jazz", "band", "youtube", "influencer", "tiktoker",
	"podcaster", "voice actor", "stand-up", "snl", "saturday night live",
}

// politicsKeywords match political and leadership occupations.
var politicsKeywords = []string{
	"president", "prime minister", "senator", "congressman", "governor",
	"mayor", "politician", "political", "secretary of state", "ambassador",
	"supreme court", "justice", "attorney general", "minister", "chancellor",
	"monarch", "king", "queen", "prince", "princess", "first lady",
}

// scienceKeywords match science and innovation occupations.
var scienceKeywords = []string{
	"scientist", "physicist", "chemist", "biologist", "astronaut", "nasa",
	"inventor", "engineer", "mathematician", "nobel prize", "researcher",
	"professor", "doctor", "surgeon", "psychologist", "economist",
	"astronomer", "cosmologist", "geneticist", "neuroscientist",
}

// sportsKeywords match major Western sports figures.
var sportsKeywords = []string{
	"football player", "nfl", "quarterback", "basketball player", "nba",
	"baseball player", "mlb", "hockey player", "nhl", "soccer player",
	"tennis player", "golfer", "boxer", "wrestler", "wwe", "olympic",
	"athlete", "coach", "mvp", "hall of fame", "super bowl", "world series",
}

// westernIndicators mark nationality or award context prioritized by
// the filter.
var westernIndicators = []string{
	"american", "british", "english", "canadian", "australian", "irish",
	"scottish", "welsh", "new zealand", "german", "french", "italian",
	"spanish", "dutch", "swedish", "norwegian", "danish", "belgian",
	"austrian", "swiss", "polish", "greek", "portuguese",
	"united states", "united kingdom", "hollywood", "broadway", "grammy",
	"oscar", "emmy", "tony award", "bafta", "golden globe",
}

// allNotableKeywords is the union of the four category lists, used for
// the reference-page bonus pass and the events scorer.
var allNotableKeywords = func() []string {
	all := make([]string, 0,
		len(entertainmentKeywords)+len(politicsKeywords)+len(scienceKeywords)+len(sportsKeywords))
	all = append(all, entertainmentKeywords...)
	all = append(all, politicsKeywords...)
	all = append(all, scienceKeywords...)
	all = append(all, sportsKeywords...)
	return all
}()
