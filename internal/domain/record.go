package domain

import (
	"encoding/json"
	"fmt"
)

// Category classifies a historical record by the occupation keywords
// that matched it.
type Category string

const (
	CategoryEntertainment Category = "entertainment"
	CategoryPolitics      Category = "politics"
	CategoryScience       Category = "science"
	CategorySports        Category = "sports"
	CategoryOther         Category = "other"
)

// Year is the year of a historical record. The upstream feed emits it
// as a JSON number (negative for BC), but individual records may carry
// a string or omit it entirely; a missing year renders as "".
type Year string

func (y *Year) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*y = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("year: %w", err)
		}
		*y = Year(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("year: %w", err)
	}
	*y = Year(n.String())
	return nil
}

func (y Year) String() string { return string(y) }

// RecordPage is a reference page attached to a historical record.
type RecordPage struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// HistoricalRecord is a single event, birth, or death from the
// on-this-day feed. Immutable once fetched.
type HistoricalRecord struct {
	Year  Year         `json:"year"`
	Text  string       `json:"text"`
	Pages []RecordPage `json:"pages"`
}

// DayFeed is the raw feed for one calendar day.
type DayFeed struct {
	Events []HistoricalRecord `json:"events"`
	Births []HistoricalRecord `json:"births"`
	Deaths []HistoricalRecord `json:"deaths"`
}

// ScoredRecord is a HistoricalRecord with its notability score and
// category attached. Derived, never persisted.
type ScoredRecord struct {
	HistoricalRecord
	Score    int
	Category Category
}

// Digest holds the rendered, relevance-ranked lines for one or more
// days. Lengths are bounded by the filter (events 10, births 12,
// deaths 6 for a single day).
type Digest struct {
	Events []string
	Births []string
	Deaths []string
}

// Empty reports whether the digest carries no lines at all, which is
// what a degraded (failed-fetch) day looks like.
func (d Digest) Empty() bool {
	return len(d.Events) == 0 && len(d.Births) == 0 && len(d.Deaths) == 0
}
