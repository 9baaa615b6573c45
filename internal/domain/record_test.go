package domain

import (
	"encoding/json"
	"testing"
)

func TestYearUnmarshal(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want Year
	}{
		{"number", `{"year": 1926, "text": "x"}`, "1926"},
		{"negative", `{"year": -44, "text": "x"}`, "-44"},
		{"string", `{"year": "1926", "text": "x"}`, "1926"},
		{"null", `{"year": null, "text": "x"}`, ""},
		{"missing", `{"text": "x"}`, ""},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			var rec HistoricalRecord
			if err := json.Unmarshal([]byte(tt.in), &rec); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if rec.Year != tt.want {
				t.Errorf("year = %q, want %q", rec.Year, tt.want)
			}
		})
	}
}

func TestYearUnmarshal_Invalid(t *testing.T) {
	var rec HistoricalRecord
	if err := json.Unmarshal([]byte(`{"year": {"nested": true}}`), &rec); err == nil {
		t.Error("expected error for object-typed year")
	}
}

func TestDayFeedDecode(t *testing.T) {
	payload := `{
		"events": [{"year": 1969, "text": "moon landing", "pages": [{"title": "Apollo 11", "description": "NASA mission"}]}],
		"births": [{"year": 1926, "text": "Marilyn Monroe, American actress"}],
		"deaths": []
	}`

	var feed DayFeed
	if err := json.Unmarshal([]byte(payload), &feed); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if len(feed.Events) != 1 || len(feed.Births) != 1 || len(feed.Deaths) != 0 {
		t.Fatalf("lengths = %d/%d/%d, want 1/1/0", len(feed.Events), len(feed.Births), len(feed.Deaths))
	}
	if feed.Events[0].Pages[0].Description != "NASA mission" {
		t.Errorf("page description = %q", feed.Events[0].Pages[0].Description)
	}
	if feed.Births[0].Year != "1926" {
		t.Errorf("birth year = %q", feed.Births[0].Year)
	}
}

func TestDigestEmpty(t *testing.T) {
	if !(Digest{}).Empty() {
		t.Error("zero digest should be empty")
	}
	if (Digest{Events: []string{"x"}}).Empty() {
		t.Error("digest with events should not be empty")
	}
}
