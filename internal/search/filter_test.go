package search

import (
	"testing"

	"github.com/glebovdev/radio-cli/internal/station"
)

var testStations = []station.Station{
	{Title: "Alpha Radio", URL: "u2"},
	{Title: "Classic Rock", URL: "u3"},
	{Title: "Jazz FM", URL: "u4"},
	{Title: "rock antenne", URL: "u5"},
	{Title: "Zed FM", URL: "u1"},
}

func titlesOf(stations []station.Station) []string {
	result := make([]string, len(stations))
	for i, s := range stations {
		result[i] = s.Title
	}
	return result
}

func equalTitles(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{"empty query is identity", "", []string{"Alpha Radio", "Classic Rock", "Jazz FM", "rock antenne", "Zed FM"}},
		{"lowercase query", "zed", []string{"Zed FM"}},
		{"uppercase query", "ROCK", []string{"Classic Rock", "rock antenne"}},
		{"substring in the middle", "fm", []string{"Jazz FM", "Zed FM"}},
		{"no match", "polka", []string{}},
		{"query with space", "a r", []string{"Alpha Radio"}},
		{"url is not searched", "u1", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := titlesOf(Filter(testStations, tt.query))
			if !equalTitles(got, tt.expected) {
				t.Errorf("Filter(%q) = %v, want %v", tt.query, got, tt.expected)
			}
		})
	}
}

func TestFilterIsOrderedSubsequence(t *testing.T) {
	queries := []string{"", "a", "o", "FM", "rock", "x", " ", "z"}

	for _, q := range queries {
		t.Run(q, func(t *testing.T) {
			result := Filter(testStations, q)

			j := 0
			for _, s := range result {
				for j < len(testStations) && testStations[j] != s {
					j++
				}
				if j == len(testStations) {
					t.Fatalf("Filter(%q) result %v is not a subsequence of the input", q, titlesOf(result))
				}
				j++
			}

			for _, s := range result {
				if !containsFolded(s.Title, q) {
					t.Errorf("Filter(%q) returned %q which does not contain the query", q, s.Title)
				}
			}
		})
	}
}

func containsFolded(title, query string) bool {
	ft, fq := station.Fold(title), station.Fold(query)
	for i := 0; i+len(fq) <= len(ft); i++ {
		if ft[i:i+len(fq)] == fq {
			return true
		}
	}
	return false
}

func TestSearchActivate(t *testing.T) {
	var s Search

	if s.Active() {
		t.Fatal("new Search should not be active")
	}

	s.Activate("jazz")
	if !s.Active() || s.Query() != "jazz" {
		t.Errorf("after Activate(\"jazz\"): active=%v query=%q", s.Active(), s.Query())
	}

	s.Activate("")
	if s.Active() {
		t.Error("Activate(\"\") should leave search mode")
	}
	if s.Query() != "" {
		t.Errorf("Query() = %q, want empty", s.Query())
	}
}

func TestSearchCancel(t *testing.T) {
	var s Search
	s.Activate("rock")
	s.Cancel()

	if s.Active() {
		t.Error("Cancel() should leave search mode")
	}
	if got := titlesOf(s.View(testStations)); !equalTitles(got, titlesOf(testStations)) {
		t.Errorf("View() after Cancel = %v, want full list", got)
	}
}

func TestSearchView(t *testing.T) {
	var s Search

	if got := s.View(testStations); len(got) != len(testStations) {
		t.Errorf("inactive View() returned %d stations, want %d", len(got), len(testStations))
	}

	s.Activate("zed")
	if got := titlesOf(s.View(testStations)); !equalTitles(got, []string{"Zed FM"}) {
		t.Errorf("View() = %v, want [Zed FM]", got)
	}
}
