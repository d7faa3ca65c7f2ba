// Package search derives filtered views of a station list from a query.
package search

import (
	"strings"

	"github.com/glebovdev/radio-cli/internal/station"
	"github.com/rs/zerolog/log"
)

// Filter returns the stations whose title contains query, ignoring case,
// in their original order. An empty query returns list unchanged.
func Filter(list []station.Station, query string) []station.Station {
	if query == "" {
		return list
	}

	needle := station.Fold(query)
	result := make([]station.Station, 0, len(list))
	for _, s := range list {
		if strings.Contains(station.Fold(s.Title), needle) {
			result = append(result, s)
		}
	}
	return result
}

// Search holds the search mode and the active query.
type Search struct {
	query  string
	active bool
}

// Activate applies query. A non-empty query enters search mode and an
// empty one leaves it. Callers must reset their selection afterwards
// because the result set has changed.
func (s *Search) Activate(query string) {
	s.query = query
	s.active = query != ""
	log.Debug().Str("query", query).Bool("active", s.active).Msg("Search activated")
}

// Cancel leaves search mode.
func (s *Search) Cancel() {
	s.Activate("")
}

// Active reports whether search mode is on.
func (s *Search) Active() bool {
	return s.active
}

// Query returns the active query, empty outside search mode.
func (s *Search) Query() string {
	return s.query
}

// View returns the active view over list: the filtered stations in
// search mode, list itself otherwise.
func (s *Search) View(list []station.Station) []station.Station {
	if !s.active {
		return list
	}
	return Filter(list, s.query)
}
