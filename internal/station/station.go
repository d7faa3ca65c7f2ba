// Package station defines radio station records and decodes station lists.
package station

import (
	"cmp"
	"slices"

	"golang.org/x/text/cases"
)

// Station is a named radio stream. Stations are immutable once loaded.
type Station struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Fold returns the case-folded form of s used for ordering and matching.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// SortByTitle sorts stations by title, ignoring case. Stations whose
// folded titles compare equal keep their original relative order.
func SortByTitle(stations []Station) {
	keys := make(map[string]string, len(stations))
	for _, s := range stations {
		if _, ok := keys[s.Title]; !ok {
			keys[s.Title] = Fold(s.Title)
		}
	}

	slices.SortStableFunc(stations, func(a, b Station) int {
		return cmp.Compare(keys[a.Title], keys[b.Title])
	})
}
