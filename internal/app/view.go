package app

import (
	"fmt"

	"github.com/glebovdev/radio-cli/internal/player"
	"github.com/glebovdev/radio-cli/internal/station"
)

// Row is one visible station line.
type Row struct {
	Number   int
	Title    string
	Selected bool
}

// View is everything a frame needs to draw.
type View struct {
	Rows      []Row
	Total     int
	Start     int
	End       int
	MoreAbove bool
	MoreBelow bool

	// Selected is the highlighted station, nil when the view is empty.
	Selected      *station.Station
	SelectedIndex int
	PlayerState   player.PlayerState
	Current       string
	Volume        int
	SearchMode    bool
	Query         string
}

// View refits the window to maxVisible rows and returns the frame data.
func (a *App) View(maxVisible int) View {
	a.Resize(maxVisible)

	list := a.activeView()
	start, end := a.nav.VisibleRange(len(list), a.maxVisible)

	v := View{
		Rows:          make([]Row, 0, end-start),
		Total:         len(list),
		Start:         start,
		End:           end,
		MoreAbove:     start > 0,
		MoreBelow:     end < len(list),
		SelectedIndex: a.nav.Selected(),
		PlayerState:   a.player.GetState(),
		Current:       a.player.Status(),
		Volume:        a.player.Volume(),
		SearchMode:    a.search.Active(),
		Query:         a.search.Query(),
	}

	for i := start; i < end; i++ {
		v.Rows = append(v.Rows, Row{
			Number:   i + 1,
			Title:    list[i].Title,
			Selected: i == a.nav.Selected(),
		})
	}

	if len(list) > 0 {
		s := list[a.nav.Selected()]
		v.Selected = &s
	}

	return v
}

// Title is the station panel heading.
func (v View) Title() string {
	var title string
	if v.SearchMode {
		title = fmt.Sprintf("SEARCH %q (%d)", v.Query, v.Total)
	} else {
		title = fmt.Sprintf("STATIONS (%d)", v.Total)
	}

	if v.MoreAbove || v.MoreBelow {
		title += fmt.Sprintf(" - Scroll %d-%d", v.Start+1, v.End)
	}
	return title
}

// Position describes the selected row, e.g. "Station 3 of 12".
func (v View) Position() string {
	if v.Total == 0 {
		return "No stations"
	}
	return fmt.Sprintf("Station %d of %d", v.SelectedIndex+1, v.Total)
}
