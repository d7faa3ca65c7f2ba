// Package app owns the interactive state of the station browser and maps
// input actions onto navigation, search and playback.
package app

import (
	"errors"

	"github.com/glebovdev/radio-cli/internal/nav"
	"github.com/glebovdev/radio-cli/internal/player"
	"github.com/glebovdev/radio-cli/internal/prompt"
	"github.com/glebovdev/radio-cli/internal/search"
	"github.com/glebovdev/radio-cli/internal/station"
	"github.com/rs/zerolog/log"
)

// VolumeStep is the volume change per key press.
const VolumeStep = 10

// SearchLabel is shown in front of the search input line.
const SearchLabel = "Search: "

// Action is one input command, already decoded from a key press.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionUp
	ActionDown
	ActionVolumeDown
	ActionVolumeUp
	ActionConfirm
	ActionSearch
	ActionCancel
)

func (a Action) String() string {
	switch a {
	case ActionQuit:
		return "quit"
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionVolumeDown:
		return "volume-down"
	case ActionVolumeUp:
		return "volume-up"
	case ActionConfirm:
		return "confirm"
	case ActionSearch:
		return "search"
	case ActionCancel:
		return "cancel"
	default:
		return "none"
	}
}

// Playback is the part of the player the browser drives.
type Playback interface {
	Play(s station.Station) error
	Stop()
	IsPlaying() bool
	GetState() player.PlayerState
	AdjustVolume(delta int) bool
	Volume() int
	Status() string
}

// LineReader collects one line of text, blocking until it is entered.
type LineReader interface {
	ReadLine(label string) (string, error)
}

// App holds the station list together with the search, navigation and
// playback state. All methods must be called from a single goroutine.
type App struct {
	stations   []station.Station
	search     search.Search
	nav        nav.Navigator
	player     Playback
	reader     LineReader
	maxVisible int
}

// New returns an App over an already sorted station list. reader is used
// for the search prompt.
func New(stations []station.Station, playback Playback, reader LineReader) *App {
	return &App{
		stations:   stations,
		player:     playback,
		reader:     reader,
		maxVisible: 1,
	}
}

// activeView returns the filtered list in search mode and the full list otherwise.
func (a *App) activeView() []station.Station {
	return a.search.View(a.stations)
}

// Handle applies one action and reports whether the loop should keep
// running. ActionSearch blocks on the line reader.
func (a *App) Handle(action Action) bool {
	view := a.activeView()

	switch action {
	case ActionQuit:
		return false
	case ActionUp:
		a.nav.MoveUp(len(view), a.maxVisible)
	case ActionDown:
		a.nav.MoveDown(len(view), a.maxVisible)
	case ActionVolumeDown:
		a.player.AdjustVolume(-VolumeStep)
	case ActionVolumeUp:
		a.player.AdjustVolume(VolumeStep)
	case ActionConfirm:
		a.confirm(view)
	case ActionSearch:
		a.promptSearch()
	case ActionCancel:
		a.cancelSearch()
	}

	return true
}

// confirm toggles playback: it stops a playing station, otherwise plays
// the selected one.
func (a *App) confirm(view []station.Station) {
	if a.player.IsPlaying() {
		a.player.Stop()
		return
	}

	if len(view) == 0 {
		return
	}

	if err := a.player.Play(view[a.nav.Selected()]); err != nil {
		log.Debug().Err(err).Msg("Play failed")
	}
}

func (a *App) promptSearch() {
	if a.reader == nil {
		return
	}

	query, err := a.reader.ReadLine(SearchLabel)
	if err != nil {
		if !errors.Is(err, prompt.ErrCanceled) {
			log.Debug().Err(err).Msg("Search prompt failed")
		}
		return
	}

	a.ApplySearch(query)
}

// ApplySearch activates query and moves the selection to the top of the
// new view. An empty query leaves search mode.
func (a *App) ApplySearch(query string) {
	a.search.Activate(query)
	a.nav.Reset()
}

// cancelSearch leaves search mode and moves the selection to the top of
// the full list. Outside search mode it does nothing.
func (a *App) cancelSearch() {
	if !a.search.Active() {
		return
	}
	a.search.Cancel()
	a.nav.Reset()
}

// Resize sets the number of rows the station panel can show and refits
// the scroll window.
func (a *App) Resize(maxVisible int) {
	a.maxVisible = max(1, maxVisible)
	a.nav.Fit(len(a.activeView()), a.maxVisible)
}

// State is a snapshot of the browser state.
type State struct {
	SelectedIndex       int
	ScrollOffset        int
	Volume              int
	Playing             bool
	CurrentStationTitle string
	SearchMode          bool
	SearchQuery         string
}

// State returns the current browser state.
func (a *App) State() State {
	return State{
		SelectedIndex:       a.nav.Selected(),
		ScrollOffset:        a.nav.Offset(),
		Volume:              a.player.Volume(),
		Playing:             a.player.IsPlaying(),
		CurrentStationTitle: a.player.Status(),
		SearchMode:          a.search.Active(),
		SearchQuery:         a.search.Query(),
	}
}
