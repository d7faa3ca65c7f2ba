package ui

import (
	"runtime"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/glebovdev/radio-cli/internal/app"
	"github.com/glebovdev/radio-cli/internal/config"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"
)

const (
	HeaderHeight   = 1
	ControlsHeight = 8
)

// PauseIcon uses platform-specific character (Windows renders ⏸ as emoji)
var PauseIcon = func() string {
	if runtime.GOOS == "windows" {
		return "❚❚"
	}
	return "⏸"
}()

type UI struct {
	app           *tview.Application
	browser       *app.App
	source        string
	pages         *tview.Pages
	stationPanel  *tview.Box
	controlsPanel *tview.Box
	view          app.View
	tooSmall      bool
	colors        struct {
		background tcell.Color
		foreground tcell.Color
		borders    tcell.Color
		highlight  tcell.Color
		accent     tcell.Color
		title      tcell.Color
		station    tcell.Color
		error      tcell.Color
	}
}

// NewUI builds the interface over browser. source is the station list
// location shown in the help modal.
func NewUI(browser *app.App, cfg *config.Config, source string) *UI {
	ui := &UI{
		app:     tview.NewApplication(),
		browser: browser,
		source:  source,
	}

	ui.colors.background = config.GetColor(cfg.Theme.Background)
	ui.colors.foreground = config.GetColor(cfg.Theme.Foreground)
	ui.colors.borders = config.GetColor(cfg.Theme.Borders)
	ui.colors.highlight = config.GetColor(cfg.Theme.Highlight)
	ui.colors.accent = config.GetColor(cfg.Theme.Accent)
	ui.colors.title = config.GetColor(cfg.Theme.Title)
	ui.colors.station = config.GetColor(cfg.Theme.Station)
	ui.colors.error = config.GetColor(cfg.Theme.Error)

	return ui
}

func (ui *UI) stop() {
	ui.app.Stop()
}

// Shutdown stops the UI gracefully from external callers (e.g., signal handlers).
func (ui *UI) Shutdown() {
	ui.app.QueueUpdateDraw(func() {
		ui.stop()
	})
}

func (ui *UI) Run() error {
	ui.setupUI()
	ui.configureScreen()
	ui.app.SetRoot(ui.pages, true)
	return ui.app.Run()
}

func (ui *UI) configureScreen() {
	bgStyle := tcell.StyleDefault.Background(ui.colors.background)
	ui.app.SetBeforeDrawFunc(func(screen tcell.Screen) bool {
		screen.SetStyle(bgStyle)
		screen.Clear()

		width, height := screen.Size()
		ui.tooSmall = isTooSmall(width, height)
		if ui.tooSmall {
			ui.drawTooSmall(screen, width, height)
			return true
		}
		return false
	})

	var titleSet sync.Once
	ui.app.SetAfterDrawFunc(func(screen tcell.Screen) {
		titleSet.Do(func() { screen.SetTitle(config.AppName) })
	})
}

func (ui *UI) setupUI() {
	header := ui.createHeader()

	ui.stationPanel = ui.createStationPanel()
	ui.controlsPanel = ui.createControlsPanel()

	mainLayout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(header, HeaderHeight, 0, false).
		AddItem(ui.stationPanel, 0, 1, true).
		AddItem(ui.controlsPanel, ControlsHeight, 0, false)
	mainLayout.SetBackgroundColor(ui.colors.background)

	ui.pages = tview.NewPages().
		AddPage("main", mainLayout, true, true)
	ui.pages.SetBackgroundColor(ui.colors.background)

	ui.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if ui.pages.HasPage("modal") {
			return event
		}
		return ui.globalInputHandler(event)
	})
}

func (ui *UI) createHeader() tview.Primitive {
	titleView := tview.NewTextView()
	titleView.SetDynamicColors(true)
	titleView.SetText(" " + config.AppName + " [::d]- " + config.AppTagline + "[::-]")
	titleView.SetTextAlign(tview.AlignLeft)
	titleView.SetTextColor(ui.colors.title)
	titleView.SetBackgroundColor(ui.colors.accent)

	versionView := tview.NewTextView()
	versionView.SetText("v" + config.AppVersion + " ")
	versionView.SetTextAlign(tview.AlignRight)
	versionView.SetTextColor(ui.colors.foreground)
	versionView.SetBackgroundColor(ui.colors.accent)

	return tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(titleView, 0, 1, false).
		AddItem(versionView, 16, 0, false)
}

// keyAction translates a key press into a browser action.
func keyAction(event *tcell.EventKey) app.Action {
	switch event.Key() {
	case tcell.KeyRune:
		switch event.Rune() {
		case 'q', 'Q':
			return app.ActionQuit
		case ' ':
			return app.ActionConfirm
		case '/':
			return app.ActionSearch
		case '+', '=':
			return app.ActionVolumeUp
		case '-', '_':
			return app.ActionVolumeDown
		}
	case tcell.KeyEnter:
		return app.ActionConfirm
	case tcell.KeyEscape:
		return app.ActionCancel
	case tcell.KeyUp:
		return app.ActionUp
	case tcell.KeyDown:
		return app.ActionDown
	case tcell.KeyLeft:
		return app.ActionVolumeDown
	case tcell.KeyRight:
		return app.ActionVolumeUp
	}
	return app.ActionNone
}

func isHelpKey(event *tcell.EventKey) bool {
	return event.Key() == tcell.KeyRune && event.Rune() == '?'
}

func (ui *UI) globalInputHandler(event *tcell.EventKey) *tcell.EventKey {
	action := keyAction(event)

	if ui.tooSmall {
		if action == app.ActionQuit {
			ui.stop()
			return nil
		}
		if event.Key() == tcell.KeyCtrlC {
			return event
		}
		return nil
	}

	if isHelpKey(event) {
		ui.showHelpModal()
		return nil
	}

	switch action {
	case app.ActionNone:
		return event
	case app.ActionSearch:
		ui.app.Suspend(func() {
			ui.browser.Handle(action)
		})
		return nil
	}

	log.Debug().Stringer("action", action).Msg("Key dispatched")
	if !ui.browser.Handle(action) {
		ui.stop()
	}
	return nil
}
