package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/glebovdev/radio-cli/internal/app"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/tview"
)

const (
	scrollUpIndicator   = "↑ ↑ ↑"
	scrollDownIndicator = "↓ ↓ ↓"
	selectedMarker      = "▶"
	ellipsis            = "..."

	// stationPanelChrome is the number of inner rows that are not
	// station rows: both scroll indicators and the URL line.
	stationPanelChrome = 3
)

func (ui *UI) createStationPanel() *tview.Box {
	box := tview.NewBox()
	box.SetBorder(true).
		SetBorderColor(ui.colors.borders).
		SetBackgroundColor(ui.colors.background).
		SetBorderPadding(0, 0, 1, 1)

	box.SetDrawFunc(func(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
		innerX, innerY, innerWidth, innerHeight := x+2, y+1, width-4, height-2

		ui.view = ui.browser.View(maxVisibleRows(innerHeight))
		ui.drawPanelTitle(screen, ui.view.Title(), x, y, width)
		ui.drawStations(screen, ui.view, innerX, innerY, innerWidth, innerHeight)

		return innerX, innerY, innerWidth, innerHeight
	})

	return box
}

// maxVisibleRows returns how many station rows fit in a panel whose
// inner height is innerHeight.
func maxVisibleRows(innerHeight int) int {
	return max(1, innerHeight-stationPanelChrome)
}

func (ui *UI) drawPanelTitle(screen tcell.Screen, title string, x, y, width int) {
	if width <= 4 {
		return
	}
	text := " " + truncate(title, width-4) + " "
	tview.Print(screen, tview.Escape(text), x, y, width, tview.AlignCenter, ui.colors.title)
}

func (ui *UI) drawStations(screen tcell.Screen, v app.View, x, y, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}

	if v.Total == 0 {
		msg := "No stations"
		if v.SearchMode {
			msg = "No stations match the search"
		}
		tview.Print(screen, tview.Escape(msg), x, y+1, width, tview.AlignCenter, ui.colors.foreground)
		return
	}

	if v.MoreAbove {
		tview.Print(screen, scrollUpIndicator, x, y, width, tview.AlignCenter, ui.colors.borders)
	}

	rowY := y + 1
	selectedStyle := tcell.StyleDefault.Background(ui.colors.highlight).Foreground(ui.colors.background)
	for _, row := range v.Rows {
		color := ui.colors.foreground
		if row.Selected {
			for i := 0; i < width; i++ {
				screen.SetContent(x+i, rowY, ' ', nil, selectedStyle)
			}
			color = ui.colors.background
		}
		tview.Print(screen, tview.Escape(formatStationRow(row, width)), x, rowY, width, tview.AlignLeft, color)
		rowY++
	}

	if v.MoreBelow {
		tview.Print(screen, scrollDownIndicator, x, rowY, width, tview.AlignCenter, ui.colors.borders)
	}

	if v.Selected != nil {
		urlLine := "URL: " + v.Selected.URL
		tview.Print(screen, tview.Escape(truncate(urlLine, width)), x, y+height-1, width, tview.AlignLeft, ui.colors.station)
	}
}

// formatStationRow renders one row as "▶ NN. Title", truncated to width
// display cells.
func formatStationRow(row app.Row, width int) string {
	marker := " "
	if row.Selected {
		marker = selectedMarker
	}
	return truncate(fmt.Sprintf("%s %2d. %s", marker, row.Number, row.Title), width)
}

// truncate shortens s to at most width display cells, ending with "..."
// when something was cut.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= len(ellipsis) {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, ellipsis)
}
