package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/glebovdev/radio-cli/internal/config"
	"github.com/glebovdev/radio-cli/internal/player"
	"github.com/rivo/tview"
)

const (
	volumeBarWidth = 20
	navigationHint = "↑/↓ Navigate   Enter/Space Play/Stop   ←/→ Volume"
	searchHint     = "/ Search   Esc Clear search   ? Help"
)

func (ui *UI) createControlsPanel() *tview.Box {
	box := tview.NewBox()
	box.SetBorder(true).
		SetBorderColor(ui.colors.borders).
		SetBackgroundColor(ui.colors.background).
		SetTitle(" CONTROLS ").
		SetTitleColor(ui.colors.title)

	box.SetDrawFunc(func(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
		innerX, innerY, innerWidth, innerHeight := x+2, y+1, width-4, height-2
		ui.drawControls(screen, innerX, innerY, innerWidth, innerHeight)
		return innerX, innerY, innerWidth, innerHeight
	})

	return box
}

func (ui *UI) drawControls(screen tcell.Screen, x, y, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	v := ui.view

	printLine := func(line int, text string, color tcell.Color, align int) {
		if line >= height {
			return
		}
		tview.Print(screen, tview.Escape(truncate(text, width)), x, y+line, width, align, color)
	}

	printLine(0, navigationHint, ui.colors.foreground, tview.AlignLeft)
	printLine(1, searchHint, ui.colors.foreground, tview.AlignLeft)

	stateColor := ui.colors.foreground
	if v.PlayerState == player.StatePlaying {
		stateColor = ui.colors.highlight
	}
	printLine(2, "Status:  "+playbackLabel(v.PlayerState), stateColor, tview.AlignLeft)

	current, failed := currentLabel(v.Current)
	currentColor := ui.colors.station
	if failed {
		currentColor = ui.colors.error
	}
	printLine(3, "Station: "+current, currentColor, tview.AlignLeft)

	printLine(4, "Volume:  "+renderVolumeBar(v.Volume, volumeBarWidth), ui.colors.foreground, tview.AlignLeft)

	printLine(5, v.Position(), ui.colors.foreground, tview.AlignLeft)
	printLine(5, "q: Quit", ui.colors.highlight, tview.AlignRight)
}

func playbackLabel(state player.PlayerState) string {
	switch state {
	case player.StatePlaying:
		return "▶ Playing"
	case player.StateStopped:
		return PauseIcon + " Stopped"
	default:
		return state.String()
	}
}

// currentLabel returns the text for the current station line and
// whether it describes a failed start.
func currentLabel(status string) (string, bool) {
	if status == "" {
		return "None selected", false
	}
	if reason, ok := strings.CutPrefix(status, "Error: "); ok {
		return "Error: " + friendlyErrorMessage(reason), true
	}
	return status, false
}

func friendlyErrorMessage(errStr string) string {
	if strings.Contains(errStr, "executable file not found") || strings.Contains(errStr, "no such file or directory") {
		return "Player not found. Install mpv or set \"player\" in the config file."
	}
	if strings.Contains(errStr, "permission denied") {
		return "Player is not executable (permission denied)."
	}
	if len(errStr) > 100 {
		return errStr[:100] + "..."
	}
	return errStr
}

// renderVolumeBar draws "[████░░░░] 50%" with width cells inside the brackets.
func renderVolumeBar(volume, width int) string {
	volume = min(max(volume, 0), 100)
	filled := (volume * width) / 100
	empty := width - filled
	return fmt.Sprintf("[%s%s] %d%%", strings.Repeat("█", filled), strings.Repeat("░", empty), volume)
}

func isTooSmall(width, height int) bool {
	return width < config.MinWidth || height < config.MinHeight
}

func (ui *UI) drawTooSmall(screen tcell.Screen, width, height int) {
	lines := []string{
		"Terminal too small",
		fmt.Sprintf("Required: %dx%d", config.MinWidth, config.MinHeight),
		fmt.Sprintf("Current: %dx%d", width, height),
		"Please resize the terminal",
		"q: Quit",
	}

	top := max(0, (height-len(lines))/2)
	for i, line := range lines {
		color := ui.colors.foreground
		if i == 0 {
			color = ui.colors.error
		}
		tview.Print(screen, line, 0, top+i, width, tview.AlignCenter, color)
	}
}
