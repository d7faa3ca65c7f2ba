package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/glebovdev/radio-cli/internal/config"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/tview"
)

type helpEntry struct {
	keys        []string
	description string
}

type helpSection struct {
	name    string
	entries []helpEntry
}

var helpSections = []helpSection{
	{"STATIONS", []helpEntry{
		{[]string{"↑", "↓"}, "Move selection"},
		{[]string{"/"}, "Search by title"},
		{[]string{"Esc"}, "Clear search"},
	}},
	{"PLAYBACK", []helpEntry{
		{[]string{"Enter", "Space"}, "Play / Stop"},
	}},
	{"VOLUME", []helpEntry{
		{[]string{"←", "→", "-", "+"}, "Volume down / up"},
	}},
	{"APPLICATION", []helpEntry{
		{[]string{"?"}, "Show this help"},
		{[]string{"q"}, "Quit"},
	}},
}

const helpKeyColumn = 16

// helpText renders the key reference with keys in keyColor. The key column
// is padded on its visible width so tags don't skew the alignment.
func helpText(keyColor, configPath, source string) string {
	var b strings.Builder
	for _, section := range helpSections {
		fmt.Fprintf(&b, "[%s]%s[-]\n", keyColor, section.name)
		for _, entry := range section.entries {
			colored := make([]string, len(entry.keys))
			for i, key := range entry.keys {
				colored[i] = fmt.Sprintf("[%s]%s[-]", keyColor, tview.Escape(key))
			}
			width := runewidth.StringWidth(strings.Join(entry.keys, ", "))
			pad := max(helpKeyColumn-width, 1)
			fmt.Fprintf(&b, "  %s%s%s\n", strings.Join(colored, ", "), strings.Repeat(" ", pad), entry.description)
		}
	}
	fmt.Fprintf(&b, "\n[%s]CONFIG[-]: %s\n", keyColor, tview.Escape(configPath))
	fmt.Fprintf(&b, "[%s]SOURCE[-]: %s", keyColor, tview.Escape(source))
	return b.String()
}

func (ui *UI) showHelpModal() {
	configPath, _ := config.GetConfigPath()
	ui.showInfoModal("Help", helpText(ui.colors.highlight.String(), configPath, ui.source))
}

func (ui *UI) showInfoModal(title, message string) {
	doDismiss := func() {
		ui.pages.RemovePage("modal")
		ui.app.SetFocus(ui.stationPanel)
	}

	messageView := tview.NewTextView().
		SetTextAlign(tview.AlignLeft).
		SetDynamicColors(true).
		SetWordWrap(true).
		SetText("\n" + message)
	messageView.SetTextColor(ui.colors.foreground)
	messageView.SetBackgroundColor(ui.colors.accent)

	hintView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText("[::d]Press any key to close[::-]")
	hintView.SetTextColor(tcell.ColorDarkGray)
	hintView.SetBackgroundColor(ui.colors.accent)

	content := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(messageView, 0, 1, false).
		AddItem(nil, 1, 0, false).
		AddItem(hintView, 1, 0, false)
	content.SetBackgroundColor(ui.colors.accent)

	frame := tview.NewFrame(content).
		SetBorders(0, 0, 0, 0, 2, 2)
	frame.SetBorder(true).
		SetBorderColor(ui.colors.borders).
		SetBackgroundColor(ui.colors.accent).
		SetTitle(" " + title + " ").
		SetTitleColor(ui.colors.highlight).
		SetTitleAlign(tview.AlignCenter)

	lines := strings.Count(message, "\n") + 1
	modalWidth := 56
	modalHeight := min(lines+6, config.MinHeight)

	modal := tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(frame, modalHeight, 0, true).
			AddItem(nil, 0, 1, false),
			modalWidth, 0, true).
		AddItem(nil, 0, 1, false)
	modal.SetBackgroundColor(ui.colors.background)

	modal.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		doDismiss()
		return nil
	})

	ui.pages.AddPage("modal", modal, true, true)
	ui.app.SetFocus(modal)
}
