package preferences

import (
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

const (
	minTickMillis = 1
	maxTickMillis = 1000
)

// Window handles the preferences UI.
type Window struct {
	window      fyne.Window
	settings    Settings
	onSave      func(Settings)
	tickEntry   *widget.Entry
	widthEntry  *widget.Entry
	heightEntry *widget.Entry
	trayCheck   *widget.Check
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Stopwatch Settings")

	tickEntry := widget.NewEntry()
	widthEntry := widget.NewEntry()
	heightEntry := widget.NewEntry()
	trayCheck := widget.NewCheck("Show in system tray (restart required)", nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Timer", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Tick every"), tickEntry, widget.NewLabel("ms")),
		widget.NewLabelWithStyle("Window", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Width"), widthEntry, widget.NewLabel("Height"), heightEntry),
		trayCheck,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(360, 240))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	prefs := &Window{
		window:      window,
		onSave:      onSave,
		tickEntry:   tickEntry,
		widthEntry:  widthEntry,
		heightEntry: heightEntry,
		trayCheck:   trayCheck,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.tickEntry.SetText(fmt.Sprintf("%d", settings.TickInterval.Milliseconds()))
	prefs.widthEntry.SetText(fmt.Sprintf("%d", int(settings.WindowWidth)))
	prefs.heightEntry.SetText(fmt.Sprintf("%d", int(settings.WindowHeight)))
	prefs.trayCheck.SetChecked(settings.TrayEnabled)
}

// Settings returns the last saved settings.
func (prefs *Window) Settings() Settings {
	return prefs.settings
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if millis, ok := parseBoundedInt(prefs.tickEntry.Text, minTickMillis, maxTickMillis); ok {
		settings.TickInterval = time.Duration(millis) * time.Millisecond
	}
	if width, ok := parsePositiveInt(prefs.widthEntry.Text); ok {
		settings.WindowWidth = float32(width)
	}
	if height, ok := parsePositiveInt(prefs.heightEntry.Text); ok {
		settings.WindowHeight = float32(height)
	}
	settings.TrayEnabled = prefs.trayCheck.Checked

	prefs.UpdateSettings(settings)
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}

func parseBoundedInt(value string, lower, upper int) (int, bool) {
	parsed, ok := parsePositiveInt(value)
	if !ok || parsed < lower || parsed > upper {
		return 0, false
	}
	return parsed, true
}
