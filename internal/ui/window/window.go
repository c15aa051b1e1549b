// Package window builds the stopwatch main window.
package window

import (
	"image/color"

	"stopwatch/internal/ui/view"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Config defines main window geometry.
type Config struct {
	Title  string
	Width  float32
	Height float32
}

// Window is the stopwatch main window. It exposes its widgets to the view
// through the element identifiers.
type Window struct {
	window      fyne.Window
	config      Config
	timeText    *canvas.Text
	startStop   *widget.Button
	lapReset    *widget.Button
	historyBox  *fyne.Container
	onPrimary   func()
	onSecondary func()
}

// New builds the main window without showing it.
func New(app fyne.App, config Config) *Window {
	window := app.NewWindow(config.Title)
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	timeText := canvas.NewText("--:--:---", theme.Color(theme.ColorNameForeground))
	timeText.Alignment = fyne.TextAlignCenter
	timeText.TextStyle = fyne.TextStyle{Monospace: true}
	timeText.TextSize = 42

	startStop := widget.NewButton("", nil)
	startStop.Importance = widget.HighImportance
	lapReset := widget.NewButton("", nil)

	historyTitle := canvas.NewText("History", color.NRGBA{R: 150, G: 150, B: 150, A: 255})
	historyTitle.TextStyle = fyne.TextStyle{Bold: true}

	historyBox := container.NewVBox()
	header := container.NewVBox(
		timeText,
		container.NewHBox(layout.NewSpacer(), startStop, lapReset, layout.NewSpacer()),
		widget.NewSeparator(),
		historyTitle,
	)
	window.SetContent(container.NewBorder(header, nil, nil, nil, container.NewVScroll(historyBox)))

	mainWindow := &Window{
		window:     window,
		config:     config,
		timeText:   timeText,
		startStop:  startStop,
		lapReset:   lapReset,
		historyBox: historyBox,
	}
	startStop.OnTapped = func() {
		if mainWindow.onPrimary != nil {
			mainWindow.onPrimary()
		}
	}
	lapReset.OnTapped = func() {
		if mainWindow.onSecondary != nil {
			mainWindow.onSecondary()
		}
	}
	mainWindow.applySize()
	return mainWindow
}

// Text resolves the time display and the two buttons.
func (mainWindow *Window) Text(id string) (view.TextNode, bool) {
	switch id {
	case view.ElementTime:
		return textNode{text: mainWindow.timeText}, true
	case view.ElementStartStop:
		return buttonNode{button: mainWindow.startStop}, true
	case view.ElementLapReset:
		return buttonNode{button: mainWindow.lapReset}, true
	default:
		return nil, false
	}
}

// List resolves the history container.
func (mainWindow *Window) List(id string) (view.ListNode, bool) {
	if id != view.ElementHistory {
		return nil, false
	}
	return listNode{box: mainWindow.historyBox}, true
}

// SetOnPrimary sets the start/stop handler.
func (mainWindow *Window) SetOnPrimary(handler func()) {
	mainWindow.onPrimary = handler
}

// SetOnSecondary sets the lap/reset handler.
func (mainWindow *Window) SetOnSecondary(handler func()) {
	mainWindow.onSecondary = handler
}

// SetOnClosed sets the handler run when the window is closed.
func (mainWindow *Window) SetOnClosed(handler func()) {
	mainWindow.window.SetOnClosed(handler)
}

// Show displays the window.
func (mainWindow *Window) Show() {
	mainWindow.window.Show()
	mainWindow.window.RequestFocus()
}

// UpdateConfig applies new geometry.
func (mainWindow *Window) UpdateConfig(config Config) {
	mainWindow.config = config
	if config.Title != "" {
		mainWindow.window.SetTitle(config.Title)
	}
	mainWindow.applySize()
}

func (mainWindow *Window) applySize() {
	size := fyne.NewSize(mainWindow.config.Width, mainWindow.config.Height)
	minSize := mainWindow.window.Content().MinSize()
	if size.Width < minSize.Width {
		size.Width = minSize.Width
	}
	if size.Height < minSize.Height {
		size.Height = minSize.Height
	}
	mainWindow.window.Resize(size)
}

type textNode struct {
	text *canvas.Text
}

func (node textNode) SetText(text string) {
	fyne.Do(func() {
		node.text.Text = text
		node.text.Refresh()
	})
}

type buttonNode struct {
	button *widget.Button
}

func (node buttonNode) SetText(text string) {
	fyne.Do(func() {
		node.button.SetText(text)
	})
}

type listNode struct {
	box *fyne.Container
}

// SetItems wipes the container and adds one label per item.
func (node listNode) SetItems(items []string) {
	items = append([]string(nil), items...)
	fyne.Do(func() {
		labels := make([]fyne.CanvasObject, 0, len(items))
		for _, item := range items {
			labels = append(labels, widget.NewLabelWithStyle(item, fyne.TextAlignLeading, fyne.TextStyle{Monospace: true}))
		}
		node.box.Objects = labels
		node.box.Refresh()
	})
}
