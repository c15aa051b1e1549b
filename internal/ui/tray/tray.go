package tray

import (
	"fmt"

	"stopwatch/internal/core/reactor"
	"stopwatch/internal/core/stopwatch"
	"stopwatch/internal/ui/view"

	"fyne.io/fyne/v2"
	"fyne.io/systray"
)

// App is the part of desktop.App the tray needs.
type App interface {
	SetSystemTrayMenu(menu *fyne.Menu)
	SetSystemTrayIcon(icon fyne.Resource)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnPrimary     func()
	OnSecondary   func()
	OnPreferences func()
	OnQuit        func()
}

// Icons are shown while the stopwatch runs or stands still.
type Icons struct {
	Running fyne.Resource
	Stopped fyne.Resource
}

// Manager handles system tray state.
type Manager struct {
	app           App
	icons         Icons
	callbacks     Callbacks
	statusItem    *fyne.MenuItem
	primaryItem   *fyne.MenuItem
	secondaryItem *fyne.MenuItem
	setTooltip    func(string)
	running       bool
	laps          int
}

// New creates a tray manager with the provided callbacks.
func New(app App, icons Icons, callbacks Callbacks) *Manager {
	return newManager(app, icons, callbacks, systray.SetTooltip)
}

func newManager(app App, icons Icons, callbacks Callbacks, setTooltip func(string)) *Manager {
	manager := &Manager{
		app:        app,
		icons:      icons,
		callbacks:  callbacks,
		setTooltip: setTooltip,
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true

	primary, secondary := view.ButtonLabels(false)
	manager.primaryItem = fyne.NewMenuItem(primary, func() {
		if manager.callbacks.OnPrimary != nil {
			manager.callbacks.OnPrimary()
		}
	})
	manager.secondaryItem = fyne.NewMenuItem(secondary, func() {
		if manager.callbacks.OnSecondary != nil {
			manager.callbacks.OnSecondary()
		}
	})

	manager.refreshStatus()
	manager.refreshIcon()
	return manager
}

// SetRunning relabels the actions and swaps the icon.
func (manager *Manager) SetRunning(running bool) {
	manager.running = running
	manager.primaryItem.Label, manager.secondaryItem.Label = view.ButtonLabels(running)
	manager.refreshStatus()
	manager.refreshIcon()
}

// SetLaps updates the recorded lap count.
func (manager *Manager) SetLaps(laps int) {
	manager.laps = laps
	manager.refreshStatus()
}

// Bind keeps the tray in sync with the stopwatch. It must run on the event loop.
func (manager *Manager) Bind(reactions *reactor.Reactor, sw *stopwatch.Stopwatch) {
	reactor.Watch(reactions, sw.Timer, sw.Timer.Running, func(running bool) {
		fyne.Do(func() {
			manager.SetRunning(running)
		})
	})
	reactor.Watch(reactions, sw.History, sw.History.Len, func(laps int) {
		fyne.Do(func() {
			manager.SetLaps(laps)
		})
	})
}

func (manager *Manager) refreshStatus() {
	state := "stopped"
	if manager.running {
		state = "running"
	}
	status := fmt.Sprintf("Status: %s, %d laps", state, manager.laps)
	if manager.laps == 1 {
		status = fmt.Sprintf("Status: %s, 1 lap", state)
	}
	manager.statusItem.Label = status
	if manager.setTooltip != nil {
		manager.setTooltip(status)
	}
	manager.refreshMenu()
}

func (manager *Manager) refreshIcon() {
	if manager.app == nil {
		return
	}
	icon := manager.icons.Stopped
	if manager.running {
		icon = manager.icons.Running
	}
	if icon != nil {
		manager.app.SetSystemTrayIcon(icon)
	}
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu("Stopwatch",
		manager.statusItem,
		manager.primaryItem,
		manager.secondaryItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Preferences", func() {
			if manager.callbacks.OnPreferences != nil {
				manager.callbacks.OnPreferences()
			}
		}),
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	))
}
