package main

import (
	"context"
	"errors"
	"log"

	"stopwatch/internal/core/eventloop"
	"stopwatch/internal/core/reactor"
	"stopwatch/internal/core/stopwatch"
	"stopwatch/internal/platform"
	"stopwatch/internal/storage"
	"stopwatch/internal/ui/preferences"
	"stopwatch/internal/ui/tray"
	"stopwatch/internal/ui/view"
	"stopwatch/internal/ui/window"
	"stopwatch/resources"

	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const appName = "Stopwatch"

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("load settings: %v", err)
	}

	fyneApp := app.NewWithID("com.stopwatch.app")
	fyneApp.SetIcon(resources.MustIcon("stopwatch.svg"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loop := eventloop.New(eventloop.RealClock{}, 0)
	loopDone := make(chan struct{})
	go func() {
		defer close(loopDone)
		if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("event loop: %v", err)
		}
	}()

	sw := stopwatch.New(settings.StopwatchConfig(), loop)

	mainWindow := window.New(fyneApp, windowConfig(settings))
	rendered, err := view.Mount(mainWindow)
	if err != nil {
		log.Fatalf("initialize view: %v", err)
	}

	var reactions reactor.Reactor
	defer reactions.Dispose()
	post(loop, func() {
		view.Bind(&reactions, sw, rendered)
	})

	pressPrimary := func() { post(loop, sw.Controller.PressPrimary) }
	pressSecondary := func() { post(loop, sw.Controller.PressSecondary) }
	mainWindow.SetOnPrimary(pressPrimary)
	mainWindow.SetOnSecondary(pressSecondary)

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		settings = updated
		if err := storage.SaveSettings(appName, settings); err != nil {
			log.Printf("save settings: %v", err)
		}
		interval := settings.StopwatchConfig().TickInterval
		post(loop, func() {
			sw.Timer.SetInterval(interval)
		})
		mainWindow.UpdateConfig(windowConfig(settings))
	})

	if desktopApp, ok := fyneApp.(desktop.App); ok && settings.TrayEnabled {
		trayManager := tray.New(desktopApp, tray.Icons{
			Running: resources.MustIcon("running.svg"),
			Stopped: resources.MustIcon("stopped.svg"),
		}, tray.Callbacks{
			OnPrimary:     pressPrimary,
			OnSecondary:   pressSecondary,
			OnPreferences: prefsWindow.Show,
			OnQuit:        fyneApp.Quit,
		})
		post(loop, func() {
			trayManager.Bind(&reactions, sw)
		})
	} else if settings.TrayEnabled {
		log.Printf("system tray unsupported on this platform")
	}

	fyneApp.Lifecycle().SetOnStopped(func() {
		_ = loop.Call(context.Background(), sw.Timer.Stop)
	})
	mainWindow.SetOnClosed(fyneApp.Quit)
	mainWindow.Show()
	fyneApp.Run()

	cancel()
	<-loopDone
}

func post(loop *eventloop.Loop, work func()) {
	if !loop.Post(work) {
		log.Printf("event loop closed, dropping input")
	}
}

func windowConfig(settings preferences.Settings) window.Config {
	return window.Config{
		Title:  appName,
		Width:  settings.WindowWidth,
		Height: settings.WindowHeight,
	}
}
