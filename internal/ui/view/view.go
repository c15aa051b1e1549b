// Package view maps stopwatch state onto a document of UI elements.
package view

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"stopwatch/internal/core/model"
	"stopwatch/internal/core/reactor"
	"stopwatch/internal/core/stopwatch"
)

// Element identifiers every document must provide.
const (
	ElementTime      = "time"
	ElementStartStop = "start-stop"
	ElementLapReset  = "lap-reset"
	ElementHistory   = "history"
)

// PlaceholderEntry is shown when the history is empty.
const PlaceholderEntry = "No Entries"

// ErrMissingElement indicates the document lacks a required element.
var ErrMissingElement = errors.New("missing element")

// TextNode is an element with a text label.
type TextNode interface {
	SetText(text string)
}

// ListNode is an element holding a list of text items.
type ListNode interface {
	SetItems(items []string)
}

// Document resolves elements by identifier.
type Document interface {
	Text(id string) (TextNode, bool)
	List(id string) (ListNode, bool)
}

// View renders stopwatch state into resolved elements.
type View struct {
	time      TextNode
	primary   TextNode
	secondary TextNode
	history   ListNode
}

// Mount resolves every element the view writes to.
func Mount(document Document) (*View, error) {
	view := &View{}
	var ok bool
	if view.time, ok = document.Text(ElementTime); !ok {
		return nil, fmt.Errorf("mount view: %w: %s", ErrMissingElement, ElementTime)
	}
	if view.primary, ok = document.Text(ElementStartStop); !ok {
		return nil, fmt.Errorf("mount view: %w: %s", ErrMissingElement, ElementStartStop)
	}
	if view.secondary, ok = document.Text(ElementLapReset); !ok {
		return nil, fmt.Errorf("mount view: %w: %s", ErrMissingElement, ElementLapReset)
	}
	if view.history, ok = document.List(ElementHistory); !ok {
		return nil, fmt.Errorf("mount view: %w: %s", ErrMissingElement, ElementHistory)
	}
	return view, nil
}

// RenderTimer shows the elapsed time.
func (view *View) RenderTimer(elapsed time.Duration) {
	view.time.SetText(model.FormatElapsed(elapsed))
}

// RenderButtons labels both buttons for the running state.
func (view *View) RenderButtons(running bool) {
	primary, secondary := ButtonLabels(running)
	view.primary.SetText(primary)
	view.secondary.SetText(secondary)
}

// RenderHistory replaces the history list.
func (view *View) RenderHistory(entries []model.Entry) {
	view.history.SetItems(HistoryItems(entries))
}

// ButtonLabels returns the primary and secondary button labels.
func ButtonLabels(running bool) (string, string) {
	if running {
		return "Stop", "Lap"
	}
	return "Start", "Reset"
}

// HistoryItems returns the list items for the entries, or the placeholder
// alone when there are none.
func HistoryItems(entries []model.Entry) []string {
	if len(entries) == 0 {
		return []string{PlaceholderEntry}
	}
	items := make([]string, 0, len(entries))
	for _, entry := range entries {
		items = append(items, entry.String())
	}
	return items
}

// Bind renders the current state and keeps the view in sync with it.
// It must run on the event loop.
func Bind(reactions *reactor.Reactor, sw *stopwatch.Stopwatch, view *View) {
	reactor.Watch(reactions, sw.Timer, sw.Timer.Elapsed, view.RenderTimer)
	reactor.Watch(reactions, sw.Timer, sw.Timer.Running, view.RenderButtons)
	reactor.WatchFunc(reactions, sw.History, sw.History.Entries, slices.Equal[[]model.Entry], view.RenderHistory)
}
