package stopwatch

import (
	"slices"

	"stopwatch/internal/core/model"
	"stopwatch/internal/core/reactor"
)

// History is the ordered list of recorded laps.
type History struct {
	reactor.Observable

	entries []model.Entry
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{}
}

// Add appends an entry.
func (history *History) Add(entry model.Entry) {
	history.entries = append(history.entries, entry)
	history.Notify()
}

// Clear removes every entry.
func (history *History) Clear() {
	if len(history.entries) == 0 {
		return
	}
	history.entries = nil
	history.Notify()
}

// Entries returns a copy of the entries in recording order.
func (history *History) Entries() []model.Entry {
	return slices.Clone(history.entries)
}

// Len returns the number of entries.
func (history *History) Len() int {
	return len(history.entries)
}
