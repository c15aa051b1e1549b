package model

import "time"

// Entry is a lap recorded in the history.
type Entry struct {
	Elapsed time.Duration
}

// NewEntry snapshots the elapsed time of a lap.
func NewEntry(elapsed time.Duration) Entry {
	return Entry{Elapsed: elapsed}
}

func (entry Entry) String() string {
	return FormatElapsed(entry.Elapsed)
}
