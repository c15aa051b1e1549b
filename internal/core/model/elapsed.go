package model

import (
	"fmt"
	"time"
)

// TimeParts is an elapsed duration split for display.
type TimeParts struct {
	Minutes      int64
	Seconds      int64
	Milliseconds int64
}

// SplitElapsed breaks an elapsed duration into minutes, seconds and milliseconds.
// Sub-millisecond precision is truncated and negative values clamp to zero.
func SplitElapsed(elapsed time.Duration) TimeParts {
	millis := elapsed.Milliseconds()
	if millis < 0 {
		millis = 0
	}
	return TimeParts{
		Minutes:      millis / 60000,
		Seconds:      (millis / 1000) % 60,
		Milliseconds: millis % 1000,
	}
}

// String renders the parts as MM:SS:mmm.
func (parts TimeParts) String() string {
	return fmt.Sprintf("%02d:%02d:%03d", parts.Minutes, parts.Seconds, parts.Milliseconds)
}

// FormatElapsed renders an elapsed duration as MM:SS:mmm.
func FormatElapsed(elapsed time.Duration) string {
	return SplitElapsed(elapsed).String()
}
