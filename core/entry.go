package core

import (
	"time"
)

// Entry is one accepted log call as seen by a formatter.
type Entry struct {
	Time   time.Time
	Logger string
	Level  string
	Args   []any
}

// NewEntry builds an Entry stamped with the current time. When the coarse
// clock is running its cached value is used instead of time.Now.
func NewEntry(name, level string, args []any) Entry {
	return Entry{
		Time:   Now(),
		Logger: name,
		Level:  level,
		Args:   args,
	}
}
