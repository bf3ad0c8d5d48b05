package model

import (
	"time"

	"github.com/google/uuid"
)

// DateFormat is the calendar-date layout used across stores, flags, and keys.
const DateFormat = "2006-01-02"

// LogEntry is one consumed food on one calendar date. Servings may be
// fractional but must be positive.
type LogEntry struct {
	ID       string
	FoodID   string
	Servings float64
	LoggedAt time.Time
}

// NewLogEntry stamps a fresh entry with a UUIDv7 id and the current time.
func NewLogEntry(foodID string, servings float64) LogEntry {
	return LogEntry{
		ID:       newEntryID(),
		FoodID:   foodID,
		Servings: servings,
		LoggedAt: time.Now(),
	}
}

func newEntryID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// DailyLog is the ordered consumption record for one date. Insertion order
// is the display and delete-index order.
type DailyLog struct {
	Date    string // DateFormat
	Entries []LogEntry
}

// Clone returns a deep copy of the log.
func (l DailyLog) Clone() DailyLog {
	out := l
	out.Entries = append([]LogEntry(nil), l.Entries...)
	return out
}
