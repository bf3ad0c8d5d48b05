package repository

import (
	"fmt"
	"sort"

	"github.com/dietlog/dietlog/internal/model"
	"github.com/dietlog/dietlog/internal/store"
)

// Logs holds one DailyLog per calendar date. Entry order within a day is
// insertion order; indexes shown to the user are positions in that order.
type Logs struct {
	store store.Store
	days  map[string]model.DailyLog
}

func NewLogs(s store.Store) *Logs {
	return &Logs{
		store: s,
		days:  make(map[string]model.DailyLog),
	}
}

func (r *Logs) Load() error {
	days, err := r.store.LoadLogs()
	if err != nil {
		return err
	}
	r.days = make(map[string]model.DailyLog, len(days))
	for _, day := range days {
		r.days[day.Date] = day
	}
	return nil
}

// Save writes every day to the store, sorted by date for determinism.
func (r *Logs) Save() error {
	return r.store.SaveLogs(r.All())
}

// Get returns the log for a date. A date with no entries is ErrNotFound.
func (r *Logs) Get(date string) (model.DailyLog, error) {
	day, ok := r.days[date]
	if !ok {
		return model.DailyLog{}, fmt.Errorf("log for %s: %w", date, model.ErrNotFound)
	}
	return day.Clone(), nil
}

// Entries returns the ordered entries for a date; empty when none exist.
func (r *Logs) Entries(date string) []model.LogEntry {
	return append([]model.LogEntry(nil), r.days[date].Entries...)
}

// All returns every daily log sorted by date.
func (r *Logs) All() []model.DailyLog {
	dates := make([]string, 0, len(r.days))
	for date := range r.days {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	out := make([]model.DailyLog, 0, len(dates))
	for _, date := range dates {
		out = append(out, r.days[date].Clone())
	}
	return out
}

// Upsert replaces the whole log for a date.
func (r *Logs) Upsert(day model.DailyLog) error {
	for _, e := range day.Entries {
		if e.Servings <= 0 {
			return fmt.Errorf("entry %s on %s: %w", e.FoodID, day.Date, model.ErrInvalidServings)
		}
	}
	r.days[day.Date] = day.Clone()
	return nil
}

// Remove drops the whole log for a date.
func (r *Logs) Remove(date string) error {
	if _, ok := r.days[date]; !ok {
		return fmt.Errorf("log for %s: %w", date, model.ErrNotFound)
	}
	delete(r.days, date)
	return nil
}

// Append adds an entry at the end of the date's log and returns its index.
func (r *Logs) Append(date string, e model.LogEntry) (int, error) {
	if e.Servings <= 0 {
		return 0, fmt.Errorf("entry %s on %s: %w", e.FoodID, date, model.ErrInvalidServings)
	}
	day, ok := r.days[date]
	if !ok {
		day = model.DailyLog{Date: date}
	}
	day.Entries = append(day.Entries, e)
	r.days[date] = day
	return len(day.Entries) - 1, nil
}

// RemoveAt removes and returns the entry at index.
func (r *Logs) RemoveAt(date string, index int) (model.LogEntry, error) {
	day, ok := r.days[date]
	if !ok || index < 0 || index >= len(day.Entries) {
		return model.LogEntry{}, fmt.Errorf("entry %d on %s: %w", index, date, model.ErrNotFound)
	}
	removed := day.Entries[index]
	day.Entries = append(day.Entries[:index], day.Entries[index+1:]...)
	if len(day.Entries) == 0 {
		delete(r.days, date)
	} else {
		r.days[date] = day
	}
	return removed, nil
}

// InsertAt re-inserts an entry at its original index, shifting later
// entries right. index may equal the current length (append position).
func (r *Logs) InsertAt(date string, index int, e model.LogEntry) error {
	day, ok := r.days[date]
	if !ok {
		day = model.DailyLog{Date: date}
	}
	if index < 0 || index > len(day.Entries) {
		return fmt.Errorf("insert at %d on %s: index out of range", index, date)
	}
	day.Entries = append(day.Entries, model.LogEntry{})
	copy(day.Entries[index+1:], day.Entries[index:])
	day.Entries[index] = e
	r.days[date] = day
	return nil
}

// TotalCalories sums servings x resolved calories over the date's entries.
// Resolution happens at query time, so edits to a food's composition
// retroactively change historical totals.
func (r *Logs) TotalCalories(date string, resolve func(foodID string) (float64, error)) (float64, error) {
	total := 0.0
	for _, e := range r.days[date].Entries {
		calories, err := resolve(e.FoodID)
		if err != nil {
			return 0, err
		}
		total += calories * e.Servings
	}
	return total, nil
}
