package command

import (
	"fmt"

	"github.com/dietlog/dietlog/internal/model"
	"github.com/dietlog/dietlog/internal/repository"
)

// AddLogEntry appends a consumption entry to one date's log. The appended
// index is captured during execute so undo removes exactly that entry.
type AddLogEntry struct {
	Foods *repository.Foods
	Logs  *repository.Logs
	Date  string
	Entry model.LogEntry

	index    int
	executed bool
}

func (c *AddLogEntry) Execute() (string, error) {
	if c.executed {
		return "", ErrAlreadyRun
	}
	if !c.Foods.Exists(c.Entry.FoodID) {
		return "", fmt.Errorf("food %q: %w", c.Entry.FoodID, model.ErrUnknownFood)
	}
	index, err := c.Logs.Append(c.Date, c.Entry)
	if err != nil {
		return "", err
	}
	c.index = index
	c.executed = true
	return fmt.Sprintf("Logged %s x%s on %s (entry %d)", c.Entry.FoodID, trimFloat(c.Entry.Servings), c.Date, index), nil
}

func (c *AddLogEntry) Undo() error {
	if !c.executed {
		return ErrNotExecuted
	}
	if _, err := c.Logs.RemoveAt(c.Date, c.index); err != nil {
		return err
	}
	c.executed = false
	return nil
}

func (c *AddLogEntry) Description() string {
	return fmt.Sprintf("log %s x%s on %s", c.Entry.FoodID, trimFloat(c.Entry.Servings), c.Date)
}

// DeleteLogEntry removes the entry at Index from one date's log, recording
// the removed entry and its position. Undo re-inserts at that exact index,
// not at the end, so the original ordering survives undo.
type DeleteLogEntry struct {
	Logs  *repository.Logs
	Date  string
	Index int

	removed  *model.LogEntry
	executed bool
}

func (c *DeleteLogEntry) Execute() (string, error) {
	if c.executed {
		return "", ErrAlreadyRun
	}
	removed, err := c.Logs.RemoveAt(c.Date, c.Index)
	if err != nil {
		return "", err
	}
	c.removed = &removed
	c.executed = true
	return fmt.Sprintf("Deleted entry %d (%s x%s) on %s", c.Index, removed.FoodID, trimFloat(removed.Servings), c.Date), nil
}

func (c *DeleteLogEntry) Undo() error {
	if !c.executed {
		return ErrNotExecuted
	}
	if c.removed == nil {
		return fmt.Errorf("no removed entry recorded for %s", c.Date)
	}
	if err := c.Logs.InsertAt(c.Date, c.Index, *c.removed); err != nil {
		return err
	}
	c.executed = false
	return nil
}

func (c *DeleteLogEntry) Description() string {
	if c.removed != nil {
		return fmt.Sprintf("delete entry %d (%s) on %s", c.Index, c.removed.FoodID, c.Date)
	}
	return fmt.Sprintf("delete entry %d on %s", c.Index, c.Date)
}
