package command_test

import (
	"errors"
	"testing"

	"github.com/dietlog/dietlog/internal/command"
	"github.com/dietlog/dietlog/internal/model"
)

const logDate = "2026-08-27"

func TestAddLogEntryExecuteAndUndo(t *testing.T) {
	t.Parallel()
	foods, logs, _ := newRepos(t)

	mustAddFood(t, foods, model.NewBasic("apple", "Apple", nil, 52))
	mustAddFood(t, foods, model.NewBasic("banana", "Banana", nil, 105))

	first := &command.AddLogEntry{Foods: foods, Logs: logs, Date: logDate, Entry: model.NewLogEntry("apple", 1)}
	if _, err := first.Execute(); err != nil {
		t.Fatalf("execute first: %v", err)
	}
	second := &command.AddLogEntry{Foods: foods, Logs: logs, Date: logDate, Entry: model.NewLogEntry("banana", 1.5)}
	if _, err := second.Execute(); err != nil {
		t.Fatalf("execute second: %v", err)
	}

	if err := second.Undo(); err != nil {
		t.Fatalf("undo second: %v", err)
	}
	entries := logs.Entries(logDate)
	if len(entries) != 1 || entries[0].FoodID != "apple" {
		t.Fatalf("undo removed wrong entry: %+v", entries)
	}
}

func TestAddLogEntryUnknownFood(t *testing.T) {
	t.Parallel()
	foods, logs, _ := newRepos(t)

	cmd := &command.AddLogEntry{Foods: foods, Logs: logs, Date: logDate, Entry: model.NewLogEntry("ghost", 1)}
	if _, err := cmd.Execute(); !errors.Is(err, model.ErrUnknownFood) {
		t.Fatalf("expected ErrUnknownFood, got %v", err)
	}
	if len(logs.Entries(logDate)) != 0 {
		t.Fatalf("failed execute touched the log")
	}
}

func TestDeleteLogEntryUndoRestoresPosition(t *testing.T) {
	t.Parallel()
	foods, logs, _ := newRepos(t)

	for _, food := range []string{"apple", "banana", "cheese"} {
		mustAddFood(t, foods, model.NewBasic(food, food, nil, 100))
		if _, err := logs.Append(logDate, model.NewLogEntry(food, 1)); err != nil {
			t.Fatalf("append %s: %v", food, err)
		}
	}

	cmd := &command.DeleteLogEntry{Logs: logs, Date: logDate, Index: 1}
	if _, err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	entries := logs.Entries(logDate)
	if len(entries) != 2 || entries[1].FoodID != "cheese" {
		t.Fatalf("delete left wrong entries: %+v", entries)
	}

	if err := cmd.Undo(); err != nil {
		t.Fatalf("undo: %v", err)
	}
	entries = logs.Entries(logDate)
	if len(entries) != 3 || entries[1].FoodID != "banana" {
		t.Fatalf("undo did not restore position 1: %+v", entries)
	}
}

func TestDeleteLogEntryOutOfRange(t *testing.T) {
	t.Parallel()
	_, logs, _ := newRepos(t)

	cmd := &command.DeleteLogEntry{Logs: logs, Date: logDate, Index: 3}
	if _, err := cmd.Execute(); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
