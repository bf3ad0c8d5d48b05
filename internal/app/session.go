package app

import (
	"fmt"
	"time"

	"github.com/dietlog/dietlog/internal/command"
	"github.com/dietlog/dietlog/internal/model"
	"github.com/dietlog/dietlog/internal/repository"
	"github.com/dietlog/dietlog/internal/source"
	"github.com/dietlog/dietlog/internal/store"
)

// Session wires one user's repositories, undo history, and working date
// together. A one-shot CLI invocation opens a session for a single command;
// the interactive shell keeps one session alive so the undo stack spans
// commands. The working date scopes log and daily-profile operations and is
// explicit session state, never a process global.
type Session struct {
	Config      Config
	Store       store.Store
	Foods       *repository.Foods
	Logs        *repository.Logs
	Profile     *repository.Profile
	Manager     *command.Manager
	Sources     *source.Registry
	WorkingDate string
}

// Open builds the configured store, loads all three repositories, and
// starts an empty undo history. The working date defaults to today.
func Open(cfg Config) (*Session, error) {
	var (
		st  store.Store
		err error
	)
	switch cfg.Backend {
	case store.BackendSQLite:
		st, err = store.OpenSQLite(DBPath(cfg.DataDir))
		if err != nil {
			return nil, err
		}
	case store.BackendTextFile:
		st = store.NewTextFile(cfg.DataDir)
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}

	s := &Session{
		Config:      cfg,
		Store:       st,
		Foods:       repository.NewFoods(st),
		Logs:        repository.NewLogs(st),
		Profile:     repository.NewProfile(st),
		Manager:     command.NewManager(cfg.UndoDepth),
		WorkingDate: time.Now().Format(model.DateFormat),
	}
	s.Sources = source.NewRegistry(s.Foods)

	if err := s.Foods.Load(); err != nil {
		st.Close()
		return nil, fmt.Errorf("load foods: %w", err)
	}
	if err := s.Logs.Load(); err != nil {
		st.Close()
		return nil, fmt.Errorf("load logs: %w", err)
	}
	if err := s.Profile.Load(); err != nil {
		st.Close()
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return s, nil
}

// SetWorkingDate validates and sets the session's working date.
func (s *Session) SetWorkingDate(date string) error {
	if _, err := time.Parse(model.DateFormat, date); err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}
	s.WorkingDate = date
	return nil
}

// Save persists all three repositories. Best effort: the first failure is
// returned, later stores are still attempted.
func (s *Session) Save() error {
	var firstErr error
	for _, save := range []func() error{s.Foods.Save, s.Logs.Save, s.Profile.Save} {
		if err := save(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Close releases the backing store.
func (s *Session) Close() error {
	return s.Store.Close()
}
