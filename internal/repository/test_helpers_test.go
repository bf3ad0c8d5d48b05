package repository_test

import (
	"testing"

	"github.com/dietlog/dietlog/internal/model"
	"github.com/dietlog/dietlog/internal/repository"
	"github.com/dietlog/dietlog/internal/store"
)

func newFoods(t *testing.T) *repository.Foods {
	t.Helper()
	return repository.NewFoods(store.NewTextFile(t.TempDir()))
}

func newLogs(t *testing.T) *repository.Logs {
	t.Helper()
	return repository.NewLogs(store.NewTextFile(t.TempDir()))
}

func newProfile(t *testing.T) *repository.Profile {
	t.Helper()
	return repository.NewProfile(store.NewTextFile(t.TempDir()))
}

func mustAdd(t *testing.T, foods *repository.Foods, f model.Food) {
	t.Helper()
	if err := foods.Add(f); err != nil {
		t.Fatalf("add %s: %v", f.ID, err)
	}
}
