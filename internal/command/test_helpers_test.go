package command_test

import (
	"testing"

	"github.com/dietlog/dietlog/internal/model"
	"github.com/dietlog/dietlog/internal/repository"
	"github.com/dietlog/dietlog/internal/store"
)

func newRepos(t *testing.T) (*repository.Foods, *repository.Logs, *repository.Profile) {
	t.Helper()
	s := store.NewTextFile(t.TempDir())
	return repository.NewFoods(s), repository.NewLogs(s), repository.NewProfile(s)
}

func mustAddFood(t *testing.T, foods *repository.Foods, f model.Food) {
	t.Helper()
	if err := foods.Add(f); err != nil {
		t.Fatalf("add %s: %v", f.ID, err)
	}
}
