package command_test

import (
	"errors"
	"testing"
	"time"

	"github.com/dietlog/dietlog/internal/calc"
	"github.com/dietlog/dietlog/internal/command"
	"github.com/dietlog/dietlog/internal/model"
)

func ptr[T any](v T) *T { return &v }

func birth() time.Time {
	return time.Date(1993, time.June, 15, 0, 0, 0, 0, time.UTC)
}

func TestUpdateProfileCreatesAndUndoRemoves(t *testing.T) {
	t.Parallel()
	_, _, profile := newRepos(t)

	cmd := &command.UpdateProfile{
		Profile: profile,
		Update: command.ProfileUpdate{
			Gender:    ptr(model.GenderFemale),
			HeightCm:  ptr(165.0),
			BirthDate: ptr(birth()),
		},
	}
	if _, err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	p, err := profile.Get()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.Calculator != calc.DefaultStrategy {
		t.Fatalf("calculator = %q, want default %q", p.Calculator, calc.DefaultStrategy)
	}

	if err := cmd.Undo(); err != nil {
		t.Fatalf("undo: %v", err)
	}
	if profile.Exists() {
		t.Fatalf("undo of creation left a profile behind")
	}
}

func TestUpdateProfileCreationRequiresCoreFields(t *testing.T) {
	t.Parallel()
	_, _, profile := newRepos(t)

	cmd := &command.UpdateProfile{
		Profile: profile,
		Update:  command.ProfileUpdate{HeightCm: ptr(165.0)},
	}
	if _, err := cmd.Execute(); err == nil {
		t.Fatalf("expected error when creating without gender and birth date")
	}
}

func TestUpdateProfileEmptyUpdate(t *testing.T) {
	t.Parallel()
	_, _, profile := newRepos(t)

	cmd := &command.UpdateProfile{Profile: profile}
	if _, err := cmd.Execute(); err == nil {
		t.Fatalf("expected error for empty update")
	}
}

func TestUpdateProfilePartialUndoRestoresOnlyTouchedFields(t *testing.T) {
	t.Parallel()
	_, _, profile := newRepos(t)

	if err := profile.Set(model.UserProfile{
		Gender:     model.GenderFemale,
		HeightCm:   165,
		BirthDate:  birth(),
		Calculator: "mifflin_st_jeor",
	}); err != nil {
		t.Fatalf("seed profile: %v", err)
	}

	cmd := &command.UpdateProfile{
		Profile: profile,
		Update:  command.ProfileUpdate{HeightCm: ptr(170.0)},
	}
	if _, err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	// A later change to another field must survive the undo.
	p, _ := profile.Get()
	p.Calculator = "harris_benedict"
	if err := profile.Set(p); err != nil {
		t.Fatalf("change calculator: %v", err)
	}

	if err := cmd.Undo(); err != nil {
		t.Fatalf("undo: %v", err)
	}
	p, err := profile.Get()
	if err != nil {
		t.Fatalf("get after undo: %v", err)
	}
	if p.HeightCm != 165 {
		t.Fatalf("height not restored: %v", p.HeightCm)
	}
	if p.Calculator != "harris_benedict" {
		t.Fatalf("undo clobbered an untouched field: %q", p.Calculator)
	}
}

func TestUpdateDailyProfileUndoRemovesNewRecord(t *testing.T) {
	t.Parallel()
	_, _, profile := newRepos(t)

	if err := profile.Set(model.UserProfile{
		Gender:    model.GenderMale,
		HeightCm:  180,
		BirthDate: birth(),
	}); err != nil {
		t.Fatalf("seed profile: %v", err)
	}

	cmd := &command.UpdateDailyProfile{
		Profile: profile,
		Daily:   model.DailyProfile{Date: "2026-08-27", WeightKg: 80, Activity: model.ActivityLight},
	}
	if _, err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if err := cmd.Undo(); err != nil {
		t.Fatalf("undo: %v", err)
	}

	p, _ := profile.Get()
	if len(p.Daily) != 0 {
		t.Fatalf("undo left daily record: %+v", p.Daily)
	}
}

func TestUpdateDailyProfileUndoRestoresPriorRecord(t *testing.T) {
	t.Parallel()
	_, _, profile := newRepos(t)

	if err := profile.Set(model.UserProfile{
		Gender:    model.GenderMale,
		HeightCm:  180,
		BirthDate: birth(),
	}); err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	if err := profile.UpsertDaily(model.DailyProfile{Date: "2026-08-27", WeightKg: 80, Activity: model.ActivityLight}); err != nil {
		t.Fatalf("seed daily: %v", err)
	}

	cmd := &command.UpdateDailyProfile{
		Profile: profile,
		Daily:   model.DailyProfile{Date: "2026-08-27", WeightKg: 79, Activity: model.ActivityModerate},
	}
	if _, err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if err := cmd.Undo(); err != nil {
		t.Fatalf("undo: %v", err)
	}

	p, _ := profile.Get()
	d, ok := p.DailyFor("2026-08-27")
	if !ok || d.WeightKg != 80 || d.Activity != model.ActivityLight {
		t.Fatalf("prior daily record not restored: %+v (ok=%v)", d, ok)
	}
}

func TestUpdateDailyProfileRequiresProfile(t *testing.T) {
	t.Parallel()
	_, _, profile := newRepos(t)

	cmd := &command.UpdateDailyProfile{
		Profile: profile,
		Daily:   model.DailyProfile{Date: "2026-08-27", WeightKg: 80, Activity: model.ActivityLight},
	}
	if _, err := cmd.Execute(); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
