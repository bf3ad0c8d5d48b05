package repository_test

import (
	"errors"
	"testing"
	"time"

	"github.com/dietlog/dietlog/internal/model"
)

func validProfile() model.UserProfile {
	return model.UserProfile{
		Gender:     model.GenderFemale,
		HeightCm:   165,
		BirthDate:  time.Date(1993, time.June, 15, 0, 0, 0, 0, time.UTC),
		Calculator: "mifflin_st_jeor",
	}
}

func TestProfileGetBeforeSetup(t *testing.T) {
	t.Parallel()
	profile := newProfile(t)

	if profile.Exists() {
		t.Fatalf("fresh repository should have no profile")
	}
	if _, err := profile.Get(); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProfileSetValidation(t *testing.T) {
	t.Parallel()
	profile := newProfile(t)

	p := validProfile()
	p.HeightCm = 0
	if err := profile.Set(p); err == nil {
		t.Fatalf("expected error for zero height")
	}

	p = validProfile()
	p.BirthDate = time.Time{}
	if err := profile.Set(p); err == nil {
		t.Fatalf("expected error for missing birth date")
	}

	p = validProfile()
	p.Gender = "robot"
	if err := profile.Set(p); err == nil {
		t.Fatalf("expected error for invalid gender")
	}

	if err := profile.Set(validProfile()); err != nil {
		t.Fatalf("valid profile rejected: %v", err)
	}
	if !profile.Exists() {
		t.Fatalf("profile should exist after Set")
	}
}

func TestUpsertDailyRequiresProfile(t *testing.T) {
	t.Parallel()
	profile := newProfile(t)

	err := profile.UpsertDaily(model.DailyProfile{Date: "2026-08-27", WeightKg: 62.5, Activity: model.ActivityModerate})
	if !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpsertDailyReplacesSameDate(t *testing.T) {
	t.Parallel()
	profile := newProfile(t)

	if err := profile.Set(validProfile()); err != nil {
		t.Fatalf("set profile: %v", err)
	}
	if err := profile.UpsertDaily(model.DailyProfile{Date: "2026-08-27", WeightKg: 62.5, Activity: model.ActivityModerate}); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if err := profile.UpsertDaily(model.DailyProfile{Date: "2026-08-27", WeightKg: 62.0, Activity: model.ActivityLight}); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	p, err := profile.Get()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(p.Daily) != 1 {
		t.Fatalf("expected one daily record, got %+v", p.Daily)
	}
	if p.Daily[0].WeightKg != 62.0 || p.Daily[0].Activity != model.ActivityLight {
		t.Fatalf("second upsert did not replace: %+v", p.Daily[0])
	}
}

func TestRemoveDaily(t *testing.T) {
	t.Parallel()
	profile := newProfile(t)

	if err := profile.Set(validProfile()); err != nil {
		t.Fatalf("set profile: %v", err)
	}
	if err := profile.UpsertDaily(model.DailyProfile{Date: "2026-08-27", WeightKg: 62.5, Activity: model.ActivityModerate}); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := profile.RemoveDaily("2026-08-27"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := profile.RemoveDaily("2026-08-27"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("second remove: expected ErrNotFound, got %v", err)
	}
}

func TestProfileSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()
	profile := newProfile(t)

	if err := profile.Set(validProfile()); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := profile.UpsertDaily(model.DailyProfile{Date: "2026-08-27", WeightKg: 62.5, Activity: model.ActivityModerate}); err != nil {
		t.Fatalf("upsert daily: %v", err)
	}
	if err := profile.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := profile.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}

	p, err := profile.Get()
	if err != nil {
		t.Fatalf("get after load: %v", err)
	}
	if p.Gender != model.GenderFemale || p.HeightCm != 165 || p.Calculator != "mifflin_st_jeor" {
		t.Fatalf("profile fields lost in round trip: %+v", p)
	}
	if len(p.Daily) != 1 || p.Daily[0].WeightKg != 62.5 {
		t.Fatalf("daily records lost in round trip: %+v", p.Daily)
	}
}
