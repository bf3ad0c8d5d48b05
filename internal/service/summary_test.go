package service_test

import (
	"math"
	"testing"
	"time"

	"github.com/dietlog/dietlog/internal/model"
	"github.com/dietlog/dietlog/internal/repository"
	"github.com/dietlog/dietlog/internal/service"
	"github.com/dietlog/dietlog/internal/store"
)

const summaryDate = "2026-08-27"

func newRepos(t *testing.T) (*repository.Foods, *repository.Logs, *repository.Profile) {
	t.Helper()
	s := store.NewTextFile(t.TempDir())
	return repository.NewFoods(s), repository.NewLogs(s), repository.NewProfile(s)
}

func seedFoodsAndLog(t *testing.T, foods *repository.Foods, logs *repository.Logs) {
	t.Helper()
	for _, f := range []model.Food{
		model.NewBasic("apple", "Apple", []string{"fruit"}, 52),
		model.NewBasic("banana", "Banana", []string{"fruit"}, 105),
	} {
		if err := foods.Add(f); err != nil {
			t.Fatalf("add %s: %v", f.ID, err)
		}
	}
	if _, err := logs.Append(summaryDate, model.NewLogEntry("apple", 1)); err != nil {
		t.Fatalf("log apple: %v", err)
	}
	if _, err := logs.Append(summaryDate, model.NewLogEntry("banana", 1.5)); err != nil {
		t.Fatalf("log banana: %v", err)
	}
}

func approx(got, want float64) bool {
	return math.Abs(got-want) < 1e-9
}

func TestDaySummaryWithoutProfile(t *testing.T) {
	t.Parallel()
	foods, logs, profile := newRepos(t)
	seedFoodsAndLog(t, foods, logs)

	status, err := service.DaySummary(foods, logs, profile, summaryDate)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if !approx(status.ConsumedCalories, 209.5) {
		t.Fatalf("consumed = %v, want 209.5", status.ConsumedCalories)
	}
	if status.HasTarget {
		t.Fatalf("expected no target without a profile")
	}
}

func TestDaySummaryWithTarget(t *testing.T) {
	t.Parallel()
	foods, logs, profile := newRepos(t)
	seedFoodsAndLog(t, foods, logs)

	if err := profile.Set(model.UserProfile{
		Gender:     model.GenderFemale,
		HeightCm:   165,
		BirthDate:  time.Date(1993, time.June, 15, 0, 0, 0, 0, time.UTC),
		Calculator: "mifflin_st_jeor",
	}); err != nil {
		t.Fatalf("set profile: %v", err)
	}
	// The daily record predates the summary date; the most recent one
	// on or before the date applies.
	if err := profile.UpsertDaily(model.DailyProfile{
		Date: "2026-08-20", WeightKg: 62.5, Activity: model.ActivityModerate,
	}); err != nil {
		t.Fatalf("daily: %v", err)
	}

	status, err := service.DaySummary(foods, logs, profile, summaryDate)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if !status.HasTarget {
		t.Fatalf("expected a target")
	}
	// Age 33 on 2026-08-27 for a 1993-06-15 birth date.
	if !approx(status.BMR, 1330.25) {
		t.Fatalf("BMR = %v, want 1330.25", status.BMR)
	}
	wantTDEE := 1330.25 * 1.55
	if !approx(status.TargetCalories, wantTDEE) {
		t.Fatalf("target = %v, want %v", status.TargetCalories, wantTDEE)
	}
	if !approx(status.Remaining, wantTDEE-209.5) {
		t.Fatalf("remaining = %v, want %v", status.Remaining, wantTDEE-209.5)
	}
}

func TestTargetForDateFallsBackToDefaultStrategy(t *testing.T) {
	t.Parallel()
	_, _, profile := newRepos(t)

	if err := profile.Set(model.UserProfile{
		Gender:    model.GenderMale,
		HeightCm:  180,
		BirthDate: time.Date(1996, time.August, 27, 0, 0, 0, 0, time.UTC),
	}); err != nil {
		t.Fatalf("set profile: %v", err)
	}
	if err := profile.UpsertDaily(model.DailyProfile{
		Date: summaryDate, WeightKg: 80, Activity: model.ActivitySedentary,
	}); err != nil {
		t.Fatalf("daily: %v", err)
	}

	target, err := service.TargetForDate(profile, summaryDate)
	if err != nil {
		t.Fatalf("target: %v", err)
	}
	if target.Calculator != "harris_benedict" {
		t.Fatalf("calculator = %q, want default harris_benedict", target.Calculator)
	}
	want := 88.362 + 13.397*80 + 4.799*180 - 5.677*30
	if !approx(target.BMR, want) {
		t.Fatalf("BMR = %v, want %v", target.BMR, want)
	}
	if !approx(target.TDEE, want*1.2) {
		t.Fatalf("TDEE = %v, want %v", target.TDEE, want*1.2)
	}
}

func TestTargetForDateNoDailyRecord(t *testing.T) {
	t.Parallel()
	_, _, profile := newRepos(t)

	if err := profile.Set(model.UserProfile{
		Gender:    model.GenderMale,
		HeightCm:  180,
		BirthDate: time.Date(1990, time.January, 2, 0, 0, 0, 0, time.UTC),
	}); err != nil {
		t.Fatalf("set profile: %v", err)
	}
	if _, err := service.TargetForDate(profile, summaryDate); err == nil {
		t.Fatalf("expected error without a daily record")
	}
}
