// Package service answers the read-side questions the CLI asks: day totals,
// calorie targets, and remaining budget. It never mutates repository state.
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/dietlog/dietlog/internal/calc"
	"github.com/dietlog/dietlog/internal/model"
	"github.com/dietlog/dietlog/internal/repository"
)

// DayStatus is the status report for one date.
type DayStatus struct {
	Date             string
	ConsumedCalories float64
	HasTarget        bool
	Calculator       string
	BMR              float64
	TargetCalories   float64 // TDEE = BMR x activity multiplier
	Remaining        float64
}

// DaySummary computes consumed calories for the date and, when a profile
// with an applicable daily record exists, the calorie target and remaining
// budget. The daily record used is the one for the date itself or the most
// recent one before it; age is derived from the birth date at the given
// date, never stored.
func DaySummary(foods *repository.Foods, logs *repository.Logs, profile *repository.Profile, date string) (DayStatus, error) {
	status := DayStatus{Date: date}

	consumed, err := logs.TotalCalories(date, foods.ResolveCalories)
	if err != nil {
		return status, fmt.Errorf("total calories for %s: %w", date, err)
	}
	status.ConsumedCalories = consumed

	target, err := TargetForDate(profile, date)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return status, nil
		}
		return status, err
	}
	status.HasTarget = true
	status.Calculator = target.Calculator
	status.BMR = target.BMR
	status.TargetCalories = target.TDEE
	status.Remaining = target.TDEE - consumed
	return status, nil
}

// Target is a computed calorie target for one date.
type Target struct {
	Date       string
	Calculator string
	BMR        float64
	TDEE       float64
	Activity   model.ActivityLevel
	WeightKg   float64
	AgeYears   int
}

// TargetForDate evaluates the profile's selected strategy for the date.
// Returns model.ErrNotFound (wrapped) when no profile is set or no daily
// record exists on or before the date.
func TargetForDate(profile *repository.Profile, date string) (Target, error) {
	p, err := profile.Get()
	if err != nil {
		return Target{}, err
	}
	daily, ok := p.DailyOnOrBefore(date)
	if !ok {
		return Target{}, fmt.Errorf("daily profile on or before %s: %w", date, model.ErrNotFound)
	}
	asOf, err := time.Parse(model.DateFormat, date)
	if err != nil {
		return Target{}, fmt.Errorf("invalid date %q: %w", date, err)
	}

	name := p.Calculator
	if name == "" {
		name = calc.DefaultStrategy
	}
	calculator, err := calc.Lookup(name)
	if err != nil {
		return Target{}, err
	}
	age := p.Age(asOf)
	bmr, err := calculator.BMR(p.Gender, daily.WeightKg, p.HeightCm, age)
	if err != nil {
		return Target{}, err
	}
	return Target{
		Date:       date,
		Calculator: name,
		BMR:        bmr,
		TDEE:       bmr * daily.Activity.Multiplier(),
		Activity:   daily.Activity,
		WeightKg:   daily.WeightKg,
		AgeYears:   age,
	}, nil
}
