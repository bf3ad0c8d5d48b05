package model

import (
	"fmt"
	"time"
)

// Gender values recognized by the calorie calculators.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// ParseGender maps user input to a Gender value.
func ParseGender(s string) (Gender, error) {
	switch Gender(NormalizeKeyword(s)) {
	case GenderMale:
		return GenderMale, nil
	case GenderFemale:
		return GenderFemale, nil
	case GenderOther:
		return GenderOther, nil
	}
	return "", fmt.Errorf("invalid gender %q (expected male, female, or other)", s)
}

// ActivityLevel is one of five ordered levels, each with a TDEE multiplier.
type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityVery      ActivityLevel = "very"
	ActivityExtra     ActivityLevel = "extra"
)

// activityMultipliers is the single source of truth for valid activity
// levels and their TDEE multipliers.
var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary: 1.2,
	ActivityLight:     1.375,
	ActivityModerate:  1.55,
	ActivityVery:      1.725,
	ActivityExtra:     1.9,
}

// ParseActivityLevel maps user input to an ActivityLevel.
func ParseActivityLevel(s string) (ActivityLevel, error) {
	level := ActivityLevel(NormalizeKeyword(s))
	if _, ok := activityMultipliers[level]; !ok {
		return "", fmt.Errorf("invalid activity level %q (expected sedentary, light, moderate, very, or extra)", s)
	}
	return level, nil
}

// Multiplier returns the TDEE multiplier for the level, defaulting to
// sedentary for unrecognized values.
func (a ActivityLevel) Multiplier() float64 {
	if m, ok := activityMultipliers[a]; ok {
		return m
	}
	return activityMultipliers[ActivitySedentary]
}

// DailyProfile records weight and activity level for one date.
type DailyProfile struct {
	Date     string // DateFormat
	WeightKg float64
	Activity ActivityLevel
}

// UserProfile holds the stable anthropometric data plus the per-date
// profiles. Age is always derived from the birth date at evaluation time,
// never stored.
type UserProfile struct {
	Gender     Gender
	HeightCm   float64
	BirthDate  time.Time
	Calculator string // calorie calculation strategy name
	Daily      []DailyProfile
}

// Age returns whole years completed as of the given date.
func (p UserProfile) Age(asOf time.Time) int {
	years := asOf.Year() - p.BirthDate.Year()
	if asOf.Before(p.BirthDate.AddDate(years, 0, 0)) {
		years--
	}
	return years
}

// DailyFor returns the exact daily profile for date, if present.
func (p UserProfile) DailyFor(date string) (DailyProfile, bool) {
	for _, d := range p.Daily {
		if d.Date == date {
			return d, true
		}
	}
	return DailyProfile{}, false
}

// DailyOnOrBefore returns the most recent daily profile dated on or before
// date. Daily profiles compare lexically because DateFormat sorts naturally.
func (p UserProfile) DailyOnOrBefore(date string) (DailyProfile, bool) {
	var best DailyProfile
	found := false
	for _, d := range p.Daily {
		if d.Date > date {
			continue
		}
		if !found || d.Date > best.Date {
			best = d
			found = true
		}
	}
	return best, found
}

// Clone returns a deep copy of the profile.
func (p UserProfile) Clone() UserProfile {
	out := p
	out.Daily = append([]DailyProfile(nil), p.Daily...)
	return out
}
