package repository

import (
	"fmt"
	"sort"

	"github.com/dietlog/dietlog/internal/model"
	"github.com/dietlog/dietlog/internal/store"
)

// Profile holds the single user profile, or nothing before first setup.
type Profile struct {
	store   store.Store
	profile *model.UserProfile
}

func NewProfile(s store.Store) *Profile {
	return &Profile{store: s}
}

func (r *Profile) Load() error {
	p, err := r.store.LoadProfile()
	if err != nil {
		return err
	}
	r.profile = p
	return nil
}

// Save writes the profile with daily entries sorted by date.
func (r *Profile) Save() error {
	if r.profile == nil {
		return r.store.SaveProfile(nil)
	}
	p := r.profile.Clone()
	sort.Slice(p.Daily, func(i, j int) bool { return p.Daily[i].Date < p.Daily[j].Date })
	return r.store.SaveProfile(&p)
}

func (r *Profile) Exists() bool {
	return r.profile != nil
}

// Get returns a copy of the profile, or ErrNotFound before first setup.
func (r *Profile) Get() (model.UserProfile, error) {
	if r.profile == nil {
		return model.UserProfile{}, fmt.Errorf("user profile: %w", model.ErrNotFound)
	}
	return r.profile.Clone(), nil
}

// Set validates and replaces the profile.
func (r *Profile) Set(p model.UserProfile) error {
	if p.HeightCm <= 0 {
		return fmt.Errorf("height must be > 0, got %v", p.HeightCm)
	}
	if p.BirthDate.IsZero() {
		return fmt.Errorf("birth date is required")
	}
	if _, err := model.ParseGender(string(p.Gender)); err != nil {
		return err
	}
	for _, d := range p.Daily {
		if d.WeightKg <= 0 {
			return fmt.Errorf("daily weight for %s must be > 0, got %v", d.Date, d.WeightKg)
		}
	}
	clone := p.Clone()
	r.profile = &clone
	return nil
}

// Remove clears the profile entirely.
func (r *Profile) Remove() error {
	if r.profile == nil {
		return fmt.Errorf("user profile: %w", model.ErrNotFound)
	}
	r.profile = nil
	return nil
}

// UpsertDaily inserts or replaces the daily profile for its date.
func (r *Profile) UpsertDaily(d model.DailyProfile) error {
	if r.profile == nil {
		return fmt.Errorf("user profile: %w", model.ErrNotFound)
	}
	if d.WeightKg <= 0 {
		return fmt.Errorf("weight for %s must be > 0, got %v", d.Date, d.WeightKg)
	}
	if _, err := model.ParseActivityLevel(string(d.Activity)); err != nil {
		return err
	}
	for i, existing := range r.profile.Daily {
		if existing.Date == d.Date {
			r.profile.Daily[i] = d
			return nil
		}
	}
	r.profile.Daily = append(r.profile.Daily, d)
	return nil
}

// RemoveDaily drops the daily profile for a date if present.
func (r *Profile) RemoveDaily(date string) error {
	if r.profile == nil {
		return fmt.Errorf("user profile: %w", model.ErrNotFound)
	}
	for i, d := range r.profile.Daily {
		if d.Date == date {
			r.profile.Daily = append(r.profile.Daily[:i], r.profile.Daily[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("daily profile for %s: %w", date, model.ErrNotFound)
}
