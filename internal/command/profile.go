package command

import (
	"fmt"
	"strings"
	"time"

	"github.com/dietlog/dietlog/internal/calc"
	"github.com/dietlog/dietlog/internal/model"
	"github.com/dietlog/dietlog/internal/repository"
)

// ProfileUpdate names the user-profile fields to change. Nil fields are
// left alone, which keeps each update minimal and lets undo restore exactly
// the fields that were touched.
type ProfileUpdate struct {
	Gender     *model.Gender
	HeightCm   *float64
	BirthDate  *time.Time
	Calculator *string
}

func (u ProfileUpdate) empty() bool {
	return u.Gender == nil && u.HeightCm == nil && u.BirthDate == nil && u.Calculator == nil
}

// UpdateProfile applies a partial update to the user profile. When no
// profile exists yet the update must carry gender, height, and birth date
// and the command creates the profile; undoing that removes it again.
type UpdateProfile struct {
	Profile *repository.Profile
	Update  ProfileUpdate

	created  bool
	prior    ProfileUpdate
	executed bool
}

func (c *UpdateProfile) Execute() (string, error) {
	if c.executed {
		return "", ErrAlreadyRun
	}
	if c.Update.empty() {
		return "", fmt.Errorf("no profile fields to update")
	}

	current, err := c.Profile.Get()
	if err != nil {
		// First-time setup: all core fields are required.
		if c.Update.Gender == nil || c.Update.HeightCm == nil || c.Update.BirthDate == nil {
			return "", fmt.Errorf("no profile exists yet; gender, height, and birth date are all required")
		}
		calculator := c.calculatorOrDefault()
		profile := model.UserProfile{
			Gender:     *c.Update.Gender,
			HeightCm:   *c.Update.HeightCm,
			BirthDate:  *c.Update.BirthDate,
			Calculator: calculator,
		}
		if err := c.Profile.Set(profile); err != nil {
			return "", err
		}
		c.created = true
		c.executed = true
		return "Created user profile", nil
	}

	// Capture prior values of exactly the fields being replaced.
	changed := make([]string, 0, 4)
	next := current.Clone()
	if c.Update.Gender != nil {
		prior := current.Gender
		c.prior.Gender = &prior
		next.Gender = *c.Update.Gender
		changed = append(changed, "gender")
	}
	if c.Update.HeightCm != nil {
		prior := current.HeightCm
		c.prior.HeightCm = &prior
		next.HeightCm = *c.Update.HeightCm
		changed = append(changed, "height")
	}
	if c.Update.BirthDate != nil {
		prior := current.BirthDate
		c.prior.BirthDate = &prior
		next.BirthDate = *c.Update.BirthDate
		changed = append(changed, "birth date")
	}
	if c.Update.Calculator != nil {
		prior := current.Calculator
		c.prior.Calculator = &prior
		next.Calculator = *c.Update.Calculator
		changed = append(changed, "calculator")
	}
	if err := c.Profile.Set(next); err != nil {
		return "", err
	}
	c.executed = true
	return "Updated profile " + strings.Join(changed, ", "), nil
}

func (c *UpdateProfile) Undo() error {
	if !c.executed {
		return ErrNotExecuted
	}
	if c.created {
		if err := c.Profile.Remove(); err != nil {
			return err
		}
		c.executed = false
		return nil
	}
	current, err := c.Profile.Get()
	if err != nil {
		return err
	}
	restored := current.Clone()
	if c.prior.Gender != nil {
		restored.Gender = *c.prior.Gender
	}
	if c.prior.HeightCm != nil {
		restored.HeightCm = *c.prior.HeightCm
	}
	if c.prior.BirthDate != nil {
		restored.BirthDate = *c.prior.BirthDate
	}
	if c.prior.Calculator != nil {
		restored.Calculator = *c.prior.Calculator
	}
	if err := c.Profile.Set(restored); err != nil {
		return err
	}
	c.executed = false
	return nil
}

func (c *UpdateProfile) Description() string {
	return "update user profile"
}

func (c *UpdateProfile) calculatorOrDefault() string {
	if c.Update.Calculator != nil {
		return *c.Update.Calculator
	}
	return calc.DefaultStrategy
}

// UpdateDailyProfile inserts or replaces the weight/activity record for one
// date, capturing the prior record (if any) before executing. Undo restores
// the prior record or removes the date entirely.
type UpdateDailyProfile struct {
	Profile *repository.Profile
	Daily   model.DailyProfile

	prior    *model.DailyProfile
	existed  bool
	executed bool
}

func (c *UpdateDailyProfile) Execute() (string, error) {
	if c.executed {
		return "", ErrAlreadyRun
	}
	current, err := c.Profile.Get()
	if err != nil {
		return "", err
	}
	if prior, ok := current.DailyFor(c.Daily.Date); ok {
		c.prior = &prior
		c.existed = true
	}
	if err := c.Profile.UpsertDaily(c.Daily); err != nil {
		return "", err
	}
	c.executed = true
	return fmt.Sprintf("Recorded %s kg, %s activity for %s", trimFloat(c.Daily.WeightKg), c.Daily.Activity, c.Daily.Date), nil
}

func (c *UpdateDailyProfile) Undo() error {
	if !c.executed {
		return ErrNotExecuted
	}
	if c.existed {
		if err := c.Profile.UpsertDaily(*c.prior); err != nil {
			return err
		}
	} else if err := c.Profile.RemoveDaily(c.Daily.Date); err != nil {
		return err
	}
	c.executed = false
	return nil
}

func (c *UpdateDailyProfile) Description() string {
	return fmt.Sprintf("update daily profile for %s", c.Daily.Date)
}
