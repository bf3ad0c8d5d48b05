package command

import (
	"fmt"
	"strings"

	"github.com/dietlog/dietlog/internal/model"
	"github.com/dietlog/dietlog/internal/repository"
)

// AddFood inserts a food into the database. Without Overwrite set, a
// duplicate id is rejected; with it, the prior food is captured and
// restored on undo. Undo refuses to remove a food that other foods now
// depend on as a component.
type AddFood struct {
	Foods     *repository.Foods
	Food      model.Food
	Overwrite bool

	replaced *model.Food
	executed bool
}

func (c *AddFood) Execute() (string, error) {
	if c.executed {
		return "", ErrAlreadyRun
	}
	if prior, err := c.Foods.Get(c.Food.ID); err == nil {
		if !c.Overwrite {
			return "", fmt.Errorf("food %q: %w", c.Food.ID, model.ErrDuplicateFood)
		}
		c.replaced = &prior
	}
	if err := c.Foods.Upsert(c.Food); err != nil {
		return "", err
	}
	c.executed = true
	return fmt.Sprintf("Added %s food %q", c.Food.Kind, c.Food.ID), nil
}

func (c *AddFood) Undo() error {
	if !c.executed {
		return ErrNotExecuted
	}
	if c.replaced != nil {
		if err := c.Foods.Upsert(*c.replaced); err != nil {
			return err
		}
		c.executed = false
		return nil
	}
	if deps := c.Foods.Dependents(c.Food.ID); len(deps) > 0 {
		return fmt.Errorf("%w: %q is a component of %s", ErrUndoBlocked, c.Food.ID, strings.Join(deps, ", "))
	}
	if err := c.Foods.Remove(c.Food.ID); err != nil {
		return err
	}
	c.executed = false
	return nil
}

func (c *AddFood) Description() string {
	return fmt.Sprintf("add food %q", c.Food.ID)
}

// AddComponent appends a component to a composite food. Undo removes the
// component again.
type AddComponent struct {
	Foods       *repository.Foods
	CompositeID string
	ComponentID string
	Servings    float64

	executed bool
}

func (c *AddComponent) Execute() (string, error) {
	if c.executed {
		return "", ErrAlreadyRun
	}
	if err := c.Foods.AddComponent(c.CompositeID, c.ComponentID, c.Servings); err != nil {
		return "", err
	}
	c.executed = true
	return fmt.Sprintf("Added %s x%s to %q", c.ComponentID, trimFloat(c.Servings), c.CompositeID), nil
}

func (c *AddComponent) Undo() error {
	if !c.executed {
		return ErrNotExecuted
	}
	if err := c.Foods.RemoveLastComponent(c.CompositeID); err != nil {
		return err
	}
	c.executed = false
	return nil
}

func (c *AddComponent) Description() string {
	return fmt.Sprintf("add component %q to %q", c.ComponentID, c.CompositeID)
}

func trimFloat(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}
