package model

import (
	"fmt"
	"strings"
)

// Food kinds. A basic food carries a fixed calorie value per serving; a
// composite food derives its calories from its components.
const (
	KindBasic     = "basic"
	KindComposite = "composite"
)

// MatchMode selects how search keywords combine.
type MatchMode int

const (
	MatchAny MatchMode = iota
	MatchAll
)

// Component references another food by id with a serving amount.
type Component struct {
	FoodID   string
	Servings float64
}

// Food is a food database entry. Basic and composite foods share one id
// namespace; composites reference other foods rather than copying them, so
// editing a shared basic food retroactively changes every composite and
// every logged day that uses it.
type Food struct {
	ID         string
	Name       string
	Keywords   []string
	Kind       string
	Calories   float64 // per serving; basic foods only
	Components []Component
}

// NewBasic builds a basic food. Keywords are normalized to lowercase tokens.
func NewBasic(id, name string, keywords []string, calories float64) Food {
	return Food{
		ID:       strings.TrimSpace(id),
		Name:     strings.TrimSpace(name),
		Keywords: NormalizeKeywords(keywords),
		Kind:     KindBasic,
		Calories: calories,
	}
}

// NewComposite builds a composite food from component references.
func NewComposite(id, name string, keywords []string, components []Component) Food {
	return Food{
		ID:         strings.TrimSpace(id),
		Name:       strings.TrimSpace(name),
		Keywords:   NormalizeKeywords(keywords),
		Kind:       KindComposite,
		Components: components,
	}
}

// Validate checks the food's own invariants: non-empty id and name,
// non-negative calories for basic foods, positive servings on every
// component. Graph-level invariants (component existence, acyclicity) are
// the repository's responsibility.
func (f Food) Validate() error {
	if f.ID == "" {
		return fmt.Errorf("food id is required")
	}
	if f.Name == "" {
		return fmt.Errorf("food name is required")
	}
	switch f.Kind {
	case KindBasic:
		if f.Calories < 0 {
			return fmt.Errorf("calories for %q must be >= 0", f.ID)
		}
	case KindComposite:
		for _, c := range f.Components {
			if c.Servings <= 0 {
				return fmt.Errorf("component %q of %q: %w", c.FoodID, f.ID, ErrInvalidServings)
			}
		}
	default:
		return fmt.Errorf("unknown food kind %q", f.Kind)
	}
	return nil
}

// MatchesKeywords reports whether the food's keyword set matches the query
// tokens. MatchAll requires every query token to be present; MatchAny
// requires at least one. Matching is case-insensitive exact-token.
func (f Food) MatchesKeywords(query []string, mode MatchMode) bool {
	if len(query) == 0 {
		return false
	}
	have := make(map[string]bool, len(f.Keywords))
	for _, k := range f.Keywords {
		have[k] = true
	}
	for _, q := range query {
		if have[NormalizeKeyword(q)] {
			if mode == MatchAny {
				return true
			}
		} else if mode == MatchAll {
			return false
		}
	}
	return mode == MatchAll
}

// NormalizeKeyword lowercases and trims a single keyword token.
func NormalizeKeyword(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

// NormalizeKeywords normalizes a keyword list, dropping empties and
// duplicates while preserving first-seen order.
func NormalizeKeywords(keywords []string) []string {
	seen := make(map[string]bool, len(keywords))
	out := make([]string, 0, len(keywords))
	for _, k := range keywords {
		k = NormalizeKeyword(k)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

// Clone returns a deep copy. Commands capture clones so undo payloads never
// alias repository state.
func (f Food) Clone() Food {
	out := f
	out.Keywords = append([]string(nil), f.Keywords...)
	out.Components = append([]Component(nil), f.Components...)
	return out
}
