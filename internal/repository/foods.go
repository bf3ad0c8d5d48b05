// Package repository holds the authoritative in-memory collections for
// foods, daily logs, and the user profile. All reads and writes go through
// a repository; command objects capture only the data they need to reverse
// themselves, never live references into a repository.
package repository

import (
	"fmt"
	"iter"

	"github.com/dietlog/dietlog/internal/model"
	"github.com/dietlog/dietlog/internal/store"
)

// Foods is the food database: an arena of foods keyed by id, with insertion
// order preserved for deterministic listing and saving.
type Foods struct {
	store store.Store
	foods map[string]model.Food
	order []string
}

func NewFoods(s store.Store) *Foods {
	return &Foods{
		store: s,
		foods: make(map[string]model.Food),
	}
}

// Load replaces the in-memory collection with the store's contents.
func (r *Foods) Load() error {
	foods, err := r.store.LoadFoods()
	if err != nil {
		return err
	}
	r.foods = make(map[string]model.Food, len(foods))
	r.order = r.order[:0]
	for _, f := range foods {
		if _, ok := r.foods[f.ID]; !ok {
			r.order = append(r.order, f.ID)
		}
		r.foods[f.ID] = f
	}
	return nil
}

// Save writes the full collection to the store in insertion order.
func (r *Foods) Save() error {
	return r.store.SaveFoods(r.All())
}

func (r *Foods) Get(id string) (model.Food, error) {
	f, ok := r.foods[id]
	if !ok {
		return model.Food{}, fmt.Errorf("food %q: %w", id, model.ErrNotFound)
	}
	return f.Clone(), nil
}

func (r *Foods) Exists(id string) bool {
	_, ok := r.foods[id]
	return ok
}

// All returns the collection in insertion order. Entries are clones.
func (r *Foods) All() []model.Food {
	out := make([]model.Food, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.foods[id].Clone())
	}
	return out
}

// Add inserts a new food, rejecting duplicate ids.
func (r *Foods) Add(f model.Food) error {
	if _, ok := r.foods[f.ID]; ok {
		return fmt.Errorf("food %q: %w", f.ID, model.ErrDuplicateFood)
	}
	return r.Upsert(f)
}

// Upsert inserts or replaces a food. Replace semantics never fail on a
// duplicate id, but the entity must satisfy the model invariants: valid
// fields, existing components, and no cycle through the component graph.
func (r *Foods) Upsert(f model.Food) error {
	f = f.Clone()
	if err := f.Validate(); err != nil {
		return err
	}
	for _, c := range f.Components {
		if _, ok := r.foods[c.FoodID]; !ok && c.FoodID != f.ID {
			return fmt.Errorf("component %q of %q: %w", c.FoodID, f.ID, model.ErrUnknownFood)
		}
		if r.wouldCycle(f.ID, c.FoodID) {
			return fmt.Errorf("adding %q to %q: %w", c.FoodID, f.ID, model.ErrCycleWouldForm)
		}
	}
	if _, ok := r.foods[f.ID]; !ok {
		r.order = append(r.order, f.ID)
	}
	r.foods[f.ID] = f
	return nil
}

func (r *Foods) Remove(id string) error {
	if _, ok := r.foods[id]; !ok {
		return fmt.Errorf("food %q: %w", id, model.ErrNotFound)
	}
	delete(r.foods, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// ResolveCalories computes calories per serving for any food: the stored
// value for basic foods, the recursive weighted sum over components for
// composites. The visited-path guard catches cycles defensively even though
// mutation paths refuse to create them.
func (r *Foods) ResolveCalories(id string) (float64, error) {
	return r.resolveCalories(id, make(map[string]bool))
}

func (r *Foods) resolveCalories(id string, path map[string]bool) (float64, error) {
	f, ok := r.foods[id]
	if !ok {
		return 0, fmt.Errorf("resolve calories of %q: %w", id, model.ErrUnknownFood)
	}
	if f.Kind == model.KindBasic {
		return f.Calories, nil
	}
	if path[id] {
		return 0, fmt.Errorf("resolve calories of %q: %w", id, model.ErrCycleDetected)
	}
	path[id] = true
	defer delete(path, id)

	total := 0.0
	for _, c := range f.Components {
		calories, err := r.resolveCalories(c.FoodID, path)
		if err != nil {
			return 0, err
		}
		total += calories * c.Servings
	}
	return total, nil
}

// AddComponent appends (componentID, servings) to an existing composite.
// Fails when either food is absent, servings is not positive, the target is
// not a composite, or the component (directly or transitively) contains the
// composite.
func (r *Foods) AddComponent(compositeID, componentID string, servings float64) error {
	composite, ok := r.foods[compositeID]
	if !ok {
		return fmt.Errorf("composite %q: %w", compositeID, model.ErrUnknownFood)
	}
	if _, ok := r.foods[componentID]; !ok {
		return fmt.Errorf("component %q: %w", componentID, model.ErrUnknownFood)
	}
	if composite.Kind != model.KindComposite {
		return fmt.Errorf("food %q is not a composite", compositeID)
	}
	if servings <= 0 {
		return fmt.Errorf("component %q of %q: %w", componentID, compositeID, model.ErrInvalidServings)
	}
	if r.wouldCycle(compositeID, componentID) {
		return fmt.Errorf("adding %q to %q: %w", componentID, compositeID, model.ErrCycleWouldForm)
	}
	composite.Components = append(composite.Components, model.Component{FoodID: componentID, Servings: servings})
	r.foods[compositeID] = composite
	return nil
}

// RemoveLastComponent drops the most recently added component from a
// composite. It is the reverse of AddComponent.
func (r *Foods) RemoveLastComponent(compositeID string) error {
	composite, ok := r.foods[compositeID]
	if !ok {
		return fmt.Errorf("composite %q: %w", compositeID, model.ErrUnknownFood)
	}
	if len(composite.Components) == 0 {
		return fmt.Errorf("composite %q has no components", compositeID)
	}
	composite.Components = composite.Components[:len(composite.Components)-1]
	r.foods[compositeID] = composite
	return nil
}

// wouldCycle reports whether making componentID a component of compositeID
// would create a cycle: either they are the same food, or compositeID is
// reachable from componentID through the existing component graph.
func (r *Foods) wouldCycle(compositeID, componentID string) bool {
	if compositeID == componentID {
		return true
	}
	seen := make(map[string]bool)
	var reaches func(from string) bool
	reaches = func(from string) bool {
		if seen[from] {
			return false
		}
		seen[from] = true
		f, ok := r.foods[from]
		if !ok {
			return false
		}
		for _, c := range f.Components {
			if c.FoodID == compositeID || reaches(c.FoodID) {
				return true
			}
		}
		return false
	}
	return reaches(componentID)
}

// Dependents returns the ids of foods that reference id as a direct
// component, in insertion order.
func (r *Foods) Dependents(id string) []string {
	out := make([]string, 0)
	for _, fid := range r.order {
		for _, c := range r.foods[fid].Components {
			if c.FoodID == id {
				out = append(out, fid)
				break
			}
		}
	}
	return out
}

// Search returns a restartable lazy sequence of the foods whose keyword set
// matches the query under the given mode. Iteration follows insertion order
// and yields clones.
func (r *Foods) Search(keywords []string, mode model.MatchMode) iter.Seq[model.Food] {
	query := model.NormalizeKeywords(keywords)
	return func(yield func(model.Food) bool) {
		for _, id := range r.order {
			f := r.foods[id]
			if !f.MatchesKeywords(query, mode) {
				continue
			}
			if !yield(f.Clone()) {
				return
			}
		}
	}
}
