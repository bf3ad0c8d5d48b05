// Package source is the extension seam for food lookup providers. The
// built-in local source answers from the food repository; additional
// sources register under their own names.
package source

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dietlog/dietlog/internal/model"
	"github.com/dietlog/dietlog/internal/repository"
)

var ErrUnknownSource = errors.New("unknown food source")

// Source resolves foods by id and free-text query.
type Source interface {
	Name() string
	Description() string
	FoodByID(id string) (model.Food, bool)
	Search(query string) []model.Food
}

// Registry maps source names to implementations.
type Registry struct {
	sources map[string]Source
}

// NewRegistry builds a registry with the local source pre-registered.
func NewRegistry(foods *repository.Foods) *Registry {
	r := &Registry{sources: make(map[string]Source)}
	r.Register(&Local{foods: foods})
	return r
}

func (r *Registry) Register(s Source) {
	r.sources[s.Name()] = s
}

func (r *Registry) Get(name string) (Source, error) {
	s, ok := r.sources[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, name)
	}
	return s, nil
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.sources))
	for name := range r.sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Local answers lookups from the in-memory food repository, matching the
// query against ids, names, and keywords.
type Local struct {
	foods *repository.Foods
}

func (l *Local) Name() string        { return "local" }
func (l *Local) Description() string { return "Local food database" }

func (l *Local) FoodByID(id string) (model.Food, bool) {
	f, err := l.foods.Get(id)
	if err != nil {
		return model.Food{}, false
	}
	return f, true
}

func (l *Local) Search(query string) []model.Food {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	out := make([]model.Food, 0)
	for _, f := range l.foods.All() {
		if strings.Contains(strings.ToLower(f.ID), query) || strings.Contains(strings.ToLower(f.Name), query) {
			out = append(out, f)
			continue
		}
		for _, k := range f.Keywords {
			if strings.Contains(k, query) {
				out = append(out, f)
				break
			}
		}
	}
	return out
}
