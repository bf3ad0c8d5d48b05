// Package calc provides the pluggable BMR calculation strategies. Each
// calculator is a pure function of gender, weight, height, and age; TDEE is
// derived elsewhere by applying the activity multiplier.
package calc

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dietlog/dietlog/internal/model"
)

var (
	ErrUnknownStrategy = errors.New("unknown calculation strategy")
	ErrInvalidInput    = errors.New("invalid calculation input")
)

// Calculator computes basal metabolic rate in kcal/day.
type Calculator interface {
	Name() string
	Description() string
	BMR(gender model.Gender, weightKg, heightCm float64, ageYears int) (float64, error)
}

// registry maps strategy names to calculators. Calculators are stateless,
// so shared instances are fine.
var registry = map[string]Calculator{}

// DefaultStrategy is used when a profile does not name one.
const DefaultStrategy = "harris_benedict"

func register(c Calculator) {
	registry[c.Name()] = c
}

// Lookup returns the calculator registered under name.
func Lookup(name string) (Calculator, error) {
	c, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	return c, nil
}

// Names lists the registered strategy names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func validateInputs(weightKg, heightCm float64, ageYears int) error {
	if weightKg <= 0 {
		return fmt.Errorf("%w: weight %v kg", ErrInvalidInput, weightKg)
	}
	if heightCm <= 0 {
		return fmt.Errorf("%w: height %v cm", ErrInvalidInput, heightCm)
	}
	if ageYears <= 0 {
		return fmt.Errorf("%w: age %d years", ErrInvalidInput, ageYears)
	}
	return nil
}

// forGender evaluates the male and female formula variants, averaging the
// two for gender Other.
func forGender(gender model.Gender, male, female func() float64) float64 {
	switch gender {
	case model.GenderMale:
		return male()
	case model.GenderFemale:
		return female()
	default:
		return (male() + female()) / 2
	}
}
