package calc

import "github.com/dietlog/dietlog/internal/model"

func init() { register(harrisBenedict{}) }

// harrisBenedict implements the revised (1984) Harris-Benedict equation.
type harrisBenedict struct{}

func (harrisBenedict) Name() string        { return "harris_benedict" }
func (harrisBenedict) Description() string { return "Harris-Benedict Equation (Revised 1984)" }

func (harrisBenedict) BMR(gender model.Gender, weightKg, heightCm float64, ageYears int) (float64, error) {
	if err := validateInputs(weightKg, heightCm, ageYears); err != nil {
		return 0, err
	}
	age := float64(ageYears)
	return forGender(gender,
		func() float64 { return 88.362 + 13.397*weightKg + 4.799*heightCm - 5.677*age },
		func() float64 { return 447.593 + 9.247*weightKg + 3.098*heightCm - 4.330*age },
	), nil
}
