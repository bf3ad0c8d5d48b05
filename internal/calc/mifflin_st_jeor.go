package calc

import "github.com/dietlog/dietlog/internal/model"

func init() { register(mifflinStJeor{}) }

// mifflinStJeor implements the Mifflin-St Jeor equation.
type mifflinStJeor struct{}

func (mifflinStJeor) Name() string        { return "mifflin_st_jeor" }
func (mifflinStJeor) Description() string { return "Mifflin-St Jeor Equation" }

func (mifflinStJeor) BMR(gender model.Gender, weightKg, heightCm float64, ageYears int) (float64, error) {
	if err := validateInputs(weightKg, heightCm, ageYears); err != nil {
		return 0, err
	}
	base := 10*weightKg + 6.25*heightCm - 5*float64(ageYears)
	return forGender(gender,
		func() float64 { return base + 5 },
		func() float64 { return base - 161 },
	), nil
}
