package calc_test

import (
	"errors"
	"math"
	"testing"

	"github.com/dietlog/dietlog/internal/calc"
	"github.com/dietlog/dietlog/internal/model"
)

func mustLookup(t *testing.T, name string) calc.Calculator {
	t.Helper()
	c, err := calc.Lookup(name)
	if err != nil {
		t.Fatalf("lookup %s: %v", name, err)
	}
	return c
}

func approx(got, want float64) bool {
	return math.Abs(got-want) < 1e-9
}

func TestHarrisBenedictValues(t *testing.T) {
	t.Parallel()
	c := mustLookup(t, "harris_benedict")

	male, err := c.BMR(model.GenderMale, 80, 180, 30)
	if err != nil {
		t.Fatalf("male: %v", err)
	}
	if want := 88.362 + 13.397*80 + 4.799*180 - 5.677*30; !approx(male, want) {
		t.Fatalf("male BMR = %v, want %v", male, want)
	}

	female, err := c.BMR(model.GenderFemale, 62.5, 165, 33)
	if err != nil {
		t.Fatalf("female: %v", err)
	}
	if want := 447.593 + 9.247*62.5 + 3.098*165 - 4.330*33; !approx(female, want) {
		t.Fatalf("female BMR = %v, want %v", female, want)
	}
}

func TestMifflinStJeorValues(t *testing.T) {
	t.Parallel()
	c := mustLookup(t, "mifflin_st_jeor")

	female, err := c.BMR(model.GenderFemale, 62.5, 165, 33)
	if err != nil {
		t.Fatalf("female: %v", err)
	}
	if !approx(female, 1330.25) {
		t.Fatalf("female BMR = %v, want 1330.25", female)
	}

	male, err := c.BMR(model.GenderMale, 80, 180, 30)
	if err != nil {
		t.Fatalf("male: %v", err)
	}
	if !approx(male, 1780) {
		t.Fatalf("male BMR = %v, want 1780", male)
	}
}

func TestGenderOtherAveragesFormulas(t *testing.T) {
	t.Parallel()

	for _, name := range calc.Names() {
		c := mustLookup(t, name)
		male, err := c.BMR(model.GenderMale, 70, 170, 40)
		if err != nil {
			t.Fatalf("%s male: %v", name, err)
		}
		female, err := c.BMR(model.GenderFemale, 70, 170, 40)
		if err != nil {
			t.Fatalf("%s female: %v", name, err)
		}
		other, err := c.BMR(model.GenderOther, 70, 170, 40)
		if err != nil {
			t.Fatalf("%s other: %v", name, err)
		}
		if !approx(other, (male+female)/2) {
			t.Fatalf("%s other BMR = %v, want mean of %v and %v", name, other, male, female)
		}
	}
}

func TestInvalidInputs(t *testing.T) {
	t.Parallel()
	c := mustLookup(t, calc.DefaultStrategy)

	cases := []struct {
		name     string
		weightKg float64
		heightCm float64
		age      int
	}{
		{"zero weight", 0, 170, 30},
		{"negative height", 70, -1, 30},
		{"zero age", 70, 170, 0},
	}
	for _, tc := range cases {
		if _, err := c.BMR(model.GenderMale, tc.weightKg, tc.heightCm, tc.age); !errors.Is(err, calc.ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
	}
}

func TestLookupUnknownStrategy(t *testing.T) {
	t.Parallel()
	if _, err := calc.Lookup("tarot"); !errors.Is(err, calc.ErrUnknownStrategy) {
		t.Fatalf("expected ErrUnknownStrategy, got %v", err)
	}
}

func TestNamesSortedAndComplete(t *testing.T) {
	t.Parallel()
	names := calc.Names()
	if len(names) != 2 || names[0] != "harris_benedict" || names[1] != "mifflin_st_jeor" {
		t.Fatalf("unexpected strategy names: %v", names)
	}
}
