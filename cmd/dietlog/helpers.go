package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dietlog/dietlog/internal/model"
)

func parseServingsArg(value string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid servings %q", value)
	}
	if v <= 0 {
		return 0, fmt.Errorf("servings must be > 0")
	}
	return v, nil
}

func parseIndexArg(value string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid entry index %q", value)
	}
	return v, nil
}

func parseDateArg(name, value string) (time.Time, error) {
	t, err := time.Parse(model.DateFormat, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q (expected YYYY-MM-DD)", name, value)
	}
	return t, nil
}

// parseComponentSpec parses an "id:servings" pair.
func parseComponentSpec(raw string) (model.Component, error) {
	id, servingsRaw, ok := strings.Cut(strings.TrimSpace(raw), ":")
	if !ok || strings.TrimSpace(id) == "" {
		return model.Component{}, fmt.Errorf("invalid component %q (expected id:servings)", raw)
	}
	servings, err := parseServingsArg(servingsRaw)
	if err != nil {
		return model.Component{}, fmt.Errorf("component %q: %w", id, err)
	}
	return model.Component{FoodID: strings.TrimSpace(id), Servings: servings}, nil
}

func formatCalories(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
