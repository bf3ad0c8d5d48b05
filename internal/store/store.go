// Package store persists the food database, daily logs, and user profile.
// Two backends implement the same contract: a line-oriented text store and
// a sqlite store. Loads are deterministic (file or rowid order) and saves
// rewrite the full collection, so a load after a save round-trips exactly.
package store

import "github.com/dietlog/dietlog/internal/model"

// Backend names accepted in configuration.
const (
	BackendTextFile = "textfile"
	BackendSQLite   = "sqlite"
)

// Store is the persistence contract the repositories load from and save to.
// LoadProfile returns nil without error when no profile has been saved yet.
type Store interface {
	LoadFoods() ([]model.Food, error)
	SaveFoods(foods []model.Food) error
	LoadLogs() ([]model.DailyLog, error)
	SaveLogs(days []model.DailyLog) error
	LoadProfile() (*model.UserProfile, error)
	SaveProfile(profile *model.UserProfile) error
	Close() error
}
