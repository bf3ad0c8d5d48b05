package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/dietlog/dietlog/internal/db"
	"github.com/dietlog/dietlog/internal/model"
)

// SQLite persists the collections in a single sqlite database. Each save
// rewrites the affected tables inside one transaction; loads read back in
// stored position order, so round-trips preserve insertion order exactly.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path and applies
// pending migrations.
func OpenSQLite(path string) (*SQLite, error) {
	sqldb, err := db.Open(path)
	if err != nil {
		return nil, err
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		sqldb.Close()
		return nil, err
	}
	return &SQLite{db: sqldb}, nil
}

func (s *SQLite) Close() error { return s.db.Close() }

func (s *SQLite) LoadFoods() ([]model.Food, error) {
	rows, err := s.db.Query(`SELECT id, name, keywords, kind, calories FROM foods ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("load foods: %w", err)
	}
	defer rows.Close()

	foods := make([]model.Food, 0)
	for rows.Next() {
		var f model.Food
		var keywords string
		if err := rows.Scan(&f.ID, &f.Name, &keywords, &f.Kind, &f.Calories); err != nil {
			return nil, fmt.Errorf("scan food: %w", err)
		}
		f.Keywords = splitList(keywords)
		foods = append(foods, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate foods: %w", err)
	}

	for i := range foods {
		if foods[i].Kind != model.KindComposite {
			continue
		}
		components, err := s.loadComponents(foods[i].ID)
		if err != nil {
			return nil, err
		}
		foods[i].Components = components
	}
	return foods, nil
}

func (s *SQLite) loadComponents(foodID string) ([]model.Component, error) {
	rows, err := s.db.Query(`SELECT component_id, servings FROM food_components WHERE food_id = ? ORDER BY position`, foodID)
	if err != nil {
		return nil, fmt.Errorf("load components of %q: %w", foodID, err)
	}
	defer rows.Close()

	components := make([]model.Component, 0)
	for rows.Next() {
		var c model.Component
		if err := rows.Scan(&c.FoodID, &c.Servings); err != nil {
			return nil, fmt.Errorf("scan component of %q: %w", foodID, err)
		}
		components = append(components, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate components of %q: %w", foodID, err)
	}
	return components, nil
}

func (s *SQLite) SaveFoods(foods []model.Food) error {
	return s.inTx("save foods", func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM food_components`); err != nil {
			return err
		}
		if _, err := tx.Exec(`DELETE FROM foods`); err != nil {
			return err
		}
		for i, f := range foods {
			_, err := tx.Exec(`INSERT INTO foods(id, name, keywords, kind, calories, position) VALUES(?, ?, ?, ?, ?, ?)`,
				f.ID, f.Name, strings.Join(f.Keywords, ","), f.Kind, f.Calories, i)
			if err != nil {
				return err
			}
			for j, c := range f.Components {
				_, err := tx.Exec(`INSERT INTO food_components(food_id, position, component_id, servings) VALUES(?, ?, ?, ?)`,
					f.ID, j, c.FoodID, c.Servings)
				if err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func (s *SQLite) LoadLogs() ([]model.DailyLog, error) {
	rows, err := s.db.Query(`SELECT id, date, food_id, servings, logged_at FROM log_entries ORDER BY date, position`)
	if err != nil {
		return nil, fmt.Errorf("load log entries: %w", err)
	}
	defer rows.Close()

	days := make([]model.DailyLog, 0)
	index := make(map[string]int)
	for rows.Next() {
		var e model.LogEntry
		var date, loggedAt string
		if err := rows.Scan(&e.ID, &date, &e.FoodID, &e.Servings, &loggedAt); err != nil {
			return nil, fmt.Errorf("scan log entry: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, loggedAt); err == nil {
			e.LoggedAt = t
		}
		i, ok := index[date]
		if !ok {
			i = len(days)
			index[date] = i
			days = append(days, model.DailyLog{Date: date})
		}
		days[i].Entries = append(days[i].Entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate log entries: %w", err)
	}
	return days, nil
}

func (s *SQLite) SaveLogs(days []model.DailyLog) error {
	return s.inTx("save logs", func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM log_entries`); err != nil {
			return err
		}
		for _, day := range days {
			for i, e := range day.Entries {
				_, err := tx.Exec(`INSERT INTO log_entries(id, date, position, food_id, servings, logged_at) VALUES(?, ?, ?, ?, ?, ?)`,
					e.ID, day.Date, i, e.FoodID, e.Servings, e.LoggedAt.Format(time.RFC3339))
				if err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func (s *SQLite) LoadProfile() (*model.UserProfile, error) {
	var p model.UserProfile
	var gender, birth string
	err := s.db.QueryRow(`SELECT gender, height_cm, birth_date, calculator FROM profile WHERE id = 1`).
		Scan(&gender, &p.HeightCm, &birth, &p.Calculator)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	p.Gender = model.Gender(gender)
	if t, err := time.Parse(model.DateFormat, birth); err == nil {
		p.BirthDate = t
	}

	rows, err := s.db.Query(`SELECT date, weight_kg, activity FROM daily_profiles ORDER BY date`)
	if err != nil {
		return nil, fmt.Errorf("load daily profiles: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var d model.DailyProfile
		var activity string
		if err := rows.Scan(&d.Date, &d.WeightKg, &activity); err != nil {
			return nil, fmt.Errorf("scan daily profile: %w", err)
		}
		d.Activity = model.ActivityLevel(activity)
		p.Daily = append(p.Daily, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate daily profiles: %w", err)
	}
	return &p, nil
}

func (s *SQLite) SaveProfile(profile *model.UserProfile) error {
	return s.inTx("save profile", func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM daily_profiles`); err != nil {
			return err
		}
		if _, err := tx.Exec(`DELETE FROM profile`); err != nil {
			return err
		}
		if profile == nil {
			return nil
		}
		_, err := tx.Exec(`INSERT INTO profile(id, gender, height_cm, birth_date, calculator) VALUES(1, ?, ?, ?, ?)`,
			string(profile.Gender), profile.HeightCm, profile.BirthDate.Format(model.DateFormat), profile.Calculator)
		if err != nil {
			return err
		}
		for _, d := range profile.Daily {
			_, err := tx.Exec(`INSERT INTO daily_profiles(date, weight_kg, activity) VALUES(?, ?, ?)`,
				d.Date, d.WeightKg, string(d.Activity))
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SQLite) inTx(op string, fn func(*sql.Tx) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("%s: begin tx: %w", op, err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit: %w", op, err)
	}
	return nil
}
