package store

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dietlog/dietlog/internal/model"
)

const (
	foodsFileName   = "foods.txt"
	logsFileName    = "logs.txt"
	profileFileName = "profile.txt"
)

// TextFile is the default backend: three pipe-delimited text files in the
// data directory. The files are human-readable and diff-friendly; malformed
// lines are skipped on load rather than failing the whole file.
//
// Line formats:
//
//	foods.txt    B|id|name|kw1,kw2|calories
//	             C|id|name|kw1,kw2|componentId:servings,...
//	logs.txt     date|entryId|foodId|servings|timestamp
//	profile.txt  PROFILE|gender|heightCm|birthDate|calculator
//	             DAILY|date|weightKg|activity
type TextFile struct {
	dir string
}

// NewTextFile returns a text store rooted at dir. The directory must exist.
func NewTextFile(dir string) *TextFile {
	return &TextFile{dir: dir}
}

func (s *TextFile) Close() error { return nil }

func (s *TextFile) LoadFoods() ([]model.Food, error) {
	lines, err := s.readLines(foodsFileName)
	if err != nil {
		return nil, err
	}
	foods := make([]model.Food, 0, len(lines))
	for _, line := range lines {
		parts := strings.Split(line, "|")
		if len(parts) != 5 {
			continue
		}
		id, name := parts[1], parts[2]
		keywords := splitList(parts[3])
		switch parts[0] {
		case "B":
			calories, err := strconv.ParseFloat(parts[4], 64)
			if err != nil {
				continue
			}
			foods = append(foods, model.NewBasic(id, name, keywords, calories))
		case "C":
			components := make([]model.Component, 0)
			for _, raw := range splitList(parts[4]) {
				compID, servingsRaw, ok := strings.Cut(raw, ":")
				if !ok {
					continue
				}
				servings, err := strconv.ParseFloat(servingsRaw, 64)
				if err != nil {
					continue
				}
				components = append(components, model.Component{FoodID: compID, Servings: servings})
			}
			foods = append(foods, model.NewComposite(id, name, keywords, components))
		}
	}
	return foods, nil
}

func (s *TextFile) SaveFoods(foods []model.Food) error {
	var b strings.Builder
	for _, f := range foods {
		keywords := strings.Join(f.Keywords, ",")
		switch f.Kind {
		case model.KindBasic:
			fmt.Fprintf(&b, "B|%s|%s|%s|%s\n", f.ID, f.Name, keywords, formatFloat(f.Calories))
		case model.KindComposite:
			parts := make([]string, 0, len(f.Components))
			for _, c := range f.Components {
				parts = append(parts, c.FoodID+":"+formatFloat(c.Servings))
			}
			fmt.Fprintf(&b, "C|%s|%s|%s|%s\n", f.ID, f.Name, keywords, strings.Join(parts, ","))
		}
	}
	return s.writeFile(foodsFileName, b.String())
}

func (s *TextFile) LoadLogs() ([]model.DailyLog, error) {
	lines, err := s.readLines(logsFileName)
	if err != nil {
		return nil, err
	}
	byDate := make(map[string]*model.DailyLog)
	order := make([]string, 0)
	for _, line := range lines {
		parts := strings.Split(line, "|")
		if len(parts) != 5 {
			continue
		}
		date := parts[0]
		if _, err := time.Parse(model.DateFormat, date); err != nil {
			continue
		}
		servings, err := strconv.ParseFloat(parts[3], 64)
		if err != nil {
			continue
		}
		loggedAt, err := time.Parse(time.RFC3339, parts[4])
		if err != nil {
			loggedAt = time.Now()
		}
		day, ok := byDate[date]
		if !ok {
			day = &model.DailyLog{Date: date}
			byDate[date] = day
			order = append(order, date)
		}
		day.Entries = append(day.Entries, model.LogEntry{
			ID:       parts[1],
			FoodID:   parts[2],
			Servings: servings,
			LoggedAt: loggedAt,
		})
	}
	days := make([]model.DailyLog, 0, len(order))
	for _, date := range order {
		days = append(days, *byDate[date])
	}
	return days, nil
}

func (s *TextFile) SaveLogs(days []model.DailyLog) error {
	var b strings.Builder
	for _, day := range days {
		for _, e := range day.Entries {
			fmt.Fprintf(&b, "%s|%s|%s|%s|%s\n",
				day.Date, e.ID, e.FoodID, formatFloat(e.Servings), e.LoggedAt.Format(time.RFC3339))
		}
	}
	return s.writeFile(logsFileName, b.String())
}

func (s *TextFile) LoadProfile() (*model.UserProfile, error) {
	lines, err := s.readLines(profileFileName)
	if err != nil {
		return nil, err
	}
	var profile *model.UserProfile
	for _, line := range lines {
		parts := strings.Split(line, "|")
		switch {
		case parts[0] == "PROFILE" && len(parts) == 5:
			gender, err := model.ParseGender(parts[1])
			if err != nil {
				continue
			}
			height, err := strconv.ParseFloat(parts[2], 64)
			if err != nil {
				continue
			}
			birth, err := time.Parse(model.DateFormat, parts[3])
			if err != nil {
				continue
			}
			profile = &model.UserProfile{
				Gender:     gender,
				HeightCm:   height,
				BirthDate:  birth,
				Calculator: parts[4],
			}
		case parts[0] == "DAILY" && len(parts) == 4:
			if profile == nil {
				continue
			}
			if _, err := time.Parse(model.DateFormat, parts[1]); err != nil {
				continue
			}
			weight, err := strconv.ParseFloat(parts[2], 64)
			if err != nil {
				continue
			}
			activity, err := model.ParseActivityLevel(parts[3])
			if err != nil {
				continue
			}
			profile.Daily = append(profile.Daily, model.DailyProfile{
				Date:     parts[1],
				WeightKg: weight,
				Activity: activity,
			})
		}
	}
	return profile, nil
}

func (s *TextFile) SaveProfile(profile *model.UserProfile) error {
	if profile == nil {
		return s.writeFile(profileFileName, "")
	}
	var b strings.Builder
	fmt.Fprintf(&b, "PROFILE|%s|%s|%s|%s\n",
		profile.Gender, formatFloat(profile.HeightCm),
		profile.BirthDate.Format(model.DateFormat), profile.Calculator)
	for _, d := range profile.Daily {
		fmt.Fprintf(&b, "DAILY|%s|%s|%s\n", d.Date, formatFloat(d.WeightKg), d.Activity)
	}
	return s.writeFile(profileFileName, b.String())
}

// readLines returns the non-empty lines of the named file, or nil if the
// file does not exist yet.
func (s *TextFile) readLines(name string) ([]string, error) {
	f, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	lines := make([]string, 0)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return lines, nil
}

func (s *TextFile) writeFile(name, content string) error {
	if err := os.WriteFile(filepath.Join(s.dir, name), []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
