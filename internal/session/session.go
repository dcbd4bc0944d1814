// Package session records how long was spent writing each day's entry.
// Each day is a small TOML file next to the other per-user data.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/mattwhite/moodjournal-go/internal/journal"
)

// Stats is one day's writing session.
type Stats struct {
	TypingSeconds int `toml:"typing_seconds"`
	WordCount     int `toml:"word_count"`
}

// TypingTime is TypingSeconds as a duration.
func (s Stats) TypingTime() time.Duration { return time.Duration(s.TypingSeconds) * time.Second }

// Day pairs a date with its session stats.
type Day struct {
	Date  string
	Stats Stats
}

func fileName(date string) string { return ".stats-" + date + ".toml" }

// Load reads the stats for date. A missing file is an empty session.
func Load(dir, date string) (Stats, error) {
	data, err := os.ReadFile(filepath.Join(dir, fileName(date)))
	if errors.Is(err, os.ErrNotExist) {
		return Stats{}, nil
	}
	if err != nil {
		return Stats{}, err
	}
	var s Stats
	if err := toml.Unmarshal(data, &s); err != nil {
		return Stats{}, fmt.Errorf("parse session %s: %w", date, err)
	}
	return s, nil
}

// Save writes the stats for date.
func Save(dir, date string, s Stats) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := toml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, fileName(date)), data, 0644)
}

// LoadAll returns every recorded day, oldest first. Unreadable files are skipped.
func LoadAll(dir string) ([]Day, error) {
	files, err := filepath.Glob(filepath.Join(dir, ".stats-*.toml"))
	if err != nil {
		return nil, err
	}
	var days []Day
	for _, f := range files {
		date := strings.TrimSuffix(strings.TrimPrefix(filepath.Base(f), ".stats-"), ".toml")
		if _, err := journal.ParseDate(date); err != nil {
			continue
		}
		s, err := Load(dir, date)
		if err != nil {
			continue
		}
		days = append(days, Day{Date: date, Stats: s})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days, nil
}

// Total sums typing time across days.
func Total(days []Day) time.Duration {
	var d time.Duration
	for _, day := range days {
		d += day.Stats.TypingTime()
	}
	return d
}
