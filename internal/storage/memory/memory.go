// Package memory is an in-process journal store, used for tests, demos and
// the "memory" storage driver.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/mattwhite/moodjournal-go/internal/journal"
)

// Store keeps entries, reminders and settings in memory. Safe for
// concurrent use.
type Store struct {
	mu        sync.RWMutex
	entries   map[int]journal.Entry
	byDate    map[string]int
	reminders map[int]journal.Reminder
	settings  journal.Settings
	nextEntry int
	nextRem   int
	now       func() time.Time
}

// NewStore returns an empty store with default settings.
func NewStore() *Store {
	return &Store{
		entries:   make(map[int]journal.Entry),
		byDate:    make(map[string]int),
		reminders: make(map[int]journal.Reminder),
		settings:  journal.DefaultSettings(),
		nextEntry: 1,
		nextRem:   1,
		now:       time.Now,
	}
}

// Close is a no-op.
func (s *Store) Close() error { return nil }

// ListEntries returns every entry, newest date first.
func (s *Store) ListEntries(_ context.Context) ([]journal.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]journal.Entry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, cloneEntry(e))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

// GetEntryByDate returns the entry for a YYYY-MM-DD date.
func (s *Store) GetEntryByDate(_ context.Context, date string) (journal.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byDate[date]
	if !ok {
		return journal.Entry{}, journal.ErrNotFound
	}
	return cloneEntry(s.entries[id]), nil
}

// UpsertEntry creates the entry for in.Date or replaces the existing one,
// keeping its id. created reports which happened.
func (s *Store) UpsertEntry(_ context.Context, in journal.EntryInput) (journal.Entry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id, ok := s.byDate[in.Date]; ok {
		e := in.ToEntry(id)
		s.entries[id] = e
		return cloneEntry(e), false, nil
	}
	e := in.ToEntry(s.nextEntry)
	s.nextEntry++
	s.entries[e.ID] = e
	s.byDate[e.Date] = e.ID
	return cloneEntry(e), true, nil
}

// DeleteEntry removes an entry by id.
func (s *Store) DeleteEntry(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return journal.ErrNotFound
	}
	delete(s.entries, id)
	delete(s.byDate, e.Date)
	return nil
}

// ListReminders returns reminders ordered by due date, then priority.
func (s *Store) ListReminders(_ context.Context) ([]journal.Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]journal.Reminder, 0, len(s.reminders))
	for _, r := range s.reminders {
		out = append(out, r)
	}
	journal.SortReminders(out)
	return out, nil
}

func (s *Store) GetReminder(_ context.Context, id int) (journal.Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.reminders[id]
	if !ok {
		return journal.Reminder{}, journal.ErrNotFound
	}
	return r, nil
}

func (s *Store) CreateReminder(_ context.Context, in journal.ReminderInput) (journal.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := in.NewReminder(s.nextRem, s.now().UTC())
	s.nextRem++
	s.reminders[r.ID] = r
	return r, nil
}

func (s *Store) UpdateReminder(_ context.Context, id int, in journal.ReminderInput) (journal.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.reminders[id]
	if !ok {
		return journal.Reminder{}, journal.ErrNotFound
	}
	r := in.Merge(existing)
	s.reminders[id] = r
	return r, nil
}

// ToggleReminder flips the completed flag.
func (s *Store) ToggleReminder(_ context.Context, id int) (journal.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.reminders[id]
	if !ok {
		return journal.Reminder{}, journal.ErrNotFound
	}
	r.Completed = !r.Completed
	s.reminders[id] = r
	return r, nil
}

func (s *Store) DeleteReminder(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reminders[id]; !ok {
		return journal.ErrNotFound
	}
	delete(s.reminders, id)
	return nil
}

func (s *Store) GetSettings(_ context.Context) (journal.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings, nil
}

// UpdateSettings applies a partial update; invalid updates change nothing.
func (s *Store) UpdateSettings(_ context.Context, u journal.SettingsUpdate) (journal.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.settings.Apply(u)
	if err != nil {
		return journal.Settings{}, err
	}
	s.settings = next
	return next, nil
}

func cloneEntry(e journal.Entry) journal.Entry {
	e.Stickers = journal.CloneStickers(e.Stickers)
	return e
}
