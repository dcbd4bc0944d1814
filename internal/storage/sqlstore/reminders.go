package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mattwhite/moodjournal-go/internal/journal"
)

const reminderColumns = "id, title, note, due_date, completed, priority, created_at"

func scanReminder(row scanner) (journal.Reminder, error) {
	var r journal.Reminder
	var priority, createdAt string
	if err := row.Scan(&r.ID, &r.Title, &r.Note, &r.DueDate, &r.Completed, &priority, &createdAt); err != nil {
		return journal.Reminder{}, err
	}
	r.Priority = journal.Priority(priority)
	t, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return journal.Reminder{}, fmt.Errorf("parse created_at of reminder %d: %w", r.ID, err)
	}
	r.CreatedAt = t
	return r, nil
}

// ListReminders returns reminders ordered by due date, then priority.
func (s *Store) ListReminders(ctx context.Context) ([]journal.Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `SELECT `+reminderColumns+` FROM reminders`)
	if err != nil {
		return nil, fmt.Errorf("query reminders: %w", err)
	}
	defer rows.Close()

	out := []journal.Reminder{}
	for rows.Next() {
		r, err := scanReminder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reminder: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reminders: %w", err)
	}
	journal.SortReminders(out)
	return out, nil
}

func (s *Store) GetReminder(ctx context.Context, id int) (journal.Reminder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getReminder(ctx, id)
}

func (s *Store) getReminder(ctx context.Context, id int) (journal.Reminder, error) {
	row := s.db.QueryRowContext(ctx, s.rebind(`SELECT `+reminderColumns+` FROM reminders WHERE id = ?`), id)
	r, err := scanReminder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return journal.Reminder{}, journal.ErrNotFound
	}
	if err != nil {
		return journal.Reminder{}, fmt.Errorf("get reminder %d: %w", id, err)
	}
	return r, nil
}

func (s *Store) CreateReminder(ctx context.Context, in journal.ReminderInput) (journal.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := in.NewReminder(0, s.now().UTC())
	err := s.db.QueryRowContext(ctx, s.rebind(`INSERT INTO reminders (title, note, due_date, completed, priority, created_at)
		VALUES (?, ?, ?, ?, ?, ?) RETURNING id`),
		r.Title, r.Note, r.DueDate, r.Completed, string(r.Priority), r.CreatedAt.Format(time.RFC3339Nano)).Scan(&r.ID)
	if err != nil {
		return journal.Reminder{}, fmt.Errorf("insert reminder: %w", err)
	}
	return r, nil
}

func (s *Store) UpdateReminder(ctx context.Context, id int, in journal.ReminderInput) (journal.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.getReminder(ctx, id)
	if err != nil {
		return journal.Reminder{}, err
	}
	r := in.Merge(existing)
	_, err = s.db.ExecContext(ctx, s.rebind(`UPDATE reminders SET title = ?, note = ?, due_date = ?, completed = ?, priority = ? WHERE id = ?`),
		r.Title, r.Note, r.DueDate, r.Completed, string(r.Priority), id)
	if err != nil {
		return journal.Reminder{}, fmt.Errorf("update reminder %d: %w", id, err)
	}
	return r, nil
}

// ToggleReminder flips the completed flag.
func (s *Store) ToggleReminder(ctx context.Context, id int) (journal.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, err := s.getReminder(ctx, id)
	if err != nil {
		return journal.Reminder{}, err
	}
	r.Completed = !r.Completed
	if _, err := s.db.ExecContext(ctx, s.rebind(`UPDATE reminders SET completed = ? WHERE id = ?`), r.Completed, id); err != nil {
		return journal.Reminder{}, fmt.Errorf("toggle reminder %d: %w", id, err)
	}
	return r, nil
}

func (s *Store) DeleteReminder(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleteByID(ctx, "reminders", id)
}
