package journal

import "context"

// Store persists entries, reminders and settings. Implementations return
// ErrNotFound for missing records and expect validated input.
type Store interface {
	ListEntries(ctx context.Context) ([]Entry, error)
	GetEntryByDate(ctx context.Context, date string) (Entry, error)
	UpsertEntry(ctx context.Context, in EntryInput) (e Entry, created bool, err error)
	DeleteEntry(ctx context.Context, id int) error

	ListReminders(ctx context.Context) ([]Reminder, error)
	GetReminder(ctx context.Context, id int) (Reminder, error)
	CreateReminder(ctx context.Context, in ReminderInput) (Reminder, error)
	UpdateReminder(ctx context.Context, id int, in ReminderInput) (Reminder, error)
	ToggleReminder(ctx context.Context, id int) (Reminder, error)
	DeleteReminder(ctx context.Context, id int) error

	GetSettings(ctx context.Context) (Settings, error)
	UpdateSettings(ctx context.Context, u SettingsUpdate) (Settings, error)

	Close() error
}
