// Package storagetest holds the behavior every journal.Store must share.
package storagetest

import (
	"context"
	"errors"
	"testing"

	"github.com/mattwhite/moodjournal-go/internal/journal"
)

// Run exercises a fresh store returned by open for each subtest.
func Run(t *testing.T, open func(t *testing.T) journal.Store) {
	t.Run("entries", func(t *testing.T) { testEntries(t, open(t)) })
	t.Run("reminders", func(t *testing.T) { testReminders(t, open(t)) })
	t.Run("settings", func(t *testing.T) { testSettings(t, open(t)) })
}

func testEntries(t *testing.T, s journal.Store) {
	ctx := context.Background()

	list, err := s.ListEntries(ctx)
	if err != nil || len(list) != 0 {
		t.Fatalf("ListEntries on empty store = %v, %v", list, err)
	}
	if _, err := s.GetEntryByDate(ctx, "2024-01-01"); !errors.Is(err, journal.ErrNotFound) {
		t.Fatalf("GetEntryByDate missing = %v, want ErrNotFound", err)
	}

	first, created, err := s.UpsertEntry(ctx, journal.EntryInput{
		Date:    "2024-01-01",
		Mood:    "😊",
		Content: "new year walk",
		Stickers: []journal.Sticker{
			{ID: "s1", Type: "weather", ImageURL: "https://example.com/sun.svg", PosX: 10, PosY: 20, Width: 64, Height: 64},
		},
	})
	if err != nil || !created || first.ID == 0 {
		t.Fatalf("UpsertEntry create = %+v, %v, %v", first, created, err)
	}
	if _, _, err := s.UpsertEntry(ctx, journal.EntryInput{Date: "2024-01-03", Mood: "😢", Content: "rain"}); err != nil {
		t.Fatalf("UpsertEntry: %v", err)
	}

	updated, created, err := s.UpsertEntry(ctx, journal.EntryInput{Date: "2024-01-01", Mood: "🥰", Content: "edited"})
	if err != nil || created {
		t.Fatalf("UpsertEntry update = %v, created=%v", err, created)
	}
	if updated.ID != first.ID || updated.Mood != "🥰" || len(updated.Stickers) != 0 {
		t.Errorf("updated entry = %+v, want id %d with new mood and no stickers", updated, first.ID)
	}

	got, err := s.GetEntryByDate(ctx, "2024-01-01")
	if err != nil || got.Content != "edited" {
		t.Errorf("GetEntryByDate = %+v, %v", got, err)
	}
	if got.Stickers == nil {
		t.Error("Stickers is nil, want empty slice")
	}

	list, err = s.ListEntries(ctx)
	if err != nil || len(list) != 2 {
		t.Fatalf("ListEntries = %v, %v", list, err)
	}
	if list[0].Date != "2024-01-03" || list[1].Date != "2024-01-01" {
		t.Errorf("ListEntries order = %s, %s, want newest first", list[0].Date, list[1].Date)
	}

	if err := s.DeleteEntry(ctx, first.ID); err != nil {
		t.Fatalf("DeleteEntry: %v", err)
	}
	if err := s.DeleteEntry(ctx, first.ID); !errors.Is(err, journal.ErrNotFound) {
		t.Errorf("DeleteEntry twice = %v, want ErrNotFound", err)
	}
	if _, created, err := s.UpsertEntry(ctx, journal.EntryInput{Date: "2024-01-01", Mood: "😌"}); err != nil || !created {
		t.Errorf("re-create after delete = %v, created=%v", err, created)
	}
}

func testStickersRoundTrip(t *testing.T, s journal.Store) {
	ctx := context.Background()
	in := journal.EntryInput{
		Date: "2024-02-02",
		Mood: "😎",
		Stickers: []journal.Sticker{
			{ID: "a", Type: "animals", ImageURL: "cat.svg", PosX: 1.5, PosY: 2.5, Width: 40, Height: 30},
			{ID: "b", Type: "food", ImageURL: "cake.svg"},
		},
	}
	if _, _, err := s.UpsertEntry(ctx, in); err != nil {
		t.Fatalf("UpsertEntry: %v", err)
	}
	got, err := s.GetEntryByDate(ctx, "2024-02-02")
	if err != nil {
		t.Fatalf("GetEntryByDate: %v", err)
	}
	if len(got.Stickers) != 2 || got.Stickers[0] != in.Stickers[0] || got.Stickers[1] != in.Stickers[1] {
		t.Errorf("stickers = %+v, want %+v", got.Stickers, in.Stickers)
	}
}

func testReminders(t *testing.T, s journal.Store) {
	ctx := context.Background()
	testStickersRoundTrip(t, s)

	low, err := s.CreateReminder(ctx, journal.ReminderInput{Title: "water plants", DueDate: "2024-01-05", Priority: journal.PriorityLow})
	if err != nil {
		t.Fatalf("CreateReminder: %v", err)
	}
	high, err := s.CreateReminder(ctx, journal.ReminderInput{Title: "therapy", DueDate: "2024-01-05", Priority: journal.PriorityHigh})
	if err != nil {
		t.Fatalf("CreateReminder: %v", err)
	}
	early, err := s.CreateReminder(ctx, journal.ReminderInput{Title: "call mom", Note: "birthday", DueDate: "2024-01-04"})
	if err != nil {
		t.Fatalf("CreateReminder: %v", err)
	}
	if early.Priority != journal.PriorityMedium || early.Completed || early.CreatedAt.IsZero() {
		t.Errorf("defaults not applied: %+v", early)
	}

	list, err := s.ListReminders(ctx)
	if err != nil || len(list) != 3 {
		t.Fatalf("ListReminders = %v, %v", list, err)
	}
	if list[0].ID != early.ID || list[1].ID != high.ID || list[2].ID != low.ID {
		t.Errorf("order = %d,%d,%d want %d,%d,%d", list[0].ID, list[1].ID, list[2].ID, early.ID, high.ID, low.ID)
	}

	toggled, err := s.ToggleReminder(ctx, low.ID)
	if err != nil || !toggled.Completed {
		t.Fatalf("ToggleReminder = %+v, %v", toggled, err)
	}
	toggled, _ = s.ToggleReminder(ctx, low.ID)
	if toggled.Completed {
		t.Error("second toggle did not flip back")
	}

	upd, err := s.UpdateReminder(ctx, early.ID, journal.ReminderInput{Title: "call mom and dad", DueDate: "2024-01-06"})
	if err != nil {
		t.Fatalf("UpdateReminder: %v", err)
	}
	if upd.Title != "call mom and dad" || upd.Priority != journal.PriorityMedium || !upd.CreatedAt.Equal(early.CreatedAt) {
		t.Errorf("UpdateReminder = %+v", upd)
	}
	got, err := s.GetReminder(ctx, early.ID)
	if err != nil || got.DueDate != "2024-01-06" {
		t.Errorf("GetReminder = %+v, %v", got, err)
	}

	if _, err := s.UpdateReminder(ctx, 999, journal.ReminderInput{Title: "x", DueDate: "2024-01-01"}); !errors.Is(err, journal.ErrNotFound) {
		t.Errorf("UpdateReminder missing = %v", err)
	}
	if _, err := s.ToggleReminder(ctx, 999); !errors.Is(err, journal.ErrNotFound) {
		t.Errorf("ToggleReminder missing = %v", err)
	}
	if err := s.DeleteReminder(ctx, high.ID); err != nil {
		t.Fatalf("DeleteReminder: %v", err)
	}
	if _, err := s.GetReminder(ctx, high.ID); !errors.Is(err, journal.ErrNotFound) {
		t.Errorf("GetReminder after delete = %v", err)
	}
	if err := s.DeleteReminder(ctx, high.ID); !errors.Is(err, journal.ErrNotFound) {
		t.Errorf("DeleteReminder twice = %v", err)
	}
}

func testSettings(t *testing.T, s journal.Store) {
	ctx := context.Background()

	got, err := s.GetSettings(ctx)
	if err != nil || got != journal.DefaultSettings() {
		t.Fatalf("GetSettings = %+v, %v, want defaults", got, err)
	}

	dark, zoom := "dark", 125
	got, err = s.UpdateSettings(ctx, journal.SettingsUpdate{ColorMode: &dark, ZoomLevel: &zoom})
	if err != nil || got.ColorMode != "dark" || got.ZoomLevel != 125 || got.ThemeColor != "default" {
		t.Fatalf("UpdateSettings = %+v, %v", got, err)
	}

	bad := 500
	if _, err := s.UpdateSettings(ctx, journal.SettingsUpdate{ZoomLevel: &bad}); err == nil {
		t.Error("UpdateSettings accepted zoom 500")
	}
	got, _ = s.GetSettings(ctx)
	if got.ZoomLevel != 125 {
		t.Errorf("rejected update changed settings: %+v", got)
	}
}
