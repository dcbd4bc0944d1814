package sqlstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/mattwhite/moodjournal-go/internal/journal"
	"github.com/mattwhite/moodjournal-go/internal/storage/storagetest"
)

var _ journal.Store = (*Store)(nil)

func openMemory(t *testing.T) *Store {
	t.Helper()
	s, err := Open(DriverSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreContract(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) journal.Store { return openMemory(t) })
}

func TestMemoryDatabasesAreIsolated(t *testing.T) {
	ctx := context.Background()
	a, b := openMemory(t), openMemory(t)
	if _, _, err := a.UpsertEntry(ctx, journal.EntryInput{Date: "2024-01-01", Mood: "😊"}); err != nil {
		t.Fatal(err)
	}
	list, err := b.ListEntries(ctx)
	if err != nil || len(list) != 0 {
		t.Errorf("second database sees %d entries, err %v", len(list), err)
	}
}

func TestFileDatabasePersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "journal.db")

	s, err := Open(DriverSQLite, path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, _, err := s.UpsertEntry(ctx, journal.EntryInput{Date: "2024-03-10", Mood: "😴", Content: "clocks changed"}); err != nil {
		t.Fatal(err)
	}
	dark := "dark"
	if _, err := s.UpdateSettings(ctx, journal.SettingsUpdate{ColorMode: &dark}); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s, err = Open(DriverSQLite, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	e, err := s.GetEntryByDate(ctx, "2024-03-10")
	if err != nil || e.Content != "clocks changed" {
		t.Errorf("GetEntryByDate after reopen = %+v, %v", e, err)
	}
	st, err := s.GetSettings(ctx)
	if err != nil || st.ColorMode != "dark" {
		t.Errorf("settings after reopen = %+v, %v", st, err)
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	if _, err := Open("mysql", "root@/journal"); err == nil {
		t.Error("Open(mysql) succeeded")
	}
}

func TestRebind(t *testing.T) {
	q := "UPDATE t SET a = ?, b = ? WHERE id = ?"
	tests := []struct {
		driver string
		want   string
	}{
		{DriverSQLite, q},
		{DriverPostgres, "UPDATE t SET a = $1, b = $2 WHERE id = $3"},
	}
	for _, tt := range tests {
		s := &Store{driver: tt.driver}
		if got := s.rebind(q); got != tt.want {
			t.Errorf("rebind(%s) = %q, want %q", tt.driver, got, tt.want)
		}
	}
}
