package session_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mattwhite/moodjournal-go/internal/session"
)

func TestLoadMissingIsEmpty(t *testing.T) {
	s, err := session.Load(t.TempDir(), "2024-01-01")
	if err != nil || s != (session.Stats{}) {
		t.Errorf("Load = %+v, %v", s, err)
	}
}

func TestSaveLoadAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sessions")
	if err := session.Save(dir, "2024-01-02", session.Stats{TypingSeconds: 90, WordCount: 40}); err != nil {
		t.Fatal(err)
	}
	if err := session.Save(dir, "2024-01-01", session.Stats{TypingSeconds: 30, WordCount: 12}); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".stats-garbage.toml"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := session.Load(dir, "2024-01-02")
	if err != nil || got.TypingTime() != 90*time.Second || got.WordCount != 40 {
		t.Errorf("Load = %+v, %v", got, err)
	}

	days, err := session.LoadAll(dir)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(days) != 2 || days[0].Date != "2024-01-01" {
		t.Fatalf("LoadAll = %+v", days)
	}
	if total := session.Total(days); total != 2*time.Minute {
		t.Errorf("Total = %v, want 2m", total)
	}
}
