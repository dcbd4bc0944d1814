package logging

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestInitWritesAtLevel(t *testing.T) {
	t.Cleanup(func() { Logger = nil })
	var buf bytes.Buffer
	if err := Init(&buf, "warn"); err != nil {
		t.Fatalf("Init: %v", err)
	}
	Info("hidden", "key", "value")
	Warn("entry saved late", "date", "2024-01-04")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line written at warn level: %q", out)
	}
	if !strings.Contains(out, "entry saved late") || !strings.Contains(out, "date=2024-01-04") {
		t.Errorf("warn line missing: %q", out)
	}
}

func TestInitRejectsBadLevel(t *testing.T) {
	if err := Init(&bytes.Buffer{}, "loud"); err == nil {
		t.Error("Init accepted level \"loud\"")
	}
}

func TestHelpersBeforeInit(t *testing.T) {
	Logger = nil
	Info("no logger yet")
	Error("still fine")
	if WithPrefix("api") == nil {
		t.Error("WithPrefix returned nil before Init")
	}
}

func TestInitFile(t *testing.T) {
	t.Cleanup(func() { Close(); Logger = nil })
	dir := t.TempDir()
	if err := InitFile(dir, "debug"); err != nil {
		t.Fatalf("InitFile: %v", err)
	}
	Debug("dashboard opened", "range", "7days")
	Close()

	files, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(files) != 1 || !strings.HasPrefix(files[0].Name(), "moodjournal-") {
		t.Fatalf("log files = %v", files)
	}
}
