package storage_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/mattwhite/moodjournal-go/internal/config"
	"github.com/mattwhite/moodjournal-go/internal/storage"
)

func TestOpen(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.StorageConfig
		wantErr bool
	}{
		{"memory", config.StorageConfig{Driver: config.DriverMemory}, false},
		{"sqlite in memory", config.StorageConfig{Driver: config.DriverSQLite, DSN: ":memory:"}, false},
		{"sqlite file in new dir", config.StorageConfig{Driver: config.DriverSQLite, DSN: filepath.Join(t.TempDir(), "data", "journal.db")}, false},
		{"unknown", config.StorageConfig{Driver: "bolt"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := storage.Open(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Open(%+v) err = %v, wantErr %v", tt.cfg, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			defer s.Close()
			if _, err := s.GetSettings(context.Background()); err != nil {
				t.Errorf("GetSettings: %v", err)
			}
		})
	}
}
