// Package config loads the TOML configuration shared by the CLI, the
// terminal UIs and the HTTP server.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// Storage drivers.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Server  ServerConfig  `toml:"server"`
	Storage StorageConfig `toml:"storage"`
	AI      AIConfig      `toml:"ai"`
	Log     LogConfig     `toml:"log"`
}

type ServerConfig struct {
	Addr string `toml:"addr"`
}

type StorageConfig struct {
	Driver string `toml:"driver"`
	DSN    string `toml:"dsn"`
}

type AIConfig struct {
	APIKey            string `toml:"api_key,omitempty"`
	Model             string `toml:"model"`
	MaxTokens         int    `toml:"max_tokens"`
	RequestsPerMinute int    `toml:"requests_per_minute"`
}

type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file,omitempty"`
}

// Dir is the per-user data directory, ~/moodjournal unless
// MOODJOURNAL_HOME is set.
func Dir() (string, error) {
	if d := os.Getenv("MOODJOURNAL_HOME"); d != "" {
		return d, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, "moodjournal"), nil
}

// DefaultPath is Dir()/config.toml.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Default returns the built-in configuration with data files under dir.
func Default(dir string) Config {
	return Config{
		Server:  ServerConfig{Addr: ":5000"},
		Storage: StorageConfig{Driver: DriverSQLite, DSN: filepath.Join(dir, "journal.db")},
		AI: AIConfig{
			Model:             "claude-3-haiku-20240307",
			MaxTokens:         1200,
			RequestsPerMinute: 5,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads path over the defaults, then applies environment overrides.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg, err := loadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.applyEnv(os.Getenv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFile(path string) (Config, error) {
	cfg := Default(filepath.Dir(path))
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("read config: %w", err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	return cfg, nil
}

// SaveAPIKey stores key in the file at path, keeping its other settings.
// Environment overrides are not written back.
func SaveAPIKey(path, key string) error {
	cfg, err := loadFile(path)
	if err != nil {
		return err
	}
	cfg.AI.APIKey = key
	return cfg.Save(path)
}

// LoadDefault loads DefaultPath.
func LoadDefault() (Config, string, error) {
	path, err := DefaultPath()
	if err != nil {
		return Config{}, "", err
	}
	cfg, err := Load(path)
	return cfg, path, err
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if v := getenv("MOODJOURNAL_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := getenv("MOODJOURNAL_STORAGE"); v != "" {
		c.Storage.Driver = v
	}
	if v := getenv("DATABASE_URL"); v != "" {
		c.Storage.DSN = v
		if getenv("MOODJOURNAL_STORAGE") == "" {
			c.Storage.Driver = DriverPostgres
		}
	}
	if v := getenv("ANTHROPIC_API_KEY"); v != "" {
		c.AI.APIKey = v
	}
	if v := getenv("MOODJOURNAL_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := getenv("MOODJOURNAL_AI_RPM"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("MOODJOURNAL_AI_RPM: %w", err)
		}
		c.AI.RequestsPerMinute = n
	}
	return nil
}

// Validate rejects unknown drivers and impossible limits.
func (c Config) Validate() error {
	switch c.Storage.Driver {
	case DriverMemory, DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	if c.Storage.Driver != DriverMemory && c.Storage.DSN == "" {
		return fmt.Errorf("storage driver %q needs a dsn", c.Storage.Driver)
	}
	if c.AI.MaxTokens <= 0 {
		return fmt.Errorf("ai.max_tokens must be positive, got %d", c.AI.MaxTokens)
	}
	if c.AI.RequestsPerMinute <= 0 {
		return fmt.Errorf("ai.requests_per_minute must be positive, got %d", c.AI.RequestsPerMinute)
	}
	return nil
}

// Save writes c to path, creating the directory. The file may hold an API
// key so it is private to the user.
func (c Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// LogDir is where the terminal UIs write their log files.
func LogDir(dir string) string { return filepath.Join(dir, "logs") }
