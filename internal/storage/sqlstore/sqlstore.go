// Package sqlstore persists the journal in SQLite (modernc.org/sqlite, no
// cgo) or PostgreSQL (lib/pq) through database/sql.
package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/mattwhite/moodjournal-go/internal/journal"
)

// Supported database/sql driver names.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Store is a journal.Store over database/sql.
// Thread-safety: all methods are safe for concurrent use; writes are
// serialized through mu.
type Store struct {
	db     *sql.DB
	mu     sync.RWMutex
	driver string
	now    func() time.Time
}

// Open connects to the database and creates the schema if needed. For
// SQLite, ":memory:" opens a private in-memory database.
func Open(driver, dsn string) (*Store, error) {
	connStr := dsn
	memory := false
	switch driver {
	case DriverSQLite:
		if dsn == ":memory:" {
			// A named shared-cache database keeps every pooled connection on
			// the same data while isolating separate Opens from each other.
			connStr = "file:" + uuid.NewString() + "?mode=memory&cache=shared"
			memory = true
		}
	case DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}

	db, err := sql.Open(driver, connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if driver == DriverSQLite {
		db.SetMaxOpenConns(1)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if driver == DriverSQLite && !memory {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("enable WAL mode: %w", err)
		}
	}

	s := &Store{db: db, driver: driver, now: time.Now}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}
	return s, nil
}

func (s *Store) createTables() error {
	pk := "INTEGER PRIMARY KEY AUTOINCREMENT"
	boolean := "INTEGER NOT NULL DEFAULT 0"
	if s.driver == DriverPostgres {
		pk = "SERIAL PRIMARY KEY"
		boolean = "BOOLEAN NOT NULL DEFAULT FALSE"
	}
	def := journal.DefaultSettings()
	queries := []string{
		`CREATE TABLE IF NOT EXISTS journal_entries (
			id ` + pk + `,
			date TEXT NOT NULL UNIQUE,
			mood TEXT NOT NULL,
			content TEXT NOT NULL DEFAULT '',
			stickers TEXT NOT NULL DEFAULT '[]'
		)`,
		`CREATE TABLE IF NOT EXISTS reminders (
			id ` + pk + `,
			title TEXT NOT NULL,
			note TEXT NOT NULL DEFAULT '',
			due_date TEXT NOT NULL,
			completed ` + boolean + `,
			priority TEXT NOT NULL DEFAULT 'medium',
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_reminders_due ON reminders(due_date)`,
		`CREATE TABLE IF NOT EXISTS settings (
			id INTEGER PRIMARY KEY,
			color_mode TEXT NOT NULL,
			theme_color TEXT NOT NULL,
			font_size TEXT NOT NULL,
			zoom_level INTEGER NOT NULL,
			background_gradient TEXT NOT NULL
		)`,
	}
	for _, q := range queries {
		if _, err := s.db.Exec(q); err != nil {
			return err
		}
	}
	_, err := s.db.Exec(s.rebind(`INSERT INTO settings
		(id, color_mode, theme_color, font_size, zoom_level, background_gradient)
		VALUES (1, ?, ?, ?, ?, ?) ON CONFLICT (id) DO NOTHING`),
		def.ColorMode, def.ThemeColor, def.FontSize, def.ZoomLevel, def.BackgroundGradient)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// rebind rewrites ? placeholders to $1, $2, ... for PostgreSQL.
func (s *Store) rebind(q string) string {
	if s.driver != DriverPostgres {
		return q
	}
	var b strings.Builder
	n := 0
	for _, r := range q {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

type scanner interface {
	Scan(dest ...any) error
}

const entryColumns = "id, date, mood, content, stickers"

func scanEntry(row scanner) (journal.Entry, error) {
	var e journal.Entry
	var stickers string
	if err := row.Scan(&e.ID, &e.Date, &e.Mood, &e.Content, &stickers); err != nil {
		return journal.Entry{}, err
	}
	if err := json.Unmarshal([]byte(stickers), &e.Stickers); err != nil {
		return journal.Entry{}, fmt.Errorf("decode stickers of entry %d: %w", e.ID, err)
	}
	e.Stickers = journal.CloneStickers(e.Stickers)
	return e, nil
}

func encodeStickers(st []journal.Sticker) (string, error) {
	data, err := json.Marshal(journal.CloneStickers(st))
	if err != nil {
		return "", fmt.Errorf("encode stickers: %w", err)
	}
	return string(data), nil
}

// ListEntries returns every entry, newest date first.
func (s *Store) ListEntries(ctx context.Context) ([]journal.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `SELECT `+entryColumns+` FROM journal_entries ORDER BY date DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	entries := []journal.Entry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return entries, nil
}

// GetEntryByDate returns the entry for a YYYY-MM-DD date.
func (s *Store) GetEntryByDate(ctx context.Context, date string) (journal.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, s.rebind(`SELECT `+entryColumns+` FROM journal_entries WHERE date = ?`), date)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return journal.Entry{}, journal.ErrNotFound
	}
	if err != nil {
		return journal.Entry{}, fmt.Errorf("get entry %s: %w", date, err)
	}
	return e, nil
}

// UpsertEntry creates the entry for in.Date or replaces the existing one.
func (s *Store) UpsertEntry(ctx context.Context, in journal.EntryInput) (journal.Entry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stickers, err := encodeStickers(in.Stickers)
	if err != nil {
		return journal.Entry{}, false, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return journal.Entry{}, false, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	var id int
	created := false
	err = tx.QueryRowContext(ctx, s.rebind(`SELECT id FROM journal_entries WHERE date = ?`), in.Date).Scan(&id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		created = true
		err = tx.QueryRowContext(ctx, s.rebind(`INSERT INTO journal_entries (date, mood, content, stickers)
			VALUES (?, ?, ?, ?) RETURNING id`), in.Date, in.Mood, in.Content, stickers).Scan(&id)
		if err != nil {
			return journal.Entry{}, false, fmt.Errorf("insert entry: %w", err)
		}
	case err != nil:
		return journal.Entry{}, false, fmt.Errorf("find entry: %w", err)
	default:
		_, err = tx.ExecContext(ctx, s.rebind(`UPDATE journal_entries SET mood = ?, content = ?, stickers = ? WHERE id = ?`),
			in.Mood, in.Content, stickers, id)
		if err != nil {
			return journal.Entry{}, false, fmt.Errorf("update entry: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return journal.Entry{}, false, fmt.Errorf("commit: %w", err)
	}
	return in.ToEntry(id), created, nil
}

func (s *Store) DeleteEntry(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleteByID(ctx, "journal_entries", id)
}

func (s *Store) deleteByID(ctx context.Context, table string, id int) error {
	res, err := s.db.ExecContext(ctx, s.rebind(`DELETE FROM `+table+` WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	if n == 0 {
		return journal.ErrNotFound
	}
	return nil
}
