// Package history records committed picker values in a local SQLite database.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"datepicker/internal/picker"
	"datepicker/internal/utils"

	_ "modernc.org/sqlite" // SQLite driver
)

const storeDateLayout = "2006-01-02"

// Store wraps sql.DB with the selection history queries
type Store struct {
	db   *sql.DB
	path string
}

// Entry is one recorded selection.
type Entry struct {
	ID         int64     `json:"id" yaml:"id"`
	Mode       string    `json:"mode" yaml:"mode"`
	Start      string    `json:"start,omitempty" yaml:"start,omitempty"`
	End        string    `json:"end,omitempty" yaml:"end,omitempty"`
	Invalid    bool      `json:"invalid" yaml:"invalid"`
	RecordedAt time.Time `json:"recorded_at" yaml:"recorded_at"`
}

// Value rebuilds the picker value of the entry in the local timezone.
func (e Entry) Value() (picker.Value, error) {
	mode, err := picker.ParseMode(e.Mode)
	if err != nil {
		return picker.Value{}, err
	}
	start, err := utils.ParseDate(e.Start, storeDateLayout)
	if err != nil {
		return picker.Value{}, err
	}
	end, err := utils.ParseDate(e.End, storeDateLayout)
	if err != nil {
		return picker.Value{}, err
	}
	if mode == picker.ModeSingle {
		return picker.SingleValue(start), nil
	}
	return picker.RangeValue(start, end), nil
}

// Open opens (creating if needed) the history database at dbPath
func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		dir, err := utils.DataDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get database path: %w", err)
		}
		dbPath = filepath.Join(dir, "history.db")
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initializeSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	utils.Debugf("history: opened %s", dbPath)
	return store, nil
}

// Path returns the database file path
func (s *Store) Path() string {
	return s.path
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) initializeSchema() error {
	for _, pragma := range PragmaStatements() {
		if _, err := s.db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute pragma %q: %w", pragma, err)
		}
	}

	for _, schema := range AllTableSchemas() {
		if _, err := s.db.Exec(schema); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	for _, index := range AllIndexes() {
		if _, err := s.db.Exec(index); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	_, err := s.db.Exec(
		"INSERT OR IGNORE INTO schema_version (version, applied_at) VALUES (?, ?)",
		SchemaVersion,
		time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to record schema version: %w", err)
	}
	return nil
}

// GetSchemaVersion returns the current schema version from the database
func (s *Store) GetSchemaVersion() (int, error) {
	var version int
	if err := s.db.QueryRow("SELECT MAX(version) FROM schema_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to get schema version: %w", err)
	}
	return version, nil
}

// Record stores a committed value. invalid is the validity flag shown to the
// user at commit time.
func (s *Store) Record(ctx context.Context, v picker.Value, invalid bool) (int64, error) {
	var start, end time.Time
	if v.Mode == picker.ModeRange {
		start, end = v.Range.Start, v.Range.End
	} else {
		start = v.Date
	}

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO selections (mode, start_date, end_date, invalid, recorded_at) VALUES (?, ?, ?, ?, ?)",
		string(v.Mode),
		formatStoreDate(start),
		formatStoreDate(end),
		invalid,
		time.Now().Unix(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to record selection: %w", err)
	}
	return res.LastInsertId()
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, mode, start_date, end_date, invalid, recorded_at FROM selections ORDER BY id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e          Entry
			recordedAt int64
		)
		if err := rows.Scan(&e.ID, &e.Mode, &e.Start, &e.End, &e.Invalid, &recordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		e.RecordedAt = time.Unix(recordedAt, 0)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Clear deletes every entry and returns how many were removed.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM selections")
	if err != nil {
		return 0, fmt.Errorf("failed to clear history: %w", err)
	}
	return res.RowsAffected()
}

func formatStoreDate(d time.Time) string {
	if d.IsZero() {
		return ""
	}
	return d.Format(storeDateLayout)
}
