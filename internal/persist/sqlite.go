package persist

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// StateKey is the fixed key the whole app state is stored under.
const StateKey = "astral-os-data"

// SQLiteBlob stores the serialized app state in a single-row SQLite table.
type SQLiteBlob struct {
	db *sql.DB
}

// NewSQLiteBlob opens (or creates) the database at dbPath, enables WAL mode,
// and runs migrations.
func NewSQLiteBlob(dbPath string) (*SQLiteBlob, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := enablePragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable pragmas: %w", err)
	}

	if err := RunMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteBlob{db: db}, nil
}

// enablePragmas sets SQLite pragmas for performance and safety.
func enablePragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("execute %s: %w", pragma, err)
		}
	}

	return nil
}

// Load returns the last stored state blob, or ErrNotFound when none exists.
func (b *SQLiteBlob) Load(ctx context.Context) ([]byte, error) {
	var data []byte
	err := b.db.QueryRowContext(ctx,
		"SELECT data FROM app_state WHERE key = ?", StateKey).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load state blob: %w", err)
	}
	return data, nil
}

// Save stores the state blob under the fixed key, replacing any previous
// blob. Last writer wins; concurrent writers are not coordinated.
func (b *SQLiteBlob) Save(ctx context.Context, data []byte) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := b.db.ExecContext(ctx, `
		INSERT INTO app_state (key, data, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
	`, StateKey, data, now)
	if err != nil {
		return fmt.Errorf("save state blob: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (b *SQLiteBlob) Close() error {
	return b.db.Close()
}

// Compile-time interface check
var _ Blob = (*SQLiteBlob)(nil)
