package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const snapshotKey = "momentum"

// DefaultDBPath returns the default Momentum DB location.
func DefaultDBPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".momentum.db"), nil
}

// SQLiteBackend persists the snapshot as a single row in a key-value table.
type SQLiteBackend struct {
	db *sql.DB
}

// OpenSQLite opens (and creates if missing) the SQLite database at the
// provided path and prepares the snapshot table.
func OpenSQLite(path string) (*SQLiteBackend, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS snapshots (
		key TEXT PRIMARY KEY,
		data BLOB NOT NULL
	);`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate snapshots: %w", err)
	}
	return &SQLiteBackend{db: db}, nil
}

func (b *SQLiteBackend) Load() ([]byte, bool, error) {
	row := b.db.QueryRow(`SELECT data FROM snapshots WHERE key = ?`, snapshotKey)
	var data []byte
	if err := row.Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("snapshot load: %w", err)
	}
	return data, true, nil
}

func (b *SQLiteBackend) Save(data []byte) error {
	_, err := b.db.Exec(`
		INSERT INTO snapshots (key, data) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data
	`, snapshotKey, data)
	if err != nil {
		return fmt.Errorf("snapshot save: %w", err)
	}
	return nil
}

func (b *SQLiteBackend) Clear() error {
	if _, err := b.db.Exec(`DELETE FROM snapshots WHERE key = ?`, snapshotKey); err != nil {
		return fmt.Errorf("snapshot clear: %w", err)
	}
	return nil
}

func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}
