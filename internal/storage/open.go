package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const dbFileName = "moveit.db"

// ResolveDBPath returns override when set, otherwise moveit.db inside the
// user's data directory ($XDG_DATA_HOME or ~/.local/share).
func ResolveDBPath(override string) (string, error) {
	if override != "" {
		return override, nil
	}

	dir := os.Getenv("XDG_DATA_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve db path: %w", err)
		}
		dir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dir, "moveit", dbFileName), nil
}

// Open opens (creating if needed) the SQLite database at path and migrates it.
func Open(path string) (*sql.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("open: empty path")
	}

	err := os.MkdirAll(filepath.Dir(path), 0o755)
	if err != nil {
		return nil, fmt.Errorf("open: create dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`PRAGMA busy_timeout = 5000;`)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open: busy_timeout: %w", err)
	}

	err = Migrate(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
