package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Store persists progress fields as key/value rows in app_state.
type Store struct {
	db *sql.DB
}

// New returns a Store bound to an existing database handle.
func New(db *sql.DB) (*Store, error) {
	if db == nil {
		return nil, fmt.Errorf("db is nil")
	}
	return &Store{db: db}, nil
}

// Save upserts value under field.
func (s *Store) Save(field, value string) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("save: store/db is nil")
	}
	if field == "" {
		return fmt.Errorf("save: empty field")
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := s.db.Exec(
		`INSERT INTO app_state(key, value, updated_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		field, value, now,
	)
	if err != nil {
		return fmt.Errorf("save %s: upsert: %w", field, err)
	}
	return nil
}

// Load returns the value stored under field. The boolean is false when the
// field has never been saved.
func (s *Store) Load(field string) (string, bool, error) {
	if s == nil || s.db == nil {
		return "", false, fmt.Errorf("load: store/db is nil")
	}
	if field == "" {
		return "", false, fmt.Errorf("load: empty field")
	}

	var value string
	err := s.db.QueryRow(`SELECT value FROM app_state WHERE key = ?`, field).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("load %s: %w", field, err)
	}
	return value, true, nil
}

// UpdatedAt returns when field was last saved.
func (s *Store) UpdatedAt(field string) (time.Time, bool, error) {
	if s == nil || s.db == nil {
		return time.Time{}, false, fmt.Errorf("updated at: store/db is nil")
	}

	var updatedAtStr string
	err := s.db.QueryRow(`SELECT updated_at FROM app_state WHERE key = ?`, field).Scan(&updatedAtStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, fmt.Errorf("updated at %s: %w", field, err)
	}

	updatedAt, err := time.Parse(time.RFC3339Nano, updatedAtStr)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("updated at %s: parse: %w", field, err)
	}
	return updatedAt, true, nil
}
