// Package storage provides SQLite-based persistence for player saves.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrNoSave is returned by LoadSave when no blob exists under the name.
var ErrNoSave = errors.New("storage: no save found")

// Store manages the SQLite database connection for save persistence.
type Store struct {
	db *sql.DB
}

// SaveInfo describes one stored save blob.
type SaveInfo struct {
	Name      string
	Size      int
	UpdatedAt time.Time
}

// BadgeEntry represents one badge unlock recorded in the log.
type BadgeEntry struct {
	ID        int64
	SaveName  string
	SessionID string
	BadgeID   string
	EarnedAt  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := ExpandHome(dbPath)
	if err != nil {
		return nil, err
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS saves (
			name TEXT PRIMARY KEY,
			blob TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS badge_log (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			save_name TEXT NOT NULL,
			session_id TEXT NOT NULL,
			badge_id TEXT NOT NULL,
			earned_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_badge_log_save ON badge_log(save_name);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// LoadSave returns the blob stored under name, or ErrNoSave.
func (s *Store) LoadSave(name string) ([]byte, error) {
	var blob string
	err := s.db.QueryRow("SELECT blob FROM saves WHERE name = ?", name).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSave
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load save %q: %w", name, err)
	}
	return []byte(blob), nil
}

// PutSave stores blob under name, replacing any previous blob.
func (s *Store) PutSave(name string, blob []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO saves (name, blob, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(name) DO UPDATE SET blob = excluded.blob, updated_at = excluded.updated_at`,
		name, string(blob),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save %q: %w", name, err)
	}
	return nil
}

// DeleteSave removes the blob and badge log of name.
// Returns false if there was no such save.
func (s *Store) DeleteSave(name string) (bool, error) {
	res, err := s.db.Exec("DELETE FROM saves WHERE name = ?", name)
	if err != nil {
		return false, fmt.Errorf("storage: cannot delete save %q: %w", name, err)
	}
	if _, err := s.db.Exec("DELETE FROM badge_log WHERE save_name = ?", name); err != nil {
		return false, fmt.Errorf("storage: cannot clear badge log %q: %w", name, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("storage: cannot get affected rows: %w", err)
	}
	return n > 0, nil
}

// Saves lists all stored saves ordered by name.
func (s *Store) Saves() ([]SaveInfo, error) {
	rows, err := s.db.Query(
		`SELECT name, LENGTH(blob), updated_at
		 FROM saves
		 ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query saves: %w", err)
	}
	defer rows.Close()

	var infos []SaveInfo
	for rows.Next() {
		var info SaveInfo
		var updatedAt any
		if err := rows.Scan(&info.Name, &info.Size, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		info.UpdatedAt = parseTime(updatedAt)
		infos = append(infos, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return infos, nil
}

// RecordBadge appends a badge unlock to the log.
// Returns the ID of the inserted record.
func (s *Store) RecordBadge(saveName, sessionID, badgeID string) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO badge_log (save_name, session_id, badge_id) VALUES (?, ?, ?)",
		saveName, sessionID, badgeID,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record badge: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// BadgeHistory returns the unlock log of a save, oldest first.
func (s *Store) BadgeHistory(saveName string) ([]BadgeEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, save_name, session_id, badge_id, earned_at
		 FROM badge_log
		 WHERE save_name = ?
		 ORDER BY id`,
		saveName,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query badge log: %w", err)
	}
	defer rows.Close()

	var entries []BadgeEntry
	for rows.Next() {
		var e BadgeEntry
		var earnedAt any
		if err := rows.Scan(&e.ID, &e.SaveName, &e.SessionID, &e.BadgeID, &earnedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.EarnedAt = parseTime(earnedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
