// Package storage provides SQLite-based persistence for player preferences.
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

// DefaultProfile is the profile used for local play.
const DefaultProfile = "local"

// Store manages the SQLite database connection for preference persistence.
type Store struct {
	db *sql.DB
}

// Preferences are the setup choices remembered between sessions.
type Preferences struct {
	Profile   string
	P1Name    string
	P2Name    string
	Mode      string // "duo" or "solo"
	Volume    int    // 0-100
	Muted     bool
	UpdatedAt time.Time
}

// DefaultPreferences returns the preferences used when none are stored.
func DefaultPreferences(profile string) Preferences {
	return Preferences{
		Profile: profile,
		P1Name:  "Player 1",
		P2Name:  "Player 2",
		Mode:    "duo",
		Volume:  70,
	}
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS preferences (
			profile TEXT PRIMARY KEY,
			p1_name TEXT NOT NULL,
			p2_name TEXT NOT NULL,
			mode TEXT NOT NULL DEFAULT 'duo',
			volume INTEGER NOT NULL DEFAULT 70,
			muted INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
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

// LoadPreferences returns the stored preferences for profile.
// If nothing has been saved yet it returns DefaultPreferences and found=false.
func (s *Store) LoadPreferences(profile string) (prefs Preferences, found bool, err error) {
	var muted int
	var updatedAt any
	row := s.db.QueryRow(
		`SELECT profile, p1_name, p2_name, mode, volume, muted, updated_at
		 FROM preferences WHERE profile = ?`,
		profile,
	)
	err = row.Scan(&prefs.Profile, &prefs.P1Name, &prefs.P2Name, &prefs.Mode, &prefs.Volume, &muted, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return DefaultPreferences(profile), false, nil
	}
	if err != nil {
		return DefaultPreferences(profile), false, fmt.Errorf("storage: cannot load preferences: %w", err)
	}
	prefs.Muted = muted != 0

	prefs.UpdatedAt = parseTime(updatedAt)
	return prefs, true, nil
}

// SavePreferences inserts or replaces the preferences for prefs.Profile.
func (s *Store) SavePreferences(prefs Preferences) error {
	if prefs.Profile == "" {
		return errors.New("storage: preferences need a profile")
	}
	muted := 0
	if prefs.Muted {
		muted = 1
	}

	_, err := s.db.Exec(
		`INSERT INTO preferences (profile, p1_name, p2_name, mode, volume, muted, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(profile) DO UPDATE SET
			p1_name = excluded.p1_name,
			p2_name = excluded.p2_name,
			mode = excluded.mode,
			volume = excluded.volume,
			muted = excluded.muted,
			updated_at = CURRENT_TIMESTAMP`,
		prefs.Profile, prefs.P1Name, prefs.P2Name, prefs.Mode, prefs.Volume, muted,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save preferences: %w", err)
	}
	return nil
}

// DeletePreferences removes the stored preferences for profile.
func (s *Store) DeletePreferences(profile string) error {
	if _, err := s.db.Exec("DELETE FROM preferences WHERE profile = ?", profile); err != nil {
		return fmt.Errorf("storage: cannot delete preferences: %w", err)
	}
	return nil
}

// Profiles returns every profile with stored preferences, most recent first.
func (s *Store) Profiles() ([]string, error) {
	rows, err := s.db.Query("SELECT profile FROM preferences ORDER BY updated_at DESC, profile ASC")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("storage: cannot scan profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: error iterating profiles: %w", err)
	}
	return profiles, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
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
