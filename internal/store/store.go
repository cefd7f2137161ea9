// Package store persists user profiles. Two engines are available: a
// SQLite database and a plain JSON file.
package store

import (
	"os"
	"path/filepath"

	"github.com/mvoronov/mathmage/internal/profile"
)

// Store is the profile persistence contract, keyed by profile name
// (unique, case-sensitive).
type Store interface {
	// Get returns the profile for name, or nil if none exists.
	Get(name string) (*profile.UserProfile, error)

	// Put creates or replaces the profile.
	Put(p *profile.UserProfile) error

	// Delete removes the profile. Deleting a missing name is not an error.
	Delete(name string) error

	// ListAll returns every stored profile, ordered by name.
	ListAll() ([]*profile.UserProfile, error)

	Close() error
}

// DefaultDBPath resolves the database file path in priority order:
// 1. MATHMAGE_DB environment variable
// 2. $XDG_DATA_HOME/mathmage/mathmage.db
// 3. ~/.local/share/mathmage/mathmage.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("MATHMAGE_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "mathmage", "mathmage.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
