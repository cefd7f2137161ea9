package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"

	"github.com/mvoronov/mathmage/internal/profile"
)

const timeLayout = time.RFC3339Nano

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS profiles (
	name           TEXT PRIMARY KEY,
	settings       TEXT NOT NULL,
	progress       TEXT NOT NULL,
	history        TEXT NOT NULL,
	created_at     TEXT NOT NULL,
	last_active_at TEXT NOT NULL
);
`

// SQLiteStore persists profiles in a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at dsn, applies the
// recommended pragmas and creates the schema.
func OpenSQLite(dsn string) (*SQLiteStore, error) {
	if err := EnsureDir(dsn); err != nil {
		return nil, fmt.Errorf("ensure data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// applyPragmas configures SQLite for single-user desktop use.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Get(name string) (*profile.UserProfile, error) {
	query, args, err := sq.Select("name", "settings", "progress", "history", "created_at", "last_active_at").
		From("profiles").
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return nil, err
	}

	p, err := scanProfile(s.db.QueryRow(query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return p, err
}

func (s *SQLiteStore) Put(p *profile.UserProfile) error {
	settings, err := json.Marshal(p.Settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	progress, err := json.Marshal(p.Progress)
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}
	history, err := json.Marshal(p.History)
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}

	query, args, err := sq.Insert("profiles").
		Columns("name", "settings", "progress", "history", "created_at", "last_active_at").
		Values(
			p.Name,
			string(settings),
			string(progress),
			string(history),
			p.CreatedAt.Format(timeLayout),
			p.LastActiveAt.Format(timeLayout),
		).
		Suffix("ON CONFLICT(name) DO UPDATE SET settings=excluded.settings, progress=excluded.progress, history=excluded.history, last_active_at=excluded.last_active_at").
		ToSql()
	if err != nil {
		return err
	}

	_, err = s.db.Exec(query, args...)
	return err
}

func (s *SQLiteStore) Delete(name string) error {
	query, args, err := sq.Delete("profiles").Where(sq.Eq{"name": name}).ToSql()
	if err != nil {
		return err
	}
	_, err = s.db.Exec(query, args...)
	return err
}

func (s *SQLiteStore) ListAll() ([]*profile.UserProfile, error) {
	query, args, err := sq.Select("name", "settings", "progress", "history", "created_at", "last_active_at").
		From("profiles").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []*profile.UserProfile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (*profile.UserProfile, error) {
	var p profile.UserProfile
	var settings, progress, history, createdAt, lastActiveAt string

	if err := row.Scan(&p.Name, &settings, &progress, &history, &createdAt, &lastActiveAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(settings), &p.Settings); err != nil {
		return nil, fmt.Errorf("unmarshal settings for %q: %w", p.Name, err)
	}
	if err := json.Unmarshal([]byte(progress), &p.Progress); err != nil {
		return nil, fmt.Errorf("unmarshal progress for %q: %w", p.Name, err)
	}
	if err := json.Unmarshal([]byte(history), &p.History); err != nil {
		return nil, fmt.Errorf("unmarshal history for %q: %w", p.Name, err)
	}

	var err error
	if p.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return nil, fmt.Errorf("parse created_at for %q: %w", p.Name, err)
	}
	if p.LastActiveAt, err = time.Parse(timeLayout, lastActiveAt); err != nil {
		return nil, fmt.Errorf("parse last_active_at for %q: %w", p.Name, err)
	}

	return &p, nil
}
