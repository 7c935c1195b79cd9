// Package store provides a SQLite-backed store for text field drafts, so a
// field's text and selection survive a restart.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite" // register sqlite driver

	"github.com/xonecas/textfield/internal/selection"
)

const schema = `
CREATE TABLE IF NOT EXISTS drafts (
	name      TEXT PRIMARY KEY,
	text      TEXT NOT NULL,
	sel_start INTEGER NOT NULL DEFAULT 0,
	sel_end   INTEGER NOT NULL DEFAULT 0,
	reversed  INTEGER NOT NULL DEFAULT 0,
	updated   INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_drafts_updated ON drafts(updated);
`

// Draft is the persisted state of one named field.
type Draft struct {
	Name      string
	Text      string
	Selection selection.Range
	Reversed  bool
	Updated   time.Time
}

// Store is a SQLite-backed draft store.
type Store struct {
	mu  sync.Mutex
	db  *sql.DB
	ttl time.Duration
}

// Open creates or opens a draft database at the given path. Drafts not
// updated within ttl are purged on open; a ttl <= 0 keeps everything.
func Open(dbPath string, ttl time.Duration) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open draft db: %w", err)
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("pragma %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	s := &Store{db: db, ttl: ttl}
	s.purgeStale()
	log.Debug().Str("path", dbPath).Msg("store: opened")
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	return s.db.Close()
}

// Save inserts or replaces a draft. No-op on nil receiver.
func (s *Store) Save(d Draft) error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if d.Updated.IsZero() {
		d.Updated = time.Now()
	}
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO drafts (name, text, sel_start, sel_end, reversed, updated)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		d.Name, d.Text, d.Selection.Start, d.Selection.End, d.Reversed, d.Updated.Unix(),
	)
	if err != nil {
		return fmt.Errorf("save draft %q: %w", d.Name, err)
	}
	log.Debug().Str("name", d.Name).Int("len", len(d.Text)).Msg("store: saved draft")
	return nil
}

// Load returns the draft saved under name. A missing draft is reported
// with ok == false and no error. Safe to call on a nil receiver (miss).
func (s *Store) Load(name string) (d Draft, ok bool, err error) {
	if s == nil {
		return Draft{}, false, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var updated int64
	d.Name = name
	err = s.db.QueryRow(
		"SELECT text, sel_start, sel_end, reversed, updated FROM drafts WHERE name = ?",
		name,
	).Scan(&d.Text, &d.Selection.Start, &d.Selection.End, &d.Reversed, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return Draft{}, false, nil
	}
	if err != nil {
		return Draft{}, false, fmt.Errorf("load draft %q: %w", name, err)
	}
	d.Updated = time.Unix(updated, 0)
	return d, true, nil
}

// Delete removes the draft saved under name, if any.
func (s *Store) Delete(name string) error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM drafts WHERE name = ?", name); err != nil {
		return fmt.Errorf("delete draft %q: %w", name, err)
	}
	return nil
}

// purgeStale removes drafts older than the TTL.
func (s *Store) purgeStale() {
	if s.ttl <= 0 {
		return
	}
	cutoff := time.Now().Add(-s.ttl).Unix()
	res, err := s.db.Exec("DELETE FROM drafts WHERE updated <= ?", cutoff)
	if err != nil {
		log.Warn().Err(err).Msg("failed to purge stale drafts")
		return
	}
	if n, _ := res.RowsAffected(); n > 0 {
		log.Info().Int64("deleted", n).Msg("purged stale drafts")
	}
}
