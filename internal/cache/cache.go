// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cache holds synthesized answers for a bounded time window. The
// store is an in-memory SQLite database owned by whoever constructs it:
// nothing survives the process, and tests get isolated instances with
// their own TTL, capacity, and clock.
package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/neurobloom/coach-engine/pkg/types"
)

// Store is the answer cache. Safe for concurrent use; database/sql
// serializes writers on the single in-memory connection.
type Store struct {
	db       *sql.DB
	ttl      time.Duration
	capacity int
	now      func() time.Time
}

// NewStore opens an in-memory store with the configured TTL and
// capacity, filling zero values with the reference defaults (30m, 100).
func NewStore(cfg types.CacheConfig) (*Store, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}
	// A :memory: database exists per connection; the pool must not open
	// a second one.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(
		`CREATE TABLE answers (
			key        TEXT PRIMARY KEY,
			data       BLOB NOT NULL,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX idx_answers_created_at ON answers(created_at)`,
	); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache schema: %w", err)
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	capacity := cfg.Capacity
	if capacity <= 0 {
		capacity = 100
	}

	return &Store{db: db, ttl: ttl, capacity: capacity, now: time.Now}, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Key derives the cache key from the normalized question plus topic and
// audience defaults. Callers must not bypass this or keys fragment.
func Key(question string, topic types.Topic, audience types.Audience) string {
	t := string(topic)
	if t == "" {
		t = "general"
	}
	a := string(audience)
	if a == "" {
		a = "all"
	}
	return strings.ToLower(strings.TrimSpace(question)) + "::" + t + "::" + a
}

// Get returns the cached answer for key, or (nil, false) on a miss. An
// entry older than the TTL is never returned; it is deleted on sight.
func (s *Store) Get(ctx context.Context, key string) (*types.Answer, bool) {
	var (
		data      []byte
		createdAt int64
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT data, created_at FROM answers WHERE key = ?`, key,
	).Scan(&data, &createdAt)
	if err != nil {
		return nil, false
	}

	if s.now().UnixMilli()-createdAt >= s.ttl.Milliseconds() {
		s.db.ExecContext(ctx, `DELETE FROM answers WHERE key = ?`, key)
		return nil, false
	}

	var ans types.Answer
	if err := json.Unmarshal(data, &ans); err != nil {
		return nil, false
	}
	return &ans, true
}

// Set stores an answer under key. When the insert would push the store
// past capacity, the single entry with the smallest timestamp is removed
// first. This is insertion-age eviction, not LRU-by-access.
func (s *Store) Set(ctx context.Context, key string, ans *types.Answer) error {
	data, err := json.Marshal(ans)
	if err != nil {
		return fmt.Errorf("encoding answer: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var count int
	var exists int
	if err := tx.QueryRowContext(ctx, `SELECT count(*) FROM answers`).Scan(&count); err != nil {
		return fmt.Errorf("counting entries: %w", err)
	}
	if err := tx.QueryRowContext(ctx,
		`SELECT count(*) FROM answers WHERE key = ?`, key,
	).Scan(&exists); err != nil {
		return fmt.Errorf("checking key: %w", err)
	}

	if exists == 0 && count >= s.capacity {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM answers WHERE key =
				(SELECT key FROM answers ORDER BY created_at ASC, key ASC LIMIT 1)`,
		); err != nil {
			return fmt.Errorf("evicting oldest entry: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO answers (key, data, created_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET data=excluded.data, created_at=excluded.created_at`,
		key, data, s.now().UnixMilli(),
	); err != nil {
		return fmt.Errorf("storing answer: %w", err)
	}

	return tx.Commit()
}

// Len reports the number of cached entries, expired or not.
func (s *Store) Len(ctx context.Context) int {
	var n int
	s.db.QueryRowContext(ctx, `SELECT count(*) FROM answers`).Scan(&n)
	return n
}
