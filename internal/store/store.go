// Package store owns the canonical AppState for the device. Every read
// and write of persisted business data passes through a single Store,
// constructed at process start and closed before exit. There is no
// ambient singleton.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	gosync "sync"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/sitec-sas/gestion/internal/model"
)

// Pusher replicates a committed state to the remote backend. Push must be
// best-effort: it never blocks the committing caller and never reports
// failure back to it.
type Pusher interface {
	Push(ctx context.Context, state model.AppState)
}

// Store is the single-writer owner of the canonical AppState, persisted
// as one JSON snapshot in a local SQLite database under a fixed key.
//
// Mutations follow a whole-snapshot model: callers take a copy with
// State, build the next state, and Commit it. Each Commit is an atomic
// swap of the entire document; there is no per-field patch API. The
// design provides no cross-process mutual exclusion.
type Store struct {
	db  *sqlx.DB
	log zerolog.Logger

	mu    gosync.Mutex
	state model.AppState

	pusher   Pusher
	inFlight gosync.WaitGroup
}

// Open opens (or creates) the snapshot database at dbPath, enables WAL
// mode, runs pending migrations, and loads the last persisted snapshot.
// An absent or unparsable snapshot yields the default empty state, never
// an error.
func Open(dbPath string, log zerolog.Logger) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data dir: %w", err)
		}
	}

	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	s := &Store{db: db, log: log}
	if err := s.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	s.state = s.loadSnapshot()
	return s, nil
}

// Close waits for any in-flight push and closes the database. This is the
// final flush before process exit.
func (s *Store) Close() error {
	s.inFlight.Wait()
	return s.db.Close()
}

// SetPusher installs the replication hook invoked after each Commit when
// the state's sync configuration is complete.
func (s *Store) SetPusher(p Pusher) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pusher = p
}

// State returns a deep copy of the current state for reading or for
// staging the next mutation.
func (s *Store) State() model.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Commit persists next as the new canonical snapshot and, if cloud sync
// is configured, hands a copy to the pusher on a detached goroutine. The
// push is fire-and-forget: its outcome never rolls back or blocks the
// local commit.
func (s *Store) Commit(ctx context.Context, next model.AppState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist(ctx, next); err != nil {
		return err
	}
	s.state = next.Clone()

	if s.pusher != nil && next.SyncConfig.CanSync() {
		snapshot := next.Clone()
		s.inFlight.Add(1)
		go func() {
			defer s.inFlight.Done()
			// Detached from the caller's context: the local write is
			// already durable.
			s.pusher.Push(context.Background(), snapshot)
		}()
	}
	return nil
}

// Replace overwrites the canonical state without triggering a push. It is
// the application path for imports and for applying a confirmed pull.
func (s *Store) Replace(ctx context.Context, next model.AppState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist(ctx, next); err != nil {
		return err
	}
	s.state = next.Clone()
	return nil
}

// RecordSync stamps the sync marker and persists the update without
// re-triggering a push. The engine calls it when a push completes, even
// after a partial failure: retry is opportunistic, driven by the next
// mutation rather than a retry queue.
func (s *Store) RecordSync(t time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.SyncConfig.LastSync = &t
	return s.persist(context.Background(), s.state)
}

// MergeRemote applies a pulled partial state onto local by wholesale
// field replacement: only the collections present in the pull overwrite
// local ones; absent collections keep their local values. Record-level
// merging is intentionally not performed.
func MergeRemote(local model.AppState, partial model.PartialState) model.AppState {
	next := local.Clone()
	if partial.Clients != nil {
		next.Clients = partial.Clients
	}
	if partial.Quotes != nil {
		next.Quotes = partial.Quotes
	}
	if partial.Technicians != nil {
		next.Technicians = partial.Technicians
	}
	if partial.Visits != nil {
		next.Visits = partial.Visits
	}
	if partial.Reports != nil {
		next.Reports = partial.Reports
	}
	if partial.Maintenance != nil {
		next.Maintenance = partial.Maintenance
	}
	return next
}

func (s *Store) persist(ctx context.Context, state model.AppState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	const query = `
		INSERT INTO snapshots (key, data, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at`

	if _, err := s.db.ExecContext(ctx, query, model.StorageKey, string(data), time.Now().UTC()); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

// loadSnapshot reads the persisted document. Corrupt data is treated as
// "no data": the default empty state is returned and a warning logged.
func (s *Store) loadSnapshot() model.AppState {
	var raw string
	err := s.db.Get(&raw, "SELECT data FROM snapshots WHERE key = ?", model.StorageKey)
	if errors.Is(err, sql.ErrNoRows) {
		return model.DefaultAppState()
	}
	if err != nil {
		s.log.Warn().Err(err).Msg("reading snapshot, starting empty")
		return model.DefaultAppState()
	}

	var state model.AppState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		s.log.Warn().Err(err).Msg("snapshot unparsable, starting empty")
		return model.DefaultAppState()
	}
	return state
}

// runMigrations checks the current schema version and applies any
// outstanding migrations in order.
func (s *Store) runMigrations() error {
	currentVersion := 0

	var tableCount int
	err := s.db.Get(
		&tableCount,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	)
	if err != nil {
		return fmt.Errorf("checking schema_version table: %w", err)
	}

	if tableCount > 0 {
		err = s.db.Get(&currentVersion, "SELECT COALESCE(MAX(version), 0) FROM schema_version")
		if err != nil {
			return fmt.Errorf("reading schema version: %w", err)
		}
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}
		if _, err := s.db.Exec(m.sql); err != nil {
			return fmt.Errorf("applying migration v%d: %w", m.version, err)
		}
	}

	return nil
}
