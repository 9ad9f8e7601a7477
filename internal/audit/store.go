// Package audit persists a record of every evaluate request the HTTP
// collaborator handles, keyed by request ID (spec.md §1 lists file I/O
// and instance-directory bootstrapping as external-collaborator concerns;
// an audit trail is the same kind of concern — it never feeds back into
// the core, so it does not violate §5's "no state across requests"
// invariant, which is scoped to the pipeline itself).
//
// Grounded in the teacher's internal/orm/migrate package conventions
// (a *sql.DB held behind a small struct, explicit schema bootstrap,
// fmt.Errorf("...: %w", err) wrapping) generalized from migration
// tracking to a single append-only audit table, and in
// internal/orm/crud for the prepared-statement query shape.
package audit

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Entry is one recorded evaluate request.
type Entry struct {
	RequestID string
	KeyID     string
	Source    string
	Stage     string // "" on success, otherwise the failing pipeline stage
	Result    string // rendered output on success
	Message   string // error message on failure
	CreatedAt time.Time
}

// Store wraps a database/sql connection providing the audit log. The
// driver is selected by the caller at Open time: "sqlite3"
// (mattn/go-sqlite3) for a local single-instance deployment, "pgx"
// (jackc/pgx/v5/stdlib) for a shared Postgres-backed deployment.
type Store struct {
	db *sql.DB
}

// Open connects to the audit database using driverName/dsn and ensures
// the schema exists.
func Open(driverName, dsn string) (*Store, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("audit: open %s: %w", driverName, err)
	}
	store := &Store{db: db}
	if err := store.bootstrap(); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// NewStore wraps an already-open *sql.DB, used by tests driving a mocked
// driver (DATA-DOG/go-sqlmock).
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) bootstrap() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS evaluate_requests (
			request_id TEXT PRIMARY KEY,
			key_id     TEXT NOT NULL,
			source     TEXT NOT NULL,
			stage      TEXT NOT NULL DEFAULT '',
			result     TEXT NOT NULL DEFAULT '',
			message    TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("audit: bootstrap schema: %w", err)
	}
	return nil
}

// Record inserts one Entry. Entries are append-only: a request ID is
// written once and never updated.
func (s *Store) Record(ctx context.Context, e Entry) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO evaluate_requests (request_id, key_id, source, stage, result, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, e.RequestID, e.KeyID, e.Source, e.Stage, e.Result, e.Message, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("audit: record %s: %w", e.RequestID, err)
	}
	return nil
}

// FindByRequestID retrieves the recorded entry for a request ID, if any.
func (s *Store) FindByRequestID(ctx context.Context, requestID string) (*Entry, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT request_id, key_id, source, stage, result, message, created_at
		FROM evaluate_requests WHERE request_id = $1
	`, requestID)

	var e Entry
	if err := row.Scan(&e.RequestID, &e.KeyID, &e.Source, &e.Stage, &e.Result, &e.Message, &e.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("audit: find %s: %w", requestID, err)
	}
	return &e, nil
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	return s.db.Close()
}
