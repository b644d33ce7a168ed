// Package journal persists the theme switch history in SQLite.
package journal

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Journal errors.
var (
	ErrInvalidRecord = errors.New("invalid switch record")
)

const schema = `
CREATE TABLE IF NOT EXISTS switches (
	id TEXT PRIMARY KEY,
	theme TEXT NOT NULL,
	applied_hooks TEXT,
	failed_hooks TEXT,
	started_at TEXT NOT NULL,
	duration_ms INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_switches_started_at ON switches(started_at);
`

// Record is one theme switch outcome.
type Record struct {
	// ID is a generated uuid when left empty.
	ID string

	// Theme is the theme that was applied.
	Theme string

	// Applied lists hooks that succeeded, in execution order.
	Applied []string

	// Failed lists hooks that errored, in execution order.
	Failed []string

	// StartedAt is when the switch began, UTC.
	StartedAt time.Time

	// Duration is the wall-clock time of the whole switch.
	Duration time.Duration
}

// Journal is a repository over the switch history database.
type Journal struct {
	db *sql.DB
}

// Open opens (and migrates) the history database under dir.
func Open(dir string) (*Journal, error) {
	db, err := sql.Open("sqlite", filepath.Join(dir, "history.db"))
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate history db: %w", err)
	}
	return &Journal{db: db}, nil
}

// Close releases the database handle.
func (j *Journal) Close() error {
	return j.db.Close()
}

// Append stores a switch record, filling ID and StartedAt when unset.
func (j *Journal) Append(ctx context.Context, rec *Record) error {
	if rec == nil || rec.Theme == "" {
		return ErrInvalidRecord
	}
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.StartedAt.IsZero() {
		rec.StartedAt = time.Now().UTC()
	} else {
		rec.StartedAt = rec.StartedAt.UTC()
	}

	applied, err := json.Marshal(rec.Applied)
	if err != nil {
		return fmt.Errorf("marshal applied hooks: %w", err)
	}
	failed, err := json.Marshal(rec.Failed)
	if err != nil {
		return fmt.Errorf("marshal failed hooks: %w", err)
	}

	_, err = j.db.ExecContext(ctx,
		`INSERT INTO switches (id, theme, applied_hooks, failed_hooks, started_at, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Theme, string(applied), string(failed),
		rec.StartedAt.Format(time.RFC3339Nano), rec.Duration.Milliseconds())
	if err != nil {
		return fmt.Errorf("insert switch record: %w", err)
	}
	return nil
}

// Recent returns up to limit records, newest first.
func (j *Journal) Recent(ctx context.Context, limit int) ([]*Record, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := j.db.QueryContext(ctx,
		`SELECT id, theme, applied_hooks, failed_hooks, started_at, duration_ms
		 FROM switches ORDER BY started_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query switch records: %w", err)
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		var (
			rec        Record
			applied    sql.NullString
			failed     sql.NullString
			startedAt  string
			durationMS int64
		)
		if err := rows.Scan(&rec.ID, &rec.Theme, &applied, &failed, &startedAt, &durationMS); err != nil {
			return nil, fmt.Errorf("scan switch record: %w", err)
		}
		if applied.Valid && applied.String != "" {
			if err := json.Unmarshal([]byte(applied.String), &rec.Applied); err != nil {
				return nil, fmt.Errorf("parse applied hooks: %w", err)
			}
		}
		if failed.Valid && failed.String != "" {
			if err := json.Unmarshal([]byte(failed.String), &rec.Failed); err != nil {
				return nil, fmt.Errorf("parse failed hooks: %w", err)
			}
		}
		if ts, err := time.Parse(time.RFC3339Nano, startedAt); err == nil {
			rec.StartedAt = ts
		}
		rec.Duration = time.Duration(durationMS) * time.Millisecond
		records = append(records, &rec)
	}
	return records, rows.Err()
}
