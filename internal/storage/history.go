package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Report run kinds recorded in history.
const (
	RunKindSuggest = "suggest"
	RunKindStatus  = "status"
)

// RunRecord is one report generation run.
type RunRecord struct {
	ID           string    `json:"id"`
	PRNumber     int       `json:"pr_number"`
	Kind         string    `json:"kind"`
	TotalItems   int       `json:"total_items"`
	Critical     int       `json:"critical"`
	Bugs         int       `json:"bugs"`
	Improvements int       `json:"improvements"`
	Style        int       `json:"style"`
	Questions    int       `json:"questions"`
	CreatedAt    time.Time `json:"created_at"`
}

// History records report runs in SQLite. It is optional infrastructure:
// commands only construct one when a database URL is configured.
type History struct {
	manager *ConnManager
}

const historySchema = `
CREATE TABLE IF NOT EXISTS report_runs (
	id           TEXT PRIMARY KEY,
	pr_number    INTEGER NOT NULL,
	kind         TEXT NOT NULL,
	total_items  INTEGER NOT NULL,
	critical     INTEGER NOT NULL DEFAULT 0,
	bugs         INTEGER NOT NULL DEFAULT 0,
	improvements INTEGER NOT NULL DEFAULT 0,
	style        INTEGER NOT NULL DEFAULT 0,
	questions    INTEGER NOT NULL DEFAULT 0,
	created_at   TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_report_runs_pr ON report_runs(pr_number, created_at);
`

// NewHistory opens (and if needed initializes) the run history store at
// databaseURL.
func NewHistory(databaseURL string) (*History, error) {
	manager, err := NewConnManager(databaseURL)
	if err != nil {
		return nil, err
	}

	h := &History{manager: manager}
	if err := h.withConn(func(db *sql.DB) error {
		_, err := db.Exec(historySchema)
		return err
	}); err != nil {
		manager.Close()
		return nil, fmt.Errorf("initialize history schema: %w", err)
	}

	return h, nil
}

// withConn runs fn with a database handle, closing per-call handles for
// file-backed databases and leaving the shared in-memory handle open.
func (h *History) withConn(fn func(*sql.DB) error) error {
	db, err := h.manager.Connect()
	if err != nil {
		return err
	}
	if !h.manager.IsMemory() {
		defer db.Close()
	}
	return fn(db)
}

// Record inserts one run. A missing ID gets a fresh UUID; a zero
// CreatedAt gets the current time.
func (h *History) Record(ctx context.Context, rec RunRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	return h.withConn(func(db *sql.DB) error {
		_, err := db.ExecContext(ctx,
			`INSERT INTO report_runs
			 (id, pr_number, kind, total_items, critical, bugs, improvements, style, questions, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			rec.ID, rec.PRNumber, rec.Kind, rec.TotalItems,
			rec.Critical, rec.Bugs, rec.Improvements, rec.Style, rec.Questions,
			rec.CreatedAt.Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("record report run: %w", err)
		}
		return nil
	})
}

// Recent returns the most recent runs, newest first.
func (h *History) Recent(ctx context.Context, limit int) ([]RunRecord, error) {
	var records []RunRecord

	err := h.withConn(func(db *sql.DB) error {
		rows, err := db.QueryContext(ctx,
			`SELECT id, pr_number, kind, total_items, critical, bugs, improvements, style, questions, created_at
			 FROM report_runs
			 ORDER BY created_at DESC, id
			 LIMIT ?`, limit)
		if err != nil {
			return fmt.Errorf("query report runs: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var rec RunRecord
			var createdAt string
			if err := rows.Scan(&rec.ID, &rec.PRNumber, &rec.Kind, &rec.TotalItems,
				&rec.Critical, &rec.Bugs, &rec.Improvements, &rec.Style, &rec.Questions,
				&createdAt); err != nil {
				return fmt.Errorf("scan report run: %w", err)
			}
			rec.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
			records = append(records, rec)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}

// Close releases the underlying shared connection, if any.
func (h *History) Close() error {
	return h.manager.Close()
}
