// Package report persists batch compile outcomes and their diagnostics in a
// SQLite database.
package report

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"bve-compiler/internal/batch"
	"bve-compiler/internal/diag"
	"bve-compiler/internal/log"
)

type Store struct {
	db *sql.DB
}

// Run is one recorded batch invocation.
type Run struct {
	ID        int64
	StartedAt time.Time
	Files     int
	Failed    int
}

// Diagnostic is a stored diagnostic. Source is the file the batch job was
// started for; File is the file the message was raised against, which may
// be an included file.
type Diagnostic struct {
	Source  string
	File    string
	Line    int
	Message string
}

// Open opens or creates the database at path.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("report: empty db path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("report: open %s: %w", path, err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("report: open %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("report: open %s: %w", path, err)
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("report: open %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

func initPragmas(db *sql.DB) error {
	for _, p := range []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA foreign_keys=ON;",
		"PRAGMA busy_timeout=5000;",
	} {
		if _, err := db.Exec(p); err != nil {
			return err
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at TEXT NOT NULL,
			files INTEGER NOT NULL,
			failed INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS results (
			run_id INTEGER NOT NULL REFERENCES runs(id),
			path TEXT NOT NULL,
			kind TEXT NOT NULL,
			success INTEGER NOT NULL,
			error TEXT NOT NULL,
			diagnostics INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS diagnostics (
			run_id INTEGER NOT NULL REFERENCES runs(id),
			source TEXT NOT NULL,
			file TEXT NOT NULL,
			line INTEGER NOT NULL,
			message TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS diagnostics_run ON diagnostics(run_id, source);`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Record stores a run with its results and every diagnostic they carry in
// one transaction and returns the new run id.
func (s *Store) Record(ctx context.Context, startedAt time.Time, results []batch.Result) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("report: record: %w", err)
	}
	defer tx.Rollback()

	failed := 0
	for _, r := range results {
		if !r.Success {
			failed++
		}
	}
	res, err := tx.ExecContext(ctx, `INSERT INTO runs(started_at, files, failed) VALUES(?, ?, ?)`,
		startedAt.UTC().Format(time.RFC3339Nano), len(results), failed)
	if err != nil {
		return 0, fmt.Errorf("report: record run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("report: record run: %w", err)
	}

	resStmt, err := tx.PrepareContext(ctx, `INSERT INTO results(run_id, path, kind, success, error, diagnostics, duration_ms) VALUES(?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("report: record results: %w", err)
	}
	defer resStmt.Close()
	diagStmt, err := tx.PrepareContext(ctx, `INSERT INTO diagnostics(run_id, source, file, line, message) VALUES(?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("report: record diagnostics: %w", err)
	}
	defer diagStmt.Close()

	nDiag := 0
	for _, r := range results {
		if _, err := resStmt.ExecContext(ctx, runID, r.Path, r.Kind.String(), r.Success, r.Error, r.Diagnostics, r.Duration.Milliseconds()); err != nil {
			return 0, fmt.Errorf("report: record result %s: %w", r.Path, err)
		}
		var derr error
		r.Diags.Each(func(file string, d diag.Diagnostic) {
			if derr != nil {
				return
			}
			_, derr = diagStmt.ExecContext(ctx, runID, r.Path, file, d.Line, d.Message)
			nDiag++
		})
		if derr != nil {
			return 0, fmt.Errorf("report: record diagnostics %s: %w", r.Path, derr)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("report: record: %w", err)
	}
	log.WithComponent("report").Info("run recorded",
		slog.Int64("run", runID), slog.Int("files", len(results)), slog.Int("failed", failed), slog.Int("diagnostics", nDiag))
	return runID, nil
}

// Diagnostics returns the diagnostics of a run ordered by source, file and
// line, keeping raise order within a line.
func (s *Store) Diagnostics(ctx context.Context, runID int64) ([]Diagnostic, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT source, file, line, message FROM diagnostics WHERE run_id = ? ORDER BY source, file, line, rowid`, runID)
	if err != nil {
		return nil, fmt.Errorf("report: query diagnostics: %w", err)
	}
	defer rows.Close()
	var out []Diagnostic
	for rows.Next() {
		var d Diagnostic
		if err := rows.Scan(&d.Source, &d.File, &d.Line, &d.Message); err != nil {
			return nil, fmt.Errorf("report: scan diagnostic: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// Runs lists recorded runs, newest first.
func (s *Store) Runs(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, started_at, files, failed FROM runs ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("report: query runs: %w", err)
	}
	defer rows.Close()
	var out []Run
	for rows.Next() {
		var r Run
		var started string
		if err := rows.Scan(&r.ID, &started, &r.Files, &r.Failed); err != nil {
			return nil, fmt.Errorf("report: scan run: %w", err)
		}
		r.StartedAt, _ = time.Parse(time.RFC3339Nano, started)
		out = append(out, r)
	}
	return out, rows.Err()
}
