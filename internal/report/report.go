// Package report persists validation runs to SQLite: one row per evaluated
// case with the computed value, the reference it was compared against, and
// the digits of agreement between them.
package report

import (
	"database/sql"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Run identifies one invocation of the validation harness.
type Run struct {
	ID        string
	StartedAt time.Time
	Notes     string
}

// Result is one validated case. Args holds up to three arguments in
// function order; unused slots stay NaN.
type Result struct {
	RunID     string
	Function  string
	Args      [3]float64
	Computed  float64
	Reference float64
	LRE       float64
}

// LRE returns the number of agreeing decimal digits between a computed
// value and its reference, capped at 17. An exact match is worth the full
// 17; a NaN on either side is worth none.
func LRE(computed, reference float64) float64 {
	if math.IsNaN(computed) || math.IsNaN(reference) {
		return 0
	}
	diff := math.Abs(computed - reference)
	if diff == 0 {
		return 17
	}
	scale := math.Abs(reference)
	if scale == 0 {
		scale = 1
	}
	lre := -math.Log10(diff / scale)
	if lre > 17 {
		return 17
	}
	if lre < 0 {
		return 0
	}
	return lre
}

// DB handles validation-run storage
type DB struct {
	db *sql.DB
}

// NewDB opens (creating if needed) a validation results database
func NewDB(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := createTables(db); err != nil {
		db.Close()
		return nil, err
	}

	return &DB{db: db}, nil
}

func createTables(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		notes TEXT NOT NULL,
		started_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS results (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		function TEXT NOT NULL,
		arg0 REAL, arg1 REAL, arg2 REAL,
		computed REAL NOT NULL,
		reference REAL NOT NULL,
		lre REAL NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_results_run ON results(run_id);
	CREATE INDEX IF NOT EXISTS idx_results_function ON results(function, lre);
	`

	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}
	return nil
}

// Close closes the database connection
func (d *DB) Close() error {
	return d.db.Close()
}

// BeginRun records a new run and returns it with a fresh id.
func (d *DB) BeginRun(notes string) (Run, error) {
	run := Run{
		ID:        uuid.NewString(),
		StartedAt: time.Now().UTC(),
		Notes:     notes,
	}
	_, err := d.db.Exec(`
		INSERT INTO runs (id, notes, started_at) VALUES (?, ?, ?)
	`, run.ID, run.Notes, run.StartedAt)
	if err != nil {
		return Run{}, fmt.Errorf("inserting run: %w", err)
	}
	return run, nil
}

// AddResult stores one validated case.
func (d *DB) AddResult(r Result) error {
	_, err := d.db.Exec(`
		INSERT INTO results (run_id, function, arg0, arg1, arg2, computed, reference, lre)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, r.RunID, r.Function, r.Args[0], r.Args[1], r.Args[2], r.Computed, r.Reference, r.LRE)
	if err != nil {
		return fmt.Errorf("inserting result: %w", err)
	}
	return nil
}

// Summary aggregates one run per function family.
type Summary struct {
	Function string
	Cases    int
	MinLRE   float64
	AvgLRE   float64
}

// Summarize returns per-function aggregates for a run.
func (d *DB) Summarize(runID string) ([]Summary, error) {
	rows, err := d.db.Query(`
		SELECT function, COUNT(*), MIN(lre), AVG(lre)
		FROM results
		WHERE run_id = ?
		GROUP BY function
		ORDER BY function
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying summary: %w", err)
	}
	defer rows.Close()

	var summaries []Summary
	for rows.Next() {
		var s Summary
		if err := rows.Scan(&s.Function, &s.Cases, &s.MinLRE, &s.AvgLRE); err != nil {
			return nil, fmt.Errorf("scanning summary row: %w", err)
		}
		summaries = append(summaries, s)
	}

	return summaries, rows.Err()
}

// WorstResults returns the lowest-LRE cases of a run, worst first.
func (d *DB) WorstResults(runID string, limit int) ([]Result, error) {
	rows, err := d.db.Query(`
		SELECT run_id, function, arg0, arg1, arg2, computed, reference, lre
		FROM results
		WHERE run_id = ?
		ORDER BY lre ASC
		LIMIT ?
	`, runID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying worst results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		if err := rows.Scan(&r.RunID, &r.Function, &r.Args[0], &r.Args[1], &r.Args[2],
			&r.Computed, &r.Reference, &r.LRE); err != nil {
			return nil, fmt.Errorf("scanning result row: %w", err)
		}
		results = append(results, r)
	}

	return results, rows.Err()
}
