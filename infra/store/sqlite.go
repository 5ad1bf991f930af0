// Package store persists sweep history in an embedded SQLite database so
// successive policy evaluations can be compared over time.
package store

import (
	"database/sql"
	"time"

	_ "modernc.org/sqlite"

	"github.com/fleetops/rentalgap/core/analysis"
	coremetrics "github.com/fleetops/rentalgap/core/metrics"
)

// Config describes the history store.
type Config struct {
	Enabled bool   `json:"enabled"`
	Path    string `json:"path"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.Path == "" {
		c.Path = "rentalgap.db"
	}
}

// Record is one persisted sweep point.
type Record struct {
	RunID string
	Scope analysis.Scope
	At    time.Time
	Point analysis.SweepPoint
}

// SQLiteStore persists sweep results in a SQLite database. It implements the
// metrics sink interface so it can be fanned out with the other sinks.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens or creates the database and ensures schema.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	schema := `CREATE TABLE IF NOT EXISTS sweep_results (
        run_id TEXT,
        scope TEXT,
        threshold INTEGER,
        total_rentals INTEGER,
        rentals_with_previous INTEGER,
        blocked_rentals INTEGER,
        blocked_percentage REAL,
        current_problems INTEGER,
        problems_solved INTEGER,
        solve_efficiency REAL,
        availability_impact REAL,
        created_at INTEGER,
        PRIMARY KEY(run_id, scope, threshold)
    );`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

// RecordSweep inserts or replaces every point of the sweep.
func (s *SQLiteStore) RecordSweep(ev coremetrics.SweepEvent) error {
	for _, p := range ev.Points {
		_, err := s.db.Exec(`INSERT INTO sweep_results (
            run_id, scope, threshold, total_rentals, rentals_with_previous,
            blocked_rentals, blocked_percentage, current_problems,
            problems_solved, solve_efficiency, availability_impact, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(run_id, scope, threshold) DO UPDATE SET
            total_rentals = excluded.total_rentals,
            rentals_with_previous = excluded.rentals_with_previous,
            blocked_rentals = excluded.blocked_rentals,
            blocked_percentage = excluded.blocked_percentage,
            current_problems = excluded.current_problems,
            problems_solved = excluded.problems_solved,
            solve_efficiency = excluded.solve_efficiency,
            availability_impact = excluded.availability_impact,
            created_at = excluded.created_at`,
			ev.RunID, string(ev.Scope), p.Threshold, p.TotalRentals,
			p.RentalsWithPrevious, p.BlockedRentals, p.BlockedPercentage,
			p.CurrentProblems, p.ProblemsSolved, p.SolveEfficiency,
			p.AvailabilityImpact, ev.Time.Unix())
		if err != nil {
			return err
		}
	}
	return nil
}

// QueryRun returns the persisted points of a run ordered by scope and
// threshold.
func (s *SQLiteStore) QueryRun(runID string) ([]Record, error) {
	rows, err := s.db.Query(`SELECT run_id, scope, threshold, total_rentals,
        rentals_with_previous, blocked_rentals, blocked_percentage,
        current_problems, problems_solved, solve_efficiency,
        availability_impact, created_at
        FROM sweep_results WHERE run_id = ? ORDER BY scope, threshold`, runID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var res []Record
	for rows.Next() {
		var r Record
		var scope string
		var ts int64
		if err := rows.Scan(&r.RunID, &scope, &r.Point.Threshold,
			&r.Point.TotalRentals, &r.Point.RentalsWithPrevious,
			&r.Point.BlockedRentals, &r.Point.BlockedPercentage,
			&r.Point.CurrentProblems, &r.Point.ProblemsSolved,
			&r.Point.SolveEfficiency, &r.Point.AvailabilityImpact, &ts); err != nil {
			return nil, err
		}
		r.Scope = analysis.Scope(scope)
		r.At = time.Unix(ts, 0).UTC()
		res = append(res, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error { return s.db.Close() }
