// SPDX-License-Identifier: MIT

// Package store persists solver runs in SQLite.
package store

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/coilfield/coil"
	"github.com/katalvlaran/coilfield/metrics"
	"github.com/katalvlaran/coilfield/sweep"
)

// Run kinds.
const (
	KindSlice = "slice"
	KindSweep = "sweep"
)

// ErrNotFound is returned when a run id is unknown.
var ErrNotFound = errors.New("store: run not found")

// DB wraps a SQLite connection holding run history.
type DB struct {
	conn *sqlx.DB
}

// Run is one persisted solver invocation.
type Run struct {
	ID         string
	CreatedAt  time.Time
	Kind       string
	Preset     string
	Loops      []coil.Loop
	Plane      string
	Extent     float64
	Resolution int
	Segments   int
	Summary    metrics.Summary // zero for sweeps
}

type runRow struct {
	ID         string  `db:"id"`
	CreatedAt  int64   `db:"created_at"`
	Kind       string  `db:"kind"`
	Preset     string  `db:"preset"`
	LoopsYAML  string  `db:"loops_yaml"`
	Plane      string  `db:"plane"`
	Extent     float64 `db:"extent"`
	Resolution int     `db:"resolution"`
	Segments   int     `db:"segments"`
	CenterB    float64 `db:"center_b"`
	MeanB      float64 `db:"mean_b"`
	MaxB       float64 `db:"max_b"`
	Uniformity float64 `db:"uniformity"`
	Beta       float64 `db:"beta"`
}

type pointRow struct {
	Separation float64 `db:"separation"`
	Uniformity float64 `db:"uniformity"`
	CenterB    float64 `db:"center_b"`
}

// Open opens or creates a SQLite database at path and applies the schema.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("store: open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("store: migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		created_at INTEGER NOT NULL,
		kind TEXT NOT NULL,
		preset TEXT NOT NULL,
		loops_yaml TEXT NOT NULL,
		plane TEXT NOT NULL,
		extent REAL NOT NULL,
		resolution INTEGER NOT NULL,
		segments INTEGER NOT NULL,
		center_b REAL NOT NULL,
		mean_b REAL NOT NULL,
		max_b REAL NOT NULL,
		uniformity REAL NOT NULL,
		beta REAL NOT NULL
	);

	CREATE TABLE IF NOT EXISTS sweep_points (
		run_id TEXT NOT NULL REFERENCES runs(id),
		step INTEGER NOT NULL,
		separation REAL NOT NULL,
		uniformity REAL NOT NULL,
		center_b REAL NOT NULL,
		PRIMARY KEY (run_id, step)
	);

	CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveRun inserts r, assigning ID and CreatedAt when they are empty, and
// returns the stored copy.
func (db *DB) SaveRun(r Run) (Run, error) {
	tx, err := db.conn.Beginx()
	if err != nil {
		return Run{}, err
	}
	defer tx.Rollback()

	r, err = insertRun(tx, r)
	if err != nil {
		return Run{}, err
	}

	return r, tx.Commit()
}

// SaveSweep stores a sweep run and its points in one transaction.
func (db *DB) SaveSweep(r Run, pts []sweep.Point) (Run, error) {
	r.Kind = KindSweep
	r.Summary = metrics.Summary{}

	tx, err := db.conn.Beginx()
	if err != nil {
		return Run{}, err
	}
	defer tx.Rollback()

	r, err = insertRun(tx, r)
	if err != nil {
		return Run{}, err
	}

	stmt, err := tx.Preparex(`INSERT INTO sweep_points
		(run_id, step, separation, uniformity, center_b)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return Run{}, err
	}
	defer stmt.Close()

	for i, p := range pts {
		if _, err := stmt.Exec(r.ID, i, p.Separation, p.Uniformity, p.CenterB); err != nil {
			return Run{}, fmt.Errorf("store: insert sweep point %d: %w", i, err)
		}
	}

	return r, tx.Commit()
}

func insertRun(tx *sqlx.Tx, r Run) (Run, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	if r.Kind == "" {
		r.Kind = KindSlice
	}

	var buf bytes.Buffer
	if len(r.Loops) > 0 {
		if err := coil.WriteSet(&buf, r.Loops); err != nil {
			return Run{}, fmt.Errorf("store: encode loops: %w", err)
		}
	}

	row := runRow{
		ID:         r.ID,
		CreatedAt:  r.CreatedAt.UnixNano(),
		Kind:       r.Kind,
		Preset:     r.Preset,
		LoopsYAML:  buf.String(),
		Plane:      r.Plane,
		Extent:     r.Extent,
		Resolution: r.Resolution,
		Segments:   r.Segments,
		CenterB:    r.Summary.CenterB,
		MeanB:      r.Summary.MeanB,
		MaxB:       r.Summary.MaxB,
		Uniformity: r.Summary.Uniformity,
		Beta:       r.Summary.Beta,
	}
	_, err := tx.NamedExec(`INSERT INTO runs
		(id, created_at, kind, preset, loops_yaml, plane, extent, resolution,
		 segments, center_b, mean_b, max_b, uniformity, beta)
		VALUES (:id, :created_at, :kind, :preset, :loops_yaml, :plane, :extent, :resolution,
		 :segments, :center_b, :mean_b, :max_b, :uniformity, :beta)`, row)
	if err != nil {
		return Run{}, fmt.Errorf("store: insert run: %w", err)
	}

	return r, nil
}

// GetRun loads one run by id. Errors: ErrNotFound.
func (db *DB) GetRun(id string) (Run, error) {
	var row runRow
	err := db.conn.Get(&row, "SELECT * FROM runs WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return Run{}, err
	}

	return row.run()
}

// ListRuns returns the most recent runs, newest first. limit <= 0 lists all.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = -1
	}
	var rows []runRow
	err := db.conn.Select(&rows,
		"SELECT * FROM runs ORDER BY created_at DESC, id LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, err
	}

	runs := make([]Run, 0, len(rows))
	for _, row := range rows {
		r, err := row.run()
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}

	return runs, nil
}

// GetSweep returns the points of a sweep run in step order.
// Errors: ErrNotFound when the run does not exist.
func (db *DB) GetSweep(id string) ([]sweep.Point, error) {
	var n int
	if err := db.conn.Get(&n, "SELECT COUNT(*) FROM runs WHERE id = ?", id); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	var rows []pointRow
	err := db.conn.Select(&rows,
		"SELECT separation, uniformity, center_b FROM sweep_points WHERE run_id = ? ORDER BY step",
		id,
	)
	if err != nil {
		return nil, err
	}

	pts := make([]sweep.Point, len(rows))
	for i, p := range rows {
		pts[i] = sweep.Point{Separation: p.Separation, Uniformity: p.Uniformity, CenterB: p.CenterB}
	}

	return pts, nil
}

func (row runRow) run() (Run, error) {
	r := Run{
		ID:         row.ID,
		CreatedAt:  time.Unix(0, row.CreatedAt).UTC(),
		Kind:       row.Kind,
		Preset:     row.Preset,
		Plane:      row.Plane,
		Extent:     row.Extent,
		Resolution: row.Resolution,
		Segments:   row.Segments,
		Summary: metrics.Summary{
			CenterB:    row.CenterB,
			MeanB:      row.MeanB,
			MaxB:       row.MaxB,
			Uniformity: row.Uniformity,
			Beta:       row.Beta,
		},
	}
	if row.LoopsYAML != "" {
		loops, err := coil.ReadSet(bytes.NewBufferString(row.LoopsYAML))
		if err != nil {
			return Run{}, fmt.Errorf("store: run %s: %w", row.ID, err)
		}
		r.Loops = loops
	}

	return r, nil
}
