package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/mvickers/rowtally/internal/session"
)

// Run is one labeling run: a session over one source, saved under a
// stable id so repeated snapshots upsert instead of duplicating.
type Run struct {
	ID        string
	Source    string
	CreatedAt time.Time
}

// NewRun mints a run for the given source description.
func NewRun(source string) Run {
	return Run{ID: uuid.NewString(), Source: source, CreatedAt: Now()}
}

// Store reads and writes measurement logs.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// SaveRun snapshots the full measurement log for a run. Measurements
// upsert on (run_id, row_id, column_name, kind), mirroring the
// in-memory replace-in-place invariant, so saving after every submit
// is safe and cheap.
func (s *Store) SaveRun(ctx context.Context, run Run, measurements []session.Measurement) error {
	return WithTx(s.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
		INSERT INTO runs(id, source, created_at, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET updated_at=CURRENT_TIMESTAMP;
		`, run.ID, run.Source, run.CreatedAt)
		if err != nil {
			return err
		}
		for seq, m := range measurements {
			_, err := tx.ExecContext(ctx, `
			INSERT INTO measurements(id, run_id, seq, row_id, column_name, kind, value, measure, recorded_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT(run_id, row_id, column_name, kind) DO UPDATE SET
			 seq=excluded.seq,
			 value=excluded.value,
			 measure=excluded.measure,
			 recorded_at=CURRENT_TIMESTAMP;
			`, uuid.NewString(), run.ID, seq, m.Row, m.Column, string(m.Kind), m.Value, m.Measure)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// Measurements returns a run's log in its original insertion order.
func (s *Store) Measurements(ctx context.Context, runID string) ([]session.Measurement, error) {
	rows, err := s.db.QueryContext(ctx, `
	SELECT row_id, column_name, kind, value, measure
	FROM measurements WHERE run_id = ? ORDER BY seq
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []session.Measurement
	for rows.Next() {
		var m session.Measurement
		var kind string
		if err := rows.Scan(&m.Row, &m.Column, &kind, &m.Value, &m.Measure); err != nil {
			return nil, err
		}
		m.Kind = session.Kind(kind)
		out = append(out, m)
	}
	return out, rows.Err()
}

// Runs lists saved runs, newest first.
func (s *Store) Runs(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `
	SELECT id, source, created_at FROM runs ORDER BY created_at DESC, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Source, &r.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
