package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// RunRepo records finished dialogs.
type RunRepo struct {
	db *sql.DB
}

func NewRunRepo(db *sql.DB) *RunRepo { return &RunRepo{db: db} }

// Record stores a run and returns its generated id.
func (r *RunRepo) Record(ctx context.Context, dialog, result string, started, finished time.Time) (string, error) {
	id := uuid.NewString()
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO dialog_runs(id, dialog, result, started_at, finished_at) VALUES (?, ?, ?, ?, ?);
	`, id, dialog, result, started.UTC(), finished.UTC())
	if err != nil {
		return "", err
	}
	return id, nil
}

// Recent returns the latest runs of dialog, newest first.
func (r *RunRepo) Recent(ctx context.Context, dialog string, limit int) ([]Run, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, dialog, result, started_at, finished_at FROM dialog_runs
	WHERE dialog = ? ORDER BY finished_at DESC LIMIT ?`, dialog, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.Dialog, &run.Result, &run.StartedAt, &run.FinishedAt); err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	return out, rows.Err()
}

// Latest returns the newest run of dialog, or nil when there is none.
func (r *RunRepo) Latest(ctx context.Context, dialog string) (*Run, error) {
	runs, err := r.Recent(ctx, dialog, 1)
	if err != nil || len(runs) == 0 {
		return nil, err
	}
	return &runs[0], nil
}
