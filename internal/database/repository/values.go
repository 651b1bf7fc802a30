package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// ValueRepo stores setting values keyed by name. Values are JSON encoded so
// strings, bools, ints and lists round-trip with their type.
type ValueRepo struct {
	db DBTX
}

func NewValueRepo(db DBTX) *ValueRepo { return &ValueRepo{db: db} }

// Set stores v under key.
func (r *ValueRepo) Set(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	_, err = r.db.ExecContext(ctx, `
	INSERT INTO setting_values(key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at;
	`, key, string(raw))
	return err
}

// Get decodes the value stored under key into dst. It reports false when the
// key has never been stored.
func (r *ValueRepo) Get(ctx context.Context, key string, dst any) (bool, error) {
	var raw string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM setting_values WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// List returns every stored value ordered by key.
func (r *ValueRepo) List(ctx context.Context) ([]Value, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, value, updated_at FROM setting_values ORDER BY key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Value
	for rows.Next() {
		var v Value
		if err := rows.Scan(&v.Key, &v.Value, &v.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// Reset deletes every stored value.
func (r *ValueRepo) Reset(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM setting_values`)
	return err
}
