package database

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/jask/cwmkit/internal/database/repository"
)

// SeedDefaults stores every default whose key has no value yet.
// It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB, defaults map[string]any) error {
	return seed(ctx, repository.NewValueRepo(db), defaults)
}

// ResetDefaults drops every stored value and seeds the defaults again in one
// transaction. On failure the previous values are kept.
func ResetDefaults(ctx context.Context, db *sql.DB, defaults map[string]any) error {
	return WithTx(db, func(tx *sql.Tx) error {
		values := repository.NewValueRepo(tx)
		if err := values.Reset(ctx); err != nil {
			return fmt.Errorf("reset values: %w", err)
		}
		return seed(ctx, values, defaults)
	})
}

func seed(ctx context.Context, values *repository.ValueRepo, defaults map[string]any) error {
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		var existing any
		found, err := values.Get(ctx, key, &existing)
		if err != nil {
			return err
		}
		if found {
			continue
		}
		if err := values.Set(ctx, key, defaults[key]); err != nil {
			return err
		}
	}
	return nil
}
