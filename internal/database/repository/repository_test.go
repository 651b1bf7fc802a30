package repository_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/cwmkit/internal/database"
	"github.com/jask/cwmkit/internal/database/repository"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.OpenMigrated(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestValueRepoRoundTrip(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	repo := repository.NewValueRepo(openDB(t))

	var missing string
	found, err := repo.Get(ctx, "nope", &missing)
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, repo.Set(ctx, "services.enabled", []string{"sshd", "cups"}))
	require.NoError(t, repo.Set(ctx, "network.dhcp", false))
	require.NoError(t, repo.Set(ctx, "network.dhcp", true))

	var services []string
	found, err = repo.Get(ctx, "services.enabled", &services)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, []string{"sshd", "cups"}, services)

	var dhcp bool
	_, err = repo.Get(ctx, "network.dhcp", &dhcp)
	require.NoError(t, err)
	require.True(t, dhcp)

	var wrong int
	_, err = repo.Get(ctx, "services.enabled", &wrong)
	require.Error(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "network.dhcp", list[0].Key)
	require.Equal(t, "true", list[0].Value)
	require.False(t, list[0].UpdatedAt.IsZero())

	require.NoError(t, repo.Reset(ctx))
	list, err = repo.List(ctx)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestRunRepoRecent(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	repo := repository.NewRunRepo(openDB(t))

	latest, err := repo.Latest(ctx, "sysconfig")
	require.NoError(t, err)
	require.Nil(t, latest)

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for i, result := range []string{"abort", "next", "back"} {
		started := base.Add(time.Duration(i) * time.Hour)
		_, err := repo.Record(ctx, "sysconfig", result, started, started.Add(time.Minute))
		require.NoError(t, err)
	}
	_, err = repo.Record(ctx, "other", "next", base, base)
	require.NoError(t, err)

	runs, err := repo.Recent(ctx, "sysconfig", 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	require.Equal(t, "back", runs[0].Result)
	require.Equal(t, "next", runs[1].Result)
	require.Len(t, runs[0].ID, 36)
	require.Equal(t, time.Minute, runs[0].FinishedAt.Sub(runs[0].StartedAt))

	latest, err = repo.Latest(ctx, "sysconfig")
	require.NoError(t, err)
	require.NotNil(t, latest)
	require.Equal(t, runs[0].ID, latest.ID)
}
