package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jask/cwmkit/internal/config"
	"github.com/jask/cwmkit/internal/database"
)

func setupHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("CWMKIT_CONFIG", filepath.Join(dir, "config.toml"))
	t.Cleanup(func() {
		tabStyle, configPath = "", ""
	})
	return dir
}

func runCLI(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("%v: %v\n%s", args, err, out.String())
	}
	return out.String()
}

func TestConfigSaveKeepsTabOverride(t *testing.T) {
	setupHome(t)
	out := runCLI(t, "--tabs", "buttons", "config", "save")
	if !strings.Contains(out, config.Path()) {
		t.Fatalf("expected written path in output: %q", out)
	}
	tabStyle = ""
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.UI.TabStyle != config.TabStyleButtons {
		t.Fatalf("tab style not persisted: %q", cfg.UI.TabStyle)
	}
}

func TestValuesResetAndList(t *testing.T) {
	setupHome(t)
	if out := runCLI(t, "values", "reset"); !strings.Contains(out, "restored 9 defaults") {
		t.Fatalf("reset output mismatch: %q", out)
	}
	out := runCLI(t, "values", "list")
	for _, want := range []string{"KEY", "network.hostname", `"localhost"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("list missing %q:\n%s", want, out)
		}
	}
}

func TestHistoryToleratesShortRunIDs(t *testing.T) {
	dir := setupHome(t)
	dbPath := filepath.Join(dir, ".local", "share", "cwmkit", "cwmkit.db")
	runCLI(t, "values", "list")

	db, err := database.OpenMigrated(dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	now := time.Now().UTC()
	if _, err := db.Exec(`INSERT INTO dialog_runs(id, dialog, result, started_at, finished_at) VALUES ('abc', 'sysconfig', 'next', ?, ?)`, now, now); err != nil {
		t.Fatalf("insert run: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("close db: %v", err)
	}

	out := runCLI(t, "history")
	if !strings.Contains(out, "abc") || !strings.Contains(out, "next") {
		t.Fatalf("history mismatch:\n%s", out)
	}
}
