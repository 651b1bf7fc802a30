package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/jask/cwmkit/engine"
	"github.com/jask/cwmkit/internal/config"
	"github.com/jask/cwmkit/internal/database"
	"github.com/jask/cwmkit/internal/database/repository"
	"github.com/jask/cwmkit/internal/logging"
	"github.com/jask/cwmkit/internal/sysconfig"
	"github.com/jask/cwmkit/tabs"
)

// app is the state shared by every command: config, log file and database.
type app struct {
	cfg    config.Config
	logger *log.Logger
	logs   io.Closer
	db     *sql.DB
	values *repository.ValueRepo
	runs   *repository.RunRepo
}

func openApp(ctx context.Context) (*app, error) {
	cfg, err := effectiveConfig()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}
	logger, logs := logging.New(cfg.Log)

	db, err := database.OpenMigrated(cfg.Database.Path)
	if err != nil {
		_ = logs.Close()
		return nil, err
	}
	if err := database.SeedDefaults(ctx, db, sysconfig.Defaults); err != nil {
		_ = db.Close()
		_ = logs.Close()
		return nil, fmt.Errorf("seed defaults: %w", err)
	}
	return &app{
		cfg:    cfg,
		logger: logger,
		logs:   logs,
		db:     db,
		values: repository.NewValueRepo(db),
		runs:   repository.NewRunRepo(db),
	}, nil
}

func (a *app) Close() {
	_ = a.db.Close()
	_ = a.logs.Close()
}

// session is one instance of the settings dialog bound to a host store.
type session struct {
	store    *engine.Store
	dialog   *engine.Dialog
	widgets  *sysconfig.Dialog
	settings *sysconfig.Settings
	started  time.Time
}

func (a *app) newSession(ctx context.Context) (*session, error) {
	var features []string
	if a.cfg.UI.NativeTabs() {
		features = append(features, tabs.DumbTab)
	}
	store := engine.NewStore(features...)
	store.Logger = a.logger
	if a.cfg.UI.GlyphArrow != "" {
		store.SetGlyph(tabs.GlyphActive, a.cfg.UI.GlyphArrow)
	}
	settings := sysconfig.NewSettings(ctx, a.values, a.logger)
	widgets, err := sysconfig.New(store, settings)
	if err != nil {
		return nil, fmt.Errorf("build dialog: %w", err)
	}
	dlg := engine.NewDialog(store, widgets.Contents())
	dlg.Logger = a.logger
	return &session{
		store:    store,
		dialog:   dlg,
		widgets:  widgets,
		settings: settings,
		started:  database.Now(),
	}, nil
}

// finish records the run and reports persistence errors collected by the
// widgets.
func (a *app) finish(ctx context.Context, s *session, result string) error {
	if _, err := a.runs.Record(ctx, sysconfig.Name, result, s.started, database.Now()); err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	a.logger.Printf("dialog %s finished: %s", sysconfig.Name, result)
	return s.settings.Err()
}
