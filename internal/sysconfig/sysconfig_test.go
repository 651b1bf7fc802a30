package sysconfig

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/cwmkit/core"
	"github.com/jask/cwmkit/engine"
	"github.com/jask/cwmkit/internal/database"
	"github.com/jask/cwmkit/internal/database/repository"
	"github.com/jask/cwmkit/tabs"
)

type session struct {
	t        *testing.T
	store    *engine.Store
	dialog   *engine.Dialog
	widgets  *Dialog
	settings *Settings
}

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	db, err := database.OpenMigrated(filepath.Join(t.TempDir(), "settings.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.SeedDefaults(ctx, db, Defaults))
	return db
}

func newSession(t *testing.T, db *sql.DB, features ...string) *session {
	t.Helper()
	store := engine.NewStore(features...)
	settings := NewSettings(context.Background(), repository.NewValueRepo(db), nil)
	widgets, err := New(store, settings)
	require.NoError(t, err)
	dlg := engine.NewDialog(store, widgets.Contents())
	require.NoError(t, dlg.Open())
	return &session{t: t, store: store, dialog: dlg, widgets: widgets, settings: settings}
}

func (s *session) send(ev core.Event) (core.Symbol, bool) {
	s.t.Helper()
	ret, done, err := s.dialog.Dispatch(ev)
	require.NoError(s.t, err)
	return ret, done
}

func (s *session) press(id string) (core.Symbol, bool) {
	s.t.Helper()
	return s.send(core.Activated(id))
}

func (s *session) set(id string, prop core.Property, v any) {
	s.t.Helper()
	require.True(s.t, s.store.Change(id, prop, v), "change %s", id)
	s.send(core.Changed(id))
}

func TestSystemTabOpensFirst(t *testing.T) {
	s := newSession(t, openDB(t))
	require.Equal(t, "system", s.widgets.Tabs.Current())
	require.Equal(t, "UTC", s.store.Query("timezone", core.PropValue))
	require.Equal(t, "info", s.store.Query("log_level", core.PropCurrentItem))
	require.Nil(t, s.store.Query("hostname", core.PropValue))
}

func TestSettingsSurviveReopen(t *testing.T) {
	db := openDB(t)
	s := newSession(t, db)

	s.set("timezone", core.PropValue, "Europe/Prague")
	s.set("motd", core.PropValue, "Authorised use only")
	_, done := s.press("network")
	require.False(t, done)
	require.Equal(t, "network", s.widgets.Tabs.Current())
	require.Equal(t, "localhost", s.store.Query("hostname", core.PropValue))
	require.Equal(t, true, s.store.Query("dhcp", core.PropValue))
	require.Equal(t, false, s.store.Query("address", core.PropEnabled))

	s.set("hostname", core.PropValue, "router")
	s.set("dhcp", core.PropValue, false)
	require.Equal(t, true, s.store.Query("address", core.PropEnabled))

	_, done = s.press(string(core.SymbolNext))
	require.False(t, done, "empty static address must block the exit")
	require.Equal(t, core.SymbolNext, s.dialog.Blocked())

	s.set("address", core.PropValue, "10.0.0.2")
	ret, done := s.press(string(core.SymbolNext))
	require.True(t, done)
	require.Equal(t, core.SymbolNext, ret)
	require.NoError(t, s.settings.Err())
	s.dialog.Close()

	again := newSession(t, db)
	require.Equal(t, "Europe/Prague", again.store.Query("timezone", core.PropValue))
	require.Equal(t, "Authorised use only", again.store.Query("motd", core.PropValue))
	again.press("network")
	require.Equal(t, "router", again.store.Query("hostname", core.PropValue))
	require.Equal(t, false, again.store.Query("dhcp", core.PropValue))
	require.Equal(t, true, again.store.Query("address", core.PropEnabled))
	require.Equal(t, "10.0.0.2", again.store.Query("address", core.PropValue))
}

func TestInvalidTabBlocksSwitch(t *testing.T) {
	s := newSession(t, openDB(t))
	s.set("timezone", core.PropValue, "Mars/Olympus")
	s.press("network")
	require.Equal(t, "system", s.widgets.Tabs.Current())
	require.Equal(t, "►  &System", s.store.Query("system", core.PropLabel))

	s.set("timezone", core.PropValue, "UTC")
	s.press("network")
	require.Equal(t, "network", s.widgets.Tabs.Current())
	s.set("hostname", core.PropValue, "-bad-")
	_, done := s.press(string(core.SymbolNext))
	require.False(t, done)
	s.set("hostname", core.PropValue, "ok")
	s.set("mtu", core.PropValue, 100)
	_, done = s.press(string(core.SymbolNext))
	require.False(t, done, "mtu below the minimum must block")
}

func TestAbortDiscardsChanges(t *testing.T) {
	db := openDB(t)
	s := newSession(t, db)
	s.set("timezone", core.PropValue, "Europe/Berlin")
	ret, done := s.press(string(core.SymbolAbort))
	require.True(t, done)
	require.Equal(t, core.SymbolAbort, ret)

	var tz string
	found, err := repository.NewValueRepo(db).Get(context.Background(), KeyTimezone, &tz)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "UTC", tz)
}

func TestSelectAllRefreshesSummary(t *testing.T) {
	s := newSession(t, openDB(t), tabs.DumbTab)
	s.press("services_tab")
	require.Equal(t, "services_tab", s.store.Query("settings_tabs", core.PropCurrentItem))
	summary, _ := s.store.Query("summary", core.PropValue).(string)
	require.Equal(t, "<p>Services: sshd</p><p>Zone: public</p>", summary)

	s.press("select_all")
	require.Equal(t, []string{"sshd", "chronyd", "firewalld", "cups"}, s.store.Query("services", core.PropSelectedItems))
	summary, _ = s.store.Query("summary", core.PropValue).(string)
	require.True(t, strings.Contains(summary, "cups"), summary)

	s.set("zone", core.PropCurrentButton, "home")
	summary, _ = s.store.Query("summary", core.PropValue).(string)
	require.Contains(t, summary, "Zone: home")
}

func TestStoreFailuresAreCollected(t *testing.T) {
	db := openDB(t)
	s := newSession(t, db)
	require.NoError(t, db.Close())
	_, done := s.press(string(core.SymbolNext))
	require.True(t, done)
	require.Error(t, s.settings.Err())
}

func TestContentsLayout(t *testing.T) {
	s := newSession(t, openDB(t))
	content := s.store.Content()
	for _, id := range []string{"abort", "next", "network", "system", "services_tab", "timezone"} {
		_, ok := content.Find(id)
		require.True(t, ok, "expected %s in content", id)
	}
	_, ok := content.Find("hostname")
	require.False(t, ok, "inactive tabs are not rendered")
}
