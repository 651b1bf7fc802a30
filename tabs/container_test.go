package tabs

import (
	"errors"
	"slices"
	"testing"

	"github.com/jask/cwmkit/core"
	"github.com/jask/cwmkit/engine"
	"github.com/jask/cwmkit/widgets"
)

type field struct {
	*widgets.InputField
	log   *[]string
	valid bool
}

func (w *field) Label() string { return "Field" }
func (w *field) Init()         { w.record("init") }
func (w *field) Store()        { w.record("store") }
func (w *field) Cleanup()      { w.record("cleanup") }

func (w *field) Handle() core.Symbol {
	w.record("handle")
	return core.SymbolNone
}

func (w *field) Validate() bool {
	w.record("validate")
	return w.valid
}

func (w *field) record(op string) { *w.log = append(*w.log, w.WidgetID()+"."+op) }

type leave struct{ *widgets.PushButton }

func (leave) Label() string       { return "Leave" }
func (leave) Handle() core.Symbol { return core.SymbolBack }

type page struct {
	*Tab
	label string
	field *field
	extra []any
}

func (p *page) Label() string { return p.label }

func (p *page) Contents() core.Term {
	return core.VBox(append([]any{p.field}, p.extra...)...)
}

func newPage(h core.Host, id, label string, log *[]string) *page {
	return &page{
		Tab:   NewTab(h, id),
		label: label,
		field: &field{InputField: widgets.NewInputField(h, id+"_field"), log: log, valid: true},
	}
}

type fixture struct {
	store  *engine.Store
	dialog *engine.Dialog
	tabs   *Container
	pages  []*page
	log    []string
}

func newFixture(t *testing.T, features []string, setup func(pages []*page)) *fixture {
	t.Helper()
	f := &fixture{store: engine.NewStore(features...)}
	f.pages = []*page{
		newPage(f.store, "a", "A", &f.log),
		newPage(f.store, "b", "B", &f.log),
		newPage(f.store, "c", "C", &f.log),
	}
	if setup != nil {
		setup(f.pages)
	}
	entries := make([]Entry, 0, len(f.pages))
	for _, p := range f.pages {
		entries = append(entries, p)
	}
	c, err := New(f.store, "", entries...)
	if err != nil {
		t.Fatalf("new container: %v", err)
	}
	f.tabs = c
	f.dialog = engine.NewDialog(f.store, core.VBox(c, core.PushButton(core.ID(core.SymbolNext), "OK")))
	if err := f.dialog.Open(); err != nil {
		t.Fatalf("open: %v", err)
	}
	return f
}

func (f *fixture) press(t *testing.T, id string) (core.Symbol, bool) {
	t.Helper()
	ret, done, err := f.dialog.Dispatch(core.Activated(id))
	if err != nil {
		t.Fatalf("dispatch %s: %v", id, err)
	}
	return ret, done
}

func TestInitialTabSelection(t *testing.T) {
	f := newFixture(t, nil, func(p []*page) { p[1].SetInitial(true) })
	if got := f.tabs.Current(); got != "b" {
		t.Fatalf("expected b first, got %q", got)
	}
	if !slices.Equal(f.log, []string{"b_field.init"}) {
		t.Fatalf("only b should be initialized: %v", f.log)
	}

	g := newFixture(t, nil, nil)
	if got := g.tabs.Current(); got != "a" {
		t.Fatalf("expected first declared tab, got %q", got)
	}
	if g.tabs.WidgetID() != "tabs" {
		t.Fatalf("default container id mismatch: %q", g.tabs.WidgetID())
	}
}

func TestSwitchStoresBeforeShowingTarget(t *testing.T) {
	f := newFixture(t, nil, nil)
	f.log = nil
	if _, done := f.press(t, "b"); done {
		t.Fatalf("tab switch should not close the dialog")
	}
	want := []string{"a_field.validate", "a_field.store", "b_field.init"}
	if !slices.Equal(f.log, want) {
		t.Fatalf("order mismatch: %v", f.log)
	}
	if got := f.tabs.Current(); got != "b" {
		t.Fatalf("expected b, got %q", got)
	}
	if _, ok := f.store.Content().Find("b_field"); !ok {
		t.Fatalf("b content should be shown")
	}
	if _, ok := f.store.Content().Find("a_field"); ok {
		t.Fatalf("a content should be replaced")
	}
}

func TestBlockedSwitchKeepsActiveTab(t *testing.T) {
	f := newFixture(t, nil, func(p []*page) { p[0].field.valid = false })
	f.log = nil
	f.press(t, "b")
	if got := f.tabs.Current(); got != "a" {
		t.Fatalf("expected a to stay, got %q", got)
	}
	if !slices.Equal(f.log, []string{"a_field.validate"}) {
		t.Fatalf("blocked switch should only validate: %v", f.log)
	}
	if got := f.store.Query("a", core.PropLabel); got != "►  A" {
		t.Fatalf("a should stay marked, got %v", got)
	}
	if got := f.store.Query("b", core.PropLabel); got != "B" {
		t.Fatalf("b should be unmarked, got %v", got)
	}
}

func TestBlockedSwitchRemarksActiveTab(t *testing.T) {
	f := newFixture(t, nil, func(p []*page) { p[0].field.valid = false })
	f.store.Change("a", core.PropLabel, "A")
	f.press(t, "b")
	if got := f.store.Query("a", core.PropLabel); got != "►  A" {
		t.Fatalf("a should be marked again, got %v", got)
	}

	n := newFixture(t, []string{DumbTab}, func(p []*page) { p[0].field.valid = false })
	n.store.Change("tabs", core.PropCurrentItem, "b")
	n.press(t, "b")
	if got := n.tabs.Current(); got != "a" {
		t.Fatalf("expected a to stay, got %q", got)
	}
	if got := n.store.Query("tabs", core.PropCurrentItem); got != "a" {
		t.Fatalf("native bar should point back at a, got %v", got)
	}
}

func TestActiveTabSeesEventsFirst(t *testing.T) {
	f := newFixture(t, nil, func(p []*page) {
		p[0].extra = []any{leave{widgets.NewPushButton(p[0].field.Host(), "leave")}}
	})
	f.log = nil
	if _, ok := f.dialog.Widgets().Lookup("a_field"); ok {
		t.Fatalf("tab widgets are not registered with the dialog")
	}
	if _, done, err := f.dialog.Dispatch(core.Changed("a_field")); err != nil || done {
		t.Fatalf("field change: done=%v err=%v", done, err)
	}
	if !slices.Equal(f.log, []string{"a_field.handle"}) {
		t.Fatalf("field should handle its event: %v", f.log)
	}
	ret, done := f.press(t, "leave")
	if !done || ret != core.SymbolBack {
		t.Fatalf("expected back exit, got %q done=%v", ret, done)
	}
	if f.tabs.Current() != "a" {
		t.Fatalf("exit symbol should not switch tabs")
	}
}

func TestPressingActiveTabIsNoop(t *testing.T) {
	f := newFixture(t, nil, nil)
	f.log = nil
	f.press(t, "a")
	if len(f.log) != 0 {
		t.Fatalf("expected no hooks, got %v", f.log)
	}
}

func TestButtonBarMarking(t *testing.T) {
	f := newFixture(t, nil, nil)
	if got := f.store.Query("a", core.PropLabel); got != "►  A" {
		t.Fatalf("initial mark mismatch: %v", got)
	}
	f.press(t, "b")
	if got := f.store.Query("a", core.PropLabel); got != "A" {
		t.Fatalf("a label should be restored: %v", got)
	}
	if got := f.store.Query("b", core.PropLabel); got != "►  B" {
		t.Fatalf("b label should be marked: %v", got)
	}
}

func TestNativeTabMarking(t *testing.T) {
	f := newFixture(t, []string{DumbTab}, nil)
	if got := f.store.Kind("tabs"); got != DumbTab {
		t.Fatalf("expected native tab bar, got %q", got)
	}
	f.press(t, "c")
	if got := f.store.Query("tabs", core.PropCurrentItem); got != "c" {
		t.Fatalf("current item mismatch: %v", got)
	}
	if got := f.store.Query("c", core.PropLabel); got != nil {
		t.Fatalf("native bar has no tab buttons, got %v", got)
	}
}

func TestCommitStoresActiveTabAndCleansShown(t *testing.T) {
	f := newFixture(t, nil, nil)
	f.press(t, "b")
	f.log = nil
	ret, done := f.press(t, string(core.SymbolNext))
	if !done || ret != core.SymbolNext {
		t.Fatalf("expected next exit, got %q done=%v", ret, done)
	}
	if !slices.Equal(f.log, []string{"b_field.validate", "b_field.store"}) {
		t.Fatalf("only the active tab should be committed: %v", f.log)
	}
	f.log = nil
	f.dialog.Close()
	if !slices.Equal(f.log, []string{"a_field.cleanup", "b_field.cleanup"}) {
		t.Fatalf("cleanup should cover shown tabs only: %v", f.log)
	}
}

func TestLookupFindsNestedDefinitions(t *testing.T) {
	f := newFixture(t, nil, nil)
	def, ok := f.tabs.Lookup("c_field")
	if !ok || def.Label != "Field" {
		t.Fatalf("lookup mismatch: %+v ok=%v", def, ok)
	}
	if got := f.tabs.TabIDs(); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Fatalf("tab ids mismatch: %v", got)
	}
}

func TestNewRejectsBadTabs(t *testing.T) {
	store := engine.NewStore()
	if _, err := New(store, "t"); !errors.Is(err, ErrNoTabs) {
		t.Fatalf("expected ErrNoTabs, got %v", err)
	}
	var log []string
	a := newPage(store, "a", "A", &log)
	if _, err := New(store, "t", a, a); !errors.Is(err, core.ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
}
