package core

import (
	"errors"
	"slices"
	"testing"
)

func TestBuildDefinitionRequiresType(t *testing.T) {
	_, err := BuildDefinition(newPlain("x", ""))
	if !errors.Is(err, ErrTypeNotSet) {
		t.Fatalf("expected ErrTypeNotSet, got %v", err)
	}
	_, err = BuildDefinition(newPlain("x", "slider"))
	if !errors.Is(err, ErrTypeNotSet) {
		t.Fatalf("unknown tag should be reported as ErrTypeNotSet, got %v", err)
	}
}

func TestBuildDefinitionRequiresLabel(t *testing.T) {
	_, err := BuildDefinition(newPlain("name", TagInputField))
	if !errors.Is(err, ErrMissingHook) {
		t.Fatalf("expected ErrMissingHook, got %v", err)
	}
	if _, err := BuildDefinition(newPlain("text", TagRichText)); err != nil {
		t.Fatalf("richtext needs no label: %v", err)
	}
	if _, err := BuildDefinition(newPlain("tabs", TagCustom)); !errors.Is(err, ErrMissingHook) {
		t.Fatalf("custom widget without contents should fail, got %v", err)
	}
}

func TestRecordListsImplementedHooks(t *testing.T) {
	def, err := BuildDefinition(newProbe("hostname", nil))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	r := def.Record()
	if r["widget"] != TagInputField {
		t.Fatalf("widget key mismatch: %v", r["widget"])
	}
	if r["label"] != "hostname" {
		t.Fatalf("label mismatch: %v", r["label"])
	}
	for _, k := range []string{"init", "handle", "store", "validate", "cleanup"} {
		if _, ok := r[k]; !ok {
			t.Fatalf("expected %q in record", k)
		}
	}
	for _, k := range []string{"help", "opt", "items", "minimum", "maximum", "custom_widget"} {
		if _, ok := r[k]; ok {
			t.Fatalf("did not expect %q in record", k)
		}
	}
	if got := r["handle_events"].([]string); !slices.Equal(got, []string{"hostname"}) {
		t.Fatalf("handle_events mismatch: %v", got)
	}
}

type eventProbe struct {
	probe
	got []Event
}

func (w *eventProbe) HandleEvent(ev Event) Symbol {
	w.got = append(w.got, ev)
	return SymbolBack
}

func TestHandleEventWinsOverHandle(t *testing.T) {
	var log []string
	w := &eventProbe{probe: *newProbe("both", &log)}
	def, err := BuildDefinition(w)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !def.Caps.Has(CapHandle | CapHandleEvent) {
		t.Fatalf("caps should list both handlers: %s", def.Caps)
	}
	ev := Activated("both")
	if got := def.Handle("both", ev); got != SymbolBack {
		t.Fatalf("expected back, got %q", got)
	}
	if len(log) != 0 {
		t.Fatalf("plain handle should not run: %v", log)
	}
	if len(w.got) != 1 || w.got[0] != ev {
		t.Fatalf("event not passed through: %v", w.got)
	}
}

func TestObserveAllReceivesEverything(t *testing.T) {
	w := newProbe("watcher", nil)
	w.SetObserveAll(true)
	def, err := BuildDefinition(w)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if _, ok := def.Record()["handle_events"]; ok {
		t.Fatalf("observe-all widgets carry no handle_events")
	}
	if !def.Receives("anything") {
		t.Fatalf("observe-all widget should receive every id")
	}
}

type lister struct{ probe }

func (w *lister) Items() ItemList { return nil }

func TestItemsDefaultToEmptyList(t *testing.T) {
	w := &lister{probe: *newProbe("list", nil)}
	w.Setup(nil, TagSelectionBox, "list")
	def, err := BuildDefinition(w)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if def.Items == nil || len(def.Items) != 0 {
		t.Fatalf("expected empty non-nil items, got %#v", def.Items)
	}
}

type nameless struct{ probe }

func TestDefaultIDFromTypeName(t *testing.T) {
	w := &nameless{probe: *newProbe("", nil)}
	def, err := BuildDefinition(w)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if def.ID != "nameless" || w.WidgetID() != "nameless" {
		t.Fatalf("default id mismatch: def=%q widget=%q", def.ID, w.WidgetID())
	}
}

type bounded struct{ probe }

func (w *bounded) Minimum() int { return 1 }
func (w *bounded) Maximum() int { return 9 }

func TestTermCarriesBoundsAndOptions(t *testing.T) {
	w := &bounded{probe: *newProbe("count", nil)}
	w.Setup(nil, TagIntField, "count")
	def, err := BuildDefinition(w)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	term := def.Term()
	if term.Name != "IntField" {
		t.Fatalf("primitive mismatch: %s", term.Name)
	}
	if id, _ := term.ID(); id != "count" {
		t.Fatalf("id mismatch: %s", id)
	}
	want := []any{ID("count"), "count", 1, 9}
	if !slices.Equal(term.Args, want) {
		t.Fatalf("args mismatch: %#v", term.Args)
	}
	r := def.Record()
	if r["minimum"] != 1 || r["maximum"] != 9 {
		t.Fatalf("bounds missing from record: %v", r)
	}
}

func TestCompositeCollectsNestedDefinitions(t *testing.T) {
	a := newProbe("a", nil)
	b := newProbe("b", nil)
	g := newGroup("g", a, HBox(Label("x"), b))
	def, err := BuildDefinition(g)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if got := def.NestedIDs(); !slices.Equal(got, []string{"a", "b"}) {
		t.Fatalf("nested ids mismatch: %v", got)
	}
	if !slices.Equal(def.HandleEvents, []string{"a", "b", "g"}) {
		t.Fatalf("handle_events mismatch: %v", def.HandleEvents)
	}
	nested := def.Record()["widgets"].(map[string]map[string]any)
	if len(nested) != 2 || nested["b"]["widget"] != TagInputField {
		t.Fatalf("nested records mismatch: %v", nested)
	}
	expanded := def.Term()
	found, ok := expanded.Find("b")
	if !ok || found.Name != "InputField" {
		t.Fatalf("expanded tree should hold b as InputField, got %v", found)
	}
}
