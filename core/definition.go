package core

import (
	"fmt"
	"math"
)

// Definition is the flattened description of one widget handed to a host
// engine. Hook fields are nil when the widget does not implement the hook.
type Definition struct {
	ID     string
	Widget TypeTag
	Caps   Capability

	Label   string
	Help    string
	Opt     []Option
	Items   ItemList
	Minimum *int
	Maximum *int

	Init     func(id string)
	Handle   func(id string, ev Event) Symbol
	Store    func(id string, ev Event)
	Validate func(id string, ev Event) bool
	Cleanup  func(id string)

	// HandleEvents lists the ids whose events reach Handle. It is nil when
	// HandleAll is set.
	HandleEvents []string
	HandleAll    bool

	// CustomWidget and Widgets are set for composites: the compiled content
	// tree and the nested definitions in tree order.
	CustomWidget *Term
	Widgets      []Definition
}

// BuildDefinition derives the definition record of w from the hooks it
// implements.
func BuildDefinition(w Widget) (Definition, error) {
	id := defaultID(w)
	tag := w.WidgetType()
	if tag == "" {
		return Definition{}, fmt.Errorf("widget %q: %w", id, ErrTypeNotSet)
	}
	if !tag.Known() {
		return Definition{}, fmt.Errorf("widget %q: unknown type %q: %w", id, tag, ErrTypeNotSet)
	}
	caps := Capabilities(w)
	if missing := tag.Required() &^ caps; missing != 0 {
		return Definition{}, fmt.Errorf("widget %q (%s) lacks %s: %w", id, tag, missing, ErrMissingHook)
	}

	def := Definition{ID: id, Widget: tag, Caps: caps}
	if h, ok := w.(Helper); ok {
		def.Help = h.Help()
	}
	if l, ok := w.(Labeler); ok {
		def.Label = l.Label()
	}
	if o, ok := w.(Optioner); ok {
		def.Opt = o.Opt()
	}
	if it, ok := w.(ItemLister); ok {
		def.Items = it.Items()
		if def.Items == nil {
			def.Items = ItemList{}
		}
	}
	if b, ok := w.(MinimumBound); ok {
		v := b.Minimum()
		def.Minimum = &v
	}
	if b, ok := w.(MaximumBound); ok {
		v := b.Maximum()
		def.Maximum = &v
	}

	if h, ok := w.(Initializer); ok {
		def.Init = func(string) { h.Init() }
	}
	if h, ok := w.(EventHandler); ok {
		def.Handle = func(_ string, ev Event) Symbol { return h.HandleEvent(ev) }
	} else if h, ok := w.(Handler); ok {
		def.Handle = func(string, Event) Symbol { return h.Handle() }
	}
	if h, ok := w.(Storer); ok {
		def.Store = func(string, Event) { h.Store() }
	}
	if h, ok := w.(Validator); ok {
		def.Validate = func(string, Event) bool { return h.Validate() }
	}
	if h, ok := w.(Cleaner); ok {
		def.Cleanup = func(string) { h.Cleanup() }
	}

	if c, ok := w.(Composite); ok {
		compiled, err := Compile(c.Contents())
		if err != nil {
			return Definition{}, fmt.Errorf("widget %q: %w", id, err)
		}
		def.CustomWidget = &compiled.Content
		for _, nested := range compiled.Widgets {
			nd, err := BuildDefinition(nested)
			if err != nil {
				return Definition{}, fmt.Errorf("widget %q: %w", id, err)
			}
			def.Widgets = append(def.Widgets, nd)
		}
	}

	if w.ObservesAll() {
		def.HandleAll = true
	} else {
		def.HandleEvents = append(def.NestedIDs(), id)
	}
	return def, nil
}

// NestedIDs returns the ids of the widgets directly embedded in a composite.
func (d Definition) NestedIDs() []string {
	out := make([]string, 0, len(d.Widgets))
	for _, w := range d.Widgets {
		out = append(out, w.ID)
	}
	return out
}

// Receives reports whether an event from id is delivered to Handle.
func (d Definition) Receives(id string) bool {
	if d.Handle == nil {
		return false
	}
	if d.HandleAll {
		return true
	}
	for _, h := range d.HandleEvents {
		if h == id {
			return true
		}
	}
	return false
}

// Record renders the keyed form of the definition used by the host protocol.
func (d Definition) Record() map[string]any {
	r := map[string]any{"widget": d.Widget}
	if d.Caps.Has(CapLabel) {
		r["label"] = d.Label
	}
	if d.Caps.Has(CapHelp) {
		r["help"] = d.Help
	}
	if d.Caps.Has(CapOpt) {
		r["opt"] = d.Opt
	}
	if d.Caps.Has(CapItems) {
		r["items"] = d.Items
	}
	if d.Minimum != nil {
		r["minimum"] = *d.Minimum
	}
	if d.Maximum != nil {
		r["maximum"] = *d.Maximum
	}
	if d.Init != nil {
		r["init"] = d.Init
	}
	if d.Handle != nil {
		r["handle"] = d.Handle
	}
	if d.Store != nil {
		r["store"] = d.Store
	}
	if d.Cleanup != nil {
		r["cleanup"] = d.Cleanup
	}
	if d.Validate != nil {
		r["validate"] = d.Validate
	}
	if !d.HandleAll {
		r["handle_events"] = d.HandleEvents
	}
	if d.CustomWidget != nil {
		r["custom_widget"] = *d.CustomWidget
		nested := make(map[string]map[string]any, len(d.Widgets))
		for _, w := range d.Widgets {
			nested[w.ID] = w.Record()
		}
		r["widgets"] = nested
	}
	return r
}

// IntField bounds used when a widget declares only one or neither.
const (
	DefaultMinimum = 0
	DefaultMaximum = math.MaxInt32
)

// Term expands the definition into the host primitive it stands for.
func (d Definition) Term() Term {
	if d.CustomWidget != nil {
		return Expand(*d.CustomWidget, d.Widgets)
	}
	info := tagTable[d.Widget]
	args := []any{ID(d.ID)}
	if len(d.Opt) > 0 {
		args = append(args, Options(d.Opt))
	}
	if d.Caps.Has(CapLabel) {
		args = append(args, d.Label)
	}
	if d.Widget == TagIntField {
		lo, hi := DefaultMinimum, DefaultMaximum
		if d.Minimum != nil {
			lo = *d.Minimum
		}
		if d.Maximum != nil {
			hi = *d.Maximum
		}
		args = append(args, lo, hi)
	}
	if d.Caps.Has(CapItems) {
		args = append(args, d.Items)
	}
	return T(info.term, args...)
}
