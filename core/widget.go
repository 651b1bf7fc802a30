package core

import (
	"reflect"
	"strings"
)

// Host is the property service a host engine offers to widgets. Properties
// are keyed by widget id; unknown ids query as nil and change as false.
type Host interface {
	Query(id string, prop Property) any
	Change(id string, prop Property, v any) bool
	// Replace swaps the child of the ReplacePoint registered under id.
	Replace(id string, content Term) bool
	// HasSpecialWidget reports host support for optional primitives such as
	// "DumbTab".
	HasSpecialWidget(name string) bool
	Glyph(name string) string
}

// Widget is the identity every widget exposes to the definition builder.
type Widget interface {
	WidgetID() string
	WidgetType() TypeTag
	ObservesAll() bool
}

// Optional hooks. A widget implements only the ones relevant to it.

type Helper interface {
	Help() string
}

type Labeler interface {
	Label() string
}

type Optioner interface {
	Opt() []Option
}

type Validator interface {
	Validate() bool
}

type Initializer interface {
	Init()
}

type Handler interface {
	Handle() Symbol
}

// EventHandler is the payload-accepting form of Handler and wins when a
// widget implements both.
type EventHandler interface {
	HandleEvent(ev Event) Symbol
}

type Storer interface {
	Store()
}

type Cleaner interface {
	Cleanup()
}

type ItemLister interface {
	Items() ItemList
}

type MinimumBound interface {
	Minimum() int
}

type MaximumBound interface {
	Maximum() int
}

// Composite widgets supply a content tree that may embed other widgets.
type Composite interface {
	Contents() Term
}

// Capability is the set of hooks a widget implements.
type Capability uint32

const (
	CapHelp Capability = 1 << iota
	CapLabel
	CapOpt
	CapValidate
	CapInit
	CapStore
	CapHandle
	CapHandleEvent
	CapCleanup
	CapItems
	CapMinimum
	CapMaximum
	CapContents
	CapObserveAll
)

var capNames = []struct {
	c    Capability
	name string
}{
	{CapHelp, "help"},
	{CapLabel, "label"},
	{CapOpt, "opt"},
	{CapValidate, "validate"},
	{CapInit, "init"},
	{CapStore, "store"},
	{CapHandle, "handle"},
	{CapHandleEvent, "handle_event"},
	{CapCleanup, "cleanup"},
	{CapItems, "items"},
	{CapMinimum, "minimum"},
	{CapMaximum, "maximum"},
	{CapContents, "contents"},
	{CapObserveAll, "observe_all"},
}

func (c Capability) Has(o Capability) bool { return c&o == o }

func (c Capability) String() string {
	parts := make([]string, 0, len(capNames))
	for _, n := range capNames {
		if c.Has(n.c) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// Capabilities computes the hook set of w.
func Capabilities(w Widget) Capability {
	var c Capability
	if _, ok := w.(Helper); ok {
		c |= CapHelp
	}
	if _, ok := w.(Labeler); ok {
		c |= CapLabel
	}
	if _, ok := w.(Optioner); ok {
		c |= CapOpt
	}
	if _, ok := w.(Validator); ok {
		c |= CapValidate
	}
	if _, ok := w.(Initializer); ok {
		c |= CapInit
	}
	if _, ok := w.(Storer); ok {
		c |= CapStore
	}
	if _, ok := w.(Handler); ok {
		c |= CapHandle
	}
	if _, ok := w.(EventHandler); ok {
		c |= CapHandleEvent
	}
	if _, ok := w.(Cleaner); ok {
		c |= CapCleanup
	}
	if _, ok := w.(ItemLister); ok {
		c |= CapItems
	}
	if _, ok := w.(MinimumBound); ok {
		c |= CapMinimum
	}
	if _, ok := w.(MaximumBound); ok {
		c |= CapMaximum
	}
	if _, ok := w.(Composite); ok {
		c |= CapContents
	}
	if w.ObservesAll() {
		c |= CapObserveAll
	}
	return c
}

// Base carries identity and host access for widgets. Embed it and call Setup
// from the constructor.
type Base struct {
	id         string
	tag        TypeTag
	observeAll bool
	host       Host
}

// Setup binds the widget to its host and fixes its kind.
func (b *Base) Setup(h Host, tag TypeTag, id string) {
	b.host = h
	b.tag = tag
	b.id = id
}

func (b *Base) WidgetID() string      { return b.id }
func (b *Base) SetWidgetID(id string) { b.id = id }
func (b *Base) WidgetType() TypeTag   { return b.tag }
func (b *Base) ObservesAll() bool     { return b.observeAll }

// SetObserveAll makes the widget receive every event instead of only the
// ones it declares.
func (b *Base) SetObserveAll(v bool) { b.observeAll = v }

func (b *Base) Host() Host { return b.host }

// Query reads prop of the rendered widget.
func (b *Base) Query(prop Property) any {
	if b.host == nil {
		return nil
	}
	return b.host.Query(b.id, prop)
}

// Change writes prop of the rendered widget.
func (b *Base) Change(prop Property, v any) bool {
	if b.host == nil {
		return false
	}
	return b.host.Change(b.id, prop, v)
}

func (b *Base) Enabled() bool {
	v, _ := b.Query(PropEnabled).(bool)
	return v
}

func (b *Base) Enable()  { b.Change(PropEnabled, true) }
func (b *Base) Disable() { b.Change(PropEnabled, false) }

type idSetter interface{ SetWidgetID(string) }

// defaultID fills an empty id from the concrete type name of w.
func defaultID(w Widget) string {
	if id := w.WidgetID(); id != "" {
		return id
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	id := t.Name()
	if s, ok := w.(idSetter); ok {
		s.SetWidgetID(id)
	}
	return id
}
