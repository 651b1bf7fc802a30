package tabs

import (
	"errors"
	"fmt"

	"github.com/jask/cwmkit/core"
)

// DumbTab is the host special widget that draws a native tab bar.
const DumbTab = "DumbTab"

// GlyphActive is the glyph prefixed to the active push-button tab label.
const GlyphActive = "BulletArrowRight"

// ErrNoTabs is returned when a container is built without entries.
var ErrNoTabs = errors.New("tab container needs at least one tab")

// Container shows one tab at a time. Events first reach the widgets of the
// active tab; events carrying another tab's id request a switch, which only
// happens when the active tab validates, and after it has been stored.
type Container struct {
	core.Base
	entries []*entry
	current *entry
}

// New compiles every tab once. The container observes all events since the
// widgets of its tabs are not registered with the enclosing dialog.
func New(h core.Host, id string, tabs ...Entry) (*Container, error) {
	if len(tabs) == 0 {
		return nil, ErrNoTabs
	}
	if id == "" {
		id = "tabs"
	}
	c := &Container{}
	c.Setup(h, core.TagCustom, id)
	c.SetObserveAll(true)
	seen := map[string]bool{}
	for _, t := range tabs {
		e, err := compileEntry(t)
		if err != nil {
			return nil, err
		}
		if seen[e.id()] {
			return nil, fmt.Errorf("%w: tab %q", core.ErrDuplicateID, e.id())
		}
		seen[e.id()] = true
		c.entries = append(c.entries, e)
	}
	return c, nil
}

func (c *Container) replacePointID() string { return c.WidgetID() + "_content" }

// Contents draws a native tab bar when the host offers one and a push-button
// bar above a frame otherwise.
func (c *Container) Contents() core.Term {
	rp := core.ReplacePoint(core.ID(c.replacePointID()), core.Empty())
	if c.Host() != nil && c.Host().HasSpecialWidget(DumbTab) {
		items := make(core.ItemList, 0, len(c.entries))
		for _, e := range c.entries {
			items = append(items, core.Item{ID: e.id(), Label: e.label()})
		}
		return core.T(DumbTab, core.ID(c.WidgetID()), items, rp)
	}
	buttons := make([]any, 0, len(c.entries))
	for _, e := range c.entries {
		buttons = append(buttons, core.PushButton(core.ID(e.id()), e.label()))
	}
	return core.VBox(core.Left(core.HBox(buttons...)), core.Frame("", rp))
}

// Init shows the first tab marked initial, or the first declared tab.
func (c *Container) Init() {
	start := c.entries[0]
	for _, e := range c.entries {
		if e.tab.Initial() {
			start = e
			break
		}
	}
	c.switchTo(start)
}

// HandleEvent implements the tab switch protocol.
func (c *Container) HandleEvent(ev core.Event) core.Symbol {
	if c.current == nil {
		return core.SymbolNone
	}
	if ret := c.current.widgets.Handle(ev); ret != core.SymbolNone {
		return ret
	}
	target := c.find(ev.ID)
	if target == nil || target == c.current {
		return core.SymbolNone
	}
	if !c.current.widgets.Validate(ev) {
		c.mark(c.current)
		return core.SymbolNone
	}
	c.current.widgets.Store(ev)
	c.switchTo(target)
	return core.SymbolNone
}

// Validate checks the active tab only.
func (c *Container) Validate() bool {
	if c.current == nil {
		return true
	}
	return c.current.widgets.Validate(core.Event{ID: c.WidgetID()})
}

// Store stores the active tab only; tabs left earlier were stored when the
// switch away from them happened.
func (c *Container) Store() {
	if c.current == nil {
		return
	}
	c.current.widgets.Store(core.Event{ID: c.WidgetID()})
}

// Cleanup runs the cleanup hooks of every tab that has been shown.
func (c *Container) Cleanup() {
	for _, e := range c.entries {
		if e.shown {
			e.widgets.Cleanup()
			e.shown = false
		}
	}
}

// Current returns the id of the active tab, or "" before Init.
func (c *Container) Current() string {
	if c.current == nil {
		return ""
	}
	return c.current.id()
}

// TabIDs returns the tab ids in declaration order.
func (c *Container) TabIDs() []string {
	out := make([]string, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, e.id())
	}
	return out
}

// Lookup returns the definition of a widget nested in any tab.
func (c *Container) Lookup(id string) (core.Definition, bool) {
	for _, e := range c.entries {
		if def, ok := e.widgets.Lookup(id); ok {
			return def, true
		}
	}
	return core.Definition{}, false
}

func (c *Container) find(id string) *entry {
	for _, e := range c.entries {
		if e.id() == id {
			return e
		}
	}
	return nil
}

func (c *Container) switchTo(e *entry) {
	if h := c.Host(); h != nil {
		h.Replace(c.replacePointID(), e.content)
	}
	e.widgets.Init()
	e.shown = true
	c.mark(e)
	c.current = e
}

// mark highlights e as the active tab. The push-button bar restores the label
// of the previously active tab first.
func (c *Container) mark(e *entry) {
	h := c.Host()
	if h == nil {
		return
	}
	if h.HasSpecialWidget(DumbTab) {
		h.Change(c.WidgetID(), core.PropCurrentItem, e.id())
		return
	}
	if c.current != nil {
		h.Change(c.current.id(), core.PropLabel, c.current.label())
	}
	h.Change(e.id(), core.PropLabel, h.Glyph(GlyphActive)+"  "+e.label())
}
