package tabs

import (
	"fmt"

	"github.com/jask/cwmkit/core"
)

// Tab is the base of a tab entry. Concrete tabs embed *Tab and implement
// Label and Contents.
type Tab struct {
	core.Base
	initial bool
}

func NewTab(h core.Host, id string) *Tab {
	t := &Tab{}
	t.Setup(h, core.TagCustom, id)
	return t
}

// Initial reports whether the tab is shown first.
func (t *Tab) Initial() bool { return t.initial }

func (t *Tab) SetInitial(v bool) { t.initial = v }

// Entry is what a container needs from a tab.
type Entry interface {
	core.Widget
	core.Labeler
	core.Composite
	Initial() bool
}

// entry is a tab compiled once for the lifetime of its container.
type entry struct {
	tab     Entry
	def     core.Definition
	widgets *core.WidgetSet
	content core.Term
	shown   bool
}

func compileEntry(tab Entry) (*entry, error) {
	def, err := core.BuildDefinition(tab)
	if err != nil {
		return nil, err
	}
	set, err := core.NewWidgetSet(def.Widgets...)
	if err != nil {
		return nil, fmt.Errorf("tab %q: %w", def.ID, err)
	}
	return &entry{tab: tab, def: def, widgets: set, content: def.Term()}, nil
}

func (e *entry) id() string    { return e.def.ID }
func (e *entry) label() string { return e.tab.Label() }
