// Package engine is a minimal host dialog engine: an in-memory property
// service holding the rendered content tree, and a dialog loop driving the
// widget lifecycle over it.
package engine

import (
	"fmt"
	"log"
	"slices"
	"strconv"
	"strings"

	"github.com/jask/cwmkit/core"
)

// DefaultGlyphs maps glyph names to the text drawn for them.
var DefaultGlyphs = map[string]string{
	"BulletArrowRight": "►",
	"CheckMark":        "✓",
	"ArrowRight":       "→",
	"ArrowLeft":        "←",
}

// Store keeps the rendered content tree and the properties of every widget
// in it. It implements core.Host.
type Store struct {
	Logger *log.Logger

	content  core.Term
	props    map[string]map[core.Property]any
	features map[string]bool
	glyphs   map[string]string
}

// NewStore returns a store supporting the given special widgets.
func NewStore(features ...string) *Store {
	s := &Store{
		props:    map[string]map[core.Property]any{},
		features: map[string]bool{},
		glyphs:   map[string]string{},
	}
	for k, v := range DefaultGlyphs {
		s.glyphs[k] = v
	}
	for _, f := range features {
		s.features[f] = true
	}
	return s
}

// SetGlyph overrides the text drawn for a glyph.
func (s *Store) SetGlyph(name, text string) { s.glyphs[name] = text }

// SetContent replaces the whole rendered tree.
func (s *Store) SetContent(t core.Term) {
	s.content = t
	s.props = map[string]map[core.Property]any{}
	s.register(t)
}

// Content returns the rendered tree with replace points resolved.
func (s *Store) Content() core.Term { return s.content }

// Widgets returns the ids present in the rendered tree in tree order.
func (s *Store) Widgets() []string {
	var out []string
	s.content.Walk(func(t core.Term) bool {
		if id, ok := t.ID(); ok && t.Name != "ReplacePoint" {
			out = append(out, id)
		}
		return true
	})
	return out
}

func (s *Store) Query(id string, prop core.Property) any {
	p, ok := s.props[id]
	if !ok {
		s.logf("query of unknown widget %q (%s)", id, prop)
		return nil
	}
	v := p[prop]
	if l, ok := v.(core.ItemList); ok {
		return slices.Clone(l)
	}
	if l, ok := v.([]string); ok {
		return slices.Clone(l)
	}
	return v
}

func (s *Store) Change(id string, prop core.Property, v any) bool {
	p, ok := s.props[id]
	if !ok {
		if hint := core.Suggest(id, s.Widgets()); hint != "" {
			s.logf("change of unknown widget %q (%s), did you mean %q?", id, prop, hint)
		} else {
			s.logf("change of unknown widget %q (%s)", id, prop)
		}
		return false
	}
	p[prop] = v
	return true
}

// Replace swaps the child of the ReplacePoint id and registers the widgets of
// the new content. Widgets of the old content are forgotten.
func (s *Store) Replace(id string, content core.Term) bool {
	old, replaced, ok := replaceIn(s.content, id, content)
	if !ok {
		s.logf("replace point %q not found", id)
		return false
	}
	old.Walk(func(t core.Term) bool {
		if wid, has := t.ID(); has {
			delete(s.props, wid)
		}
		return true
	})
	s.content = replaced
	s.register(content)
	return true
}

// Kind returns the primitive name of widget id, empty when it is not shown.
func (s *Store) Kind(id string) string {
	if t, ok := s.content.Find(id); ok {
		return t.Name
	}
	return ""
}

// ValueProperty returns the property holding the value of widget id.
func (s *Store) ValueProperty(id string) core.Property {
	switch s.Kind(id) {
	case "SelectionBox", "DumbTab":
		return core.PropCurrentItem
	case "RadioButtonGroup":
		return core.PropCurrentButton
	case "MultiSelectionBox":
		return core.PropSelectedItems
	}
	return core.PropValue
}

// SetText parses text according to the kind of widget id and stores it as
// the widget value. Lists are comma separated.
func (s *Store) SetText(id, text string) error {
	var v any = text
	switch s.Kind(id) {
	case "":
		return fmt.Errorf("%w: %q", core.ErrUnknownWidget, id)
	case "IntField":
		n, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil {
			return fmt.Errorf("%s: not a number: %q", id, text)
		}
		v = n
	case "CheckBox":
		b, err := strconv.ParseBool(strings.TrimSpace(text))
		if err != nil {
			return fmt.Errorf("%s: not a boolean: %q", id, text)
		}
		v = b
	case "MultiSelectionBox":
		parts := []string{}
		for _, p := range strings.Split(text, ",") {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
		v = parts
	}
	s.Change(id, s.ValueProperty(id), v)
	return nil
}

func (s *Store) HasSpecialWidget(name string) bool { return s.features[name] }

func (s *Store) Glyph(name string) string {
	if g, ok := s.glyphs[name]; ok {
		return g
	}
	return name
}

func (s *Store) logf(format string, args ...any) {
	if s.Logger != nil {
		s.Logger.Printf(format, args...)
	}
}

// register seeds properties from the primitive terms of t: label, items,
// bounds and a default value per kind.
func (s *Store) register(t core.Term) {
	t.Walk(func(n core.Term) bool {
		id, ok := n.ID()
		if !ok || n.Name == "ReplacePoint" || n.Name == core.RefName {
			return true
		}
		p := map[core.Property]any{core.PropEnabled: true}
		if label := n.Text(); label != "" {
			p[core.PropLabel] = label
		}
		for _, a := range n.Args {
			if items, ok := a.(core.ItemList); ok {
				p[core.PropItems] = slices.Clone(items)
			}
		}
		switch n.Name {
		case "InputField", "Password", "MultiLineEdit", "RichText", "ComboBox":
			p[core.PropValue] = ""
		case "CheckBox":
			p[core.PropValue] = false
		case "IntField":
			p[core.PropValue] = 0
			if lo, ok := firstInt(n); ok {
				p[core.PropValue] = lo
			}
		case "SelectionBox":
			p[core.PropCurrentItem] = ""
		case "MultiSelectionBox":
			p[core.PropSelectedItems] = []string{}
		case "RadioButtonGroup":
			p[core.PropCurrentButton] = ""
		case "DumbTab":
			p[core.PropCurrentItem] = ""
		}
		s.props[id] = p
		return true
	})
}

func firstInt(t core.Term) (int, bool) {
	for _, a := range t.Args {
		if v, ok := a.(int); ok {
			return v, true
		}
	}
	return 0, false
}

// replaceIn returns the previous child of the replace point id, the tree with
// the child swapped, and whether the point was found.
func replaceIn(t core.Term, id string, content core.Term) (core.Term, core.Term, bool) {
	if t.Name == "ReplacePoint" {
		if rid, ok := t.ID(); ok && rid == id {
			var old core.Term
			for _, c := range t.Children() {
				old = c
			}
			return old, core.ReplacePoint(core.ID(id), content), true
		}
	}
	args := make([]any, len(t.Args))
	copy(args, t.Args)
	for i, a := range args {
		child, ok := a.(core.Term)
		if !ok {
			continue
		}
		old, next, found := replaceIn(child, id, content)
		if found {
			args[i] = next
			return old, core.Term{Name: t.Name, Args: args}, true
		}
	}
	return core.Term{}, t, false
}
