package core

import (
	"fmt"
	"slices"
)

// WidgetSet is the flat id -> definition map a host drives for one dialog or
// tab. Nested definitions of composites are registered alongside their
// parents, the way the host registrar consumes them.
type WidgetSet struct {
	order []string
	defs  map[string]Definition
}

// NewWidgetSet flattens defs. Two definitions sharing an id are a caller
// error and are reported with ErrDuplicateID.
func NewWidgetSet(defs ...Definition) (*WidgetSet, error) {
	s := &WidgetSet{defs: map[string]Definition{}}
	for _, d := range defs {
		if err := s.add(d); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *WidgetSet) add(d Definition) error {
	if _, exists := s.defs[d.ID]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateID, d.ID)
	}
	s.defs[d.ID] = d
	s.order = append(s.order, d.ID)
	for _, nested := range d.Widgets {
		if err := s.add(nested); err != nil {
			return err
		}
	}
	return nil
}

// Build builds the definition of every widget and flattens them.
func Build(widgets ...Widget) (*WidgetSet, error) {
	defs := make([]Definition, 0, len(widgets))
	for _, w := range widgets {
		d, err := BuildDefinition(w)
		if err != nil {
			return nil, err
		}
		defs = append(defs, d)
	}
	return NewWidgetSet(defs...)
}

// IDs returns the registered ids in registration order.
func (s *WidgetSet) IDs() []string { return slices.Clone(s.order) }

func (s *WidgetSet) Len() int { return len(s.order) }

func (s *WidgetSet) Lookup(id string) (Definition, bool) {
	d, ok := s.defs[id]
	return d, ok
}

// CheckTargets verifies every declared handle_events id names a registered
// widget.
func (s *WidgetSet) CheckTargets() error {
	for _, id := range s.order {
		d := s.defs[id]
		if d.HandleAll {
			continue
		}
		for _, target := range d.HandleEvents {
			if _, ok := s.defs[target]; ok {
				continue
			}
			if hint := Suggest(target, s.order); hint != "" {
				return fmt.Errorf("%w: %q declared by %q (did you mean %q?)", ErrUnknownWidget, target, id, hint)
			}
			return fmt.Errorf("%w: %q declared by %q", ErrUnknownWidget, target, id)
		}
	}
	return nil
}

// Init runs every init hook in registration order.
func (s *WidgetSet) Init() {
	for _, id := range s.order {
		if d := s.defs[id]; d.Init != nil {
			d.Init(id)
		}
	}
}

// Handle delivers ev to every widget that receives it and returns the first
// non-empty symbol, skipping the remaining widgets.
func (s *WidgetSet) Handle(ev Event) Symbol {
	for _, id := range s.order {
		d := s.defs[id]
		if !d.Receives(ev.ID) {
			continue
		}
		if ret := d.Handle(id, ev); ret != SymbolNone {
			return ret
		}
	}
	return SymbolNone
}

// Validate runs validate hooks in order and stops at the first failure.
func (s *WidgetSet) Validate(ev Event) bool {
	for _, id := range s.order {
		d := s.defs[id]
		if d.Validate == nil {
			continue
		}
		if !d.Validate(id, ev) {
			return false
		}
	}
	return true
}

// Store runs every store hook in order.
func (s *WidgetSet) Store(ev Event) {
	for _, id := range s.order {
		if d := s.defs[id]; d.Store != nil {
			d.Store(id, ev)
		}
	}
}

// Cleanup runs every cleanup hook in order.
func (s *WidgetSet) Cleanup() {
	for _, id := range s.order {
		if d := s.defs[id]; d.Cleanup != nil {
			d.Cleanup(id)
		}
	}
}
