package widgets

import "github.com/jask/cwmkit/core"

// Valued reads and writes the value of a rendered widget through the
// property its kind uses for it.
type Valued[T any] struct {
	w    *core.Base
	prop core.Property
}

func valued[T any](w *core.Base, prop core.Property) Valued[T] {
	return Valued[T]{w: w, prop: prop}
}

// Value returns the current value, or the zero value when the host has none
// or holds a different type.
func (v Valued[T]) Value() T {
	var zero T
	if v.w == nil {
		return zero
	}
	got, ok := v.w.Query(v.prop).(T)
	if !ok {
		return zero
	}
	return got
}

func (v Valued[T]) SetValue(val T) {
	if v.w == nil {
		return
	}
	v.w.Change(v.prop, val)
}

// ValueProperty names the property backing Value.
func (v Valued[T]) ValueProperty() core.Property { return v.prop }

// ItemsSelection adds an item list to a leaf. Items defaults to an empty list;
// widgets override it to populate the definition.
type ItemsSelection struct {
	w *core.Base
}

func (s ItemsSelection) Items() core.ItemList { return core.ItemList{} }

// ChangeItems replaces the items of the rendered widget.
func (s ItemsSelection) ChangeItems(items core.ItemList) {
	if s.w == nil {
		return
	}
	s.w.Change(core.PropItems, append(core.ItemList(nil), items...))
}

// CurrentItems reads the items of the rendered widget back.
func (s ItemsSelection) CurrentItems() core.ItemList {
	if s.w == nil {
		return nil
	}
	items, _ := s.w.Query(core.PropItems).(core.ItemList)
	return items
}
