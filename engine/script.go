package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jask/cwmkit/core"
)

// ErrScriptExhausted is returned when a script runs out of events.
var ErrScriptExhausted = errors.New("event script exhausted")

// Step is one scripted user action: an optional property change applied to
// the host before the event is delivered.
type Step struct {
	Event core.Event
	Set   func(h *Store) error
}

// Script replays steps against a store, one per NextEvent call.
type Script struct {
	Host  *Store
	Steps []Step
	next  int
}

func (s *Script) NextEvent(ctx context.Context) (core.Event, error) {
	if err := ctx.Err(); err != nil {
		return core.Event{}, err
	}
	if s.next >= len(s.Steps) {
		return core.Event{}, ErrScriptExhausted
	}
	st := s.Steps[s.next]
	s.next++
	if st.Set != nil && s.Host != nil {
		if err := st.Set(s.Host); err != nil {
			return core.Event{}, err
		}
	}
	return st.Event, nil
}

// Press scripts activating widget id.
func Press(id string) Step { return Step{Event: core.Activated(id)} }

// Type scripts changing the value of widget id.
func Type(id string, prop core.Property, v any) Step {
	return Step{
		Event: core.Changed(id),
		Set: func(h *Store) error {
			if !h.Change(id, prop, v) {
				return fmt.Errorf("%w: %q", core.ErrUnknownWidget, id)
			}
			return nil
		},
	}
}

// TypeText scripts typing text into widget id, parsed by its kind.
func TypeText(id, text string) Step {
	return Step{
		Event: core.Changed(id),
		Set:   func(h *Store) error { return h.SetText(id, text) },
	}
}

// ParseSteps reads the compact form used on the command line:
// "id" presses a widget, "id=value" types value into it.
func ParseSteps(args []string) []Step {
	out := make([]Step, 0, len(args))
	for _, a := range args {
		id, val, ok := strings.Cut(a, "=")
		if !ok {
			out = append(out, Press(id))
			continue
		}
		out = append(out, TypeText(id, val))
	}
	return out
}
