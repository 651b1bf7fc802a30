package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"slices"

	"github.com/jask/cwmkit/core"
)

// DefaultExitIDs are the button ids that close a dialog when no widget claims
// their event.
var DefaultExitIDs = []string{
	string(core.SymbolNext),
	string(core.SymbolBack),
	string(core.SymbolAbort),
	string(core.SymbolCancel),
	string(core.SymbolOK),
	string(core.SymbolAccept),
}

// ErrNotOpen is returned when a dialog is dispatched before Open.
var ErrNotOpen = errors.New("dialog is not open")

// EventSource yields one event per call, blocking until one is available.
type EventSource interface {
	NextEvent(ctx context.Context) (core.Event, error)
}

// Dialog drives the lifecycle of the widgets embedded in one content tree:
// init on open, handle per event, validate then store on a committing exit,
// cleanup on close.
type Dialog struct {
	Host     *Store
	Contents core.Term
	ExitIDs  []string
	Logger   *log.Logger

	widgets *core.WidgetSet
	open    bool
	blocked core.Symbol
}

func NewDialog(h *Store, contents core.Term) *Dialog {
	return &Dialog{
		Host:     h,
		Contents: contents,
		ExitIDs:  slices.Clone(DefaultExitIDs),
		Logger:   log.New(io.Discard, "", 0),
	}
}

// Open compiles the contents, renders them into the host and runs the init
// hooks.
func (d *Dialog) Open() error {
	compiled, err := core.Compile(d.Contents)
	if err != nil {
		return fmt.Errorf("compile dialog: %w", err)
	}
	defs := make([]core.Definition, 0, len(compiled.Widgets))
	for _, w := range compiled.Widgets {
		def, err := core.BuildDefinition(w)
		if err != nil {
			return fmt.Errorf("build definition: %w", err)
		}
		defs = append(defs, def)
	}
	set, err := core.NewWidgetSet(defs...)
	if err != nil {
		return fmt.Errorf("register widgets: %w", err)
	}
	if err := set.CheckTargets(); err != nil {
		return fmt.Errorf("register widgets: %w", err)
	}
	d.widgets = set
	d.Host.SetContent(core.Expand(compiled.Content, defs))
	d.open = true
	d.Logger.Printf("dialog open: %d widgets", set.Len())
	set.Init()
	return nil
}

// Widgets returns the registered widget set, nil before Open.
func (d *Dialog) Widgets() *core.WidgetSet { return d.widgets }

// Dispatch routes one event. It returns the exit symbol and true when the
// dialog is done. A committing exit whose validation fails keeps the dialog
// running.
func (d *Dialog) Dispatch(ev core.Event) (core.Symbol, bool, error) {
	if !d.open {
		return core.SymbolNone, false, ErrNotOpen
	}
	d.blocked = core.SymbolNone
	ret := d.widgets.Handle(ev)
	if ret == core.SymbolNone && slices.Contains(d.ExitIDs, ev.ID) {
		ret = core.Symbol(ev.ID)
	}
	if ret == core.SymbolNone {
		return core.SymbolNone, false, nil
	}
	if ret.Commits() {
		if !d.widgets.Validate(ev) {
			d.Logger.Printf("exit %q blocked by validation", ret)
			d.blocked = ret
			return core.SymbolNone, false, nil
		}
		d.widgets.Store(ev)
	}
	d.Logger.Printf("dialog exit: %s", ret)
	return ret, true, nil
}

// Blocked returns the exit the last Dispatch refused because validation
// failed, or SymbolNone.
func (d *Dialog) Blocked() core.Symbol { return d.blocked }

// Close runs the cleanup hooks once.
func (d *Dialog) Close() {
	if !d.open {
		return
	}
	d.open = false
	d.widgets.Cleanup()
}

// Run opens the dialog, dispatches events from src until an exit and closes
// it.
func (d *Dialog) Run(ctx context.Context, src EventSource) (core.Symbol, error) {
	if err := d.Open(); err != nil {
		return core.SymbolNone, err
	}
	defer d.Close()
	for {
		ev, err := src.NextEvent(ctx)
		if err != nil {
			return core.SymbolNone, err
		}
		ret, done, err := d.Dispatch(ev)
		if err != nil {
			return core.SymbolNone, err
		}
		if done {
			return ret, nil
		}
	}
}
