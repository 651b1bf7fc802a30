// Package tui hosts a dialog in the terminal: it draws the content tree kept
// by an engine.Store with lipgloss and turns key presses into widget events
// dispatched through an engine.Dialog.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/cwmkit/core"
	"github.com/jask/cwmkit/engine"
)

// DefinitionSource resolves widget definitions by id. Both core.WidgetSet
// and tabs.Container satisfy it.
type DefinitionSource interface {
	Lookup(id string) (core.Definition, bool)
}

// Options configure a host run.
type Options struct {
	Title  string
	Keys   map[string][]string
	Logger *log.Logger
	// Sources are searched for help texts after the dialog widgets.
	Sources []DefinitionSource
}

const blockedText = "Some values are not valid.\nCorrect them before leaving the dialog."

type Model struct {
	dialog  *engine.Dialog
	host    *engine.Store
	keys    *KeyRegistry
	title   string
	logger  *log.Logger
	sources []DefinitionSource

	focusID string
	cursors map[string]int
	input   textinput.Model
	editing string
	popup   string

	status    string
	statusErr bool
	width     int
	height    int

	result core.Symbol
	done   bool
}

// New opens d and returns a model driving it.
func New(d *engine.Dialog, opts Options) (Model, error) {
	if err := d.Open(); err != nil {
		return Model{}, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	m := Model{
		dialog:  d,
		host:    d.Host,
		keys:    NewKeyRegistry(ApplyActionKeybindings(DefaultKeyBindings(), opts.Keys)),
		title:   opts.Title,
		logger:  logger,
		sources: opts.Sources,
		cursors: map[string]int{},
		input:   textinput.New(),
	}
	if order := focusOrder(m.host); len(order) > 0 {
		m.focusID = order[0]
	}
	return m, nil
}

// Run opens d, drives it from the terminal until an exit and closes it. A
// program stopped without an exit reports SymbolAbort.
func Run(ctx context.Context, d *engine.Dialog, opts Options) (core.Symbol, error) {
	m, err := New(d, opts)
	if err != nil {
		return core.SymbolNone, err
	}
	defer d.Close()
	final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return core.SymbolNone, fmt.Errorf("run tui: %w", err)
	}
	fm, ok := final.(Model)
	if !ok || !fm.done {
		return core.SymbolAbort, ctx.Err()
	}
	return fm.result, nil
}

// Result returns the exit symbol and whether the dialog has finished.
func (m Model) Result() (core.Symbol, bool) { return m.result, m.done }

// Focused returns the id of the widget holding keyboard focus.
func (m Model) Focused() string {
	order := focusOrder(m.host)
	if slices.Contains(order, m.focusID) {
		return m.focusID
	}
	if len(order) > 0 {
		return order[0]
	}
	return ""
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	if m.editing != "" {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) scope() string {
	switch {
	case m.popup != "":
		return scopePopup
	case m.editing != "":
		return scopeEdit
	}
	return scopeDialog
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.scope() {
	case scopePopup:
		if m.keys.IsAction(msg, "close", scopePopup) {
			m.popup = ""
		}
		return m, nil
	case scopeEdit:
		switch m.keys.Action(msg, scopeEdit) {
		case "commit":
			return m.commitEdit()
		case "cancel":
			m.stopEdit()
			m.status, m.statusErr = "", false
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	id := m.Focused()
	switch m.keys.Action(msg, scopeDialog) {
	case "focus-next":
		m.moveFocus(1)
	case "focus-prev":
		m.moveFocus(-1)
	case "abort":
		return m.dispatch(core.Activated(string(core.SymbolAbort)))
	case "help":
		m.popup = m.helpFor(id)
	case "activate":
		return m.activate(id)
	case "item-prev":
		return m.step(id, -1)
	case "item-next":
		return m.step(id, 1)
	}
	return m, nil
}

func (m *Model) moveFocus(delta int) {
	order := focusOrder(m.host)
	if len(order) == 0 {
		m.focusID = ""
		return
	}
	i := slices.Index(order, m.Focused())
	i = (i + delta + len(order)) % len(order)
	m.focusID = order[i]
}

func (m Model) activate(id string) (tea.Model, tea.Cmd) {
	switch m.host.Kind(id) {
	case "PushButton":
		return m.dispatch(core.Activated(id))
	case "CheckBox":
		v, _ := m.host.Query(id, core.PropValue).(bool)
		m.host.Change(id, core.PropValue, !v)
		return m.dispatch(core.Changed(id))
	case "InputField", "Password", "IntField", "MultiLineEdit", "ComboBox":
		return m.startEdit(id)
	case "SelectionBox", "RadioButtonGroup":
		if it, ok := m.cursorItem(id); ok {
			m.host.Change(id, m.host.ValueProperty(id), it.ID)
			return m.dispatch(core.Changed(id))
		}
	case "MultiSelectionBox":
		if it, ok := m.cursorItem(id); ok {
			selected, _ := m.host.Query(id, core.PropSelectedItems).([]string)
			if i := slices.Index(selected, it.ID); i >= 0 {
				selected = slices.Delete(selected, i, i+1)
			} else {
				selected = append(selected, it.ID)
			}
			m.host.Change(id, core.PropSelectedItems, selected)
			return m.dispatch(core.Changed(id))
		}
	case "MenuButton":
		if it, ok := m.cursorItem(id); ok {
			return m.dispatch(core.Event{ID: it.ID, Type: core.EventMenu, Reason: core.ReasonActivated})
		}
	}
	return m, nil
}

// step moves through the items of the focused widget. Combo boxes and tab
// bars act on the move right away, lists only move their cursor.
func (m Model) step(id string, delta int) (tea.Model, tea.Cmd) {
	items, _ := m.host.Query(id, core.PropItems).(core.ItemList)
	if len(items) == 0 {
		return m, nil
	}
	switch m.host.Kind(id) {
	case "ComboBox":
		value, _ := m.host.Query(id, core.PropValue).(string)
		next := items[wrap(slices.Index(items.IDs(), value)+delta, len(items))]
		m.host.Change(id, core.PropValue, next.ID)
		return m.dispatch(core.Changed(id))
	case "DumbTab":
		current, _ := m.host.Query(id, core.PropCurrentItem).(string)
		next := items[wrap(slices.Index(items.IDs(), current)+delta, len(items))]
		return m.dispatch(core.Activated(next.ID))
	case "SelectionBox", "RadioButtonGroup", "MultiSelectionBox", "MenuButton":
		m.cursors[id] = wrap(m.cursors[id]+delta, len(items))
	}
	return m, nil
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}

func (m Model) cursorItem(id string) (core.Item, bool) {
	items, _ := m.host.Query(id, core.PropItems).(core.ItemList)
	i := m.cursors[id]
	if i < 0 || i >= len(items) {
		return core.Item{}, false
	}
	return items[i], true
}

func (m Model) startEdit(id string) (tea.Model, tea.Cmd) {
	m.input = textinput.New()
	m.input.Prompt = ""
	m.input.CharLimit = 256
	m.input.Width = 32
	if v := m.host.Query(id, core.PropValue); v != nil {
		m.input.SetValue(fmt.Sprint(v))
	}
	if m.host.Kind(id) == "Password" {
		m.input.EchoMode = textinput.EchoPassword
	}
	m.input.CursorEnd()
	m.editing = id
	cmd := m.input.Focus()
	return m, cmd
}

func (m *Model) stopEdit() {
	m.input.Blur()
	m.editing = ""
}

func (m Model) commitEdit() (tea.Model, tea.Cmd) {
	id := m.editing
	if err := m.host.SetText(id, m.input.Value()); err != nil {
		m.status, m.statusErr = err.Error(), true
		return m, nil
	}
	m.stopEdit()
	m.status, m.statusErr = "", false
	return m.dispatch(core.Changed(id))
}

// dispatch hands ev to the dialog and quits once it reports an exit.
func (m Model) dispatch(ev core.Event) (tea.Model, tea.Cmd) {
	ret, done, err := m.dialog.Dispatch(ev)
	if err != nil {
		m.logger.Printf("dispatch %s: %v", ev.ID, err)
		m.status, m.statusErr = err.Error(), true
		return m, nil
	}
	if done {
		m.result, m.done = ret, true
		return m, tea.Quit
	}
	if blocked := m.dialog.Blocked(); blocked != core.SymbolNone {
		m.popup = blockedText
		m.status, m.statusErr = fmt.Sprintf("%s blocked by validation", blocked), true
	}
	return m, nil
}

func (m Model) helpFor(id string) string {
	sources := []DefinitionSource{m.dialog.Widgets()}
	sources = append(sources, m.sources...)
	for _, src := range sources {
		if def, ok := src.Lookup(id); ok && def.Help != "" {
			return richText(def.Help)
		}
	}
	return "No help available."
}

func (m Model) View() string {
	if m.done {
		return ""
	}
	width := max(1, m.width)
	header := renderHeader(m.title, width)
	status := renderStatusBar(m.status, m.statusErr, width)
	footer := renderFooter(m.keys, m.scope(), width)

	r := renderer{host: m.host, focus: m.Focused(), cursors: m.cursors}
	if m.editing != "" {
		r.editor = m.input.View()
	}
	body := r.render(m.host.Content())
	if m.height <= 0 {
		return strings.Join([]string{header, status, body, footer}, "\n")
	}
	available := max(0, m.height-lipgloss.Height(header)-lipgloss.Height(status)-lipgloss.Height(footer))
	if m.popup != "" && available > 0 {
		body = renderPopup(body, popupTitle.Render("Notice")+"\n\n"+m.popup, width, available)
	}
	body = fitHeight(body, available)
	view := strings.Join([]string{header, status, body, footer}, "\n")
	return appStyle.Width(width).MaxWidth(width).Render(fitHeight(view, m.height))
}
