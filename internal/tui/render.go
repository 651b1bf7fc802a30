package tui

import (
	"fmt"
	"html"
	"regexp"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/cwmkit/core"
	"github.com/jask/cwmkit/engine"
)

var (
	tagPattern   = regexp.MustCompile(`<[^>]*>`)
	breakPattern = regexp.MustCompile(`(?i)</p>|<br\s*/?>`)
)

// focusable lists the primitives that take keyboard focus.
var focusable = []string{
	"PushButton", "InputField", "Password", "IntField", "MultiLineEdit",
	"CheckBox", "ComboBox", "SelectionBox", "MultiSelectionBox",
	"RadioButtonGroup", "MenuButton", "DumbTab",
}

// renderer draws the host content tree. Properties come from the store, so
// labels changed by widgets (tab markers) show up on the next frame.
type renderer struct {
	host    *engine.Store
	focus   string
	editor  string
	cursors map[string]int
}

func (r renderer) render(t core.Term) string {
	switch t.Name {
	case "VBox":
		return lipgloss.JoinVertical(lipgloss.Left, r.children(t)...)
	case "HBox":
		return lipgloss.JoinHorizontal(lipgloss.Top, r.children(t)...)
	case "Left", "ReplacePoint":
		return strings.Join(r.children(t), "\n")
	case "Empty":
		return ""
	case "VSpacing":
		return strings.Repeat("\n", max(0, firstIntArg(t)-1))
	case "HSpacing":
		return strings.Repeat(" ", max(0, firstIntArg(t)))
	case "Label":
		return labelStyle.Render(t.Text())
	case "Frame":
		body := strings.Join(r.children(t), "\n")
		if title := t.Text(); title != "" {
			body = frameTitleStyle.Render(title) + "\n" + body
		}
		return frameStyle.Render(body)
	case "DumbTab":
		return r.dumbTab(t)
	}
	id, ok := t.ID()
	if !ok {
		return strings.Join(r.children(t), "\n")
	}
	return r.widget(t, id)
}

func (r renderer) children(t core.Term) []string {
	kids := t.Children()
	out := make([]string, 0, len(kids))
	for _, c := range kids {
		out = append(out, r.render(c))
	}
	return out
}

func (r renderer) widget(t core.Term, id string) string {
	label := r.label(t, id)
	enabled := r.enabled(id)
	focused := id == r.focus
	style := labelStyle
	switch {
	case !enabled:
		style = disabledStyle
	case focused:
		style = focusStyle
	}

	switch t.Name {
	case "PushButton":
		return style.Render("[ " + label + " ]")
	case "CheckBox":
		mark := "[ ]"
		if v, _ := r.host.Query(id, core.PropValue).(bool); v {
			mark = "[x]"
		}
		return style.Render(mark + " " + label)
	case "InputField", "Password", "IntField", "MultiLineEdit":
		value := r.text(id)
		if t.Name == "Password" {
			value = strings.Repeat("•", len([]rune(value)))
		}
		field := fieldStyle.Render(" " + value + " ")
		if focused && r.editor != "" {
			field = r.editor
		}
		if t.Name == "IntField" {
			if lo, hi, ok := bounds(t); ok {
				label += boundsHint(lo, hi)
			}
		}
		return lipgloss.JoinVertical(lipgloss.Left, style.Render(label), field)
	case "ComboBox":
		value := r.text(id)
		return lipgloss.JoinVertical(lipgloss.Left, style.Render(label), fieldStyle.Render(" ‹ "+value+" › "))
	case "SelectionBox", "RadioButtonGroup":
		current, _ := r.host.Query(id, r.host.ValueProperty(id)).(string)
		lines := []string{style.Render(label)}
		for i, it := range r.items(id) {
			mark := "( )"
			if it.ID == current {
				mark = "(•)"
			}
			lines = append(lines, r.itemLine(id, i, mark+" "+stripShortcut(it.Label), it.ID == current))
		}
		return strings.Join(lines, "\n")
	case "MultiSelectionBox":
		selected, _ := r.host.Query(id, core.PropSelectedItems).([]string)
		lines := []string{style.Render(label)}
		for i, it := range r.items(id) {
			on := slices.Contains(selected, it.ID)
			mark := "[ ]"
			if on {
				mark = "[x]"
			}
			lines = append(lines, r.itemLine(id, i, mark+" "+stripShortcut(it.Label), on))
		}
		return strings.Join(lines, "\n")
	case "MenuButton":
		lines := []string{style.Render(label + " ▾")}
		if focused {
			for i, it := range r.items(id) {
				lines = append(lines, r.itemLine(id, i, "  "+stripShortcut(it.Label), false))
			}
		}
		return strings.Join(lines, "\n")
	case "RichText":
		return labelStyle.Render(richText(r.text(id)))
	}
	return style.Render(label)
}

// itemLine draws one list entry, pointing at the cursor when the list has
// focus.
func (r renderer) itemLine(id string, i int, text string, on bool) string {
	prefix := "  "
	if id == r.focus && r.cursors[id] == i {
		prefix = "> "
	}
	if on {
		return prefix + selectedStyle.Render(text)
	}
	return prefix + text
}

func (r renderer) dumbTab(t core.Term) string {
	id, _ := t.ID()
	current, _ := r.host.Query(id, core.PropCurrentItem).(string)
	tabs := make([]string, 0)
	for _, it := range r.items(id) {
		label := stripShortcut(it.Label)
		if it.ID == current {
			if id == r.focus {
				label = "‹" + label + "›"
			}
			tabs = append(tabs, activeTabStyle.Render(label))
			continue
		}
		tabs = append(tabs, inactiveTabStyle.Render(label))
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	body := strings.Join(r.children(t), "\n")
	return lipgloss.JoinVertical(lipgloss.Left, header, frameStyle.Render(body))
}

func (r renderer) label(t core.Term, id string) string {
	if l, ok := r.host.Query(id, core.PropLabel).(string); ok && l != "" {
		return stripShortcut(l)
	}
	return stripShortcut(t.Text())
}

func (r renderer) enabled(id string) bool {
	v, ok := r.host.Query(id, core.PropEnabled).(bool)
	return !ok || v
}

func (r renderer) text(id string) string {
	v := r.host.Query(id, core.PropValue)
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

func (r renderer) items(id string) core.ItemList {
	l, _ := r.host.Query(id, core.PropItems).(core.ItemList)
	return l
}

// focusOrder returns the ids of enabled focusable widgets in tree order.
func focusOrder(host *engine.Store) []string {
	var out []string
	host.Content().Walk(func(t core.Term) bool {
		if !slices.Contains(focusable, t.Name) {
			return true
		}
		id, ok := t.ID()
		if !ok {
			return true
		}
		if v, ok := host.Query(id, core.PropEnabled).(bool); ok && !v {
			return true
		}
		out = append(out, id)
		return true
	})
	return out
}

// stripShortcut removes the keyboard shortcut marker from a label.
func stripShortcut(s string) string {
	s = strings.ReplaceAll(s, "&&", "\x00")
	s = strings.ReplaceAll(s, "&", "")
	return strings.ReplaceAll(s, "\x00", "&")
}

func richText(s string) string {
	s = breakPattern.ReplaceAllString(s, "\n")
	s = tagPattern.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	return strings.TrimRight(s, "\n")
}

func firstIntArg(t core.Term) int {
	for _, a := range t.Args {
		if n, ok := a.(int); ok {
			return n
		}
	}
	return 0
}

func boundsHint(lo, hi int) string {
	switch {
	case hi != core.DefaultMaximum:
		return fmt.Sprintf(" (%d-%d)", lo, hi)
	case lo != core.DefaultMinimum:
		return fmt.Sprintf(" (min %d)", lo)
	}
	return ""
}

func bounds(t core.Term) (lo, hi int, ok bool) {
	var ints []int
	for _, a := range t.Args {
		if n, ok := a.(int); ok {
			ints = append(ints, n)
		}
	}
	if len(ints) < 2 {
		return 0, 0, false
	}
	return ints[0], ints[1], true
}
