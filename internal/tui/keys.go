package tui

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Key scopes. The dialog scope is active unless a field is being edited or a
// popup is shown.
const (
	scopeDialog = "dialog"
	scopeEdit   = "edit"
	scopePopup  = "popup"
)

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func (r *KeyRegistry) Register(binding KeyBinding) {
	r.bindings = append(r.bindings, binding)
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

// Action returns the first action bound to msg in scope.
func (r *KeyRegistry) Action(msg tea.KeyMsg, scope string) string {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return b.Action
			}
		}
	}
	return ""
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if b.Action != action || !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return true
			}
		}
	}
	return false
}

func normalizeKey(k string) string {
	if k == " " {
		return "space"
	}
	s := strings.ToLower(strings.TrimSpace(k))
	s = strings.ReplaceAll(s, "control+", "ctrl+")
	s = strings.ReplaceAll(s, "return", "enter")
	return strings.ReplaceAll(s, "spacebar", "space")
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"tab", "down"}, Action: "focus-next", Description: "next", Scopes: []string{scopeDialog}},
		{Keys: []string{"shift+tab", "up"}, Action: "focus-prev", Description: "prev", Scopes: []string{scopeDialog}},
		{Keys: []string{"enter", "space"}, Action: "activate", Description: "activate", Scopes: []string{scopeDialog}},
		{Keys: []string{"left"}, Action: "item-prev", Description: "item prev", Scopes: []string{scopeDialog}},
		{Keys: []string{"right"}, Action: "item-next", Description: "item next", Scopes: []string{scopeDialog}},
		{Keys: []string{"f1"}, Action: "help", Description: "help", Scopes: []string{scopeDialog}},
		{Keys: []string{"ctrl+c", "esc"}, Action: "abort", Description: "abort", Scopes: []string{scopeDialog}},
		{Keys: []string{"enter"}, Action: "commit", Description: "apply", Scopes: []string{scopeEdit}},
		{Keys: []string{"esc"}, Action: "cancel", Description: "discard", Scopes: []string{scopeEdit}},
		{Keys: []string{"enter", "esc"}, Action: "close", Description: "close", Scopes: []string{scopePopup}},
	}
}

// ApplyActionKeybindings replaces the keys of every binding whose action has
// an override.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      append([]string(nil), b.Scopes...),
		}
		if keys, ok := actionKeys[b.Action]; ok && len(keys) > 0 {
			next.Keys = append([]string(nil), keys...)
		}
		out = append(out, next)
	}
	return out
}
