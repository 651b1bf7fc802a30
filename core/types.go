package core

import "errors"

// TypeTag selects the primitive widget kind the host renders.
type TypeTag string

const (
	TagInputField        TypeTag = "inputfield"
	TagPassword          TypeTag = "password"
	TagMultiLineEdit     TypeTag = "multi_line_edit"
	TagRichText          TypeTag = "richtext"
	TagCheckBox          TypeTag = "checkbox"
	TagComboBox          TypeTag = "combobox"
	TagRadioButtons      TypeTag = "radio_buttons"
	TagMenuButton        TypeTag = "menu_button"
	TagSelectionBox      TypeTag = "selection_box"
	TagMultiSelectionBox TypeTag = "multi_selection_box"
	TagIntField          TypeTag = "intfield"
	TagPushButton        TypeTag = "push_button"
	TagEmpty             TypeTag = "empty"
	TagCustom            TypeTag = "custom"
)

type tagInfo struct {
	term     string
	required Capability
}

// tagTable is the registration table for every known leaf kind: the host
// primitive it expands to and the hooks a concrete widget must provide.
var tagTable = map[TypeTag]tagInfo{
	TagInputField:        {term: "InputField", required: CapLabel},
	TagPassword:          {term: "Password", required: CapLabel},
	TagMultiLineEdit:     {term: "MultiLineEdit", required: CapLabel},
	TagRichText:          {term: "RichText"},
	TagCheckBox:          {term: "CheckBox", required: CapLabel},
	TagComboBox:          {term: "ComboBox", required: CapLabel},
	TagRadioButtons:      {term: "RadioButtonGroup", required: CapLabel},
	TagMenuButton:        {term: "MenuButton", required: CapLabel},
	TagSelectionBox:      {term: "SelectionBox", required: CapLabel},
	TagMultiSelectionBox: {term: "MultiSelectionBox", required: CapLabel},
	TagIntField:          {term: "IntField", required: CapLabel},
	TagPushButton:        {term: "PushButton", required: CapLabel},
	TagEmpty:             {term: "Empty"},
	TagCustom:            {required: CapContents},
}

// Known reports whether t is registered.
func (t TypeTag) Known() bool {
	_, ok := tagTable[t]
	return ok
}

// Required returns the hooks a widget of kind t must implement.
func (t TypeTag) Required() Capability {
	return tagTable[t].required
}

// Property names a rendered widget property reachable through Host.
type Property string

const (
	PropValue         Property = "Value"
	PropEnabled       Property = "Enabled"
	PropItems         Property = "Items"
	PropCurrentItem   Property = "CurrentItem"
	PropSelectedItems Property = "SelectedItems"
	PropCurrentButton Property = "CurrentButton"
	PropLabel         Property = "Label"
)

// Symbol is the dialog-exit signal returned by handle hooks. The empty symbol
// means the dialog keeps running.
type Symbol string

const (
	SymbolNone   Symbol = ""
	SymbolNext   Symbol = "next"
	SymbolBack   Symbol = "back"
	SymbolAbort  Symbol = "abort"
	SymbolCancel Symbol = "cancel"
	SymbolOK     Symbol = "ok"
	SymbolAccept Symbol = "accept"
)

// Commits reports whether exiting with s validates and stores widgets. Every
// exit commits except back, abort and cancel.
func (s Symbol) Commits() bool {
	switch s {
	case SymbolNone, SymbolBack, SymbolAbort, SymbolCancel:
		return false
	}
	return true
}

// Event is one record produced by the host event loop.
type Event struct {
	ID     string
	Type   string
	Reason string
}

const (
	EventWidget = "WidgetEvent"
	EventMenu   = "MenuEvent"

	ReasonActivated        = "Activated"
	ReasonValueChanged     = "ValueChanged"
	ReasonSelectionChanged = "SelectionChanged"
)

// Activated builds the event a host emits when widget id is pressed.
func Activated(id string) Event {
	return Event{ID: id, Type: EventWidget, Reason: ReasonActivated}
}

// Changed builds the event a host emits when the value of widget id changes.
func Changed(id string) Event {
	return Event{ID: id, Type: EventWidget, Reason: ReasonValueChanged}
}

// Item is one selectable entry.
type Item struct {
	ID    string
	Label string
}

// ItemList is an ordered list of selectable entries. Duplicate ids are the
// host's problem.
type ItemList []Item

// IDs returns the item ids in order.
func (l ItemList) IDs() []string {
	out := make([]string, 0, len(l))
	for _, it := range l {
		out = append(out, it.ID)
	}
	return out
}

// Option is a layout option understood by the host (for example "notify").
type Option string

var (
	// ErrTypeNotSet is returned when a widget does not declare its type tag.
	ErrTypeNotSet = errors.New("widget type not set")
	// ErrMissingHook is returned when a widget lacks a hook its kind requires.
	ErrMissingHook = errors.New("required widget hook missing")
	// ErrDuplicateID is returned when two widgets share an id in one scope.
	ErrDuplicateID = errors.New("duplicate widget id")
	// ErrUnknownWidget is returned when an id refers to no registered widget.
	ErrUnknownWidget = errors.New("unknown widget id")
)
