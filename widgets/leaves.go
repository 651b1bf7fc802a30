package widgets

import "github.com/jask/cwmkit/core"

// Leaf kinds are meant to be embedded by pointer in a concrete widget that
// adds its hooks:
//
//	type hostname struct{ *widgets.InputField }
//
//	func (hostname) Label() string { return "&Hostname" }
//
// An empty id falls back to the name of the concrete type when the definition
// is built, so two undeclared instances of one type collide.

type InputField struct {
	core.Base
	Valued[string]
}

func NewInputField(h core.Host, id string) *InputField {
	w := &InputField{}
	w.Setup(h, core.TagInputField, id)
	w.Valued = valued[string](&w.Base, core.PropValue)
	return w
}

type Password struct {
	core.Base
	Valued[string]
}

func NewPassword(h core.Host, id string) *Password {
	w := &Password{}
	w.Setup(h, core.TagPassword, id)
	w.Valued = valued[string](&w.Base, core.PropValue)
	return w
}

type MultiLineEdit struct {
	core.Base
	Valued[string]
}

func NewMultiLineEdit(h core.Host, id string) *MultiLineEdit {
	w := &MultiLineEdit{}
	w.Setup(h, core.TagMultiLineEdit, id)
	w.Valued = valued[string](&w.Base, core.PropValue)
	return w
}

// RichText shows formatted text; it needs no label.
type RichText struct {
	core.Base
	Valued[string]
}

func NewRichText(h core.Host, id string) *RichText {
	w := &RichText{}
	w.Setup(h, core.TagRichText, id)
	w.Valued = valued[string](&w.Base, core.PropValue)
	return w
}

type CheckBox struct {
	core.Base
	Valued[bool]
}

func NewCheckBox(h core.Host, id string) *CheckBox {
	w := &CheckBox{}
	w.Setup(h, core.TagCheckBox, id)
	w.Valued = valued[bool](&w.Base, core.PropValue)
	return w
}

func (w *CheckBox) Checked() bool   { return w.Value() }
func (w *CheckBox) Unchecked() bool { return !w.Value() }
func (w *CheckBox) Check()          { w.SetValue(true) }
func (w *CheckBox) Uncheck()        { w.SetValue(false) }

type ComboBox struct {
	core.Base
	Valued[string]
	ItemsSelection
}

func NewComboBox(h core.Host, id string) *ComboBox {
	w := &ComboBox{}
	w.Setup(h, core.TagComboBox, id)
	w.Valued = valued[string](&w.Base, core.PropValue)
	w.ItemsSelection = ItemsSelection{w: &w.Base}
	return w
}

// RadioButtons keeps its value in the CurrentButton property.
type RadioButtons struct {
	core.Base
	Valued[string]
	ItemsSelection
}

func NewRadioButtons(h core.Host, id string) *RadioButtons {
	w := &RadioButtons{}
	w.Setup(h, core.TagRadioButtons, id)
	w.Valued = valued[string](&w.Base, core.PropCurrentButton)
	w.ItemsSelection = ItemsSelection{w: &w.Base}
	return w
}

// MenuButton has no value of its own: picking an item fires an event with
// the item id.
type MenuButton struct {
	core.Base
	ItemsSelection
}

func NewMenuButton(h core.Host, id string) *MenuButton {
	w := &MenuButton{}
	w.Setup(h, core.TagMenuButton, id)
	w.ItemsSelection = ItemsSelection{w: &w.Base}
	return w
}

// SelectionBox keeps its value in the CurrentItem property.
type SelectionBox struct {
	core.Base
	Valued[string]
	ItemsSelection
}

func NewSelectionBox(h core.Host, id string) *SelectionBox {
	w := &SelectionBox{}
	w.Setup(h, core.TagSelectionBox, id)
	w.Valued = valued[string](&w.Base, core.PropCurrentItem)
	w.ItemsSelection = ItemsSelection{w: &w.Base}
	return w
}

// MultiSelectionBox keeps the selected ids in the SelectedItems property.
type MultiSelectionBox struct {
	core.Base
	Valued[[]string]
	ItemsSelection
}

func NewMultiSelectionBox(h core.Host, id string) *MultiSelectionBox {
	w := &MultiSelectionBox{}
	w.Setup(h, core.TagMultiSelectionBox, id)
	w.Valued = valued[[]string](&w.Base, core.PropSelectedItems)
	w.ItemsSelection = ItemsSelection{w: &w.Base}
	return w
}

// IntField merges Minimum and Maximum into its definition when the concrete
// widget implements them.
type IntField struct {
	core.Base
	Valued[int]
}

func NewIntField(h core.Host, id string) *IntField {
	w := &IntField{}
	w.Setup(h, core.TagIntField, id)
	w.Valued = valued[int](&w.Base, core.PropValue)
	return w
}

type PushButton struct {
	core.Base
}

func NewPushButton(h core.Host, id string) *PushButton {
	w := &PushButton{}
	w.Setup(h, core.TagPushButton, id)
	return w
}

// Empty is a placeholder that renders nothing.
type Empty struct {
	core.Base
}

func NewEmpty(h core.Host, id string) *Empty {
	w := &Empty{}
	w.Setup(h, core.TagEmpty, id)
	return w
}

// Custom is the base of composite widgets. Concrete types implement
// Contents; nested widgets in the tree are registered with the composite and
// their events are routed to it as well.
type Custom struct {
	core.Base
}

func NewCustom(h core.Host, id string) *Custom {
	w := &Custom{}
	w.Setup(h, core.TagCustom, id)
	return w
}
