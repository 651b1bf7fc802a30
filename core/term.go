package core

// Term is a node of a content tree as understood by the host engine. Args may
// hold strings, ints, bools, ID, Options, ItemList, nested Terms or embedded
// Widgets (before compilation).
type Term struct {
	Name string
	Args []any
}

// ID marks the widget id argument of a term.
type ID string

// Options holds the layout options argument of a term.
type Options []Option

// RefName is the term name compiled trees use in place of embedded widgets.
const RefName = "WidgetRef"

// T builds a term.
func T(name string, args ...any) Term {
	return Term{Name: name, Args: args}
}

func VBox(args ...any) Term { return T("VBox", args...) }
func HBox(args ...any) Term { return T("HBox", args...) }
func Left(child any) Term   { return T("Left", child) }
func Empty() Term           { return T("Empty") }
func VSpacing(n int) Term   { return T("VSpacing", n) }
func HSpacing(n int) Term   { return T("HSpacing", n) }

func Label(text string) Term { return T("Label", text) }

func Frame(title string, child any) Term { return T("Frame", title, child) }

func ReplacePoint(id ID, child any) Term { return T("ReplacePoint", id, child) }

func PushButton(id ID, label string) Term { return T("PushButton", id, label) }

// Ref is the placeholder for the widget registered under id.
func Ref(id string) Term { return T(RefName, ID(id)) }

// ID returns the id argument of t, if any.
func (t Term) ID() (string, bool) {
	for _, a := range t.Args {
		if id, ok := a.(ID); ok {
			return string(id), true
		}
	}
	return "", false
}

// Text returns the first plain string argument of t.
func (t Term) Text() string {
	for _, a := range t.Args {
		if s, ok := a.(string); ok {
			return s
		}
	}
	return ""
}

// Children returns the nested terms of t in order.
func (t Term) Children() []Term {
	var out []Term
	for _, a := range t.Args {
		if c, ok := a.(Term); ok {
			out = append(out, c)
		}
	}
	return out
}

// Walk visits t and every nested term depth first. Returning false from fn
// skips the children of that term.
func (t Term) Walk(fn func(Term) bool) {
	if !fn(t) {
		return
	}
	for _, c := range t.Children() {
		c.Walk(fn)
	}
}

// Find returns the first term in t carrying id.
func (t Term) Find(id string) (Term, bool) {
	var found Term
	ok := false
	t.Walk(func(n Term) bool {
		if ok {
			return false
		}
		if nid, has := n.ID(); has && nid == id && n.Name != RefName {
			found, ok = n, true
			return false
		}
		return true
	})
	return found, ok
}
