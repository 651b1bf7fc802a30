package core

type plain struct{ Base }

func newPlain(id string, tag TypeTag) *plain {
	w := &plain{}
	w.Setup(nil, tag, id)
	return w
}

// probe is a labelled leaf recording every lifecycle call into a shared log.
type probe struct {
	Base
	label string
	log   *[]string
	ret   Symbol
	valid bool
}

func newProbe(id string, log *[]string) *probe {
	w := &probe{label: id, log: log, valid: true}
	w.Setup(nil, TagInputField, id)
	return w
}

func (w *probe) Label() string { return w.label }
func (w *probe) Init()         { w.record("init") }
func (w *probe) Store()        { w.record("store") }
func (w *probe) Cleanup()      { w.record("cleanup") }

func (w *probe) Handle() Symbol {
	w.record("handle")
	return w.ret
}

func (w *probe) Validate() bool {
	w.record("validate")
	return w.valid
}

func (w *probe) record(op string) {
	if w.log != nil {
		*w.log = append(*w.log, w.WidgetID()+"."+op)
	}
}

// group is a composite embedding other widgets.
type group struct {
	Base
	content Term
}

func newGroup(id string, children ...any) *group {
	w := &group{content: VBox(children...)}
	w.Setup(nil, TagCustom, id)
	return w
}

func (w *group) Contents() Term { return w.content }
