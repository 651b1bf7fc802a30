package sysconfig

import (
	"fmt"
	"html"
	"strings"

	"github.com/jask/cwmkit/core"
	"github.com/jask/cwmkit/tabs"
	"github.com/jask/cwmkit/widgets"
)

var serviceItems = core.ItemList{
	{ID: "sshd", Label: "OpenSSH server"},
	{ID: "chronyd", Label: "Time synchronisation"},
	{ID: "firewalld", Label: "Firewall"},
	{ID: "cups", Label: "Printing"},
}

var zoneItems = core.ItemList{
	{ID: "public", Label: "&Public"},
	{ID: "home", Label: "&Home"},
	{ID: "internal", Label: "&Internal"},
}

// Services selects the units enabled at boot.
type Services struct {
	*widgets.MultiSelectionBox
	s *Settings
}

func NewServices(h core.Host, s *Settings) *Services {
	return &Services{MultiSelectionBox: widgets.NewMultiSelectionBox(h, "services"), s: s}
}

func (w *Services) Label() string        { return "Enabled &Services" }
func (w *Services) Items() core.ItemList { return serviceItems }
func (w *Services) Init()                { w.SetValue(w.s.loadStrings(KeyServices)) }
func (w *Services) Store()               { w.s.save(KeyServices, w.Value()) }

// Zone is the firewall zone of the default interface.
type Zone struct {
	*widgets.RadioButtons
	s *Settings
}

func NewZone(h core.Host, s *Settings) *Zone {
	return &Zone{RadioButtons: widgets.NewRadioButtons(h, "zone"), s: s}
}

func (w *Zone) Label() string        { return "Firewall &Zone" }
func (w *Zone) Items() core.ItemList { return zoneItems }
func (w *Zone) Init()                { w.SetValue(w.s.loadString(KeyZone)) }
func (w *Zone) Store()               { w.s.save(KeyZone, w.Value()) }

// SelectAll enables every known service.
type SelectAll struct {
	*widgets.PushButton
	services *Services
}

func NewSelectAll(h core.Host, services *Services) *SelectAll {
	return &SelectAll{PushButton: widgets.NewPushButton(h, "select_all"), services: services}
}

func (w *SelectAll) Label() string { return "Select &All" }

func (w *SelectAll) Handle() core.Symbol {
	w.services.SetValue(w.services.CurrentItems().IDs())
	return core.SymbolNone
}

// Summary observes every event and keeps a short description of the
// selection up to date.
type Summary struct {
	*widgets.RichText
	services *Services
	zone     *Zone
}

func NewSummary(h core.Host, services *Services, zone *Zone) *Summary {
	w := &Summary{RichText: widgets.NewRichText(h, "summary"), services: services, zone: zone}
	w.SetObserveAll(true)
	return w
}

func (w *Summary) Init() { w.refresh() }

func (w *Summary) HandleEvent(core.Event) core.Symbol {
	w.refresh()
	return core.SymbolNone
}

func (w *Summary) refresh() {
	enabled := w.services.Value()
	names := make([]string, 0, len(enabled))
	for _, id := range enabled {
		names = append(names, html.EscapeString(id))
	}
	list := "none"
	if len(names) > 0 {
		list = strings.Join(names, ", ")
	}
	w.SetValue(fmt.Sprintf("<p>Services: %s</p><p>Zone: %s</p>", list, html.EscapeString(w.zone.Value())))
}

// ServicesTab groups boot services and the firewall zone.
type ServicesTab struct {
	*tabs.Tab
	services  *Services
	zone      *Zone
	selectAll *SelectAll
	summary   *Summary
}

func NewServicesTab(h core.Host, s *Settings) *ServicesTab {
	services := NewServices(h, s)
	zone := NewZone(h, s)
	return &ServicesTab{
		Tab:       tabs.NewTab(h, "services_tab"),
		services:  services,
		zone:      zone,
		selectAll: NewSelectAll(h, services),
		summary:   NewSummary(h, services, zone),
	}
}

func (t *ServicesTab) Label() string { return "S&ervices" }

func (t *ServicesTab) Contents() core.Term {
	return core.VBox(
		core.HBox(core.VBox(t.services, core.Left(t.selectAll)), core.HSpacing(2), t.zone),
		t.summary,
	)
}
