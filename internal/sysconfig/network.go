package sysconfig

import (
	"net"
	"regexp"

	"github.com/jask/cwmkit/core"
	"github.com/jask/cwmkit/tabs"
	"github.com/jask/cwmkit/widgets"
)

var hostnamePattern = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9-]{0,61}[A-Za-z0-9])?(\.[A-Za-z0-9]([A-Za-z0-9-]{0,61}[A-Za-z0-9])?)*$`)

// Hostname edits the machine hostname.
type Hostname struct {
	*widgets.InputField
	s *Settings
}

func NewHostname(h core.Host, s *Settings) *Hostname {
	return &Hostname{InputField: widgets.NewInputField(h, "hostname"), s: s}
}

func (w *Hostname) Label() string { return "&Hostname" }
func (w *Hostname) Help() string {
	return "<p><b>Hostname</b> is the name of this machine on the network.</p>"
}
func (w *Hostname) Init()  { w.SetValue(w.s.loadString(KeyHostname)) }
func (w *Hostname) Store() { w.s.save(KeyHostname, w.Value()) }

// Validate rejects empty names and names that are not valid DNS labels.
func (w *Hostname) Validate() bool {
	return hostnamePattern.MatchString(w.Value())
}

// DHCP toggles automatic addressing and enables the static address field when
// switched off.
type DHCP struct {
	*widgets.CheckBox
	s       *Settings
	address *Address
}

func NewDHCP(h core.Host, s *Settings, address *Address) *DHCP {
	return &DHCP{CheckBox: widgets.NewCheckBox(h, "dhcp"), s: s, address: address}
}

func (w *DHCP) Label() string      { return "Use &DHCP" }
func (w *DHCP) Opt() []core.Option { return []core.Option{"notify"} }
func (w *DHCP) Store()             { w.s.save(KeyDHCP, w.Checked()) }

func (w *DHCP) Init() {
	w.SetValue(w.s.loadBool(KeyDHCP))
	w.sync()
}

func (w *DHCP) Handle() core.Symbol {
	w.sync()
	return core.SymbolNone
}

func (w *DHCP) sync() {
	if w.Checked() {
		w.address.Disable()
		return
	}
	w.address.Enable()
}

// Address is the static IP address, required only without DHCP.
type Address struct {
	*widgets.InputField
	s *Settings
}

func NewAddress(h core.Host, s *Settings) *Address {
	return &Address{InputField: widgets.NewInputField(h, "address"), s: s}
}

func (w *Address) Label() string { return "IP &Address" }
func (w *Address) Init()         { w.SetValue(w.s.loadString(KeyAddress)) }
func (w *Address) Store()        { w.s.save(KeyAddress, w.Value()) }

func (w *Address) Validate() bool {
	if !w.Enabled() {
		return true
	}
	return net.ParseIP(w.Value()) != nil
}

// MTU is bounded to what common links accept.
type MTU struct {
	*widgets.IntField
	s *Settings
}

func NewMTU(h core.Host, s *Settings) *MTU {
	return &MTU{IntField: widgets.NewIntField(h, "mtu"), s: s}
}

func (w *MTU) Label() string { return "&MTU" }
func (w *MTU) Minimum() int  { return 576 }
func (w *MTU) Maximum() int  { return 9000 }
func (w *MTU) Init()         { w.SetValue(w.s.loadInt(KeyMTU)) }
func (w *MTU) Store()        { w.s.save(KeyMTU, w.Value()) }

func (w *MTU) Validate() bool {
	v := w.Value()
	return v >= w.Minimum() && v <= w.Maximum()
}

// NetworkTab groups the network widgets.
type NetworkTab struct {
	*tabs.Tab
	hostname *Hostname
	dhcp     *DHCP
	address  *Address
	mtu      *MTU
}

func NewNetworkTab(h core.Host, s *Settings) *NetworkTab {
	address := NewAddress(h, s)
	return &NetworkTab{
		Tab:      tabs.NewTab(h, "network"),
		hostname: NewHostname(h, s),
		dhcp:     NewDHCP(h, s, address),
		address:  address,
		mtu:      NewMTU(h, s),
	}
}

func (t *NetworkTab) Label() string { return "&Network" }

func (t *NetworkTab) Contents() core.Term {
	return core.VBox(
		t.hostname,
		core.VSpacing(1),
		core.Frame("Addressing", core.VBox(core.Left(t.dhcp), t.address)),
		t.mtu,
	)
}
