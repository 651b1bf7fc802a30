package sysconfig

import (
	"github.com/jask/cwmkit/core"
	"github.com/jask/cwmkit/tabs"
)

// Name identifies the dialog in the run history.
const Name = "sysconfig"

// Dialog holds the widgets of the settings dialog.
type Dialog struct {
	Tabs     *tabs.Container
	Network  *NetworkTab
	System   *SystemTab
	Services *ServicesTab
}

// New builds the dialog. The system tab opens first.
func New(h core.Host, s *Settings) (*Dialog, error) {
	d := &Dialog{
		Network:  NewNetworkTab(h, s),
		System:   NewSystemTab(h, s),
		Services: NewServicesTab(h, s),
	}
	d.System.SetInitial(true)
	c, err := tabs.New(h, "settings_tabs", d.Network, d.System, d.Services)
	if err != nil {
		return nil, err
	}
	d.Tabs = c
	return d, nil
}

// Contents lays out the tabs above the dialog buttons.
func (d *Dialog) Contents() core.Term {
	return core.VBox(
		core.Left(core.Label("System Settings")),
		d.Tabs,
		core.HBox(
			core.PushButton(core.ID(core.SymbolAbort), "&Abort"),
			core.HSpacing(2),
			core.PushButton(core.ID(core.SymbolNext), "&OK"),
		),
	)
}
