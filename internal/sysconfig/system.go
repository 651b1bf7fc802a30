package sysconfig

import (
	"slices"

	"github.com/jask/cwmkit/core"
	"github.com/jask/cwmkit/tabs"
	"github.com/jask/cwmkit/widgets"
)

var timezones = core.ItemList{
	{ID: "UTC", Label: "UTC"},
	{ID: "Europe/Berlin", Label: "Europe/Berlin"},
	{ID: "Europe/Prague", Label: "Europe/Prague"},
	{ID: "America/New_York", Label: "America/New York"},
	{ID: "Australia/Melbourne", Label: "Australia/Melbourne"},
}

var logLevels = core.ItemList{
	{ID: "debug", Label: "Debug"},
	{ID: "info", Label: "Info"},
	{ID: "warning", Label: "Warning"},
	{ID: "error", Label: "Error"},
}

// Timezone picks the system timezone.
type Timezone struct {
	*widgets.ComboBox
	s *Settings
}

func NewTimezone(h core.Host, s *Settings) *Timezone {
	return &Timezone{ComboBox: widgets.NewComboBox(h, "timezone"), s: s}
}

func (w *Timezone) Label() string        { return "&Timezone" }
func (w *Timezone) Items() core.ItemList { return timezones }
func (w *Timezone) Opt() []core.Option   { return []core.Option{"editable"} }
func (w *Timezone) Init()                { w.SetValue(w.s.loadString(KeyTimezone)) }
func (w *Timezone) Store()               { w.s.save(KeyTimezone, w.Value()) }

func (w *Timezone) Help() string {
	return "<p>The <b>timezone</b> used for the system clock.</p>"
}

// Validate accepts only zones offered by the list, even though the combo box
// is editable.
func (w *Timezone) Validate() bool {
	return slices.Contains(w.CurrentItems().IDs(), w.Value())
}

// LogLevel picks the journal verbosity.
type LogLevel struct {
	*widgets.SelectionBox
	s *Settings
}

func NewLogLevel(h core.Host, s *Settings) *LogLevel {
	return &LogLevel{SelectionBox: widgets.NewSelectionBox(h, "log_level"), s: s}
}

func (w *LogLevel) Label() string        { return "&Log Level" }
func (w *LogLevel) Items() core.ItemList { return logLevels }
func (w *LogLevel) Init()                { w.SetValue(w.s.loadString(KeyLogLevel)) }
func (w *LogLevel) Store()               { w.s.save(KeyLogLevel, w.Value()) }

// MOTD edits the message of the day.
type MOTD struct {
	*widgets.MultiLineEdit
	s *Settings
}

func NewMOTD(h core.Host, s *Settings) *MOTD {
	return &MOTD{MultiLineEdit: widgets.NewMultiLineEdit(h, "motd"), s: s}
}

func (w *MOTD) Label() string { return "Message of the &Day" }
func (w *MOTD) Init()         { w.SetValue(w.s.loadString(KeyMOTD)) }
func (w *MOTD) Store()        { w.s.save(KeyMOTD, w.Value()) }

// SystemTab groups clock and logging settings.
type SystemTab struct {
	*tabs.Tab
	timezone *Timezone
	logLevel *LogLevel
	motd     *MOTD
}

func NewSystemTab(h core.Host, s *Settings) *SystemTab {
	return &SystemTab{
		Tab:      tabs.NewTab(h, "system"),
		timezone: NewTimezone(h, s),
		logLevel: NewLogLevel(h, s),
		motd:     NewMOTD(h, s),
	}
}

func (t *SystemTab) Label() string { return "&System" }

func (t *SystemTab) Contents() core.Term {
	return core.VBox(core.HBox(t.timezone, core.HSpacing(2), t.logLevel), t.motd)
}
