// Package tabs contains the tab container: a composite that shows one tab at
// a time and runs each tab's widgets as a private sub-dialog.
//
// Allowed here:
// - tab entries, active-tab state, validate/store/switch sequencing, tab marking
//
// Not allowed here:
// - generic dispatch (core) or leaf widget kinds (widgets)
package tabs
