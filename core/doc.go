// Package core contains the widget lifecycle contracts shared by every widget
// and host engine.
//
// Allowed here:
// - widget identity, hook interfaces and the capability set derived from them
// - definition records, content trees and their compilation/expansion
// - flat widget-set dispatch (init, handle, validate, store, cleanup)
//
// Not allowed here:
// - concrete leaf widget kinds (widgets) or tab switching policy (tabs)
// - rendering or event loops of a particular host engine
package core
