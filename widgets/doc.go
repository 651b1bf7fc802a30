// Package widgets contains the leaf widget catalog and the capability mixins
// the leaves share.
//
// Allowed here:
// - leaf kinds binding a type tag to its value property and extras
// - value and items helpers over the host property service
//
// Not allowed here:
// - dispatch or definition building (core) or tab switching policy (tabs)
package widgets
