// Package internalcheck provides internal validation tests for the
// notcurses bindings.
//
// The tests here enforce structural properties of the module rather than
// runtime behavior: cgo stays confined to the bindings layer, and the
// public wrapper propagates errors instead of panicking. It is not
// intended for external use and the API may change without notice.
package internalcheck
