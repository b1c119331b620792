// Package notcurses exposes a type-safe Go API over the notcurses terminal
// graphics library (the 2.x C API). The wrappers hold opaque handles to
// foreign-allocated objects and forward each operation through cgo,
// translating negative and sentinel returns into Go errors. The package
// compiles without cgo; in that configuration every native operation
// reports ErrNotBuilt.
//
// Semantics are the C library's own: the binding adds argument validation,
// lifetime pairing (every constructor has a destructor, close is
// idempotent), and error types, nothing more. In particular it adds no
// concurrency guarantees: a Notcurses context and its planes belong to one
// goroutine at a time, exactly as the C library requires of its callers.
package notcurses
