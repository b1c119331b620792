// Package bindings is the cgo boundary with the native notcurses library.
//
// Every function here forwards a single notcurses call: it converts Go
// arguments into C representations, performs the call, and converts a
// negative or NULL return into an error. Handles cross the boundary as
// unsafe.Pointer; ownership rules are documented per function. No other
// package in this module may import "C".
package bindings

import (
	"errors"
	"unsafe"
)

var (
	// ErrNotBuilt reports that the native notcurses library was not linked
	// into the current binary. Callers can use this to degrade politely
	// instead of treating it as a runtime fault.
	ErrNotBuilt = errors.New("notcurses/internal/bindings: native bindings not built")

	// ErrCGONotEnabled signals that the package was compiled without cgo and
	// therefore cannot talk to the native library.
	ErrCGONotEnabled = errors.New("notcurses/internal/bindings: cgo not enabled")
)

// InitOptions mirrors the fields of notcurses_options that the wrapper
// exposes. The zero value requests the defaults notcurses itself would pick.
type InitOptions struct {
	TermType string
	LogLevel int
	// Margins in cells: top, right, bottom, left.
	MarginT, MarginR, MarginB, MarginL uint32
	Flags                              uint64
}

// Input mirrors the fields of ncinput.
type Input struct {
	ID     uint32
	Y, X   int
	Alt    bool
	Shift  bool
	Ctrl   bool
	Seqnum uint64
}

// Stats mirrors the core fields of ncstats.
type Stats struct {
	Renders          uint64
	Writeouts        uint64
	FailedRenders    uint64
	FailedWriteouts  uint64
	RenderBytes      uint64
	RenderMaxBytes   int64
	RenderMinBytes   int64
	RenderNS         uint64
	RenderMaxNS      int64
	RenderMinNS      int64
	RasterNS         uint64
	RasterMaxNS      int64
	RasterMinNS      int64
	WriteoutNS       uint64
	WriteoutMaxNS    int64
	WriteoutMinNS    int64
	CellElisions     uint64
	CellEmissions    uint64
	FgElisions       uint64
	FgEmissions      uint64
	BgElisions       uint64
	BgEmissions      uint64
	DefaultElisions  uint64
	DefaultEmissions uint64
	Refreshes        uint64
	FbBytes          uint64
	Planes           uint32
}

// VisualOptions mirrors the fields of ncvisual_options. N is the target
// plane handle and may be nil.
type VisualOptions struct {
	N          unsafe.Pointer
	Scaling    int
	Y, X       int
	BegY, BegX uint32
	LenY, LenX uint32
	Blitter    int
	Flags      uint64
	TransColor uint32
	PxOffY     uint32
	PxOffX     uint32
}
