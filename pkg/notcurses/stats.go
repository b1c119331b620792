package notcurses

import (
	"runtime"

	"github.com/bdchik/notcurses-go/internal/bindings"
)

// Stats is a snapshot of the accumulated rendering statistics, mirroring
// ncstats.
type Stats struct {
	// Renders counts successful notcurses_render calls; FailedRenders the
	// rest. Failed renders are likely fatal.
	Renders       uint64
	Writeouts     uint64
	FailedRenders uint64
	// FailedWriteouts are likely EAGAIN.
	FailedWriteouts uint64

	// Bytes emitted to the terminal, total and per-render extremes.
	RenderBytes    uint64
	RenderMaxBytes int64
	RenderMinBytes int64

	// Nanoseconds spent rendering, rasterizing, and writing out.
	RenderNS      uint64
	RenderMaxNS   int64
	RenderMinNS   int64
	RasterNS      uint64
	RasterMaxNS   int64
	RasterMinNS   int64
	WriteoutNS    uint64
	WriteoutMaxNS int64
	WriteoutMinNS int64

	// Damage-tracking elisions versus actual emissions.
	CellElisions     uint64
	CellEmissions    uint64
	FgElisions       uint64
	FgEmissions      uint64
	BgElisions       uint64
	BgEmissions      uint64
	DefaultElisions  uint64
	DefaultEmissions uint64

	Refreshes uint64
	// FbBytes is the total memory devoted to plane framebuffers.
	FbBytes uint64
	Planes  uint32
}

func statsFromBindings(bs bindings.Stats) Stats {
	return Stats{
		Renders:          bs.Renders,
		Writeouts:        bs.Writeouts,
		FailedRenders:    bs.FailedRenders,
		FailedWriteouts:  bs.FailedWriteouts,
		RenderBytes:      bs.RenderBytes,
		RenderMaxBytes:   bs.RenderMaxBytes,
		RenderMinBytes:   bs.RenderMinBytes,
		RenderNS:         bs.RenderNS,
		RenderMaxNS:      bs.RenderMaxNS,
		RenderMinNS:      bs.RenderMinNS,
		RasterNS:         bs.RasterNS,
		RasterMaxNS:      bs.RasterMaxNS,
		RasterMinNS:      bs.RasterMinNS,
		WriteoutNS:       bs.WriteoutNS,
		WriteoutMaxNS:    bs.WriteoutMaxNS,
		WriteoutMinNS:    bs.WriteoutMinNS,
		CellElisions:     bs.CellElisions,
		CellEmissions:    bs.CellEmissions,
		FgElisions:       bs.FgElisions,
		FgEmissions:      bs.FgEmissions,
		BgElisions:       bs.BgElisions,
		BgEmissions:      bs.BgEmissions,
		DefaultElisions:  bs.DefaultElisions,
		DefaultEmissions: bs.DefaultEmissions,
		Refreshes:        bs.Refreshes,
		FbBytes:          bs.FbBytes,
		Planes:           bs.Planes,
	}
}

// Stats snapshots the accumulated statistics.
func (n *Notcurses) Stats() (Stats, error) {
	if n == nil || n.closed || n.nc == nil {
		return Stats{}, ErrClosed
	}
	s := bindings.GetStats(n.nc)
	runtime.KeepAlive(n)
	return statsFromBindings(s), nil
}

// StatsReset snapshots the accumulated statistics and then zeroes them.
func (n *Notcurses) StatsReset() (Stats, error) {
	if n == nil || n.closed || n.nc == nil {
		return Stats{}, ErrClosed
	}
	s := bindings.StatsReset(n.nc)
	runtime.KeepAlive(n)
	return statsFromBindings(s), nil
}
