package visual

import (
	"github.com/bdchik/notcurses-go/pkg/notcurses"
)

// Option flags, mirroring NCVISUAL_OPTION_*.
const (
	// FlagNoDegrade fails the blit rather than degrading the blitter.
	FlagNoDegrade uint64 = 0x0001
	// FlagBlend composites the foreground and background colors with what
	// is beneath them.
	FlagBlend uint64 = 0x0002
	// FlagHorAligned treats X as an Align value.
	FlagHorAligned uint64 = 0x0004
	// FlagVerAligned treats Y as an Align value.
	FlagVerAligned uint64 = 0x0008
	// FlagAddAlpha treats TransColor as a transparent color.
	FlagAddAlpha uint64 = 0x0010
	// FlagChildPlane interprets the plane as a parent for a new plane.
	FlagChildPlane uint64 = 0x0020
	// FlagNoInterpolate scales cheaply and uglily.
	FlagNoInterpolate uint64 = 0x0040
)

// Options configures a blit, mirroring ncvisual_options. Most callers
// should go through the Builder, which keeps Flags coherent with the other
// fields.
type Options struct {
	// Plane is the plane to blit to, or the parent of the plane to create
	// when FlagChildPlane is set. Nil means create a plane sized exactly to
	// the source.
	Plane *notcurses.Plane
	// Scaling is ignored when Plane is nil.
	Scaling notcurses.Scale
	// Y and X place the blit within the plane, or hold Align values when
	// the corresponding aligned flag is set.
	Y, X int
	// Region restricts the blit to a rectangle of the source when
	// HaveRegion is set: origin BegY, BegX and extent LenY, LenX.
	HaveRegion bool
	BegY, BegX uint32
	LenY, LenX uint32
	// Blitter picks the glyph set; BlitterDefault lets the library choose.
	Blitter notcurses.Blitter
	// Flags is a bitmask of Flag* values.
	Flags uint64
	// TransColor is rendered fully transparent when FlagAddAlpha is set.
	TransColor uint32
	// CellOffY and CellOffX offset the blit within the origin cell, in
	// pixels. Only meaningful for pixel blitting.
	CellOffY, CellOffX uint32
}

// Builder assembles Options while keeping the flag bits coherent with the
// fields they govern. The zero Builder is ready to use; methods return the
// builder for chaining.
type Builder struct {
	opts Options
}

// NewOptionsBuilder returns a Builder holding the defaults: no plane, no
// scaling, origin placement, default blitter, degradation permitted.
func NewOptionsBuilder() *Builder {
	return &Builder{}
}

// Plane sets the plane where the blitting will be done, without making it a
// parent. When no plane is provided, one is created using the exact size
// necessary to render the source with perfect fidelity.
func (b *Builder) Plane(p *notcurses.Plane) *Builder {
	b.opts.Plane = p
	return b
}

// Child controls whether the provided plane is the parent of a new plane to
// blit into, rather than the blit target itself.
func (b *Builder) Child(child bool) *Builder {
	if child {
		b.opts.Flags |= FlagChildPlane
	} else {
		b.opts.Flags &^= FlagChildPlane
	}
	return b
}

// Parent sets the plane that will be the parent of a new plane where the
// blitting will be done. Equivalent to Plane followed by Child(true).
func (b *Builder) Parent(p *notcurses.Plane) *Builder {
	b.opts.Plane = p
	b.opts.Flags |= FlagChildPlane
	return b
}

// NoPlane unsets the plane and the child-plane flag.
func (b *Builder) NoPlane() *Builder {
	b.opts.Plane = nil
	b.opts.Flags &^= FlagChildPlane
	return b
}

// Scale sets the scaling mode.
func (b *Builder) Scale(s notcurses.Scale) *Builder {
	b.opts.Scaling = s
	return b
}

// Y sets the vertical placement, clearing any vertical alignment.
func (b *Builder) Y(y int) *Builder {
	b.opts.Y = y
	b.opts.Flags &^= FlagVerAligned
	return b
}

// X sets the horizontal placement, clearing any horizontal alignment.
func (b *Builder) X(x int) *Builder {
	b.opts.X = x
	b.opts.Flags &^= FlagHorAligned
	return b
}

// YX sets both placements, clearing both alignments.
func (b *Builder) YX(y, x int) *Builder {
	return b.Y(y).X(x)
}

// VAlign sets the vertical alignment, overriding any Y placement.
func (b *Builder) VAlign(a notcurses.Align) *Builder {
	b.opts.Y = int(a)
	b.opts.Flags |= FlagVerAligned
	return b
}

// HAlign sets the horizontal alignment, overriding any X placement.
func (b *Builder) HAlign(a notcurses.Align) *Builder {
	b.opts.X = int(a)
	b.opts.Flags |= FlagHorAligned
	return b
}

// Align sets both alignments.
func (b *Builder) Align(v, h notcurses.Align) *Builder {
	return b.VAlign(v).HAlign(h)
}

// Blitter chooses the blitter.
func (b *Builder) Blitter(bl notcurses.Blitter) *Builder {
	b.opts.Blitter = bl
	return b
}

// Pixel chooses the pixel blitter.
func (b *Builder) Pixel() *Builder {
	return b.Blitter(notcurses.BlitterPixel)
}

// TransColor marks a packed 0xRRGGBB color as fully transparent.
func (b *Builder) TransColor(rgb uint32) *Builder {
	b.opts.TransColor = rgb
	b.opts.Flags |= FlagAddAlpha
	return b
}

// NoTransColor clears the transparent color.
func (b *Builder) NoTransColor() *Builder {
	b.opts.TransColor = 0
	b.opts.Flags &^= FlagAddAlpha
	return b
}

// Blend composites the blit's colors with those beneath it.
func (b *Builder) Blend(blend bool) *Builder {
	if blend {
		b.opts.Flags |= FlagBlend
	} else {
		b.opts.Flags &^= FlagBlend
	}
	return b
}

// Degrade chooses between gracefully degrading the blitter (the default)
// and failing when the chosen blitter is unsupported by the terminal.
func (b *Builder) Degrade(degrade bool) *Builder {
	if degrade {
		b.opts.Flags &^= FlagNoDegrade
	} else {
		b.opts.Flags |= FlagNoDegrade
	}
	return b
}

// Interpolate chooses between interpolated scaling (the default) and the
// cheap, blocky kind.
func (b *Builder) Interpolate(interpolate bool) *Builder {
	if interpolate {
		b.opts.Flags &^= FlagNoInterpolate
	} else {
		b.opts.Flags |= FlagNoInterpolate
	}
	return b
}

// Region restricts the blit to a rectangle of the source.
func (b *Builder) Region(begY, begX, lenY, lenX uint32) *Builder {
	b.opts.HaveRegion = true
	b.opts.BegY, b.opts.BegX = begY, begX
	b.opts.LenY, b.opts.LenX = lenY, lenX
	return b
}

// CellOffset offsets the blit within the origin cell, in pixels.
func (b *Builder) CellOffset(y, x uint32) *Builder {
	b.opts.CellOffY, b.opts.CellOffX = y, x
	return b
}

// Build returns the assembled Options.
func (b *Builder) Build() Options {
	return b.opts
}
