package notcurses

import (
	"runtime"
	"unsafe"

	"github.com/mattn/go-runewidth"

	"github.com/bdchik/notcurses-go/internal/bindings"
)

// Plane wraps an ncplane. Planes created through CreatePlane are owned by
// the caller: release them with Destroy (a finalizer backstops leaks). The
// standard plane and planes surfaced by Top/Bottom are owned by the context
// and refuse Destroy.
type Plane struct {
	p         unsafe.Pointer
	owner     *Notcurses
	std       bool
	destroyed bool
}

// PlaneOptions configures plane creation, mirroring ncplane_options. Y and X
// place the origin relative to the parent plane; when HorAligned is set, X
// is instead interpreted as an Align value against the parent.
type PlaneOptions struct {
	Y, X       int
	Rows, Cols int
	Name       string
	HorAligned bool
}

// NCPLANE_OPTION_HORALIGNED
const planeOptionHorAligned uint64 = 0x0001

// CreatePlane makes a new plane bound to p, per opts. The new plane is
// owned by the caller and must be released with Destroy.
func (p *Plane) CreatePlane(opts PlaneOptions) (*Plane, error) {
	if err := p.valid(); err != nil {
		return nil, err
	}
	var flags uint64
	if opts.HorAligned {
		flags |= planeOptionHorAligned
	}
	h, err := bindings.PlaneCreate(p.p, opts.Y, opts.X, opts.Rows, opts.Cols, opts.Name, flags)
	runtime.KeepAlive(p)
	if err != nil {
		return nil, remapError(err)
	}
	np := &Plane{p: h, owner: p.owner}
	if np.owner != nil {
		np.owner.register(np)
	}
	runtime.SetFinalizer(np, (*Plane).finalize)
	return np, nil
}

// NewPlaneFromPtr wraps a raw plane handle. It exists for sibling packages
// that receive plane handles from the native library (the visual blitters);
// applications have no use for it. When owned is true the wrapper takes
// ownership and a finalizer backstops Destroy.
func NewPlaneFromPtr(n *Notcurses, ptr unsafe.Pointer, owned bool) *Plane {
	if ptr == nil {
		return nil
	}
	p := &Plane{p: ptr, owner: n}
	if owned {
		if n != nil {
			n.register(p)
		}
		runtime.SetFinalizer(p, (*Plane).finalize)
	}
	return p
}

// Destroy releases the plane. Destroying the standard plane is refused with
// ErrStdPlane; destroying twice returns ErrPlaneDestroyed. Once the owning
// context has been closed the foreign plane is already gone, so Destroy
// returns ErrClosed without touching the stale handle.
func (p *Plane) Destroy() error {
	if p == nil {
		return nil
	}
	if p.std {
		return ErrStdPlane
	}
	if err := p.valid(); err != nil {
		return err
	}
	err := bindings.PlaneDestroy(p.p)
	p.p = nil
	p.destroyed = true
	runtime.SetFinalizer(p, nil)
	if p.owner != nil {
		p.owner.unregister(p)
	}
	return remapError(err)
}

// finalize runs on the finalizer goroutine; the owner's lock orders it
// against Close and DropPlanes invalidating wrappers.
func (p *Plane) finalize() {
	if p.std || p.destroyed || p.p == nil {
		return
	}
	if p.owner == nil {
		_ = bindings.PlaneDestroy(p.p)
		p.p = nil
		p.destroyed = true
		return
	}
	p.owner.mu.Lock()
	defer p.owner.mu.Unlock()
	if p.destroyed || p.p == nil || p.owner.closed {
		return
	}
	_ = bindings.PlaneDestroy(p.p)
	p.p = nil
	p.destroyed = true
	delete(p.owner.planes, p)
}

// Ptr exposes the raw plane handle for sibling packages. The handle is only
// valid until Destroy (or Close of the owning context).
func (p *Plane) Ptr() (unsafe.Pointer, error) {
	if err := p.valid(); err != nil {
		return nil, err
	}
	return p.p, nil
}

func (p *Plane) valid() error {
	if p == nil || p.destroyed {
		return ErrPlaneDestroyed
	}
	if p.owner != nil && p.owner.closed {
		return ErrClosed
	}
	if p.p == nil {
		return ErrPlaneDestroyed
	}
	return nil
}

// Dim reports the plane's size in cells.
func (p *Plane) Dim() (rows, cols int) {
	if p.valid() != nil {
		return 0, 0
	}
	rows, cols = bindings.PlaneDim(p.p)
	runtime.KeepAlive(p)
	return rows, cols
}

// YX reports the plane's origin relative to its bound plane.
func (p *Plane) YX() (y, x int) {
	if p.valid() != nil {
		return 0, 0
	}
	y, x = bindings.PlaneYX(p.p)
	runtime.KeepAlive(p)
	return y, x
}

// MoveYX relocates the plane's origin relative to its bound plane.
func (p *Plane) MoveYX(y, x int) error {
	if err := p.valid(); err != nil {
		return err
	}
	err := bindings.PlaneMoveYX(p.p, y, x)
	runtime.KeepAlive(p)
	return remapError(err)
}

// CursorMoveYX moves the plane's virtual cursor.
func (p *Plane) CursorMoveYX(y, x int) error {
	if err := p.valid(); err != nil {
		return err
	}
	err := bindings.PlaneCursorMoveYX(p.p, y, x)
	runtime.KeepAlive(p)
	return remapError(err)
}

// CursorYX reports the plane's virtual cursor position.
func (p *Plane) CursorYX() (y, x int) {
	if p.valid() != nil {
		return 0, 0
	}
	y, x = bindings.PlaneCursorYX(p.p)
	runtime.KeepAlive(p)
	return y, x
}

// PutStr writes s at the current cursor position, returning the number of
// columns output.
func (p *Plane) PutStr(s string) (int, error) {
	return p.PutStrYX(-1, -1, s)
}

// PutStrYX writes s at y, x (-1 retains the cursor position on that axis),
// returning the number of columns output.
func (p *Plane) PutStrYX(y, x int, s string) (int, error) {
	if err := p.valid(); err != nil {
		return 0, err
	}
	n, err := bindings.PlanePutStrYX(p.p, y, x, s)
	runtime.KeepAlive(p)
	return n, remapError(err)
}

// PutStrAligned writes s on row y, aligned against the plane's width. The
// column offset is computed host-side from the string's column width.
func (p *Plane) PutStrAligned(y int, align Align, s string) (int, error) {
	if err := p.valid(); err != nil {
		return 0, err
	}
	_, cols := bindings.PlaneDim(p.p)
	x := align.Offset(cols, runewidth.StringWidth(s))
	n, err := bindings.PlanePutStrYX(p.p, y, x, s)
	runtime.KeepAlive(p)
	return n, remapError(err)
}

// PutChar writes a single character at the current cursor position,
// returning the number of columns consumed.
func (p *Plane) PutChar(r rune) (int, error) {
	return p.PutCharYX(-1, -1, r)
}

// PutCharYX writes a single character at y, x (-1 retains the cursor
// position on that axis), returning the number of columns consumed.
func (p *Plane) PutCharYX(y, x int, r rune) (int, error) {
	if err := p.valid(); err != nil {
		return 0, err
	}
	n, err := bindings.PlanePutEGCYX(p.p, y, x, string(r))
	runtime.KeepAlive(p)
	return n, remapError(err)
}

// Erase zeroes out every cell of the plane without repositioning it.
func (p *Plane) Erase() {
	if p.valid() != nil {
		return
	}
	bindings.PlaneErase(p.p)
	runtime.KeepAlive(p)
}

// SetScrolling toggles scrolling, returning the previous setting. With
// scrolling enabled, output past the end of the plane scrolls it instead of
// failing.
func (p *Plane) SetScrolling(scroll bool) bool {
	if p.valid() != nil {
		return false
	}
	prev := bindings.PlaneSetScrolling(p.p, scroll)
	runtime.KeepAlive(p)
	return prev
}

// Resize performs the full ncplane_resize with retained-region semantics:
// the keep rectangle survives, placed at yOff, xOff within the new yLen by
// xLen geometry.
func (p *Plane) Resize(keepY, keepX, keepLenY, keepLenX, yOff, xOff, yLen, xLen int) error {
	if err := p.valid(); err != nil {
		return err
	}
	err := bindings.PlaneResize(p.p, keepY, keepX, keepLenY, keepLenX, yOff, xOff, yLen, xLen)
	runtime.KeepAlive(p)
	return remapError(err)
}

// ResizeSimple resizes the plane to rows x cols, retaining what contents it
// can.
func (p *Plane) ResizeSimple(rows, cols int) error {
	if err := p.valid(); err != nil {
		return err
	}
	err := bindings.PlaneResizeSimple(p.p, rows, cols)
	runtime.KeepAlive(p)
	return remapError(err)
}

// Reparent detaches the plane and binds it to newParent. The standard plane
// cannot be reparented.
func (p *Plane) Reparent(newParent *Plane) error {
	if err := p.valid(); err != nil {
		return err
	}
	if p.std {
		return ErrStdPlane
	}
	if err := newParent.valid(); err != nil {
		return err
	}
	_, err := bindings.PlaneReparent(p.p, newParent.p)
	runtime.KeepAlive(p)
	runtime.KeepAlive(newParent)
	return remapError(err)
}

// SetFgRGB8 sets the foreground color for new output.
func (p *Plane) SetFgRGB8(r, g, b uint8) error {
	if err := p.valid(); err != nil {
		return err
	}
	err := bindings.PlaneSetFgRGB(p.p, packRGB(r, g, b))
	runtime.KeepAlive(p)
	return remapError(err)
}

// SetBgRGB8 sets the background color for new output.
func (p *Plane) SetBgRGB8(r, g, b uint8) error {
	if err := p.valid(); err != nil {
		return err
	}
	err := bindings.PlaneSetBgRGB(p.p, packRGB(r, g, b))
	runtime.KeepAlive(p)
	return remapError(err)
}

// SetFgDefault uses the terminal's default foreground for new output.
func (p *Plane) SetFgDefault() {
	if p.valid() != nil {
		return
	}
	bindings.PlaneSetFgDefault(p.p)
	runtime.KeepAlive(p)
}

// SetBgDefault uses the terminal's default background for new output.
func (p *Plane) SetBgDefault() {
	if p.valid() != nil {
		return
	}
	bindings.PlaneSetBgDefault(p.p)
	runtime.KeepAlive(p)
}

// SetStyles replaces the plane's style bits for new output.
func (p *Plane) SetStyles(s Style) {
	if p.valid() != nil {
		return
	}
	bindings.PlaneSetStyles(p.p, uint32(s))
	runtime.KeepAlive(p)
}

// StylesOn enables style bits for new output.
func (p *Plane) StylesOn(s Style) {
	if p.valid() != nil {
		return
	}
	bindings.PlaneOnStyles(p.p, uint32(s))
	runtime.KeepAlive(p)
}

// StylesOff disables style bits for new output.
func (p *Plane) StylesOff(s Style) {
	if p.valid() != nil {
		return
	}
	bindings.PlaneOffStyles(p.p, uint32(s))
	runtime.KeepAlive(p)
}

// Channels reports the plane's current channels.
func (p *Plane) Channels() Channels {
	if p.valid() != nil {
		return 0
	}
	ch := bindings.PlaneChannels(p.p)
	runtime.KeepAlive(p)
	return Channels(ch)
}

// SetBase sets the plane's base cell, rendered anywhere the plane has no
// glyph of its own.
func (p *Plane) SetBase(egc string, style Style, channels Channels) error {
	if err := p.valid(); err != nil {
		return err
	}
	err := bindings.PlaneSetBase(p.p, egc, uint32(style), uint64(channels))
	runtime.KeepAlive(p)
	return remapError(err)
}

// AtYX retrieves a copy of the plane's contents at y, x.
func (p *Plane) AtYX(y, x int) (egc string, style Style, channels Channels, err error) {
	if err := p.valid(); err != nil {
		return "", 0, 0, err
	}
	e, sm, ch, err := bindings.PlaneAtYX(p.p, y, x)
	runtime.KeepAlive(p)
	if err != nil {
		return "", 0, 0, remapError(err)
	}
	return e, Style(sm), Channels(ch), nil
}

func packRGB(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}
