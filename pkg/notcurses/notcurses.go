package notcurses

import (
	"os"
	"runtime"
	"sync"
	"unsafe"

	"github.com/bdchik/notcurses-go/internal/bindings"
)

// Notcurses is a handle to an initialized notcurses context. It owns the
// underlying struct notcurses and must be released with Close, which
// restores the terminal. One goroutine at a time may use the context.
type Notcurses struct {
	nc     unsafe.Pointer
	std    *Plane
	closed bool

	// mu guards planes against the finalizer goroutine; planes tracks the
	// Go-owned wrappers so Close and DropPlanes can invalidate them.
	mu     sync.Mutex
	planes map[*Plane]struct{}
}

// New initializes notcurses on the process stdout. A nil opts requests the
// library defaults. The caller must Close the returned context before
// process exit or the terminal is left in an unknown state.
func New(opts *Options) (*Notcurses, error) {
	h, err := bindings.Init(opts.toBindings())
	if err != nil {
		return nil, remapError(err)
	}

	n := &Notcurses{nc: h}
	n.std = &Plane{p: bindings.StdPlane(h), owner: n, std: true}
	return n, nil
}

// Close stops notcurses and restores the terminal. It is idempotent,
// returning ErrClosed when called twice. A nil receiver is a no-op.
func (n *Notcurses) Close() error {
	if n == nil {
		return nil
	}
	if n.closed {
		return ErrClosed
	}

	if err := bindings.Stop(n.nc); err != nil {
		return remapError(err)
	}

	n.closed = true
	n.nc = nil
	n.std.p = nil
	n.invalidatePlanes()
	return nil
}

func (n *Notcurses) register(p *Plane) {
	n.mu.Lock()
	if n.planes == nil {
		n.planes = make(map[*Plane]struct{})
	}
	n.planes[p] = struct{}{}
	n.mu.Unlock()
}

func (n *Notcurses) unregister(p *Plane) {
	n.mu.Lock()
	delete(n.planes, p)
	n.mu.Unlock()
}

// invalidatePlanes marks every outstanding Go-owned wrapper destroyed and
// disarms its finalizer. It must run whenever the foreign planes are gone
// (Close, DropPlanes): a stale handle must never reach the native library.
func (n *Notcurses) invalidatePlanes() {
	n.mu.Lock()
	for p := range n.planes {
		p.p = nil
		p.destroyed = true
		runtime.SetFinalizer(p, nil)
	}
	n.planes = nil
	n.mu.Unlock()
}

// Ptr exposes the raw context handle for sibling packages. The handle is
// only valid until Close.
func (n *Notcurses) Ptr() (unsafe.Pointer, error) {
	if n == nil || n.closed || n.nc == nil {
		return nil, ErrClosed
	}
	return n.nc, nil
}

// Render writes out the current state of all planes to the terminal.
func (n *Notcurses) Render() error {
	if n == nil || n.closed || n.nc == nil {
		return ErrClosed
	}
	err := bindings.Render(n.nc)
	runtime.KeepAlive(n)
	return remapError(err)
}

// Refresh repaints the screen from the last rendered frame, returning the
// current terminal dimensions. Useful after gratuitous screen damage.
func (n *Notcurses) Refresh() (rows, cols int, err error) {
	if n == nil || n.closed || n.nc == nil {
		return 0, 0, ErrClosed
	}
	rows, cols, err = bindings.Refresh(n.nc)
	runtime.KeepAlive(n)
	return rows, cols, remapError(err)
}

// RenderToFile writes the last rendered frame to f as UTF-8 with ANSI
// escapes.
func (n *Notcurses) RenderToFile(f *os.File) error {
	if n == nil || n.closed || n.nc == nil {
		return ErrClosed
	}
	err := bindings.RenderToFile(n.nc, f)
	runtime.KeepAlive(n)
	return remapError(err)
}

// RenderToBuffer renders and rasterizes the pile, returning the raster
// bytes instead of writing them to the terminal.
func (n *Notcurses) RenderToBuffer() ([]byte, error) {
	if n == nil || n.closed || n.nc == nil {
		return nil, ErrClosed
	}
	out, err := bindings.RenderToBuffer(n.nc)
	runtime.KeepAlive(n)
	return out, remapError(err)
}

// Debug dumps the state of every plane to f.
func (n *Notcurses) Debug(f *os.File) error {
	if n == nil || n.closed || n.nc == nil {
		return ErrClosed
	}
	err := bindings.Debug(n.nc, f)
	runtime.KeepAlive(n)
	return remapError(err)
}

// StdPlane returns the standard plane, which always matches the terminal
// dimensions. It is owned by the context and cannot be destroyed.
func (n *Notcurses) StdPlane() (*Plane, error) {
	if n == nil || n.closed || n.nc == nil {
		return nil, ErrClosed
	}
	return n.std, nil
}

// StdDimYX returns the standard plane along with its dimensions.
func (n *Notcurses) StdDimYX() (p *Plane, rows, cols int, err error) {
	p, err = n.StdPlane()
	if err != nil {
		return nil, 0, 0, err
	}
	rows, cols = p.Dim()
	return p, rows, cols, nil
}

// TermDimYX reports the current idea of the terminal dimensions in rows and
// columns.
func (n *Notcurses) TermDimYX() (rows, cols int, err error) {
	_, rows, cols, err = n.StdDimYX()
	return rows, cols, err
}

// Top returns the topmost plane of the standard pile.
func (n *Notcurses) Top() (*Plane, error) {
	if n == nil || n.closed || n.nc == nil {
		return nil, ErrClosed
	}
	return n.wrapForeign(bindings.Top(n.nc)), nil
}

// Bottom returns the bottommost plane of the standard pile.
func (n *Notcurses) Bottom() (*Plane, error) {
	if n == nil || n.closed || n.nc == nil {
		return nil, ErrClosed
	}
	return n.wrapForeign(bindings.Bottom(n.nc)), nil
}

// DropPlanes destroys every plane other than the standard one. Outstanding
// wrappers for those planes are marked destroyed and their finalizers
// disarmed.
func (n *Notcurses) DropPlanes() error {
	if n == nil || n.closed || n.nc == nil {
		return ErrClosed
	}
	bindings.DropPlanes(n.nc)
	n.invalidatePlanes()
	runtime.KeepAlive(n)
	return nil
}

// AtYX retrieves a copy of the last-rendered contents at y, x: the EGC, its
// style bits, and its channels.
func (n *Notcurses) AtYX(y, x int) (egc string, style Style, channels Channels, err error) {
	if n == nil || n.closed || n.nc == nil {
		return "", 0, 0, ErrClosed
	}
	e, sm, ch, err := bindings.AtYX(n.nc, y, x)
	runtime.KeepAlive(n)
	if err != nil {
		return "", 0, 0, remapError(err)
	}
	return e, Style(sm), Channels(ch), nil
}

// wrapForeign wraps a plane handle the context owns (the std plane or a
// pile member surfaced by Top/Bottom). Such wrappers refuse Destroy when
// they alias the standard plane.
func (n *Notcurses) wrapForeign(p unsafe.Pointer) *Plane {
	if p == nil {
		return nil
	}
	if n.std != nil && p == n.std.p {
		return n.std
	}
	return &Plane{p: p, owner: n}
}

// CanTrueColor reports whether the terminal can directly specify RGB colors.
func (n *Notcurses) CanTrueColor() bool { return n.capability(bindings.CanTrueColor) }

// CanUTF8 reports whether the encoding is UTF-8.
func (n *Notcurses) CanUTF8() bool { return n.capability(bindings.CanUTF8) }

// CanFade reports whether fading is possible.
func (n *Notcurses) CanFade() bool { return n.capability(bindings.CanFade) }

// CanChangeColor reports whether palette entries can be redefined.
func (n *Notcurses) CanChangeColor() bool { return n.capability(bindings.CanChangeColor) }

// CanOpenImages reports whether the multimedia backend can decode images.
func (n *Notcurses) CanOpenImages() bool { return n.capability(bindings.CanOpenImages) }

// CanOpenVideos reports whether the multimedia backend can decode video.
func (n *Notcurses) CanOpenVideos() bool { return n.capability(bindings.CanOpenVideos) }

// CanSixel reports whether sixel graphics are supported.
func (n *Notcurses) CanSixel() bool { return n.capability(bindings.CanSixel) }

func (n *Notcurses) capability(f func(unsafe.Pointer) bool) bool {
	if n == nil || n.closed || n.nc == nil {
		return false
	}
	ok := f(n.nc)
	runtime.KeepAlive(n)
	return ok
}

// PaletteSize reports the number of simultaneous colors the terminal
// palette holds.
func (n *Notcurses) PaletteSize() uint32 {
	if n == nil || n.closed || n.nc == nil {
		return 0
	}
	s := bindings.PaletteSize(n.nc)
	runtime.KeepAlive(n)
	return s
}

// SupportedStyles returns the style bits the terminal claims to honor.
func (n *Notcurses) SupportedStyles() Style {
	if n == nil || n.closed || n.nc == nil {
		return 0
	}
	s := bindings.SupportedStyles(n.nc)
	runtime.KeepAlive(n)
	return Style(s)
}

// CursorEnable makes the terminal cursor visible at y, x on the standard
// plane.
func (n *Notcurses) CursorEnable(y, x int) error {
	if n == nil || n.closed || n.nc == nil {
		return ErrClosed
	}
	err := bindings.CursorEnable(n.nc, y, x)
	runtime.KeepAlive(n)
	return remapError(err)
}

// CursorDisable hides the terminal cursor.
func (n *Notcurses) CursorDisable() error {
	if n == nil || n.closed || n.nc == nil {
		return ErrClosed
	}
	err := bindings.CursorDisable(n.nc)
	runtime.KeepAlive(n)
	return remapError(err)
}

// MouseEnable asks the terminal to deliver mouse button press and release
// events through the input stream.
func (n *Notcurses) MouseEnable() error {
	if n == nil || n.closed || n.nc == nil {
		return ErrClosed
	}
	err := bindings.MouseEnable(n.nc)
	runtime.KeepAlive(n)
	return remapError(err)
}

// MouseDisable stops mouse event delivery.
func (n *Notcurses) MouseDisable() error {
	if n == nil || n.closed || n.nc == nil {
		return ErrClosed
	}
	err := bindings.MouseDisable(n.nc)
	runtime.KeepAlive(n)
	return remapError(err)
}

// UCS32ToUTF8 converts UCS-32 codepoints to UTF-8 with the library's own
// converter.
func UCS32ToUTF8(ucs []rune) (string, error) {
	s, err := bindings.UCS32ToUTF8(ucs)
	return s, remapError(err)
}
