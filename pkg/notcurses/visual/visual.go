package visual

import (
	"errors"
	"image"
	"runtime"
	"unsafe"

	"golang.org/x/image/draw"

	"github.com/bdchik/notcurses-go/internal/bindings"
	"github.com/bdchik/notcurses-go/pkg/notcurses"
)

var errDestroyed = errors.New("visual: destroyed")

// Visual wraps an ncvisual. It owns the foreign object; release it with
// Destroy (a finalizer backstops leaks).
type Visual struct {
	v unsafe.Pointer
}

func wrap(v unsafe.Pointer) *Visual {
	vis := &Visual{v: v}
	runtime.SetFinalizer(vis, (*Visual).Destroy)
	return vis
}

// FromFile opens a media file through the library's multimedia backend.
// It fails when notcurses was built without one.
func FromFile(path string) (*Visual, error) {
	h, err := bindings.VisualFromFile(path)
	if err != nil {
		return nil, err
	}
	return wrap(h), nil
}

// FromRGBA builds a visual from packed RGBA pixels: rows lines of cols
// pixels each, rowstride bytes apart. The pixels are copied; rgba may be
// reused after the call.
func FromRGBA(rgba []byte, rows, rowstride, cols int) (*Visual, error) {
	h, err := bindings.VisualFromRGBA(rgba, rows, rowstride, cols)
	if err != nil {
		return nil, err
	}
	return wrap(h), nil
}

// FromImage converts any image.Image into a visual, drawing it into a tight
// RGBA buffer first.
func FromImage(img image.Image) (*Visual, error) {
	return FromImageScaled(img, 0, 0)
}

// FromImageScaled converts an image into a visual of rows x cols pixels,
// scaling with bilinear interpolation. Zero rows or cols keeps the source
// geometry.
func FromImageScaled(img image.Image, rows, cols int) (*Visual, error) {
	if img == nil {
		return nil, errors.New("visual: nil image")
	}
	bounds := img.Bounds()
	if rows <= 0 {
		rows = bounds.Dy()
	}
	if cols <= 0 {
		cols = bounds.Dx()
	}
	if rows <= 0 || cols <= 0 {
		return nil, errors.New("visual: empty image")
	}

	dst := image.NewRGBA(image.Rect(0, 0, cols, rows))
	if rows == bounds.Dy() && cols == bounds.Dx() {
		draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	} else {
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
	}
	return FromRGBA(dst.Pix, rows, dst.Stride, cols)
}

// Destroy releases the visual. It is safe to call more than once.
func (v *Visual) Destroy() {
	if v != nil && v.v != nil {
		bindings.VisualDestroy(v.v)
		v.v = nil
		runtime.SetFinalizer(v, nil)
	}
}

// Ptr exposes the raw visual handle. The handle is only valid until
// Destroy.
func (v *Visual) Ptr() (unsafe.Pointer, error) {
	if v == nil || v.v == nil {
		return nil, errDestroyed
	}
	return v.v, nil
}

// Render blits the visual per opts, returning the plane holding the
// result. When opts supplies no plane (or a parent), the returned plane is
// newly created and owned by the caller; otherwise it is the supplied
// plane.
func (v *Visual) Render(nc *notcurses.Notcurses, opts Options) (*notcurses.Plane, error) {
	if v == nil || v.v == nil {
		return nil, errDestroyed
	}
	ncPtr, err := nc.Ptr()
	if err != nil {
		return nil, err
	}

	bo := bindings.VisualOptions{
		Scaling:    int(opts.Scaling),
		Y:          opts.Y,
		X:          opts.X,
		Blitter:    int(opts.Blitter),
		Flags:      opts.Flags,
		TransColor: opts.TransColor,
		PxOffY:     opts.CellOffY,
		PxOffX:     opts.CellOffX,
	}
	if opts.HaveRegion {
		bo.BegY, bo.BegX = opts.BegY, opts.BegX
		bo.LenY, bo.LenX = opts.LenY, opts.LenX
	}
	createsPlane := opts.Plane == nil || opts.Flags&FlagChildPlane != 0
	if opts.Plane != nil {
		pp, err := opts.Plane.Ptr()
		if err != nil {
			return nil, err
		}
		bo.N = pp
	}

	out, err := bindings.VisualRender(ncPtr, v.v, bo)
	runtime.KeepAlive(v)
	runtime.KeepAlive(nc)
	runtime.KeepAlive(opts.Plane)
	if err != nil {
		return nil, err
	}
	if !createsPlane {
		return opts.Plane, nil
	}
	return notcurses.NewPlaneFromPtr(nc, out, true), nil
}

// Resize scales the visual to rows x cols pixels in place.
func (v *Visual) Resize(rows, cols int) error {
	if v == nil || v.v == nil {
		return errDestroyed
	}
	err := bindings.VisualResize(v.v, rows, cols)
	runtime.KeepAlive(v)
	return err
}

// Rotate rotates the visual by rads radians in place.
func (v *Visual) Rotate(rads float64) error {
	if v == nil || v.v == nil {
		return errDestroyed
	}
	err := bindings.VisualRotate(v.v, rads)
	runtime.KeepAlive(v)
	return err
}
