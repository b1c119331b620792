//go:build cgo && !windows

package bindings

/*
#cgo pkg-config: notcurses
#include <stdlib.h>
#include <string.h>
#include <notcurses/notcurses.h>

static struct ncplane* nc_visual_render_shim(struct notcurses* nc, struct ncvisual* ncv,
                                             struct ncplane* n, int scaling, int y, int x,
                                             unsigned begy, unsigned begx,
                                             unsigned leny, unsigned lenx,
                                             int blitter, uint64_t flags,
                                             uint32_t transcolor,
                                             unsigned pxoffy, unsigned pxoffx) {
	struct ncvisual_options vopts;
	memset(&vopts, 0, sizeof(vopts));
	vopts.n = n;
	vopts.scaling = scaling;
	vopts.y = y;
	vopts.x = x;
	vopts.begy = begy;
	vopts.begx = begx;
	vopts.leny = leny;
	vopts.lenx = lenx;
	vopts.blitter = blitter;
	vopts.flags = flags;
	vopts.transcolor = transcolor;
	vopts.pxoffy = pxoffy;
	vopts.pxoffx = pxoffx;
	return ncvisual_render(nc, ncv, &vopts);
}
*/
import "C"

import (
	"errors"
	"fmt"
	"unsafe"
)

// VisualFromFile opens a media file via the library's multimedia backend.
// The caller owns the handle and must release it with VisualDestroy.
func VisualFromFile(path string) (unsafe.Pointer, error) {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))
	v := C.ncvisual_from_file(cpath)
	if v == nil {
		return nil, fmt.Errorf("ncvisual_from_file(%q) failed", path)
	}
	return unsafe.Pointer(v), nil
}

// VisualFromRGBA builds a visual from packed RGBA pixels. The pixel data is
// copied by the library, so rgba only needs to stay alive for this call.
func VisualFromRGBA(rgba []byte, rows, rowstride, cols int) (unsafe.Pointer, error) {
	if rows <= 0 || cols <= 0 || rowstride < cols*4 {
		return nil, fmt.Errorf("invalid visual geometry %dx%d stride %d", rows, cols, rowstride)
	}
	if len(rgba) < rows*rowstride {
		return nil, fmt.Errorf("rgba buffer %d short of %d", len(rgba), rows*rowstride)
	}
	v := C.ncvisual_from_rgba(unsafe.Pointer(&rgba[0]), C.int(rows), C.int(rowstride), C.int(cols))
	if v == nil {
		return nil, errors.New("ncvisual_from_rgba failed")
	}
	return unsafe.Pointer(v), nil
}

// VisualDestroy releases a visual.
func VisualDestroy(v unsafe.Pointer) {
	if v != nil {
		C.ncvisual_destroy((*C.struct_ncvisual)(v))
	}
}

// VisualRender blits the visual per opts, returning the plane it was blitted
// to. When opts.N is nil the library creates a plane sized to the source and
// the caller owns it.
func VisualRender(nc, v unsafe.Pointer, opts VisualOptions) (unsafe.Pointer, error) {
	p := C.nc_visual_render_shim((*C.struct_notcurses)(nc), (*C.struct_ncvisual)(v),
		(*C.struct_ncplane)(opts.N), C.int(opts.Scaling), C.int(opts.Y), C.int(opts.X),
		C.uint(opts.BegY), C.uint(opts.BegX), C.uint(opts.LenY), C.uint(opts.LenX),
		C.int(opts.Blitter), C.uint64_t(opts.Flags), C.uint32_t(opts.TransColor),
		C.uint(opts.PxOffY), C.uint(opts.PxOffX))
	if p == nil {
		return nil, errors.New("ncvisual_render failed")
	}
	return unsafe.Pointer(p), nil
}

// VisualResize scales the visual to rows x cols using the default
// interpolation.
func VisualResize(v unsafe.Pointer, rows, cols int) error {
	if rc := C.ncvisual_resize((*C.struct_ncvisual)(v), C.int(rows), C.int(cols)); rc != 0 {
		return fmt.Errorf("ncvisual_resize(%d, %d): rc %d", rows, cols, int(rc))
	}
	return nil
}

// VisualRotate rotates the visual by rads radians.
func VisualRotate(v unsafe.Pointer, rads float64) error {
	if rc := C.ncvisual_rotate((*C.struct_ncvisual)(v), C.double(rads)); rc != 0 {
		return fmt.Errorf("ncvisual_rotate(%f): rc %d", rads, int(rc))
	}
	return nil
}
