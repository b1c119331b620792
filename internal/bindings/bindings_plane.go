//go:build cgo && !windows

package bindings

/*
#cgo pkg-config: notcurses
#include <stdlib.h>
#include <string.h>
#include <notcurses/notcurses.h>

static struct ncplane* nc_plane_create_shim(struct ncplane* parent, int y, int x,
                                            int rows, int cols, const char* name,
                                            uint64_t flags) {
	ncplane_options opts;
	memset(&opts, 0, sizeof(opts));
	opts.y = y;
	opts.x = x;
	opts.rows = rows;
	opts.cols = cols;
	opts.name = name;
	opts.flags = flags;
	return ncplane_create(parent, &opts);
}
*/
import "C"

import (
	"errors"
	"fmt"
	"unsafe"
)

var errNilPlane = errors.New("nil plane handle")

// PlaneCreate makes a new plane bound to parent. The caller owns the handle
// and must release it with PlaneDestroy.
func PlaneCreate(parent unsafe.Pointer, y, x, rows, cols int, name string, flags uint64) (unsafe.Pointer, error) {
	if parent == nil {
		return nil, errNilPlane
	}
	var cname *C.char
	if name != "" {
		cname = C.CString(name)
		defer C.free(unsafe.Pointer(cname))
	}
	p := C.nc_plane_create_shim((*C.struct_ncplane)(parent), C.int(y), C.int(x),
		C.int(rows), C.int(cols), cname, C.uint64_t(flags))
	if p == nil {
		return nil, fmt.Errorf("ncplane_create(%dx%d at %d,%d) failed", rows, cols, y, x)
	}
	return unsafe.Pointer(p), nil
}

// PlaneDestroy releases a plane. Never call it on the standard plane.
func PlaneDestroy(p unsafe.Pointer) error {
	if p == nil {
		return errNilPlane
	}
	if rc := C.ncplane_destroy((*C.struct_ncplane)(p)); rc != 0 {
		return fmt.Errorf("ncplane_destroy: rc %d", int(rc))
	}
	return nil
}

// PlaneDim reports the plane's size in cells.
func PlaneDim(p unsafe.Pointer) (rows, cols int) {
	var r, c C.int
	C.ncplane_dim_yx((*C.struct_ncplane)(p), &r, &c)
	return int(r), int(c)
}

// PlaneYX reports the plane's origin relative to its bound plane.
func PlaneYX(p unsafe.Pointer) (y, x int) {
	var cy, cx C.int
	C.ncplane_yx((*C.struct_ncplane)(p), &cy, &cx)
	return int(cy), int(cx)
}

// PlaneMoveYX relocates the plane's origin.
func PlaneMoveYX(p unsafe.Pointer, y, x int) error {
	if rc := C.ncplane_move_yx((*C.struct_ncplane)(p), C.int(y), C.int(x)); rc != 0 {
		return fmt.Errorf("ncplane_move_yx(%d, %d): rc %d", y, x, int(rc))
	}
	return nil
}

// PlaneCursorMoveYX moves the plane's cursor.
func PlaneCursorMoveYX(p unsafe.Pointer, y, x int) error {
	if rc := C.ncplane_cursor_move_yx((*C.struct_ncplane)(p), C.int(y), C.int(x)); rc != 0 {
		return fmt.Errorf("ncplane_cursor_move_yx(%d, %d): rc %d", y, x, int(rc))
	}
	return nil
}

// PlaneCursorYX reports the plane's cursor position.
func PlaneCursorYX(p unsafe.Pointer) (y, x int) {
	var cy, cx C.int
	C.ncplane_cursor_yx((*C.struct_ncplane)(p), &cy, &cx)
	return int(cy), int(cx)
}

// PlanePutStrYX writes a string at y, x (-1 meaning the current cursor
// position on that axis) and returns the number of columns output.
func PlanePutStrYX(p unsafe.Pointer, y, x int, s string) (int, error) {
	cs := C.CString(s)
	defer C.free(unsafe.Pointer(cs))
	n := C.ncplane_putstr_yx((*C.struct_ncplane)(p), C.int(y), C.int(x), cs)
	if n < 0 {
		return int(n), fmt.Errorf("ncplane_putstr_yx(%d, %d): rc %d", y, x, int(n))
	}
	return int(n), nil
}

// PlanePutEGCYX writes a single extended grapheme cluster at y, x (-1 meaning
// the current cursor position on that axis) and returns the columns consumed.
func PlanePutEGCYX(p unsafe.Pointer, y, x int, egc string) (int, error) {
	cs := C.CString(egc)
	defer C.free(unsafe.Pointer(cs))
	var sbytes C.int
	n := C.ncplane_putegc_yx((*C.struct_ncplane)(p), C.int(y), C.int(x), cs, &sbytes)
	if n < 0 {
		return int(n), fmt.Errorf("ncplane_putegc_yx(%d, %d): rc %d", y, x, int(n))
	}
	return int(n), nil
}

// PlaneErase zeroes out every cell of the plane.
func PlaneErase(p unsafe.Pointer) {
	C.ncplane_erase((*C.struct_ncplane)(p))
}

// PlaneSetScrolling toggles scrolling and returns the previous setting.
func PlaneSetScrolling(p unsafe.Pointer, scroll bool) bool {
	return bool(C.ncplane_set_scrolling((*C.struct_ncplane)(p), C.bool(scroll)))
}

// PlaneResize does a full resize with the retained-region semantics of
// ncplane_resize.
func PlaneResize(p unsafe.Pointer, keepY, keepX, keepLenY, keepLenX, yOff, xOff, yLen, xLen int) error {
	rc := C.ncplane_resize((*C.struct_ncplane)(p), C.int(keepY), C.int(keepX),
		C.int(keepLenY), C.int(keepLenX), C.int(yOff), C.int(xOff), C.int(yLen), C.int(xLen))
	if rc != 0 {
		return fmt.Errorf("ncplane_resize: rc %d", int(rc))
	}
	return nil
}

// PlaneResizeSimple resizes the plane, retaining what data can be retained.
func PlaneResizeSimple(p unsafe.Pointer, rows, cols int) error {
	if rc := C.ncplane_resize_simple((*C.struct_ncplane)(p), C.int(rows), C.int(cols)); rc != 0 {
		return fmt.Errorf("ncplane_resize_simple(%d, %d): rc %d", rows, cols, int(rc))
	}
	return nil
}

// PlaneReparent detaches p and attaches it to newparent.
func PlaneReparent(p, newparent unsafe.Pointer) (unsafe.Pointer, error) {
	np := C.ncplane_reparent((*C.struct_ncplane)(p), (*C.struct_ncplane)(newparent))
	if np == nil {
		return nil, errors.New("ncplane_reparent failed")
	}
	return unsafe.Pointer(np), nil
}

// PlaneSetFgRGB sets the foreground from a packed 0xRRGGBB value.
func PlaneSetFgRGB(p unsafe.Pointer, rgb uint32) error {
	if rc := C.ncplane_set_fg_rgb((*C.struct_ncplane)(p), C.uint32_t(rgb)); rc != 0 {
		return fmt.Errorf("ncplane_set_fg_rgb(%#06x): rc %d", rgb, int(rc))
	}
	return nil
}

// PlaneSetBgRGB sets the background from a packed 0xRRGGBB value.
func PlaneSetBgRGB(p unsafe.Pointer, rgb uint32) error {
	if rc := C.ncplane_set_bg_rgb((*C.struct_ncplane)(p), C.uint32_t(rgb)); rc != 0 {
		return fmt.Errorf("ncplane_set_bg_rgb(%#06x): rc %d", rgb, int(rc))
	}
	return nil
}

// PlaneSetFgDefault uses the terminal's default foreground.
func PlaneSetFgDefault(p unsafe.Pointer) {
	C.ncplane_set_fg_default((*C.struct_ncplane)(p))
}

// PlaneSetBgDefault uses the terminal's default background.
func PlaneSetBgDefault(p unsafe.Pointer) {
	C.ncplane_set_bg_default((*C.struct_ncplane)(p))
}

// PlaneSetStyles replaces the plane's style bits.
func PlaneSetStyles(p unsafe.Pointer, styles uint32) {
	C.ncplane_set_styles((*C.struct_ncplane)(p), C.uint(styles))
}

// PlaneOnStyles enables style bits.
func PlaneOnStyles(p unsafe.Pointer, styles uint32) {
	C.ncplane_on_styles((*C.struct_ncplane)(p), C.uint(styles))
}

// PlaneOffStyles disables style bits.
func PlaneOffStyles(p unsafe.Pointer, styles uint32) {
	C.ncplane_off_styles((*C.struct_ncplane)(p), C.uint(styles))
}

// PlaneChannels reports the plane's current channels.
func PlaneChannels(p unsafe.Pointer) uint64 {
	return uint64(C.ncplane_channels((*C.struct_ncplane)(p)))
}

// PlaneSetBase sets the plane's base cell from an EGC, style bits, and
// channels; it is rendered anywhere the plane has no glyph.
func PlaneSetBase(p unsafe.Pointer, egc string, stylemask uint32, channels uint64) error {
	cs := C.CString(egc)
	defer C.free(unsafe.Pointer(cs))
	if rc := C.ncplane_set_base((*C.struct_ncplane)(p), cs, C.uint32_t(stylemask), C.uint64_t(channels)); rc < 0 {
		return fmt.Errorf("ncplane_set_base: rc %d", int(rc))
	}
	return nil
}

// PlaneAtYX retrieves a copy of the plane's contents at y, x.
func PlaneAtYX(p unsafe.Pointer, y, x int) (egc string, stylemask uint16, channels uint64, err error) {
	var sm C.uint16_t
	var ch C.uint64_t
	cp := C.ncplane_at_yx((*C.struct_ncplane)(p), C.int(y), C.int(x), &sm, &ch)
	if cp == nil {
		return "", 0, 0, fmt.Errorf("ncplane_at_yx(%d, %d) failed", y, x)
	}
	egc = C.GoString(cp)
	C.free(unsafe.Pointer(cp))
	return egc, uint16(sm), uint64(ch), nil
}
