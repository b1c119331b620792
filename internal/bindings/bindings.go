//go:build cgo && !windows

package bindings

/*
#cgo pkg-config: notcurses
#include <stdio.h>
#include <stdlib.h>
#include <string.h>
#include <signal.h>
#include <unistd.h>
#include <notcurses/notcurses.h>

// notcurses_getc wants a sigmask built host-side. Building a sigset_t from Go
// is not portable, so the mask is assembled here: full for the non-blocking
// poll, empty for the blocking read, matching the upstream convenience
// wrappers notcurses_getc_nblock and notcurses_getc_blocking.
static uint32_t nc_getc_shim(struct notcurses* nc, int blocking, ncinput* ni) {
	sigset_t sigmask;
	if (blocking) {
		sigemptyset(&sigmask);
		return notcurses_getc(nc, NULL, &sigmask, ni);
	}
	sigfillset(&sigmask);
	struct timespec ts = {0, 0};
	return notcurses_getc(nc, &ts, &sigmask, ni);
}

// Assigns fields by name so the struct layout of the installed notcurses
// headers, not a layout frozen here, decides the ABI.
static struct notcurses* nc_init_shim(const char* termtype, int loglevel,
                                      unsigned mt, unsigned mr, unsigned mb, unsigned ml,
                                      uint64_t flags) {
	notcurses_options opts;
	memset(&opts, 0, sizeof(opts));
	opts.termtype = termtype;
	opts.loglevel = loglevel;
	opts.margin_t = mt;
	opts.margin_r = mr;
	opts.margin_b = mb;
	opts.margin_l = ml;
	opts.flags = flags;
	return notcurses_init(&opts, NULL);
}

static int nc_lex_margins_shim(const char* op, unsigned* mt, unsigned* mr,
                               unsigned* mb, unsigned* ml) {
	notcurses_options opts;
	memset(&opts, 0, sizeof(opts));
	if (notcurses_lex_margins(op, &opts) != 0) {
		return -1;
	}
	*mt = opts.margin_t;
	*mr = opts.margin_r;
	*mb = opts.margin_b;
	*ml = opts.margin_l;
	return 0;
}
*/
import "C"

import (
	"errors"
	"fmt"
	"os"
	"unsafe"
)

var (
	errInit = errors.New("notcurses_init failed")
	errNil  = errors.New("nil notcurses handle")
)

// Init starts notcurses on the process stdout and returns the opaque context
// handle. The handle is owned by the caller and must be released with Stop.
func Init(opts InitOptions) (unsafe.Pointer, error) {
	var termtype *C.char
	if opts.TermType != "" {
		termtype = C.CString(opts.TermType)
		defer C.free(unsafe.Pointer(termtype))
	}

	nc := C.nc_init_shim(termtype, C.int(opts.LogLevel),
		C.uint(opts.MarginT), C.uint(opts.MarginR), C.uint(opts.MarginB), C.uint(opts.MarginL),
		C.uint64_t(opts.Flags))
	if nc == nil {
		return nil, errInit
	}
	return unsafe.Pointer(nc), nil
}

// Stop releases the context and restores the terminal.
func Stop(nc unsafe.Pointer) error {
	if nc == nil {
		return errNil
	}
	if rc := C.notcurses_stop((*C.struct_notcurses)(nc)); rc != 0 {
		return fmt.Errorf("notcurses_stop: rc %d", int(rc))
	}
	return nil
}

// Render writes out the current state of all planes.
func Render(nc unsafe.Pointer) error {
	if rc := C.notcurses_render((*C.struct_notcurses)(nc)); rc != 0 {
		return fmt.Errorf("notcurses_render: rc %d", int(rc))
	}
	return nil
}

// Refresh repaints the screen from the last rendered frame and reports the
// current terminal dimensions.
func Refresh(nc unsafe.Pointer) (rows, cols int, err error) {
	var r, c C.int
	if rc := C.notcurses_refresh((*C.struct_notcurses)(nc), &r, &c); rc != 0 {
		return 0, 0, fmt.Errorf("notcurses_refresh: rc %d", int(rc))
	}
	return int(r), int(c), nil
}

// RenderToFile writes the last rendered frame to f. The descriptor is duped
// so the FILE can be closed without disturbing the caller's handle.
func RenderToFile(nc unsafe.Pointer, f *os.File) error {
	fd := C.dup(C.int(f.Fd()))
	if fd < 0 {
		return errors.New("dup failed")
	}
	mode := C.CString("wb")
	defer C.free(unsafe.Pointer(mode))
	fp := C.fdopen(fd, mode)
	if fp == nil {
		C.close(fd)
		return errors.New("fdopen failed")
	}
	defer C.fclose(fp)
	if rc := C.notcurses_render_to_file((*C.struct_notcurses)(nc), fp); rc != 0 {
		return fmt.Errorf("notcurses_render_to_file: rc %d", int(rc))
	}
	return nil
}

// RenderToBuffer renders and rasterizes the pile, returning the raster
// bytes instead of writing them to the terminal. The C side allocates the
// buffer; it is copied into Go memory and freed here.
func RenderToBuffer(nc unsafe.Pointer) ([]byte, error) {
	var buf *C.char
	var buflen C.size_t
	if rc := C.notcurses_render_to_buffer((*C.struct_notcurses)(nc), &buf, &buflen); rc != 0 {
		return nil, fmt.Errorf("notcurses_render_to_buffer: rc %d", int(rc))
	}
	out := C.GoBytes(unsafe.Pointer(buf), C.int(buflen))
	C.free(unsafe.Pointer(buf))
	return out, nil
}

// Debug dumps the plane pile state to f.
func Debug(nc unsafe.Pointer, f *os.File) error {
	fd := C.dup(C.int(f.Fd()))
	if fd < 0 {
		return errors.New("dup failed")
	}
	mode := C.CString("w")
	defer C.free(unsafe.Pointer(mode))
	fp := C.fdopen(fd, mode)
	if fp == nil {
		C.close(fd)
		return errors.New("fdopen failed")
	}
	defer C.fclose(fp)
	C.notcurses_debug((*C.struct_notcurses)(nc), fp)
	return nil
}

// StdPlane returns the standard plane. The returned handle is owned by the
// context and must not be destroyed by the caller.
func StdPlane(nc unsafe.Pointer) unsafe.Pointer {
	return unsafe.Pointer(C.notcurses_stdplane((*C.struct_notcurses)(nc)))
}

// Top returns the topmost plane of the standard pile.
func Top(nc unsafe.Pointer) unsafe.Pointer {
	return unsafe.Pointer(C.notcurses_top((*C.struct_notcurses)(nc)))
}

// Bottom returns the bottommost plane of the standard pile.
func Bottom(nc unsafe.Pointer) unsafe.Pointer {
	return unsafe.Pointer(C.notcurses_bottom((*C.struct_notcurses)(nc)))
}

// DropPlanes destroys every plane other than the standard one.
func DropPlanes(nc unsafe.Pointer) {
	C.notcurses_drop_planes((*C.struct_notcurses)(nc))
}

// AtYX retrieves a copy of the rendered contents at y, x. The C side
// allocates the EGC; it is copied into Go memory and freed here.
func AtYX(nc unsafe.Pointer, y, x int) (egc string, stylemask uint16, channels uint64, err error) {
	var sm C.uint16_t
	var ch C.uint64_t
	p := C.notcurses_at_yx((*C.struct_notcurses)(nc), C.int(y), C.int(x), &sm, &ch)
	if p == nil {
		return "", 0, 0, fmt.Errorf("notcurses_at_yx(%d, %d) failed", y, x)
	}
	egc = C.GoString(p)
	C.free(unsafe.Pointer(p))
	return egc, uint16(sm), uint64(ch), nil
}

func CanTrueColor(nc unsafe.Pointer) bool {
	return bool(C.notcurses_cantruecolor((*C.struct_notcurses)(nc)))
}

func CanUTF8(nc unsafe.Pointer) bool {
	return bool(C.notcurses_canutf8((*C.struct_notcurses)(nc)))
}

func CanFade(nc unsafe.Pointer) bool {
	return bool(C.notcurses_canfade((*C.struct_notcurses)(nc)))
}

func CanChangeColor(nc unsafe.Pointer) bool {
	return bool(C.notcurses_canchangecolor((*C.struct_notcurses)(nc)))
}

func CanOpenImages(nc unsafe.Pointer) bool {
	return bool(C.notcurses_canopen_images((*C.struct_notcurses)(nc)))
}

func CanOpenVideos(nc unsafe.Pointer) bool {
	return bool(C.notcurses_canopen_videos((*C.struct_notcurses)(nc)))
}

func CanSixel(nc unsafe.Pointer) bool {
	return bool(C.notcurses_cansixel((*C.struct_notcurses)(nc)))
}

// PaletteSize reports the number of simultaneous colors in the palette.
func PaletteSize(nc unsafe.Pointer) uint32 {
	return uint32(C.notcurses_palette_size((*C.struct_notcurses)(nc)))
}

// SupportedStyles returns the NCSTYLE bits the terminal claims to honor.
func SupportedStyles(nc unsafe.Pointer) uint32 {
	return uint32(C.notcurses_supported_styles((*C.struct_notcurses)(nc)))
}

// CursorEnable makes the cursor visible at y, x.
func CursorEnable(nc unsafe.Pointer, y, x int) error {
	if rc := C.notcurses_cursor_enable((*C.struct_notcurses)(nc), C.int(y), C.int(x)); rc != 0 {
		return fmt.Errorf("notcurses_cursor_enable(%d, %d): rc %d", y, x, int(rc))
	}
	return nil
}

// CursorDisable hides the cursor.
func CursorDisable(nc unsafe.Pointer) error {
	if rc := C.notcurses_cursor_disable((*C.struct_notcurses)(nc)); rc != 0 {
		return fmt.Errorf("notcurses_cursor_disable: rc %d", int(rc))
	}
	return nil
}

// MouseEnable asks the terminal for button press and release events.
func MouseEnable(nc unsafe.Pointer) error {
	if rc := C.notcurses_mouse_enable((*C.struct_notcurses)(nc)); rc != 0 {
		return fmt.Errorf("notcurses_mouse_enable: rc %d", int(rc))
	}
	return nil
}

// MouseDisable stops mouse event delivery.
func MouseDisable(nc unsafe.Pointer) error {
	if rc := C.notcurses_mouse_disable((*C.struct_notcurses)(nc)); rc != 0 {
		return fmt.Errorf("notcurses_mouse_disable: rc %d", int(rc))
	}
	return nil
}

// InputReadyFd returns a descriptor suitable for poll/select on input.
func InputReadyFd(nc unsafe.Pointer) int {
	return int(C.notcurses_inputready_fd((*C.struct_notcurses)(nc)))
}

// Getc reads one input event. Blocking mode waits for an event or signal;
// otherwise a zero-timeout poll is performed. A zero ID with nil error means
// no event was ready. ID (char32_t)-1 from the C side becomes an error.
func Getc(nc unsafe.Pointer, blocking bool) (Input, error) {
	var ni C.ncinput
	b := C.int(0)
	if blocking {
		b = 1
	}
	id := C.nc_getc_shim((*C.struct_notcurses)(nc), b, &ni)
	if id == ^C.uint32_t(0) {
		return Input{}, errors.New("notcurses_getc failed")
	}
	return Input{
		ID:     uint32(id),
		Y:      int(ni.y),
		X:      int(ni.x),
		Alt:    bool(ni.alt),
		Shift:  bool(ni.shift),
		Ctrl:   bool(ni.ctrl),
		Seqnum: uint64(ni.seqnum),
	}, nil
}

// Version reports the loaded notcurses version string.
func Version() string {
	return C.GoString(C.notcurses_version())
}

// VersionComponents reports the loaded notcurses version as integers.
func VersionComponents() (major, minor, patch, tweak int) {
	var ma, mi, pa, tw C.int
	C.notcurses_version_components(&ma, &mi, &pa, &tw)
	return int(ma), int(mi), int(pa), int(tw)
}

func statsFromC(cs *C.ncstats) Stats {
	return Stats{
		Renders:          uint64(cs.renders),
		Writeouts:        uint64(cs.writeouts),
		FailedRenders:    uint64(cs.failed_renders),
		FailedWriteouts:  uint64(cs.failed_writeouts),
		RenderBytes:      uint64(cs.render_bytes),
		RenderMaxBytes:   int64(cs.render_max_bytes),
		RenderMinBytes:   int64(cs.render_min_bytes),
		RenderNS:         uint64(cs.render_ns),
		RenderMaxNS:      int64(cs.render_max_ns),
		RenderMinNS:      int64(cs.render_min_ns),
		RasterNS:         uint64(cs.raster_ns),
		RasterMaxNS:      int64(cs.raster_max_ns),
		RasterMinNS:      int64(cs.raster_min_ns),
		WriteoutNS:       uint64(cs.writeout_ns),
		WriteoutMaxNS:    int64(cs.writeout_max_ns),
		WriteoutMinNS:    int64(cs.writeout_min_ns),
		CellElisions:     uint64(cs.cellelisions),
		CellEmissions:    uint64(cs.cellemissions),
		FgElisions:       uint64(cs.fgelisions),
		FgEmissions:      uint64(cs.fgemissions),
		BgElisions:       uint64(cs.bgelisions),
		BgEmissions:      uint64(cs.bgemissions),
		DefaultElisions:  uint64(cs.defaultelisions),
		DefaultEmissions: uint64(cs.defaultemissions),
		Refreshes:        uint64(cs.refreshes),
		FbBytes:          uint64(cs.fbbytes),
		Planes:           uint32(cs.planes),
	}
}

// GetStats snapshots the accumulated statistics.
func GetStats(nc unsafe.Pointer) Stats {
	var cs C.ncstats
	C.notcurses_stats((*C.struct_notcurses)(nc), &cs)
	return statsFromC(&cs)
}

// StatsReset snapshots and then zeroes the accumulated statistics.
func StatsReset(nc unsafe.Pointer) Stats {
	var cs C.ncstats
	C.notcurses_stats_reset((*C.struct_notcurses)(nc), &cs)
	return statsFromC(&cs)
}

// LexBlitter parses a blitter name as notcurses itself would.
func LexBlitter(name string) (int, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	var bl C.ncblitter_e
	if rc := C.notcurses_lex_blitter(cname, &bl); rc != 0 {
		return 0, fmt.Errorf("notcurses_lex_blitter(%q) failed", name)
	}
	return int(bl), nil
}

// StrBlitter names a blitter as notcurses itself would.
func StrBlitter(blitter int) string {
	return C.GoString(C.notcurses_str_blitter(C.ncblitter_e(blitter)))
}

// LexScaleMode parses a scaling mode name.
func LexScaleMode(name string) (int, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	var sc C.ncscale_e
	if rc := C.notcurses_lex_scalemode(cname, &sc); rc != 0 {
		return 0, fmt.Errorf("notcurses_lex_scalemode(%q) failed", name)
	}
	return int(sc), nil
}

// StrScaleMode names a scaling mode.
func StrScaleMode(scale int) string {
	return C.GoString(C.notcurses_str_scalemode(C.ncscale_e(scale)))
}

// LexMargins parses a margin description ("2" or "2,3,4,5") into the four
// margin fields.
func LexMargins(op string) (t, r, b, l uint32, err error) {
	cop := C.CString(op)
	defer C.free(unsafe.Pointer(cop))
	var mt, mr, mb, ml C.uint
	if rc := C.nc_lex_margins_shim(cop, &mt, &mr, &mb, &ml); rc != 0 {
		return 0, 0, 0, 0, fmt.Errorf("notcurses_lex_margins(%q) failed", op)
	}
	return uint32(mt), uint32(mr), uint32(mb), uint32(ml), nil
}

// UCS32ToUTF8 converts UCS-32 codepoints to UTF-8 using the library's own
// converter.
func UCS32ToUTF8(ucs []rune) (string, error) {
	if len(ucs) == 0 {
		return "", nil
	}
	src := make([]C.uint32_t, len(ucs))
	for i, r := range ucs {
		src[i] = C.uint32_t(r)
	}
	// Worst case is four UTF-8 bytes per codepoint plus the terminator.
	buflen := len(ucs)*4 + 1
	buf := (*C.uchar)(C.malloc(C.size_t(buflen)))
	if buf == nil {
		return "", errors.New("malloc failed")
	}
	defer C.free(unsafe.Pointer(buf))
	n := C.notcurses_ucs32_to_utf8((*C.char32_t)(unsafe.Pointer(&src[0])), C.uint(len(src)), buf, C.size_t(buflen))
	if n < 0 {
		return "", errors.New("notcurses_ucs32_to_utf8 failed")
	}
	return C.GoStringN((*C.char)(unsafe.Pointer(buf)), n), nil
}
