//go:build !cgo || windows

package bindings

import (
	"os"
	"unsafe"
)

// Stub implementations for non-cgo builds or Windows. These let the module
// compile everywhere; every operation reports ErrNotBuilt (or a harmless
// zero value where the native call cannot fail).

func Init(InitOptions) (unsafe.Pointer, error) { return nil, ErrNotBuilt }
func Stop(unsafe.Pointer) error { return ErrNotBuilt }

func Render(unsafe.Pointer) error { return ErrNotBuilt }
func Refresh(unsafe.Pointer) (int, int, error) { return 0, 0, ErrNotBuilt }
func RenderToFile(unsafe.Pointer, *os.File) error { return ErrNotBuilt }
func RenderToBuffer(unsafe.Pointer) ([]byte, error) { return nil, ErrNotBuilt }
func Debug(unsafe.Pointer, *os.File) error { return ErrNotBuilt }

func StdPlane(unsafe.Pointer) unsafe.Pointer { return nil }
func Top(unsafe.Pointer) unsafe.Pointer { return nil }
func Bottom(unsafe.Pointer) unsafe.Pointer { return nil }
func DropPlanes(unsafe.Pointer) {}

func AtYX(unsafe.Pointer, int, int) (string, uint16, uint64, error) {
	return "", 0, 0, ErrNotBuilt
}

func CanTrueColor(unsafe.Pointer) bool { return false }
func CanUTF8(unsafe.Pointer) bool { return false }
func CanFade(unsafe.Pointer) bool { return false }
func CanChangeColor(unsafe.Pointer) bool { return false }
func CanOpenImages(unsafe.Pointer) bool { return false }
func CanOpenVideos(unsafe.Pointer) bool { return false }
func CanSixel(unsafe.Pointer) bool { return false }

func PaletteSize(unsafe.Pointer) uint32 { return 0 }
func SupportedStyles(unsafe.Pointer) uint32 { return 0 }

func CursorEnable(unsafe.Pointer, int, int) error { return ErrNotBuilt }
func CursorDisable(unsafe.Pointer) error { return ErrNotBuilt }
func MouseEnable(unsafe.Pointer) error { return ErrNotBuilt }
func MouseDisable(unsafe.Pointer) error { return ErrNotBuilt }

func InputReadyFd(unsafe.Pointer) int { return -1 }
func Getc(unsafe.Pointer, bool) (Input, error) { return Input{}, ErrNotBuilt }

func Version() string { return "" }
func VersionComponents() (int, int, int, int) { return 0, 0, 0, 0 }
func GetStats(unsafe.Pointer) Stats { return Stats{} }
func StatsReset(unsafe.Pointer) Stats { return Stats{} }

func LexBlitter(string) (int, error) { return 0, ErrNotBuilt }
func StrBlitter(int) string { return "" }
func LexScaleMode(string) (int, error) { return 0, ErrNotBuilt }
func StrScaleMode(int) string { return "" }

func LexMargins(string) (uint32, uint32, uint32, uint32, error) {
	return 0, 0, 0, 0, ErrNotBuilt
}

func UCS32ToUTF8([]rune) (string, error) { return "", ErrNotBuilt }

func PlaneCreate(unsafe.Pointer, int, int, int, int, string, uint64) (unsafe.Pointer, error) {
	return nil, ErrNotBuilt
}
func PlaneDestroy(unsafe.Pointer) error { return ErrNotBuilt }

func PlaneDim(unsafe.Pointer) (int, int) { return 0, 0 }
func PlaneYX(unsafe.Pointer) (int, int) { return 0, 0 }
func PlaneMoveYX(unsafe.Pointer, int, int) error { return ErrNotBuilt }
func PlaneCursorMoveYX(unsafe.Pointer, int, int) error { return ErrNotBuilt }
func PlaneCursorYX(unsafe.Pointer) (int, int) { return 0, 0 }

func PlanePutStrYX(unsafe.Pointer, int, int, string) (int, error) { return 0, ErrNotBuilt }
func PlanePutEGCYX(unsafe.Pointer, int, int, string) (int, error) { return 0, ErrNotBuilt }

func PlaneErase(unsafe.Pointer) {}
func PlaneSetScrolling(unsafe.Pointer, bool) bool { return false }

func PlaneResize(unsafe.Pointer, int, int, int, int, int, int, int, int) error {
	return ErrNotBuilt
}
func PlaneResizeSimple(unsafe.Pointer, int, int) error { return ErrNotBuilt }

func PlaneReparent(unsafe.Pointer, unsafe.Pointer) (unsafe.Pointer, error) {
	return nil, ErrNotBuilt
}

func PlaneSetFgRGB(unsafe.Pointer, uint32) error { return ErrNotBuilt }
func PlaneSetBgRGB(unsafe.Pointer, uint32) error { return ErrNotBuilt }
func PlaneSetFgDefault(unsafe.Pointer) {}
func PlaneSetBgDefault(unsafe.Pointer) {}

func PlaneSetStyles(unsafe.Pointer, uint32) {}
func PlaneOnStyles(unsafe.Pointer, uint32) {}
func PlaneOffStyles(unsafe.Pointer, uint32) {}

func PlaneChannels(unsafe.Pointer) uint64 { return 0 }

func PlaneSetBase(unsafe.Pointer, string, uint32, uint64) error { return ErrNotBuilt }

func PlaneAtYX(unsafe.Pointer, int, int) (string, uint16, uint64, error) {
	return "", 0, 0, ErrNotBuilt
}

func VisualFromFile(string) (unsafe.Pointer, error) { return nil, ErrNotBuilt }

func VisualFromRGBA([]byte, int, int, int) (unsafe.Pointer, error) {
	return nil, ErrNotBuilt
}

func VisualDestroy(unsafe.Pointer) {}

func VisualRender(unsafe.Pointer, unsafe.Pointer, VisualOptions) (unsafe.Pointer, error) {
	return nil, ErrNotBuilt
}

func VisualResize(unsafe.Pointer, int, int) error { return ErrNotBuilt }
func VisualRotate(unsafe.Pointer, float64) error { return ErrNotBuilt }
