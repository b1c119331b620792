//go:build cgo && !windows

package notcurses_test

import (
	"errors"
	"os"
	"testing"

	"golang.org/x/term"

	"github.com/bdchik/notcurses-go/pkg/notcurses"
)

// quietOptions keeps the native tests from fighting the test runner for
// the screen: stay out of the alternate screen, print nothing.
func quietOptions() *notcurses.Options {
	return &notcurses.Options{
		LogLevel: notcurses.LogSilent,
		Flags: notcurses.OptionSuppressBanners |
			notcurses.OptionNoAlternateScreen,
	}
}

func newTerminal(t *testing.T) *notcurses.Notcurses {
	t.Helper()
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		t.Skip("stdout is not a terminal")
	}
	nc, err := notcurses.New(quietOptions())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return nc
}

// The core lifetime property of the binding: repeated init/stop cycles
// neither leak nor double-free the foreign context.
func TestContextRoundTrip(t *testing.T) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		t.Skip("stdout is not a terminal")
	}
	for i := 0; i < 5; i++ {
		nc, err := notcurses.New(quietOptions())
		if err != nil {
			t.Fatalf("cycle %d New: %v", i, err)
		}
		if err := nc.Close(); err != nil {
			t.Fatalf("cycle %d Close: %v", i, err)
		}
		if err := nc.Close(); !errors.Is(err, notcurses.ErrClosed) {
			t.Fatalf("cycle %d second Close: %v, want ErrClosed", i, err)
		}
	}
}

func TestClosedContextRefusesUse(t *testing.T) {
	nc := newTerminal(t)
	if err := nc.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if err := nc.Render(); !errors.Is(err, notcurses.ErrClosed) {
		t.Errorf("Render after Close: %v, want ErrClosed", err)
	}
	if _, err := nc.StdPlane(); !errors.Is(err, notcurses.ErrClosed) {
		t.Errorf("StdPlane after Close: %v, want ErrClosed", err)
	}
}

func TestStdPlaneDims(t *testing.T) {
	nc := newTerminal(t)
	defer func() { _ = nc.Close() }()

	std, rows, cols, err := nc.StdDimYX()
	if err != nil {
		t.Fatalf("StdDimYX: %v", err)
	}
	if rows <= 0 || cols <= 0 {
		t.Fatalf("implausible terminal %dx%d", rows, cols)
	}

	trows, tcols, err := nc.TermDimYX()
	if err != nil {
		t.Fatalf("TermDimYX: %v", err)
	}
	if trows != rows || tcols != cols {
		t.Fatalf("TermDimYX %dx%d != StdDimYX %dx%d", trows, tcols, rows, cols)
	}

	if err := std.Destroy(); !errors.Is(err, notcurses.ErrStdPlane) {
		t.Fatalf("std Destroy: %v, want ErrStdPlane", err)
	}
}

// Plane create/destroy is the other constructor/destructor pair; cycle it
// and check double-destroy stays an error rather than a crash.
func TestPlaneRoundTrip(t *testing.T) {
	nc := newTerminal(t)
	defer func() { _ = nc.Close() }()

	std, err := nc.StdPlane()
	if err != nil {
		t.Fatalf("StdPlane: %v", err)
	}

	for i := 0; i < 10; i++ {
		p, err := std.CreatePlane(notcurses.PlaneOptions{
			Y: 1, X: 1, Rows: 2, Cols: 10, Name: "cycle",
		})
		if err != nil {
			t.Fatalf("cycle %d CreatePlane: %v", i, err)
		}
		if _, err := p.PutStrYX(0, 0, "round trip"); err != nil {
			t.Fatalf("cycle %d PutStrYX: %v", i, err)
		}
		if err := p.Destroy(); err != nil {
			t.Fatalf("cycle %d Destroy: %v", i, err)
		}
		if err := p.Destroy(); !errors.Is(err, notcurses.ErrPlaneDestroyed) {
			t.Fatalf("cycle %d second Destroy: %v, want ErrPlaneDestroyed", i, err)
		}
	}
}

// Wrappers still alive when their context closes must be invalidated, not
// left pointing at freed planes.
func TestCloseInvalidatesPlanes(t *testing.T) {
	nc := newTerminal(t)

	std, err := nc.StdPlane()
	if err != nil {
		t.Fatalf("StdPlane: %v", err)
	}
	p, err := std.CreatePlane(notcurses.PlaneOptions{Rows: 2, Cols: 10})
	if err != nil {
		t.Fatalf("CreatePlane: %v", err)
	}

	if err := nc.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := p.Destroy(); !errors.Is(err, notcurses.ErrPlaneDestroyed) {
		t.Fatalf("Destroy after Close: %v, want ErrPlaneDestroyed", err)
	}
	if _, err := p.PutStr("x"); !errors.Is(err, notcurses.ErrPlaneDestroyed) {
		t.Fatalf("PutStr after Close: %v, want ErrPlaneDestroyed", err)
	}
}

func TestDropPlanesInvalidatesWrappers(t *testing.T) {
	nc := newTerminal(t)
	defer func() { _ = nc.Close() }()

	std, err := nc.StdPlane()
	if err != nil {
		t.Fatalf("StdPlane: %v", err)
	}
	p, err := std.CreatePlane(notcurses.PlaneOptions{Rows: 2, Cols: 10})
	if err != nil {
		t.Fatalf("CreatePlane: %v", err)
	}

	if err := nc.DropPlanes(); err != nil {
		t.Fatalf("DropPlanes: %v", err)
	}
	if err := p.Destroy(); !errors.Is(err, notcurses.ErrPlaneDestroyed) {
		t.Fatalf("Destroy after DropPlanes: %v, want ErrPlaneDestroyed", err)
	}

	// The standard plane survives a drop.
	if _, err := std.PutStrYX(0, 0, "still here"); err != nil {
		t.Fatalf("std PutStrYX after DropPlanes: %v", err)
	}
}

func TestPlaneOutputReadback(t *testing.T) {
	nc := newTerminal(t)
	defer func() { _ = nc.Close() }()

	std, err := nc.StdPlane()
	if err != nil {
		t.Fatalf("StdPlane: %v", err)
	}

	if _, err := std.PutStrYX(0, 0, "x"); err != nil {
		t.Fatalf("PutStrYX: %v", err)
	}
	egc, _, _, err := std.AtYX(0, 0)
	if err != nil {
		t.Fatalf("AtYX: %v", err)
	}
	if egc != "x" {
		t.Fatalf("AtYX = %q, want %q", egc, "x")
	}
}

func TestPutStrAligned(t *testing.T) {
	nc := newTerminal(t)
	defer func() { _ = nc.Close() }()

	std, _, cols, err := nc.StdDimYX()
	if err != nil {
		t.Fatalf("StdDimYX: %v", err)
	}
	const msg = "edge"
	if _, err := std.PutStrAligned(0, notcurses.AlignRight, msg); err != nil {
		t.Fatalf("PutStrAligned: %v", err)
	}
	egc, _, _, err := std.AtYX(0, cols-len(msg))
	if err != nil {
		t.Fatalf("AtYX: %v", err)
	}
	if egc != "e" {
		t.Fatalf("right-aligned first glyph = %q, want %q", egc, "e")
	}
}

func TestRenderToBuffer(t *testing.T) {
	nc := newTerminal(t)
	defer func() { _ = nc.Close() }()

	std, err := nc.StdPlane()
	if err != nil {
		t.Fatalf("StdPlane: %v", err)
	}
	if _, err := std.PutStrYX(0, 0, "buffered"); err != nil {
		t.Fatalf("PutStrYX: %v", err)
	}

	raster, err := nc.RenderToBuffer()
	if err != nil {
		t.Fatalf("RenderToBuffer: %v", err)
	}
	if len(raster) == 0 {
		t.Fatal("empty raster for a dirty frame")
	}
}

func TestLexersRoundTrip(t *testing.T) {
	for _, name := range []string{"braille", "pixel", "2x2"} {
		b, err := notcurses.LexBlitter(name)
		if err != nil {
			t.Fatalf("LexBlitter(%q): %v", name, err)
		}
		if got := notcurses.StrBlitter(b); got != name {
			t.Errorf("StrBlitter(LexBlitter(%q)) = %q", name, got)
		}
	}
	for _, name := range []string{"none", "scale", "stretch"} {
		s, err := notcurses.LexScale(name)
		if err != nil {
			t.Fatalf("LexScale(%q): %v", name, err)
		}
		if got := notcurses.StrScale(s); got != name {
			t.Errorf("StrScale(LexScale(%q)) = %q", name, got)
		}
	}
}

func TestUCS32ToUTF8(t *testing.T) {
	src := []rune("一二三 abc")
	out, err := notcurses.UCS32ToUTF8(src)
	if err != nil {
		t.Fatalf("UCS32ToUTF8: %v", err)
	}
	if out != string(src) {
		t.Fatalf("UCS32ToUTF8 = %q, want %q", out, string(src))
	}
}

func TestStatsAccumulate(t *testing.T) {
	nc := newTerminal(t)
	defer func() { _ = nc.Close() }()

	if err := nc.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}
	s, err := nc.Stats()
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if s.Renders == 0 {
		t.Error("render not counted")
	}

	if _, err := nc.StatsReset(); err != nil {
		t.Fatalf("StatsReset: %v", err)
	}
	s, err = nc.Stats()
	if err != nil {
		t.Fatalf("Stats after reset: %v", err)
	}
	if s.Renders != 0 {
		t.Errorf("Renders after reset = %d", s.Renders)
	}
}
