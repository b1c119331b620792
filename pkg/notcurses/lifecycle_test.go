package notcurses

import (
	"errors"
	"testing"
	"unsafe"
)

func TestNilContextClose(t *testing.T) {
	var n *Notcurses
	if err := n.Close(); err != nil {
		t.Fatalf("nil Close: %v", err)
	}
}

func TestZeroContextRefusesUse(t *testing.T) {
	// A context that was never initialized must fail closed, not reach the
	// native library with a nil handle.
	n := &Notcurses{}

	if err := n.Render(); !errors.Is(err, ErrClosed) {
		t.Errorf("Render on zero context: %v, want ErrClosed", err)
	}
	if _, err := n.StdPlane(); !errors.Is(err, ErrClosed) {
		t.Errorf("StdPlane on zero context: %v, want ErrClosed", err)
	}
	if _, err := n.GetcNblock(); !errors.Is(err, ErrClosed) {
		t.Errorf("GetcNblock on zero context: %v, want ErrClosed", err)
	}
	if _, err := n.Stats(); !errors.Is(err, ErrClosed) {
		t.Errorf("Stats on zero context: %v, want ErrClosed", err)
	}
	if _, err := n.RenderToBuffer(); !errors.Is(err, ErrClosed) {
		t.Errorf("RenderToBuffer on zero context: %v, want ErrClosed", err)
	}
	if n.CanTrueColor() {
		t.Error("capabilities on zero context must read false")
	}
}

func TestNilPlaneDestroy(t *testing.T) {
	var p *Plane
	if err := p.Destroy(); err != nil {
		t.Fatalf("nil Destroy: %v", err)
	}
}

func TestZeroPlaneRefusesUse(t *testing.T) {
	p := &Plane{}

	if err := p.Destroy(); !errors.Is(err, ErrPlaneDestroyed) {
		t.Errorf("Destroy on zero plane: %v, want ErrPlaneDestroyed", err)
	}
	if _, err := p.PutStr("x"); !errors.Is(err, ErrPlaneDestroyed) {
		t.Errorf("PutStr on zero plane: %v, want ErrPlaneDestroyed", err)
	}
	if rows, cols := p.Dim(); rows != 0 || cols != 0 {
		t.Errorf("Dim on zero plane = %d, %d", rows, cols)
	}
}

func TestDestroyAfterOwnerClose(t *testing.T) {
	// Once the context is closed the native library has already freed every
	// plane; a surviving wrapper must refuse to forward its stale handle.
	var cell int
	p := &Plane{p: unsafe.Pointer(&cell), owner: &Notcurses{closed: true}}

	if err := p.Destroy(); !errors.Is(err, ErrClosed) {
		t.Fatalf("Destroy with closed context: %v, want ErrClosed", err)
	}
	if _, err := p.PutStr("x"); !errors.Is(err, ErrClosed) {
		t.Fatalf("PutStr with closed context: %v, want ErrClosed", err)
	}
}

func TestStdPlaneRefusesDestroy(t *testing.T) {
	p := &Plane{std: true}
	if err := p.Destroy(); !errors.Is(err, ErrStdPlane) {
		t.Errorf("std plane Destroy: %v, want ErrStdPlane", err)
	}
}
