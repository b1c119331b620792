//go:build !cgo || windows

package notcurses

import (
	"errors"
	"testing"
)

// Without cgo the whole surface must stay importable and fail with
// ErrNotBuilt instead of panicking.

func TestNewReportsNotBuilt(t *testing.T) {
	nc, err := New(nil)
	if nc != nil {
		t.Fatal("stub New returned a context")
	}
	if !errors.Is(err, ErrNotBuilt) {
		t.Fatalf("stub New: %v, want ErrNotBuilt", err)
	}
}

func TestLexersReportNotBuilt(t *testing.T) {
	if _, err := LexBlitter("braille"); !errors.Is(err, ErrNotBuilt) {
		t.Errorf("LexBlitter: %v, want ErrNotBuilt", err)
	}
	if _, err := LexScale("stretch"); !errors.Is(err, ErrNotBuilt) {
		t.Errorf("LexScale: %v, want ErrNotBuilt", err)
	}
	var o Options
	if err := o.SetMargins("2,3,4,5"); !errors.Is(err, ErrNotBuilt) {
		t.Errorf("SetMargins: %v, want ErrNotBuilt", err)
	}
	if _, err := UCS32ToUTF8([]rune("一")); !errors.Is(err, ErrNotBuilt) {
		t.Errorf("UCS32ToUTF8: %v, want ErrNotBuilt", err)
	}
}

func TestLibraryVersionEmptyWhenNotBuilt(t *testing.T) {
	if v := LibraryVersion(); v != "" {
		t.Errorf("stub LibraryVersion() = %q", v)
	}
}
