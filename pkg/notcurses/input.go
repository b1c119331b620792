package notcurses

import (
	"runtime"

	"github.com/bdchik/notcurses-go/internal/bindings"
)

// Synthesized input events occupy a block of the supplementary private use
// area, mirroring the NCKEY_* constants.
const keyBase rune = 0x100000

const (
	KeyInvalid   rune = keyBase + 0
	KeyResize    rune = keyBase + 1 // terminal was resized
	KeyUp        rune = keyBase + 2
	KeyRight     rune = keyBase + 3
	KeyDown      rune = keyBase + 4
	KeyLeft      rune = keyBase + 5
	KeyIns       rune = keyBase + 6
	KeyDel       rune = keyBase + 7
	KeyBackspace rune = keyBase + 8
	KeyPgDown    rune = keyBase + 9
	KeyPgUp      rune = keyBase + 10
	KeyHome      rune = keyBase + 11
	KeyEnd       rune = keyBase + 12
	KeyF00       rune = keyBase + 13
	KeyF01       rune = keyBase + 14
	KeyF02       rune = keyBase + 15
	KeyF03       rune = keyBase + 16
	KeyF04       rune = keyBase + 17
	KeyF05       rune = keyBase + 18
	KeyF06       rune = keyBase + 19
	KeyF07       rune = keyBase + 20
	KeyF08       rune = keyBase + 21
	KeyF09       rune = keyBase + 22
	KeyF10       rune = keyBase + 23
	KeyF11       rune = keyBase + 24
	KeyF12       rune = keyBase + 25
	// F13 through F60 follow contiguously.

	KeyEnter   rune = keyBase + 121
	KeyCLS     rune = keyBase + 122
	KeyDLeft   rune = keyBase + 123
	KeyDRight  rune = keyBase + 124
	KeyULeft   rune = keyBase + 125
	KeyURight  rune = keyBase + 126
	KeyCenter  rune = keyBase + 127
	KeyBegin   rune = keyBase + 128
	KeyCancel  rune = keyBase + 129
	KeyClose   rune = keyBase + 130
	KeyCommand rune = keyBase + 131
	KeyCopy    rune = keyBase + 132
	KeyExit    rune = keyBase + 133
	KeyPrint   rune = keyBase + 134
	KeyRefresh rune = keyBase + 135

	KeyButton1  rune = keyBase + 201
	KeyButton2  rune = keyBase + 202
	KeyButton3  rune = keyBase + 203
	KeyButton4  rune = keyBase + 204 // scrollwheel up
	KeyButton5  rune = keyBase + 205 // scrollwheel down
	KeyButton6  rune = keyBase + 206
	KeyButton7  rune = keyBase + 207
	KeyButton8  rune = keyBase + 208
	KeyButton9  rune = keyBase + 209
	KeyButton10 rune = keyBase + 210
	KeyButton11 rune = keyBase + 211
	KeyRelease  rune = keyBase + 212

	KeyScrollUp   = KeyButton4
	KeyScrollDown = KeyButton5
)

// Input describes one input event, mirroring ncinput. ID is the Unicode
// codepoint, or one of the Key values for synthesized events. Y and X carry
// the cell coordinates of mouse events.
type Input struct {
	ID     rune
	Y, X   int
	Alt    bool
	Shift  bool
	Ctrl   bool
	Seqnum uint64
}

// IsKey reports whether the event is a synthesized key rather than a
// Unicode codepoint.
func (i Input) IsKey() bool {
	return i.ID >= keyBase && i.ID <= KeyRelease
}

// IsMouse reports whether the event is a mouse button press or release.
func (i Input) IsMouse() bool {
	return i.ID >= KeyButton1 && i.ID <= KeyRelease
}

// IsResize reports whether the event is a terminal resize.
func (i Input) IsResize() bool {
	return i.ID == KeyResize
}

func inputFromBindings(bi bindings.Input) Input {
	return Input{
		ID:     rune(bi.ID),
		Y:      bi.Y,
		X:      bi.X,
		Alt:    bi.Alt,
		Shift:  bi.Shift,
		Ctrl:   bi.Ctrl,
		Seqnum: bi.Seqnum,
	}
}

// GetcNblock polls for an input event without blocking. A zero Input ID
// with nil error means no event was ready.
func (n *Notcurses) GetcNblock() (Input, error) {
	return n.getc(false)
}

// GetcBlocking waits until an event is processed or a signal is received.
func (n *Notcurses) GetcBlocking() (Input, error) {
	return n.getc(true)
}

func (n *Notcurses) getc(blocking bool) (Input, error) {
	if n == nil || n.closed || n.nc == nil {
		return Input{}, ErrClosed
	}
	bi, err := bindings.Getc(n.nc, blocking)
	runtime.KeepAlive(n)
	if err != nil {
		return Input{}, remapError(err)
	}
	return inputFromBindings(bi), nil
}

// InputReadyFd returns a file descriptor suitable for poll/select ahead of
// a non-blocking Getc. It is only ever readable.
func (n *Notcurses) InputReadyFd() (int, error) {
	if n == nil || n.closed || n.nc == nil {
		return -1, ErrClosed
	}
	fd := bindings.InputReadyFd(n.nc)
	runtime.KeepAlive(n)
	return fd, nil
}
