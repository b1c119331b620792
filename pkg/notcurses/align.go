package notcurses

// Align places output within a containing width, mirroring ncalign_e.
type Align int32

const (
	AlignUnaligned Align = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// AlignTop and AlignBottom are the vertical readings of the same values.
const (
	AlignTop    = AlignLeft
	AlignBottom = AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignUnaligned:
		return "unaligned"
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "invalid"
	}
}

// Offset returns the offset into avail columns at which cols ought be output
// given the requirements of a. This is the C static inline notcurses_align,
// computed host-side: left always yields 0, as does output wider than the
// container; anything that is not left or center aligns right.
func (a Align) Offset(avail, cols int) int {
	if a == AlignLeft {
		return 0
	}
	if cols > avail {
		return 0
	}
	if a == AlignCenter {
		return (avail - cols) / 2
	}
	return avail - cols
}
