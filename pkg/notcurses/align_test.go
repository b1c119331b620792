package notcurses

import "testing"

func TestAlignOffset(t *testing.T) {
	tests := []struct {
		name  string
		align Align
		avail int
		cols  int
		want  int
	}{
		{"left is always zero", AlignLeft, 80, 10, 0},
		{"left ignores overflow", AlignLeft, 10, 80, 0},
		{"center splits the slack", AlignCenter, 80, 10, 35},
		{"center rounds down", AlignCenter, 81, 10, 35},
		{"center exact fit", AlignCenter, 10, 10, 0},
		{"right pins to the edge", AlignRight, 80, 10, 70},
		{"right exact fit", AlignRight, 10, 10, 0},
		{"overflow is zero", AlignCenter, 10, 80, 0},
		{"overflow right is zero", AlignRight, 10, 80, 0},
		{"unaligned falls through to right", AlignUnaligned, 80, 10, 70},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.align.Offset(tt.avail, tt.cols); got != tt.want {
				t.Errorf("%v.Offset(%d, %d) = %d, want %d",
					tt.align, tt.avail, tt.cols, got, tt.want)
			}
		})
	}
}

func TestAlignString(t *testing.T) {
	for a, want := range map[Align]string{
		AlignUnaligned: "unaligned",
		AlignLeft:      "left",
		AlignCenter:    "center",
		AlignRight:     "right",
		Align(99):      "invalid",
	} {
		if got := a.String(); got != want {
			t.Errorf("Align(%d).String() = %q, want %q", a, got, want)
		}
	}
}

func TestVerticalAliases(t *testing.T) {
	if AlignTop != AlignLeft || AlignBottom != AlignRight {
		t.Error("vertical alignment aliases drifted from their horizontal values")
	}
}
