package notcurses

import "testing"

func TestStyleString(t *testing.T) {
	tests := []struct {
		s    Style
		want string
	}{
		{StyleNone, "none"},
		{StyleBold, "bold"},
		{StyleBold | StyleItalic, "bold|italic"},
		{StyleUnderline | StyleStruck, "underline|struck"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("Style(%#x).String() = %q, want %q", uint32(tt.s), got, tt.want)
		}
	}
}

func TestStyleHas(t *testing.T) {
	s := StyleBold | StyleItalic
	if !s.Has(StyleBold) || !s.Has(StyleItalic) || !s.Has(StyleBold|StyleItalic) {
		t.Error("Has must accept subsets")
	}
	if s.Has(StyleBlink) || s.Has(StyleBold|StyleBlink) {
		t.Error("Has must reject bits that are not set")
	}
}
