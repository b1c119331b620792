package notcurses

import "strings"

// Style is a bitmask of cell attributes, mirroring the NCSTYLE_* constants.
type Style uint32

const (
	StyleNone      Style = 0
	StyleStandout  Style = 0x0080
	StyleUnderline Style = 0x0100
	StyleReverse   Style = 0x0200
	StyleBlink     Style = 0x0400
	StyleDim       Style = 0x0800
	StyleBold      Style = 0x1000
	StyleInvis     Style = 0x2000
	StyleProtect   Style = 0x4000
	StyleItalic    Style = 0x8000
	StyleStruck    Style = 0x10000

	StyleMask Style = 0xffff
)

var styleNames = []struct {
	bit  Style
	name string
}{
	{StyleStandout, "standout"},
	{StyleUnderline, "underline"},
	{StyleReverse, "reverse"},
	{StyleBlink, "blink"},
	{StyleDim, "dim"},
	{StyleBold, "bold"},
	{StyleInvis, "invis"},
	{StyleProtect, "protect"},
	{StyleItalic, "italic"},
	{StyleStruck, "struck"},
}

func (s Style) String() string {
	if s == StyleNone {
		return "none"
	}
	var parts []string
	for _, sn := range styleNames {
		if s&sn.bit != 0 {
			parts = append(parts, sn.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// Has reports whether every bit of other is set in s.
func (s Style) Has(other Style) bool {
	return s&other == other
}
