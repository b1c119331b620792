package notcurses

// Channel encodes one of the two 32-bit halves of a cell's color pair: an
// RGB value or palette index plus alpha and default-color bits. The layout
// and masks mirror the C headers; all of this math is done host-side, as
// the corresponding C routines are static inline.
type Channel uint32

// Channels packs the foreground channel in the high 32 bits and the
// background channel in the low 32 bits.
type Channels uint64

// Alpha blending modes for a channel.
type Alpha uint32

const (
	AlphaOpaque       Alpha = 0x00000000
	AlphaBlend        Alpha = 0x10000000
	AlphaTransparent  Alpha = 0x20000000
	AlphaHighContrast Alpha = 0x30000000
)

const (
	channelRGBMask     Channel = 0x00ffffff
	channelDefaultMask Channel = 0x40000000 // set means NOT default
	channelAlphaMask   Channel = 0x30000000
	channelPaletteMask Channel = 0x08000000
)

// RGB8 splits the channel into its color components.
func (c Channel) RGB8() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// SetRGB8 returns the channel with its color set and the default-color bit
// cleared (the channel now specifies a color).
func (c Channel) SetRGB8(r, g, b uint8) Channel {
	rgb := Channel(r)<<16 | Channel(g)<<8 | Channel(b)
	return (c &^ channelRGBMask) | rgb | channelDefaultMask
}

// DefaultP reports whether the channel uses the terminal's default color.
func (c Channel) DefaultP() bool {
	return c&channelDefaultMask == 0
}

// SetDefault returns the channel marked as using the default color.
func (c Channel) SetDefault() Channel {
	return c &^ channelDefaultMask
}

// PaletteP reports whether the channel is palette-indexed.
func (c Channel) PaletteP() bool {
	return c&channelPaletteMask != 0
}

// Alpha extracts the channel's alpha mode.
func (c Channel) Alpha() Alpha {
	return Alpha(c & channelAlphaMask)
}

// SetAlpha returns the channel with its alpha mode replaced. Setting any
// mode other than opaque on a default-color channel is the caller's
// mistake in C; here it simply also marks the channel non-default, which is
// what the library ends up doing.
func (c Channel) SetAlpha(a Alpha) Channel {
	out := (c &^ channelAlphaMask) | Channel(a)
	if a != AlphaOpaque {
		out |= channelDefaultMask
	}
	return out
}

// Fg extracts the foreground channel.
func (c Channels) Fg() Channel {
	return Channel(c >> 32)
}

// Bg extracts the background channel.
func (c Channels) Bg() Channel {
	return Channel(c & 0xffffffff)
}

// SetFg returns the pair with the foreground channel replaced.
func (c Channels) SetFg(fg Channel) Channels {
	return Channels(fg)<<32 | Channels(c.Bg())
}

// SetBg returns the pair with the background channel replaced.
func (c Channels) SetBg(bg Channel) Channels {
	return Channels(c.Fg())<<32 | Channels(bg)
}

// SetFgRGB8 sets the foreground color of the pair.
func (c Channels) SetFgRGB8(r, g, b uint8) Channels {
	return c.SetFg(c.Fg().SetRGB8(r, g, b))
}

// SetBgRGB8 sets the background color of the pair.
func (c Channels) SetBgRGB8(r, g, b uint8) Channels {
	return c.SetBg(c.Bg().SetRGB8(r, g, b))
}

// ChannelsFromRGB8 builds a pair from foreground and background colors.
func ChannelsFromRGB8(fr, fg, fb, br, bg, bb uint8) Channels {
	return Channels(0).SetFgRGB8(fr, fg, fb).SetBgRGB8(br, bg, bb)
}
