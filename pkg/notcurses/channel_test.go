package notcurses

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChannelRGBRoundTrip(t *testing.T) {
	var c Channel
	c = c.SetRGB8(0x12, 0x34, 0x56)

	r, g, b := c.RGB8()
	require.Equal(t, uint8(0x12), r)
	require.Equal(t, uint8(0x34), g)
	require.Equal(t, uint8(0x56), b)
	require.False(t, c.DefaultP(), "setting a color must clear default-color")
}

func TestChannelDefault(t *testing.T) {
	var c Channel
	require.True(t, c.DefaultP(), "zero channel uses the default color")

	c = c.SetRGB8(1, 2, 3)
	require.False(t, c.DefaultP())

	c = c.SetDefault()
	require.True(t, c.DefaultP())
	// The RGB payload survives; only the use-default bit changes.
	r, g, b := c.RGB8()
	require.Equal(t, [3]uint8{1, 2, 3}, [3]uint8{r, g, b})
}

func TestChannelAlpha(t *testing.T) {
	var c Channel
	require.Equal(t, AlphaOpaque, c.Alpha())

	c = c.SetAlpha(AlphaBlend)
	require.Equal(t, AlphaBlend, c.Alpha())
	require.False(t, c.DefaultP(), "non-opaque alpha forces a real color")

	c = c.SetAlpha(AlphaHighContrast)
	require.Equal(t, AlphaHighContrast, c.Alpha())

	c = c.SetAlpha(AlphaOpaque)
	require.Equal(t, AlphaOpaque, c.Alpha())
}

func TestChannelsPacking(t *testing.T) {
	ch := ChannelsFromRGB8(0xaa, 0xbb, 0xcc, 0x11, 0x22, 0x33)

	fr, fg, fb := ch.Fg().RGB8()
	require.Equal(t, [3]uint8{0xaa, 0xbb, 0xcc}, [3]uint8{fr, fg, fb})

	br, bg, bb := ch.Bg().RGB8()
	require.Equal(t, [3]uint8{0x11, 0x22, 0x33}, [3]uint8{br, bg, bb})
}

func TestChannelsSetHalves(t *testing.T) {
	var ch Channels
	ch = ch.SetFgRGB8(0xff, 0x00, 0x00)
	ch = ch.SetBgRGB8(0x00, 0x00, 0xff)

	require.False(t, ch.Fg().DefaultP())
	require.False(t, ch.Bg().DefaultP())

	// Replacing one half leaves the other untouched.
	before := ch.Fg()
	ch = ch.SetBg(Channel(0).SetRGB8(9, 9, 9))
	require.Equal(t, before, ch.Fg())
}
