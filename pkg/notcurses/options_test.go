package notcurses

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptionsToBindings(t *testing.T) {
	o := &Options{
		TermType: "xterm-256color",
		LogLevel: LogWarning,
		MarginT:  1,
		MarginR:  2,
		MarginB:  3,
		MarginL:  4,
		Flags:    OptionSuppressBanners | OptionNoAlternateScreen,
	}

	b := o.toBindings()
	require.Equal(t, "xterm-256color", b.TermType)
	require.Equal(t, int(LogWarning), b.LogLevel)
	require.Equal(t, [4]uint32{1, 2, 3, 4},
		[4]uint32{b.MarginT, b.MarginR, b.MarginB, b.MarginL})
	require.Equal(t, OptionSuppressBanners|OptionNoAlternateScreen, b.Flags)
}

func TestNilOptionsAreDefaults(t *testing.T) {
	var o *Options
	b := o.toBindings()
	require.Zero(t, b)
}

func TestOptionFlagValues(t *testing.T) {
	// These are ABI constants; a change here is a break against the C
	// headers, not a refactor.
	require.Equal(t, uint64(0x0001), OptionInhibitSetlocale)
	require.Equal(t, uint64(0x0002), OptionNoClearBitmaps)
	require.Equal(t, uint64(0x0004), OptionNoWinchSigHandler)
	require.Equal(t, uint64(0x0008), OptionNoQuitSigHandlers)
	require.Equal(t, uint64(0x0020), OptionSuppressBanners)
	require.Equal(t, uint64(0x0040), OptionNoAlternateScreen)
	require.Equal(t, uint64(0x0080), OptionNoFontChanges)
}

func TestLogLevelValues(t *testing.T) {
	// ncloglevel_e numbering: silent is the zero default, trace the noisiest.
	require.Equal(t, LogLevel(0), LogSilent)
	require.Equal(t, LogLevel(1), LogPanic)
	require.Equal(t, LogLevel(4), LogWarning)
	require.Equal(t, LogLevel(8), LogTrace)
}
