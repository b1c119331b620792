package notcurses

import "github.com/bdchik/notcurses-go/internal/bindings"

// LogLevel controls diagnostic output to stderr, mirroring ncloglevel_e.
// Diagnostics at or below the chosen level are emitted.
type LogLevel int

const (
	LogSilent LogLevel = iota // default; print nothing once fullscreen service begins
	LogPanic                  // print diagnostics related to an imminent crash
	LogFatal                  // log diagnostics before exiting
	LogError                  // things which can cause rendering failures
	LogWarning                // things which might be ill-advised
	LogInfo                   // detailed diagnostics
	LogVerbose                // more detailed diagnostics
	LogDebug                  // this and below are seldom useful
	LogTrace                  // there's probably a better way
)

// Context flags, mirroring NCOPTION_*.
const (
	// OptionInhibitSetlocale skips the setlocale(LC_ALL, "") call.
	OptionInhibitSetlocale uint64 = 0x0001
	// OptionNoClearBitmaps keeps preexisting bitmaps on startup.
	OptionNoClearBitmaps uint64 = 0x0002
	// OptionNoWinchSigHandler leaves SIGWINCH handling to the caller.
	OptionNoWinchSigHandler uint64 = 0x0004
	// OptionNoQuitSigHandlers leaves SIGINT/SIGQUIT/SIGSEGV/SIGTERM to the
	// caller.
	OptionNoQuitSigHandlers uint64 = 0x0008
	// OptionSuppressBanners skips the version banners on startup and the
	// performance summary on shutdown.
	OptionSuppressBanners uint64 = 0x0020
	// OptionNoAlternateScreen runs in the current screen instead of the
	// terminal's alternate screen.
	OptionNoAlternateScreen uint64 = 0x0040
	// OptionNoFontChanges forbids glyph remapping in the font table.
	OptionNoFontChanges uint64 = 0x0080
)

// Options configures context startup, mirroring notcurses_options. The zero
// value requests the library defaults: TERM-derived terminfo, LogSilent, no
// margins, no flags.
type Options struct {
	// TermType overrides the TERM environment variable when not empty.
	TermType string
	// LogLevel caps diagnostics written to stderr.
	LogLevel LogLevel
	// Margins in cells around the drawable area: top, right, bottom, left.
	MarginT, MarginR, MarginB, MarginL uint32
	// Flags is a bitmask of Option* values.
	Flags uint64
}

// SetMargins parses a margin description string ("2", or "2,3,4,5" for
// top,right,bottom,left) with the library's own lexer and applies the result.
func (o *Options) SetMargins(desc string) error {
	t, r, b, l, err := bindings.LexMargins(desc)
	if err != nil {
		return remapError(err)
	}
	o.MarginT, o.MarginR, o.MarginB, o.MarginL = t, r, b, l
	return nil
}

func (o *Options) toBindings() bindings.InitOptions {
	if o == nil {
		return bindings.InitOptions{}
	}
	return bindings.InitOptions{
		TermType: o.TermType,
		LogLevel: int(o.LogLevel),
		MarginT:  o.MarginT,
		MarginR:  o.MarginR,
		MarginB:  o.MarginB,
		MarginL:  o.MarginL,
		Flags:    o.Flags,
	}
}
