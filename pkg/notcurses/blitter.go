package notcurses

import "github.com/bdchik/notcurses-go/internal/bindings"

// Blitter selects the glyph set used to represent pixels, mirroring
// ncblitter_e.
type Blitter int32

const (
	BlitterDefault Blitter = iota // let the library pick
	Blitter1x1                    // space, compatible with ASCII
	Blitter2x1                    // halves + 1x1
	Blitter2x2                    // quadrants + 2x1
	Blitter3x2                    // sextants + 2x2
	BlitterBraille                // 4 rows, 2 cols (braille)
	BlitterPixel                  // pixel graphics (sixel, kitty)
	Blitter4x1                    // four vertical levels
	Blitter8x1                    // eight vertical levels
)

func (b Blitter) String() string {
	switch b {
	case BlitterDefault:
		return "default"
	case Blitter1x1:
		return "1x1"
	case Blitter2x1:
		return "2x1"
	case Blitter2x2:
		return "2x2"
	case Blitter3x2:
		return "3x2"
	case BlitterBraille:
		return "braille"
	case BlitterPixel:
		return "pixel"
	case Blitter4x1:
		return "4x1"
	case Blitter8x1:
		return "8x1"
	default:
		return "invalid"
	}
}

// Scale controls how a visual is fit to its plane, mirroring ncscale_e.
type Scale int32

const (
	ScaleNone      Scale = iota // maintain original size
	ScaleScale                  // maintain aspect ratio
	ScaleStretch                // fill the plane
	ScaleNoneHires              // NCSCALE_NONE with a hires blitter
	ScaleHires                  // NCSCALE_SCALE with a hires blitter
)

func (s Scale) String() string {
	switch s {
	case ScaleNone:
		return "none"
	case ScaleScale:
		return "scale"
	case ScaleStretch:
		return "stretch"
	case ScaleNoneHires:
		return "nonehires"
	case ScaleHires:
		return "scalehires"
	default:
		return "invalid"
	}
}

// LexBlitter parses a blitter name with the library's own lexer, accepting
// the same spellings the notcurses CLI tools do.
func LexBlitter(name string) (Blitter, error) {
	b, err := bindings.LexBlitter(name)
	if err != nil {
		return 0, remapError(err)
	}
	return Blitter(b), nil
}

// StrBlitter names a blitter with the library's own stringizer.
func StrBlitter(b Blitter) string {
	return bindings.StrBlitter(int(b))
}

// LexScale parses a scaling mode name with the library's own lexer.
func LexScale(name string) (Scale, error) {
	s, err := bindings.LexScaleMode(name)
	if err != nil {
		return 0, remapError(err)
	}
	return Scale(s), nil
}

// StrScale names a scaling mode with the library's own stringizer.
func StrScale(s Scale) string {
	return bindings.StrScaleMode(int(s))
}
