package term

// Color is a tagged variant over the 16-entry ANSI palette plus the two
// default colors. Mapping a tag to an RGB value is a rendering concern;
// the grid only ever stores the tag.
type Color int

const (
	DefaultFg Color = iota
	DefaultBg
	Black
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

// brightOf promotes a standard palette color to its bright twin, used by
// SGR 1 (bold). Colors that are not one of the eight standard entries
// (DefaultFg, DefaultBg, or an already-bright color) are returned unchanged.
func brightOf(c Color) Color {
	switch c {
	case Black:
		return BrightBlack
	case Red:
		return BrightRed
	case Green:
		return BrightGreen
	case Yellow:
		return BrightYellow
	case Blue:
		return BrightBlue
	case Magenta:
		return BrightMagenta
	case Cyan:
		return BrightCyan
	case White:
		return BrightWhite
	default:
		return c
	}
}

// fgFromSGR maps an SGR 30-37 / 90-97 parameter, or 39 (default), to its
// Color tag. Returns (color, ok); ok is false for any other parameter.
func fgFromSGR(p int) (Color, bool) {
	switch {
	case p >= 30 && p <= 37:
		return standardColors[p-30], true
	case p == 39:
		return DefaultFg, true
	case p >= 90 && p <= 97:
		return brightColors[p-90], true
	default:
		return DefaultFg, false
	}
}

// bgFromSGR maps an SGR 40-47 parameter, or 49 (default), to its Color tag.
func bgFromSGR(p int) (Color, bool) {
	switch {
	case p >= 40 && p <= 47:
		return standardColors[p-40], true
	case p == 49:
		return DefaultBg, true
	default:
		return DefaultBg, false
	}
}

var standardColors = [8]Color{Black, Red, Green, Yellow, Blue, Magenta, Cyan, White}
var brightColors = [8]Color{BrightBlack, BrightRed, BrightGreen, BrightYellow, BrightBlue, BrightMagenta, BrightCyan, BrightWhite}

// String renders the color's name, mainly for test failure messages.
func (c Color) String() string {
	switch c {
	case DefaultFg:
		return "DefaultFg"
	case DefaultBg:
		return "DefaultBg"
	case Black:
		return "Black"
	case Red:
		return "Red"
	case Green:
		return "Green"
	case Yellow:
		return "Yellow"
	case Blue:
		return "Blue"
	case Magenta:
		return "Magenta"
	case Cyan:
		return "Cyan"
	case White:
		return "White"
	case BrightBlack:
		return "BrightBlack"
	case BrightRed:
		return "BrightRed"
	case BrightGreen:
		return "BrightGreen"
	case BrightYellow:
		return "BrightYellow"
	case BrightBlue:
		return "BrightBlue"
	case BrightMagenta:
		return "BrightMagenta"
	case BrightCyan:
		return "BrightCyan"
	case BrightWhite:
		return "BrightWhite"
	default:
		return "Unknown"
	}
}
