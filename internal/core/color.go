package core

// Color is a cell color code in the 16-entry game palette.
// Every grid cell holds exactly one valid code; storing anything outside
// [0, 15] is a programming error, not a recoverable condition.
type Color uint8

const (
	ColorBlack Color = iota // background / empty
	ColorDarkGray
	ColorRed
	ColorGreen
	ColorBlue
	ColorYellow
	ColorMagenta
	ColorOrange
	ColorCyan
	ColorBrown
	ColorPink
	ColorLime
	ColorPurple
	ColorTeal
	ColorWhite
	ColorLightGray
)

// ColorWall is the palette slot reserved for immovable walls.
const ColorWall = ColorDarkGray

// MaxColor is the highest valid palette code.
const MaxColor = ColorLightGray

// PlayableColors are the colors level generators may assign to sources,
// blocks and painted cells. Walls, background, the white cursor and the
// gray paintable marker are excluded.
var PlayableColors = []Color{
	ColorRed, ColorGreen, ColorBlue, ColorYellow, ColorMagenta, ColorOrange,
	ColorCyan, ColorBrown, ColorPink, ColorLime, ColorPurple, ColorTeal,
}

// Valid reports whether the color is inside the 16-entry palette.
func (c Color) Valid() bool {
	return c <= MaxColor
}

func (c Color) String() string {
	names := [...]string{
		"black", "dark_gray", "red", "green", "blue", "yellow", "magenta",
		"orange", "cyan", "brown", "pink", "lime", "purple", "teal",
		"white", "light_gray",
	}
	if int(c) < len(names) {
		return names[c]
	}
	return "invalid"
}
