package core

// Color is a terminal foreground color for a screen cell.
// It holds either an ANSI 256-color code ("208") or a true-color hex
// value ("#3fa9f5"); the empty string keeps the terminal default.
type Color string

// Predefined colors for HUD and scenery.
const (
	ColorDefault     Color = ""
	ColorYellow      Color = "3"
	ColorBrightRed   Color = "9"
	ColorBrightWhite Color = "15"
	ColorDarkOrange  Color = "130"
	ColorGray        Color = "245"
)
