package board

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Color is a symbolic display color, resolved to a terminal color through the Palette
type Color int

// Symbolic colors. ColorNone leaves the terminal's default foreground.
const (
	ColorNone Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorWhite
	ColorOrange
	colorCount
)

// Classification colors
const (
	Urgent  = ColorRed
	Warning = ColorYellow
	Good    = ColorGreen
)

var colorNames = [colorCount]string{
	ColorNone:   "none",
	ColorRed:    "red",
	ColorGreen:  "green",
	ColorYellow: "yellow",
	ColorBlue:   "blue",
	ColorWhite:  "white",
	ColorOrange: "orange",
}

func (c Color) String() string {
	if c < 0 || c >= colorCount {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

// Style is the color and weight of one write
type Style struct {
	Color Color
	Bold  bool
}

// ANSI palette indexes, as curses numbers them
const (
	ansiRed     = 1
	ansiGreen   = 2
	ansiYellow  = 3
	ansiBlue    = 4
	ansiMagenta = 5
	ansiWhite   = 7
	xtermOrange = 208
)

// Palette maps every symbolic color to a terminal color
type Palette [colorCount]tcell.Color

// NewPalette builds the fixed palette for a terminal reporting the given number of
// colors. Orange needs the 256-color cube and falls back to magenta otherwise.
func NewPalette(colors int) Palette {
	p := Palette{
		ColorNone:   tcell.ColorDefault,
		ColorRed:    tcell.PaletteColor(ansiRed),
		ColorGreen:  tcell.PaletteColor(ansiGreen),
		ColorYellow: tcell.PaletteColor(ansiYellow),
		ColorBlue:   tcell.PaletteColor(ansiBlue),
		ColorWhite:  tcell.PaletteColor(ansiWhite),
		ColorOrange: tcell.PaletteColor(ansiMagenta),
	}
	if colors >= 256 {
		p[ColorOrange] = tcell.PaletteColor(xtermOrange)
	}
	return p
}

// Validate checks that every color except ColorNone resolves to a real terminal color
func (p Palette) Validate() error {
	if p[ColorNone] != tcell.ColorDefault {
		return fmt.Errorf("palette: %s must map to the default color", ColorNone)
	}
	for c := ColorNone + 1; c < colorCount; c++ {
		if !p[c].Valid() {
			return fmt.Errorf("palette: %s has no terminal color", c)
		}
	}
	return nil
}

// Resolve converts a Style into a tcell style. An unknown color is a programming
// error and panics.
func (p Palette) Resolve(s Style) tcell.Style {
	if s.Color < 0 || s.Color >= colorCount {
		panic(fmt.Sprintf("board: unknown color %d", int(s.Color)))
	}
	return tcell.StyleDefault.Foreground(p[s.Color]).Bold(s.Bold)
}
