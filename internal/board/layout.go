package board

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Dimensions is the size of the terminal in cells
type Dimensions struct {
	Width  int
	Height int
}

// Layout is the column geometry of one frame
type Layout struct {
	Width   int
	Columns int
	Spacing int // width of the destination column and of each estimate slot
}

// NewLayout derives the layout for the given terminal size
func NewLayout(d Dimensions, columns int) Layout {
	if columns < 1 {
		columns = 1
	}
	return Layout{
		Width:   d.Width,
		Columns: columns,
		Spacing: ComputeSpacing(d.Width, columns),
	}
}

// ComputeSpacing integer-divides the width by the column count. A column count
// below 1 is clamped to 1.
func ComputeSpacing(width, columns int) int {
	if columns < 1 {
		columns = 1
	}
	if width < 0 {
		width = 0
	}
	return width / columns
}

// fit truncates or pads s to exactly n cells
func fit(s string, n int) string {
	if n <= 0 {
		return ""
	}
	return runewidth.FillRight(runewidth.Truncate(s, n, ""), n)
}

// fill pads s with blanks to width cells. Text wider than width is left as is.
func fill(s string, width int) string {
	if pad := width - runewidth.StringWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

// center places s in the middle of a blank row of width cells
func center(s string, width int) string {
	left := (width - runewidth.StringWidth(s)) / 2
	if left < 0 {
		left = 0
	}
	return fill(strings.Repeat(" ", left)+s, width)
}
