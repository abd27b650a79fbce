package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mobil-koeln/bart-cli/internal/board"
)

// Colors matching the board palette
var (
	colorCyan   = lipgloss.Color("6")   // Cyan - station codes, focus
	colorYellow = lipgloss.Color("3")   // Yellow - warning
	colorRed    = lipgloss.Color("1")   // Red - urgent, errors
	colorGreen  = lipgloss.Color("2")   // Green - long trains
	colorBlue   = lipgloss.Color("4")   // Blue
	colorWhite  = lipgloss.Color("15")  // White - text
	colorGray   = lipgloss.Color("8")   // Gray - muted text
	colorOrange = lipgloss.Color("208") // Orange
)

// Text styles
var (
	styleCode    = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	styleMuted   = lipgloss.NewStyle().Foreground(colorGray)
	styleHeader  = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
	styleLoading = lipgloss.NewStyle().Foreground(colorYellow).Italic(true)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)
	styleLogo    = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
)

// Panel border styles
var (
	stylePanelFocused = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorCyan)

	stylePanelNormal = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorGray)
)

// Selected item in a list
var styleSelected = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)

// Picked checkbox
var stylePicked = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)

// Status bar at the bottom
var styleStatusBar = lipgloss.NewStyle().
	Foreground(colorGray).
	Background(lipgloss.Color("0"))

var boardColors = map[board.Color]lipgloss.Color{
	board.ColorRed:    colorRed,
	board.ColorGreen:  colorGreen,
	board.ColorYellow: colorYellow,
	board.ColorBlue:   colorBlue,
	board.ColorWhite:  colorWhite,
	board.ColorOrange: colorOrange,
}

// styleFor converts a board style for the preview panel
func styleFor(s board.Style) lipgloss.Style {
	st := lipgloss.NewStyle().Bold(s.Bold)
	if c, ok := boardColors[s.Color]; ok {
		st = st.Foreground(c)
	}
	return st
}
