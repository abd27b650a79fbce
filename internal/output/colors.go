package output

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ColorMode represents the color output mode
type ColorMode int

const (
	// ColorAuto enables colors if output is a TTY
	ColorAuto ColorMode = iota
	// ColorAlways forces colors on
	ColorAlways
	// ColorNever disables colors
	ColorNever
)

// Colors holds the color functions for different output types
type Colors struct {
	Code   func(format string, a ...interface{}) string
	Name   func(format string, a ...interface{}) string
	Alert  func(format string, a ...interface{}) string
	Amount func(format string, a ...interface{}) string
	Best   func(format string, a ...interface{}) string
	Header func(format string, a ...interface{}) string
	Muted  func(format string, a ...interface{}) string
}

// NewColors creates a new Colors instance based on the color mode
func NewColors(mode ColorMode) *Colors {
	useColors := false
	switch mode {
	case ColorAlways:
		useColors = true
		color.NoColor = false // Force colors on
	case ColorNever:
		useColors = false
	case ColorAuto:
		useColors = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	if !useColors {
		noColor := func(format string, a ...interface{}) string {
			if len(a) == 0 {
				return format
			}
			return color.New().Sprintf(format, a...)
		}
		return &Colors{
			Code:   noColor,
			Name:   noColor,
			Alert:  noColor,
			Amount: noColor,
			Best:   noColor,
			Header: noColor,
			Muted:  noColor,
		}
	}

	return &Colors{
		Code:   color.New(color.FgCyan, color.Bold).SprintfFunc(),
		Name:   color.New(color.FgWhite).SprintfFunc(),
		Alert:  color.New(color.FgRed, color.Bold).SprintfFunc(),
		Amount: color.New(color.FgYellow).SprintfFunc(),
		Best:   color.New(color.FgGreen, color.Bold).SprintfFunc(),
		Header: color.New(color.FgWhite, color.Bold).SprintfFunc(),
		Muted:  color.New(color.FgHiBlack).SprintfFunc(),
	}
}

// ParseColorMode parses a color mode string
func ParseColorMode(s string) ColorMode {
	switch s {
	case "always":
		return ColorAlways
	case "never":
		return ColorNever
	default:
		return ColorAuto
	}
}
