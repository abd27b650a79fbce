package board

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/mobil-koeln/bart-cli/internal/models"
)

const (
	headerTitle  = "BART departures as of "
	headerLayout = "03:04:05 PM"
	footerHint   = "Press 'q' to quit."
	marker       = "# "
)

// Write places styled text at an absolute position
type Write struct {
	Row   int
	Col   int
	Text  string
	Style Style
}

// Frame is everything drawn in one redraw cycle
type Frame struct {
	Writes []Write
	// LinesUsed is the number of rows from the top the frame occupies
	LinesUsed int
}

// Snapshot is the data fetched for one redraw cycle
type Snapshot struct {
	Advisories []models.Advisory
	Stations   []models.StationSnapshot
}

// Render lays out a snapshot as a frame. It has no side effects; writes that do not
// fit the layout width are left for the terminal to reject.
func Render(snap Snapshot, now time.Time, l Layout) Frame {
	r := &renderer{layout: l}

	y := 0
	r.add(y, 0, center(headerTitle+now.Format(headerLayout), l.Width), Style{Bold: true})

	for _, adv := range snap.Advisories {
		// The "No delays reported." placeholder ends the list
		if !adv.Reportable() {
			break
		}
		y++
		r.blank(y)
		for _, line := range wrap(adv.Text(), l.Width) {
			y++
			r.add(y, 0, fill(line, l.Width), Style{Color: Urgent, Bold: true})
		}
	}

	for _, st := range snap.Stations {
		y++
		r.blank(y)
		y++
		r.add(y, 0, fill(st.Name, l.Width), Style{Bold: true})
		for _, dep := range st.Departures {
			y++
			r.departure(y, dep)
		}
	}

	y++
	r.blank(y)
	y++
	r.add(y, 0, fill(footerHint, l.Width), Style{})

	return Frame{Writes: r.writes, LinesUsed: y + 1}
}

type renderer struct {
	layout Layout
	writes []Write
}

func (r *renderer) add(row, col int, text string, style Style) {
	if text == "" {
		return
	}
	r.writes = append(r.writes, Write{Row: row, Col: col, Text: text, Style: style})
}

func (r *renderer) blank(row int) {
	r.add(row, 0, strings.Repeat(" ", r.layout.Width), Style{})
}

// departure draws one destination followed by a slot per estimate
func (r *renderer) departure(row int, dep models.Departure) {
	spacing := r.layout.Spacing
	r.add(row, 0, fit(dep.Destination, spacing), Style{})

	x := spacing
	for i, est := range dep.Estimates {
		r.add(row, x, marker, Style{Color: LineColor(est.Color)})
		x += len(marker)

		minutes := minutesText(est.Minutes)
		r.add(row, x, minutes, Style{Color: MinutesColor(est.Minutes), Bold: true})
		x += runewidth.StringWidth(minutes)

		length := lengthText(est.Length)
		r.add(row, x, length, Style{Color: LengthColor(est.Length)})
		x += len(length)

		if gap := (i+2)*spacing - x; gap > 0 {
			r.add(row, x, strings.Repeat(" ", gap), Style{})
			x += gap
		}
	}

	if rest := r.layout.Width - x; rest > 0 {
		r.add(row, x, strings.Repeat(" ", rest), Style{})
	}
}

// minutesText shows numeric values as a countdown and keeps literals like "Leaving"
func minutesText(minutes string) string {
	if n, ok := models.ParseMinutes(minutes); ok {
		return strconv.Itoa(n) + " min "
	}
	return strings.TrimSpace(minutes) + " "
}

func lengthText(cars int) string {
	return fmt.Sprintf("(%d car)", cars)
}

// wrap breaks text into lines of at most width cells at word boundaries.
// Runs of whitespace collapse to a single space.
func wrap(text string, width int) []string {
	text = strings.Join(strings.Fields(text), " ")
	if text == "" {
		return nil
	}
	if width < 1 {
		return []string{text}
	}
	lines := strings.Split(ansi.Wrap(text, width, ""), "\n")
	out := lines[:0]
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
