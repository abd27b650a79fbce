package testutil

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

// Placed is text drawn at a row and column of a terminal frame, with the
// style it was drawn in
type Placed[S any] struct {
	Row   int
	Col   int
	Text  string
	Style S
}

// RowText joins the text placed on one row, in frame order
func RowText[S any](frame []Placed[S], row int) string {
	var sb strings.Builder
	for _, p := range frame {
		if p.Row == row {
			sb.WriteString(p.Text)
		}
	}
	return sb.String()
}

// CellsOn returns the pieces placed on one row, in frame order
func CellsOn[S any](frame []Placed[S], row int) []Placed[S] {
	var out []Placed[S]
	for _, p := range frame {
		if p.Row == row {
			out = append(out, p)
		}
	}
	return out
}

// FindCell returns the piece on row whose text is exactly text
func FindCell[S any](t *testing.T, frame []Placed[S], row int, text string) Placed[S] {
	t.Helper()
	for _, p := range CellsOn(frame, row) {
		if p.Text == text {
			return p
		}
	}
	t.Fatalf("no text %q on row %d", text, row)
	return Placed[S]{}
}

// AssertRow checks the text of a row, ignoring padding
func AssertRow[S any](t *testing.T, frame []Placed[S], row int, want string) {
	t.Helper()
	if got := strings.TrimSpace(RowText(frame, row)); got != want {
		t.Errorf("row %d: got %q, want %q", row, got, want)
	}
}

// ScreenText reads n cells of a screen row, combining marks included
func ScreenText(screen tcell.Screen, row, col, n int) string {
	var sb strings.Builder
	for x := col; x < col+n; x++ {
		r, combc, _, _ := screen.GetContent(x, row)
		sb.WriteRune(r)
		for _, c := range combc {
			sb.WriteRune(c)
		}
	}
	return sb.String()
}
