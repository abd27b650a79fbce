package board

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// ErrTerminalTooSmall is returned when a write does not fit the terminal
var ErrTerminalTooSmall = errors.New("terminal too small")

// BoundsError describes a write that falls outside the terminal
type BoundsError struct {
	Row   int
	Col   int
	Width int
	Dims  Dimensions
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("terminal too small: %d cells at row %d, column %d do not fit %dx%d",
		e.Width, e.Row, e.Col, e.Dims.Width, e.Dims.Height)
}

// Is allows errors.Is to match ErrTerminalTooSmall
func (e *BoundsError) Is(target error) bool {
	return target == ErrTerminalTooSmall
}

// InputKind tells what ended a poll
type InputKind int

const (
	// InputTimeout means nothing arrived before the refresh interval elapsed
	InputTimeout InputKind = iota
	// InputKey carries a typed character
	InputKey
	// InputResize means the terminal changed size; Dimensions is already updated
	InputResize
	// InputInterrupt is Ctrl-C, a termination signal or a canceled context
	InputInterrupt
)

func (k InputKind) String() string {
	switch k {
	case InputTimeout:
		return "timeout"
	case InputKey:
		return "key"
	case InputResize:
		return "resize"
	case InputInterrupt:
		return "interrupt"
	default:
		return fmt.Sprintf("InputKind(%d)", int(k))
	}
}

// Input is the result of PollInput
type Input struct {
	Kind InputKind
	Key  rune
}

// Terminal is the drawing surface the redraw loop owns
type Terminal interface {
	Dimensions() Dimensions
	Write(w Write) error
	ClearRows(start, count int)
	Show()
	PollInput(ctx context.Context) Input
	Teardown()
}

// Surface is a Terminal backed by a tcell screen
type Surface struct {
	screen  tcell.Screen
	palette Palette
	timeout time.Duration
	dims    Dimensions

	events  chan tcell.Event
	signals <-chan os.Signal
	quit    chan struct{}
	once    sync.Once
}

// SurfaceOption configures a Surface
type SurfaceOption func(*Surface)

// WithSignals makes signals received on ch end PollInput with InputInterrupt
func WithSignals(ch <-chan os.Signal) SurfaceOption {
	return func(s *Surface) {
		s.signals = ch
	}
}

// Open takes over the controlling terminal
func Open(timeout time.Duration, opts ...SurfaceOption) (*Surface, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to open terminal: %w", err)
	}
	return NewSurface(screen, timeout, opts...)
}

// NewSurface initializes screen and takes ownership of it. PollInput blocks for at
// most timeout. The caller must call Teardown once done.
func NewSurface(screen tcell.Screen, timeout time.Duration, opts ...SurfaceOption) (*Surface, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize terminal: %w", err)
	}

	palette := NewPalette(screen.Colors())
	if err := palette.Validate(); err != nil {
		screen.Fini()
		return nil, err
	}

	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()

	s := &Surface{
		screen:  screen,
		palette: palette,
		timeout: timeout,
		events:  make(chan tcell.Event, 16),
		quit:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.refreshDimensions()

	go s.pump()

	return s, nil
}

// pump forwards screen events until the screen is finalized
func (s *Surface) pump() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.quit:
			return
		}
	}
}

func (s *Surface) refreshDimensions() bool {
	w, h := s.screen.Size()
	d := Dimensions{Width: w, Height: h}
	changed := d != s.dims
	s.dims = d
	return changed
}

// Dimensions returns the terminal size as of the last resize
func (s *Surface) Dimensions() Dimensions {
	return s.dims
}

// Write draws text at the given position. Text that does not fit the current
// dimensions is rejected with a *BoundsError and nothing is drawn.
func (s *Surface) Write(w Write) error {
	width := runewidth.StringWidth(w.Text)
	if w.Row < 0 || w.Col < 0 || w.Row >= s.dims.Height || w.Col+width > s.dims.Width {
		return &BoundsError{Row: w.Row, Col: w.Col, Width: width, Dims: s.dims}
	}

	style := s.palette.Resolve(w.Style)
	x := w.Col
	var (
		mainc rune
		combc []rune
		cells int
	)
	flush := func() {
		if cells > 0 {
			s.screen.SetContent(x, w.Row, mainc, combc, style)
			x += cells
		}
	}
	for _, r := range w.Text {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			// combining marks ride on the cell before them
			if cells > 0 && !unicode.IsControl(r) {
				combc = append(combc, r)
			}
			continue
		}
		flush()
		mainc, combc, cells = r, nil, rw
	}
	flush()
	return nil
}

// ClearRows blanks count full-width rows starting at start. Rows outside the
// terminal are ignored.
func (s *Surface) ClearRows(start, count int) {
	blank := strings.Repeat(" ", s.dims.Width)
	for row := max(start, 0); row < start+count && row < s.dims.Height; row++ {
		_ = s.Write(Write{Row: row, Text: blank})
	}
}

// Show makes pending writes visible
func (s *Surface) Show() {
	s.screen.Show()
}

// PollInput waits up to the refresh timeout for a key, a resize or an interrupt.
// A canceled ctx counts as an interrupt.
// Events that are none of these are dropped without restarting the wait.
func (s *Surface) PollInput(ctx context.Context) Input {
	timer := time.NewTimer(s.timeout)
	defer timer.Stop()

	for {
		select {
		case <-timer.C:
			return Input{Kind: InputTimeout}
		case <-s.signals:
			return Input{Kind: InputInterrupt}
		case <-ctx.Done():
			return Input{Kind: InputInterrupt}
		case <-s.quit:
			return Input{Kind: InputInterrupt}
		case ev := <-s.events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				if s.refreshDimensions() {
					s.screen.Sync()
					return Input{Kind: InputResize}
				}
			case *tcell.EventKey:
				switch ev.Key() {
				case tcell.KeyRune:
					return Input{Kind: InputKey, Key: ev.Rune()}
				case tcell.KeyCtrlC:
					return Input{Kind: InputInterrupt}
				}
			}
		}
	}
}

// Teardown restores the terminal. Calls after the first do nothing.
func (s *Surface) Teardown() {
	s.once.Do(func() {
		close(s.quit)
		s.screen.Fini()
	})
}
