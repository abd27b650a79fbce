package board

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mobil-koeln/bart-cli/internal/api"
	"github.com/mobil-koeln/bart-cli/internal/models"
)

// QuitKey ends the board
const QuitKey = 'q'

// Source provides the data for each redraw cycle. *api.Client implements it.
type Source interface {
	GetAdvisories(ctx context.Context) ([]models.Advisory, error)
	GetDepartures(ctx context.Context, station string) (models.StationSnapshot, error)
}

// Board is the live departure board. It owns its Terminal for the duration of Run.
type Board struct {
	term     Terminal
	source   Source
	stations []string
	columns  int
	logger   *slog.Logger
	now      func() time.Time

	prevLines int
}

// Option configures a Board
type Option func(*Board)

// WithLogger sets the logger for loop diagnostics
func WithLogger(l *slog.Logger) Option {
	return func(b *Board) {
		b.logger = l
	}
}

// WithClock overrides the clock used for the header timestamp
func WithClock(now func() time.Time) Option {
	return func(b *Board) {
		b.now = now
	}
}

// New creates a board showing stations, in order, across the given number of columns
func New(term Terminal, source Source, stations []string, columns int, opts ...Option) *Board {
	b := &Board{
		term:     term,
		source:   source,
		stations: stations,
		columns:  columns,
		logger:   slog.New(slog.DiscardHandler),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Run redraws the board until the quit key, an interrupt, context cancellation or
// a fatal error. The terminal is torn down exactly once before Run returns; fatal
// fetch and display errors are returned for the caller to report.
func (b *Board) Run(ctx context.Context) error {
	defer b.teardown()

	for {
		if ctx.Err() != nil {
			return nil
		}

		if err := b.cycle(ctx); err != nil {
			b.logger.Error("redraw failed", "error", err)
			return err
		}

		in := b.term.PollInput(ctx)
		switch in.Kind {
		case InputKey:
			if in.Key == QuitKey {
				b.logger.Debug("quit key pressed")
				return nil
			}
		case InputInterrupt:
			b.logger.Debug("interrupted", "canceled", ctx.Err() != nil)
			return nil
		case InputResize:
			b.logger.Debug("terminal resized", "width", b.term.Dimensions().Width, "height", b.term.Dimensions().Height)
		}
	}
}

func (b *Board) teardown() {
	b.term.Teardown()
	b.logger.Debug("terminal restored")
}

// cycle fetches, renders and displays one frame. An interrupted fetch skips the
// cycle and leaves the previous frame on screen.
func (b *Board) cycle(ctx context.Context) error {
	snap, err := b.fetch(ctx)
	if err != nil {
		if errors.Is(err, api.ErrInterrupted) {
			b.logger.Debug("fetch interrupted, skipping cycle", "error", err)
			return nil
		}
		return err
	}

	layout := NewLayout(b.term.Dimensions(), b.columns)
	frame := Render(snap, b.now(), layout)
	return b.display(frame)
}

func (b *Board) fetch(ctx context.Context) (Snapshot, error) {
	advisories, err := b.source.GetAdvisories(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	snap := Snapshot{
		Advisories: advisories,
		Stations:   make([]models.StationSnapshot, 0, len(b.stations)),
	}
	for _, station := range b.stations {
		st, err := b.source.GetDepartures(ctx, station)
		if err != nil {
			return Snapshot{}, fmt.Errorf("%s: %w", station, err)
		}
		snap.Stations = append(snap.Stations, st)
	}
	return snap, nil
}

// display writes the frame and blanks rows left over from a taller previous frame
func (b *Board) display(frame Frame) error {
	for _, w := range frame.Writes {
		if err := b.term.Write(w); err != nil {
			return err
		}
	}

	if stale := b.prevLines - frame.LinesUsed; stale > 0 {
		b.term.ClearRows(frame.LinesUsed, stale)
		b.logger.Debug("cleared stale rows", "from", frame.LinesUsed, "count", stale)
	}
	b.prevLines = frame.LinesUsed

	b.term.Show()
	return nil
}
