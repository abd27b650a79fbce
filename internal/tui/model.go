package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mobil-koeln/bart-cli/internal/models"
)

// Client is the part of the API client the picker uses
type Client interface {
	GetStations(ctx context.Context) ([]models.Station, error)
	GetDepartures(ctx context.Context, station string) (models.StationSnapshot, error)
}

// Model is the root Bubble Tea model of the station picker.
type Model struct {
	client Client
	width  int
	height int

	filterInput textinput.Model

	// Station list
	stations        []models.Station
	filtered        []models.Station
	cursor          int
	stationsLoading bool
	stationsErr     error

	// Picked stations in the order they were picked
	picked []string

	// Departure preview of the station under the cursor
	previewSeq     int
	previewAbbr    string
	preview        *models.StationSnapshot
	previewLoading bool
	previewErr     error

	done     bool
	canceled bool
}

// New creates a picker. preselected stations start out picked.
func New(client Client, preselected []string) Model {
	ti := textinput.New()
	ti.Placeholder = "Filter stations..."
	ti.Focus()
	ti.CharLimit = 40
	ti.Width = 30

	picked := make([]string, 0, len(preselected))
	picked = append(picked, preselected...)

	return Model{
		client:          client,
		filterInput:     ti,
		picked:          picked,
		stationsLoading: true,
	}
}

// Init starts loading the station list.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, fetchStations(m.client))
}

// Selected returns the picked station codes once the picker has finished.
func (m Model) Selected() []string {
	if !m.done || m.canceled {
		return nil
	}
	return m.picked
}

// Canceled reports whether the user left the picker without choosing.
func (m Model) Canceled() bool {
	return m.canceled
}

func (m Model) isPicked(abbr string) bool {
	for _, p := range m.picked {
		if p == abbr {
			return true
		}
	}
	return false
}

// current returns the station under the cursor
func (m Model) current() (models.Station, bool) {
	if m.cursor < 0 || m.cursor >= len(m.filtered) {
		return models.Station{}, false
	}
	return m.filtered[m.cursor], true
}
