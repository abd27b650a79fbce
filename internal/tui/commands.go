package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	apiTimeout   = 5 * time.Second
	previewDelay = 400 * time.Millisecond
)

// fetchStations returns a tea.Cmd that loads the station list.
func fetchStations(client Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiTimeout)
		defer cancel()

		stations, err := client.GetStations(ctx)
		return stationsResultMsg{stations: stations, err: err}
	}
}

// previewTick returns a tea.Cmd that fires after the cursor settles.
func previewTick(seq int) tea.Cmd {
	return tea.Tick(previewDelay, func(time.Time) tea.Msg {
		return previewTickMsg{seq: seq}
	})
}

// fetchPreview returns a tea.Cmd that fetches departures for one station.
func fetchPreview(client Client, abbr string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiTimeout)
		defer cancel()

		snap, err := client.GetDepartures(ctx, abbr)
		return previewResultMsg{abbr: abbr, snapshot: snap, err: err}
	}
}
