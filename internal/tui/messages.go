package tui

import "github.com/mobil-koeln/bart-cli/internal/models"

// stationsResultMsg carries the station list.
type stationsResultMsg struct {
	stations []models.Station
	err      error
}

// previewTickMsg fires once the cursor has rested on a station.
// seq is used for stale-tick detection.
type previewTickMsg struct {
	seq int
}

// previewResultMsg carries the departures of one station.
type previewResultMsg struct {
	abbr     string
	snapshot models.StationSnapshot
	err      error
}
