package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mobil-koeln/bart-cli/internal/models"
)

// Update handles all messages and key events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case stationsResultMsg:
		return m.handleStationsResult(msg)

	case previewTickMsg:
		return m.handlePreviewTick(msg)

	case previewResultMsg:
		return m.handlePreviewResult(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	return m, cmd
}

func (m Model) handleStationsResult(msg stationsResultMsg) (tea.Model, tea.Cmd) {
	m.stationsLoading = false
	m.stationsErr = msg.err
	if msg.err != nil {
		return m, nil
	}

	m.stations = msg.stations
	m.applyFilter()
	return m, m.schedulePreview()
}

func (m Model) handlePreviewTick(msg previewTickMsg) (tea.Model, tea.Cmd) {
	// Ignore ticks from earlier cursor positions
	if msg.seq != m.previewSeq {
		return m, nil
	}
	st, ok := m.current()
	if !ok {
		return m, nil
	}

	m.previewAbbr = st.Abbr
	m.preview = nil
	m.previewErr = nil
	m.previewLoading = true
	return m, fetchPreview(m.client, st.Abbr)
}

func (m Model) handlePreviewResult(msg previewResultMsg) (tea.Model, tea.Cmd) {
	// Ignore if the cursor moved on
	if msg.abbr != m.previewAbbr {
		return m, nil
	}
	m.previewLoading = false
	m.previewErr = msg.err
	if msg.err == nil {
		snap := msg.snapshot
		m.preview = &snap
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.done = true
		m.canceled = true
		return m, tea.Quit

	case "esc":
		if m.filterInput.Value() != "" {
			m.filterInput.SetValue("")
			m.applyFilter()
			return m, m.schedulePreview()
		}
		m.done = true
		m.canceled = true
		return m, tea.Quit

	case "enter":
		if len(m.picked) == 0 {
			if st, ok := m.current(); ok {
				m.picked = append(m.picked, st.Abbr)
			}
		}
		if len(m.picked) == 0 {
			return m, nil
		}
		m.done = true
		return m, tea.Quit

	case "tab":
		if st, ok := m.current(); ok {
			m.toggle(st.Abbr)
		}
		return m, nil

	case "up", "ctrl+p":
		if m.cursor > 0 {
			m.cursor--
			return m, m.schedulePreview()
		}
		return m, nil

	case "down", "ctrl+n":
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
			return m, m.schedulePreview()
		}
		return m, nil
	}

	// Everything else edits the filter
	prev := m.filterInput.Value()
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	if m.filterInput.Value() != prev {
		m.applyFilter()
		return m, tea.Batch(cmd, m.schedulePreview())
	}
	return m, cmd
}

func (m *Model) toggle(abbr string) {
	for i, p := range m.picked {
		if p == abbr {
			m.picked = append(m.picked[:i], m.picked[i+1:]...)
			return
		}
	}
	m.picked = append(m.picked, abbr)
}

func (m *Model) applyFilter() {
	m.filtered = models.FilterStations(m.stations, m.filterInput.Value())
	m.cursor = 0
}

// schedulePreview arranges for the station under the cursor to be previewed once
// the cursor stops moving
func (m *Model) schedulePreview() tea.Cmd {
	m.previewSeq++
	st, ok := m.current()
	if !ok {
		m.previewAbbr = ""
		m.preview = nil
		m.previewLoading = false
		return nil
	}
	if st.Abbr == m.previewAbbr {
		return nil
	}
	return previewTick(m.previewSeq)
}
