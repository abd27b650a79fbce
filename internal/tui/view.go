package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/mobil-koeln/bart-cli/internal/board"
	"github.com/mobil-koeln/bart-cli/internal/models"
)

// View renders the entire picker.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := styleLogo.Render("BART") + " " + styleHeader.Render("station picker")
	filterBar := m.renderFilterBar()
	statusBar := m.renderStatusBar()

	panelHeight := m.height - lipgloss.Height(header) - lipgloss.Height(filterBar) - lipgloss.Height(statusBar)
	if panelHeight < 3 {
		panelHeight = 3
	}

	// Panel widths: ~40% left, ~60% right
	leftWidth := m.width*40/100 - 2 // subtract border
	rightWidth := m.width - leftWidth - 4
	if leftWidth < 20 {
		leftWidth = 20
	}
	if rightWidth < 20 {
		rightWidth = 20
	}

	leftPanel := stylePanelFocused.
		Width(leftWidth).
		Height(panelHeight - 2).
		Render(m.renderStationList(leftWidth, panelHeight-2))

	rightPanel := stylePanelNormal.
		Width(rightWidth).
		Height(panelHeight - 2).
		Render(m.renderPreview(rightWidth, panelHeight-2))

	panels := lipgloss.JoinHorizontal(lipgloss.Top, leftPanel, rightPanel)

	return lipgloss.JoinVertical(lipgloss.Left, header, filterBar, panels, statusBar)
}

// renderFilterBar renders the filter input at the top.
func (m Model) renderFilterBar() string {
	label := styleHeader.Render("Filter: ")
	return stylePanelFocused.Width(m.width - 2).Render(label + m.filterInput.View())
}

// renderStationList renders the left station panel.
func (m Model) renderStationList(width, height int) string {
	title := styleHeader.Render("STATIONS")

	if m.stationsLoading {
		return title + "\n" + styleLoading.Render(" Loading stations...")
	}
	if m.stationsErr != nil {
		return title + "\n" + styleError.Render(" Error: "+m.stationsErr.Error())
	}
	if len(m.filtered) == 0 {
		return title + "\n" + styleMuted.Render(" No matching stations")
	}

	visible := max(height-1, 1)
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := min(start+visible, len(m.filtered))

	var b strings.Builder
	b.WriteString(title)
	for i := start; i < end; i++ {
		st := m.filtered[i]

		indicator := " "
		if i == m.cursor {
			indicator = styleSelected.Render(">")
		}
		box := "[ ]"
		if m.isPicked(st.Abbr) {
			box = stylePicked.Render("[x]")
		}
		name := runewidth.Truncate(st.Name, max(width-11, 1), "…")
		if i == m.cursor {
			name = styleSelected.Render(name)
		}

		b.WriteString("\n")
		_, _ = fmt.Fprintf(&b, "%s %s %s %s", indicator, box, styleCode.Render(st.Abbr), name)
	}
	return b.String()
}

// renderPreview renders the departures of the station under the cursor.
func (m Model) renderPreview(width, height int) string {
	st, ok := m.current()
	if !ok {
		return styleHeader.Render("DEPARTURES")
	}

	title := styleHeader.Render(st.Name) + " " + styleMuted.Render(st.Abbr)
	if m.previewAbbr != st.Abbr || m.previewLoading {
		return title + "\n" + styleLoading.Render(" Loading departures...")
	}
	if m.previewErr != nil {
		return title + "\n" + styleError.Render(" Error: "+m.previewErr.Error())
	}
	if m.preview == nil || len(m.preview.Departures) == 0 {
		return title + "\n" + styleMuted.Render(" No departures scheduled")
	}

	destWidth := 0
	for _, dep := range m.preview.Departures {
		destWidth = max(destWidth, runewidth.StringWidth(dep.Destination))
	}
	destWidth = min(destWidth, width/3)

	var b strings.Builder
	b.WriteString(title)
	for i, dep := range m.preview.Departures {
		if i >= height-1 {
			break
		}
		b.WriteString("\n")
		b.WriteString(runewidth.FillRight(runewidth.Truncate(dep.Destination, destWidth, "…"), destWidth))
		for j, est := range dep.Estimates {
			if j > 0 {
				b.WriteString(styleMuted.Render(" ·"))
			}
			b.WriteString(" ")
			b.WriteString(renderEstimate(est))
		}
	}
	return b.String()
}

// renderEstimate formats one estimate with the board's classification colors
func renderEstimate(est models.Estimate) string {
	marker := styleFor(board.Style{Color: board.LineColor(est.Color)}).Render("#")

	minutes := est.Minutes
	if n, ok := est.Countdown(); ok {
		minutes = fmt.Sprintf("%d min", n)
	}
	minutes = styleFor(board.Style{Color: board.MinutesColor(est.Minutes), Bold: true}).Render(minutes)

	length := styleFor(board.Style{Color: board.LengthColor(est.Length)}).Render(fmt.Sprintf("(%d car)", est.Length))

	return marker + " " + minutes + " " + length
}

// renderStatusBar renders the key help and the current pick.
func (m Model) renderStatusBar() string {
	help := "↑/↓ move · tab pick · enter start board · esc cancel"
	picked := "nothing picked"
	if len(m.picked) > 0 {
		picked = "picked: " + strings.Join(m.picked, ", ")
	}
	return styleStatusBar.Width(m.width).Render(" " + help + "  |  " + picked)
}
