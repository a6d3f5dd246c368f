package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"boltgen/internal/config"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	_, _, canvasW, canvasH := m.layout()
	contentWidth := max(10, m.width)

	// Header
	header := titleStyle.Render(" boltgen ─ lightning path generator ")
	header = lipgloss.NewStyle().Width(contentWidth).Padding(0).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, canvasH-2)
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
	}

	var canvas string
	switch {
	case m.showTable:
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		maxW := min(canvasW, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(canvasH-2, 20))
		box := boxStyle.Width(maxW).Render(m.tbl.View())
		canvas = lipgloss.Place(canvasW, canvasH, lipgloss.Center, lipgloss.Center, box)
	case m.editMode:
		m.ta.SetWidth(canvasW)
		m.ta.SetHeight(min(canvasH, 12))
		keys := dimStyle.Render("keys: " + strings.Join(config.Keys(), " "))
		canvas = lipgloss.NewStyle().Width(canvasW).Height(canvasH).Render(lipgloss.JoinVertical(lipgloss.Left, m.ta.View(), keys))
	default:
		canvas = lipgloss.NewStyle().Width(canvasW).Height(canvasH).Render(m.renderCanvas(canvasW, canvasH))
	}

	var body string
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", canvas)
	} else {
		body = canvas
	}

	// Footer / help
	help := m.renderHelp()
	status := dimStyle.Render(" " + m.status + " ")
	if m.err != nil || (m.done() && !m.bolt.Connected) {
		status = warnStyle.Render(" " + m.status + " ")
	}
	progress := dimStyle.Render(fmt.Sprintf(" %d/%d ", m.revealed, len(m.bolt.Segments)))
	coords := ""
	if m.hovering && m.hoverHasPos {
		coords = dimStyle.Render(fmt.Sprintf("  x=%.2f y=%.2f  ", m.hoverX, m.hoverY))
	}
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, progress)
	spacerW := max(0, contentWidth-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	footer := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Width(contentWidth).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right)),
		lipgloss.NewStyle().Width(contentWidth).Render(help))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"r regenerate",
		"R replay",
		"m mode",
		"space pause",
		"s skip",
		"[/] speed",
		"+/- zoom",
		"Tab presets",
		"p params",
		"a table",
		"e svg",
		"h help",
		"q quit",
	}
	return dimStyle.Render(" " + strings.Join(keys, "  "))
}
