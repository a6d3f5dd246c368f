package tui

import (
	"github.com/charmbracelet/lipgloss"

	"boltgen/internal/palette"
)

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color(palette.Violet.Hex())
	warnFg    = lipgloss.Color(palette.Amber.Hex())
	borderCol = lipgloss.Color("#243141")

	appStyle   = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
	warnStyle  = lipgloss.NewStyle().Foreground(warnFg)

	startMarker = lipgloss.NewStyle().Foreground(lipgloss.Color(palette.Green.Hex())).Render("●")
	endMarker   = lipgloss.NewStyle().Foreground(lipgloss.Color(palette.Red.Hex())).Render("●")
)
