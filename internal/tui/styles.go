package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, the subset the app draws with.
const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorLavender lipgloss.Color = "#b4befe"
	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface2 lipgloss.Color = "#585b70"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
)

const (
	colorAccent  = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorMuted   = colorSubtext0
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	nameStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	owesYouStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	youOweStyle  = lipgloss.NewStyle().Foreground(colorError)
	labelStyle   = lipgloss.NewStyle().Foreground(colorText)
	buttonStyle  = lipgloss.NewStyle().Foreground(colorMantle).Background(colorAccent).Padding(0, 1)

	selectedRowStyle = lipgloss.NewStyle().Background(colorSurface0)
	cursorStyle      = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)

	paneStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorSurface2).Padding(0, 1)
	focusedPaneStyle = paneStyle.BorderForeground(colorFocus)

	statusBarStyle    = lipgloss.NewStyle().Foreground(colorSuccess).Background(colorSurface0)
	statusErrBarStyle = lipgloss.NewStyle().Foreground(colorError).Background(colorSurface0)
	footerStyle       = lipgloss.NewStyle().Background(colorMantle)
	keyStyle          = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Background(colorMantle)
	helpDescStyle     = lipgloss.NewStyle().Foreground(colorOverlay1).Background(colorMantle)
)

func pane(focused bool) lipgloss.Style {
	if focused {
		return focusedPaneStyle
	}
	return paneStyle
}
