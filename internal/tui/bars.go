package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func renderFooter(bindings []key.Binding, width int) string {
	space := lipgloss.NewStyle().Background(colorMantle).Render(" ")
	sep := lipgloss.NewStyle().Background(colorMantle).Render("  ")

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" && h.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(h.Key)+space+helpDescStyle.Render(h.Desc))
	}
	return renderBar(footerStyle, width, strings.Join(parts, sep))
}

func renderStatusBar(status string, isErr bool, width int) string {
	msg := strings.TrimSpace(status)
	if msg == "" {
		msg = "Ready"
	}
	if isErr {
		return renderBar(statusErrBarStyle, width, msg)
	}
	return renderBar(statusBarStyle, width, msg)
}

// renderBar draws text on a single full-width line, truncating on overflow.
func renderBar(style lipgloss.Style, width int, text string) string {
	width = max(1, width)
	line := strings.ReplaceAll(text, "\n", " ")
	line = ansi.Truncate(line, width, "")
	if w := ansi.StringWidth(line); w < width {
		line += strings.Repeat(" ", width-w)
	}
	return style.Width(width).MaxWidth(width).Render(line)
}
