package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/splitbill/internal/friends"
)

const maxImageWidth = 48

// panelCaption is the label of the add-friend toggle button.
func panelCaption(open bool) string {
	if open {
		return "close"
	}
	return "Add Friend"
}

// rowCaption is the label of a row's select toggle.
func rowCaption(selected bool) string {
	if selected {
		return "Close"
	}
	return "Select"
}

func isActive(f friends.Friend, active *friends.Friend) bool {
	return active != nil && active.ID == f.ID
}

// renderFriendList draws one row per friend. It reads only its arguments.
func renderFriendList(list []friends.Friend, active *friends.Friend, cursor int, currency string) string {
	if len(list) == 0 {
		return mutedStyle.Render("No friends yet. Press a to add one.")
	}
	rows := make([]string, 0, len(list))
	for i, f := range list {
		rows = append(rows, renderFriendRow(f, isActive(f, active), i == cursor, currency))
	}
	return strings.Join(rows, "\n")
}

func renderFriendRow(f friends.Friend, selected, underCursor bool, currency string) string {
	marker := "  "
	if underCursor {
		marker = cursorStyle.Render("▶ ")
	}

	statusStyle := mutedStyle
	switch {
	case f.Owes():
		statusStyle = owesYouStyle
	case f.Owed():
		statusStyle = youOweStyle
	}

	head := fmt.Sprintf("%s%s %s  %s", marker, avatar(f), nameStyle.Render(f.Name), buttonStyle.Render(rowCaption(selected)))
	line := "    " + statusStyle.Render(friends.Status(f, currency))
	image := "    " + mutedStyle.Render(ansi.Truncate(f.Image, maxImageWidth, "…"))
	row := lipgloss.JoinVertical(lipgloss.Left, head, line, image)
	if selected {
		return selectedRowStyle.Render(row)
	}
	return row
}

// avatar stands in for the friend's picture with their initial.
func avatar(f friends.Friend) string {
	initial := "?"
	if name := strings.TrimSpace(f.Name); name != "" {
		initial = strings.ToUpper(string([]rune(name)[:1]))
	}
	return mutedStyle.Render("(" + initial + ")")
}

func renderTotals(r *friends.Registry, currency string) string {
	owed, owe := r.Totals()
	return mutedStyle.Render("owed to you ") + owesYouStyle.Render(owed.String()+currency) +
		mutedStyle.Render(" · you owe ") + youOweStyle.Render(owe.String()+currency)
}
