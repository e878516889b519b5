package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/matheuskafuri/aidash/internal/render"
)

func renderBadges(badges []render.Badge) string {
	parts := make([]string, len(badges))
	for i, b := range badges {
		style := badgePendingStyle
		switch b.State {
		case render.BadgeSuccess:
			style = badgeSuccessStyle
		case render.BadgeError:
			style = badgeErrorStyle
		}
		s := style.Render("● " + b.Name)
		if b.CountText != "" {
			s += " " + badgeCountStyle.Render(b.CountText)
		}
		parts[i] = s
	}
	return " " + strings.Join(parts, "   ")
}

func renderStatusBar(grid render.Grid, width int, refreshing bool, hints string) string {
	left := fmt.Sprintf(" %d articles · %d saved", grid.Counts.All, grid.Counts.Saved)
	if refreshing {
		left += " (refreshing...)"
	}

	right := " " + hints + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + fmt.Sprintf("%*s", gap, "") + right

	return statusBarStyle.Width(width).Render(bar)
}
