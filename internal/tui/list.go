package tui

import (
	"strings"

	"github.com/matheuskafuri/aidash/internal/render"
)

func saveIcon(c render.Card) string {
	if c.Saved {
		return savedIconStyle.Render(c.SaveIcon())
	}
	return unsavedIconStyle.Render(c.SaveIcon())
}

func renderListItem(c render.Card, selected bool, width int) string {
	if width < 10 {
		width = 30
	}

	var title string
	if selected {
		title = itemSelectedStyle.Render("> " + truncateStr(c.Title, width-6))
	} else {
		title = itemTitleStyle.Render("  " + truncateStr(c.Title, width-6))
	}
	title += " " + saveIcon(c)

	meta := "  " + itemSourceStyle.Render(c.SourceName)
	if len(c.Tags) > 0 {
		meta += " " + itemTagStyle.Render("· "+strings.Join(c.Tags, ", "))
	}

	return title + "\n" + meta
}

func truncateStr(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

func renderList(grid render.Grid, cursor int, height int, width int) string {
	if grid.Empty {
		return lipglossCenter(grid.EmptyMessage, width, height)
	}
	cards := grid.Cards

	// Each item is 2 lines + 1 blank line = 3 lines
	itemHeight := 3
	visible := height / itemHeight
	if visible < 1 {
		visible = 1
	}

	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > len(cards) {
		end = len(cards)
		start = end - visible
		if start < 0 {
			start = 0
		}
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(renderListItem(cards[i], i == cursor, width))
		if i < end-1 {
			b.WriteString("\n\n")
		}
	}

	return b.String()
}

func lipglossCenter(s string, width, height int) string {
	pad := (width - len([]rune(s))) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat("\n", height/3) + strings.Repeat(" ", pad) + emptyStateStyle.Render(s)
}
