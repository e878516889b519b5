package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/matheuskafuri/aidash/internal/render"
	"github.com/matheuskafuri/aidash/internal/repository"
)

// nextFilter cycles all -> saved -> all.
func nextFilter(f repository.Filter) repository.Filter {
	if f == repository.FilterSaved {
		return repository.FilterAll
	}
	return repository.FilterSaved
}

func renderFilterBar(grid render.Grid, width int) string {
	tab := func(label string, count int, active bool) string {
		text := fmt.Sprintf("%s %d", label, count)
		if active {
			return tabActiveStyle.Render(text)
		}
		return tabInactiveStyle.Render(text)
	}

	row := tab("All", grid.Counts.All, grid.Filter != repository.FilterSaved) +
		tabSeparatorStyle.Render(" · ") +
		tab("Saved", grid.Counts.Saved, grid.Filter == repository.FilterSaved)

	barStyle := lipgloss.NewStyle().
		Background(colorSurface).
		Width(width).
		PaddingLeft(1)
	return barStyle.Render(row)
}
