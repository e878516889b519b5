package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/matheuskafuri/aidash/internal/render"
)

func renderIndicators(slides []render.Slide) string {
	dots := make([]string, len(slides))
	for i, s := range slides {
		if s.Active {
			dots[i] = indicatorActiveStyle.Render("●")
		} else {
			dots[i] = indicatorInactiveStyle.Render("○")
		}
	}
	return strings.Join(dots, " ")
}

// renderCarousel draws the active slide. It returns "" when there is nothing
// to feature so the caller can drop the section entirely.
func renderCarousel(slides []render.Slide, width int) string {
	var active *render.Slide
	for i := range slides {
		if slides[i].Active {
			active = &slides[i]
			break
		}
	}
	if active == nil {
		return ""
	}

	inner := width - 4
	if inner < 20 {
		inner = 20
	}

	meta := itemSourceStyle.Render("FEATURED · "+active.SourceName) + " " + saveIcon(active.Card)
	title := carouselTitleStyle.Render(truncateStr(active.Title, inner))
	image := placeholderStyle.Render("image: " + truncateStr(active.ImageURL, inner-7))

	lines := []string{meta, title}
	if active.Description != "" {
		desc := strings.Split(wrapText(active.Description, inner), "\n")
		if len(desc) > 2 {
			desc = desc[:2]
			desc[1] = truncateStr(desc[1], inner-3) + "..."
		}
		lines = append(lines, previewBodyStyle.Render(strings.Join(desc, "\n")))
	}
	if len(active.Tags) > 0 {
		lines = append(lines, itemTagStyle.Render("#"+strings.Join(active.Tags, "  #")))
	}
	lines = append(lines, image, "", indicatorActiveStyle.Render("‹ ")+renderIndicators(slides)+indicatorActiveStyle.Render(" ›"))

	return carouselStyle.Width(width - 2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
