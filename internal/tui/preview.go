package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/matheuskafuri/aidash/internal/render"
)

func renderPreview(card *render.Card, width, height int) string {
	if card == nil {
		return ""
	}

	contentWidth := width - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	title := previewTitleStyle.Width(contentWidth).Render(card.Title)
	source := previewSourceStyle.Render(card.SourceName + " " + saveIcon(*card))

	image := placeholderStyle.Render("[ no image ]")
	if !card.Placeholder {
		image = placeholderStyle.Render("image: " + truncateStr(card.ImageURL, contentWidth-7))
	}

	desc := card.Description
	if desc == "" {
		desc = "(No description available)"
	}
	body := previewBodyStyle.Width(contentWidth).Render(wrapText(desc, contentWidth))

	parts := []string{title, source, image, "", body}
	if len(card.Tags) > 0 {
		parts = append(parts, "", itemTagStyle.Render("#"+strings.Join(card.Tags, "  #")))
	}
	parts = append(parts, previewLinkStyle.Width(contentWidth).Render("Read more: "+card.URL))

	content := lipgloss.JoinVertical(lipgloss.Left, parts...)

	lines := strings.Split(content, "\n")
	if len(lines) < height {
		lines = append(lines, make([]string, height-len(lines))...)
	} else if len(lines) > height {
		lines = lines[:height]
	}

	return strings.Join(lines, "\n")
}

func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
		} else {
			line += " " + w
		}
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}
