package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-timewaster/internal/badges"
)

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// centerBlock centers every line of a multi-line block.
func centerBlock(block string, width int) string {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = centerText(line, width)
	}
	return strings.Join(lines, "\n")
}

// formatDuration renders whole seconds as "1h 02m 03s", "4m 05s" or "12s".
func formatDuration(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60

	switch {
	case h > 0:
		return fmt.Sprintf("%dh %02dm %02ds", h, m, s)
	case m > 0:
		return fmt.Sprintf("%dm %02ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

// popupBox draws the badge announcement box. hint is the last line.
func popupBox(theme Theme, b badges.Badge, more int, hint string) string {
	var body strings.Builder
	body.WriteString(theme.PopupTitle.Render("Badge Unlocked!"))
	body.WriteString("\n\n")
	body.WriteString(theme.PopupText.Render(fmt.Sprintf("%s  %s", b.Icon, b.Name)))
	body.WriteString("\n")
	body.WriteString(theme.Description.Render(b.Description))
	body.WriteString("\n\n")
	if more > 0 {
		body.WriteString(theme.Subtitle.Render(fmt.Sprintf("+%d more waiting", more)))
		body.WriteString("\n")
	}
	body.WriteString(theme.Help.Render(hint))

	return theme.PopupBorder.Render(body.String())
}

// renderPopup puts the badge box in the middle of the screen.
func renderPopup(theme Theme, b badges.Badge, more, width, height int) string {
	box := popupBox(theme, b, more, "press any key")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// renderPopupOver stacks the badge box on top of a running game so the
// game stays visible and playable.
func renderPopupOver(theme Theme, b badges.Badge, more, width int, below string) string {
	box := popupBox(theme, b, more, "keep going, this closes itself")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, box) + "\n" + below
}
