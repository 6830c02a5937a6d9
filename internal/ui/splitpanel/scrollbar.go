package splitpanel

import (
	"github.com/charmbracelet/lipgloss"
)

const (
	scrollThumbChar = "█" // solid block
	scrollTrackChar = "│" // vertical line
)

// BuildScrollbar renders a vertical scrollbar as one cell per row.
// Thumb size and position are proportional to the visible window
// within the total item count. When everything fits, the column is
// left blank.
func BuildScrollbar(viewHeight, totalItems, scrollOffset int, activeColor, trackColor lipgloss.Color, focused bool) []string {
	bar := make([]string, viewHeight)

	if totalItems <= viewHeight {
		for i := range bar {
			bar[i] = " "
		}
		return bar
	}

	thumbSize := (viewHeight * viewHeight) / totalItems
	thumbSize = max(thumbSize, 1)
	thumbSize = min(thumbSize, max(viewHeight-2, 1))

	maxScroll := max(totalItems-viewHeight, 1)
	trackSpace := max(viewHeight-thumbSize, 0)

	thumbPos := 0
	if trackSpace > 0 {
		thumbPos = (scrollOffset * trackSpace) / maxScroll
	}
	thumbPos = max(thumbPos, 0)
	thumbPos = min(thumbPos, trackSpace)

	thumbColor := trackColor
	if focused {
		thumbColor = activeColor
	}
	thumbStyle := lipgloss.NewStyle().Foreground(thumbColor)
	trackStyle := lipgloss.NewStyle().Foreground(trackColor)

	for i := 0; i < viewHeight; i++ {
		if i >= thumbPos && i < thumbPos+thumbSize {
			bar[i] = thumbStyle.Render(scrollThumbChar)
		} else {
			bar[i] = trackStyle.Render(scrollTrackChar)
		}
	}

	return bar
}
