package splitpanel

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/chatmux-tools/chatmux/internal/ui/style"
)

// Panel holds the visible slice of one pane plus the scroll state
// needed to draw its scrollbar.
type Panel struct {
	Lines      []string // content lines, already windowed to the visible region
	ScrollPos  int      // scroll offset within TotalItems
	TotalItems int      // total scrollable items behind the window
}

// Config controls how the horizontal space is divided.
type Config struct {
	SidebarWidthPercent float64 // e.g. 0.25 for 25%
	SidebarMinWidth     int
	SidebarMaxWidth     int
}

// Layout computes pane widths once per resize and renders the split.
type Layout struct {
	Width        int
	Height       int
	SidebarWidth int
	ContentWidth int
	FocusSidebar bool
	Colors       style.ColorConfig
}

// NewLayout calculates pane widths for the given terminal width.
func NewLayout(width int, cfg Config, colors style.ColorConfig) *Layout {
	sidebarWidth := int(float64(width) * cfg.SidebarWidthPercent)
	sidebarWidth = max(sidebarWidth, cfg.SidebarMinWidth)
	sidebarWidth = min(sidebarWidth, cfg.SidebarMaxWidth)

	return &Layout{
		Width:        width,
		SidebarWidth: sidebarWidth,
		ContentWidth: width - sidebarWidth,
		Colors:       colors,
	}
}

// SetFocus moves the focus highlight between sidebar and content.
func (l *Layout) SetFocus(focusSidebar bool) {
	l.FocusSidebar = focusSidebar
}

// Render draws both panes side by side at the given height.
func (l *Layout) Render(sidebar, content Panel, height int) string {
	l.Height = height
	active := lipgloss.Color(l.Colors.UIActive)
	dim := lipgloss.Color(l.Colors.UIDim)

	sidebarStr := l.buildPanel(sidebar, l.SidebarWidth, height, l.FocusSidebar, active, dim)
	contentStr := l.buildPanel(content, l.ContentWidth, height, !l.FocusSidebar, active, dim)

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebarStr, contentStr)
}

// buildPanel draws one bordered pane with its scrollbar column.
func (l *Layout) buildPanel(panel Panel, width, height int, focused bool, activeColor, dimColor lipgloss.Color) string {
	// Inner width = pane width - border(2) - padding(2) - scrollbar(2).
	contentWidth := max(width-6, 1)
	visibleHeight := max(height-2, 1)

	lines := panel.Lines
	if len(lines) > visibleHeight {
		lines = lines[:visibleHeight]
	}
	for len(lines) < visibleHeight {
		lines = append(lines, "")
	}

	totalItems := panel.TotalItems
	if totalItems == 0 {
		totalItems = len(panel.Lines)
	}
	scrollbar := BuildScrollbar(visibleHeight, totalItems, panel.ScrollPos, activeColor, dimColor, focused)

	var rows []string
	for i, line := range lines {
		lineWidth := lipgloss.Width(line)
		if lineWidth > contentWidth {
			line = truncate(line, contentWidth)
		} else if lineWidth < contentWidth {
			line = line + strings.Repeat(" ", contentWidth-lineWidth)
		}

		scrollChar := " "
		if i < len(scrollbar) {
			scrollChar = scrollbar[i]
		}
		rows = append(rows, line+" "+scrollChar)
	}

	borderColor := dimColor
	if focused {
		borderColor = activeColor
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1)

	return box.Render(strings.Join(rows, "\n"))
}

// truncate shortens a styled line to maxWidth, ending in an ellipsis.
func truncate(s string, maxWidth int) string {
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	runes := []rune(s)
	for i := len(runes); i > 0; i-- {
		candidate := string(runes[:i])
		if lipgloss.Width(candidate) <= maxWidth-3 {
			return candidate + "..."
		}
	}
	return "..."
}

// SidebarContentWidth returns the usable width inside the sidebar pane.
func (l *Layout) SidebarContentWidth() int {
	return l.SidebarWidth - 6 // border(2) + padding(2) + scrollbar(2)
}

// MainContentWidth returns the usable width inside the content pane.
func (l *Layout) MainContentWidth() int {
	return l.ContentWidth - 6
}

// VisibleHeight returns how many lines fit inside a pane.
func (l *Layout) VisibleHeight() int {
	return l.Height - 2
}
