package components

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/chatmux-tools/chatmux/internal/ui/style"
)

// NewThemedHelp returns a short-help renderer styled from the active theme.
func NewThemedHelp() help.Model {
	colors := style.GetColors()

	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(lipgloss.Color(colors.UIActive))
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(lipgloss.Color(colors.UIDim))
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(lipgloss.Color(colors.UIDim))
	return h
}
