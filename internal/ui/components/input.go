package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/chatmux-tools/chatmux/internal/ui/style"
)

// NewThemedInput returns a focused single-line input styled from the
// active theme. The prompt is left for the caller to set.
func NewThemedInput(placeholder string) textinput.Model {
	colors := style.GetColors()

	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 512
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colors.UIActive))
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colors.UIDim))
	ti.Focus()
	return ti
}
