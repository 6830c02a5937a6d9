package shell

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/chatmux-tools/chatmux/internal/ui/components"
	"github.com/chatmux-tools/chatmux/internal/ui/splitpanel"
)

const (
	headerHeight = 1
	inputHeight  = 1
	footerHeight = 1
)

// View implements tea.Model
func (m playModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	mainHeight := m.height - headerHeight - inputHeight - footerHeight
	if mainHeight < 3 {
		mainHeight = 3
	}

	cfg := splitpanel.Config{
		SidebarWidthPercent: 0.20,
		SidebarMinWidth:     18,
		SidebarMaxWidth:     26,
	}
	layout := splitpanel.NewLayout(m.width, cfg, m.colors)
	layout.SetFocus(false)

	personaPanel := m.buildPersonaPanel()
	transcriptPanel := m.buildTranscriptPanel(mainHeight)

	header := m.renderHeader()
	main := layout.Render(personaPanel, transcriptPanel, mainHeight)
	inputLine := lipgloss.NewStyle().Width(m.width).Padding(0, 1).Render(m.input.View())
	footer := m.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, main, inputLine, footer)
}

func (m playModel) renderHeader() string {
	colors := m.colors
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colors.Info))
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Muted))
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colors.UIActive))

	title := titleStyle.Render("chatmux play")
	scenario := mutedStyle.Render("scenario: ") + activeStyle.Render(m.engine.Scenario().Name)
	speaking := mutedStyle.Render("as: ") + activeStyle.Render(m.persona.Name())

	headerContent := title +
		mutedStyle.Render(" | ") + scenario +
		mutedStyle.Render(" | ") + speaking

	// Position indicator
	if len(m.lines) > 0 {
		last := min(m.visibleStart()+m.transcriptHeight(), len(m.lines))
		headerContent += mutedStyle.Render(" | ") +
			activeStyle.Render(fmt.Sprintf("%d", last)) +
			mutedStyle.Render(fmt.Sprintf("/%d", len(m.lines)))
	}

	headerStyle := lipgloss.NewStyle().
		Width(m.width).
		Padding(0, 1)

	return headerStyle.Render(headerContent)
}

func (m playModel) buildPersonaPanel() splitpanel.Panel {
	colors := m.colors
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colors.Success))
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Muted))
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colors.UIActive))

	var lines []string
	lines = append(lines, headerStyle.Render("PERSONAS"))
	lines = append(lines, "")

	for _, spec := range m.engine.Scenario().Personas {
		marker := "  "
		nameStyle := mutedStyle
		if spec.Name == m.persona.Name() {
			marker = "> "
			nameStyle = activeStyle
		}
		lines = append(lines, marker+nameStyle.Render(spec.Name))
		lines = append(lines, "  "+mutedStyle.Render(personaKindLabel(spec.Kind)))
	}

	return splitpanel.Panel{
		Lines:      lines,
		ScrollPos:  0,
		TotalItems: len(lines),
	}
}

func (m playModel) buildTranscriptPanel(mainHeight int) splitpanel.Panel {
	visibleHeight := mainHeight - 2
	start := m.visibleStart()

	var visible []string
	if len(m.lines) == 0 {
		emptyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.colors.Muted)).Italic(true)
		visible = append(visible, emptyStyle.Render("Nothing yet. Type a command below."))
	} else {
		end := min(start+visibleHeight, len(m.lines))
		visible = m.lines[start:end]
	}

	return splitpanel.Panel{
		Lines:      visible,
		ScrollPos:  start,
		TotalItems: len(m.lines),
	}
}

func (m playModel) renderFooter() string {
	help := components.NewThemedHelp()

	bindings := []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "send")),
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("Tab", "complete")),
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "scroll")),
		key.NewBinding(key.WithKeys(""), key.WithHelp("/help", "shell keys")),
		key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("Ctrl+C", "quit")),
	}

	footerStyle := lipgloss.NewStyle().
		Width(m.width).
		Padding(0, 1)

	return footerStyle.Render(help.ShortHelpView(bindings))
}

func (m playModel) mutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(m.colors.Muted))
}

func (m playModel) errorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(m.colors.Error))
}

func (m playModel) promptStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.colors.UIActive))
}
