package shell

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/chatmux-tools/chatmux/internal/sandbox"
)

// Run starts the interactive play shell for a loaded scenario, speaking
// as the named persona.
func Run(e *sandbox.Engine, persona string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("the play shell requires an interactive terminal")
	}

	m, err := newPlayModel(e, persona)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}
