package session

import (
	"fmt"

	"github.com/chatmux-tools/chatmux/internal/config"
	"github.com/chatmux-tools/chatmux/internal/sandbox"
	"github.com/chatmux-tools/chatmux/internal/shell"
	"github.com/chatmux-tools/chatmux/internal/store"
)

type Deps struct {
	Load      func(path string) (*sandbox.Scenario, error)
	NewEngine func(s *sandbox.Scenario) (*sandbox.Engine, func(), error)
	ConfigGet func(key string) (string, bool)
	RunShell  func(e *sandbox.Engine, persona string) error
	Printf    func(string, ...any) (int, error)
	Println   func(...any) (int, error)
}

func DefaultDeps() Deps {
	return Deps{
		Load:      sandbox.Load,
		NewEngine: openEngine,
		ConfigGet: config.Get,
		RunShell:  shell.Run,
		Printf:    fmt.Printf,
		Println:   fmt.Println,
	}
}

// openEngine builds an engine backed by the sandbox database. The
// returned func releases the database handle.
func openEngine(s *sandbox.Scenario) (*sandbox.Engine, func(), error) {
	st, err := store.New(store.DBPath())
	if err != nil {
		return nil, nil, err
	}

	e, err := sandbox.NewEngine(s, st, st)
	if err != nil {
		_ = st.Close()
		return nil, nil, err
	}

	return e, func() { _ = st.Close() }, nil
}
