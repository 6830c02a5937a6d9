package session

import (
	"github.com/chatmux-tools/chatmux/internal/cli"
	"github.com/chatmux-tools/chatmux/internal/sandbox"
	"github.com/chatmux-tools/chatmux/internal/usage"
)

// Eval runs one invocation against a scenario and prints what the
// persona would see.
func Eval(args []string, flags *cli.ParsedFlags) error {
	return eval(args, flags, DefaultDeps())
}

func eval(args []string, _ *cli.ParsedFlags, deps Deps) error {
	if len(args) < 2 {
		return usage.MissingArgument("scenario persona")
	}

	s, err := deps.Load(args[0])
	if err != nil {
		return err
	}

	e, done, err := deps.NewEngine(s)
	if err != nil {
		return err
	}
	defer done()

	transcript := &sandbox.Transcript{}
	p, err := e.Persona(args[1], transcript)
	if err != nil {
		return err
	}

	dispatchErr := e.Dispatch(p, args[2:])

	// The transcript is worth printing even when the command failed
	for _, line := range transcript.Lines() {
		_, _ = deps.Println(line)
	}

	return dispatchErr
}
