package completions

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chatmux-tools/chatmux/internal/cli"
	"github.com/chatmux-tools/chatmux/internal/completions"
	"github.com/chatmux-tools/chatmux/pkg/dispatch"
)

func testDeps(t *testing.T) (Deps, *[]string) {
	t.Helper()

	var out []string
	deps := Deps{
		Printf: func(format string, a ...any) (int, error) {
			out = append(out, fmt.Sprintf(format, a...))
			return 0, nil
		},
		Println: func(a ...any) (int, error) {
			out = append(out, fmt.Sprintln(a...))
			return 0, nil
		},
	}
	return deps, &out
}

func registerTestHandler(t *testing.T) {
	t.Helper()

	b := dispatch.NewBuilder()
	require.NoError(t, b.EnableHelp(true))
	require.NoError(t, b.CompleteSubcommands(true))

	for _, name := range []string{"play", "eval"} {
		node := dispatch.NewNode(dispatch.Signature{
			Name:        name,
			Description: "run a scenario",
		}, dispatch.Func(func(dispatch.Invoker, string, []string) error { return nil }))
		require.NoError(t, b.Add(node))
	}

	completions.RegisterHandler(b.Build())
}

func TestCompletions_DetectsRunningShell(t *testing.T) {
	t.Setenv("SHELL", "/usr/bin/zsh")
	deps, out := testDeps(t)

	err := completionsCmd(nil, cli.NewParsedFlags(nil), deps)
	require.NoError(t, err)
	require.Contains(t, strings.Join(*out, ""), "~/.zshrc")
}

func TestCompletions_DetectFailure(t *testing.T) {
	t.Setenv("SHELL", "")
	deps, _ := testDeps(t)

	err := completionsCmd(nil, cli.NewParsedFlags(nil), deps)
	require.Error(t, err)
	require.Contains(t, err.Error(), "could not detect shell")
}

func TestCompletions_UnsupportedShell(t *testing.T) {
	deps, _ := testDeps(t)

	err := completionsCmd([]string{"dash"}, cli.NewParsedFlags(nil), deps)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported shell: dash")
}

func TestShellCmd_PrintsInstructions(t *testing.T) {
	deps, out := testDeps(t)

	err := shellCmd(completions.ShellBash, cli.NewParsedFlags(nil), deps)
	require.NoError(t, err)

	joined := strings.Join(*out, "")
	require.Contains(t, joined, "To enable completions")
	require.Contains(t, joined, "~/.bashrc")
	require.Contains(t, joined, `eval "$(`)
}

func TestShellCmd_BashScript(t *testing.T) {
	deps, out := testDeps(t)
	flags := cli.NewParsedFlags([]string{"--script"})

	err := shellCmd(completions.ShellBash, flags, deps)
	require.NoError(t, err)

	joined := strings.Join(*out, "")
	require.Contains(t, joined, "complete -F")
	require.Contains(t, joined, "completions query --")
}

func TestShellCmd_ZshScript(t *testing.T) {
	deps, out := testDeps(t)
	flags := cli.NewParsedFlags([]string{"--script"})

	err := shellCmd(completions.ShellZsh, flags, deps)
	require.NoError(t, err)
	require.Contains(t, strings.Join(*out, ""), "#compdef")
}

func TestShellCmd_FishScript(t *testing.T) {
	deps, out := testDeps(t)
	flags := cli.NewParsedFlags([]string{"--script"})

	err := shellCmd(completions.ShellFish, flags, deps)
	require.NoError(t, err)
	require.Contains(t, strings.Join(*out, ""), "complete -c")
}

func TestQuery_PrintsCandidatesOnePerLine(t *testing.T) {
	registerTestHandler(t)
	deps, out := testDeps(t)

	err := query([]string{""}, cli.NewParsedFlags(nil), deps)
	require.NoError(t, err)

	joined := strings.Join(*out, "")
	require.Contains(t, joined, "play\n")
	require.Contains(t, joined, "eval\n")
	require.Contains(t, joined, "help\n")
}

func TestQuery_NoCandidatesPrintsNothing(t *testing.T) {
	registerTestHandler(t)
	deps, out := testDeps(t)

	err := query([]string{"nosuch", "sub", ""}, cli.NewParsedFlags(nil), deps)
	require.NoError(t, err)
	require.Empty(t, *out)
}
