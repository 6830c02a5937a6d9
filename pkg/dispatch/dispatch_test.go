package dispatch

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// testInvoker records every help line it receives.
type testInvoker struct {
	kind  InvokerKind
	perms map[string]bool
	sent  []string
}

func newTestInvoker(kind InvokerKind, perms ...string) *testInvoker {
	inv := &testInvoker{kind: kind, perms: make(map[string]bool)}
	for _, p := range perms {
		inv.perms[p] = true
	}
	return inv
}

func (i *testInvoker) Kind() InvokerKind            { return i.kind }
func (i *testInvoker) HasPermission(key string) bool { return i.perms[key] }
func (i *testInvoker) SendText(line string)          { i.sent = append(i.sent, line) }

type call struct {
	label string
	args  []string
}

// recordingCommand captures Run and Suggest calls.
type recordingCommand struct {
	runs        []call
	suggested   [][]string
	suggestions []string
	err         error
}

func (c *recordingCommand) Run(inv Invoker, label string, args []string) error {
	c.runs = append(c.runs, call{label: label, args: args})
	return c.err
}

func (c *recordingCommand) Suggest(inv Invoker, label string, tokens []string) []string {
	c.suggested = append(c.suggested, tokens)
	return c.suggestions
}

// buildRoomTree assembles the tree used across dispatch and completion
// tests:
//
//	say (user or console, chat.say, alias tell)
//	├── bold (subcommand, chat.say.bold)
//	└── loud (subcommand, chat.say.loud, alias shout, no description)
//	kick (user only, mod.kick)
//	uptime (console only)
//	ping (any, no permission)
func buildRoomTree(t *testing.T, configure func(*Builder)) (*Handler, map[string]*recordingCommand) {
	t.Helper()

	cmds := map[string]*recordingCommand{
		"say": {}, "bold": {}, "loud": {}, "kick": {}, "uptime": {}, "ping": {},
	}

	say := NewNode(Signature{
		Name:        "say",
		Aliases:     []string{"tell"},
		Kind:        KindUserOrConsole,
		Permission:  "chat.say",
		Arguments:   "<message>",
		Description: "Send a message to the room",
	}, cmds["say"])
	bold := NewNode(Signature{
		Name:        "bold",
		Kind:        KindSubcommand,
		Permission:  "chat.say.bold",
		Arguments:   "<message>",
		Description: "Send a bolded message",
	}, cmds["bold"])
	loud := NewNode(Signature{
		Name:       "loud",
		Aliases:    []string{"shout"},
		Kind:       KindSubcommand,
		Permission: "chat.say.loud",
		Arguments:  "<message>",
	}, cmds["loud"])
	require.NoError(t, say.AttachSub(bold))
	require.NoError(t, say.AttachSub(loud))

	kick := NewNode(Signature{
		Name:        "kick",
		Kind:        KindUserOnly,
		Permission:  "mod.kick",
		Arguments:   "<target>",
		Description: "Remove a participant",
	}, cmds["kick"])
	uptime := NewNode(Signature{
		Name:        "uptime",
		Kind:        KindConsoleOnly,
		Description: "Show server uptime",
	}, cmds["uptime"])
	ping := NewNode(Signature{
		Name:        "ping",
		Kind:        KindAny,
		Description: "Measure latency",
	}, cmds["ping"])

	b := NewBuilder()
	if configure != nil {
		configure(b)
	}
	require.NoError(t, b.Add(say))
	require.NoError(t, b.Add(kick))
	require.NoError(t, b.Add(uptime))
	require.NoError(t, b.Add(ping))
	return b.Build(), cmds
}

func TestDispatch_SimpleCommand(t *testing.T) {
	h, cmds := buildRoomTree(t, nil)
	inv := newTestInvoker(InvokerUser)

	require.NoError(t, h.Dispatch(inv, "room", []string{"ping"}))
	require.Len(t, cmds["ping"].runs, 1)
	require.Equal(t, "room", cmds["ping"].runs[0].label)
	require.Empty(t, cmds["ping"].runs[0].args)
}

func TestDispatch_ResidualArguments(t *testing.T) {
	h, cmds := buildRoomTree(t, nil)
	inv := newTestInvoker(InvokerUser, "chat.say")

	require.NoError(t, h.Dispatch(inv, "room", []string{"say", "hello", "world"}))
	require.Len(t, cmds["say"].runs, 1)
	require.Equal(t, []string{"hello", "world"}, cmds["say"].runs[0].args)
}

func TestDispatch_DescendsIntoSubcommand(t *testing.T) {
	h, cmds := buildRoomTree(t, nil)
	inv := newTestInvoker(InvokerUser, "chat.say", "chat.say.bold")

	require.NoError(t, h.Dispatch(inv, "room", []string{"say", "bold", "hi"}))
	require.Empty(t, cmds["say"].runs)
	require.Len(t, cmds["bold"].runs, 1)
	require.Equal(t, []string{"hi"}, cmds["bold"].runs[0].args)
}

func TestDispatch_CaseInsensitiveNamesAndAliases(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		target string
	}{
		{"upper name", []string{"SAY", "x"}, "say"},
		{"mixed alias", []string{"Tell", "x"}, "say"},
		{"subcommand name", []string{"say", "BOLD", "x"}, "bold"},
		{"subcommand alias", []string{"say", "Shout", "x"}, "loud"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, cmds := buildRoomTree(t, nil)
			inv := newTestInvoker(InvokerUser, "chat.say", "chat.say.bold", "chat.say.loud")

			require.NoError(t, h.Dispatch(inv, "room", tt.tokens))
			require.Len(t, cmds[tt.target].runs, 1)
		})
	}
}

func TestDispatch_EmptyTokensFiresNoArguments(t *testing.T) {
	fired := 0
	h, cmds := buildRoomTree(t, func(b *Builder) {
		require.NoError(t, b.SetHooks(Hooks{
			NoArguments: func(Invoker) bool { fired++; return false },
		}))
	})
	inv := newTestInvoker(InvokerUser)

	require.NoError(t, h.Dispatch(inv, "room", nil))
	require.Equal(t, 1, fired)
	require.Empty(t, inv.sent)
	for _, cmd := range cmds {
		require.Empty(t, cmd.runs)
	}
}

func TestDispatch_EmptyTokensDefaultShowsHelp(t *testing.T) {
	h, _ := buildRoomTree(t, nil)
	inv := newTestInvoker(InvokerConsole, "chat.say")

	require.NoError(t, h.Dispatch(inv, "room", []string{}))
	require.NotEmpty(t, inv.sent)
	require.Contains(t, inv.sent[0], "page: 0")
}

func TestDispatch_UnknownCommand(t *testing.T) {
	var attempted string
	h, _ := buildRoomTree(t, func(b *Builder) {
		require.NoError(t, b.SetHooks(Hooks{
			NoSuchCommand: func(_ Invoker, token string) bool {
				attempted = token
				return false
			},
		}))
	})
	inv := newTestInvoker(InvokerUser)

	require.NoError(t, h.Dispatch(inv, "room", []string{"dance", "hard"}))
	require.Equal(t, "dance", attempted)
	require.Empty(t, inv.sent)
}

func TestDispatch_TopLevelKindDenied(t *testing.T) {
	var denied []Signature
	h, cmds := buildRoomTree(t, func(b *Builder) {
		require.NoError(t, b.SetHooks(Hooks{
			NoInvokerKind: func(_ Invoker, sig Signature) bool {
				denied = append(denied, sig)
				return true
			},
		}))
	})
	inv := newTestInvoker(InvokerUser)

	require.NoError(t, h.Dispatch(inv, "room", []string{"uptime"}))
	require.Empty(t, cmds["uptime"].runs)
	require.Len(t, denied, 1)
	require.Equal(t, "uptime", denied[0].Name)
	// Hook returned true, so the focused view was rendered.
	require.Contains(t, inv.sent, "Name > uptime")
}

func TestDispatch_TopLevelPermissionDenied(t *testing.T) {
	fired := 0
	h, cmds := buildRoomTree(t, func(b *Builder) {
		require.NoError(t, b.SetHooks(Hooks{
			NoPermission: func(_ Invoker, sig Signature) bool { fired++; return false },
		}))
	})
	inv := newTestInvoker(InvokerUser)

	require.NoError(t, h.Dispatch(inv, "room", []string{"kick", "bob"}))
	require.Empty(t, cmds["kick"].runs)
	require.Equal(t, 1, fired)
	require.Empty(t, inv.sent)
}

func TestDispatch_KindCheckedBeforePermission(t *testing.T) {
	kindFired, permFired := 0, 0
	h, _ := buildRoomTree(t, func(b *Builder) {
		require.NoError(t, b.SetHooks(Hooks{
			NoInvokerKind: func(_ Invoker, _ Signature) bool { kindFired++; return false },
			NoPermission:  func(_ Invoker, _ Signature) bool { permFired++; return false },
		}))
	})
	// kick is user-only AND permission-guarded; a console invoker
	// without the permission must fail on kind alone.
	inv := newTestInvoker(InvokerConsole)

	require.NoError(t, h.Dispatch(inv, "room", []string{"kick", "bob"}))
	require.Equal(t, 1, kindFired)
	require.Zero(t, permFired)
}

func TestDispatch_DeniedSubcommandRejectsInvocation(t *testing.T) {
	var denied []Signature
	h, cmds := buildRoomTree(t, func(b *Builder) {
		require.NoError(t, b.SetHooks(Hooks{
			NoPermission: func(_ Invoker, sig Signature) bool {
				denied = append(denied, sig)
				return true
			},
		}))
	})
	inv := newTestInvoker(InvokerUser, "chat.say")

	require.NoError(t, h.Dispatch(inv, "room", []string{"say", "bold", "x"}))
	require.Empty(t, cmds["say"].runs)
	require.Empty(t, cmds["bold"].runs)
	require.Len(t, denied, 1)
	require.Equal(t, "bold", denied[0].Name)
	// Focused help describes the denied subcommand.
	require.Contains(t, inv.sent, "Name > bold")
	require.Contains(t, inv.sent, "Permission > chat.say.bold")
}

func TestDispatch_RunLastAllowedFallsBackToParent(t *testing.T) {
	fired := 0
	h, cmds := buildRoomTree(t, func(b *Builder) {
		require.NoError(t, b.RunLastAllowed(true))
		require.NoError(t, b.SetHooks(Hooks{
			NoPermission: func(_ Invoker, _ Signature) bool { fired++; return true },
		}))
	})
	inv := newTestInvoker(InvokerUser, "chat.say")

	require.NoError(t, h.Dispatch(inv, "room", []string{"say", "bold", "x"}))
	require.Len(t, cmds["say"].runs, 1)
	require.Equal(t, []string{"bold", "x"}, cmds["say"].runs[0].args)
	require.Empty(t, cmds["bold"].runs)
	// The fallback is silent: no hook, no help.
	require.Zero(t, fired)
	require.Empty(t, inv.sent)
}

func TestDispatch_UnmatchedTokenIsArgumentNotError(t *testing.T) {
	h, cmds := buildRoomTree(t, nil)
	inv := newTestInvoker(InvokerUser, "chat.say")

	// "bolt" matches no subcommand of say; say receives it verbatim.
	require.NoError(t, h.Dispatch(inv, "room", []string{"say", "bolt", "x"}))
	require.Len(t, cmds["say"].runs, 1)
	require.Equal(t, []string{"bolt", "x"}, cmds["say"].runs[0].args)
}

func TestDispatch_RunErrorPropagates(t *testing.T) {
	h, cmds := buildRoomTree(t, nil)
	boom := errors.New("boom")
	cmds["ping"].err = boom
	inv := newTestInvoker(InvokerUser)

	require.ErrorIs(t, h.Dispatch(inv, "room", []string{"ping"}), boom)
}

func TestDispatch_HelpRouting(t *testing.T) {
	configure := func(b *Builder) {
		require.NoError(t, b.EnableHelp(true))
		require.NoError(t, b.PageSize(100))
	}

	t.Run("bare help lists page zero", func(t *testing.T) {
		h, _ := buildRoomTree(t, configure)
		inv := newTestInvoker(InvokerConsole, "chat.say")
		require.NoError(t, h.Dispatch(inv, "room", []string{"help"}))
		require.NotEmpty(t, inv.sent)
		require.Contains(t, inv.sent[0], "page: 0")
	})

	t.Run("help is case-insensitive", func(t *testing.T) {
		h, _ := buildRoomTree(t, configure)
		for _, token := range []string{"HELP", "Help", "help"} {
			inv := newTestInvoker(InvokerConsole)
			require.NoError(t, h.Dispatch(inv, "room", []string{token}))
			require.NotEmpty(t, inv.sent)
			require.Contains(t, inv.sent[0], "page: 0")
		}
	})

	t.Run("numeric second token selects page", func(t *testing.T) {
		h, _ := buildRoomTree(t, configure)
		inv := newTestInvoker(InvokerConsole)
		require.NoError(t, h.Dispatch(inv, "room", []string{"help", "2"}))
		require.Contains(t, inv.sent[0], "page: 2")
	})

	t.Run("command name beats page parsing", func(t *testing.T) {
		h, _ := buildRoomTree(t, configure)
		inv := newTestInvoker(InvokerConsole, "chat.say")
		require.NoError(t, h.Dispatch(inv, "room", []string{"help", "say"}))
		require.Contains(t, inv.sent, "Name > say")
	})

	t.Run("unparseable page falls back to zero", func(t *testing.T) {
		h, _ := buildRoomTree(t, configure)
		inv := newTestInvoker(InvokerConsole)
		require.NoError(t, h.Dispatch(inv, "room", []string{"help", "bogus"}))
		require.Contains(t, inv.sent[0], "page: 0")
	})

	t.Run("help disabled falls through to lookup", func(t *testing.T) {
		var attempted string
		h, _ := buildRoomTree(t, func(b *Builder) {
			require.NoError(t, b.SetHooks(Hooks{
				NoSuchCommand: func(_ Invoker, token string) bool {
					attempted = token
					return false
				},
			}))
		})
		inv := newTestInvoker(InvokerConsole)
		require.NoError(t, h.Dispatch(inv, "room", []string{"help"}))
		require.Equal(t, "help", attempted)
	})
}

func TestDispatch_SubcommandKindAdmitsAnyInvoker(t *testing.T) {
	// Invoker-kind restrictions gate the top level only; a console
	// reaching a subcommand below a user-or-console parent is fine as
	// long as permissions hold.
	h, cmds := buildRoomTree(t, nil)
	inv := newTestInvoker(InvokerConsole, "chat.say", "chat.say.loud")

	require.NoError(t, h.Dispatch(inv, "room", []string{"say", "loud", "hey"}))
	require.Len(t, cmds["loud"].runs, 1)
}
