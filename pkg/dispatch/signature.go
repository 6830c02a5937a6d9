package dispatch

import "strings"

// InvokerKind classifies the actor behind an invocation.
type InvokerKind int

const (
	// InvokerOther covers actors that are neither interactive users nor
	// consoles (automation, bridges, plugins).
	InvokerOther InvokerKind = iota
	// InvokerUser is an interactive end user (chat participant, player).
	InvokerUser
	// InvokerConsole is a privileged operator console or server process.
	InvokerConsole
)

func (k InvokerKind) String() string {
	switch k {
	case InvokerUser:
		return "user"
	case InvokerConsole:
		return "console"
	default:
		return "other"
	}
}

// CommandKind restricts which invoker kinds may reach a command
// directly. The restriction applies to top-level commands only:
// subcommands always carry KindSubcommand, which admits every invoker
// kind and leaves permissions as the sole gate below the first level.
type CommandKind int

const (
	// KindAny admits every invoker kind.
	KindAny CommandKind = iota
	// KindUserOnly admits InvokerUser.
	KindUserOnly
	// KindConsoleOnly admits InvokerConsole.
	KindConsoleOnly
	// KindUserOrConsole admits InvokerUser and InvokerConsole.
	KindUserOrConsole
	// KindSubcommand marks a command as attachable below another
	// command and never registrable at the top level.
	KindSubcommand
)

func (k CommandKind) String() string {
	switch k {
	case KindAny:
		return "any"
	case KindUserOnly:
		return "user"
	case KindConsoleOnly:
		return "console"
	case KindUserOrConsole:
		return "user or console"
	case KindSubcommand:
		return "subcommand"
	default:
		return "unknown"
	}
}

// Admits reports whether an invoker of the given kind passes the
// restriction. KindAny and KindSubcommand admit everything.
func (k CommandKind) Admits(inv InvokerKind) bool {
	switch k {
	case KindUserOnly:
		return inv == InvokerUser
	case KindConsoleOnly:
		return inv == InvokerConsole
	case KindUserOrConsole:
		return inv == InvokerUser || inv == InvokerConsole
	default:
		return true
	}
}

// Signature is the immutable metadata attached to a command node:
// identity (Name, Aliases), access policy (Kind, Permission) and
// display strings (Arguments, Description). Within one sibling set,
// names and aliases are unique case-insensitively; the builder and
// AttachSub reject violations at registration time.
type Signature struct {
	Name        string
	Aliases     []string
	Kind        CommandKind
	Permission  string // "" means unrestricted
	Arguments   string // display hint, e.g. "<message>"
	Description string
}

// Matches reports whether token equals the name or any alias,
// case-insensitively.
func (s Signature) Matches(token string) bool {
	if strings.EqualFold(s.Name, token) {
		return true
	}
	for _, alias := range s.Aliases {
		if strings.EqualFold(alias, token) {
			return true
		}
	}
	return false
}
