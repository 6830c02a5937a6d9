package dispatch

// Invoker is the actor issuing an invocation. The host supplies one
// per dispatch call; the framework never constructs invokers itself.
type Invoker interface {
	// Kind classifies the invoker for CommandKind restrictions.
	Kind() InvokerKind
	// HasPermission reports whether the invoker holds the capability
	// key. It is only consulted for non-empty permission strings.
	HasPermission(key string) bool
	// SendText delivers one line of generated help output. Resolution
	// itself never calls it.
	SendText(line string)
}

// Command is the business logic behind a node.
type Command interface {
	// Run handles a resolved invocation. label is the host-side label
	// the invocation arrived under, args are the tokens left after
	// routing, passed through verbatim.
	Run(inv Invoker, label string, args []string) error
	// Suggest returns completion candidates for a partially typed
	// invocation. It receives the full token slice including routing
	// tokens. A nil result means "no opinion".
	Suggest(inv Invoker, label string, tokens []string) []string
}

// Func adapts a bare function into a Command with no completion
// opinion.
type Func func(inv Invoker, label string, args []string) error

func (f Func) Run(inv Invoker, label string, args []string) error {
	return f(inv, label, args)
}

func (f Func) Suggest(Invoker, string, []string) []string { return nil }
