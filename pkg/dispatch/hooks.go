package dispatch

// Hooks customize how resolution failures are reported. Every hook
// returns a bool deciding whether help is rendered afterwards; a nil
// hook behaves as if it returned true. Resolution failures are
// expected user-input conditions, so none of them surface as errors.
type Hooks struct {
	// NoArguments fires when a dispatch call receives zero tokens.
	// True renders help page 0.
	NoArguments func(inv Invoker) bool
	// NoSuchCommand fires when the first token matches no top-level
	// name or alias. True renders help page 0.
	NoSuchCommand func(inv Invoker, attempted string) bool
	// NoInvokerKind fires when a command's kind restriction rejects
	// the invoker. True renders the command's focused help.
	NoInvokerKind func(inv Invoker, sig Signature) bool
	// NoPermission fires when the invoker lacks a command's
	// permission. True renders the command's focused help.
	NoPermission func(inv Invoker, sig Signature) bool
}

func (h Hooks) noArguments(inv Invoker) bool {
	if h.NoArguments == nil {
		return true
	}
	return h.NoArguments(inv)
}

func (h Hooks) noSuchCommand(inv Invoker, attempted string) bool {
	if h.NoSuchCommand == nil {
		return true
	}
	return h.NoSuchCommand(inv, attempted)
}

func (h Hooks) noInvokerKind(inv Invoker, sig Signature) bool {
	if h.NoInvokerKind == nil {
		return true
	}
	return h.NoInvokerKind(inv, sig)
}

func (h Hooks) noPermission(inv Invoker, sig Signature) bool {
	if h.NoPermission == nil {
		return true
	}
	return h.NoPermission(inv, sig)
}
