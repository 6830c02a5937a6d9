package domain

import "time"

// Grant is one persisted permission grant for a scenario persona.
type Grant struct {
	Scenario   string
	Persona    string
	Permission string
	GrantedAt  time.Time
}

// Outcome classifies how a dispatch attempt ended.
type Outcome string

const (
	// OutcomeInvoked means a target command ran.
	OutcomeInvoked Outcome = "invoked"
	// OutcomeNoSuchCommand means the first token matched nothing.
	OutcomeNoSuchCommand Outcome = "no-such-command"
	// OutcomeDeniedKind means an invoker-kind restriction rejected the
	// invocation.
	OutcomeDeniedKind Outcome = "denied-kind"
	// OutcomeDeniedPermission means a permission check rejected the
	// invocation.
	OutcomeDeniedPermission Outcome = "denied-permission"
	// OutcomeHelp means the built-in help command handled the input.
	OutcomeHelp Outcome = "help"
	// OutcomeEmpty means the invocation carried no tokens.
	OutcomeEmpty Outcome = "empty"
	// OutcomeError means the target command ran and returned an error.
	OutcomeError Outcome = "error"
)

// AuditEvent is one recorded dispatch attempt.
type AuditEvent struct {
	ID         string // uuid
	OccurredAt time.Time
	Scenario   string
	Persona    string
	Input      string // the raw invocation line
	Outcome    Outcome
	Target     string // resolved command path, if any
	Detail     string // denial subject, error text, attempted token
}
