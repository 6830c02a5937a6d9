package sandbox

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/chatmux-tools/chatmux/internal/domain"
	"github.com/chatmux-tools/chatmux/internal/log"
	"github.com/chatmux-tools/chatmux/internal/usage"
	"github.com/chatmux-tools/chatmux/pkg/dispatch"
)

// Engine dispatches invocations for one loaded scenario and records
// every attempt in the audit store. The outcome of each dispatch is
// captured through the handler's hooks, so dispatches are serialized.
type Engine struct {
	scenario *Scenario
	handler  *dispatch.Handler
	grants   domain.GrantStore
	audit    domain.AuditStore

	mu  sync.Mutex
	rec outcomeRecord
}

type outcomeRecord struct {
	outcome domain.Outcome
	target  string
	detail  string
}

// NewEngine builds the scenario's dispatch handler with audit
// instrumentation attached. grants and audit may be nil to run without
// persistence.
func NewEngine(s *Scenario, grants domain.GrantStore, audit domain.AuditStore) (*Engine, error) {
	e := &Engine{scenario: s, grants: grants, audit: audit}

	handler, err := s.build(e.hooks(), e.noteRun)
	if err != nil {
		return nil, usage.InvalidScenario(s.path, err)
	}
	e.handler = handler
	return e, nil
}

// Scenario returns the loaded scenario.
func (e *Engine) Scenario() *Scenario { return e.scenario }

// Persona returns the named persona wired to sink for its output.
func (e *Engine) Persona(name string, sink *Transcript) (*Persona, error) {
	for _, spec := range e.scenario.Personas {
		if spec.Name == name {
			return newPersona(spec, e.scenario.Name, e.grants, sink), nil
		}
	}
	return nil, usage.UnknownPersona(name, e.scenario.PersonaNames())
}

// Dispatch resolves tokens for persona and appends one audit event
// describing the outcome. The returned error is the target command's
// run error; resolution failures render help into the transcript and
// return nil, exactly as the handler does.
func (e *Engine) Dispatch(persona *Persona, tokens []string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	// Hooks overwrite this for every resolution failure. The help
	// command fires no hook, so it is classified up front.
	e.rec = outcomeRecord{outcome: domain.OutcomeInvoked}
	if len(tokens) > 0 && e.scenario.Options.Help && strings.EqualFold(tokens[0], "help") {
		e.rec.outcome = domain.OutcomeHelp
	}

	err := e.handler.Dispatch(persona, e.scenario.Name, tokens)
	if err != nil {
		e.rec.outcome = domain.OutcomeError
		e.rec.detail = err.Error()
	}

	e.recordEvent(persona, tokens)
	return err
}

// Complete passes the completion request through to the handler.
// Completions fire no hooks and are not audited.
func (e *Engine) Complete(persona *Persona, tokens []string) []string {
	return e.handler.Complete(persona, e.scenario.Name, tokens)
}

func (e *Engine) hooks() dispatch.Hooks {
	return dispatch.Hooks{
		NoArguments: func(dispatch.Invoker) bool {
			e.rec = outcomeRecord{outcome: domain.OutcomeEmpty}
			return true
		},
		NoSuchCommand: func(_ dispatch.Invoker, attempted string) bool {
			e.rec = outcomeRecord{outcome: domain.OutcomeNoSuchCommand, detail: attempted}
			return true
		},
		NoInvokerKind: func(_ dispatch.Invoker, sig dispatch.Signature) bool {
			e.rec = outcomeRecord{
				outcome: domain.OutcomeDeniedKind,
				target:  sig.Name,
				detail:  "requires kind " + sig.Kind.String(),
			}
			return true
		},
		NoPermission: func(_ dispatch.Invoker, sig dispatch.Signature) bool {
			e.rec = outcomeRecord{
				outcome: domain.OutcomeDeniedPermission,
				target:  sig.Name,
				detail:  "requires " + sig.Permission,
			}
			return true
		},
	}
}

// noteRun records the resolved command path when a target actually
// runs.
func (e *Engine) noteRun(path []string) {
	e.rec.target = strings.Join(path, " ")
}

func (e *Engine) recordEvent(persona *Persona, tokens []string) {
	if e.audit == nil {
		return
	}

	event := domain.AuditEvent{
		ID:         uuid.NewString(),
		OccurredAt: time.Now().UTC(),
		Scenario:   e.scenario.Name,
		Persona:    persona.Name(),
		Input:      strings.Join(tokens, " "),
		Outcome:    e.rec.outcome,
		Target:     e.rec.target,
		Detail:     e.rec.detail,
	}
	if err := e.audit.Record(event); err != nil {
		log.Error("sandbox: audit record failed: %v", err)
	}
}
