package sandbox

import (
	"github.com/chatmux-tools/chatmux/internal/domain"
	"github.com/chatmux-tools/chatmux/internal/log"
	"github.com/chatmux-tools/chatmux/pkg/dispatch"
)

// Persona is a scenario actor: a dispatch invoker whose permissions
// come from the scenario declaration plus any persisted grants.
type Persona struct {
	name     string
	kind     dispatch.InvokerKind
	declared map[string]bool
	scenario string
	grants   domain.GrantStore
	sink     *Transcript
}

var _ dispatch.Invoker = (*Persona)(nil)

func newPersona(spec PersonaSpec, scenario string, grants domain.GrantStore, sink *Transcript) *Persona {
	// Kind was validated at scenario load.
	kind, _ := parseInvokerKind(spec.Kind)

	declared := make(map[string]bool, len(spec.Permissions))
	for _, p := range spec.Permissions {
		declared[p] = true
	}

	return &Persona{
		name:     spec.Name,
		kind:     kind,
		declared: declared,
		scenario: scenario,
		grants:   grants,
		sink:     sink,
	}
}

// Name returns the persona's declared name.
func (p *Persona) Name() string { return p.name }

// Kind implements dispatch.Invoker.
func (p *Persona) Kind() dispatch.InvokerKind { return p.kind }

// HasPermission reports whether the persona holds key, either declared
// by the scenario or granted through the store. Store lookups are
// live, so grants added mid-session take effect immediately.
func (p *Persona) HasPermission(key string) bool {
	if p.declared[key] {
		return true
	}
	if p.grants == nil {
		return false
	}

	held, err := p.grants.HasGrant(p.scenario, p.name, key)
	if err != nil {
		log.Error("sandbox: grant lookup failed for %s/%s: %v", p.scenario, p.name, err)
		return false
	}
	return held
}

// SendText implements dispatch.Invoker by appending to the transcript.
func (p *Persona) SendText(line string) {
	if p.sink != nil {
		p.sink.Append(line)
	}
}
