// Package sandbox turns a YAML scenario file into a live dispatch
// handler: a command tree, the personas allowed to drive it, and an
// engine that records every dispatch attempt in the audit store.
package sandbox

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/chatmux-tools/chatmux/internal/usage"
	"github.com/chatmux-tools/chatmux/pkg/dispatch"
)

// Scenario is a parsed scenario file: a command tree plus the personas
// allowed to drive it.
type Scenario struct {
	Name      string        `yaml:"name"`
	Options   Options       `yaml:"options"`
	Templates Templates     `yaml:"templates"`
	Personas  []PersonaSpec `yaml:"personas"`
	Commands  []CommandSpec `yaml:"commands"`

	path string
}

// Options map onto the dispatch builder toggles. A nil page_size keeps
// the builder default.
type Options struct {
	Help                bool `yaml:"help"`
	CompleteSubcommands bool `yaml:"complete_subcommands"`
	RunLastAllowed      bool `yaml:"run_last_allowed"`
	PageSize            *int `yaml:"page_size"`
}

// Templates override the generated help text shape. Nil fields keep
// the builder defaults. Values may carry '&' markup codes; the codes
// survive help generation untouched and render at the transcript.
type Templates struct {
	Header            *string `yaml:"header"`
	LinePrefix        *string `yaml:"line_prefix"`
	ArgumentSpacer    *string `yaml:"argument_spacer"`
	DescriptionSpacer *string `yaml:"description_spacer"`
	PropertyPrefix    *string `yaml:"property_prefix"`
	PropertySpacer    *string `yaml:"property_spacer"`
}

// PersonaSpec declares one persona and its standing permissions. Kind
// is "user" (the default), "console" or "other".
type PersonaSpec struct {
	Name        string   `yaml:"name"`
	Kind        string   `yaml:"kind"`
	Permissions []string `yaml:"permissions"`
}

// CommandSpec declares one command node. Kind ("any" when empty,
// "user", "console" or "user or console") applies to top-level
// commands only; subcommands must leave it empty.
type CommandSpec struct {
	Name        string        `yaml:"name"`
	Aliases     []string      `yaml:"aliases"`
	Kind        string        `yaml:"kind"`
	Permission  string        `yaml:"permission"`
	Arguments   string        `yaml:"arguments"`
	Description string        `yaml:"description"`
	Reply       string        `yaml:"reply"`
	Suggestions []string      `yaml:"suggestions"`
	Subcommands []CommandSpec `yaml:"subcommands"`
}

// Load reads and validates a scenario file. The scenario name defaults
// to the file name without its extension. Validation covers the whole
// tree, so a scenario that loads will also build.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, usage.ScenarioNotFound(path)
		}
		return nil, fmt.Errorf("sandbox: read scenario: %w", err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, usage.InvalidScenario(path, err)
	}
	s.path = path

	if s.Name == "" {
		base := filepath.Base(path)
		s.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	if err := s.validate(); err != nil {
		return nil, usage.InvalidScenario(path, err)
	}
	// Dry-run the tree so name collisions and kind mistakes surface
	// here, with the file path attached, instead of at engine startup.
	if _, err := s.build(dispatch.Hooks{}, nil); err != nil {
		return nil, usage.InvalidScenario(path, err)
	}

	return &s, nil
}

// Path returns the file the scenario was loaded from.
func (s *Scenario) Path() string { return s.path }

// PersonaNames lists the declared persona names in declaration order.
func (s *Scenario) PersonaNames() []string {
	names := make([]string, len(s.Personas))
	for i, p := range s.Personas {
		names[i] = p.Name
	}
	return names
}

func (s *Scenario) validate() error {
	if len(s.Personas) == 0 {
		return fmt.Errorf("scenario declares no personas")
	}
	if len(s.Commands) == 0 {
		return fmt.Errorf("scenario declares no commands")
	}

	seen := make(map[string]bool, len(s.Personas))
	for i, p := range s.Personas {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("persona %d: name is required", i+1)
		}
		if seen[p.Name] {
			return fmt.Errorf("persona %q is declared twice", p.Name)
		}
		seen[p.Name] = true
		if _, err := parseInvokerKind(p.Kind); err != nil {
			return fmt.Errorf("persona %q: %w", p.Name, err)
		}
	}
	return nil
}

// build assembles the dispatch handler. hooks and onRun come from the
// engine; both may be zero.
func (s *Scenario) build(hooks dispatch.Hooks, onRun func(path []string)) (*dispatch.Handler, error) {
	b := dispatch.NewBuilder()
	if err := s.configure(b, hooks); err != nil {
		return nil, err
	}

	for i := range s.Commands {
		node, err := buildNode(&s.Commands[i], nil, onRun)
		if err != nil {
			return nil, err
		}
		if err := b.Add(node); err != nil {
			return nil, err
		}
	}
	return b.Build(), nil
}

func (s *Scenario) configure(b *dispatch.Builder, hooks dispatch.Hooks) error {
	if err := b.EnableHelp(s.Options.Help); err != nil {
		return err
	}
	if err := b.CompleteSubcommands(s.Options.CompleteSubcommands); err != nil {
		return err
	}
	if err := b.RunLastAllowed(s.Options.RunLastAllowed); err != nil {
		return err
	}
	if s.Options.PageSize != nil {
		if err := b.PageSize(*s.Options.PageSize); err != nil {
			return err
		}
	}

	t := s.Templates
	if t.Header != nil {
		if err := b.HelpHeader(*t.Header); err != nil {
			return err
		}
	}
	if t.LinePrefix != nil {
		if err := b.LinePrefix(*t.LinePrefix); err != nil {
			return err
		}
	}
	if t.ArgumentSpacer != nil {
		if err := b.ArgumentSpacer(*t.ArgumentSpacer); err != nil {
			return err
		}
	}
	if t.DescriptionSpacer != nil {
		if err := b.DescriptionSpacer(*t.DescriptionSpacer); err != nil {
			return err
		}
	}
	if t.PropertyPrefix != nil {
		if err := b.PropertyPrefix(*t.PropertyPrefix); err != nil {
			return err
		}
	}
	if t.PropertySpacer != nil {
		if err := b.PropertySpacer(*t.PropertySpacer); err != nil {
			return err
		}
	}

	return b.SetHooks(hooks)
}

func buildNode(spec *CommandSpec, parents []string, onRun func([]string)) (*dispatch.Node, error) {
	if strings.TrimSpace(spec.Name) == "" {
		if len(parents) == 0 {
			return nil, fmt.Errorf("command: name is required")
		}
		return nil, fmt.Errorf("command %q: subcommand name is required", strings.Join(parents, " "))
	}

	path := make([]string, 0, len(parents)+1)
	path = append(path, parents...)
	path = append(path, spec.Name)

	kind := dispatch.KindSubcommand
	if len(parents) == 0 {
		parsed, err := parseCommandKind(spec.Kind)
		if err != nil {
			return nil, fmt.Errorf("command %q: %w", spec.Name, err)
		}
		kind = parsed
	} else if spec.Kind != "" {
		return nil, fmt.Errorf("command %q: subcommands may not set kind", strings.Join(path, " "))
	}

	node := dispatch.NewNode(dispatch.Signature{
		Name:        spec.Name,
		Aliases:     spec.Aliases,
		Kind:        kind,
		Permission:  spec.Permission,
		Arguments:   spec.Arguments,
		Description: spec.Description,
	}, &command{
		path:        path,
		reply:       spec.Reply,
		suggestions: spec.Suggestions,
		onRun:       onRun,
	})

	for i := range spec.Subcommands {
		child, err := buildNode(&spec.Subcommands[i], path, onRun)
		if err != nil {
			return nil, err
		}
		if err := node.AttachSub(child); err != nil {
			return nil, err
		}
	}
	return node, nil
}

func parseInvokerKind(s string) (dispatch.InvokerKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "user":
		return dispatch.InvokerUser, nil
	case "console":
		return dispatch.InvokerConsole, nil
	case "other":
		return dispatch.InvokerOther, nil
	}
	return 0, fmt.Errorf("unknown persona kind %q (want user, console or other)", s)
}

func parseCommandKind(s string) (dispatch.CommandKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "any":
		return dispatch.KindAny, nil
	case "user":
		return dispatch.KindUserOnly, nil
	case "console":
		return dispatch.KindConsoleOnly, nil
	case "user or console":
		return dispatch.KindUserOrConsole, nil
	}
	return 0, fmt.Errorf("unknown command kind %q (want any, user, console or \"user or console\")", s)
}
