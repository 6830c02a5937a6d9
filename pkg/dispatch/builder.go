package dispatch

import "strings"

// config is the handler-wide configuration sealed at Build time.
type config struct {
	useHelp             bool
	completeSubcommands bool
	runLastAllowed      bool
	pageSize            int
	helpHeader          string
	linePrefix          string
	argumentSpacer      string
	descriptionSpacer   string
	propertyPrefix      string
	propertySpacer      string
	hooks               Hooks
}

func defaultConfig() config {
	return config{
		pageSize:          5,
		helpHeader:        "----Help---- page: %page%",
		linePrefix:        "",
		argumentSpacer:    " ",
		descriptionSpacer: " > ",
		propertyPrefix:    "",
		propertySpacer:    " > ",
	}
}

// Builder assembles a top-level command set plus configuration and
// produces immutable Handlers. Configuration must be complete before
// the first Add: every setter fails once a command has been
// registered. Builders are not safe for concurrent use; registration
// is a setup-time phase.
type Builder struct {
	cfg    config
	nodes  []*Node
	frozen bool
}

// NewBuilder returns a builder with defaults: help disabled,
// subcommand completion disabled, run-last-allowed disabled, page
// size 5 and plain help templates.
func NewBuilder() *Builder {
	return &Builder{cfg: defaultConfig()}
}

func (b *Builder) set(op string, assign func()) error {
	if b.frozen {
		return configErrorf(op, "configuration cannot change after commands have been added")
	}
	assign()
	return nil
}

// EnableHelp reserves the "help" token and enables the built-in help
// command: "help" lists a page, "help <n>" a specific page,
// "help <command>" a focused view.
func (b *Builder) EnableHelp(on bool) error {
	return b.set("EnableHelp", func() { b.cfg.useHelp = on })
}

// CompleteSubcommands makes Complete append a resolved node's
// permitted child names when the cursor sits one token past it.
func (b *Builder) CompleteSubcommands(on bool) error {
	return b.set("CompleteSubcommands", func() { b.cfg.completeSubcommands = on })
}

// RunLastAllowed selects the walk policy when a matching subcommand
// denies access: true runs the deepest allowed ancestor with the
// remaining tokens as arguments, false rejects the whole invocation.
func (b *Builder) RunLastAllowed(on bool) error {
	return b.set("RunLastAllowed", func() { b.cfg.runLastAllowed = on })
}

// PageSize sets how many help lines one page holds, 0 through 100.
func (b *Builder) PageSize(n int) error {
	if b.frozen {
		return configErrorf("PageSize", "configuration cannot change after commands have been added")
	}
	if n < 0 {
		return configErrorf("PageSize", "page size cannot be negative")
	}
	if n > 100 {
		return configErrorf("PageSize", "page size cannot be greater than 100")
	}
	b.cfg.pageSize = n
	return nil
}

// HelpHeader sets the line emitted before help output. A "%page%"
// placeholder is replaced with the page number, or 0 in focused views.
func (b *Builder) HelpHeader(header string) error {
	return b.set("HelpHeader", func() { b.cfg.helpHeader = header })
}

// LinePrefix is prepended to every generated command line.
func (b *Builder) LinePrefix(prefix string) error {
	return b.set("LinePrefix", func() { b.cfg.linePrefix = prefix })
}

// ArgumentSpacer separates a command path from its arguments hint.
func (b *Builder) ArgumentSpacer(spacer string) error {
	return b.set("ArgumentSpacer", func() { b.cfg.argumentSpacer = spacer })
}

// DescriptionSpacer separates the arguments hint from the description.
func (b *Builder) DescriptionSpacer(spacer string) error {
	return b.set("DescriptionSpacer", func() { b.cfg.descriptionSpacer = spacer })
}

// PropertyPrefix is prepended to every line of a focused property
// summary.
func (b *Builder) PropertyPrefix(prefix string) error {
	return b.set("PropertyPrefix", func() { b.cfg.propertyPrefix = prefix })
}

// PropertySpacer separates a property name from its value in focused
// summaries.
func (b *Builder) PropertySpacer(spacer string) error {
	return b.set("PropertySpacer", func() { b.cfg.propertySpacer = spacer })
}

// SetHooks installs the resolution-failure hooks. Nil fields keep the
// default behavior of returning true.
func (b *Builder) SetHooks(hooks Hooks) error {
	return b.set("SetHooks", func() { b.cfg.hooks = hooks })
}

// Add registers a top-level command and freezes the configuration.
// The node must carry a non-subcommand kind and must not collide
// case-insensitively with any registered name or alias, nor with the
// reserved "help" token when help is enabled. Registration order is
// kept and drives help listing order. On error the registered set is
// left unchanged.
func (b *Builder) Add(node *Node) error {
	if err := validateNode("Add", node); err != nil {
		return err
	}
	if node.sig.Kind == KindSubcommand {
		return configErrorf("Add", "cannot register %q: kind %s is only valid for subcommands",
			node.sig.Name, KindSubcommand)
	}
	if b.cfg.useHelp && reservesHelp(node.sig) {
		return configErrorf("Add", "cannot register %q: name or alias conflicts with the help command",
			node.sig.Name)
	}
	if detail := siblingConflict(b.nodes, node.sig); detail != "" {
		return configErrorf("Add", "cannot register %q: %s", node.sig.Name, detail)
	}
	b.nodes = append(b.nodes, node)
	b.frozen = true
	return nil
}

// Build seals the current configuration and command set into a
// Handler. The builder stays usable; building twice yields
// independent handlers with identical behavior for identical state.
func (b *Builder) Build() *Handler {
	top := make([]*Node, len(b.nodes))
	copy(top, b.nodes)
	return &Handler{cfg: b.cfg, top: top}
}

func reservesHelp(sig Signature) bool {
	if strings.EqualFold(sig.Name, "help") {
		return true
	}
	for _, alias := range sig.Aliases {
		if strings.EqualFold(alias, "help") {
			return true
		}
	}
	return false
}
