package shell

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/chatmux-tools/chatmux/internal/config"
	"github.com/chatmux-tools/chatmux/internal/sandbox"
	"github.com/chatmux-tools/chatmux/internal/ui/components"
	"github.com/chatmux-tools/chatmux/internal/ui/style"
)

const defaultHistoryLimit = 500

// playModel is the Bubble Tea model for the play shell.
type playModel struct {
	engine  *sandbox.Engine
	persona *sandbox.Persona
	sink    *sandbox.Transcript

	// Transcript buffer, newest last, capped at historyLimit.
	lines        []string
	historyLimit int

	input textinput.Model

	// UI dimensions
	width  int
	height int

	// Scroll state. autoScroll pins the view to the newest line.
	scrollPos  int
	autoScroll bool

	// Tab completion state. completions is nil when no cycle is active.
	completions    []string
	completionIdx  int
	completionStem string

	colors style.ColorConfig
}

func newPlayModel(e *sandbox.Engine, personaName string) (playModel, error) {
	sink := &sandbox.Transcript{}
	p, err := e.Persona(personaName, sink)
	if err != nil {
		return playModel{}, err
	}

	input := components.NewThemedInput("command (Tab completes, /help for shell keys)")
	input.Prompt = p.Name() + "> "

	m := playModel{
		engine:       e,
		persona:      p,
		sink:         sink,
		historyLimit: configuredHistoryLimit(),
		input:        input,
		autoScroll:   true,
		colors:       style.GetColors(),
	}

	m.appendLine(m.mutedStyle().Render("scenario " + e.Scenario().Name + " loaded"))
	m.appendLine(m.mutedStyle().Render("speaking as " + p.Name() + " (" + p.Kind().String() + ")"))
	return m, nil
}

// configuredHistoryLimit reads the transcript cap from config.
func configuredHistoryLimit() int {
	raw, ok := config.Get("history_limit")
	if !ok {
		return defaultHistoryLimit
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return defaultHistoryLimit
	}
	return n
}

// Init implements tea.Model
func (m playModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 4
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m playModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyEsc:
		// First Esc clears the line, a second one leaves the shell.
		if m.input.Value() != "" {
			m.input.Reset()
			m.resetCompletion()
			return m, nil
		}
		return m, tea.Quit

	case tea.KeyEnter:
		return m.submit()

	case tea.KeyTab:
		return m.cycleCompletion()

	case tea.KeyUp:
		m.scrollBy(-1)
		return m, nil

	case tea.KeyDown:
		m.scrollBy(1)
		return m, nil

	case tea.KeyPgUp:
		m.scrollBy(-10)
		return m, nil

	case tea.KeyPgDown:
		m.scrollBy(10)
		return m, nil
	}

	// Everything else edits the input line.
	m.resetCompletion()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m playModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scrollBy(-3)
	case tea.MouseButtonWheelDown:
		m.scrollBy(3)
	}
	return m, nil
}

// submit runs the input line, either as a shell command or through the
// scenario dispatcher.
func (m playModel) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	m.resetCompletion()
	if line == "" {
		return m, nil
	}

	if strings.HasPrefix(line, "/") {
		return m.runLocal(line)
	}

	m.appendLine(m.promptStyle().Render(m.persona.Name()+"> ") + line)
	err := m.engine.Dispatch(m.persona, strings.Fields(line))
	m.drainSink()
	if err != nil {
		m.appendLine(m.errorStyle().Render(err.Error()))
	}
	m.autoScroll = true
	return m, nil
}

// runLocal handles slash commands that belong to the shell itself,
// not to the scenario.
func (m playModel) runLocal(line string) (tea.Model, tea.Cmd) {
	name, arg := splitLocalCommand(line)

	switch name {
	case "/quit", "/exit":
		return m, tea.Quit

	case "/help":
		m.appendLocalHelp()

	case "/personas":
		for _, spec := range m.engine.Scenario().Personas {
			marker := "  "
			if spec.Name == m.persona.Name() {
				marker = "> "
			}
			m.appendLine(marker + spec.Name + " " + m.mutedStyle().Render("("+personaKindLabel(spec.Kind)+")"))
		}

	case "/persona":
		if arg == "" {
			m.appendLine(m.mutedStyle().Render("usage: /persona <name>"))
			break
		}
		p, err := m.engine.Persona(arg, m.sink)
		if err != nil {
			m.appendLine(m.errorStyle().Render(err.Error()))
			break
		}
		m.persona = p
		m.input.Prompt = p.Name() + "> "
		m.appendLine(m.mutedStyle().Render("now speaking as " + p.Name() + " (" + p.Kind().String() + ")"))

	default:
		m.appendLine(m.mutedStyle().Render("unknown shell command " + name + " (try /help)"))
	}

	m.autoScroll = true
	return m, nil
}

func (m *playModel) appendLocalHelp() {
	muted := m.mutedStyle()
	m.appendLine(muted.Render("/persona <name>  speak as another persona"))
	m.appendLine(muted.Render("/personas        list scenario personas"))
	m.appendLine(muted.Render("/quit            leave the shell"))
	m.appendLine(muted.Render("plain text is dispatched as a scenario command"))
}

// cycleCompletion starts or advances a Tab completion cycle.
func (m playModel) cycleCompletion() (tea.Model, tea.Cmd) {
	if m.completions == nil {
		tokens := completionTokens(m.input.Value())
		candidates := m.engine.Complete(m.persona, tokens)
		m.completions = filterByPrefix(candidates, tokens[len(tokens)-1])
		m.completionIdx = 0
		m.completionStem = completionStem(m.input.Value())
	} else if len(m.completions) > 0 {
		m.completionIdx = (m.completionIdx + 1) % len(m.completions)
	}

	if len(m.completions) == 0 {
		return m, nil
	}

	m.input.SetValue(m.completionStem + m.completions[m.completionIdx])
	m.input.CursorEnd()
	return m, nil
}

func (m *playModel) resetCompletion() {
	m.completions = nil
	m.completionIdx = 0
	m.completionStem = ""
}

// drainSink moves persona-visible output from the transcript sink into
// the display buffer.
func (m *playModel) drainSink() {
	for _, line := range m.sink.Lines() {
		m.appendLine(line)
	}
	m.sink.Reset()
}

func (m *playModel) appendLine(line string) {
	m.lines = trimHistory(append(m.lines, line), m.historyLimit)
}

func (m *playModel) scrollBy(delta int) {
	start := m.visibleStart() + delta
	maxStart := m.maxScroll()
	if start < 0 {
		start = 0
	}
	if start > maxStart {
		start = maxStart
	}
	m.scrollPos = start
	m.autoScroll = start == maxStart
}

// visibleStart returns the index of the first transcript line on
// screen, honoring auto-scroll.
func (m playModel) visibleStart() int {
	if m.autoScroll {
		return m.maxScroll()
	}
	return min(m.scrollPos, m.maxScroll())
}

func (m playModel) maxScroll() int {
	vh := m.transcriptHeight()
	if len(m.lines) <= vh {
		return 0
	}
	return len(m.lines) - vh
}

// transcriptHeight returns the number of transcript lines that fit in
// the content pane.
func (m playModel) transcriptHeight() int {
	mainHeight := m.height - headerHeight - inputHeight - footerHeight
	if mainHeight < 3 {
		mainHeight = 3
	}
	return mainHeight - 2 // pane borders
}

// completionTokens splits the input into dispatch tokens, keeping a
// trailing empty token when the cursor sits after a space.
func completionTokens(value string) []string {
	tokens := strings.Fields(value)
	if value == "" || strings.HasSuffix(value, " ") {
		tokens = append(tokens, "")
	}
	return tokens
}

// completionStem returns the input up to the token being completed.
func completionStem(value string) string {
	if value == "" || strings.HasSuffix(value, " ") {
		return value
	}
	idx := strings.LastIndex(value, " ")
	if idx < 0 {
		return ""
	}
	return value[:idx+1]
}

// filterByPrefix keeps candidates matching the partial token,
// case-insensitively.
func filterByPrefix(candidates []string, partial string) []string {
	if partial == "" {
		return candidates
	}
	lower := strings.ToLower(partial)
	var out []string
	for _, c := range candidates {
		if strings.HasPrefix(strings.ToLower(c), lower) {
			out = append(out, c)
		}
	}
	return out
}

// splitLocalCommand separates a slash command from its argument.
func splitLocalCommand(line string) (string, string) {
	parts := strings.SplitN(line, " ", 2)
	arg := ""
	if len(parts) == 2 {
		arg = strings.TrimSpace(parts[1])
	}
	return parts[0], arg
}

// trimHistory drops the oldest lines beyond limit.
func trimHistory(lines []string, limit int) []string {
	if limit <= 0 || len(lines) <= limit {
		return lines
	}
	return lines[len(lines)-limit:]
}

// personaKindLabel normalizes a scenario kind string for display.
func personaKindLabel(kind string) string {
	kind = strings.ToLower(strings.TrimSpace(kind))
	if kind == "" {
		return "user"
	}
	return kind
}
