package audit

import (
	"bytes"
	"fmt"

	"github.com/chatmux-tools/chatmux/internal/cli"
	"github.com/chatmux-tools/chatmux/internal/domain"
	"github.com/chatmux-tools/chatmux/internal/format"
)

func List(args []string, flags *cli.ParsedFlags) error {
	return list(args, flags, DefaultDeps())
}

func list(_ []string, flags *cli.ParsedFlags, deps Deps) error {
	limit := flags.Int("--limit", deps.DefaultLimit())
	oneline := flags.Has("--oneline")

	st, err := deps.OpenStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	events, err := st.Recent(limit)
	if err != nil {
		return err
	}

	if len(events) == 0 {
		_, _ = deps.Println("no audit events recorded")
		return nil
	}

	var output bytes.Buffer
	for _, ev := range events {
		output.WriteString(fmt.Sprintf(
			"%s  %-14s %-12s %s %q\n",
			format.DateTime(ev.OccurredAt),
			ev.Scenario,
			ev.Persona,
			outcomeCell(deps.Styler, ev.Outcome),
			ev.Input,
		))
		if oneline {
			continue
		}
		if ev.Target != "" {
			output.WriteString("    ran " + ev.Target + "\n")
		}
		if ev.Detail != "" {
			output.WriteString("    " + ev.Detail + "\n")
		}
	}

	deps.Pager(output.String())
	return nil
}

// outcomeCell pads before styling so ANSI codes don't skew the column.
func outcomeCell(styler domain.Styler, outcome domain.Outcome) string {
	cell := fmt.Sprintf("%-18s", string(outcome))
	switch outcome {
	case domain.OutcomeInvoked:
		return styler.Success(cell)
	case domain.OutcomeError:
		return styler.Error(cell)
	case domain.OutcomeDeniedKind, domain.OutcomeDeniedPermission, domain.OutcomeNoSuchCommand:
		return styler.Warning(cell)
	default:
		return styler.Muted(cell)
	}
}
