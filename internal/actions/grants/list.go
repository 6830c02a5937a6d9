package grants

import (
	"bytes"
	"fmt"

	"github.com/chatmux-tools/chatmux/internal/cli"
	"github.com/chatmux-tools/chatmux/internal/format"
	"github.com/chatmux-tools/chatmux/internal/usage"
)

func List(args []string, flags *cli.ParsedFlags) error {
	return list(args, flags, DefaultDeps())
}

func list(args []string, _ *cli.ParsedFlags, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("scenario")
	}

	scenario := args[0]

	st, err := deps.OpenStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	grants, err := st.Grants(scenario)
	if err != nil {
		return err
	}

	if len(grants) == 0 {
		_, _ = deps.Printf("no grants recorded for %s\n", scenario)
		return nil
	}

	var output bytes.Buffer
	for _, g := range grants {
		output.WriteString(fmt.Sprintf(
			"%-16s %-32s %s\n",
			g.Persona,
			g.Permission,
			format.DateTime(g.GrantedAt),
		))
	}

	deps.Pager(output.String())
	return nil
}
