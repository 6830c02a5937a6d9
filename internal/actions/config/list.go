package config

import (
	"github.com/chatmux-tools/chatmux/internal/cli"
	"github.com/chatmux-tools/chatmux/internal/domain"
	"github.com/chatmux-tools/chatmux/internal/ui/style"
)

func List(args []string, flags *cli.ParsedFlags) error {
	return list(args, flags, DefaultDeps())
}

func list(_ []string, _ *cli.ParsedFlags, deps Deps) error {
	configMap, err := deps.GetAll()
	if err != nil {
		return err
	}

	bySection := domain.ConfigKeysBySection()
	printedAny := false

	for _, section := range domain.ConfigSections() {
		var entries []string
		for _, key := range bySection[section] {
			value, exists := configMap[key.Name]
			if !exists {
				continue
			}
			// Optional overrides stay out of the listing until set
			if key.HideIfEmpty && value == "" {
				continue
			}
			entries = append(entries, key.Name+"="+value)
		}
		if len(entries) == 0 {
			continue
		}

		if printedAny {
			_, _ = deps.Println()
		}
		_, _ = deps.Println(style.Header(section))
		for _, entry := range entries {
			_, _ = deps.Println(entry)
		}
		printedAny = true
	}

	return nil
}
