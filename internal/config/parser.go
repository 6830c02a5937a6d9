package config

import (
	"fmt"
	"strings"
)

// Parse converts raw config lines into a key-value map.
// Blank lines and comments are skipped. Values may contain "=" and may
// be wrapped in double quotes (the quotes are stripped).
func Parse(lines []string) (map[string]string, error) {
	cfg := make(map[string]string)

	for i, line := range lines {
		if i == 0 {
			line = strings.TrimPrefix(line, "\uFEFF")
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		parts := strings.SplitN(trimmed, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("config: invalid line %d: %q", i+1, line)
		}

		key := strings.TrimSpace(parts[0])
		if key == "" {
			return nil, fmt.Errorf("config: empty key on line %d", i+1)
		}

		value := strings.TrimSpace(parts[1])
		if len(value) >= 2 && strings.HasPrefix(value, "\"") && strings.HasSuffix(value, "\"") {
			value = value[1 : len(value)-1]
		}

		cfg[key] = value
	}

	return cfg, nil
}
