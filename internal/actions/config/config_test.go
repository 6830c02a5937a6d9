package config

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chatmux-tools/chatmux/internal/cli"
)

func noFlags() *cli.ParsedFlags {
	return cli.NewParsedFlags(nil)
}

func passthroughLock(fn func() error) error {
	return fn()
}

// =========== GET TESTS ===========

func TestGet_Success(t *testing.T) {
	var capturedValue string
	deps := Deps{
		Get: func(key string) (string, bool) {
			if key == "theme" {
				return "mono", true
			}
			return "", false
		},
		Println: func(a ...any) (int, error) {
			if len(a) > 0 {
				capturedValue, _ = a[0].(string)
			}
			return 0, nil
		},
	}

	err := get([]string{"theme"}, noFlags(), deps)

	require.NoError(t, err)
	require.Equal(t, "mono", capturedValue)
}

func TestGet_MissingKey(t *testing.T) {
	err := get([]string{}, noFlags(), Deps{})

	require.Error(t, err)
	require.Contains(t, err.Error(), "key")
}

func TestGet_KeyNotFound(t *testing.T) {
	deps := Deps{
		Get: func(key string) (string, bool) {
			return "", false
		},
	}

	err := get([]string{"nonexistent"}, noFlags(), deps)

	require.Error(t, err)
	require.Contains(t, err.Error(), "nonexistent")
}

// =========== SET TESTS ===========

func TestSet_AddNew(t *testing.T) {
	var capturedPrintf string
	var writtenLines []string
	deps := Deps{
		ReadLines: func() ([]string, error) {
			return []string{}, nil
		},
		Set: func(lines []string, key, value string) ([]string, bool) {
			return append(lines, key+"="+value), false // Not updated (new)
		},
		WriteLines: func(lines []string) error {
			writtenLines = lines
			return nil
		},
		WithLock: passthroughLock,
		Printf: func(format string, a ...any) (int, error) {
			capturedPrintf = fmt.Sprintf(format, a...)
			return 0, nil
		},
	}

	err := set([]string{"theme", "mono"}, noFlags(), deps)

	require.NoError(t, err)
	require.Contains(t, capturedPrintf, "added")
	require.Len(t, writtenLines, 1)
	require.Equal(t, "theme=mono", writtenLines[0])
}

func TestSet_UpdateExisting(t *testing.T) {
	var capturedPrintf string
	deps := Deps{
		ReadLines: func() ([]string, error) {
			return []string{"theme=default"}, nil
		},
		Set: func(lines []string, key, value string) ([]string, bool) {
			return []string{"theme=" + value}, true // Updated
		},
		WriteLines: func(lines []string) error {
			return nil
		},
		WithLock: passthroughLock,
		Printf: func(format string, a ...any) (int, error) {
			capturedPrintf = fmt.Sprintf(format, a...)
			return 0, nil
		},
	}

	err := set([]string{"theme", "mono"}, noFlags(), deps)

	require.NoError(t, err)
	require.Contains(t, capturedPrintf, "updated")
}

func TestSet_MissingArguments(t *testing.T) {
	err := set([]string{"theme"}, noFlags(), Deps{})

	require.Error(t, err)
	require.Contains(t, err.Error(), "key value")
}

func TestSet_UnknownKey(t *testing.T) {
	err := set([]string{"not_a_key", "value"}, noFlags(), Deps{})

	require.Error(t, err)
	require.Contains(t, err.Error(), "not_a_key")
}

func TestSet_RunsUnderLock(t *testing.T) {
	locked := false
	deps := Deps{
		ReadLines: func() ([]string, error) { return nil, nil },
		Set: func(lines []string, key, value string) ([]string, bool) {
			return lines, false
		},
		WriteLines: func([]string) error { return nil },
		WithLock: func(fn func() error) error {
			locked = true
			return fn()
		},
		Printf: func(string, ...any) (int, error) { return 0, nil },
	}

	require.NoError(t, set([]string{"theme", "mono"}, noFlags(), deps))
	require.True(t, locked)
}

// =========== UNSET TESTS ===========

func TestUnset_RemovesKey(t *testing.T) {
	var capturedPrintf string
	var writtenLines []string
	deps := Deps{
		ReadLines: func() ([]string, error) {
			return []string{"theme=mono", "pager=cat"}, nil
		},
		Unset: func(lines []string, key string) ([]string, bool) {
			return []string{"pager=cat"}, true
		},
		WriteLines: func(lines []string) error {
			writtenLines = lines
			return nil
		},
		WithLock: passthroughLock,
		Printf: func(format string, a ...any) (int, error) {
			capturedPrintf = fmt.Sprintf(format, a...)
			return 0, nil
		},
	}

	err := unset([]string{"theme"}, noFlags(), deps)

	require.NoError(t, err)
	require.Contains(t, capturedPrintf, "unset theme")
	require.Equal(t, []string{"pager=cat"}, writtenLines)
}

func TestUnset_KeyNotSet(t *testing.T) {
	var capturedPrintf string
	wrote := false
	deps := Deps{
		ReadLines: func() ([]string, error) {
			return []string{}, nil
		},
		Unset: func(lines []string, key string) ([]string, bool) {
			return lines, false
		},
		WriteLines: func([]string) error {
			wrote = true
			return nil
		},
		WithLock: passthroughLock,
		Printf: func(format string, a ...any) (int, error) {
			capturedPrintf = fmt.Sprintf(format, a...)
			return 0, nil
		},
	}

	err := unset([]string{"theme"}, noFlags(), deps)

	require.NoError(t, err)
	require.Contains(t, capturedPrintf, "theme is not set")
	require.False(t, wrote)
}

func TestUnset_UnknownKey(t *testing.T) {
	err := unset([]string{"not_a_key"}, noFlags(), Deps{})

	require.Error(t, err)
	require.Contains(t, err.Error(), "not_a_key")
}

func TestUnset_MissingArgument(t *testing.T) {
	err := unset([]string{}, noFlags(), Deps{})

	require.Error(t, err)
	require.Contains(t, err.Error(), "key")
}

func TestUnset_All(t *testing.T) {
	var captured string
	var writtenLines []string
	deps := Deps{
		WriteLines: func(lines []string) error {
			writtenLines = lines
			return nil
		},
		WithLock: passthroughLock,
		Println: func(a ...any) (int, error) {
			captured = fmt.Sprint(a...)
			return 0, nil
		},
	}

	flags := cli.NewParsedFlags([]string{"--all"})
	err := unset(nil, flags, deps)

	require.NoError(t, err)
	require.NotNil(t, writtenLines)
	require.Empty(t, writtenLines)
	require.Contains(t, captured, "all config entries removed")
}

func TestUnset_AllRejectsArguments(t *testing.T) {
	flags := cli.NewParsedFlags([]string{"--all"})
	err := unset([]string{"theme"}, flags, Deps{})

	require.Error(t, err)
	require.Contains(t, err.Error(), "--all")
}

// =========== LIST TESTS ===========

func TestList_GroupsBySection(t *testing.T) {
	var lines []string
	deps := Deps{
		GetAll: func() (map[string]string, error) {
			return map[string]string{
				"theme":         "mono",
				"pager":         "less -FRSX",
				"enable_log":    "true",
				"audit_limit":   "20",
				"color_success": "",
			}, nil
		},
		Println: func(a ...any) (int, error) {
			lines = append(lines, fmt.Sprint(a...))
			return 0, nil
		},
	}

	err := list(nil, noFlags(), deps)
	require.NoError(t, err)

	joined := strings.Join(lines, "\n")
	require.Contains(t, joined, "Display")
	require.Contains(t, joined, "theme=mono")
	require.Contains(t, joined, "Logging")
	require.Contains(t, joined, "enable_log=true")
	require.Contains(t, joined, "Sandbox")
	// Unset color overrides stay hidden
	require.NotContains(t, joined, "color_success")

	// Display section comes before Logging
	require.Less(t, strings.Index(joined, "Display"), strings.Index(joined, "Logging"))
}

func TestList_ShowsSetColorOverrides(t *testing.T) {
	var lines []string
	deps := Deps{
		GetAll: func() (map[string]string, error) {
			return map[string]string{
				"color_success": "42",
			}, nil
		},
		Println: func(a ...any) (int, error) {
			lines = append(lines, fmt.Sprint(a...))
			return 0, nil
		},
	}

	err := list(nil, noFlags(), deps)
	require.NoError(t, err)

	joined := strings.Join(lines, "\n")
	require.Contains(t, joined, "Color Overrides")
	require.Contains(t, joined, "color_success=42")
}
