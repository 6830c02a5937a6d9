package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	tests := []struct {
		name        string
		configLines []string
		key         string
		wantValue   string
		wantFound   bool
	}{
		{
			name:        "key exists in config file",
			configLines: []string{"history_limit=100"},
			key:         "history_limit",
			wantValue:   "100",
			wantFound:   true,
		},
		{
			name:        "key exists in defaults but not in file",
			configLines: []string{"theme=mono"},
			key:         "history_limit",
			wantValue:   "500",
			wantFound:   true,
		},
		{
			name:        "default - enable_log",
			configLines: []string{"theme=mono"},
			key:         "enable_log",
			wantValue:   "true",
			wantFound:   true,
		},
		{
			name:        "default - log_level",
			configLines: []string{"theme=mono"},
			key:         "log_level",
			wantValue:   "warn",
			wantFound:   true,
		},
		{
			name:        "config overrides default",
			configLines: []string{"log_level=error"},
			key:         "log_level",
			wantValue:   "error",
			wantFound:   true,
		},
		{
			name:        "key not in config or defaults",
			configLines: []string{"theme=mono"},
			key:         "nonexistent_key",
			wantValue:   "",
			wantFound:   false,
		},
		{
			name:        "custom key in config",
			configLines: []string{"custom_key=custom_value"},
			key:         "custom_key",
			wantValue:   "custom_value",
			wantFound:   true,
		},
		{
			name: "config file with multiple keys",
			configLines: []string{
				"theme=contrast",
				"log_level=info",
				"audit_limit=5",
			},
			key:       "log_level",
			wantValue: "info",
			wantFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempHome := setupTempHome(t)

			content := ""
			for _, line := range tt.configLines {
				content += line + "\n"
			}
			configPath := filepath.Join(tempHome, ".chatmuxrc")
			require.NoError(t, os.WriteFile(configPath, []byte(content), 0600))

			gotValue, gotFound := Get(tt.key)
			require.Equal(t, tt.wantFound, gotFound, "found mismatch")
			if tt.wantFound {
				require.Equal(t, tt.wantValue, gotValue, "value mismatch")
			}
		})
	}
}

func TestGet_AllDefaultsResolve(t *testing.T) {
	setupTempHome(t)

	for key := range Defaults {
		value, found := Get(key)
		require.True(t, found, "default for %q should resolve", key)
		_ = value
	}
}

func TestGetAll_NoConfigFile(t *testing.T) {
	setupTempHome(t)

	all, err := GetAll()
	require.NoError(t, err)

	// Every coded default appears.
	for key, fn := range Defaults {
		require.Equal(t, fn(), all[key], "default for %q", key)
	}
}

func TestGetAll_MergesUserOverrides(t *testing.T) {
	tempHome := setupTempHome(t)
	configPath := filepath.Join(tempHome, ".chatmuxrc")
	content := "theme=mono\ncustom=extra\n"
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0600))

	all, err := GetAll()
	require.NoError(t, err)

	require.Equal(t, "mono", all["theme"])
	require.Equal(t, "extra", all["custom"])
	// Untouched defaults survive the merge.
	require.Equal(t, "500", all["history_limit"])
	require.Equal(t, "24h", all["display_time"])
}
