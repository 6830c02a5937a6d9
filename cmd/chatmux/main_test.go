package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantWords []string
		wantFlags []string
	}{
		{
			name: "empty",
			args: []string{},
		},
		{
			name:      "only words",
			args:      []string{"eval", "demo.yaml", "alice", "say", "hi"},
			wantWords: []string{"eval", "demo.yaml", "alice", "say", "hi"},
		},
		{
			name:      "flags interleaved",
			args:      []string{"config", "get", "--json", "color_theme", "--no-pager"},
			wantWords: []string{"config", "get", "color_theme"},
			wantFlags: []string{"--json", "--no-pager"},
		},
		{
			name:      "value flag",
			args:      []string{"--pager=less", "audit"},
			wantWords: []string{"audit"},
			wantFlags: []string{"--pager=less"},
		},
		{
			name:      "double dash passes flag-shaped words through",
			args:      []string{"completions", "query", "--", "config", "--json"},
			wantWords: []string{"completions", "query", "config", "--json"},
		},
		{
			name:      "flags before double dash still count",
			args:      []string{"eval", "demo.yaml", "alice", "--quiet", "--", "say", "--loud"},
			wantWords: []string{"eval", "demo.yaml", "alice", "say", "--loud"},
			wantFlags: []string{"--quiet"},
		},
		{
			name:      "trailing double dash",
			args:      []string{"grants", "--"},
			wantWords: []string{"grants"},
		},
		{
			name:      "only first double dash is a separator",
			args:      []string{"query", "--", "a", "--", "b"},
			wantWords: []string{"query", "a", "--", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			words, flags := splitArgs(tt.args)
			require.Equal(t, tt.wantWords, words)
			require.Equal(t, tt.wantFlags, flags)
		})
	}
}
