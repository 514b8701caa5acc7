package config

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name:     "both flags set",
			args:     []string{"cmd", "-o", "export/users.txt", "-l", "debug"},
			expected: &Config{ExportPath: "export/users.txt", LogLevel: "debug"},
		},
		{
			name:     "flags keep earlier values when absent",
			args:     []string{"cmd"},
			expected: &Config{ExportPath: "seed.txt", LogLevel: "warn"},
		},
		{
			name:        "flag without value panics",
			args:        []string{"cmd", "-o"},
			expectPanic: true,
			expected:    &Config{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			cfg := &Config{ExportPath: "seed.txt", LogLevel: "warn"}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(cfg) })
				return
			}

			require.NotPanics(t, func() { parseFlags(cfg) })
			assert.Empty(t, cmp.Diff(cfg, tt.expected))
		})
	}
}
