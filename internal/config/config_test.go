//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/titleformat/internal/titlefmt"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/data/library.db",
			expected: filepath.Join(home, "data", "library.db"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/var/lib/titleformat.db",
			expected: "/var/lib/titleformat.db",
		},
		{
			name:     "relative path unchanged",
			input:    "library.db",
			expected: "library.db",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) != 2 {
		t.Fatalf("getConfigPaths() returned %d paths, want 2", len(paths))
	}
	if filepath.Base(filepath.Dir(paths[0])) != appName {
		t.Errorf("first config path = %q, want it under %q", paths[0], appName)
	}
	if paths[1] != "config.toml" {
		t.Errorf("last config path = %q, want %q", paths[1], "config.toml")
	}
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFrom_Missing(t *testing.T) {
	cfg, err := LoadFrom([]string{filepath.Join(t.TempDir(), "nope.toml")})
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.Database)
	assert.Equal(t, titlefmt.DefaultSettings(), cfg.Formatter)
}

func TestLoadFrom_Basic(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
database = "/tmp/scenes.db"
log_level = "debug"
concurrency = 4

[formatter]
trimWhitespace = true
collapseWhitespace = true
casingMode = "  TITLECASE  "
possessiveBaseTerms = "Director, Producer"
customReplacePairs = '[["foo","bar"]]'
`)

	cfg, err := LoadFrom([]string{path})
	require.NoError(t, err)

	assert.Equal(t, "/tmp/scenes.db", cfg.Database)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 4, cfg.Workers())
	assert.Equal(t, titlefmt.Settings{
		TrimWhitespace:      true,
		CollapseWhitespace:  true,
		CasingMode:          "TITLECASE",
		PossessiveBaseTerms: "Director, Producer",
		CustomReplacePairs:  `[["foo","bar"]]`,
	}, cfg.Formatter)
}

func TestLoadFrom_LaterFileWins(t *testing.T) {
	first := writeConfig(t, t.TempDir(), `
log_level = "warn"

[formatter]
trimWhitespace = true
casingMode = "UPPERCASE"
`)
	second := writeConfig(t, t.TempDir(), `
[formatter]
casingMode = "LOWERCASE"
`)

	cfg, err := LoadFrom([]string{first, second})
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.True(t, cfg.Formatter.TrimWhitespace)
	assert.Equal(t, "LOWERCASE", cfg.Formatter.CasingMode)
}

func TestLoadFrom_InvalidToml(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "this is not [valid toml")

	_, err := LoadFrom([]string{path})
	if err == nil {
		t.Error("LoadFrom() expected error for invalid TOML, got nil")
	}
}

func TestLoadFrom_DatabaseExpansion(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}
	path := writeConfig(t, t.TempDir(), `database = "~/scenes.db"`)

	cfg, err := LoadFrom([]string{path})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "scenes.db"), cfg.Database)
}

func TestLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
		wantErr  bool
	}{
		{"", slog.LevelInfo, false},
		{"debug", slog.LevelDebug, false},
		{"WARN", slog.LevelWarn, false},
		{" error ", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := (&Config{LogLevel: tt.input}).Level()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestWorkers(t *testing.T) {
	assert.Equal(t, min(runtime.NumCPU(), maxConcurrency), (&Config{}).Workers())
	assert.Equal(t, 3, (&Config{Concurrency: 3}).Workers())
	assert.Equal(t, maxConcurrency, (&Config{Concurrency: 1000}).Workers())
}

func TestDecodeSettings(t *testing.T) {
	t.Run("weak typing", func(t *testing.T) {
		s, err := DecodeSettings(titlefmt.Settings{}, map[string]any{
			"trimWhitespace":     "true",
			"collapseWhitespace": 1,
			"smartPossessive":    true,
			"runAlways":          "false",
			"casingMode":         " KEBABCASE ",
			"unknownKey":         "ignored",
		})
		require.NoError(t, err)
		assert.True(t, s.TrimWhitespace)
		assert.True(t, s.CollapseWhitespace)
		assert.True(t, s.SmartPossessive)
		assert.False(t, s.RunAlways)
		assert.Equal(t, "KEBABCASE", s.CasingMode)
	})

	t.Run("keeps base values", func(t *testing.T) {
		base := titlefmt.Settings{TrimWhitespace: true, CasingMode: "UPPERCASE"}
		s, err := DecodeSettings(base, map[string]any{"casingMode": "LOWERCASE"})
		require.NoError(t, err)
		assert.True(t, s.TrimWhitespace)
		assert.Equal(t, "LOWERCASE", s.CasingMode)
	})

	t.Run("rules as decoded array", func(t *testing.T) {
		s, err := DecodeSettings(titlefmt.Settings{}, map[string]any{
			"customReplacePairs": []any{[]any{"foo", "bar"}},
		})
		require.NoError(t, err)
		assert.Equal(t, `[["foo","bar"]]`, s.CustomReplacePairs)
	})

	t.Run("empty record", func(t *testing.T) {
		s, err := DecodeSettings(titlefmt.Settings{CasingMode: " x "}, nil)
		require.NoError(t, err)
		assert.Equal(t, "x", s.CasingMode)
	})
}

func TestParseOverrides(t *testing.T) {
	record, err := ParseOverrides([]string{"casingMode=TITLECASE", "customReplacePairs=[[\"a=b\",\"c\"]]", "trimWhitespace="})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"casingMode":         "TITLECASE",
		"customReplacePairs": `[["a=b","c"]]`,
		"trimWhitespace":     "",
	}, record)

	_, err = ParseOverrides([]string{"novalue"})
	require.ErrorIs(t, err, ErrInvalidOverride)

	_, err = ParseOverrides([]string{"=x"})
	require.ErrorIs(t, err, ErrInvalidOverride)
}
