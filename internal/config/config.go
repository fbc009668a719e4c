package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/titleformat/internal/titlefmt"
)

const (
	appName        = "titleformat"
	configFileName = "config.toml"
	maxConcurrency = 64
)

// ErrInvalidOverride is returned for a settings override not written as
// key=value.
var ErrInvalidOverride = errors.New("override must be key=value")

type Config struct {
	Database    string `koanf:"database"`    // sqlite path; empty means the XDG data dir
	LogLevel    string `koanf:"log_level"`   // "debug", "info", "warn" or "error"
	Concurrency int    `koanf:"concurrency"` // tag command workers (default: number of CPUs)

	// Formatter holds the pipeline settings used by the format and tags
	// commands. Keys match the stored settings record.
	Formatter titlefmt.Settings `koanf:"formatter"`
}

// Load reads the config files in priority order. Missing files are skipped.
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths())
}

// LoadFrom reads the given files in order, later files overriding earlier
// ones.
func LoadFrom(paths []string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	cfg := &Config{
		LogLevel: "info",
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Database = expandPath(strings.TrimSpace(cfg.Database))
	cfg.Formatter = cfg.Formatter.Normalize()

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/titleformat/config.toml
		filepath.Join(xdg.ConfigHome, appName, configFileName),
		// 2. ./config.toml (pwd, highest priority)
		configFileName,
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// Level returns the slog level named by log_level, defaulting to info.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if strings.TrimSpace(c.LogLevel) == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}

// Workers returns the concurrency setting with defaults applied.
func (c *Config) Workers() int {
	n := c.Concurrency
	if n <= 0 {
		n = runtime.NumCPU()
	}
	return min(max(n, 1), maxConcurrency)
}

// DecodeSettings decodes a loose settings record on top of base. Values are
// weakly typed, so "true", 1 and true all enable a toggle. Keys not present
// in record keep their base value; unknown keys are ignored.
func DecodeSettings(base titlefmt.Settings, record map[string]any) (titlefmt.Settings, error) {
	if len(record) == 0 {
		return base.Normalize(), nil
	}

	// Rules are stored as a JSON string, but a record may carry the
	// decoded array instead.
	flat := make(map[string]any, len(record))
	for key, v := range record {
		if key == "customReplacePairs" {
			if _, ok := v.(string); !ok && v != nil {
				data, err := json.Marshal(v)
				if err != nil {
					return base, fmt.Errorf("customReplacePairs: %w", err)
				}
				v = string(data)
			}
		}
		flat[key] = v
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(flat, ""), nil); err != nil {
		return base, err
	}

	s := base
	if err := k.Unmarshal("", &s); err != nil {
		return base, fmt.Errorf("decode settings: %w", err)
	}
	return s.Normalize(), nil
}

// ParseOverrides turns key=value arguments into a settings record.
func ParseOverrides(args []string) (map[string]any, error) {
	record := make(map[string]any, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidOverride, arg)
		}
		record[key] = value
	}
	return record, nil
}
