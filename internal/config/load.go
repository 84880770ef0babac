// internal/config/load.go
package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of supported environment overrides.
const EnvPrefix = "CONFIGGEN_"

// envKeys maps environment variables (without prefix) to config paths.
// Anything else under the prefix is ignored.
var envKeys = map[string]string{
	"OUTPUT_DIR":        "generator.output_dir",
	"LOG_LEVEL":         "generator.log.level",
	"LOG_FORMAT":        "generator.log.format",
	"WATCH_ENABLED":     "generator.watch.enabled",
	"WATCH_INTERVAL_MS": "generator.watch.interval_ms",
}

func defaultConfig() Config {
	return Config{
		Generator: GeneratorConfig{
			OutputDir: "out",
			Index: IndexConfig{
				Enabled: true,
				Title:   "Players",
				File:    "index.html",
			},
			Report: ReportConfig{
				Enabled: true,
				File:    "report.yaml",
				Format:  "yaml",
			},
			Log: LogConfig{
				Level:  "info",
				Format: "console",
			},
		},
	}
}

// Load reads the job file at path.
// Layers: defaults, then the YAML file, then CONFIGGEN_* environment variables.
// Load does not validate.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("config: load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return &cfg, nil
}

// envKey maps CONFIGGEN_LOG_LEVEL to generator.log.level.
// An empty result makes koanf skip the variable.
func envKey(s string) string {
	return envKeys[strings.TrimPrefix(s, EnvPrefix)]
}
