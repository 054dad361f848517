package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/ziadkadry99/itinerary/internal/integrity"
	"github.com/ziadkadry99/itinerary/internal/render"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "ITINERARY_"

// envKey maps ITINERARY_SERVER__PORT to server.port and ITINERARY_DATA_SOURCE
// to data_source: a double underscore separates nesting levels.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (ITINERARY_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validLogLevels is the set of recognized log_level values.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.DataSource == "" {
		return fmt.Errorf("data_source is required")
	}

	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}

	if _, err := render.NewFormatter(c.Markup); err != nil {
		return fmt.Errorf("invalid markup %q: must be one of raw, escape, sanitize, markdown", c.Markup)
	}

	if c.LogLevel != "" && !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q: must be one of debug, info, warn, error", c.LogLevel)
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 0 and 65535")
	}

	if c.Server.RequestTimeoutSeconds < 0 {
		return fmt.Errorf("server.request_timeout_seconds must be non-negative")
	}

	if c.Watch.DebounceMS < 0 {
		return fmt.Errorf("watch.debounce_ms must be non-negative")
	}

	if c.HashLibrary.Enabled {
		if c.HashLibrary.URL == "" {
			return fmt.Errorf("hash_library.url is required when hash_library is enabled")
		}
		if c.HashLibrary.Integrity == "" {
			return fmt.Errorf("hash_library.integrity is required when hash_library is enabled")
		}
	}

	return nil
}

// Formatter returns the markup formatter for the configured policy.
func (c *Config) Formatter() (*render.Formatter, error) {
	return render.NewFormatter(c.Markup)
}

// HashScript returns the hash library script, or nil when disabled.
func (c *Config) HashScript() *integrity.Script {
	if !c.HashLibrary.Enabled {
		return nil
	}
	s := integrity.HashLibrary(c.HashLibrary.URL, c.HashLibrary.Integrity, c.HashLibrary.CrossOrigin)
	return &s
}
