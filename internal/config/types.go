package config

import "github.com/ziadkadry99/itinerary/internal/render"

// Config is the top-level itinerary configuration, corresponding to .itinerary.yml.
type Config struct {
	DataSource  string            `yaml:"data_source" koanf:"data_source"`
	OutputDir   string            `yaml:"output_dir" koanf:"output_dir"`
	Markup      render.Policy     `yaml:"markup" koanf:"markup"`
	LogLevel    string            `yaml:"log_level" koanf:"log_level"`
	Server      ServerConfig      `yaml:"server" koanf:"server"`
	HashLibrary HashLibraryConfig `yaml:"hash_library" koanf:"hash_library"`
	Watch       WatchConfig       `yaml:"watch" koanf:"watch"`
}

// ServerConfig holds page server settings.
type ServerConfig struct {
	Port                  int  `yaml:"port" koanf:"port"`
	AllowAllOrigins       bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	RequestTimeoutSeconds int  `yaml:"request_timeout_seconds" koanf:"request_timeout_seconds"`
}

// HashLibraryConfig describes the optional hashing script pages load.
type HashLibraryConfig struct {
	Enabled     bool   `yaml:"enabled" koanf:"enabled"`
	URL         string `yaml:"url" koanf:"url"`
	Integrity   string `yaml:"integrity" koanf:"integrity"`
	CrossOrigin string `yaml:"cross_origin" koanf:"cross_origin"`
}

// WatchConfig holds live reload settings.
type WatchConfig struct {
	DebounceMS int `yaml:"debounce_ms" koanf:"debounce_ms"`
}
