package config

import (
	"github.com/ziadkadry99/itinerary/internal/integrity"
	"github.com/ziadkadry99/itinerary/internal/loader"
	"github.com/ziadkadry99/itinerary/internal/render"
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		DataSource: loader.DefaultSource,
		OutputDir:  "site",
		Markup:     render.PolicyRaw,
		LogLevel:   "info",
		Server: ServerConfig{
			Port:                  8080,
			AllowAllOrigins:       false,
			RequestTimeoutSeconds: 30,
		},
		HashLibrary: HashLibraryConfig{
			Enabled:     true,
			URL:         integrity.DefaultHashLibraryURL,
			Integrity:   integrity.DefaultHashLibraryIntegrity,
			CrossOrigin: integrity.DefaultCrossOrigin,
		},
		Watch: WatchConfig{
			DebounceMS: 300,
		},
	}
}
