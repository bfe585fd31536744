// Package config loads tool configuration from an optional
// structkit.yaml in the working directory. Every setting has a
// default; a missing file is not an error.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the generator settings.
type Config struct {
	// Suffix is appended to the source file base name for generated
	// files ("_gen" produces client_gen.go).
	Suffix string `mapstructure:"suffix"`
	// Markers are the zero-sized marker wrapper type names recognized
	// by debug bound inference.
	Markers []string `mapstructure:"markers"`
	// Verbose enables debug logging.
	Verbose bool `mapstructure:"verbose"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Suffix:  "_gen",
		Markers: []string{"Phantom", "marker.Phantom"},
	}
}

// Load reads structkit.yaml from dir, falling back to defaults when
// the file does not exist.
func Load(dir string) (Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigName("structkit")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	v.SetDefault("suffix", cfg.Suffix)
	v.SetDefault("markers", cfg.Markers)
	v.SetDefault("verbose", cfg.Verbose)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read structkit.yaml: %w", err)
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse structkit.yaml: %w", err)
	}
	if cfg.Suffix == "" {
		return cfg, fmt.Errorf("structkit.yaml: suffix must not be empty")
	}
	return cfg, nil
}
