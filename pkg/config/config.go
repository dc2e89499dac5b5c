// Package config loads application configuration from an optional
// config.yaml plus environment overrides.
package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the runtime settings for the API server and analyzer.
type Config struct {
	Port string `mapstructure:"port"`

	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"log"`

	// StrictLookups makes unknown catalog keys an error for direct
	// library users; the HTTP layer is always strict regardless.
	StrictLookups bool `mapstructure:"strict_lookups"`

	// CatalogPath points at an optional YAML file overriding the built-in
	// parameter tables.
	CatalogPath string `mapstructure:"catalog_path"`
}

// Load reads config.yaml (if present) and the environment. A missing config
// file is not an error; defaults cover everything.
func Load() (*Config, error) {
	// Best-effort local dev env; production should inject real env vars.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("strict_lookups", false)
	v.SetDefault("catalog_path", "")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}
