// Package config provides configuration management for Verdant using
// Viper: YAML files, environment variable overrides with the VERDANT_
// prefix, and command-line flags, with validation before use.
package config

import (
	"github.com/spf13/viper"
)

// Config is the root configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Dev    DevConfig    `yaml:"dev"`
	Build  BuildConfig  `yaml:"build"`
	Theme  ThemeConfig  `yaml:"theme"`
	Site   SiteConfig   `yaml:"site"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host           string   `yaml:"host"`
	Port           int      `yaml:"port"`
	StaticDir      string   `yaml:"static_dir"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// DevConfig holds development-mode settings.
type DevConfig struct {
	LiveReload bool     `yaml:"live_reload"`
	WatchPaths []string `yaml:"watch_paths"`
}

// BuildConfig holds static export settings.
type BuildConfig struct {
	OutDir string `yaml:"out_dir"`
	Minify bool   `yaml:"minify"`
}

// ThemeConfig selects the active theme.
type ThemeConfig struct {
	File    string `yaml:"file"`
	Variant string `yaml:"variant"`
}

// SiteConfig holds site-level metadata.
type SiteConfig struct {
	Name        string `yaml:"name"`
	Lang        string `yaml:"lang"`
	Description string `yaml:"description"`
	BaseURL     string `yaml:"base_url"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load builds the configuration from viper's merged sources and applies
// defaults.
func Load() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Viper's Unmarshal misses keys bound only through flags or env;
	// re-read the scalar sections explicitly.
	if viper.IsSet("server.host") {
		config.Server.Host = viper.GetString("server.host")
	}
	if viper.IsSet("server.port") {
		config.Server.Port = viper.GetInt("server.port")
	}
	if viper.IsSet("dev.live_reload") {
		config.Dev.LiveReload = viper.GetBool("dev.live_reload")
	}
	if viper.IsSet("dev.watch_paths") && len(config.Dev.WatchPaths) == 0 {
		config.Dev.WatchPaths = viper.GetStringSlice("dev.watch_paths")
	}
	if viper.IsSet("build.minify") {
		config.Build.Minify = viper.GetBool("build.minify")
	}

	applyDefaults(&config)

	if err := Validate(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

func applyDefaults(config *Config) {
	if config.Server.Host == "" {
		config.Server.Host = "localhost"
	}
	if config.Server.Port == 0 {
		config.Server.Port = 8080
	}
	if config.Server.StaticDir == "" {
		config.Server.StaticDir = "./static"
	}
	if len(config.Dev.WatchPaths) == 0 {
		config.Dev.WatchPaths = []string{"."}
	}
	if config.Build.OutDir == "" {
		config.Build.OutDir = "./dist"
	}
	if config.Site.Lang == "" {
		config.Site.Lang = "en"
	}
	if config.Log.Level == "" {
		config.Log.Level = "info"
	}
	if config.Log.Format == "" {
		config.Log.Format = "text"
	}
}
