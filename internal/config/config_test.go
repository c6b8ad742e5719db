package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	config, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost", config.Server.Host)
	assert.Equal(t, 8080, config.Server.Port)
	assert.Equal(t, "./static", config.Server.StaticDir)
	assert.Equal(t, "./dist", config.Build.OutDir)
	assert.Equal(t, "en", config.Site.Lang)
	assert.Equal(t, "info", config.Log.Level)
}

func TestLoadReadsViperOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("server.port", 3000)
	viper.Set("dev.live_reload", true)
	viper.Set("site.name", "Demo")
	viper.Set("build.minify", true)

	config, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, config.Server.Port)
	assert.True(t, config.Dev.LiveReload)
	assert.Equal(t, "Demo", config.Site.Name)
	assert.True(t, config.Build.Minify)
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port too low", func(c *Config) { c.Server.Port = 0 }},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }},
		{"host with slash", func(c *Config) { c.Server.Host = "local/host" }},
		{"base url not http", func(c *Config) { c.Site.BaseURL = "ftp://example.com" }},
		{"unknown log format", func(c *Config) { c.Log.Format = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{}
			applyDefaults(config)
			tt.mutate(config)

			assert.Error(t, Validate(config))
		})
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	config := &Config{}
	applyDefaults(config)
	assert.NoError(t, Validate(config))
}
