package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/verdantweb/verdant/internal/errors"
)

// Validate checks the configuration for values that would fail at
// runtime.
func Validate(config *Config) error {
	if config.Server.Port < 1 || config.Server.Port > 65535 {
		return errors.NewConfigError("CFG_PORT",
			fmt.Sprintf("server port %d outside 1-65535", config.Server.Port), nil)
	}
	if strings.ContainsAny(config.Server.Host, " /") {
		return errors.NewConfigError("CFG_HOST",
			fmt.Sprintf("invalid server host %q", config.Server.Host), nil)
	}
	if config.Site.BaseURL != "" {
		u, err := url.Parse(config.Site.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			return errors.NewConfigError("CFG_BASE_URL",
				fmt.Sprintf("site base_url %q is not an http(s) URL", config.Site.BaseURL), err)
		}
	}
	switch config.Log.Format {
	case "", "text", "json":
	default:
		return errors.NewConfigError("CFG_LOG_FORMAT",
			fmt.Sprintf("unknown log format %q", config.Log.Format), nil)
	}
	return nil
}
