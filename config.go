package compass

import (
	"net/url"
	"time"
)

// Configuration defaults.
const (
	DefaultBaseURL  = "http://localhost:8000"
	DefaultLogLevel = "warn"
	DefaultStyle    = "auto"
	DefaultWordWrap = 80
)

// Config holds client configuration.
type Config struct {
	// BaseURL is the backend address the API paths are appended to.
	BaseURL string `mapstructure:"base_url"`

	// Timeout bounds each HTTP request. Zero means no timeout.
	Timeout time.Duration `mapstructure:"timeout"`

	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`

	// Style is the glamour style used to render coach answers.
	Style    string `mapstructure:"style"`
	WordWrap int    `mapstructure:"word_wrap"`
}

// Validate returns an error if the configuration contains invalid fields.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return Errorf(EINVALID, "base URL required")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return Errorf(EINVALID, "base URL %q must be absolute, e.g. %s", c.BaseURL, DefaultBaseURL)
	}
	if c.Timeout < 0 {
		return Errorf(EINVALID, "timeout must not be negative")
	}
	if c.WordWrap < 0 {
		return Errorf(EINVALID, "word wrap must not be negative")
	}
	return nil
}
