package discourses

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config groups client construction values. Fields are read from environment
// variables with the prefix "DISCOURSES_".
// Example: DISCOURSES_API_KEY=sk-... DISCOURSES_TIMEOUT=10s .
type Config struct {
	APIKey  string        `envconfig:"API_KEY" required:"true"`
	BaseURL string        `envconfig:"BASE_URL" default:"https://discourses.io/api/v1"`
	Timeout time.Duration `envconfig:"TIMEOUT" default:"30s"`
}

// LoadConfig populates Config from environment variables (prefix
// DISCOURSES_).
func LoadConfig() (Config, error) {
	var c Config
	return c, envconfig.Process("DISCOURSES", &c)
}

// NewFromEnv constructs a Client from environment configuration. Options
// are applied after the environment values, so they win on conflict.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	opts = append([]Option{WithBaseURL(cfg.BaseURL), WithHTTPTimeout(cfg.Timeout)}, opts...)
	return New(cfg.APIKey, opts...)
}
