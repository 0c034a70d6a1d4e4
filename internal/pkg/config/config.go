package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Upstream UpstreamConfig
	Session  SessionConfig
}

// UpstreamConfig locates the remote reservation API this gateway fronts.
type UpstreamConfig struct {
	BaseURL   string `env:"API_BASE_URL,   default=http://localhost:3001/api"`
	TimeoutMS int    `env:"API_TIMEOUT_MS, default=10000"`
}

// Timeout returns the per-request upstream timeout as a duration.
func (u UpstreamConfig) Timeout() time.Duration {
	return time.Duration(u.TimeoutMS) * time.Millisecond
}

type SessionConfig struct {
	// TTLSeconds is the lifetime of both credential cookies. Defaults to 7 days.
	TTLSeconds int `env:"CREDENTIAL_TTL, default=604800"`
}

func (s SessionConfig) TTL() time.Duration {
	return time.Duration(s.TTLSeconds) * time.Second
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
