package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// ClientConfig holds the settings of the command-line client. Every field can
// be overridden by the matching persistent flag of the client.
type ClientConfig struct {
	// HTTPAddress is the base address of the marketplace API.
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token, when set, is used instead of the token saved by `login`.
	Token string `env:"TOKEN"`

	// TokenFile is where `login` and `register` persist the bearer token.
	TokenFile string `env:"TOKEN_FILE"`
}

// ClientEnvPrefix prefixes every client environment variable.
const ClientEnvPrefix = "PTP_"

// GetClientConfig returns the client defaults overridden by PTP_* environment
// variables. When environ is given it replaces the process environment.
func GetClientConfig(environ ...map[string]string) (*ClientConfig, error) {
	cfg := defaultClientConfig()

	opts := env.Options{Prefix: ClientEnvPrefix}
	if len(environ) > 0 && environ[0] != nil {
		opts.Environment = environ[0]
	}

	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("error getting client env configs: %w", err)
	}

	return cfg, cfg.validate()
}

func defaultClientConfig() *ClientConfig {
	cfg := &ClientConfig{
		HTTPAddress:    "localhost:5000",
		RequestTimeout: 10 * time.Second,
	}

	if dir, err := os.UserConfigDir(); err == nil {
		cfg.TokenFile = filepath.Join(dir, "pass-the-pages", "token")
	}

	return cfg
}
