package config

import (
	"fmt"
	"time"
)

// ClientConfig is the configuration of the command-line client. It is the
// Adapter section of [StructuredConfig] after defaults are applied.
type ClientConfig struct {
	// HTTPAddress is the base URL of the user service.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// Token is the bearer token sent with authenticated requests.
	Token string
	// LogLevel is the zerolog level name of the client logger.
	LogLevel string
}

// GetClientConfig builds and validates the client configuration from
// environment variables and the JSON file named by CONFIG. Command-line
// arguments are left to the client's own subcommand parsing.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		HTTPAddress:    cfg.Adapter.HTTPAddress,
		RequestTimeout: cfg.Adapter.RequestTimeout,
		Token:          cfg.Adapter.Token,
		LogLevel:       cfg.App.LogLevel,
	}

	if err := clientCfg.validate(); err != nil {
		return nil, fmt.Errorf("error validating client config: %w", err)
	}

	return clientCfg, nil
}
