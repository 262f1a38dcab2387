// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Configuration holds all configuration for the backend.
type Configuration struct {
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
	Auth    AuthConfig    `mapstructure:"auth"`
	History HistoryConfig `mapstructure:"history"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig holds the HTTP listener options.
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// StorageConfig selects and parameterizes the history backends. PostgresURL
// empty means the remote backend is not configured and the local fallback is
// used without probing.
type StorageConfig struct {
	SQLitePath          string `mapstructure:"sqlitePath"`
	PostgresURL         string `mapstructure:"postgresURL"`
	ProbeTimeoutSeconds int    `mapstructure:"probeTimeoutSeconds"`
}

// ProbeTimeout returns the startup reachability probe deadline.
func (s StorageConfig) ProbeTimeout() time.Duration {
	return time.Duration(s.ProbeTimeoutSeconds) * time.Second
}

// AuthConfig holds the session-token options.
type AuthConfig struct {
	JWTSecret          string `mapstructure:"jwtSecret"`
	TokenDurationHours int    `mapstructure:"tokenDurationHours"`
}

// TokenDuration returns how long issued session tokens stay valid.
func (a AuthConfig) TokenDuration() time.Duration {
	return time.Duration(a.TokenDurationHours) * time.Hour
}

// HistoryConfig holds the history read-failure policy. The source behavior
// swallows remote read errors into an empty list; turning this on surfaces
// them to the caller instead.
type HistoryConfig struct {
	SurfaceReadErrors bool `mapstructure:"surfaceReadErrors"`
}

// LoggingConfig holds logging configuration options.
type LoggingConfig struct {
	Level string `mapstructure:"level"` // debug, info, warn, error
}

// Load reads configuration from the optional YAML file at configPath and
// from PRECIOSA_-prefixed environment variables, env winning over file.
func Load(configPath string) (*Configuration, error) {
	v := viper.New()

	v.SetDefault("server.port", 8080)
	v.SetDefault("storage.sqlitePath", "./data/preciosa.db")
	v.SetDefault("storage.postgresURL", "")
	v.SetDefault("storage.probeTimeoutSeconds", 5)
	v.SetDefault("auth.tokenDurationHours", 24)
	v.SetDefault("history.surfaceReadErrors", false)
	v.SetDefault("logging.level", "info")

	v.SetEnvPrefix("PRECIOSA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	cfg := &Configuration{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the invariants the rest of the process relies on.
func (c *Configuration) Validate() error {
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwtSecret is required (set PRECIOSA_AUTH_JWTSECRET)")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d is out of range", c.Server.Port)
	}
	if c.Storage.ProbeTimeoutSeconds <= 0 {
		return fmt.Errorf("storage.probeTimeoutSeconds must be positive")
	}
	return nil
}
