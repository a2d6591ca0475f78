// Package config provides application configuration loading and validation.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// APIKeyEnv is the environment variable holding the exchangerate-api.com key.
const APIKeyEnv = "EXCHANGE_RATE_API_KEY"

// ErrMissingAPIKey is returned when no API key was found in the environment or config.
var ErrMissingAPIKey = errors.New(APIKeyEnv + " is not set")

// Config holds the complete application configuration.
type Config struct {
	ExchangeRateAPI ExchangeRateAPIConfig `mapstructure:"exchange_rate_api"`
	Server          ServerConfig
	Log             LogConfig
}

// ExchangeRateAPIConfig holds settings for the exchangerate-api.com v6 provider.
type ExchangeRateAPIConfig struct {
	BaseURL    string `mapstructure:"base_url"`
	APIKey     string `mapstructure:"api_key"`
	TimeoutSec int    `mapstructure:"timeout_sec"` // 0 disables the client timeout.
}

// ServerConfig holds HTTP server settings for the serve command.
type ServerConfig struct {
	Port         int  `mapstructure:"port"`
	ServeSwagger bool `mapstructure:"serve_swagger"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// LoadConfig reads configuration from a .env file, config files, environment variables, and defaults.
func LoadConfig() (*Config, error) {
	return Load(viper.New())
}

// Load reads configuration into the given viper instance. Callers may bind
// command-line flags on v before calling Load.
func Load(v *viper.Viper) (*Config, error) {
	// a missing .env is fine, the key may come from the process environment
	_ = godotenv.Load()

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("CURRCONV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// the fixed name wins over the prefixed one
	if err := v.BindEnv("exchange_rate_api.api_key", APIKeyEnv, "CURRCONV_EXCHANGE_RATE_API_API_KEY"); err != nil {
		return nil, fmt.Errorf("bind %s: %w", APIKeyEnv, err)
	}

	v.SetDefault("exchange_rate_api.base_url", "https://v6.exchangerate-api.com/v6")
	v.SetDefault("exchange_rate_api.api_key", "")
	v.SetDefault("exchange_rate_api.timeout_sec", 10)
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.serve_swagger", true)
	v.SetDefault("log.level", "warn")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	cfg.ExchangeRateAPI.APIKey = strings.TrimSpace(cfg.ExchangeRateAPI.APIKey)
	cfg.ExchangeRateAPI.BaseURL = strings.TrimRight(cfg.ExchangeRateAPI.BaseURL, "/")

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks that all required configuration fields are set and valid.
func (c *Config) Validate() error {
	var errs []error
	if c.ExchangeRateAPI.APIKey == "" {
		errs = append(errs, ErrMissingAPIKey)
	}
	if c.ExchangeRateAPI.BaseURL == "" {
		errs = append(errs, fmt.Errorf("exchange_rate_api.base_url is required"))
	}
	if c.ExchangeRateAPI.TimeoutSec < 0 {
		errs = append(errs, fmt.Errorf("exchange_rate_api.timeout_sec must be non-negative, got %d", c.ExchangeRateAPI.TimeoutSec))
	}
	if c.Server.Port <= 0 {
		errs = append(errs, fmt.Errorf("server.port must be positive, got %d", c.Server.Port))
	}
	return errors.Join(errs...)
}
