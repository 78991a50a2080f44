package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Server ServerConfig
	Store  StoreConfig
	Cache  CacheConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// StoreConfig holds record-store credentials and endpoint.
type StoreConfig struct {
	ProjectID string `mapstructure:"project_id"`
	PublicKey string `mapstructure:"public_key"`
	BaseURL   string `mapstructure:"base_url"`
}

// CacheConfig holds product cache configuration.
type CacheConfig struct {
	TTL           time.Duration `mapstructure:"ttl"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
}

// Load loads configuration from environment variables and an optional
// config file.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/glowmarket/")

	v.SetEnvPrefix("GLOWMARKET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional; env vars and defaults cover everything.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Credentials default to empty so viper picks up env-only values
	// during Unmarshal; validate rejects them when still unset.
	v.SetDefault("store.project_id", "")
	v.SetDefault("store.public_key", "")
	v.SetDefault("store.base_url", "https://api.apper.io/records")

	v.SetDefault("cache.ttl", "15m")
	v.SetDefault("cache.sweep_interval", "10m")
}

func validate(config *Config) error {
	if config.Store.ProjectID == "" {
		return fmt.Errorf("store project id is required (set GLOWMARKET_STORE_PROJECT_ID)")
	}
	if config.Store.PublicKey == "" {
		return fmt.Errorf("store public key is required (set GLOWMARKET_STORE_PUBLIC_KEY)")
	}
	if config.Cache.TTL <= 0 {
		return fmt.Errorf("cache ttl must be positive, got: %s", config.Cache.TTL)
	}
	return nil
}
