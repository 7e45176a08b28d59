// Package config loads the console's configuration from config.yaml with
// environment overrides.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Upstream UpstreamConfig `mapstructure:"upstream"`
	Session  SessionConfig  `mapstructure:"session"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

type ServerConfig struct {
	Port           int     `mapstructure:"port"`
	TimeoutSeconds int     `mapstructure:"timeoutSeconds"`
	RateLimitRPS   float64 `mapstructure:"rateLimitRPS"`
	RateBurst      int     `mapstructure:"rateBurst"`
}

// UpstreamConfig points at the practice management API.
type UpstreamConfig struct {
	BaseURL        string `mapstructure:"baseURL"`
	TimeoutSeconds int    `mapstructure:"timeoutSeconds"`
}

type SessionConfig struct {
	Secret     string `mapstructure:"secret"`
	TTLMinutes int    `mapstructure:"ttlMinutes"`
}

type CacheConfig struct {
	// RedisURL switches the shared store from in-process to redis when set.
	RedisURL   string `mapstructure:"redisURL"`
	Prefix     string `mapstructure:"prefix"`
	TTLSeconds int    `mapstructure:"ttlSeconds"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// envOverrides carries the settings that may not live in the file.
type envOverrides struct {
	UpstreamBaseURL string `envconfig:"UPSTREAM_BASE_URL"`
	SessionSecret   string `envconfig:"SESSION_SECRET"`
	RedisURL        string `envconfig:"REDIS_URL"`
	Port            int    `envconfig:"PORT"`
}

// LoadConfig reads config.yaml and applies environment overrides.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	var env envOverrides
	if err := envconfig.Process("console", &env); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	if env.UpstreamBaseURL != "" {
		config.Upstream.BaseURL = env.UpstreamBaseURL
	}
	if env.SessionSecret != "" {
		config.Session.Secret = env.SessionSecret
	}
	if env.RedisURL != "" {
		config.Cache.RedisURL = env.RedisURL
	}
	if env.Port != 0 {
		config.Server.Port = env.Port
	}

	if config.Upstream.BaseURL == "" {
		return nil, fmt.Errorf("upstream base URL is required")
	}
	if config.Session.Secret == "" {
		return nil, fmt.Errorf("session secret is required")
	}
	return &config, nil
}

// SessionTTL returns the session lifetime with a one hour default.
func (c *Config) SessionTTL() time.Duration {
	if c.Session.TTLMinutes <= 0 {
		return time.Hour
	}
	return time.Duration(c.Session.TTLMinutes) * time.Minute
}

// CacheTTL returns the shared store freshness window with a one minute
// default.
func (c *Config) CacheTTL() time.Duration {
	if c.Cache.TTLSeconds <= 0 {
		return time.Minute
	}
	return time.Duration(c.Cache.TTLSeconds) * time.Second
}

// ServerTimeout returns the per-request timeout with a 30 second default.
func (c *Config) ServerTimeout() time.Duration {
	if c.Server.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.Server.TimeoutSeconds) * time.Second
}

// UpstreamTimeout returns the upstream client timeout with a 15 second
// default.
func (c *Config) UpstreamTimeout() time.Duration {
	if c.Upstream.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.Upstream.TimeoutSeconds) * time.Second
}
