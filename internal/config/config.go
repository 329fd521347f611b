// Package config loads server configuration with viper.
//
// Every key has a default, so the server starts without a config file. Any key
// can be overridden from the environment with the SHEET_ prefix, dots replaced
// by underscores (SHEET_SERVER_PORT, SHEET_REDIS_ENDPOINTS).
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/KirkDiggler/character-sheet/internal/clients/gateway"
	"github.com/KirkDiggler/character-sheet/internal/errors"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "SHEET"

// Store backends
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Logging formats
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// ServerConfig holds the gRPC listener settings
type ServerConfig struct {
	Port int `mapstructure:"port"`
	// ShutdownTimeout bounds graceful stop before connections are dropped
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// RulesConfig points at an optional rule table file; empty means built-in defaults
type RulesConfig struct {
	Path string `mapstructure:"path"`
}

// StoreConfig selects where rosters live between requests
type StoreConfig struct {
	Backend string `mapstructure:"backend"`
}

// RedisConfig holds the Redis session store settings
type RedisConfig struct {
	// Endpoints with more than one entry connect in cluster mode
	Endpoints    []string      `mapstructure:"endpoints"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	PoolSize     int           `mapstructure:"pool_size"`
	MinIdleConns int           `mapstructure:"min_idle_conns"`
	MaxRetries   int           `mapstructure:"max_retries"`
	UseTLS       bool          `mapstructure:"use_tls"`
	TTL          time.Duration `mapstructure:"ttl"`
}

// GatewayConfig holds the character API settings
type GatewayConfig struct {
	Endpoint string        `mapstructure:"endpoint"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// LoggingConfig holds structured logging settings
type LoggingConfig struct {
	// Level is one of debug, info, warn, error
	Level string `mapstructure:"level"`
	// Format is json or console
	Format string `mapstructure:"format"`
}

// Config is the top-level server configuration
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Rules   RulesConfig   `mapstructure:"rules"`
	Store   StoreConfig   `mapstructure:"store"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Gateway GatewayConfig `mapstructure:"gateway"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Validate checks every section and reports all violations at once
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("server.port", c.Server.Port, 1, 65535, vb)
	if c.Server.ShutdownTimeout < 0 {
		vb.Field("server.shutdown_timeout", "must not be negative")
	}

	errors.ValidateEnum("store.backend", c.Store.Backend, []string{BackendMemory, BackendRedis}, vb)
	if c.Store.Backend == BackendRedis {
		if len(c.Redis.Endpoints) == 0 {
			vb.RequiredField("redis.endpoints")
		}
		for _, ep := range c.Redis.Endpoints {
			if strings.TrimSpace(ep) == "" {
				vb.Field("redis.endpoints", "must not contain empty entries")
				break
			}
		}
		errors.ValidateNonNegative("redis.db", c.Redis.DB, vb)
		errors.ValidateNonNegative("redis.pool_size", c.Redis.PoolSize, vb)
		if c.Redis.TTL < 0 {
			vb.Field("redis.ttl", "must not be negative")
		}
	}

	errors.ValidateRequired("gateway.endpoint", c.Gateway.Endpoint, vb)
	if c.Gateway.Timeout <= 0 {
		vb.Field("gateway.timeout", "must be positive")
	}

	errors.ValidateEnum("logging.level", c.Logging.Level, []string{"debug", "info", "warn", "error"}, vb)
	errors.ValidateEnum("logging.format", c.Logging.Format, []string{FormatJSON, FormatConsole}, vb)

	return vb.Build()
}

// Load reads the optional config file at path, applies environment overrides
// and validates the result. An empty path loads defaults and environment only.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
	}

	return FromViper(v)
}

// FromViper builds a Config from an already-configured viper instance
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 50051)
	v.SetDefault("server.shutdown_timeout", "30s")

	v.SetDefault("rules.path", "")

	v.SetDefault("store.backend", BackendMemory)

	v.SetDefault("redis.endpoints", []string{"localhost:6379"})
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.min_idle_conns", 2)
	v.SetDefault("redis.max_retries", 3)
	v.SetDefault("redis.use_tls", false)
	v.SetDefault("redis.ttl", "24h")

	v.SetDefault("gateway.endpoint", gateway.DefaultEndpoint)
	v.SetDefault("gateway.timeout", gateway.DefaultTimeout)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", FormatJSON)
}
