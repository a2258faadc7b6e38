// Package config provides layered configuration loading and validation for
// the CLI and the HTTP API.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override (ATS_SERVER_PORT, ATS_LOG_LEVEL, ...).
const EnvPrefix = "ATS"

// DefaultConfigName is the file searched for in the working directory when no
// explicit config path is given (ats.yaml, ats.json, ...).
const DefaultConfigName = "ats"

// Config is the full runtime configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Auth      AuthConfig      `mapstructure:"auth"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Log       LogConfig       `mapstructure:"log"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	Batch     BatchConfig     `mapstructure:"batch"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port         int           `mapstructure:"port" validate:"min=1,max=65535"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout" validate:"gt=0"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" validate:"gt=0"`
}

// DatabaseConfig points at the PostgreSQL analyses store. An empty URL disables persistence.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"omitempty,url"`
}

// RedisConfig points at the result cache. An empty URL disables caching.
type RedisConfig struct {
	URL string        `mapstructure:"url" validate:"omitempty,url"`
	TTL time.Duration `mapstructure:"ttl" validate:"gt=0"`
}

// AuthConfig enables bearer-token checks on /v1/ routes when JWTSecret is set.
type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	Leeway    time.Duration `mapstructure:"leeway" validate:"gte=0"`
}

// RateLimitConfig configures the per-client token bucket.
type RateLimitConfig struct {
	Enabled           bool `mapstructure:"enabled"`
	RequestsPerMinute int  `mapstructure:"requests_per_minute" validate:"min=1"`
	Burst             int  `mapstructure:"burst" validate:"min=1"`
}

// LogConfig selects the logger level and encoding.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}

// MetricsConfig toggles the Prometheus /metrics endpoint.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// BatchConfig bounds batch scoring.
type BatchConfig struct {
	MaxSize int `mapstructure:"max_size" validate:"min=1,max=1000"`
	Workers int `mapstructure:"workers" validate:"min=1,max=64"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)

	v.SetDefault("database.url", "")

	v.SetDefault("redis.url", "")
	v.SetDefault("redis.ttl", time.Hour)

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.leeway", 30*time.Second)

	v.SetDefault("ratelimit.enabled", true)
	v.SetDefault("ratelimit.requests_per_minute", 120)
	v.SetDefault("ratelimit.burst", 20)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)

	v.SetDefault("metrics.enabled", true)

	v.SetDefault("batch.max_size", 50)
	v.SetDefault("batch.workers", 4)
}

// legacyEnv lists the unprefixed variables still honored for a few keys. The
// prefixed form wins when both are set.
var legacyEnv = map[string]string{
	"server.port":     "PORT",
	"database.url":    "DATABASE_URL",
	"redis.url":       "REDIS_URL",
	"auth.jwt_secret": "JWT_SECRET",
}

// Load builds the configuration from defaults, an optional config file and the
// environment, in increasing order of precedence. v may carry bound command
// flags, which take precedence over everything else; nil uses a fresh instance.
// An empty path searches the working directory for DefaultConfigName and
// tolerates its absence; an explicit path must exist.
func Load(v *viper.Viper, path string) (*Config, error) {
	if v == nil {
		v = viper.New()
	}
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, legacy := range legacyEnv {
		prefixed := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, legacy); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName(DefaultConfigName)
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every field against its constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			msgs := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("config error: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
