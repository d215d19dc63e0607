// Package config loads service settings from configs/config.yml and
// BETTERREST_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ErrConfiguration wraps every loading or validation failure.
var ErrConfiguration = errors.New("configuration error")

// Config is the full service configuration.
type Config struct {
	Port   string       `mapstructure:"port"`
	Log    LogConfig    `mapstructure:"log"`
	DB     DBConfig     `mapstructure:"db"`
	Auth   AuthConfig   `mapstructure:"auth"`
	Model  ModelConfig  `mapstructure:"model"`
	Format FormatConfig `mapstructure:"format"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type DBConfig struct {
	Path string `mapstructure:"path"`
}

type AuthConfig struct {
	SigningKey string        `mapstructure:"signing_key"`
	TokenTTL   time.Duration `mapstructure:"token_ttl"`
}

// ModelConfig selects the regression model artifact.
type ModelConfig struct {
	Kind           string        `mapstructure:"kind"` // linear | expression
	Path           string        `mapstructure:"path"`
	Expression     string        `mapstructure:"expression"`
	ReloadInterval time.Duration `mapstructure:"reload_interval"`
}

type FormatConfig struct {
	Locale string `mapstructure:"locale"`
}

const (
	envPrefix  = "BETTERREST"
	configName = "config"
	configType = "yaml"
)

// Load reads defaults, then the config file found in any of paths (optional),
// then environment overrides, and validates the result.
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("%w: read config: %v", ErrConfiguration, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: parse config: %v", ErrConfiguration, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	return &cfg, nil
}

// Validate checks cross-field constraints viper cannot express.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return errors.New("port must be set")
	}
	if c.Auth.SigningKey == "" {
		return errors.New("auth.signing_key must be set")
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("auth.token_ttl must be positive")
	}
	switch c.Model.Kind {
	case ModelKindLinear:
		if c.Model.Path == "" {
			return errors.New("model.path is required for the linear model")
		}
	case ModelKindExpression:
		if strings.TrimSpace(c.Model.Expression) == "" {
			return errors.New("model.expression is required for the expression model")
		}
	default:
		return fmt.Errorf("unknown model.kind %q", c.Model.Kind)
	}
	if c.Model.ReloadInterval < 0 {
		return errors.New("model.reload_interval must not be negative")
	}
	return nil
}
