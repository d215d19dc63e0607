package config

import (
	"time"

	"github.com/spf13/viper"
)

const (
	ModelKindLinear     = "linear"
	ModelKindExpression = "expression"
)

// Default values for configuration.
const (
	DefaultPort                = "8080"
	DefaultLogLevel            = "info"
	DefaultLogFormat           = "console"
	DefaultDBPath              = "betterrest.db"
	DefaultSigningKey          = "change-me"
	DefaultTokenTTL            = time.Hour
	DefaultModelKind           = ModelKindLinear
	DefaultModelPath           = "configs/sleep_calculator.yml"
	DefaultModelReloadInterval = 5 * time.Second
	DefaultLocale              = "en-US"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", DefaultPort)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	v.SetDefault("db.path", DefaultDBPath)
	v.SetDefault("auth.signing_key", DefaultSigningKey)
	v.SetDefault("auth.token_ttl", DefaultTokenTTL)
	v.SetDefault("model.kind", DefaultModelKind)
	v.SetDefault("model.path", DefaultModelPath)
	v.SetDefault("model.expression", "")
	v.SetDefault("model.reload_interval", DefaultModelReloadInterval)
	v.SetDefault("format.locale", DefaultLocale)
}
